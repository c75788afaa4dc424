package main

import "github.com/OpenTraceLab/lutpair/cmd/lutpair/cmd"

func main() {
	cmd.Execute()
}
