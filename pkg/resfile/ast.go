package resfile

// File represents a complete .res result file: the pair count from the first
// line, then the reported pairs in emission order.
type File struct {
	Count int     `parser:"@Name"`
	Pairs []*Pair `parser:"@@*"`
}

// Pair is one reported pairing of two instance names.
type Pair struct {
	First  string `parser:"@Name"`
	Second string `parser:"@Name"`
}

// Names returns every instance name mentioned in the file, in file order,
// including duplicates.
func (f *File) Names() []string {
	names := make([]string, 0, 2*len(f.Pairs))
	for _, pair := range f.Pairs {
		names = append(names, pair.First, pair.Second)
	}
	return names
}
