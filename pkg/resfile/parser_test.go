package resfile

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseResultFile(t *testing.T) {
	input := "2\nu1 u2\nu3 u4\n"

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if file.Count != 2 {
		t.Errorf("Expected count 2, got %d", file.Count)
	}
	if len(file.Pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(file.Pairs))
	}
	if file.Pairs[0].First != "u1" || file.Pairs[0].Second != "u2" {
		t.Errorf("Expected first pair (u1, u2), got (%s, %s)", file.Pairs[0].First, file.Pairs[0].Second)
	}
	if file.Pairs[1].First != "u3" || file.Pairs[1].Second != "u4" {
		t.Errorf("Expected second pair (u3, u4), got (%s, %s)", file.Pairs[1].First, file.Pairs[1].Second)
	}

	wantNames := []string{"u1", "u2", "u3", "u4"}
	if got := file.Names(); !reflect.DeepEqual(got, wantNames) {
		t.Errorf("Names() = %v, want %v", got, wantNames)
	}
}

func TestParseEmptyResult(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseString("0\n")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if file.Count != 0 {
		t.Errorf("Expected count 0, got %d", file.Count)
	}
	if len(file.Pairs) != 0 {
		t.Errorf("Expected no pairs, got %d", len(file.Pairs))
	}
}

func TestParseEscapedNames(t *testing.T) {
	input := "1\n" + `\my.inst \state_reg[3]` + "\n"

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if len(file.Pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(file.Pairs))
	}
	if file.Pairs[0].First != `\my.inst` {
		t.Errorf("Expected first name %q, got %q", `\my.inst`, file.Pairs[0].First)
	}
	if file.Pairs[0].Second != `\state_reg[3]` {
		t.Errorf("Expected second name %q, got %q", `\state_reg[3]`, file.Pairs[0].Second)
	}
}

func TestParseReader(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.Parse(strings.NewReader("1\nu1 u2\n"))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if file.Count != 1 || len(file.Pairs) != 1 {
		t.Errorf("Expected count 1 with 1 pair, got count %d with %d pairs", file.Count, len(file.Pairs))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"dangling name", "1\nu1\n"},
		{"whitespace only", "  \n \t\n"},
	}

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parser.ParseString(tt.input); err == nil {
				t.Errorf("Expected parse error for %q", tt.input)
			}
		})
	}
}
