// Package resfile reads, writes and audits .res pairing result files, the
// per-netlist output format of the pairing pipeline.
package resfile

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser reads .res result files.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new result file parser instance.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(ResultLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("resfile: build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a result file from a reader.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("resfile: parse: %w", err)
	}
	return file, nil
}

// ParseString parses a result file from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("resfile: parse: %w", err)
	}
	return file, nil
}

// ParseFile parses a result file from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("resfile: open: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}
