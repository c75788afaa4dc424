package resfile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ResultLexer defines the lexical structure of .res pairing result files.
// The format is whitespace-separated: a decimal pair count followed by two
// instance names per pair. Names may be escaped Verilog identifiers, which
// can contain any printable character, so a name token is simply a maximal
// run of non-whitespace.
var ResultLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},
	{Name: "Name", Pattern: `\S+`},
})
