// Package netlist extracts LUT cell instances from synthesized Verilog
// netlists.
//
// The package does not parse Verilog. It runs a tolerant, cursor-driven scan
// over the raw text: comments are blanked out, then the scanner looks for
// instantiations of the form
//
//	GTP_LUT6 u1 ( .I0(n1), .I1(n2), .Z(nout) );
//
// and collects, per instance, the deduplicated set of nets connected to the
// .I<N> input ports. Everything the scanner does not recognize is skipped
// without error; a malformed instantiation simply yields no Instance. This is
// deliberately best-effort: generate blocks, parameterized instances and
// nested expressions are out of scope, and the narrow grammar that synthesis
// tools actually emit does not need an AST.
//
// # Usage
//
//	text := netlist.StripComments(string(src))
//	instances := netlist.Extract(text)
//	for _, inst := range instances {
//		fmt.Println(inst.Name, inst.Inputs)
//	}
//
// Net names are kept as raw trimmed substrings: bus[3] and bus[ 3] are
// different nets, and an escaped identifier keeps its leading backslash.
package netlist
