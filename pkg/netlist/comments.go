package netlist

// StripComments returns src with // line comments and /* */ block comments
// overwritten by spaces. The result has the same length as the input, so byte
// offsets are preserved. Block comments are blanked first, so a // sequence
// inside a block comment never starts a line comment.
//
// Comment markers inside string literals or escaped identifiers are not
// honored; synthesized netlists do not normally contain them.
func StripComments(src string) string {
	buf := []byte(src)
	stripBlockComments(buf)
	stripLineComments(buf)
	return string(buf)
}

// stripBlockComments blanks /* */ spans in place, newlines included. An
// unterminated block comment blanks through to the end of the buffer.
func stripBlockComments(buf []byte) {
	for i := 0; i < len(buf); {
		if buf[i] == '/' && i+1 < len(buf) && buf[i+1] == '*' {
			buf[i], buf[i+1] = ' ', ' '
			i += 2
			for i < len(buf) {
				if buf[i] == '*' && i+1 < len(buf) && buf[i+1] == '/' {
					buf[i], buf[i+1] = ' ', ' '
					i += 2
					break
				}
				buf[i] = ' '
				i++
			}
		} else {
			i++
		}
	}
}

// stripLineComments blanks // spans up to (not including) the terminating
// newline.
func stripLineComments(buf []byte) {
	for i := 0; i < len(buf); {
		if buf[i] == '/' && i+1 < len(buf) && buf[i+1] == '/' {
			for i < len(buf) && buf[i] != '\n' {
				buf[i] = ' '
				i++
			}
		} else {
			i++
		}
	}
}
