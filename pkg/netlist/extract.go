package netlist

// cellPrefix selects the LUT primitives of the target cell library.
const cellPrefix = "GTP_LUT"

// IsCellName reports whether name is a LUT cell instantiation of interest:
// the GTP_LUT prefix followed by one or more decimal digits and nothing else.
// GTP_LUT6CARRY is excluded; it carries a carry chain and cannot be packed.
func IsCellName(name string) bool {
	if name == "GTP_LUT6CARRY" {
		return false
	}
	if len(name) <= len(cellPrefix) || name[:len(cellPrefix)] != cellPrefix {
		return false
	}
	return allDigits(name[len(cellPrefix):])
}

// IsInputPort reports whether a port name denotes a data input: 'I' followed
// by one or more decimal digits. Output ports (.Z) and everything else are
// read during extraction but never recorded.
func IsInputPort(port string) bool {
	if len(port) < 2 || port[0] != 'I' {
		return false
	}
	return allDigits(port[1:])
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// Extract scans stripped netlist text and returns the qualifying LUT
// instances in document order. Extraction is best-effort: malformed
// instantiations yield no Instance and scanning resumes at the point of
// failure, with no error reported.
func Extract(src string) []*Instance {
	s := &scanner{src: src}
	var instances []*Instance

	for !s.eof() {
		save := s.pos
		cell, ok := s.ident()
		if !ok {
			// Stray punctuation; step over one byte and retry.
			s.pos = save + 1
			continue
		}
		if !IsCellName(cell) {
			continue
		}

		name, ok := s.ident()
		if !ok {
			continue
		}
		s.skipSpace()
		if s.eof() || s.peek() != '(' {
			continue
		}
		s.pos++

		inst := &Instance{Name: name}
		if !s.portList(inst) {
			// Input ended inside the port list; drop the partial instance.
			continue
		}
		s.resync()
		instances = append(instances, inst)
	}
	return instances
}

// portList consumes a parenthesized port-connection list, recording input
// nets on inst. The depth counter tolerates stray parentheses the grammar
// does not expect. It reports false when the input ends before the list
// closes.
func (s *scanner) portList(inst *Instance) bool {
	depth := 1
	for !s.eof() {
		s.skipSpace()
		if s.eof() {
			return false
		}

		switch s.peek() {
		case ')':
			s.pos++
			depth--
			if depth == 0 {
				return true
			}
			continue
		case '(':
			s.pos++
			depth++
			continue
		}

		// Expect .Port(net); anything else is skipped a byte at a time.
		if s.peek() != '.' {
			s.pos++
			continue
		}
		s.pos++
		port, ok := s.ident()
		if !ok {
			continue
		}
		s.skipSpace()
		if s.eof() || s.peek() != '(' {
			continue
		}
		s.pos++

		// Capture the raw net expression up to the closing parenthesis.
		from := s.pos
		for !s.eof() && s.peek() != ')' {
			s.pos++
		}
		net := s.src[from:s.pos]
		if !s.eof() {
			s.pos++
		}

		if IsInputPort(port) {
			inst.AddInput(net)
		}
	}
	return false
}
