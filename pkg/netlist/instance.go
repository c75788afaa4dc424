package netlist

import "strings"

// Instance is one recognized logic-cell instantiation: the instance name and
// the set of nets driving its data inputs, in the order they first appeared.
type Instance struct {
	Name   string
	Inputs []string

	// Consumed is set by the pairing stage once the instance has been
	// placed into a pair. It is never cleared.
	Consumed bool
}

// AddInput records an input net on the instance. The net text is trimmed of
// surrounding whitespace; empty nets and exact duplicates are dropped.
func (in *Instance) AddInput(net string) {
	net = strings.TrimSpace(net)
	if net == "" {
		return
	}
	if in.HasInput(net) {
		return
	}
	in.Inputs = append(in.Inputs, net)
}

// HasInput reports whether the instance already records the exact net name.
// Comparison is plain string equality; bit selects and escaped identifiers
// are not normalized.
func (in *Instance) HasInput(net string) bool {
	for _, have := range in.Inputs {
		if have == net {
			return true
		}
	}
	return false
}
