package resfile

import (
	"fmt"

	"github.com/OpenTraceLab/lutpair/pkg/netlist"
)

// Violation describes one way a result file disagrees with its netlist.
type Violation struct {
	Pair    int // 1-based pair index, 0 for file-level problems
	Message string
}

func (v Violation) String() string {
	if v.Pair == 0 {
		return v.Message
	}
	return fmt.Sprintf("pair %d: %s", v.Pair, v.Message)
}

// Audit checks a parsed result file against the instances extracted from the
// matching netlist: the count line must equal the number of pair lines, every
// named instance must exist in the netlist, no instance may appear in more
// than one pair, and each pair's combined distinct input nets must stay
// within maxUnion. A nil return means the file is clean.
func Audit(f *File, instances []*netlist.Instance, maxUnion int) []Violation {
	var violations []Violation

	if f.Count != len(f.Pairs) {
		violations = append(violations, Violation{
			Message: fmt.Sprintf("count line says %d pairs, file has %d", f.Count, len(f.Pairs)),
		})
	}

	// Instance names are unique by convention only; on a duplicate the
	// first occurrence wins, same as the extractor's document order.
	byName := make(map[string]*netlist.Instance, len(instances))
	for _, inst := range instances {
		if _, ok := byName[inst.Name]; !ok {
			byName[inst.Name] = inst
		}
	}

	used := make(map[string]int, 2*len(f.Pairs))
	for i, pair := range f.Pairs {
		n := i + 1
		for _, name := range [2]string{pair.First, pair.Second} {
			if prev, ok := used[name]; ok {
				violations = append(violations, Violation{
					Pair:    n,
					Message: fmt.Sprintf("%s already used in pair %d", name, prev),
				})
			} else {
				used[name] = n
			}
			if _, ok := byName[name]; !ok {
				violations = append(violations, Violation{
					Pair:    n,
					Message: fmt.Sprintf("%s not found in netlist", name),
				})
			}
		}

		a, b := byName[pair.First], byName[pair.Second]
		if a == nil || b == nil || a == b {
			continue
		}
		if size := unionSize(a, b); size > maxUnion {
			violations = append(violations, Violation{
				Pair: n,
				Message: fmt.Sprintf("%s + %s reference %d distinct input nets (limit %d)",
					pair.First, pair.Second, size, maxUnion),
			})
		}
	}
	return violations
}

func unionSize(a, b *netlist.Instance) int {
	size := len(a.Inputs)
	for _, net := range b.Inputs {
		if !a.HasInput(net) {
			size++
		}
	}
	return size
}
