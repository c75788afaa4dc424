// Package pairing groups extracted LUT instances into pairs that fit a
// shared dual-output LUT6 site.
package pairing

import "github.com/OpenTraceLab/lutpair/pkg/netlist"

// MaxUnion is the input width of a LUT6 site: two instances can share a site
// only when their combined distinct input nets number at most this.
const MaxUnion = 6

// Pair is two instances placed on one site. First is always the instance
// discovered earlier in the netlist.
type Pair struct {
	First  *netlist.Instance
	Second *netlist.Instance
}

// Greedy pairs instances first-fit-forward: each unconsumed instance, in
// discovery order, is paired with the first later unconsumed instance whose
// input union stays within maxUnion. Instances left without a partner remain
// unconsumed and are not reported. The matching is greedy, not maximum: a
// pairing that strands fewer instances may exist.
func Greedy(instances []*netlist.Instance, maxUnion int) []Pair {
	var pairs []Pair
	for i, a := range instances {
		if a.Consumed {
			continue
		}
		for _, b := range instances[i+1:] {
			if b.Consumed {
				continue
			}
			if !unionWithin(a, b, maxUnion) {
				continue
			}
			a.Consumed = true
			b.Consumed = true
			pairs = append(pairs, Pair{First: a, Second: b})
			break
		}
	}
	return pairs
}

// unionWithin reports whether the distinct input nets of a and b together
// number at most limit. Counting stops as soon as the limit is exceeded.
func unionWithin(a, b *netlist.Instance, limit int) bool {
	count := len(a.Inputs)
	if count > limit {
		return false
	}
	for _, net := range b.Inputs {
		if a.HasInput(net) {
			continue
		}
		count++
		if count > limit {
			return false
		}
	}
	return true
}
