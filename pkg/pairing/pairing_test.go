package pairing

import (
	"testing"

	"github.com/OpenTraceLab/lutpair/pkg/netlist"
)

func newInstance(name string, inputs ...string) *netlist.Instance {
	inst := &netlist.Instance{Name: name}
	for _, net := range inputs {
		inst.AddInput(net)
	}
	return inst
}

func TestGreedyFirstFit(t *testing.T) {
	u1 := newInstance("u1", "a", "b", "c")
	u2 := newInstance("u2", "c", "d")
	u3 := newInstance("u3", "m", "n", "o", "p", "q", "r")

	pairs := Greedy([]*netlist.Instance{u1, u2, u3}, MaxUnion)

	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].First != u1 || pairs[0].Second != u2 {
		t.Errorf("Expected pair (u1, u2), got (%s, %s)", pairs[0].First.Name, pairs[0].Second.Name)
	}
	if !u1.Consumed || !u2.Consumed {
		t.Error("Paired instances must be marked consumed")
	}
	if u3.Consumed {
		t.Error("Unpaired instance must stay unconsumed")
	}
}

func TestGreedyPrefersEarlierPartner(t *testing.T) {
	a := newInstance("a", "n1")
	b := newInstance("b", "n2")
	c := newInstance("c", "n1")

	pairs := Greedy([]*netlist.Instance{a, b, c}, MaxUnion)

	// b fits a just as well as c does; the first fit wins.
	if len(pairs) != 1 {
		t.Fatalf("Expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].First.Name != "a" || pairs[0].Second.Name != "b" {
		t.Errorf("Expected pair (a, b), got (%s, %s)", pairs[0].First.Name, pairs[0].Second.Name)
	}
}

func TestGreedyConsumedNotRevisited(t *testing.T) {
	a := newInstance("a", "x")
	b := newInstance("b", "y")
	c := newInstance("c", "z")
	d := newInstance("d", "w")

	pairs := Greedy([]*netlist.Instance{a, b, c, d}, MaxUnion)

	if len(pairs) != 2 {
		t.Fatalf("Expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].First != a || pairs[0].Second != b {
		t.Errorf("Expected first pair (a, b), got (%s, %s)", pairs[0].First.Name, pairs[0].Second.Name)
	}
	if pairs[1].First != c || pairs[1].Second != d {
		t.Errorf("Expected second pair (c, d), got (%s, %s)", pairs[1].First.Name, pairs[1].Second.Name)
	}
}

func TestGreedyUnionLimit(t *testing.T) {
	tests := []struct {
		name      string
		a, b      *netlist.Instance
		wantPairs int
	}{
		{
			name:      "disjoint within limit",
			a:         newInstance("a", "n1", "n2", "n3"),
			b:         newInstance("b", "n4", "n5", "n6"),
			wantPairs: 1,
		},
		{
			name:      "disjoint over limit",
			a:         newInstance("a", "n1", "n2", "n3"),
			b:         newInstance("b", "n4", "n5", "n6", "n7"),
			wantPairs: 0,
		},
		{
			name:      "overlap pulls union back under",
			a:         newInstance("a", "n1", "n2", "n3", "n4"),
			b:         newInstance("b", "n1", "n2", "n5", "n6"),
			wantPairs: 1,
		},
		{
			name:      "six plus subset still fits",
			a:         newInstance("a", "n1", "n2", "n3", "n4", "n5", "n6"),
			b:         newInstance("b", "n1", "n6"),
			wantPairs: 1,
		},
		{
			name:      "first alone over limit",
			a:         newInstance("a", "n1", "n2", "n3", "n4", "n5", "n6", "n7"),
			b:         newInstance("b", "n1"),
			wantPairs: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs := Greedy([]*netlist.Instance{tt.a, tt.b}, MaxUnion)
			if len(pairs) != tt.wantPairs {
				t.Errorf("Expected %d pairs, got %d", tt.wantPairs, len(pairs))
			}
		})
	}
}

func TestGreedyCustomLimit(t *testing.T) {
	a := newInstance("a", "n1", "n2")
	b := newInstance("b", "n3")

	if pairs := Greedy([]*netlist.Instance{a, b}, 2); len(pairs) != 0 {
		t.Errorf("Expected no pairs under limit 2, got %d", len(pairs))
	}

	a.Consumed, b.Consumed = false, false
	if pairs := Greedy([]*netlist.Instance{a, b}, 3); len(pairs) != 1 {
		t.Errorf("Expected 1 pair under limit 3, got %d", len(pairs))
	}
}

func TestGreedyDegenerate(t *testing.T) {
	if pairs := Greedy(nil, MaxUnion); len(pairs) != 0 {
		t.Errorf("Expected no pairs from no instances, got %d", len(pairs))
	}

	solo := newInstance("solo", "a")
	if pairs := Greedy([]*netlist.Instance{solo}, MaxUnion); len(pairs) != 0 {
		t.Errorf("Expected no pairs from a single instance, got %d", len(pairs))
	}
	if solo.Consumed {
		t.Error("Single instance must stay unconsumed")
	}
}

func TestGreedyEveryInstanceAtMostOnce(t *testing.T) {
	instances := []*netlist.Instance{
		newInstance("u1", "a"),
		newInstance("u2", "b"),
		newInstance("u3", "c"),
		newInstance("u4", "d"),
		newInstance("u5", "e"),
	}

	pairs := Greedy(instances, MaxUnion)

	seen := make(map[string]bool)
	for _, pair := range pairs {
		for _, inst := range []*netlist.Instance{pair.First, pair.Second} {
			if seen[inst.Name] {
				t.Errorf("Instance %s appears in more than one pair", inst.Name)
			}
			seen[inst.Name] = true
			if !inst.Consumed {
				t.Errorf("Instance %s paired but not consumed", inst.Name)
			}
		}
	}
	if len(pairs) != 2 {
		t.Errorf("Expected 2 pairs from 5 instances, got %d", len(pairs))
	}
}
