package board

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// set builds a SquareSet from algebraic square names.
func set(names ...string) SquareSet {
	var s SquareSet
	for _, n := range names {
		sq, err := ParseSquare(n)
		if err != nil {
			panic(err)
		}
		s = s.Add(sq)
	}
	return s
}

// sq parses a single algebraic square name.
func sq(name string) Square {
	s, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return s
}

// names returns the members of s in algebraic notation for readable diffs.
func names(s SquareSet) []string {
	out := []string{}
	for _, q := range s.Squares() {
		out = append(out, q.String())
	}
	return out
}

func assertSet(t *testing.T, label string, got, want SquareSet) {
	t.Helper()
	if diff := cmp.Diff(names(want), names(got)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", label, diff)
	}
}
