package incidence

import "testing"

func TestBuildColumnSumsZero(t *testing.T) {
	// Branch 1: positive end in net 0, negative end in net 1.
	nets := [][]Entry{
		{{Branch: 1, Polarity: 1}},
		{{Branch: 1, Polarity: -1}},
	}
	m := Build(nets, 1)
	if m.Rows() != 2 || m.Cols() != 1 {
		t.Fatalf("want 2x1, got %dx%d", m.Rows(), m.Cols())
	}
	sum := m.Get(0, 0) + m.Get(1, 0)
	if sum != 0 {
		t.Errorf("column sum should be zero, got %v", sum)
	}
}

func TestBuildCancelsShortCircuit(t *testing.T) {
	// Both ends of the same branch merged into a single net: entries
	// cancel and the canonicalized matrix must have no nonzero there.
	nets := [][]Entry{
		{{Branch: 1, Polarity: 1}, {Branch: 1, Polarity: -1}},
	}
	m := Build(nets, 1)
	if m.NonZeroCount() != 0 {
		t.Errorf("want 0 nonzeros after cancellation, got %d", m.NonZeroCount())
	}
}
