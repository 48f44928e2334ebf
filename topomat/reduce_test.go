package topomat

import (
	"testing"

	"github.com/RuiCat/dkcircuit/incidence"
	"github.com/RuiCat/dkcircuit/maths"
)

// Two resistors in series, grounded: nb(C)=2, two nets (middle junction,
// ground), each column summing to zero. topomat should yield a 1-row ti
// and a 1-row tv.
func TestReduceTwoResistorsSeries(t *testing.T) {
	nets := [][]incidence.Entry{
		{{Branch: 1, Polarity: -1}, {Branch: 2, Polarity: 1}}, // middle junction
		{{Branch: 1, Polarity: 1}, {Branch: 2, Polarity: -1}}, // ground
	}
	a := incidence.Build(nets, 2)

	tv, ti, err := Reduce(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ti.Rows() != 1 {
		t.Errorf("want ti with 1 row, got %d", ti.Rows())
	}
	if tv.Rows() != 1 {
		t.Errorf("want tv with 1 row, got %d", tv.Rows())
	}
	if ti.Rows()+tv.Rows() != a.Cols() {
		t.Errorf("rows(tv)+rows(ti) should equal ncols(A)=%d, got %d", a.Cols(), ti.Rows()+tv.Rows())
	}
}

// A hand-built incidence with three nonzeros in one column violates the
// at-most-two-candidates invariant.
func TestReducePathologicalColumnErrors(t *testing.T) {
	a := maths.NewMatrix[float64](3, 1)
	a.Set(0, 0, 1)
	a.Set(1, 0, 1)
	a.Set(2, 0, -1) // sums to +1, but that's moot: 3 candidates already violates

	_, _, err := Reduce(a)
	var target *ErrInvariantViolation
	if err == nil {
		t.Fatal("want an error, got nil")
	}
	if !isInvariantViolation(err, &target) {
		t.Fatalf("want *ErrInvariantViolation, got %v", err)
	}
}

// A column whose two nonzero entries don't sum to zero also violates the
// contract.
func TestReduceNonCancelingColumnErrors(t *testing.T) {
	a := maths.NewMatrix[float64](2, 1)
	a.Set(0, 0, 1)
	a.Set(1, 0, 1)

	_, _, err := Reduce(a)
	var target *ErrInvariantViolation
	if !isInvariantViolation(err, &target) {
		t.Fatalf("want *ErrInvariantViolation, got %v", err)
	}
}

func isInvariantViolation(err error, target **ErrInvariantViolation) bool {
	e, ok := err.(*ErrInvariantViolation)
	if ok {
		*target = e
	}
	return ok
}
