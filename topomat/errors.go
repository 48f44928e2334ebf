package topomat

import "fmt"

// ErrInvariantViolation is returned when Reduce finds that a matrix fails
// the incidence-matrix contract (every nonzero entry ±1 and every column
// summing to zero): a column with more than two candidate pivot rows, or
// two candidate entries that do not cancel. A violation indicates a
// malformed circuit, e.g. a branch appearing in more than two nets.
type ErrInvariantViolation struct {
	Col    int
	Reason string
}

func (e *ErrInvariantViolation) Error() string {
	return fmt.Sprintf("topomat: invariant violated at column %d: %s", e.Col, e.Reason)
}
