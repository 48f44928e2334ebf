package element

import "fmt"

// ErrDimensionConflict is returned by Build when two supplied matrices
// disagree on a shared dimension symbol.
type ErrDimensionConflict struct {
	Symbol   Dim
	Existing int
	Got      int
	Key      string
}

func (e *ErrDimensionConflict) Error() string {
	return fmt.Sprintf("element: dimension %s already bound to %d, matrix %q implies %d",
		e.Symbol, e.Existing, e.Key, e.Got)
}

// ErrPinOutOfRange is returned by Build when a pin entry references a branch
// outside 1..nb, or has a polarity other than -1 or +1.
type ErrPinOutOfRange struct {
	PinName string
	Branch  int
	NB      int
}

func (e *ErrPinOutOfRange) Error() string {
	if e.Branch >= 1 && e.Branch <= e.NB {
		return fmt.Sprintf("element: pin %q entry on branch %d has a polarity other than -1 or +1", e.PinName, e.Branch)
	}
	return fmt.Sprintf("element: pin %q references branch %d, out of range [1,%d]", e.PinName, e.Branch, e.NB)
}

// ErrUnknownPin is returned by Element.Pin when the requested name is not in
// the element's pin map.
type ErrUnknownPin struct {
	Name string
}

func (e *ErrUnknownPin) Error() string {
	return fmt.Sprintf("element: unknown pin %q", e.Name)
}
