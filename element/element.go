package element

import (
	"github.com/RuiCat/dkcircuit/expr"
	"github.com/RuiCat/dkcircuit/maths"
)

// Element is an immutable coefficient-matrix bundle: eleven matrices, a
// constant vector, an optional nonlinear expression, and a pin map. Once
// built, an Element never changes and may be shared across circuits.
type Element struct {
	dims Dims

	mv, mi, mx, mxd, mq, mu maths.Matrix[float64]
	u0                      maths.Vector[float64]
	pv, pi, px, pxd, pq     maths.Matrix[float64]

	nonlinearEq expr.Node
	pins        map[string][]PinEntry
	pinNames    []string // insertion order, for stable PinNames()
}

// Dims returns the element's resolved size symbols.
func (e *Element) Dims() Dims { return e.dims }

func (e *Element) NB() int { return e.dims.NB }
func (e *Element) NX() int { return e.dims.NX }
func (e *Element) NQ() int { return e.dims.NQ }
func (e *Element) NU() int { return e.dims.NU }
func (e *Element) NL() int { return e.dims.NL }
func (e *Element) NY() int { return e.dims.NY }
func (e *Element) NN() int { return e.dims.NN }

func (e *Element) MV() maths.Matrix[float64]  { return e.mv }
func (e *Element) MI() maths.Matrix[float64]  { return e.mi }
func (e *Element) MX() maths.Matrix[float64]  { return e.mx }
func (e *Element) MXD() maths.Matrix[float64] { return e.mxd }
func (e *Element) MQ() maths.Matrix[float64]  { return e.mq }
func (e *Element) MU() maths.Matrix[float64]  { return e.mu }
func (e *Element) U0() maths.Vector[float64]  { return e.u0 }
func (e *Element) PV() maths.Matrix[float64]  { return e.pv }
func (e *Element) PI() maths.Matrix[float64]  { return e.pi }
func (e *Element) PX() maths.Matrix[float64]  { return e.px }
func (e *Element) PXD() maths.Matrix[float64] { return e.pxd }
func (e *Element) PQ() maths.Matrix[float64]  { return e.pq }

// NonlinearEq returns the element's local nonlinear-equation tree, indexed
// against its own q/J/res (i.e. not yet offset into a circuit's numbering).
func (e *Element) NonlinearEq() expr.Node { return e.nonlinearEq }

// PinNames returns the element's pin names in the order they were declared
// (or, for the default pin map, ascending pin number).
func (e *Element) PinNames() []string {
	out := make([]string, len(e.pinNames))
	copy(out, e.pinNames)
	return out
}

// Pin resolves a pin name to its (branch, polarity) entries.
func (e *Element) Pin(name string) (Pin, error) {
	entries, ok := e.pins[name]
	if !ok {
		return Pin{}, &ErrUnknownPin{Name: name}
	}
	return Pin{Elem: e, Name: name, Entries: entries}, nil
}
