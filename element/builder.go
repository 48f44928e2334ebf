package element

import (
	"strconv"

	"github.com/RuiCat/dkcircuit/expr"
	"github.com/RuiCat/dkcircuit/maths"
)

// Builder accumulates the optional matrices, pins, and nonlinear equation of
// an Element and reconciles their dimension symbols at Build. The zero
// value is not usable; use NewBuilder.
type Builder struct {
	mv, mi, mx, mxd, mq, mu maths.Matrix[float64]
	u0                      maths.Vector[float64]
	pv, pi, px, pxd, pq     maths.Matrix[float64]

	nonlinearEq expr.Node
	pins        map[string][]PinEntry
	pinOrder    []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) MV(m maths.Matrix[float64]) *Builder  { b.mv = m; return b }
func (b *Builder) MI(m maths.Matrix[float64]) *Builder  { b.mi = m; return b }
func (b *Builder) MX(m maths.Matrix[float64]) *Builder  { b.mx = m; return b }
func (b *Builder) MXD(m maths.Matrix[float64]) *Builder { b.mxd = m; return b }
func (b *Builder) MQ(m maths.Matrix[float64]) *Builder  { b.mq = m; return b }
func (b *Builder) MU(m maths.Matrix[float64]) *Builder  { b.mu = m; return b }
func (b *Builder) U0(v maths.Vector[float64]) *Builder  { b.u0 = v; return b }
func (b *Builder) PV(m maths.Matrix[float64]) *Builder  { b.pv = m; return b }
func (b *Builder) PI(m maths.Matrix[float64]) *Builder  { b.pi = m; return b }
func (b *Builder) PX(m maths.Matrix[float64]) *Builder  { b.px = m; return b }
func (b *Builder) PXD(m maths.Matrix[float64]) *Builder { b.pxd = m; return b }
func (b *Builder) PQ(m maths.Matrix[float64]) *Builder  { b.pq = m; return b }

// Pins sets an explicit pin -> (branch,polarity) map, overriding the default
// integer pin names. Order controls Element.PinNames' iteration order; with
// a nil order the names come in Go map iteration order, which is not
// defined.
func (b *Builder) Pins(pins map[string][]PinEntry, order []string) *Builder {
	b.pins = pins
	b.pinOrder = order
	return b
}

// NonlinearEq sets the element's local nonlinear-equation tree.
func (b *Builder) NonlinearEq(n expr.Node) *Builder {
	b.nonlinearEq = n
	return b
}

// sizeBinding pairs a supplied matrix with the dimension symbols its rows
// and columns must agree on, resolved from matrixSpecs at Build time.
type sizeBinding struct {
	key      string
	m        maths.Matrix[float64]
	row, col Dim
}

// Build reconciles every supplied matrix's dimensions, synthesizes zeros for
// anything unsupplied, and validates pins. Failure is an
// *ErrDimensionConflict or *ErrPinOutOfRange.
func (b *Builder) Build() (*Element, error) {
	sizes := map[Dim]int{N0: 1}

	supplied := map[string]maths.Matrix[float64]{
		"mv": b.mv, "mi": b.mi, "mx": b.mx, "mxd": b.mxd, "mq": b.mq, "mu": b.mu,
		"pv": b.pv, "pi": b.pi, "px": b.px, "pxd": b.pxd, "pq": b.pq,
	}
	bindings := make([]sizeBinding, len(matrixSpecs))
	for i, spec := range matrixSpecs {
		bindings[i] = sizeBinding{key: spec.key, m: supplied[spec.key], row: spec.rowSym, col: spec.colSym}
	}
	for _, sb := range bindings {
		if sb.m == nil {
			continue
		}
		if err := bindSize(sizes, sb.key, sb.row, sb.m.Rows()); err != nil {
			return nil, err
		}
		if err := bindSize(sizes, sb.key, sb.col, sb.m.Cols()); err != nil {
			return nil, err
		}
	}
	if b.u0 != nil {
		if err := bindSize(sizes, "u0", NL, b.u0.Length()); err != nil {
			return nil, err
		}
	}

	dims := dimsFromSizes(sizes)

	get := func(m maths.Matrix[float64], rows, cols int) maths.Matrix[float64] {
		if m != nil {
			return m
		}
		return maths.NewMatrix[float64](rows, cols)
	}

	e := &Element{
		dims: dims,
		mv:   get(b.mv, dims.NL, dims.NB),
		mi:   get(b.mi, dims.NL, dims.NB),
		mx:   get(b.mx, dims.NL, dims.NX),
		mxd:  get(b.mxd, dims.NL, dims.NX),
		mq:   get(b.mq, dims.NL, dims.NQ),
		mu:   get(b.mu, dims.NL, dims.NU),
		pv:   get(b.pv, dims.NY, dims.NB),
		pi:   get(b.pi, dims.NY, dims.NB),
		px:   get(b.px, dims.NY, dims.NX),
		pxd:  get(b.pxd, dims.NY, dims.NX),
		pq:   get(b.pq, dims.NY, dims.NQ),
	}
	if b.u0 != nil {
		e.u0 = b.u0
	} else {
		e.u0 = maths.NewVector[float64](dims.NL)
	}

	if b.pins != nil {
		if err := validatePins(b.pins, dims.NB); err != nil {
			return nil, err
		}
		e.pins = b.pins
		e.pinNames = b.pinOrder
		if e.pinNames == nil {
			for name := range b.pins {
				e.pinNames = append(e.pinNames, name)
			}
		}
	} else {
		e.pins = defaultPins(dims.NB)
		e.pinNames = make([]string, 0, len(e.pins))
		for k := 1; k <= dims.NB; k++ {
			e.pinNames = append(e.pinNames, strconv.Itoa(2*k-1), strconv.Itoa(2*k))
		}
	}

	if b.nonlinearEq != nil {
		e.nonlinearEq = b.nonlinearEq
	} else {
		e.nonlinearEq = expr.Empty()
	}

	return e, nil
}

func bindSize(sizes map[Dim]int, key string, sym Dim, val int) error {
	if existing, ok := sizes[sym]; ok {
		if existing != val {
			return &ErrDimensionConflict{Symbol: sym, Existing: existing, Got: val, Key: key}
		}
		return nil
	}
	sizes[sym] = val
	return nil
}
