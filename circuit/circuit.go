// Package circuit implements the mutable collection of elements and nets.
// Adding elements fixes the whole-circuit branch/state/nonlinear-variable
// numbering, Connect merges pin and named nets while preserving the
// one-net-per-branch-end partition, and the circuit's coefficient matrices
// and nonlinear equation are the block-diagonal / index-offset combination
// of its elements'.
package circuit

import (
	"github.com/RuiCat/dkcircuit/element"
	"github.com/RuiCat/dkcircuit/expr"
	"github.com/RuiCat/dkcircuit/incidence"
	"github.com/RuiCat/dkcircuit/maths"
)

// Circuit holds an ordered element list (which fixes global numbering), the
// net partition over those elements' branches, and the name bindings into
// that partition.
type Circuit struct {
	elements     []*element.Element
	elementIndex map[*element.Element]int // insertion index, for idempotent Add
	elementOff   map[*element.Element]int // branch offset at insertion time
	totalNB      int

	nets  []*netNode
	names map[string]int
}

// New returns an empty circuit.
func New() *Circuit {
	return &Circuit{
		elementIndex: make(map[*element.Element]int),
		elementOff:   make(map[*element.Element]int),
		names:        make(map[string]int),
	}
}

// Add appends elements to the circuit in the given order, skipping any
// already present (identity equality; Add is idempotent). For each added
// element it appends one net per pin, containing that pin's (branch,
// polarity) entries translated into whole-circuit branch numbers.
func (c *Circuit) Add(elems ...*element.Element) {
	for _, e := range elems {
		if _, ok := c.elementIndex[e]; ok {
			continue
		}
		offset := c.totalNB
		c.elementIndex[e] = len(c.elements)
		c.elementOff[e] = offset
		c.elements = append(c.elements, e)
		c.totalNB += e.NB()

		for _, pinName := range e.PinNames() {
			pin, _ := e.Pin(pinName) // pin is known to exist: it came from PinNames
			entries := make([]incidence.Entry, len(pin.Entries))
			for i, pe := range pin.Entries {
				entries[i] = incidence.Entry{Branch: offset + pe.Branch, Polarity: pe.Polarity}
			}
			c.newNet(entries)
		}
	}
}

// BranchOffset returns the whole-circuit branch offset of e: the sum of nb
// over every element added before it. Returns ErrUnknownElement if e was
// never added.
func (c *Circuit) BranchOffset(e *element.Element) (int, error) {
	off, ok := c.elementOff[e]
	if !ok {
		return 0, ErrUnknownElement
	}
	return off, nil
}

// NetFor resolves a pin or a net name to its current net. A pin whose
// element hasn't been added yet is added first. A name that hasn't been
// declared yet is bound to a fresh, empty net.
func (c *Circuit) NetFor(ref PinOrName) (*Net, error) {
	if ref.pin != nil {
		c.Add(ref.pin.Elem)
		offset, err := c.BranchOffset(ref.pin.Elem)
		if err != nil {
			return nil, err
		}
		for _, pe := range ref.pin.Entries {
			target := incidence.Entry{Branch: offset + pe.Branch, Polarity: pe.Polarity}
			if h, ok := c.findNetContaining(target); ok {
				return &Net{c: c, handle: h}, nil
			}
		}
		panic("circuit: pin has no net; Add should have created one (invariant violated)")
	}
	if h, ok := c.names[ref.name]; ok {
		return &Net{c: c, handle: c.find(h)}, nil
	}
	h := c.newNet(nil)
	c.names[ref.name] = h
	return &Net{c: c, handle: h}, nil
}

// Connect resolves every argument to its net (deduplicated, first-seen
// order preserved) and merges all but the first into it, preserving the
// survivor's identity and every name bound to any of the merged nets.
func (c *Circuit) Connect(refs ...PinOrName) error {
	var roots []int
	seen := make(map[int]bool)
	for _, ref := range refs {
		net, err := c.NetFor(ref)
		if err != nil {
			return err
		}
		root := c.find(net.handle)
		if !seen[root] {
			seen[root] = true
			roots = append(roots, root)
		}
	}
	if len(roots) <= 1 {
		return nil
	}
	survivor := roots[0]
	for _, h := range roots[1:] {
		c.union(survivor, h)
	}
	return nil
}

// NetNames returns the current name -> (root-resolved) net-handle bindings,
// for diagnostics. A name always resolves to the same handle as any pin
// connected to it, however many merges happened since.
func (c *Circuit) NetNames() map[string]int {
	out := make(map[string]int, len(c.names))
	for name, h := range c.names {
		out[name] = c.find(h)
	}
	return out
}

// Incidence builds the branch-net incidence matrix of the circuit's current
// net partition.
func (c *Circuit) Incidence() maths.Matrix[float64] {
	roots := c.roots()
	nets := make([][]incidence.Entry, len(roots))
	for i, h := range roots {
		nets[i] = c.nets[h].entries
	}
	return incidence.Build(nets, c.totalNB)
}

// NB, NX, NQ, NU, NL, NY, NN are the whole-circuit dimension aggregates,
// each the sum over elements.
func (c *Circuit) NB() int { return c.sumDim(func(d element.Dims) int { return d.NB }) }
func (c *Circuit) NX() int { return c.sumDim(func(d element.Dims) int { return d.NX }) }
func (c *Circuit) NQ() int { return c.sumDim(func(d element.Dims) int { return d.NQ }) }
func (c *Circuit) NU() int { return c.sumDim(func(d element.Dims) int { return d.NU }) }
func (c *Circuit) NL() int { return c.sumDim(func(d element.Dims) int { return d.NL }) }
func (c *Circuit) NY() int { return c.sumDim(func(d element.Dims) int { return d.NY }) }
func (c *Circuit) NN() int { return c.sumDim(func(d element.Dims) int { return d.NN }) }

func (c *Circuit) sumDim(pick func(element.Dims) int) int {
	total := 0
	for _, e := range c.elements {
		total += pick(e.Dims())
	}
	return total
}

// MV, MI, MX, MXD, MQ, MU, PV, PI, PX, PXD, PQ are the whole-circuit
// coefficient matrices: the block-diagonal concatenation of the per-element
// matrices in insertion order.
func (c *Circuit) MV() maths.Matrix[float64]  { return c.blockDiag(func(e *element.Element) maths.Matrix[float64] { return e.MV() }) }
func (c *Circuit) MI() maths.Matrix[float64]  { return c.blockDiag(func(e *element.Element) maths.Matrix[float64] { return e.MI() }) }
func (c *Circuit) MX() maths.Matrix[float64]  { return c.blockDiag(func(e *element.Element) maths.Matrix[float64] { return e.MX() }) }
func (c *Circuit) MXD() maths.Matrix[float64] { return c.blockDiag(func(e *element.Element) maths.Matrix[float64] { return e.MXD() }) }
func (c *Circuit) MQ() maths.Matrix[float64]  { return c.blockDiag(func(e *element.Element) maths.Matrix[float64] { return e.MQ() }) }
func (c *Circuit) MU() maths.Matrix[float64]  { return c.blockDiag(func(e *element.Element) maths.Matrix[float64] { return e.MU() }) }
func (c *Circuit) PV() maths.Matrix[float64]  { return c.blockDiag(func(e *element.Element) maths.Matrix[float64] { return e.PV() }) }
func (c *Circuit) PI() maths.Matrix[float64]  { return c.blockDiag(func(e *element.Element) maths.Matrix[float64] { return e.PI() }) }
func (c *Circuit) PX() maths.Matrix[float64]  { return c.blockDiag(func(e *element.Element) maths.Matrix[float64] { return e.PX() }) }
func (c *Circuit) PXD() maths.Matrix[float64] { return c.blockDiag(func(e *element.Element) maths.Matrix[float64] { return e.PXD() }) }
func (c *Circuit) PQ() maths.Matrix[float64]  { return c.blockDiag(func(e *element.Element) maths.Matrix[float64] { return e.PQ() }) }

func (c *Circuit) blockDiag(pick func(*element.Element) maths.Matrix[float64]) maths.Matrix[float64] {
	mats := make([]maths.Matrix[float64], len(c.elements))
	for i, e := range c.elements {
		mats[i] = pick(e)
	}
	return maths.BlockDiag(mats...)
}

// U0 is the whole-circuit constant term: the vertical concatenation of
// per-element u0.
func (c *Circuit) U0() maths.Vector[float64] {
	vecs := make([]maths.Vector[float64], len(c.elements))
	for i, e := range c.elements {
		vecs[i] = e.U0()
	}
	return maths.VStack(vecs...)
}

// NonlinearEq combines every element's nonlinear-equation tree into one
// block, each independently rewritten so its q/J/res indices land at the
// element's whole-circuit offset and wrapped in its own scope. Offsets
// advance by each element's nn (rows) and nq (columns) in turn.
func (c *Circuit) NonlinearEq() (expr.Node, error) {
	stmts := make([]expr.Node, 0, len(c.elements))
	rowOff, colOff := 0, 0
	for _, e := range c.elements {
		offsets := expr.Offsets{
			"q":   {colOff},
			"J":   {rowOff, colOff},
			"res": {rowOff},
		}
		rewritten, err := expr.Rewrite(e.NonlinearEq(), offsets)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, expr.WrapScope(rewritten))
		rowOff += e.NN()
		colOff += e.NQ()
	}
	return expr.Block{Stmts: stmts}, nil
}
