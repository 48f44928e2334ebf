package expr

import "fmt"

// Offsets binds the three names the core rewrites to an offset tuple, e.g.
// { q: (col_off,), J: (row_off, col_off), res: (row_off,) }. The tuple's
// length is that name's expected index arity.
type Offsets map[string][]int

// ErrMalformedRef is returned when an index-ref targets a reserved name
// (q, J, or res) with the wrong number of index expressions, or when one of
// those names appears as a bare, unindexed symbol.
type ErrMalformedRef struct {
	Name string
	Want int
	Got  int
}

func (e *ErrMalformedRef) Error() string {
	if e.Got < 0 {
		return fmt.Sprintf("expr: %q used without indexing (expected %d index expressions)", e.Name, e.Want)
	}
	return fmt.Sprintf("expr: %q indexed with %d expressions, want %d", e.Name, e.Got, e.Want)
}

// Rewrite applies the index-rewriting rule: every index-ref whose target
// name is bound in offsets has each index expression e_i replaced by
// offs_i + e_i. The arity of the index-ref must match len(offsets[name]).
// A bare Var matching one of the bound names is malformed. Every other node
// is traversed structurally and rebuilt unchanged.
func Rewrite(n Node, offsets Offsets) (Node, error) {
	switch v := n.(type) {
	case Literal:
		return v, nil
	case Var:
		if offs, ok := offsets[v.Name]; ok {
			return nil, &ErrMalformedRef{Name: v.Name, Want: len(offs), Got: -1}
		}
		return v, nil
	case IndexRef:
		return rewriteIndexRef(v, offsets)
	case Call:
		args := make([]Node, len(v.Args))
		for i, a := range v.Args {
			r, err := Rewrite(a, offsets)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
		return Call{Head: v.Head, Args: args}, nil
	case Assign:
		lhs, err := Rewrite(v.LHS, offsets)
		if err != nil {
			return nil, err
		}
		rhs, err := Rewrite(v.RHS, offsets)
		if err != nil {
			return nil, err
		}
		return Assign{LHS: lhs, RHS: rhs}, nil
	case Block:
		stmts := make([]Node, len(v.Stmts))
		for i, s := range v.Stmts {
			r, err := Rewrite(s, offsets)
			if err != nil {
				return nil, err
			}
			stmts[i] = r
		}
		return Block{Stmts: stmts}, nil
	case Scope:
		body, err := Rewrite(v.Body, offsets)
		if err != nil {
			return nil, err
		}
		return Scope{Body: body}, nil
	default:
		panic(fmt.Sprintf("expr: unhandled node type %T", n))
	}
}

func rewriteIndexRef(r IndexRef, offsets Offsets) (Node, error) {
	offs, bound := offsets[r.Name]
	if !bound {
		index := make([]Node, len(r.Index))
		for i, idx := range r.Index {
			rw, err := Rewrite(idx, offsets)
			if err != nil {
				return nil, err
			}
			index[i] = rw
		}
		return IndexRef{Name: r.Name, Index: index}, nil
	}
	if len(r.Index) != len(offs) {
		return nil, &ErrMalformedRef{Name: r.Name, Want: len(offs), Got: len(r.Index)}
	}
	index := make([]Node, len(r.Index))
	for i, idx := range r.Index {
		rw, err := Rewrite(idx, offsets)
		if err != nil {
			return nil, err
		}
		index[i] = Call{Head: "+", Args: []Node{Literal{Value: float64(offs[i])}, rw}}
	}
	return IndexRef{Name: r.Name, Index: index}, nil
}

// WrapScope wraps a rewritten tree in a Scope so its local bindings cannot
// leak once several elements' trees are combined into one Block.
func WrapScope(n Node) Node { return Scope{Body: n} }

// Equal reports whether two trees are structurally identical. Used to test
// that stripping the offset additions Rewrite introduces yields back the
// original disjoint per-element trees.
func Equal(a, b Node) bool {
	switch av := a.(type) {
	case Literal:
		bv, ok := b.(Literal)
		return ok && av.Value == bv.Value
	case Var:
		bv, ok := b.(Var)
		return ok && av.Name == bv.Name
	case Call:
		bv, ok := b.(Call)
		if !ok || av.Head != bv.Head || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case IndexRef:
		bv, ok := b.(IndexRef)
		if !ok || av.Name != bv.Name || len(av.Index) != len(bv.Index) {
			return false
		}
		for i := range av.Index {
			if !Equal(av.Index[i], bv.Index[i]) {
				return false
			}
		}
		return true
	case Assign:
		bv, ok := b.(Assign)
		return ok && Equal(av.LHS, bv.LHS) && Equal(av.RHS, bv.RHS)
	case Block:
		bv, ok := b.(Block)
		if !ok || len(av.Stmts) != len(bv.Stmts) {
			return false
		}
		for i := range av.Stmts {
			if !Equal(av.Stmts[i], bv.Stmts[i]) {
				return false
			}
		}
		return true
	case Scope:
		bv, ok := b.(Scope)
		return ok && Equal(av.Body, bv.Body)
	default:
		return false
	}
}
