package expr

import "testing"

func TestRewriteOffsetsIndexRef(t *testing.T) {
	// res[1] = q[1] * q[2]
	tree := Assign{
		LHS: IndexRef{Name: "res", Index: []Node{Idx(1)}},
		RHS: Call{Head: "*", Args: []Node{
			IndexRef{Name: "q", Index: []Node{Idx(1)}},
			IndexRef{Name: "q", Index: []Node{Idx(2)}},
		}},
	}
	offsets := Offsets{"q": {2}, "res": {1}}
	got, err := Rewrite(tree, offsets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Assign{
		LHS: IndexRef{Name: "res", Index: []Node{Call{Head: "+", Args: []Node{Idx(1), Idx(1)}}}},
		RHS: Call{Head: "*", Args: []Node{
			IndexRef{Name: "q", Index: []Node{Call{Head: "+", Args: []Node{Idx(2), Idx(1)}}}},
			IndexRef{Name: "q", Index: []Node{Call{Head: "+", Args: []Node{Idx(2), Idx(2)}}}},
		}},
	}
	if !Equal(got, want) {
		t.Errorf("rewrite mismatch:\ngot  %s\nwant %s", got, want)
	}
}

func TestRewriteArityMismatch(t *testing.T) {
	tree := IndexRef{Name: "J", Index: []Node{Idx(1)}} // J needs 2 indices
	_, err := Rewrite(tree, Offsets{"J": {0, 0}})
	var arityErr *ErrMalformedRef
	if err == nil {
		t.Fatal("expected an arity mismatch error")
	}
	if !isMalformedRef(err, &arityErr) {
		t.Fatalf("expected *ErrMalformedRef, got %T: %v", err, err)
	}
	if arityErr.Want != 2 || arityErr.Got != 1 {
		t.Errorf("want {Want:2 Got:1}, got %+v", arityErr)
	}
}

func TestRewriteBareSymbolIsMalformed(t *testing.T) {
	_, err := Rewrite(Var{Name: "q"}, Offsets{"q": {0}})
	if err == nil {
		t.Fatal("expected error for bare q reference")
	}
}

func TestRewriteUntouchedNamesPassThrough(t *testing.T) {
	tree := IndexRef{Name: "aux", Index: []Node{Idx(3)}}
	got, err := Rewrite(tree, Offsets{"q": {5}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(got, tree) {
		t.Errorf("unrelated names should pass through unchanged, got %s", got)
	}
}

func TestWrapScopeAndEqual(t *testing.T) {
	inner := IndexRef{Name: "res", Index: []Node{Idx(0)}}
	scoped := WrapScope(inner)
	s, ok := scoped.(Scope)
	if !ok {
		t.Fatalf("WrapScope should return a Scope, got %T", scoped)
	}
	if !Equal(s.Body, inner) {
		t.Errorf("scope body should equal the wrapped tree")
	}
}

func isMalformedRef(err error, target **ErrMalformedRef) bool {
	if e, ok := err.(*ErrMalformedRef); ok {
		*target = e
		return true
	}
	return false
}
