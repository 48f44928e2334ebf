package maths

import "testing"

func TestSparseMatrixSetGet(t *testing.T) {
	m := NewMatrix[float64](3, 3)
	m.Set(0, 0, 1.0)
	m.Set(1, 2, -2.5)
	if got := m.Get(0, 0); got != 1.0 {
		t.Errorf("want 1.0, got %v", got)
	}
	if got := m.Get(1, 2); got != -2.5 {
		t.Errorf("want -2.5, got %v", got)
	}
	if m.NonZeroCount() != 2 {
		t.Errorf("want 2 nonzeros, got %d", m.NonZeroCount())
	}
}

func TestSparseMatrixSetZeroDeletes(t *testing.T) {
	m := NewMatrix[float64](2, 2)
	m.Set(0, 0, 5.0)
	m.Set(0, 0, 0.0)
	if m.NonZeroCount() != 0 {
		t.Errorf("setting to zero should remove the entry, got %d nonzeros", m.NonZeroCount())
	}
}

func TestFromTripletsSumsDuplicatesAndCancels(t *testing.T) {
	trips := []Triplet[float64]{
		{Row: 0, Col: 1, Value: 1},
		{Row: 0, Col: 1, Value: -1},
		{Row: 1, Col: 1, Value: 2},
	}
	m := FromTriplets(2, 2, trips)
	if m.Get(0, 1) != 0 {
		t.Errorf("want cancellation to structural zero, got %v", m.Get(0, 1))
	}
	if m.NonZeroCount() != 1 {
		t.Errorf("want 1 surviving nonzero, got %d", m.NonZeroCount())
	}
}

func TestRowOperations(t *testing.T) {
	m := NewMatrix[float64](2, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 0, 3)
	m.Set(1, 1, 4)

	m.AddScaledRow(1, 0, -3) // row1 -= 3*row0
	if m.Get(1, 0) != 0 || m.Get(1, 1) != -2 {
		t.Errorf("unexpected row after AddScaledRow: (%v,%v)", m.Get(1, 0), m.Get(1, 1))
	}

	m.ScaleRow(1, -1)
	if m.Get(1, 1) != 2 {
		t.Errorf("want 2 after scaling, got %v", m.Get(1, 1))
	}

	m.SwapRows(0, 1)
	if m.Get(0, 1) != 2 || m.Get(1, 1) != 2 {
		t.Errorf("swap rows produced unexpected layout")
	}
}

func TestColumnEntries(t *testing.T) {
	m := NewMatrix[float64](4, 2)
	m.Set(0, 0, 1)
	m.Set(2, 0, -1)
	rows := m.ColumnEntries(0, 0)
	if len(rows) != 2 || rows[0] != 0 || rows[1] != 2 {
		t.Errorf("want rows [0 2], got %v", rows)
	}
	rows = m.ColumnEntries(0, 1)
	if len(rows) != 1 || rows[0] != 2 {
		t.Errorf("want rows [2] when starting from row 1, got %v", rows)
	}
}

func TestBlockDiag(t *testing.T) {
	a := NewDenseFromRows([][]float64{{1, 2}})
	b := NewDenseFromRows([][]float64{{3}, {4}})
	blk := BlockDiag[float64](a, b)
	if blk.Rows() != 3 || blk.Cols() != 3 {
		t.Fatalf("want 3x3 block-diagonal, got %dx%d", blk.Rows(), blk.Cols())
	}
	want := [][]float64{
		{1, 2, 0},
		{0, 0, 3},
		{0, 0, 4},
	}
	got := ToDense[float64](blk)
	for r := range want {
		for c := range want[r] {
			if got[r][c] != want[r][c] {
				t.Errorf("blockdiag[%d][%d] = %v, want %v", r, c, got[r][c], want[r][c])
			}
		}
	}
}

func TestVectorVStack(t *testing.T) {
	a := NewVectorFromSlice([]float64{1, 2})
	b := NewVectorFromSlice([]float64{3})
	v := VStack[float64](a, b)
	if v.Length() != 3 {
		t.Fatalf("want length 3, got %d", v.Length())
	}
	want := []float64{1, 2, 3}
	for i, w := range want {
		if v.Get(i) != w {
			t.Errorf("v[%d] = %v, want %v", i, v.Get(i), w)
		}
	}
}
