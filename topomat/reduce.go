// Package topomat implements the Gauss-Jordan-over-GF(±1) topology
// reduction: it consumes a branch-net incidence matrix and produces the
// Kirchhoff cutset matrix `ti` and tie/mesh matrix `tv`.
package topomat

import (
	"github.com/RuiCat/dkcircuit/circuit"
	"github.com/RuiCat/dkcircuit/maths"
)

// Reduce runs the in-place elimination on a copy of a, returning the
// tie matrix tv and cutset matrix ti. a must satisfy the incidence
// contract: every nonzero entry ±1, every column summing to zero. Two
// violations are reported as *ErrInvariantViolation: a column with more
// than two candidate pivot rows, and a column whose two candidate entries
// do not cancel. Other violations (e.g. a single entry other than ±1, or a
// column with only one nonzero) are not detected.
func Reduce(a maths.Matrix[float64]) (tv, ti maths.Matrix[float64], err error) {
	m := copyMatrix(a)
	ncols := m.Cols()
	tree := make([]bool, ncols)
	row := 0

	for col := 0; col < ncols; col++ {
		candidates := m.ColumnEntries(col, row)
		if len(candidates) > 2 {
			return nil, nil, &ErrInvariantViolation{Col: col, Reason: "branch appears in more than two nets"}
		}
		if len(candidates) == 0 {
			continue
		}
		tree[col] = true
		pivot := candidates[0]
		if pivot != row {
			m.SwapRows(pivot, row)
		}
		if len(candidates) == 2 {
			r2 := candidates[1]
			if m.Get(row, col)+m.Get(r2, col) != 0 {
				return nil, nil, &ErrInvariantViolation{Col: col, Reason: "column does not sum to zero"}
			}
			m.AddScaledRow(r2, row, 1)
		}
		if m.Get(row, col) < 0 {
			m.ScaleRow(row, -1)
		}
		for rp := 0; rp < row; rp++ {
			switch v := m.Get(rp, col); {
			case v == 1:
				m.AddScaledRow(rp, row, -1)
			case v == -1:
				m.AddScaledRow(rp, row, 1)
			}
		}
		row++
	}

	ti = extractRows(m, row)

	var treeCols, linkCols []int
	for col, isTree := range tree {
		if isTree {
			treeCols = append(treeCols, col)
		} else {
			linkCols = append(linkCols, col)
		}
	}

	tv = maths.NewMatrix[float64](len(linkCols), ncols)
	for i, lc := range linkCols {
		tv.Set(i, lc, 1)
		for k, tc := range treeCols {
			if v := ti.Get(k, lc); v != 0 {
				tv.Set(i, tc, -v)
			}
		}
	}
	return tv, ti, nil
}

// ReduceCircuit builds a circuit's current incidence matrix and reduces it.
func ReduceCircuit(c *circuit.Circuit) (tv, ti maths.Matrix[float64], err error) {
	return Reduce(c.Incidence())
}

func copyMatrix(a maths.Matrix[float64]) maths.Matrix[float64] {
	m := maths.NewMatrix[float64](a.Rows(), a.Cols())
	for r := 0; r < a.Rows(); r++ {
		cols, vals := a.Row(r)
		for i, c := range cols {
			m.Set(r, c, vals[i])
		}
	}
	return m
}

func extractRows(a maths.Matrix[float64], n int) maths.Matrix[float64] {
	m := maths.NewMatrix[float64](n, a.Cols())
	for r := 0; r < n; r++ {
		cols, vals := a.Row(r)
		for i, c := range cols {
			m.Set(r, c, vals[i])
		}
	}
	return m
}
