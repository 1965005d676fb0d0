// Package technique implements the eight named human solving techniques
// of spec.md §4.4, operating on an immutable core.Board and its
// associated core.CandidateGrid. Detection is pure: it never mutates the
// board, which lets the rater call it speculatively without cloning
// (spec.md §9 design note).
package technique

import "github.com/andrew867/sudokugen/internal/core"

// Unit names one row, column, or box and lists its member cell indices
// in row-major order.
type Unit struct {
	Kind  core.UnitKind
	Index int
	Cells []int
}

// AllUnits enumerates every row, column, and box of b.
func AllUnits(b *core.Board) []Unit {
	units := make([]Unit, 0, b.Size*3)
	for r := 0; r < b.Size; r++ {
		units = append(units, Unit{Kind: core.UnitRow, Index: r, Cells: b.RowCells(r)})
	}
	for c := 0; c < b.Size; c++ {
		units = append(units, Unit{Kind: core.UnitCol, Index: c, Cells: b.ColCells(c)})
	}
	for bx := 0; bx < b.Size; bx++ {
		units = append(units, Unit{Kind: core.UnitBox, Index: bx, Cells: b.BoxCells(bx)})
	}
	return units
}

// cellsCanSeeEachOther is the pair-wise unit relation of spec.md §4.4:
// true when two distinct cells share a row, column, or box.
func cellsCanSeeEachOther(b *core.Board, idx1, idx2 int) bool {
	if idx1 == idx2 {
		return false
	}
	r1, c1 := idx1/b.Size, idx1%b.Size
	r2, c2 := idx2/b.Size, idx2%b.Size
	if r1 == r2 || c1 == c2 {
		return true
	}
	return b.BoxIndex(r1, c1) == b.BoxIndex(r2, c2)
}

// seesAll reports whether idx sees every cell in cells.
func seesAll(b *core.Board, idx int, cells ...int) bool {
	for _, other := range cells {
		if idx == other {
			continue
		}
		if !cellsCanSeeEachOther(b, idx, other) {
			return false
		}
	}
	return true
}

func rowOf(b *core.Board, idx int) int { return idx / b.Size }
func colOf(b *core.Board, idx int) int { return idx % b.Size }

// combinations generates every k-element combination of ints, in
// ascending order.
func combinations(items []int, k int) [][]int {
	if k <= 0 || k > len(items) {
		return nil
	}
	var results [][]int
	var rec func(start int, chosen []int)
	rec = func(start int, chosen []int) {
		if len(chosen) == k {
			cp := make([]int, k)
			copy(cp, chosen)
			results = append(results, cp)
			return
		}
		for i := start; i <= len(items)-(k-len(chosen)); i++ {
			rec(i+1, append(chosen, items[i]))
		}
	}
	rec(0, nil)
	return results
}
