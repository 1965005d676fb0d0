// Package symmetry implements SymmetryDetector (spec.md §4.10): four
// geometric predicates over a puzzle's clue layout and a weighted score
// combining them.
package symmetry

import "github.com/andrew867/sudokugen/internal/core"

const (
	weightRotational = 0.30
	weightHorizontal = 0.25
	weightVertical   = 0.25
	weightDiagonal   = 0.20
)

// Detect computes core.SymmetryInfo for puzzle's clue layout: a cell
// counts toward a symmetry only by presence/absence of a clue, not by
// digit value (spec.md §4.10).
func Detect(puzzle *core.Board) core.SymmetryInfo {
	info := core.SymmetryInfo{
		Rotational: isRotational(puzzle),
		Horizontal: isHorizontalMirror(puzzle),
		Vertical:   isVerticalMirror(puzzle),
		Diagonal:   isDiagonalReflection(puzzle),
	}
	info.Score = weightedScore(info)
	return info
}

func weightedScore(info core.SymmetryInfo) float64 {
	var score float64
	if info.Rotational {
		score += weightRotational
	}
	if info.Horizontal {
		score += weightHorizontal
	}
	if info.Vertical {
		score += weightVertical
	}
	if info.Diagonal {
		score += weightDiagonal
	}
	return score
}

func filled(b *core.Board, idx int) bool {
	return b.GetAt(idx) != 0
}

// isRotational reports 180-degree rotational symmetry: (r,c) and
// (S-1-r, S-1-c) are either both clued or both empty, for every cell.
func isRotational(b *core.Board) bool {
	s := b.Size
	for r := 0; r < s; r++ {
		for c := 0; c < s; c++ {
			idx := r*s + c
			twin := (s-1-r)*s + (s - 1 - c)
			if filled(b, idx) != filled(b, twin) {
				return false
			}
		}
	}
	return true
}

// isHorizontalMirror reports symmetry across the horizontal midline:
// row r mirrors row S-1-r.
func isHorizontalMirror(b *core.Board) bool {
	s := b.Size
	for r := 0; r < s; r++ {
		for c := 0; c < s; c++ {
			idx := r*s + c
			mirror := (s-1-r)*s + c
			if filled(b, idx) != filled(b, mirror) {
				return false
			}
		}
	}
	return true
}

// isVerticalMirror reports symmetry across the vertical midline: column
// c mirrors column S-1-c.
func isVerticalMirror(b *core.Board) bool {
	s := b.Size
	for r := 0; r < s; r++ {
		for c := 0; c < s; c++ {
			idx := r*s + c
			mirror := r*s + (s - 1 - c)
			if filled(b, idx) != filled(b, mirror) {
				return false
			}
		}
	}
	return true
}

// isDiagonalReflection reports symmetry across the main diagonal:
// (r,c) mirrors (c,r). A cell on the diagonal mirrors itself, so a clue
// set confined to the diagonal trivially satisfies the per-cell check
// without ever demonstrating a real reflection; such a layout does not
// count as diagonally symmetric unless there are no clues at all.
func isDiagonalReflection(b *core.Board) bool {
	s := b.Size
	clueCount := 0
	offDiagonalClue := false
	for r := 0; r < s; r++ {
		for c := 0; c < s; c++ {
			idx := r*s + c
			mirror := c*s + r
			if filled(b, idx) != filled(b, mirror) {
				return false
			}
			if filled(b, idx) {
				clueCount++
				if r != c {
					offDiagonalClue = true
				}
			}
		}
	}
	return clueCount == 0 || offDiagonalClue
}
