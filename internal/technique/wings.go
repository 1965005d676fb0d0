package technique

import (
	"fmt"

	"github.com/andrew867/sudokugen/internal/core"
)

type wingCandidate struct {
	idx    int
	shared int // the digit this wing shares with the pivot
	other  int // the wing's other digit (the candidate C would eliminate)
}

// DetectXYWing finds, for every bivalue pivot cell {A,B}, two bivalue
// wing cells {A,C} and {B,C} that each see the pivot, reported only when
// some cell sees both wings and still carries C as a candidate (spec.md
// §4.4, and §9's open question: no further productivity check beyond
// that is required).
func DetectXYWing(b *core.Board, cg *core.CandidateGrid) []core.Instance {
	var out []core.Instance
	for pivot, v := range b.Cells {
		if v != 0 || cg.At(pivot).Count() != 2 {
			continue
		}
		pivotMask := cg.At(pivot)

		var wings []wingCandidate
		for idx, v2 := range b.Cells {
			if v2 != 0 || idx == pivot || cg.At(idx).Count() != 2 {
				continue
			}
			if !cellsCanSeeEachOther(b, pivot, idx) {
				continue
			}
			shared := cg.At(idx) & pivotMask
			if shared.Count() != 1 {
				continue
			}
			s, _ := shared.Only()
			other := cg.At(idx) &^ shared
			o, ok := other.Only()
			if !ok {
				continue
			}
			wings = append(wings, wingCandidate{idx: idx, shared: s, other: o})
		}

		for i := 0; i < len(wings); i++ {
			for j := i + 1; j < len(wings); j++ {
				w1, w2 := wings[i], wings[j]
				if w1.shared == w2.shared || w1.other != w2.other {
					continue
				}
				c := w1.other
				if anyOtherCellSeesAndHas(b, cg, []int{pivot, w1.idx, w2.idx}, []int{w1.idx, w2.idx}, c) {
					r, cc := rowOf(b, pivot), colOf(b, pivot)
					out = append(out, core.Instance{
						Tag: core.XYWing, AnchorRow: r, AnchorCol: cc,
						Description: fmt.Sprintf("XY-Wing pivot R%dC%d eliminates %d", r+1, cc+1, c),
					})
				}
			}
		}
	}
	return out
}

// DetectXYZWing finds, for every trivalue pivot cell {A,B,C}, two
// bivalue wings {A,C} and {B,C} that both see the pivot, reported only
// when some cell sees the pivot and both wings and still carries C as a
// candidate (spec.md §4.4).
func DetectXYZWing(b *core.Board, cg *core.CandidateGrid) []core.Instance {
	var out []core.Instance
	for pivot, v := range b.Cells {
		if v != 0 || cg.At(pivot).Count() != 3 {
			continue
		}
		pivotMask := cg.At(pivot)

		var wings []int
		for idx, v2 := range b.Cells {
			if v2 != 0 || idx == pivot || cg.At(idx).Count() != 2 {
				continue
			}
			if !cellsCanSeeEachOther(b, pivot, idx) {
				continue
			}
			if cg.At(idx)&pivotMask != cg.At(idx) {
				continue // wing's digits must be a subset of the pivot's
			}
			wings = append(wings, idx)
		}

		for i := 0; i < len(wings); i++ {
			for j := i + 1; j < len(wings); j++ {
				w1, w2 := wings[i], wings[j]
				common := cg.At(w1) & cg.At(w2)
				c, ok := common.Only()
				if !ok {
					continue
				}
				if anyOtherCellSeesAndHas(b, cg, []int{pivot, w1, w2}, []int{pivot, w1, w2}, c) {
					r, cc := rowOf(b, pivot), colOf(b, pivot)
					out = append(out, core.Instance{
						Tag: core.XYZWing, AnchorRow: r, AnchorCol: cc,
						Description: fmt.Sprintf("XYZ-Wing pivot R%dC%d eliminates %d", r+1, cc+1, c),
					})
				}
			}
		}
	}
	return out
}

// anyOtherCellSeesAndHas reports whether some empty cell, other than
// those in exclude, sees every cell in mustSee and still carries digit
// as a candidate.
func anyOtherCellSeesAndHas(b *core.Board, cg *core.CandidateGrid, exclude, mustSee []int, digit int) bool {
	excluded := make(map[int]bool, len(exclude))
	for _, idx := range exclude {
		excluded[idx] = true
	}
	for idx, v := range b.Cells {
		if v != 0 || excluded[idx] {
			continue
		}
		if !cg.At(idx).Has(digit) {
			continue
		}
		if seesAll(b, idx, mustSee...) {
			return true
		}
	}
	return false
}
