package technique

import (
	"fmt"

	"github.com/andrew867/sudokugen/internal/core"
)

// DetectNakedPairs finds, in every unit, two cells sharing the same
// two-candidate mask, reported only when useful: some other cell in that
// unit still carries one of the pair's two digits as a candidate
// (spec.md §4.4).
func DetectNakedPairs(b *core.Board, cg *core.CandidateGrid) []core.Instance {
	var out []core.Instance
	for _, unit := range AllUnits(b) {
		var pairCells []int
		for _, idx := range unit.Cells {
			if b.Cells[idx] == 0 && cg.At(idx).Count() == 2 {
				pairCells = append(pairCells, idx)
			}
		}
		for _, combo := range combinations(pairCells, 2) {
			i1, i2 := combo[0], combo[1]
			m1, m2 := cg.At(i1), cg.At(i2)
			if m1 != m2 {
				continue
			}
			if !pairIsUseful(b, cg, unit.Cells, i1, i2, m1) {
				continue
			}
			r1, c1 := rowOf(b, i1), colOf(b, i1)
			r2, c2 := rowOf(b, i2), colOf(b, i2)
			digits := m1.Digits()
			out = append(out, core.Instance{
				Tag: core.NakedPair, AnchorRow: r1, AnchorCol: c1,
				Description: fmt.Sprintf("Naked Pair {%d,%d} at R%dC%d and R%dC%d in %s %d",
					digits[0], digits[1], r1+1, c1+1, r2+1, c2+1, unit.Kind.String(), unit.Index+1),
			})
		}
	}
	return out
}

func pairIsUseful(b *core.Board, cg *core.CandidateGrid, unitCells []int, i1, i2 int, pair core.Mask) bool {
	for _, idx := range unitCells {
		if idx == i1 || idx == i2 || b.Cells[idx] != 0 {
			continue
		}
		if cg.At(idx)&pair != 0 {
			return true
		}
	}
	return false
}

// DetectHiddenPairs finds, in every unit, two digits that appear as
// candidates in exactly the same two cells, reported only when at least
// one of those cells carries more than the two digits as candidates
// (spec.md §4.4: the extra candidate is what makes the pair useful — its
// elimination is implied).
func DetectHiddenPairs(b *core.Board, cg *core.CandidateGrid) []core.Instance {
	var out []core.Instance
	for _, unit := range AllUnits(b) {
		positions := make(map[int][]int) // digit -> cell indices
		for d := 1; d <= b.Size; d++ {
			for _, idx := range unit.Cells {
				if b.Cells[idx] == 0 && cg.At(idx).Has(d) {
					positions[d] = append(positions[d], idx)
				}
			}
		}
		var twoDigitDigits []int
		for d, cells := range positions {
			if len(cells) == 2 {
				twoDigitDigits = append(twoDigitDigits, d)
			}
		}
		for _, combo := range combinations(twoDigitDigits, 2) {
			d1, d2 := combo[0], combo[1]
			p1, p2 := positions[d1], positions[d2]
			if !sameCellPair(p1, p2) {
				continue
			}
			i1, i2 := p1[0], p1[1]
			if cg.At(i1).Count() <= 2 && cg.At(i2).Count() <= 2 {
				continue // nothing extra to eliminate
			}
			r1, c1 := rowOf(b, i1), colOf(b, i1)
			r2, c2 := rowOf(b, i2), colOf(b, i2)
			out = append(out, core.Instance{
				Tag: core.HiddenPair, AnchorRow: r1, AnchorCol: c1,
				Description: fmt.Sprintf("Hidden Pair {%d,%d} at R%dC%d and R%dC%d in %s %d",
					d1, d2, r1+1, c1+1, r2+1, c2+1, unit.Kind.String(), unit.Index+1),
			})
		}
	}
	return out
}

func sameCellPair(a, b []int) bool {
	if len(a) != 2 || len(b) != 2 {
		return false
	}
	return a[0] == b[0] && a[1] == b[1]
}
