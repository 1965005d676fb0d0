package technique

import (
	"fmt"

	"github.com/andrew867/sudokugen/internal/core"
)

// DetectNakedSingles finds every empty cell with exactly one candidate
// (spec.md §4.4: always useful).
func DetectNakedSingles(b *core.Board, cg *core.CandidateGrid) []core.Instance {
	var out []core.Instance
	for idx, v := range b.Cells {
		if v != 0 {
			continue
		}
		if d, ok := cg.At(idx).Only(); ok {
			r, c := rowOf(b, idx), colOf(b, idx)
			out = append(out, core.Instance{
				Tag: core.NakedSingle, AnchorRow: r, AnchorCol: c,
				Description: fmt.Sprintf("Naked Single: R%dC%d can only be %d", r+1, c+1, d),
			})
		}
	}
	return out
}

// HasNakedSingle is a cheap probe for the autosolver fast path.
func HasNakedSingle(b *core.Board, cg *core.CandidateGrid) bool {
	for idx, v := range b.Cells {
		if v != 0 {
			continue
		}
		if _, ok := cg.At(idx).Only(); ok {
			return true
		}
	}
	return false
}

// DetectHiddenSingles finds, for every unit, any digit that has exactly
// one candidate cell within that unit (spec.md §4.4: always useful).
//
// Deduplication follows spec.md §9's open-question resolution: a hidden
// single found as a row instance is suppressed when the same (row, col)
// is found again via the overlapping column or box, checking position
// only — not digit — even though a stricter (cell, digit) key would be
// cleaner. Row is checked before column before box.
func DetectHiddenSingles(b *core.Board, cg *core.CandidateGrid) []core.Instance {
	var out []core.Instance
	seen := make(map[int]bool) // cell index -> already reported

	report := func(idx, digit int, unitType string, unitNum int) {
		if seen[idx] {
			return
		}
		seen[idx] = true
		r, c := rowOf(b, idx), colOf(b, idx)
		out = append(out, core.Instance{
			Tag: core.HiddenSingle, AnchorRow: r, AnchorCol: c,
			Description: fmt.Sprintf("Hidden Single: %d can only go in R%dC%d within %s %d", digit, r+1, c+1, unitType, unitNum+1),
		})
	}

	scanKind := func(kind core.UnitKind, label string) {
		for _, unit := range AllUnits(b) {
			if unit.Kind != kind {
				continue
			}
			for d := 1; d <= b.Size; d++ {
				var only int = -1
				count := 0
				for _, idx := range unit.Cells {
					if b.Cells[idx] != 0 {
						continue
					}
					if cg.At(idx).Has(d) {
						count++
						only = idx
					}
				}
				if count == 1 {
					report(only, d, label, unit.Index)
				}
			}
		}
	}

	scanKind(core.UnitRow, "row")
	scanKind(core.UnitCol, "column")
	scanKind(core.UnitBox, "box")

	return out
}

// HasHiddenSingle is a cheap probe.
func HasHiddenSingle(b *core.Board, cg *core.CandidateGrid) bool {
	return len(DetectHiddenSingles(b, cg)) > 0
}
