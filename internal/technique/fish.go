package technique

import (
	"fmt"

	"github.com/andrew867/sudokugen/internal/core"
)

// fishOrientation selects whether a fish pattern is being hunted across
// rows (looking for column positions) or across columns (looking for row
// positions) — the two are mirror images of each other (spec.md §4.4).
type fishOrientation int

const (
	fishByRow fishOrientation = iota
	fishByCol
)

// positionsFor returns, for the line (row or column) at index `line`,
// the cross-coordinate (column if fishByRow, row if fishByCol) of every
// empty cell that still carries d as a candidate.
func positionsFor(b *core.Board, cg *core.CandidateGrid, orient fishOrientation, line, d int) []int {
	var cells []int
	if orient == fishByRow {
		cells = b.RowCells(line)
	} else {
		cells = b.ColCells(line)
	}
	var positions []int
	for _, idx := range cells {
		if b.Cells[idx] != 0 {
			continue
		}
		if cg.At(idx).Has(d) {
			if orient == fishByRow {
				positions = append(positions, colOf(b, idx))
			} else {
				positions = append(positions, rowOf(b, idx))
			}
		}
	}
	return positions
}

func cellAt(b *core.Board, orient fishOrientation, line, cross int) int {
	if orient == fishByRow {
		return line*b.Size + cross
	}
	return cross*b.Size + line
}

// DetectXWing finds, for some digit, two lines (rows, or mirrored
// columns) each with exactly the same two cross-positions, reported only
// when some other line on that orientation still carries the digit in
// either of those cross-positions (spec.md §4.4).
func DetectXWing(b *core.Board, cg *core.CandidateGrid) []core.Instance {
	var out []core.Instance
	for _, orient := range []fishOrientation{fishByRow, fishByCol} {
		out = append(out, detectFish(b, cg, orient, 2, core.XWing, "X-Wing")...)
	}
	return out
}

// DetectSwordfish finds, for some digit, three lines whose candidate
// cross-positions (2 or 3 each) union to exactly three positions,
// reported only when some other line still carries the digit in one of
// those positions (spec.md §4.4).
func DetectSwordfish(b *core.Board, cg *core.CandidateGrid) []core.Instance {
	var out []core.Instance
	for _, orient := range []fishOrientation{fishByRow, fishByCol} {
		out = append(out, detectFish(b, cg, orient, 3, core.Swordfish, "Swordfish")...)
	}
	return out
}

func detectFish(b *core.Board, cg *core.CandidateGrid, orient fishOrientation, size int, tag core.Tag, name string) []core.Instance {
	var out []core.Instance
	lines := make([]int, b.Size)
	for i := range lines {
		lines[i] = i
	}

	for d := 1; d <= b.Size; d++ {
		// Candidate lines: those whose position count is in [2, size].
		var candidateLines []int
		posByLine := make(map[int][]int)
		for _, line := range lines {
			positions := positionsFor(b, cg, orient, line, d)
			if len(positions) >= 2 && len(positions) <= size {
				candidateLines = append(candidateLines, line)
				posByLine[line] = positions
			}
		}
		for _, combo := range combinations(candidateLines, size) {
			union := make(map[int]bool)
			for _, line := range combo {
				for _, p := range posByLine[line] {
					union[p] = true
				}
			}
			if len(union) != size {
				continue
			}
			crossPositions := make([]int, 0, size)
			for p := range union {
				crossPositions = append(crossPositions, p)
			}
			if !fishIsUseful(b, cg, orient, combo, crossPositions, d) {
				continue
			}
			anchor := cellAt(b, orient, combo[0], crossPositions[0])
			r, c := rowOf(b, anchor), colOf(b, anchor)
			out = append(out, core.Instance{
				Tag: tag, AnchorRow: r, AnchorCol: c,
				Description: fmt.Sprintf("%s on %d across %s", name, d, orientationLabel(orient)),
			})
		}
	}
	return out
}

func fishIsUseful(b *core.Board, cg *core.CandidateGrid, orient fishOrientation, fishLines, crossPositions []int, d int) bool {
	inFish := make(map[int]bool)
	for _, l := range fishLines {
		inFish[l] = true
	}
	for otherLine := 0; otherLine < b.Size; otherLine++ {
		if inFish[otherLine] {
			continue
		}
		for _, cross := range crossPositions {
			idx := cellAt(b, orient, otherLine, cross)
			if b.Cells[idx] == 0 && cg.At(idx).Has(d) {
				return true
			}
		}
	}
	return false
}

func orientationLabel(orient fishOrientation) string {
	if orient == fishByRow {
		return "rows"
	}
	return "columns"
}
