package solver

import "github.com/andrew867/sudokugen/internal/core"

// assignment is one undo-log entry: enough to reverse a single placement
// on both the board and the constraint masks without re-deriving either.
type assignment struct {
	idx, digit, row, col, box int
}

// search holds one solve/countSolutions invocation's mutable state: a
// working board mutated in place, the ConstraintMasks kept incrementally
// in step with it via Place/Unplace, an undo log recording every
// assignment so backtracking never re-derives either, and the metrics
// being accumulated.
type search struct {
	board         *core.Board
	cm            *core.ConstraintMasks
	limit         int
	metrics       core.SolverMetrics
	solutionCount int
	firstSolution *core.Board

	// undo is a LIFO log of assignments made so far; reverting pops
	// entries, resets the cell to empty, and restores the masks.
	undo []assignment
}

func newSearch(puzzle *core.Board, limit int) *search {
	board := puzzle.Clone()
	return &search{
		board: board,
		cm:    core.NewConstraintMasks(board),
		limit: limit,
	}
}

func (s *search) run() {
	if s.board.HasUnitConflicts() {
		return
	}
	s.solveRec()
}

// solveRec is the one recursive routine of spec.md §4.3. It returns true
// when the caller should stop searching (solutionCount has reached
// limit).
func (s *search) solveRec() bool {
	s.metrics.IterationCount++
	s.metrics.CurrentDepth++
	if s.metrics.CurrentDepth > s.metrics.MaxBacktrackDepth {
		s.metrics.MaxBacktrackDepth = s.metrics.CurrentDepth
	}
	defer func() { s.metrics.CurrentDepth-- }()

	mark := len(s.undo)

	if !s.propagate() {
		s.undoTo(mark)
		return false
	}

	if s.board.IsComplete() {
		if s.firstSolution == nil {
			s.firstSolution = s.board.Clone()
		}
		s.solutionCount++
		stop := s.solutionCount >= s.limit
		s.undoTo(mark)
		return stop
	}

	idx, cand := s.pickMostConstrained()
	s.metrics.GuessCount++

	for _, d := range cand.Digits() {
		s.place(idx, d)
		if s.solveRec() {
			return true
		}
		s.unplace(idx)
	}

	s.undoTo(mark)
	return false
}

// propagate runs the unit-propagation fixpoint of spec.md §4.3 step 1:
// repeatedly scan s.cm (kept current via place) and place every naked
// single found, until a pass places nothing. The whole fixpoint loop
// counts as exactly one propagation cycle, the contract the rater relies
// on. Returns false the moment any empty cell is found with an empty
// candidate mask (a dead end).
func (s *search) propagate() bool {
	s.metrics.PropagationCycles++

	type pending struct{ idx, digit int }

	for {
		var singles []pending

		for idx, v := range s.board.Cells {
			if v != 0 {
				continue
			}
			row, col := idx/s.board.Size, idx%s.board.Size
			box := s.board.BoxIndex(row, col)
			cand := s.cm.CandidateAt(row, col, box)
			if cand.IsEmpty() {
				return false
			}
			if d, ok := cand.Only(); ok {
				singles = append(singles, pending{idx, d})
			}
		}

		if len(singles) == 0 {
			return true
		}
		for _, p := range singles {
			if s.board.GetAt(p.idx) != 0 {
				continue // filled earlier in this same pass
			}
			s.place(p.idx, p.digit)
		}
	}
}

// pickMostConstrained finds the empty cell with the smallest candidate
// count, ties broken by row-major scan order (spec.md §4.3 step 3). The
// caller guarantees propagate() already ran to a fixpoint, so every
// returned count is >= 2.
func (s *search) pickMostConstrained() (int, core.Mask) {
	bestIdx := -1
	var bestMask core.Mask
	bestCount := s.board.Size + 1

	for idx, v := range s.board.Cells {
		if v != 0 {
			continue
		}
		row, col := idx/s.board.Size, idx%s.board.Size
		box := s.board.BoxIndex(row, col)
		cand := s.cm.CandidateAt(row, col, box)
		if c := cand.Count(); c < bestCount {
			bestCount = c
			bestIdx = idx
			bestMask = cand
		}
	}
	return bestIdx, bestMask
}

// place assigns digit at idx on both the board and the constraint masks,
// logging enough to reverse it later via undoTo.
func (s *search) place(idx, digit int) {
	row, col := idx/s.board.Size, idx%s.board.Size
	box := s.board.BoxIndex(row, col)
	s.board.SetAt(idx, digit)
	s.cm.Place(row, col, box, digit)
	s.undo = append(s.undo, assignment{idx, digit, row, col, box})
}

// unplace reverses the single most recent assignment (the guess at idx)
// on both the board and the masks.
func (s *search) unplace(idx int) {
	a := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.board.SetAt(a.idx, 0)
	s.cm.Unplace(a.row, a.col, a.box, a.digit)
}

// undoTo reverts every assignment recorded since mark, in reverse order,
// restoring both the board and the masks.
func (s *search) undoTo(mark int) {
	for len(s.undo) > mark {
		a := s.undo[len(s.undo)-1]
		s.undo = s.undo[:len(s.undo)-1]
		s.board.SetAt(a.idx, 0)
		s.cm.Unplace(a.row, a.col, a.box, a.digit)
	}
}
