package core

import "math/bits"

// Mask is a bitmask of width Size; bit (d-1) set means digit d may still
// be placed in the unit the mask belongs to (row, column, or box), i.e.
// the digit has not yet been placed there. uint32 comfortably covers the
// largest supported board (Size=16, bits 0..15).
type Mask uint32

// FullMask returns a mask with the lowest `size` bits set — the initial
// state of every unit mask before any placement is recorded.
func FullMask(size int) Mask {
	return Mask((1 << uint(size)) - 1)
}

// Has reports whether digit d is set in the mask.
func (m Mask) Has(d int) bool {
	return m&(1<<uint(d-1)) != 0
}

// Set returns m with digit d set.
func (m Mask) Set(d int) Mask {
	return m | (1 << uint(d-1))
}

// Clear returns m with digit d cleared.
func (m Mask) Clear(d int) Mask {
	return m &^ (1 << uint(d-1))
}

// Count returns the population count of m (the number of candidate digits).
func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// IsEmpty reports whether no bit is set.
func (m Mask) IsEmpty() bool {
	return m == 0
}

// Only returns the single digit set in m, or (0, false) if m does not
// have exactly one bit set.
func (m Mask) Only() (int, bool) {
	if m == 0 || m&(m-1) != 0 {
		return 0, false
	}
	return bits.TrailingZeros32(uint32(m)) + 1, true
}

// Digits returns the set digits of m in ascending order.
func (m Mask) Digits() []int {
	digits := make([]int, 0, m.Count())
	for d := 1; uint32(1)<<uint(d-1) <= uint32(m); d++ {
		if m.Has(d) {
			digits = append(digits, d)
		}
	}
	return digits
}

// ConstraintMasks holds the three unit-mask arrays derived from a Board:
// one mask per row, column, and box, indexed by unit number. They are
// always consistent with the Board they were derived from at the moment
// of derivation — they do not update automatically on further mutation;
// callers re-derive (or maintain incrementally, as the solver does) as
// needed.
type ConstraintMasks struct {
	Row []Mask
	Col []Mask
	Box []Mask
}

// NewConstraintMasks derives ConstraintMasks from the current state of b.
// Initializes every unit mask to the full set, then clears bit d-1 from a
// cell's row/col/box mask for every placed digit d.
func NewConstraintMasks(b *Board) *ConstraintMasks {
	cm := &ConstraintMasks{
		Row: make([]Mask, b.Size),
		Col: make([]Mask, b.Size),
		Box: make([]Mask, b.Size),
	}
	full := FullMask(b.Size)
	for i := range cm.Row {
		cm.Row[i] = full
		cm.Col[i] = full
		cm.Box[i] = full
	}
	for idx, v := range b.Cells {
		if v == 0 {
			continue
		}
		row, col := idx/b.Size, idx%b.Size
		box := b.BoxIndex(row, col)
		cm.Row[row] = cm.Row[row].Clear(v)
		cm.Col[col] = cm.Col[col].Clear(v)
		cm.Box[box] = cm.Box[box].Clear(v)
	}
	return cm
}

// Place records digit v at (row, col, box) by clearing it from all three
// unit masks — used by the solver to maintain masks incrementally instead
// of re-deriving from scratch after every assignment.
func (cm *ConstraintMasks) Place(row, col, box, v int) {
	cm.Row[row] = cm.Row[row].Clear(v)
	cm.Col[col] = cm.Col[col].Clear(v)
	cm.Box[box] = cm.Box[box].Clear(v)
}

// Unplace reverses Place, restoring v as a candidate in all three units.
func (cm *ConstraintMasks) Unplace(row, col, box, v int) {
	cm.Row[row] = cm.Row[row].Set(v)
	cm.Col[col] = cm.Col[col].Set(v)
	cm.Box[box] = cm.Box[box].Set(v)
}

// CandidateAt returns the candidate mask for the cell at (row, col, box):
// the bitwise AND of its row, column, and box masks. For a filled cell
// this is meaningless (the caller must check Board.Get first); the
// ConstraintMasks type itself does not track fill state.
func (cm *ConstraintMasks) CandidateAt(row, col, box int) Mask {
	return cm.Row[row] & cm.Col[col] & cm.Box[box]
}

// CandidateGrid is a per-cell bitmask over an entire board: for an empty
// cell at (r,c) it equals maskRow[r] & maskCol[c] & maskBox[box(r,c)]; for
// a filled cell it is zero.
type CandidateGrid struct {
	Size int
	Mask []Mask // len == Size*Size
}

// NewCandidateGrid computes the full per-cell candidate grid for b, using
// freshly-derived ConstraintMasks.
func NewCandidateGrid(b *Board) *CandidateGrid {
	cm := NewConstraintMasks(b)
	return NewCandidateGridFromMasks(b, cm)
}

// NewCandidateGridFromMasks computes the per-cell candidate grid for b
// using already-derived ConstraintMasks, avoiding a redundant re-scan of
// the board.
func NewCandidateGridFromMasks(b *Board, cm *ConstraintMasks) *CandidateGrid {
	cg := &CandidateGrid{Size: b.Size, Mask: make([]Mask, len(b.Cells))}
	for idx := range b.Cells {
		if b.Cells[idx] != 0 {
			cg.Mask[idx] = 0
			continue
		}
		row, col := idx/b.Size, idx%b.Size
		box := b.BoxIndex(row, col)
		cg.Mask[idx] = cm.CandidateAt(row, col, box)
	}
	return cg
}

// At returns the candidate mask at linear index idx.
func (cg *CandidateGrid) At(idx int) Mask {
	return cg.Mask[idx]
}
