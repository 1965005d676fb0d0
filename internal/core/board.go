package core

import "strings"

// Board is a square grid of side Size partitioned into Size boxes of
// shape BoxRows x BoxCols, where BoxRows*BoxCols == Size. Cells hold a
// digit in [0, Size], 0 meaning empty. The grid is dense: every index in
// [0, Size*Size) is addressable, there are no holes in storage (an empty
// cell is simply a zero, not an absence).
//
// Box geometry is fixed at construction and never changes for the
// lifetime of a Board. Mutation is by linear index only; row/col are
// derived, never stored separately.
type Board struct {
	Size    int
	BoxRows int
	BoxCols int
	Cells   []int // len == Size*Size, row-major
}

// NewBoard creates an empty board of the given geometry. It fails with a
// *ShapeError (wrapping ErrInvalidShape) when boxRows*boxCols != size.
func NewBoard(size, boxRows, boxCols int) (*Board, error) {
	if boxRows*boxCols != size || size <= 0 || boxRows <= 0 || boxCols <= 0 {
		return nil, &ShapeError{Size: size, BoxRows: boxRows, BoxCols: boxCols}
	}
	return &Board{
		Size:    size,
		BoxRows: boxRows,
		BoxCols: boxCols,
		Cells:   make([]int, size*size),
	}, nil
}

// NewBoardFromDigits creates a board of the given geometry, pre-filled
// with digits in row-major order. len(digits) must equal size*size;
// values are copied verbatim (callers are responsible for range
// validity — use ParseBoard for untrusted textual input).
func NewBoardFromDigits(size, boxRows, boxCols int, digits []int) (*Board, error) {
	b, err := NewBoard(size, boxRows, boxCols)
	if err != nil {
		return nil, err
	}
	copy(b.Cells, digits)
	return b, nil
}

// ParseBoard parses the textual puzzle form defined in spec.md §6: a
// size^2-character string where '1'..'9' are digit values and '.' or '0'
// are empty. Excess characters are ignored; short input is zero-padded.
// Only defined for size<=9. Out-of-range characters are recorded in the
// returned *InvalidInputError (non-nil only when at least one offense
// occurred) and substituted with empty; the Board is always returned,
// valid or not.
func ParseBoard(size, boxRows, boxCols int, s string) (*Board, *InvalidInputError, error) {
	if size > 9 {
		return nil, nil, &ShapeError{Size: size, BoxRows: boxRows, BoxCols: boxCols}
	}
	b, err := NewBoard(size, boxRows, boxCols)
	if err != nil {
		return nil, nil, err
	}
	var offenses []InputOffense
	runes := []rune(s)
	for i := 0; i < size*size; i++ {
		if i >= len(runes) {
			b.Cells[i] = 0
			continue
		}
		r := runes[i]
		switch {
		case r == '.' || r == '0':
			b.Cells[i] = 0
		case r >= '1' && r <= '9' && int(r-'0') <= size:
			b.Cells[i] = int(r - '0')
		default:
			offenses = append(offenses, InputOffense{Index: i, Rune: r})
			b.Cells[i] = 0
		}
	}
	var report *InvalidInputError
	if len(offenses) > 0 {
		report = &InvalidInputError{Offenses: offenses}
	}
	return b, report, nil
}

// String renders the board in the textual form of spec.md §6. Only
// meaningful for Size<=9; digits above 9 are rendered as '?'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b.Cells))
	for _, v := range b.Cells {
		switch {
		case v == 0:
			sb.WriteByte('.')
		case v >= 1 && v <= 9:
			sb.WriteByte(byte('0' + v))
		default:
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// Get returns the digit at (row, col). Out-of-range coordinates are a
// programmer error, per spec.md §4.1; callers must stay in bounds.
func (b *Board) Get(row, col int) int {
	return b.Cells[row*b.Size+col]
}

// Set writes digit at (row, col).
func (b *Board) Set(row, col, digit int) {
	b.Cells[row*b.Size+col] = digit
}

// GetAt returns the digit at linear index idx.
func (b *Board) GetAt(idx int) int {
	return b.Cells[idx]
}

// SetAt writes digit at linear index idx.
func (b *Board) SetAt(idx, digit int) {
	b.Cells[idx] = digit
}

// BoxIndex returns the box index for (row, col): (row/BoxRows)*(Size/BoxCols) + col/BoxCols.
func (b *Board) BoxIndex(row, col int) int {
	return (row/b.BoxRows)*(b.Size/b.BoxCols) + col/b.BoxCols
}

// BoxIndexAt returns the box index for a linear cell index.
func (b *Board) BoxIndexAt(idx int) int {
	return b.BoxIndex(idx/b.Size, idx%b.Size)
}

// BoxCells enumerates, in row-major order, the linear indices of every
// cell belonging to box.
func (b *Board) BoxCells(box int) []int {
	boxesPerRow := b.Size / b.BoxCols
	boxRow := (box / boxesPerRow) * b.BoxRows
	boxCol := (box % boxesPerRow) * b.BoxCols
	cells := make([]int, 0, b.Size)
	for r := boxRow; r < boxRow+b.BoxRows; r++ {
		for c := boxCol; c < boxCol+b.BoxCols; c++ {
			cells = append(cells, r*b.Size+c)
		}
	}
	return cells
}

// RowCells enumerates the linear indices of row.
func (b *Board) RowCells(row int) []int {
	cells := make([]int, b.Size)
	for c := 0; c < b.Size; c++ {
		cells[c] = row*b.Size + c
	}
	return cells
}

// ColCells enumerates the linear indices of col.
func (b *Board) ColCells(col int) []int {
	cells := make([]int, b.Size)
	for r := 0; r < b.Size; r++ {
		cells[r] = r*b.Size + col
	}
	return cells
}

// Clue is one pre-filled cell: its linear index and digit.
type Clue struct {
	Index int
	Digit int
}

// Clues enumerates every non-empty cell in row-major order.
func (b *Board) Clues() []Clue {
	var clues []Clue
	for i, v := range b.Cells {
		if v != 0 {
			clues = append(clues, Clue{Index: i, Digit: v})
		}
	}
	return clues
}

// ClueCount returns the number of non-empty cells.
func (b *Board) ClueCount() int {
	n := 0
	for _, v := range b.Cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// EmptyCells enumerates the linear indices of every empty cell.
func (b *Board) EmptyCells() []int {
	var cells []int
	for i, v := range b.Cells {
		if v == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// IsComplete returns true when no cell is empty.
func (b *Board) IsComplete() bool {
	for _, v := range b.Cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{
		Size:    b.Size,
		BoxRows: b.BoxRows,
		BoxCols: b.BoxCols,
		Cells:   make([]int, len(b.Cells)),
	}
	copy(nb.Cells, b.Cells)
	return nb
}

// HasUnitConflicts reports whether any row, column, or box contains the
// same digit twice. It is a defensive check, not part of the hot solving
// path (spec.md §4.8 step 4).
func (b *Board) HasUnitConflicts() bool {
	seen := make([]bool, b.Size+1)
	checkUnit := func(cells []int) bool {
		for i := range seen {
			seen[i] = false
		}
		for _, idx := range cells {
			v := b.Cells[idx]
			if v == 0 {
				continue
			}
			if seen[v] {
				return true
			}
			seen[v] = true
		}
		return false
	}
	for r := 0; r < b.Size; r++ {
		if checkUnit(b.RowCells(r)) {
			return true
		}
	}
	for c := 0; c < b.Size; c++ {
		if checkUnit(b.ColCells(c)) {
			return true
		}
	}
	for bx := 0; bx < b.Size; bx++ {
		if checkUnit(b.BoxCells(bx)) {
			return true
		}
	}
	return false
}
