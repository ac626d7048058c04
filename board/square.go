package board

import "fmt"

// Square is a board cell, 0..63, with square 0 = a1 and square 63 = h8
// (little-endian rank-file mapping, the layout bitboard engines commonly use).
type Square int8

// NoSquare marks the absence of a square, e.g. no en-passant target.
const NoSquare Square = -1

// NewSquare builds a Square from zero-based file (0=a..7=h) and rank (0=1..7=8).
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// File returns the file, 0 (a) through 7 (h).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the rank, 0 (rank 1) through 7 (rank 8).
func (s Square) Rank() int { return int(s) / 8 }

// Mirror returns the square reflected across the board's horizontal axis,
// used to flip White piece-square tables into Black's perspective.
func (s Square) Mirror() Square { return NewSquare(s.File(), 7-s.Rank()) }

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if s == NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}

// ParseSquare parses algebraic notation such as "e4" back into a Square.
func ParseSquare(text string) (Square, error) {
	if text == "-" {
		return NoSquare, nil
	}
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("board: invalid square %q", text)
	}
	file := int(text[0] - 'a')
	rank := int(text[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("board: invalid square %q", text)
	}
	return NewSquare(file, rank), nil
}
