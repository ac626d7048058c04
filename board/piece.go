package board

// Piece encodes a chess piece as a colorless type plus a side bit: bit 3 set
// means Black, bits 0-2 give the type in [1..6]. NoPiece is the zero value so
// an empty array of Piece starts empty.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is the colorless kind of a piece, used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

var pieceTypeLetters = [7]byte{0, 'P', 'N', 'B', 'R', 'Q', 'K'}

// Type strips the color bit, returning the colorless piece kind.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color reports which side owns the piece. NoPiece is treated as White;
// callers must not rely on the color of an empty square.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// NewPiece combines a colorless type with a side into a concrete Piece.
func NewPiece(c Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	if c == Black {
		return Piece(pt) | 8
	}
	return Piece(pt)
}

// Letter returns the uppercase algebraic letter for the piece's type
// ('P','N','B','R','Q','K'), or 0 for NoPiece.
func (p Piece) Letter() byte { return pieceTypeLetters[p.Type()] }

// Color represents one side of the board.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other color.
func (c Color) Opponent() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}
