package board

import "fmt"

// Move packs a move into a 32-bit value: from/to squares, the moving and
// captured piece, the promotion piece, and a small flag field. Packing into
// a value type (rather than a struct with a captured-piece pointer or a
// class hierarchy per move kind) keeps move generation allocation-free.
type Move uint32

const (
	moveFromShift    = 0
	moveToShift      = 6
	movePieceShift   = 12
	moveCaptureShift = 16
	movePromoteShift = 20
	moveFlagShift    = 24

	moveSquareMask = 0x3F
	movePieceMask  = 0xF
	moveFlagMask   = 0x7
)

// MoveFlag tags the special cases a plain from/to/piece move doesn't cover.
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	FlagDoublePawnPush
	FlagEnPassant
	FlagCastleKingside
	FlagCastleQueenside
)

// NewMove packs a move's components. captured is NoPiece for quiet moves;
// promotion is NoPiece unless the move promotes a pawn.
func NewMove(from, to Square, piece, captured, promotion Piece, flag MoveFlag) Move {
	return Move(uint32(from)&moveSquareMask |
		(uint32(to)&moveSquareMask)<<moveToShift |
		(uint32(piece)&movePieceMask)<<movePieceShift |
		(uint32(captured)&movePieceMask)<<moveCaptureShift |
		(uint32(promotion)&movePieceMask)<<movePromoteShift |
		(uint32(flag)&moveFlagMask)<<moveFlagShift)
}

func (m Move) From() Square           { return Square(uint32(m)>>moveFromShift) & moveSquareMask }
func (m Move) To() Square             { return Square(uint32(m)>>moveToShift) & moveSquareMask }
func (m Move) MovedPiece() Piece      { return Piece(uint32(m)>>movePieceShift) & movePieceMask }
func (m Move) CapturedPiece() Piece   { return Piece(uint32(m)>>moveCaptureShift) & movePieceMask }
func (m Move) PromotionPiece() Piece  { return Piece(uint32(m)>>movePromoteShift) & movePieceMask }
func (m Move) Flag() MoveFlag         { return MoveFlag(uint32(m)>>moveFlagShift) & moveFlagMask }

// IsCapture reports whether the move removes an enemy piece, including en
// passant (whose captured piece is recorded even though the destination
// square it vacates differs from the capture square).
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.PromotionPiece() != NoPiece }

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flag() == FlagCastleKingside || m.Flag() == FlagCastleQueenside
}

// IsQuiet reports whether the move is neither a capture nor a promotion;
// these are the moves eligible for killer-slot storage.
func (m Move) IsQuiet() bool { return !m.IsCapture() && !m.IsPromotion() }

// String renders the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if promo := m.PromotionPiece(); promo != NoPiece {
		s += string(promo.Letter() | 0x20) // lowercase
	}
	return s
}

// ParseLongAlgebraic parses a move of the form "e2e4" or "e7e8q". It does
// not validate legality against any position; callers match the result
// against Position.LegalMoves to recover full move metadata (flags,
// captured piece) before applying it.
func ParseLongAlgebraic(text string) (from, to Square, promotion PieceType, err error) {
	if len(text) < 4 || len(text) > 5 {
		return NoSquare, NoSquare, PieceTypeNone, fmt.Errorf("board: invalid move text %q", text)
	}
	from, err = ParseSquare(text[0:2])
	if err != nil {
		return NoSquare, NoSquare, PieceTypeNone, err
	}
	to, err = ParseSquare(text[2:4])
	if err != nil {
		return NoSquare, NoSquare, PieceTypeNone, err
	}
	if len(text) == 5 {
		switch text[4] {
		case 'n':
			promotion = PieceTypeKnight
		case 'b':
			promotion = PieceTypeBishop
		case 'r':
			promotion = PieceTypeRook
		case 'q':
			promotion = PieceTypeQueen
		default:
			return NoSquare, NoSquare, PieceTypeNone, fmt.Errorf("board: invalid promotion %q", text)
		}
	}
	return from, to, promotion, nil
}
