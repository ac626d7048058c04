package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartingFEN is the FEN of the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

func charFromPiece(p Piece) rune {
	letter := rune(p.Letter())
	if p.Color() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// ParseFEN parses Forsyth-Edwards Notation into a Position. Trailing
// halfmove/fullmove fields are optional, defaulting to 0 and 1 as in most
// FEN dialects.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, fmt.Errorf("%w: fen has too few fields", ErrInvalidPosition)
	}

	var b Board
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("%w: fen does not have 8 ranks", ErrInvalidPosition)
	}
	for i, rankStr := range ranks {
		rankIndex := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return Position{}, fmt.Errorf("%w: unrecognized fen piece %q", ErrInvalidPosition, ch)
			}
			if file >= 8 {
				return Position{}, fmt.Errorf("%w: too many squares in fen rank", ErrInvalidPosition)
			}
			b.setPiece(NewSquare(file, rankIndex), piece)
			file++
		}
		if file != 8 {
			return Position{}, fmt.Errorf("%w: fen rank does not total 8 files", ErrInvalidPosition)
		}
	}

	var side Color
	switch fields[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return Position{}, fmt.Errorf("%w: fen side to move must be w or b", ErrInvalidPosition)
	}

	var castling CastlingRights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				castling |= CastleWhiteKingside
			case 'Q':
				castling |= CastleWhiteQueenside
			case 'k':
				castling |= CastleBlackKingside
			case 'q':
				castling |= CastleBlackQueenside
			default:
				return Position{}, fmt.Errorf("%w: invalid fen castling character %q", ErrInvalidPosition, ch)
			}
		}
	}

	enPassant := NoSquare
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("%w: %s", ErrInvalidPosition, err)
		}
		enPassant = sq
	}

	var halfmove, fullmove uint64 = 0, 1
	var err error
	if len(fields) > 4 {
		if halfmove, err = strconv.ParseUint(fields[4], 10, 32); err != nil {
			return Position{}, fmt.Errorf("%w: invalid fen halfmove clock", ErrInvalidPosition)
		}
	}
	if len(fields) > 5 {
		if fullmove, err = strconv.ParseUint(fields[5], 10, 32); err != nil {
			return Position{}, fmt.Errorf("%w: invalid fen fullmove number", ErrInvalidPosition)
		}
	}

	return NewPosition(b, side, castling, enPassant, uint32(halfmove), uint32(fullmove))
}

// ToFEN renders the position back to Forsyth-Edwards Notation.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.board.cells[NewSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(charFromPiece(piece))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	if p.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.castling&CastleWhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if p.castling&CastleWhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&CastleBlackKingside != 0 {
			sb.WriteByte('k')
		}
		if p.castling&CastleBlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	sb.WriteString(p.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(p.halfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(p.fullmoveNumber), 10))
	return sb.String()
}
