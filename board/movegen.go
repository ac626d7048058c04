package board

import "math/bits"

// movegen implements pseudo-legal generation per piece kind, filtered to
// legal moves by the make/test-king-safety/unmake pattern rather than by
// pre-filtering pinned pieces. Simplicity over speed: the filter is
// O(moves) king-safety checks, each one an IsSquareAttacked probe against
// the already-updated board.

// LegalMoves returns every legal move available to the side to move. The
// returned slice has no guaranteed order; callers that need a stable order
// (perft, tests) should not rely on one.
func (p *Position) LegalMoves() []Move {
	pseudo := p.pseudoLegalMoves(false)
	legal := make([]Move, 0, len(pseudo))
	us := p.sideToMove
	for _, m := range pseudo {
		p.MakeMove(m)
		kingSq := p.board.KingSquare(us)
		inCheck := kingSq != NoSquare && p.board.IsSquareAttacked(kingSq, us.Opponent())
		p.UnmakeMove()
		if !inCheck {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalCaptures returns the subset of LegalMoves that capture or promote,
// the smaller list quiescence search walks instead of the full move list.
func (p *Position) LegalCaptures() []Move {
	pseudo := p.pseudoLegalMoves(true)
	captures := make([]Move, 0, len(pseudo))
	us := p.sideToMove
	for _, m := range pseudo {
		p.MakeMove(m)
		kingSq := p.board.KingSquare(us)
		inCheck := kingSq != NoSquare && p.board.IsSquareAttacked(kingSq, us.Opponent())
		p.UnmakeMove()
		if !inCheck {
			captures = append(captures, m)
		}
	}
	return captures
}

// pseudoLegalMoves generates every move obeying piece-movement rules,
// ignoring whether it leaves the mover's own king in check. When
// capturesOnly is set, quiet non-promoting moves are skipped (promotions
// are always included since they change material even when not captures).
func (p *Position) pseudoLegalMoves(capturesOnly bool) []Move {
	moves := make([]Move, 0, 48)
	us := p.sideToMove
	them := us.Opponent()
	occ := p.board.occupancy()
	ownOcc := p.board.colorBitboard(us)
	enemyOcc := p.board.colorBitboard(them)

	for sq := Square(0); sq < 64; sq++ {
		piece := p.board.cells[sq]
		if piece == NoPiece || piece.Color() != us {
			continue
		}
		switch piece.Type() {
		case PieceTypePawn:
			p.genPawnMoves(sq, piece, capturesOnly, &moves)
		case PieceTypeKnight:
			p.genOffsetMoves(sq, piece, knightMask[sq], ownOcc, capturesOnly, &moves)
		case PieceTypeKing:
			p.genOffsetMoves(sq, piece, kingMask[sq], ownOcc, capturesOnly, &moves)
			if !capturesOnly {
				p.genCastles(sq, piece, &moves)
			}
		case PieceTypeBishop:
			p.genSliderMoves(sq, piece, bishopDirs, occ, ownOcc, enemyOcc, capturesOnly, &moves)
		case PieceTypeRook:
			p.genSliderMoves(sq, piece, rookDirs, occ, ownOcc, enemyOcc, capturesOnly, &moves)
		case PieceTypeQueen:
			p.genSliderMoves(sq, piece, rookDirs, occ, ownOcc, enemyOcc, capturesOnly, &moves)
			p.genSliderMoves(sq, piece, bishopDirs, occ, ownOcc, enemyOcc, capturesOnly, &moves)
		}
	}
	return moves
}

func (p *Position) genOffsetMoves(from Square, piece Piece, mask, ownOcc uint64, capturesOnly bool, out *[]Move) {
	targets := mask &^ ownOcc
	for targets != 0 {
		to := Square(bits.TrailingZeros64(targets))
		targets &= targets - 1
		captured := p.board.cells[to]
		if capturesOnly && captured == NoPiece {
			continue
		}
		*out = append(*out, NewMove(from, to, piece, captured, NoPiece, FlagNone))
	}
}

func (p *Position) genSliderMoves(from Square, piece Piece, dirs [4][2]int, occ, ownOcc, enemyOcc uint64, capturesOnly bool, out *[]Move) {
	for _, d := range dirs {
		file, rank := from.File()+d[0], from.Rank()+d[1]
		for file >= 0 && file < 8 && rank >= 0 && rank < 8 {
			to := NewSquare(file, rank)
			b := bit(to)
			if b&ownOcc != 0 {
				break
			}
			captured := p.board.cells[to]
			isCapture := captured != NoPiece
			if !capturesOnly || isCapture {
				*out = append(*out, NewMove(from, to, piece, captured, NoPiece, FlagNone))
			}
			if b&occ != 0 {
				break
			}
			file += d[0]
			rank += d[1]
		}
	}
}

var promotionTypes = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

func (p *Position) genPawnMoves(from Square, piece Piece, capturesOnly bool, out *[]Move) {
	us := piece.Color()
	occ := p.board.occupancy()
	enemyOcc := p.board.colorBitboard(us.Opponent())

	var forward, startRank, promoteRank int
	if us == White {
		forward, startRank, promoteRank = 8, 1, 7
	} else {
		forward, startRank, promoteRank = -8, 6, 0
	}

	addPawnMove := func(to Square, captured Piece, flag MoveFlag) {
		if to.Rank() == promoteRank {
			for _, pt := range promotionTypes {
				*out = append(*out, NewMove(from, to, piece, captured, NewPiece(us, pt), flag))
			}
			return
		}
		*out = append(*out, NewMove(from, to, piece, captured, NoPiece, flag))
	}

	oneStep := from + Square(forward)
	if oneStep >= 0 && oneStep < 64 && bit(oneStep)&occ == 0 {
		if !capturesOnly || oneStep.Rank() == promoteRank {
			addPawnMove(oneStep, NoPiece, FlagNone)
		}
		if !capturesOnly && from.Rank() == startRank {
			twoStep := from + Square(2*forward)
			if bit(twoStep)&occ == 0 {
				addPawnMove(twoStep, NoPiece, FlagDoublePawnPush)
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		file := from.File() + df
		if file < 0 || file > 7 {
			continue
		}
		to := from + Square(forward+df)
		if to < 0 || to >= 64 || to.File() != file {
			continue
		}
		if bit(to)&enemyOcc != 0 {
			addPawnMove(to, p.board.cells[to], FlagNone)
		} else if to == p.enPassant {
			addPawnMove(to, NewPiece(us.Opponent(), PieceTypePawn), FlagEnPassant)
		}
	}
}

func (p *Position) genCastles(kingSq Square, king Piece, out *[]Move) {
	us := king.Color()
	them := us.Opponent()
	if p.board.IsSquareAttacked(kingSq, them) {
		return
	}
	occ := p.board.occupancy()

	// emptyMask is every square that must be vacant for the rook's own path
	// (which for the queenside rook includes the b-file square the king
	// never crosses); checkSquares are the squares of the king's own path
	// that must also be unattacked.
	tryRight := func(right CastlingRights, kingTo Square, emptyMask uint64, checkSquares [2]Square, flag MoveFlag) {
		if p.castling&right == 0 {
			return
		}
		if emptyMask&occ != 0 {
			return
		}
		if p.board.IsSquareAttacked(checkSquares[0], them) || p.board.IsSquareAttacked(checkSquares[1], them) {
			return
		}
		*out = append(*out, NewMove(kingSq, kingTo, king, NoPiece, NoPiece, flag))
	}

	if us == White {
		tryRight(CastleWhiteKingside, kingSq+2, bit(kingSq+1)|bit(kingSq+2), [2]Square{kingSq + 1, kingSq + 2}, FlagCastleKingside)
		tryRight(CastleWhiteQueenside, kingSq-2, bit(kingSq-1)|bit(kingSq-2)|bit(kingSq-3), [2]Square{kingSq - 1, kingSq - 2}, FlagCastleQueenside)
	} else {
		tryRight(CastleBlackKingside, kingSq+2, bit(kingSq+1)|bit(kingSq+2), [2]Square{kingSq + 1, kingSq + 2}, FlagCastleKingside)
		tryRight(CastleBlackQueenside, kingSq-2, bit(kingSq-1)|bit(kingSq-2)|bit(kingSq-3), [2]Square{kingSq - 1, kingSq - 2}, FlagCastleQueenside)
	}
}
