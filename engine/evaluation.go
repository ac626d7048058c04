package engine

import "github.com/corvidchess/corvid/board"

// Material values in centipawns. King is excluded; mate is
// handled entirely by the search.
var pieceValue = [7]int32{
	board.PieceTypeNone:   0,
	board.PieceTypePawn:   100,
	board.PieceTypeKnight: 320,
	board.PieceTypeBishop: 330,
	board.PieceTypeRook:   500,
	board.PieceTypeQueen:  900,
	board.PieceTypeKing:   0,
}

// isolatedPawnPenalty is subtracted from the owning side's score for every
// pawn with no friendly pawn on an adjacent file; some evaluators split this
// into separate middlegame/endgame terms, but this evaluator has no
// game-phase interpolation, so it stays a single flat term.
const isolatedPawnPenalty int32 = 12

// whitePSQT holds one 64-entry table per piece type, indexed by square with
// a1=0 (White's own orientation). Values are added on top of material.
// Table shapes follow the classic "centralize knights/bishops, keep the king
// home in the middlegame" intuition; this is a single-table baseline, with
// no separate middlegame/endgame interpolation.
var whitePSQT = [7][64]int32{
	board.PieceTypePawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.PieceTypeKnight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	board.PieceTypeBishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	board.PieceTypeRook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.PieceTypeQueen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	board.PieceTypeKing: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

// psqtValue returns the piece-square bonus for p standing on sq, mirroring
// the table vertically for Black: Black's table is White's table flipped
// top to bottom.
func psqtValue(p board.Piece, sq board.Square) int32 {
	if p.Color() == board.Black {
		sq = sq.Mirror()
	}
	return whitePSQT[p.Type()][sq]
}

// Evaluate returns a centipawn score from the side-to-move's perspective:
// material plus piece-square tables plus an isolated-pawn penalty,
// aggregated White-centric and then negated for Black to move.
func Evaluate(pos *board.Position) int32 {
	var white, black int32
	var whitePawnFiles, blackPawnFiles [8]int

	for sq := board.Square(0); sq < 64; sq++ {
		p := pos.PieceAt(sq)
		if p == board.NoPiece {
			continue
		}
		value := pieceValue[p.Type()] + psqtValue(p, sq)
		if p.Color() == board.White {
			white += value
			if p.Type() == board.PieceTypePawn {
				whitePawnFiles[sq.File()]++
			}
		} else {
			black += value
			if p.Type() == board.PieceTypePawn {
				blackPawnFiles[sq.File()]++
			}
		}
	}

	white -= isolatedPenalty(whitePawnFiles)
	black -= isolatedPenalty(blackPawnFiles)

	score := white - black
	if pos.SideToMove() == board.Black {
		score = -score
	}
	return score
}

// isolatedPenalty totals the isolated-pawn penalty for one side given its
// per-file pawn counts: a file with pawns and no pawns on either neighbor
// file contributes count*isolatedPawnPenalty.
func isolatedPenalty(files [8]int) int32 {
	var total int32
	for f := 0; f < 8; f++ {
		if files[f] == 0 {
			continue
		}
		left := f > 0 && files[f-1] > 0
		right := f < 7 && files[f+1] > 0
		if !left && !right {
			total += int32(files[f]) * isolatedPawnPenalty
		}
	}
	return total
}
