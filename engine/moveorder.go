package engine

import (
	"sort"

	"github.com/corvidchess/corvid/board"
)

// mvvLva scores a capture by victim value (high) minus a small fraction of
// attacker value (low): "most valuable victim, least valuable attacker".
// This derives the ranking from pieceValue directly instead of a separate
// hand-tuned table.
func mvvLva(victim, attacker board.Piece) int32 {
	return pieceValue[victim.Type()]*16 - pieceValue[attacker.Type()]
}

// Priority tiers, highest first: TT best move, the previous iteration's PV
// move at this ply, captures by MVV-LVA, killer moves at this ply, then
// remaining quiet moves.
const (
	orderTT      int32 = 6_000_000
	orderPV      int32 = 5_000_000
	orderCapture int32 = 3_000_000
	orderKiller1 int32 = 2_000_000
	orderKiller2 int32 = 1_900_000
)

// orderMoves sorts moves in place from highest to lowest search priority.
// ttMove/pvMove are zero-value board.Move when absent; callers pass hasTT/
// hasPV to disambiguate from a legitimately zero-valued move.
func orderMoves(moves []board.Move, ttMove board.Move, hasTT bool, pvMove board.Move, hasPV bool, killers *killerTable, ply int) {
	type scored struct {
		move  board.Move
		score int32
	}
	list := make([]scored, len(moves))
	for i, m := range moves {
		s := scored{move: m}
		switch {
		case hasTT && m == ttMove:
			s.score = orderTT
		case hasPV && m == pvMove:
			s.score = orderPV
		case m.IsCapture():
			s.score = orderCapture + mvvLva(m.CapturedPiece(), m.MovedPiece())
		case killers != nil && ply >= 0 && ply < maxPly && killers.moves[ply][0] == m:
			s.score = orderKiller1
		case killers != nil && ply >= 0 && ply < maxPly && killers.moves[ply][1] == m:
			s.score = orderKiller2
		default:
			s.score = 0
		}
		list[i] = s
	}
	sort.Slice(list, func(i, j int) bool { return list[i].score > list[j].score })
	for i, s := range list {
		moves[i] = s.move
	}
}

// orderCaptures sorts a capture-only list (quiescence) by MVV-LVA
// alone; there is no TT/PV/killer context at quiescence nodes.
func orderCaptures(moves []board.Move) {
	sort.Slice(moves, func(i, j int) bool {
		return mvvLva(moves[i].CapturedPiece(), moves[i].MovedPiece()) > mvvLva(moves[j].CapturedPiece(), moves[j].MovedPiece())
	})
}
