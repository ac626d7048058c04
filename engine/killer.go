package engine

import "github.com/corvidchess/corvid/board"

// maxPly bounds the killer table and PV-line depth: killer slots are a
// dense 2D array indexed by ply, since bounded search depth in practice
// lets this be stack-sized rather than a growable slice.
const maxPly = 128

// killerTable holds two killer slots per ply: a quiet move that caused a
// beta cutoff at this ply is tried early the next time this ply is
// reached in the same search.
type killerTable struct {
	moves [maxPly][2]board.Move
}

// clear resets every slot, done at the start of each new root search.
func (k *killerTable) clear() {
	for i := range k.moves {
		k.moves[i] = [2]board.Move{}
	}
}

// store installs m as the primary killer at ply, demoting the previous
// primary to secondary unless m already is the primary.
func (k *killerTable) store(ply int, m board.Move) {
	if ply < 0 || ply >= maxPly {
		return
	}
	if k.moves[ply][0] == m {
		return
	}
	k.moves[ply][1] = k.moves[ply][0]
	k.moves[ply][0] = m
}
