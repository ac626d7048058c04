package engine

import "github.com/corvidchess/corvid/board"

// Tablebase is the external collaborator interface for endgame lookups:
// if present, it is consulted at search nodes before generation; a hit
// short-circuits the subtree with the returned score, a miss is
// transparent.
type Tablebase interface {
	// Probe returns the score for pos from the side-to-move's perspective
	// and true on a hit, or (0, false) on a miss.
	Probe(pos *board.Position) (score int32, ok bool)
}
