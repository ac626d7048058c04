// Package engine implements the search and evaluation layers: a static
// evaluator, a fixed-capacity transposition table, and an
// iterative-deepening alpha-beta search with aspiration windows,
// quiescence, and killer-move ordering, all driven through the
// SearchEngine control surface.
package engine

// MateScore is a magnitude well outside any evaluator output, reserved
// for mate-distance encoding.
const MateScore int32 = 30000

// MateThreshold is the lower bound of the reserved mate-distance window
// [MateScore-512, MateScore]; evaluator output never lands inside it.
const MateThreshold int32 = MateScore - 512

// DrawScore is returned for stalemate and the draw-by-rule short-circuits.
const DrawScore int32 = 0

// IsMateScore reports whether s falls in the reserved mate-distance window,
// positive or negative.
func IsMateScore(s int32) bool {
	return s >= MateThreshold || s <= -MateThreshold
}

// MateDistance decodes a mate score into a ply count: rather than making
// callers re-derive "MateScore - ply" inline, this helper turns a raw
// score back into (plies-to-mate, whether the side to move is mating,
// whether the score is a mate at all).
func MateDistance(score int32) (plies int, forSideToMove bool, isMate bool) {
	switch {
	case score >= MateThreshold:
		return int(MateScore - score), true, true
	case score <= -MateThreshold:
		return int(MateScore + score), false, true
	default:
		return 0, false, false
	}
}
