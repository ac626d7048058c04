package engine

import "github.com/corvidchess/corvid/board"

// Bound tags how a stored score relates to the window it was computed in.
type Bound uint8

const (
	BoundExact Bound = iota
	BoundLower
	BoundUpper
)

// entrySize approximates unsafe.Sizeof(ttEntry{}) for capacity sizing; kept
// as a constant rather than computed so table sizing has no unsafe import.
const entrySize = 32

// ttEntry is one transposition slot: key, depth, score, bound, best move,
// age. The table is a fixed-size array indexed by key mod capacity;
// entry.key == 0 marks an empty slot (a real key of exactly zero is
// astronomically unlikely and, if it ever occurred, would merely cost one
// avoidable miss, not a correctness bug).
type ttEntry struct {
	key      uint64
	depth    int16
	score    int32
	bound    Bound
	bestMove board.Move
	hasMove  bool
	age      uint16
}

// ProbeResult is what TransTable.Probe returns: either nothing useful, a
// score directly usable for the cutoff the caller is testing, or a move
// hint to prime ordering without a usable score.
type ProbeResult struct {
	Found    bool
	UseScore bool
	Score    int32
	MoveHint board.Move
	HasHint  bool
}

// TransTable is a fixed-capacity associative store, indexed by key mod
// capacity with depth-preferred, age-aware replacement.
type TransTable struct {
	entries []ttEntry
	age     uint16
}

// NewTransTable builds a table sized from a byte budget, matching
// SearchEngine.New's tt_bytes argument. A zero or negative budget is a
// ConfigurationError: a table with no slots can never store anything, which
// is treated as a configuration mistake, not a silent no-op cache.
func NewTransTable(bytes int) (*TransTable, error) {
	if bytes <= 0 {
		return nil, ErrConfiguration
	}
	capacity := bytes / entrySize
	if capacity < 1 {
		capacity = 1
	}
	return &TransTable{entries: make([]ttEntry, capacity)}, nil
}

// Clear empties every slot, used by SearchEngine.ClearHash.
func (t *TransTable) Clear() {
	for i := range t.entries {
		t.entries[i] = ttEntry{}
	}
	t.age = 0
}

// NewSearch increments the age counter the replacement policy uses to favor
// entries written during the current search over stale ones from a
// previous search of the same game.
func (t *TransTable) NewSearch() { t.age++ }

func (t *TransTable) slot(key uint64) *ttEntry {
	return &t.entries[key%uint64(len(t.entries))]
}

// Probe returns a three-way result: UseScore when the stored bound permits
// a cutoff against [alpha, beta] at depth >= the requested depth, a move
// hint when an entry exists but isn't usable, or nothing. Mate scores are
// translated back from "distance from this node" to absolute
// distance-from-root using ply.
func (t *TransTable) Probe(key uint64, depth int16, alpha, beta int32, ply int) ProbeResult {
	e := t.slot(key)
	if e.key != key {
		return ProbeResult{}
	}
	res := ProbeResult{Found: true}
	if e.hasMove {
		res.MoveHint, res.HasHint = e.bestMove, true
	}
	if e.depth < depth {
		return res
	}
	score := fromTTScore(e.score, ply)
	switch e.bound {
	case BoundExact:
		res.UseScore, res.Score = true, score
	case BoundLower:
		if score >= beta {
			res.UseScore, res.Score = true, score
		}
	case BoundUpper:
		if score <= alpha {
			res.UseScore, res.Score = true, score
		}
	}
	return res
}

// Store replaces the slot when the new depth is at least the existing
// depth, the slot is empty, or the existing entry is from an older search
// generation.
func (t *TransTable) Store(key uint64, depth int16, score int32, bound Bound, best board.Move, hasMove bool, ply int) {
	e := t.slot(key)
	if e.key != 0 && e.depth > depth && e.age == t.age {
		return
	}
	e.key = key
	e.depth = depth
	e.score = toTTScore(score, ply)
	e.bound = bound
	e.bestMove = best
	e.hasMove = hasMove
	e.age = t.age
}

// toTTScore converts an absolute-from-root mate score into a
// distance-from-this-node form before storing, so the entry remains correct
// when revisited at a different ply.
func toTTScore(score int32, ply int) int32 {
	if score >= MateThreshold {
		return score + int32(ply)
	}
	if score <= -MateThreshold {
		return score - int32(ply)
	}
	return score
}

// fromTTScore is toTTScore's inverse, applied on probe.
func fromTTScore(score int32, ply int) int32 {
	if score >= MateThreshold {
		return score - int32(ply)
	}
	if score <= -MateThreshold {
		return score + int32(ply)
	}
	return score
}
