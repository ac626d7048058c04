package engine

import (
	"sync/atomic"
	"time"

	"github.com/corvidchess/corvid/board"
)

// aspirationDelta is the half-width of the aspiration window opened around
// the previous iteration's score.
const aspirationDelta int32 = 50

// nodeCheckInterval bounds how many nodes pass between polls of the clock:
// elapsed time is polled at every node or at least every N nodes (N small
// enough to bound overrun to a few milliseconds).
const nodeCheckInterval = 2048

// SearchEngine is the control surface for the search: it owns the
// transposition table and killer table across iterative-deepening
// iterations (and across searches of the same game), and exposes
// New/Search/Stop/ClearHash.
type SearchEngine struct {
	tt      *TransTable
	killers killerTable

	// stopFlag is the single cooperative-cancellation boolean the search
	// checks: an atomic load made (via shouldStop) once every
	// nodeCheckInterval node entries and at each depth-iteration boundary,
	// not at every node. It is set either by an external call to Stop or by
	// the internal deadline/node-budget check.
	stopFlag atomic.Bool

	// Tablebase, if set, is consulted at search nodes before generation
	// and can short-circuit a node with a known-exact score.
	Tablebase Tablebase

	nodes      uint64
	qnodes     uint64
	ttProbes   uint64
	ttHits     uint64
	researches uint64
	pruned     uint64

	deadline    time.Time
	hasDeadline bool
	maxNodes    uint64

	// prevPV is the previous iteration's principal variation, indexed by
	// ply, consulted by move ordering's "previous-iteration PV move at
	// this ply" tier. Cleared at the start of each Search.
	prevPV []board.Move
}

// New builds a SearchEngine with a transposition table sized from ttBytes.
func New(ttBytes int) (*SearchEngine, error) {
	tt, err := NewTransTable(ttBytes)
	if err != nil {
		return nil, err
	}
	return &SearchEngine{tt: tt}, nil
}

// Stop requests cooperative cancellation; the in-flight depth iteration is
// abandoned and the last fully completed depth's result is returned.
func (e *SearchEngine) Stop() { e.stopFlag.Store(true) }

// ClearHash empties the transposition table.
func (e *SearchEngine) ClearHash() { e.tt.Clear() }

func (e *SearchEngine) shouldStop() bool {
	if e.stopFlag.Load() {
		return true
	}
	if e.hasDeadline && time.Now().After(e.deadline) {
		e.stopFlag.Store(true)
		return true
	}
	if e.maxNodes != 0 && e.nodes >= e.maxNodes {
		e.stopFlag.Store(true)
		return true
	}
	return false
}

// Search runs iterative deepening over alpha-beta with aspiration windows.
// The caller-owned pos is mutated internally via make/unmake and restored
// to exactly its input state before returning.
func (e *SearchEngine) Search(pos *board.Position, limits Limits) (SearchResult, error) {
	if err := limits.validate(); err != nil {
		return SearchResult{}, err
	}

	e.stopFlag.Store(false)
	e.nodes, e.qnodes, e.ttProbes, e.ttHits, e.researches, e.pruned = 0, 0, 0, 0, 0, 0
	e.killers.clear()
	e.tt.NewSearch()
	e.prevPV = nil
	e.maxNodes = limits.MaxNodes
	e.hasDeadline = limits.MaxTimeMs > 0
	start := time.Now()
	if e.hasDeadline {
		e.deadline = start.Add(time.Duration(limits.MaxTimeMs) * time.Millisecond)
	}

	maxDepth := limits.MaxDepth
	if maxDepth <= 0 {
		maxDepth = maxPly - 1
	}

	var result SearchResult
	var prevScore int32
	haveResult := false

	for depth := 1; depth <= maxDepth; depth++ {
		if depth > 1 && e.shouldStop() {
			break
		}

		score, bestMove, hasMove, pv, aborted := e.searchRoot(pos, depth, prevScore, haveResult)
		if aborted {
			break
		}

		prevScore = score
		haveResult = true
		result = SearchResult{
			BestMove:           bestMove,
			HasMove:            hasMove,
			Score:              score,
			DepthReached:       depth,
			PrincipalVariation: pv,
		}
		e.prevPV = pv

		if !limits.Infinite && limits.MaxTimeMs <= 0 && limits.MaxNodes == 0 && limits.MaxDepth > 0 && depth >= limits.MaxDepth {
			break
		}
		if e.shouldStop() {
			break
		}
	}

	result.Statistics = Statistics{
		Nodes:                e.nodes,
		NodesPruned:          e.pruned,
		QuiescenceNodes:      e.qnodes,
		TTProbes:             e.ttProbes,
		TTHits:               e.ttHits,
		AspirationResearches: e.researches,
		DepthReached:         result.DepthReached,
		ElapsedMs:            time.Since(start).Milliseconds(),
		Aborted:              e.stopFlag.Load(),
	}
	return result, nil
}

// searchRoot runs one iterative-deepening iteration with aspiration windows
// and returns whether the iteration was abandoned mid-flight (in which
// case its partial result must not be used).
func (e *SearchEngine) searchRoot(pos *board.Position, depth int, prevScore int32, havePrev bool) (score int32, best board.Move, hasMove bool, pv []board.Move, aborted bool) {
	alpha, beta := -MateScore, MateScore
	if depth >= 3 && havePrev {
		alpha = prevScore - aspirationDelta
		beta = prevScore + aspirationDelta
	}

	for {
		s, aborted := e.alphaBeta(pos, depth, 0, alpha, beta)
		if aborted {
			return 0, board.Move(0), false, nil, true
		}
		if s <= alpha {
			e.researches++
			alpha = -MateScore
			continue
		}
		if s >= beta {
			e.researches++
			beta = MateScore
			continue
		}
		score = s
		break
	}

	best, hasMove = e.rootBestMove(pos)
	pv = e.extractPV(pos, depth)
	return score, best, hasMove, pv, false
}

// rootBestMove recovers the root's best move from the transposition table
// entry alphaBeta just stored.
func (e *SearchEngine) rootBestMove(pos *board.Position) (board.Move, bool) {
	res := e.tt.Probe(pos.Hash(), 0, -MateScore, MateScore, 0)
	if res.HasHint {
		return res.MoveHint, true
	}
	return board.Move(0), false
}

// extractPV walks the TT following each node's best move on a scratch copy
// of pos, stopping when the TT has no hint, the hinted move is illegal, or
// the line would exceed the search's own depth.
func (e *SearchEngine) extractPV(pos *board.Position, depth int) []board.Move {
	scratch := *pos
	pv := make([]board.Move, 0, depth)
	seen := map[uint64]bool{}
	for len(pv) < depth {
		key := scratch.Hash()
		if seen[key] {
			break
		}
		seen[key] = true
		res := e.tt.Probe(key, 0, -MateScore, MateScore, len(pv))
		if !res.HasHint {
			break
		}
		if err := scratch.Apply(res.MoveHint); err != nil {
			break
		}
		pv = append(pv, res.MoveHint)
	}
	return pv
}

// alphaBeta implements the interior-node search in negamax form. It
// returns (score, aborted); an aborted node's score is meaningless and
// must not be used by the caller.
func (e *SearchEngine) alphaBeta(pos *board.Position, depth int, ply int, alpha, beta int32) (int32, bool) {
	e.nodes++
	if e.nodes%nodeCheckInterval == 0 && e.shouldStop() {
		return 0, true
	}

	if ply > 0 {
		if pos.HalfmoveClock() >= 100 || pos.IsRepetition(2) {
			return DrawScore, false
		}
	}

	if e.Tablebase != nil {
		if score, ok := e.Tablebase.Probe(pos); ok {
			return score, false
		}
	}

	key := pos.Hash()
	e.ttProbes++
	probe := e.tt.Probe(key, int16(depth), alpha, beta, ply)
	if probe.UseScore {
		e.ttHits++
		return probe.Score, false
	}

	if depth == 0 {
		return e.quiesce(pos, alpha, beta, ply)
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		if pos.IsCheck() {
			return -MateScore + int32(ply), false
		}
		return DrawScore, false
	}

	var pvMove board.Move
	hasPV := ply < len(e.prevPV)
	if hasPV {
		pvMove = e.prevPV[ply]
	}
	orderMoves(moves, probe.MoveHint, probe.HasHint, pvMove, hasPV, &e.killers, ply)

	origAlpha := alpha
	var bestMove board.Move
	var bestSet bool

	for _, m := range moves {
		pos.MakeMove(m)
		score, aborted := e.alphaBeta(pos, depth-1, ply+1, -beta, -alpha)
		pos.UnmakeMove()
		if aborted {
			return 0, true
		}
		score = -score

		if score >= beta {
			e.tt.Store(key, int16(depth), score, BoundLower, m, true, ply)
			if m.IsQuiet() {
				e.killers.store(ply, m)
			}
			e.pruned++
			return beta, false
		}
		if score > alpha {
			alpha = score
			bestMove, bestSet = m, true
		}
	}

	bound := BoundUpper
	if alpha != origAlpha {
		bound = BoundExact
	}
	e.tt.Store(key, int16(depth), alpha, bound, bestMove, bestSet, ply)
	return alpha, false
}

// quiesce is quiescence search: a depth-unbounded tail over captures and
// promotions only, terminating because each ply removes material or
// promotes.
func (e *SearchEngine) quiesce(pos *board.Position, alpha, beta int32, ply int) (int32, bool) {
	e.nodes++
	e.qnodes++
	if e.nodes%nodeCheckInterval == 0 && e.shouldStop() {
		return 0, true
	}

	standPat := Evaluate(pos)
	if standPat >= beta {
		return beta, false
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := pos.LegalCaptures()
	orderCaptures(captures)

	for _, m := range captures {
		pos.MakeMove(m)
		score, aborted := e.quiesce(pos, -beta, -alpha, ply+1)
		pos.UnmakeMove()
		if aborted {
			return 0, true
		}
		score = -score

		if score >= beta {
			return beta, false
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha, false
}
