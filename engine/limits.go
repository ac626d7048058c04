package engine

import "github.com/corvidchess/corvid/board"

// Limits configures one call to SearchEngine.Search: at least one of
// MaxDepth, MaxTimeMs, MaxNodes, or Infinite must be set, or the call is a
// ConfigurationError.
type Limits struct {
	MaxDepth  int
	MaxTimeMs int
	MaxNodes  uint64
	Infinite  bool
}

// validate enforces the rule against limits with all budgets unset and
// not infinite.
func (l Limits) validate() error {
	if l.MaxDepth <= 0 && l.MaxTimeMs <= 0 && l.MaxNodes == 0 && !l.Infinite {
		return ErrConfiguration
	}
	return nil
}

// Statistics are the per-search counters: nodes visited, nodes pruned, TT
// probes/hits, quiescence nodes, aspiration re-searches, depth reached,
// and elapsed time.
type Statistics struct {
	Nodes                uint64
	NodesPruned          uint64
	QuiescenceNodes      uint64
	TTProbes             uint64
	TTHits               uint64
	AspirationResearches uint64
	DepthReached         int
	ElapsedMs            int64
	Aborted              bool
}

// SearchResult is the output of SearchEngine.Search: best move, score from
// the side-to-move's perspective, the depth actually reached, the
// principal variation, and the run's statistics.
type SearchResult struct {
	BestMove           board.Move
	HasMove            bool
	Score              int32
	DepthReached       int
	PrincipalVariation []board.Move
	Statistics         Statistics
}
