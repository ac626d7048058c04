// Command bench runs a fixed benchmark suite of positions through
// SearchEngine.Search to a fixed depth and reports nodes/sec, a
// performance-regression check across commits.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/engine"
)

// benchPositions is a small fixed suite spanning opening, tactical, and
// endgame structure: stable inputs so node counts and NPS are comparable
// across commits.
var benchPositions = []string{
	board.StartingFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r1bqkbnr/pp1ppppp/2n5/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"4k3/8/8/8/8/8/4P3/4K2R w K - 0 1",
}

func main() {
	depth := flag.Int("depth", 8, "search depth in plies")
	ttBytes := flag.Int("tt", 32<<20, "transposition table size in bytes")
	flag.Parse()

	fmt.Printf("bench: %d positions, depth=%d\n", len(benchPositions), *depth)

	var totalNodes uint64
	start := time.Now()
	for i, fen := range benchPositions {
		pos, err := board.ParseFEN(fen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bench: invalid fen %q: %v\n", fen, err)
			os.Exit(2)
		}
		eng, err := engine.New(*ttBytes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bench: %v\n", err)
			os.Exit(2)
		}

		iterStart := time.Now()
		result, err := eng.Search(&pos, engine.Limits{MaxDepth: *depth})
		if err != nil {
			fmt.Fprintf(os.Stderr, "bench: %v\n", err)
			os.Exit(2)
		}
		elapsed := time.Since(iterStart)
		totalNodes += result.Statistics.Nodes
		fmt.Printf("%2d nodes=%-10d time=%-10s nps=%.0f bestmove=%s score=%d\n",
			i, result.Statistics.Nodes, elapsed, float64(result.Statistics.Nodes)/elapsed.Seconds(),
			result.BestMove.String(), result.Score)
	}

	totalElapsed := time.Since(start)
	fmt.Printf("total: nodes=%d time=%s nps=%.0f\n", totalNodes, totalElapsed, float64(totalNodes)/totalElapsed.Seconds())
}
