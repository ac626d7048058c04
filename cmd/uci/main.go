// Command uci is the UCI line-protocol driver, kept outside the core: it
// translates "position"/"go" lines into calls against board.Position and
// engine.SearchEngine, and prints "info"/"bestmove" lines from their
// results. It contains no search or move-generation logic of its own.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/board"
	"github.com/corvidchess/corvid/engine"
)

const defaultTTBytes = 32 << 20

func atoi(s string) int { v, _ := strconv.Atoi(s); return v }

// findMove resolves the wire-format from/to/promotion triple against the
// position's own legal moves, recovering the flags and captured piece the
// wire format never carries.
func findMove(pos *board.Position, from, to board.Square, promo board.PieceType) (board.Move, bool) {
	for _, m := range pos.LegalMoves() {
		if m.From() != from || m.To() != to {
			continue
		}
		if promo == board.PieceTypeNone {
			if !m.IsPromotion() {
				return m, true
			}
			continue
		}
		if m.PromotionPiece().Type() == promo {
			return m, true
		}
	}
	return 0, false
}

func main() {
	reader := bufio.NewReader(os.Stdin)
	pos := board.StartingPosition()
	eng, err := engine.New(defaultTTBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "uci: %v\n", err)
		os.Exit(2)
	}

	fmt.Println("id name Corvid")
	fmt.Println("id author corvidchess")
	fmt.Println("uciok")

	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			handleLine(&pos, eng, line)
		}
		if err != nil {
			return
		}
	}
}

func handleLine(pos *board.Position, eng *engine.SearchEngine, line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	switch parts[0] {
	case "quit":
		os.Exit(0)
	case "uci":
		fmt.Println("uciok")
	case "isready":
		fmt.Println("readyok")
	case "ucinewgame":
		*pos = board.StartingPosition()
		eng.ClearHash()
	case "position":
		handlePosition(pos, parts[1:])
	case "go":
		handleGo(pos, eng, parts[1:])
	case "stop":
		eng.Stop()
	}
}

func handlePosition(pos *board.Position, args []string) {
	if len(args) == 0 {
		return
	}
	var moveArgs []string
	if args[0] == "startpos" {
		*pos = board.StartingPosition()
		moveArgs = args[1:]
	} else if args[0] == "fen" {
		rest := args[1:]
		idx := indexOf(rest, "moves")
		fenFields := rest
		if idx >= 0 {
			fenFields = rest[:idx]
			moveArgs = rest[idx+1:]
		}
		parsed, err := board.ParseFEN(strings.Join(fenFields, " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid fen: %v\n", err)
			return
		}
		*pos = parsed
	} else {
		return
	}
	if len(moveArgs) > 0 && moveArgs[0] == "moves" {
		moveArgs = moveArgs[1:]
	}
	for _, text := range moveArgs {
		from, to, promo, err := board.ParseLongAlgebraic(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid move %q: %v\n", text, err)
			return
		}
		m, ok := findMove(pos, from, to, promo)
		if !ok {
			fmt.Fprintf(os.Stderr, "info string illegal move %q\n", text)
			return
		}
		pos.MakeMove(m)
	}
}

func indexOf(ss []string, target string) int {
	for i, s := range ss {
		if s == target {
			return i
		}
	}
	return -1
}

func handleGo(pos *board.Position, eng *engine.SearchEngine, args []string) {
	var limits engine.Limits
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				i++
				limits.MaxDepth = atoi(args[i])
			}
		case "movetime":
			if i+1 < len(args) {
				i++
				limits.MaxTimeMs = atoi(args[i])
			}
		case "nodes":
			if i+1 < len(args) {
				i++
				limits.MaxNodes = uint64(atoi(args[i]))
			}
		case "infinite":
			limits.Infinite = true
		}
	}
	if limits.MaxDepth == 0 && limits.MaxTimeMs == 0 && limits.MaxNodes == 0 && !limits.Infinite {
		limits.MaxDepth = 6
	}

	// pos is owned by the caller, so search against a scratch copy and
	// discard it: SearchEngine.Search already restores its input exactly,
	// but cmd/uci has no need to hold a lock against concurrent "position".
	scratch := *pos
	result, err := eng.Search(&scratch, limits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "info string %v\n", err)
		return
	}

	pvText := make([]string, len(result.PrincipalVariation))
	for i, m := range result.PrincipalVariation {
		pvText[i] = m.String()
	}
	scoreText := fmt.Sprintf("cp %d", result.Score)
	if plies, forSideToMove, isMate := engine.MateDistance(result.Score); isMate {
		movesToMate := (plies + 1) / 2
		if !forSideToMove {
			movesToMate = -movesToMate
		}
		scoreText = fmt.Sprintf("mate %d", movesToMate)
	}
	fmt.Printf("info depth %d score %s nodes %d time %d pv %s\n",
		result.DepthReached, scoreText, result.Statistics.Nodes, result.Statistics.ElapsedMs, strings.Join(pvText, " "))

	if result.HasMove {
		fmt.Printf("bestmove %s\n", result.BestMove.String())
	} else {
		fmt.Println("bestmove (none)")
	}
}
