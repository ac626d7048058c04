package board

import "testing"

// TestMakeUnmakeRoundTrip is property 1: for every legal move in a
// position, apply then undo must restore the position byte-for-byte,
// including the Zobrist key and history depth.
func TestMakeUnmakeRoundTrip(t *testing.T) {
	positions := []string{
		StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	}
	for _, fen := range positions {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		for _, m := range pos.LegalMoves() {
			before := pos
			pos.MakeMove(m)
			pos.UnmakeMove()
			if pos.board != before.board {
				t.Errorf("%s: move %s left the board mutated", fen, m)
			}
			if pos.zobristKey != before.zobristKey {
				t.Errorf("%s: move %s left the zobrist key mutated: %d vs %d", fen, m, pos.zobristKey, before.zobristKey)
			}
			if pos.castling != before.castling || pos.enPassant != before.enPassant {
				t.Errorf("%s: move %s left castling/en-passant state mutated", fen, m)
			}
			if pos.halfmoveClock != before.halfmoveClock || pos.fullmoveNumber != before.fullmoveNumber {
				t.Errorf("%s: move %s left move clocks mutated", fen, m)
			}
			if len(pos.history) != len(before.history) {
				t.Errorf("%s: move %s left history depth at %d, want %d", fen, m, len(pos.history), len(before.history))
			}
		}
	}
}

// TestZobristConsistency is property 2: the incrementally
// maintained key must always agree with one computed from scratch, after
// any sequence of make/unmake.
func TestZobristConsistency(t *testing.T) {
	pos := StartingPosition()
	var walk func(depth int)
	walk = func(depth int) {
		if !pos.VerifyZobrist() {
			t.Fatalf("zobrist mismatch at depth %d, fen %s", depth, pos.ToFEN())
		}
		if depth == 0 {
			return
		}
		for _, m := range pos.LegalMoves() {
			pos.MakeMove(m)
			walk(depth - 1)
			pos.UnmakeMove()
		}
	}
	walk(3)
}

// TestLegalityClosure is property 3: every generated move is
// accepted by Apply, and Apply rejects everything else.
func TestLegalityClosure(t *testing.T) {
	pos := StartingPosition()
	legal := pos.LegalMoves()
	for _, m := range legal {
		p := pos
		if err := p.Apply(m); err != nil {
			t.Errorf("Apply rejected a legal move %s: %v", m, err)
		}
	}
	bogus := NewMove(NewSquare(0, 1), NewSquare(0, 4), WhitePawn, NoPiece, NoPiece, FlagNone)
	found := false
	for _, m := range legal {
		if m == bogus {
			found = true
		}
	}
	if found {
		t.Fatalf("test setup invalid: bogus move is actually legal")
	}
	p := pos
	if err := p.Apply(bogus); err == nil {
		t.Errorf("Apply accepted an illegal move")
	}
}

// TestNoSelfCheck is property 4: after any legal move, the mover
// is not left in check.
func TestNoSelfCheck(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	for _, m := range pos.LegalMoves() {
		p := pos
		p.MakeMove(m)
		mover := p.sideToMove.Opponent()
		ks := p.board.KingSquare(mover)
		if p.board.IsSquareAttacked(ks, mover.Opponent()) {
			t.Errorf("move %s left %s's king in check", m, mover)
		}
	}
}

func TestEnPassantLegality(t *testing.T) {
	fen := "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var epMove Move
	found := false
	for _, m := range pos.LegalMoves() {
		if m.Flag() == FlagEnPassant {
			epMove = m
			found = true
		}
	}
	if !found {
		t.Fatalf("en passant capture not found in legal moves")
	}
	if epMove.From() != mustSquare("e5") || epMove.To() != mustSquare("d6") {
		t.Fatalf("unexpected en passant move %s", epMove)
	}
	pos.MakeMove(epMove)
	if pos.PieceAt(mustSquare("d5")) != NoPiece {
		t.Errorf("en passant did not remove the captured pawn on d5")
	}
	if pos.PieceAt(mustSquare("d6")) != WhitePawn {
		t.Errorf("en passant did not place the capturing pawn on d6")
	}
}

func mustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

func TestCastlingThroughCheckForbidden(t *testing.T) {
	fen := "r3k2r/8/8/8/5r2/8/8/R3K2R w KQkq - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	var sawKingside, sawQueenside bool
	for _, m := range pos.LegalMoves() {
		if m.Flag() == FlagCastleKingside {
			sawKingside = true
		}
		if m.Flag() == FlagCastleQueenside {
			sawQueenside = true
		}
	}
	if sawKingside {
		t.Errorf("white kingside castle should be forbidden: f1 is attacked by the rook on f4")
	}
	if !sawQueenside {
		t.Errorf("white queenside castle should remain legal")
	}
}

func TestStalemateDetection(t *testing.T) {
	fen := "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if len(pos.LegalMoves()) != 0 {
		t.Fatalf("expected no legal moves in stalemate position")
	}
	if !pos.IsStalemate() {
		t.Errorf("IsStalemate should be true")
	}
	if pos.IsCheckmate() {
		t.Errorf("IsCheckmate should be false: this is stalemate, not checkmate")
	}
}

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		fen  string
		want bool
	}{
		{"8/8/4k3/8/8/3K4/8/8 w - - 0 1", true},
		{"8/8/4k3/8/8/3KB3/8/8 w - - 0 1", true},
		{"8/8/4k3/8/8/2BKB3/8/8 w - - 0 1", false},
		{StartingFEN, false},
	}
	for _, c := range cases {
		pos, err := ParseFEN(c.fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", c.fen, err)
		}
		if got := pos.IsInsufficientMaterial(); got != c.want {
			t.Errorf("IsInsufficientMaterial(%q) = %v, want %v", c.fen, got, c.want)
		}
	}
}

func TestFiftyMoveRule(t *testing.T) {
	pos := StartingPosition()
	if pos.IsDrawByFiftyMoves() {
		t.Fatalf("fresh position should not be a fifty-move draw")
	}
	pos.halfmoveClock = 100
	if !pos.IsDrawByFiftyMoves() {
		t.Errorf("halfmove clock at 100 should be a fifty-move draw")
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("round trip: ParseFEN(%q).ToFEN = %q", fen, got)
		}
	}
}

func TestUndoUnderflow(t *testing.T) {
	pos := StartingPosition()
	if err := pos.Undo(); err != ErrUnmakeUnderflow {
		t.Errorf("Undo on fresh position: got %v, want %v", err, ErrUnmakeUnderflow)
	}
}
