package board

import "errors"

// Sentinel errors for the fallible core operations. Every operation that
// can fail returns one of these (wrapped with fmt.Errorf where extra
// detail helps); nothing in this package panics on well-formed but
// semantically wrong input — a detected invariant violation is treated as
// an implementation bug, not a normal error.
var (
	// ErrInvalidPosition is returned by position construction or mutation
	// that would violate one of the invariants.
	ErrInvalidPosition = errors.New("board: invalid position")
	// ErrIllegalMove is returned by Position.Apply for a move not present
	// in Position.LegalMoves.
	ErrIllegalMove = errors.New("board: illegal move")
	// ErrUnmakeUnderflow is returned by Position.Undo when the history
	// stack is already empty.
	ErrUnmakeUnderflow = errors.New("board: unmake called with empty history")
)
