package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for the board package. Use errors.Is to test for them.
var (
	// ErrOutOfRange indicates a file, rank or square index outside the board.
	ErrOutOfRange = errors.New("square out of range")

	// ErrKingMissing indicates a side without a king.
	// Positions built by ParseFEN, InitialPosition and ApplyMove on legal moves
	// never trigger it.
	ErrKingMissing = errors.New("king missing from board")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrInvalidMove indicates move text that cannot be parsed.
	ErrInvalidMove = errors.New("invalid move")

	// ErrIllegalMove indicates a well-formed move that the position does not allow.
	ErrIllegalMove = errors.New("illegal move")
)

// SquareError records the coordinates that were rejected at the codec boundary.
type SquareError struct {
	File  int
	Rank  int
	Index int // -1 when the input was a file/rank pair
}

// Error implements the error interface.
func (e *SquareError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("square index %d: %v", e.Index, ErrOutOfRange)
	}
	return fmt.Sprintf("file %d rank %d: %v", e.File, e.Rank, ErrOutOfRange)
}

// Unwrap allows errors.Is(err, ErrOutOfRange).
func (e *SquareError) Unwrap() error {
	return ErrOutOfRange
}
