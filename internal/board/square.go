// Package board implements the chess position model and move-legality rules.
package board

import "fmt"

// BoardSide is the number of files (and ranks) on the board.
const BoardSide = 8

// Square represents a square on the chess board (0-63).
// Squares are numbered row-major from the top-left as White sees it:
// A8=0, H8=7, A1=56, H1=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	NoSquare Square = 64
)

// SquareOf converts a 1-based file (a=1) and rank to a Square.
func SquareOf(file, rank int) (Square, error) {
	if !inBoard(file, rank) {
		return NoSquare, &SquareError{File: file, Rank: rank, Index: -1}
	}
	return newSquare(file, rank), nil
}

// SquareFromIndex converts an integer index to a Square.
func SquareFromIndex(index int) (Square, error) {
	if index < 0 || index >= BoardSide*BoardSide {
		return NoSquare, &SquareError{Index: index}
	}
	return Square(index), nil
}

// newSquare is SquareOf without the range check.
func newSquare(file, rank int) Square {
	return Square((BoardSide-rank)*BoardSide + file - 1)
}

func inBoard(file, rank int) bool {
	return file >= 1 && file <= BoardSide && rank >= 1 && rank <= BoardSide
}

// File returns the file of the square (1-8, where 1=a).
func (sq Square) File() int {
	return int(sq)%BoardSide + 1
}

// Rank returns the rank of the square (1-8).
func (sq Square) Rank() int {
	return BoardSide - int(sq)/BoardSide
}

// FileRank returns the 1-based file and rank of the square.
func (sq Square) FileRank() (file, rank int) {
	return sq.File(), sq.Rank()
}

// Offset returns the square df files and dr ranks away, and false if that
// lands off the board.
func (sq Square) Offset(df, dr int) (Square, bool) {
	file, rank := sq.File()+df, sq.Rank()+dr
	if !inBoard(file, rank) {
		return NoSquare, false
	}
	return newSquare(file, rank), true
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File()-1, '0'+sq.Rank())
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q: %w", s, ErrOutOfRange)
	}

	file := int(s[0]-'a') + 1
	rank := int(s[1] - '0')

	sq, err := SquareOf(file, rank)
	if err != nil {
		return NoSquare, fmt.Errorf("invalid square %q: %w", s, err)
	}
	return sq, nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// RelativeRank returns the rank from a given color's perspective (1-8).
// For White this is the rank itself; for Black rank 8 is its 1st rank.
func (sq Square) RelativeRank(c Color) int {
	if c == White {
		return sq.Rank()
	}
	return BoardSide + 1 - sq.Rank()
}
