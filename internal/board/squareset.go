package board

import (
	"math/bits"
	"strings"
)

// SquareSet is a set of squares, one bit per square (bit n = Square n).
// Membership is by square, so a set can hold no duplicates and no off-board squares.
type SquareSet uint64

// EmptySet contains no squares.
const EmptySet SquareSet = 0

// SquareSetOf returns the set containing the given squares.
// Invalid squares are ignored.
func SquareSetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// Add returns the set with sq added.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.IsValid() {
		return s
	}
	return s | 1<<sq
}

// Remove returns the set with sq removed.
func (s SquareSet) Remove(sq Square) SquareSet {
	if !sq.IsValid() {
		return s
	}
	return s &^ (1 << sq)
}

// Contains reports whether sq is in the set.
func (s SquareSet) Contains(sq Square) bool {
	return sq.IsValid() && s&(1<<sq) != 0
}

// Union returns the squares in either set.
func (s SquareSet) Union(o SquareSet) SquareSet {
	return s | o
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty returns true if the set has no squares.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// First returns the lowest-numbered square, or NoSquare for an empty set.
func (s SquareSet) First() Square {
	if s == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(s)))
}

// PopFirst removes and returns the lowest-numbered square.
func (s *SquareSet) PopFirst() Square {
	sq := s.First()
	*s &= *s - 1
	return sq
}

// Squares returns the members in ascending index order (a8 first).
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Len())
	for s != 0 {
		squares = append(squares, s.PopFirst())
	}
	return squares
}

// String lists the members in algebraic notation, e.g. "{e3 e4}".
func (s SquareSet) String() string {
	names := make([]string, 0, s.Len())
	for _, sq := range s.Squares() {
		names = append(names, sq.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}

// Diagram returns an 8x8 picture of the set, rank 8 at the top.
func (s SquareSet) Diagram() string {
	var sb strings.Builder
	for rank := BoardSide; rank >= 1; rank-- {
		sb.WriteByte('0' + byte(rank))
		sb.WriteByte(' ')
		for file := 1; file <= BoardSide; file++ {
			if s.Contains(newSquare(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
