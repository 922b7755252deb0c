package board

import "fmt"

// Move is a source and destination square, with an optional promotion piece
// type for a pawn reaching the last rank. Castling is the king's two-file move.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType // NoPieceType unless the move promotes
}

// NoMove represents an invalid or null move.
var NoMove = Move{From: NoSquare, To: NoSquare, Promotion: NoPieceType}

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Promotion: NoPieceType}
}

// NewPromotion creates a promotion move.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move{From: from, To: to, Promotion: promo}
}

// IsPromotion returns true if this is a promotion move.
func (m Move) IsPromotion() bool {
	return m.Promotion.IsPromotionTarget()
}

// IsCapture reports whether the move takes a piece in pos, including en passant.
func (m Move) IsCapture(pos Position) bool {
	if !pos.IsEmpty(m.To) {
		return true
	}
	return pos.isEnPassantCapture(m)
}

// IsCastling reports whether the move is a king's two-file castling move in pos.
func (m Move) IsCastling(pos Position) bool {
	_, ok := pos.castlingRook(m)
	return ok
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if !m.From.IsValid() || !m.To.IsValid() {
		return "0000"
	}

	s := m.From.String() + m.To.String()

	if m.IsPromotion() {
		s += string(m.Promotion.Char())
	}

	return s
}

// ParseMove parses a UCI format move string. The position is not consulted:
// en passant and castling are recognised by ApplyMove from the board itself.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("%q: %w", s, ErrInvalidMove)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("%q: %w", s, ErrInvalidMove)
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("%q: %w", s, ErrInvalidMove)
	}

	// Check for promotion
	if len(s) == 5 {
		promo := PieceTypeFromChar(s[4])
		if !promo.IsPromotionTarget() {
			return NoMove, fmt.Errorf("invalid promotion piece %q: %w", s[4], ErrInvalidMove)
		}
		return NewPromotion(from, to, promo), nil
	}

	return NewMove(from, to), nil
}
