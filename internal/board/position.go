package board

import (
	"fmt"
	"strings"
)

// Wing names one side of the board for castling.
type Wing uint8

const (
	QueenSide Wing = iota
	KingSide
)

// String returns the wing name.
func (w Wing) String() string {
	if w == KingSide {
		return "kingside"
	}
	return "queenside"
}

// CastlingRights records, per side and wing, whether the king and that wing's
// rook have both stayed on their starting squares. It says nothing about
// whether castling is currently legal.
type CastlingRights struct {
	WhiteQueenSide bool
	WhiteKingSide  bool
	BlackQueenSide bool
	BlackKingSide  bool
}

// AllCastling has every right available, as in the initial position.
var AllCastling = CastlingRights{true, true, true, true}

// Has reports whether the given side still holds the right on the given wing.
func (cr CastlingRights) Has(c Color, w Wing) bool {
	switch {
	case c == White && w == KingSide:
		return cr.WhiteKingSide
	case c == White && w == QueenSide:
		return cr.WhiteQueenSide
	case c == Black && w == KingSide:
		return cr.BlackKingSide
	case c == Black && w == QueenSide:
		return cr.BlackQueenSide
	}
	return false
}

// without returns the rights with the given side and wing cleared.
func (cr CastlingRights) without(c Color, w Wing) CastlingRights {
	switch {
	case c == White && w == KingSide:
		cr.WhiteKingSide = false
	case c == White && w == QueenSide:
		cr.WhiteQueenSide = false
	case c == Black && w == KingSide:
		cr.BlackKingSide = false
	case c == Black && w == QueenSide:
		cr.BlackQueenSide = false
	}
	return cr
}

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	s := ""
	if cr.WhiteKingSide {
		s += "K"
	}
	if cr.WhiteQueenSide {
		s += "Q"
	}
	if cr.BlackKingSide {
		s += "k"
	}
	if cr.BlackQueenSide {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Position is a complete, immutable chess position. It is a plain value:
// copying it is safe, and every transition returns a new Position.
type Position struct {
	squares        [BoardSide * BoardSide]Piece
	sideToMove     Color
	castling       CastlingRights
	enPassant      Square // NoSquare when absent
	halfMoveClock  int    // Plies since the last pawn move or capture
	fullMoveNumber int    // Starts at 1, incremented after Black moves

	// rookGone marks a corner whose original rook has moved or been
	// captured. A castling flag survives a capture, so castlingMoves checks
	// this as well. Positions read from FEN start with every corner intact.
	rookGone [2][2]bool
}

var initialPosition = func() Position {
	p := emptyPosition()
	backRank := [BoardSide]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 1; file <= BoardSide; file++ {
		p.squares[newSquare(file, 1)] = NewPiece(backRank[file-1], White)
		p.squares[newSquare(file, 2)] = WhitePawn
		p.squares[newSquare(file, 7)] = BlackPawn
		p.squares[newSquare(file, 8)] = NewPiece(backRank[file-1], Black)
	}
	p.castling = AllCastling
	return p
}()

// InitialPosition returns the standard starting position.
func InitialPosition() Position {
	return initialPosition
}

// emptyPosition returns a board with no pieces, White to move and no rights.
func emptyPosition() Position {
	p := Position{
		sideToMove:     White,
		enPassant:      NoSquare,
		fullMoveNumber: 1,
	}
	for i := range p.squares {
		p.squares[i] = NoPiece
	}
	return p
}

// PieceAt returns the piece at the given square, or NoPiece if empty or invalid.
func (p Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return p.squares[sq]
}

// SquareAt returns the piece at the 1-based file and rank.
func (p Position) SquareAt(file, rank int) (Piece, error) {
	sq, err := SquareOf(file, rank)
	if err != nil {
		return NoPiece, err
	}
	return p.squares[sq], nil
}

// IsEmpty returns true if the square is empty.
func (p Position) IsEmpty(sq Square) bool {
	return p.PieceAt(sq) == NoPiece
}

// SideToMove returns the color whose turn it is.
func (p Position) SideToMove() Color {
	return p.sideToMove
}

// Castling returns all four castling flags.
func (p Position) Castling() CastlingRights {
	return p.castling
}

// CanCastle reports whether the side still holds the castling right on the wing.
func (p Position) CanCastle(c Color, w Wing) bool {
	return p.castling.Has(c, w)
}

// EnPassantTarget returns the en-passant target square, if there is one.
func (p Position) EnPassantTarget() (Square, bool) {
	return p.enPassant, p.enPassant != NoSquare
}

// HalfMoveClock returns the number of plies since the last capture or pawn move.
func (p Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the move counter, starting at 1.
func (p Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// WithSideToMove returns a copy of the position with the given side to move.
// Used for "what could the other side do from here" queries.
func (p Position) WithSideToMove(c Color) Position {
	p.sideToMove = c
	return p
}

// KingSquare returns the square of the given side's king.
func (p Position) KingSquare(c Color) (Square, error) {
	king := NewPiece(King, c)
	for sq, piece := range p.squares {
		if piece == king {
			return Square(sq), nil
		}
	}
	return NoSquare, fmt.Errorf("%v: %w", c, ErrKingMissing)
}

// mustKingSquare is KingSquare for callers that treat a missing king as a
// corrupted position.
func (p Position) mustKingSquare(c Color) Square {
	sq, err := p.KingSquare(c)
	if err != nil {
		panic(err)
	}
	return sq
}

// Occupied returns the set of squares holding a piece of the given color.
func (p Position) Occupied(c Color) SquareSet {
	var s SquareSet
	for sq, piece := range p.squares {
		if piece != NoPiece && piece.Color() == c {
			s = s.Add(Square(sq))
		}
	}
	return s
}

// String returns the human-readable dump: 8 ranks of 8 characters followed by
// the status lines.
func (p Position) String() string {
	var sb strings.Builder
	for rank := BoardSide; rank >= 1; rank-- {
		fmt.Fprintf(&sb, "%d ", rank)
		for file := 1; file <= BoardSide; file++ {
			piece := p.squares[newSquare(file, rank)]
			if piece == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteString(piece.String())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	fmt.Fprintf(&sb, "%s to play\n", p.sideToMove)
	for _, c := range []Color{White, Black} {
		for _, w := range []Wing{QueenSide, KingSide} {
			if p.castling.Has(c, w) {
				fmt.Fprintf(&sb, "%s can castle %s\n", c, w)
			}
		}
	}
	if p.enPassant != NoSquare {
		fmt.Fprintf(&sb, "En passant allows moving to %s\n", p.enPassant)
	} else {
		sb.WriteString("No en passant\n")
	}
	fmt.Fprintf(&sb, "Had %d moves since capture or pawn advance\n", p.halfMoveClock)
	return sb.String()
}

// Validate checks the invariants a playable position must satisfy.
func (p Position) Validate() error {
	for _, c := range []Color{White, Black} {
		kings := 0
		for _, piece := range p.squares {
			if piece == NewPiece(King, c) {
				kings++
			}
		}
		switch {
		case kings == 0:
			return fmt.Errorf("%v has no king: %w", c, ErrKingMissing)
		case kings > 1:
			return fmt.Errorf("%v has %d kings: %w", c, kings, ErrInvalidFEN)
		}
	}

	// Check that pawns are not on rank 1 or 8
	for file := 1; file <= BoardSide; file++ {
		for _, rank := range []int{1, BoardSide} {
			if p.squares[newSquare(file, rank)].Type() == Pawn {
				return fmt.Errorf("pawn on %v: %w", newSquare(file, rank), ErrInvalidFEN)
			}
		}
	}

	if p.enPassant != NoSquare {
		want := 6
		if p.sideToMove == Black {
			want = 3
		}
		if p.enPassant.Rank() != want {
			return fmt.Errorf("en passant target %v on wrong rank: %w", p.enPassant, ErrInvalidFEN)
		}
	}

	// The side that just moved must not have left its king capturable.
	if p.CanCaptureKing() {
		return fmt.Errorf("%v king can be captured: %w", p.sideToMove.Other(), ErrInvalidFEN)
	}

	return nil
}
