// Package view holds the board's interaction state and derives what a
// front-end should draw from it. Nothing here depends on a graphics library.
package view

import (
	"fmt"

	"github.com/hailam/chessplay/internal/board"
)

// State is everything the board display depends on: the position shown and
// the pointer's relationship to it. It is a value; transitions return a new one.
type State struct {
	Position board.Position
	Selected board.Square // piece in hand, NoSquare when none
	Hover    board.Square // square under the pointer, NoSquare when off the board
}

// NewState returns a state showing pos with nothing selected or hovered.
func NewState(pos board.Position) State {
	return State{Position: pos, Selected: board.NoSquare, Hover: board.NoSquare}
}

// Square is the rendering of one board square.
type Square struct {
	Square       board.Square
	Piece        board.Piece
	InHand       bool // the selected piece stands here
	Hover        bool // the pointer is over this square
	Move         bool // a legal destination of the focused piece
	Interactable bool // clicking here does something
	Check        bool // the king of the side to move stands here in check
}

// View is the full rendering of a State.
type View struct {
	Squares [64]Square
	Status  []string
}

// Focus returns the square whose moves are shown: the piece in hand, or else
// the hovered piece when it belongs to the side to move.
func (s State) Focus() board.Square {
	if s.Selected != board.NoSquare {
		return s.Selected
	}
	if s.ownPiece(s.Hover) {
		return s.Hover
	}
	return board.NoSquare
}

func (s State) ownPiece(sq board.Square) bool {
	if !sq.IsValid() {
		return false
	}
	piece := s.Position.PieceAt(sq)
	return piece != board.NoPiece && piece.Color() == s.Position.SideToMove()
}

// Compute derives the view from s. It is a pure function.
func Compute(s State) View {
	var v View
	pos := s.Position

	var moves board.SquareSet
	if focus := s.Focus(); focus != board.NoSquare {
		moves = pos.LegalMoves(focus)
	}

	inCheck := pos.InCheck()
	king, _ := pos.KingSquare(pos.SideToMove())

	for i := range v.Squares {
		sq := board.Square(i)
		move := moves.Contains(sq)
		v.Squares[i] = Square{
			Square:       sq,
			Piece:        pos.PieceAt(sq),
			InHand:       sq == s.Selected,
			Hover:        sq == s.Hover,
			Move:         move,
			Interactable: move || s.ownPiece(sq),
			Check:        inCheck && sq == king,
		}
	}

	v.Status = Status(pos)
	return v
}

// Status returns the text lines describing pos below the board.
func Status(pos board.Position) []string {
	check := "Not in check"
	if pos.InCheck() {
		check = "In check!"
	}
	return []string{
		fmt.Sprintf("%s to play", pos.SideToMove()),
		check,
		fmt.Sprintf("%d moves since capture or pawn advance", pos.HalfMoveClock()),
	}
}

// HoverOver moves the pointer to sq; NoSquare means it left the board.
func (s State) HoverOver(sq board.Square) State {
	if !sq.IsValid() {
		sq = board.NoSquare
	}
	s.Hover = sq
	return s
}

// Click handles a press on sq and returns the new state. When the press puts
// the piece in hand down on one of its legal destinations, the move to play
// is returned with ok set; the caller applies it and calls WithPosition.
//
// With nothing in hand, a press on a piece of the side to move picks it up.
// With a piece in hand, a press elsewhere drops it, picking up the pressed
// piece instead if it is one of ours. A press off the board drops it.
func (s State) Click(sq board.Square) (next State, m board.Move, ok bool) {
	if !sq.IsValid() {
		s.Selected = board.NoSquare
		return s, board.NoMove, false
	}

	if s.Selected != board.NoSquare && s.Selected != sq {
		if s.Position.LegalMoves(s.Selected).Contains(sq) {
			m = board.NewMove(s.Selected, sq)
			s.Selected = board.NoSquare
			return s, m, true
		}
	}

	if s.Selected == sq {
		s.Selected = board.NoSquare
		return s, board.NoMove, false
	}

	s.Selected = board.NoSquare
	if s.ownPiece(sq) {
		s.Selected = sq
	}
	return s, board.NoMove, false
}

// WithPosition shows pos, dropping any piece in hand.
func (s State) WithPosition(pos board.Position) State {
	s.Position = pos
	s.Selected = board.NoSquare
	return s
}
