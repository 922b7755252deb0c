// Package game keeps the history of a single game: the positions reached and
// the moves that connect them.
package game

import (
	"errors"
	"fmt"

	"github.com/hailam/chessplay/internal/board"
)

// ErrNothingToUndo is returned by Undo on a game with no moves played.
var ErrNothingToUndo = errors.New("no moves to undo")

// Game is an append-only record of positions. positions[0] is the starting
// position and positions[i+1] is positions[i] with moves[i] applied.
type Game struct {
	positions []board.Position
	moves     []board.Move
	sans      []string
}

// New starts a game from the standard initial position.
func New() *Game {
	return FromPosition(board.InitialPosition())
}

// FromPosition starts a game from an arbitrary position.
func FromPosition(pos board.Position) *Game {
	return &Game{positions: []board.Position{pos}}
}

// FromFEN starts a game from a FEN string.
func FromFEN(fen string) (*Game, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return FromPosition(pos), nil
}

// Replay rebuilds a game from a starting FEN and a list of moves in UCI or
// SAN notation. An empty fen means the initial position.
func Replay(fen string, moves []string) (*Game, error) {
	g := New()
	if fen != "" {
		var err error
		if g, err = FromFEN(fen); err != nil {
			return nil, err
		}
	}
	for i, text := range moves {
		if _, err := g.PlayText(text); err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return g, nil
}

// Current returns the position after the last move.
func (g *Game) Current() board.Position {
	return g.positions[len(g.positions)-1]
}

// Start returns the position the game began from.
func (g *Game) Start() board.Position {
	return g.positions[0]
}

// Moves returns a copy of the moves played so far.
func (g *Game) Moves() []board.Move {
	return append([]board.Move(nil), g.moves...)
}

// SANMoves returns the moves played so far in Standard Algebraic Notation.
func (g *Game) SANMoves() []string {
	return append([]string(nil), g.sans...)
}

// UCIMoves returns the moves played so far in UCI notation.
func (g *Game) UCIMoves() []string {
	out := make([]string, len(g.moves))
	for i, m := range g.moves {
		out[i] = m.String()
	}
	return out
}

// Len returns the number of moves played.
func (g *Game) Len() int {
	return len(g.moves)
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (board.Move, bool) {
	if len(g.moves) == 0 {
		return board.NoMove, false
	}
	return g.moves[len(g.moves)-1], true
}

// Play applies m to the current position if it is legal. A pawn move to the
// last rank without a promotion piece promotes to a queen.
func (g *Game) Play(m board.Move) error {
	pos := g.Current()
	m = WithDefaultPromotion(pos, m)
	if !pos.IsLegal(m) {
		return fmt.Errorf("%v: %w", m, board.ErrIllegalMove)
	}

	g.sans = append(g.sans, pos.SAN(m))
	g.moves = append(g.moves, m)
	g.positions = append(g.positions, pos.ApplyMove(m))
	return nil
}

// PlayText parses s as a UCI move, falling back to SAN, and plays it.
func (g *Game) PlayText(s string) (board.Move, error) {
	m, err := board.ParseMove(s)
	if err != nil {
		if m, err = g.Current().ParseSAN(s); err != nil {
			return board.NoMove, err
		}
	}
	if err := g.Play(m); err != nil {
		return board.NoMove, err
	}
	return g.moves[len(g.moves)-1], nil
}

// Undo takes back the last move and returns it.
func (g *Game) Undo() (board.Move, error) {
	if len(g.moves) == 0 {
		return board.NoMove, ErrNothingToUndo
	}
	last := len(g.moves) - 1
	m := g.moves[last]
	g.moves = g.moves[:last]
	g.sans = g.sans[:last]
	g.positions = g.positions[:last+1]
	return m, nil
}

// WithDefaultPromotion fills in a queen as the promotion piece when m moves a
// pawn of the side to move onto its last rank without naming one.
func WithDefaultPromotion(pos board.Position, m board.Move) board.Move {
	if m.Promotion != board.NoPieceType || !m.To.IsValid() {
		return m
	}
	piece := pos.PieceAt(m.From)
	if piece.Type() == board.Pawn && m.To.RelativeRank(piece.Color()) == board.BoardSide {
		m.Promotion = board.Queen
	}
	return m
}
