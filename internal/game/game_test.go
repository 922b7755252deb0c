package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hailam/chessplay/internal/board"
)

func TestPlayAndUndo(t *testing.T) {
	g := New()
	for _, text := range []string{"e2e4", "e5", "Nf3", "b8c6"} {
		if _, err := g.PlayText(text); err != nil {
			t.Fatalf("PlayText(%q): %v", text, err)
		}
	}

	if diff := cmp.Diff([]string{"e4", "e5", "Nf3", "Nc6"}, g.SANMoves()); diff != "" {
		t.Errorf("SAN history mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"e2e4", "e7e5", "g1f3", "b8c6"}, g.UCIMoves()); diff != "" {
		t.Errorf("UCI history mismatch (-want +got):\n%s", diff)
	}

	want := "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"
	if got := g.Current().FEN(); got != want {
		t.Errorf("Current().FEN() = %q, want %q", got, want)
	}

	m, err := g.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if m.String() != "b8c6" {
		t.Errorf("Undo() = %v, want b8c6", m)
	}
	if g.Len() != 3 || g.Current().SideToMove() != board.Black {
		t.Errorf("after undo: len=%d side=%v", g.Len(), g.Current().SideToMove())
	}

	for g.Len() > 0 {
		if _, err := g.Undo(); err != nil {
			t.Fatal(err)
		}
	}
	if g.Current() != board.InitialPosition() {
		t.Error("undoing every move did not restore the initial position")
	}
	if _, err := g.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo on empty game = %v, want ErrNothingToUndo", err)
	}
}

func TestPlayRejectsIllegal(t *testing.T) {
	g := New()
	tests := []string{"e2e5", "e7e5", "Ke2", "zz"}
	for _, text := range tests {
		if _, err := g.PlayText(text); err == nil {
			t.Errorf("PlayText(%q) succeeded", text)
		}
	}
	if g.Len() != 0 {
		t.Errorf("illegal moves changed the history: %v", g.UCIMoves())
	}

	if err := g.Play(board.NewMove(board.E2, board.E5)); !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("Play(e2e5) = %v, want ErrIllegalMove", err)
	}
}

func TestDefaultPromotion(t *testing.T) {
	g, err := FromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m, err := g.PlayText("a7a8")
	if err != nil {
		t.Fatal(err)
	}
	if m.Promotion != board.Queen {
		t.Errorf("promotion = %v, want Queen", m.Promotion)
	}
	if got := g.Current().PieceAt(board.A8); got != board.NewPiece(board.Queen, board.White) {
		t.Errorf("a8 holds %v after promotion", got)
	}

	// An explicit choice is kept.
	g, _ = FromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if m, err = g.PlayText("a7a8n"); err != nil || m.Promotion != board.Knight {
		t.Errorf("a7a8n = %v, %v", m, err)
	}
}

func TestReplay(t *testing.T) {
	g, err := Replay("", []string{"f3", "e5", "g4", "Qh4"})
	if err != nil {
		t.Fatal(err)
	}
	if !g.Current().InCheck() || len(g.Current().LegalMoveList()) != 0 {
		t.Error("fool's mate replay did not reach a mated position")
	}
	if g.Start() != board.InitialPosition() {
		t.Error("Start() is not the initial position")
	}

	_, err = Replay("", []string{"e4", "e4"})
	if !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("Replay with illegal move = %v, want ErrIllegalMove", err)
	}

	_, err = Replay("not a fen", nil)
	if !errors.Is(err, board.ErrInvalidFEN) {
		t.Errorf("Replay with bad FEN = %v, want ErrInvalidFEN", err)
	}
}

func TestMovesIsACopy(t *testing.T) {
	g := New()
	if _, err := g.PlayText("e4"); err != nil {
		t.Fatal(err)
	}
	moves := g.Moves()
	moves[0] = board.NoMove
	if last, ok := g.LastMove(); !ok || last.String() != "e2e4" {
		t.Errorf("history mutated through Moves(): %v", last)
	}
}
