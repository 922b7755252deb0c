package board

import "testing"

func TestPseudoMovesInitialPawns(t *testing.T) {
	pos := InitialPosition()

	e2, err := SquareOf(5, 2)
	if err != nil {
		t.Fatal(err)
	}
	assertSet(t, "e2 pseudo-moves", pos.PseudoMoves(e2), set("e3", "e4"))
	assertSet(t, "e2 legal moves", pos.LegalMoves(e2), set("e3", "e4"))

	for file := 1; file <= BoardSide; file++ {
		from := newSquare(file, 2)
		single := newSquare(file, 3)
		double := newSquare(file, 4)
		legal := pos.LegalMoves(from)
		if !legal.Contains(single) || !legal.Contains(double) {
			t.Errorf("%v legal moves %v missing %v or %v", from, legal, single, double)
		}
	}
}

func TestPseudoMovesSlidingStop(t *testing.T) {
	// Rook on a1 with a friendly knight two squares ahead on a3.
	pos := MustParseFEN("4k3/8/8/8/8/N7/8/R3K3 w - - 0 1")
	got := pos.PseudoMoves(A1)

	if !got.Contains(A2) {
		t.Errorf("rook moves %v missing a2", got)
	}
	for _, blocked := range []Square{A3, A4, A8} {
		if got.Contains(blocked) {
			t.Errorf("rook moves %v include %v beyond the friendly piece", got, blocked)
		}
	}
	assertSet(t, "rook a1", got, set("a2", "b1", "c1", "d1"))
}

func TestPseudoMovesCaptureStop(t *testing.T) {
	// Bishop on c1 with an enemy pawn on e3: e3 is a capture, f4 is not reachable.
	pos := MustParseFEN("4k3/8/8/8/8/4p3/8/2B1K3 w - - 0 1")
	assertSet(t, "bishop c1", pos.PseudoMoves(C1), set("b2", "a3", "d2", "e3"))
}

func TestPseudoMovesByPieceType(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from Square
		want SquareSet
	}{
		{"knight in corner", "4k3/8/8/8/8/8/8/N3K3 w - - 0 1", A1, set("b3", "c2")},
		{"knight in centre", "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1", D4,
			set("c6", "e6", "b5", "f5", "b3", "f3", "c2", "e2")},
		{"king next to own pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", E1, set("d1", "f1", "d2", "f2")},
		{"queen boxed in", InitialPosition().FEN(), D1, EmptySet},
		{"queen open", "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1", A1,
			set("a2", "a3", "a4", "a5", "a6", "a7", "a8", "b1", "c1", "d1", "b2", "c3", "d4", "e5", "f6", "g7", "h8")},
		{"black pawn double", InitialPosition().WithSideToMove(Black).FEN(), E7, set("e6", "e5")},
		{"pawn blocked", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", E2, EmptySet},
		{"pawn double blocked", "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1", E2, set("e3")},
		{"pawn captures", "4k3/8/8/8/8/3r1b2/4P3/4K3 w - - 0 1", E2, set("d3", "e3", "e4", "f3")},
		{"pawn on edge", "4k3/8/8/8/8/1p6/P7/4K3 w - - 0 1", A2, set("a3", "a4", "b3")},
		{"empty square", InitialPosition().FEN(), E4, EmptySet},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := MustParseFEN(tc.fen)
			assertSet(t, tc.from.String(), pos.PseudoMoves(tc.from), tc.want)
		})
	}
}

func TestEnPassantGeneration(t *testing.T) {
	pos := MustParseFEN("4k3/5p2/8/4P3/8/8/8/4K3 b - - 0 1").ApplyMove(NewMove(F7, F5))

	if !pos.PseudoMoves(E5).Contains(F6) {
		t.Errorf("e5 pseudo-moves %v missing en passant f6", pos.PseudoMoves(E5))
	}
	if !pos.LegalMoves(E5).Contains(F6) {
		t.Errorf("e5 legal moves %v missing en passant f6", pos.LegalMoves(E5))
	}

	// One ply later the chance is gone.
	later := pos.ApplyMove(NewMove(E1, D1)).ApplyMove(NewMove(E8, D8))
	if later.PseudoMoves(E5).Contains(F6) {
		t.Errorf("en passant still offered after an intervening move")
	}
}

func TestIsAttacked(t *testing.T) {
	pos := MustParseFEN("4k3/8/8/8/8/8/3p4/4K2R w - - 0 1")

	if !pos.IsAttacked(E1, Black) {
		t.Error("pawn on d2 should attack e1")
	}
	if pos.IsAttacked(D1, Black) {
		t.Error("pawn on d2 does not attack d1")
	}
	if !pos.IsAttacked(H8, White) {
		t.Error("rook on h1 should attack h8")
	}
	if !pos.IsAttacked(F1, White) {
		t.Error("king and rook defend f1")
	}
}
