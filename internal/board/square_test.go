package board

import (
	"errors"
	"testing"
)

func TestSquareRoundTrip(t *testing.T) {
	for index := 0; index < BoardSide*BoardSide; index++ {
		sq, err := SquareFromIndex(index)
		if err != nil {
			t.Fatalf("SquareFromIndex(%d): %v", index, err)
		}
		file, rank := sq.FileRank()
		back, err := SquareOf(file, rank)
		if err != nil {
			t.Fatalf("SquareOf(%d, %d): %v", file, rank, err)
		}
		if int(back) != index {
			t.Errorf("SquareOf(FileRank(%d)) = %d", index, back)
		}
	}
}

func TestSquareLayout(t *testing.T) {
	tests := []struct {
		file, rank int
		want       Square
		name       string
	}{
		{1, 8, 0, "a8"},
		{8, 8, 7, "h8"},
		{1, 1, 56, "a1"},
		{8, 1, 63, "h1"},
		{5, 2, 52, "e2"},
		{5, 1, E1, "e1"},
	}

	for _, tc := range tests {
		got, err := SquareOf(tc.file, tc.rank)
		if err != nil {
			t.Fatalf("SquareOf(%d, %d): %v", tc.file, tc.rank, err)
		}
		if got != tc.want {
			t.Errorf("SquareOf(%d, %d) = %d, want %d", tc.file, tc.rank, got, tc.want)
		}
		if got.String() != tc.name {
			t.Errorf("Square(%d).String() = %q, want %q", got, got.String(), tc.name)
		}
		parsed, err := ParseSquare(tc.name)
		if err != nil || parsed != tc.want {
			t.Errorf("ParseSquare(%q) = %v, %v", tc.name, parsed, err)
		}
	}
}

func TestSquareOutOfRange(t *testing.T) {
	for _, fr := range [][2]int{{0, 1}, {9, 1}, {1, 0}, {1, 9}, {-3, 4}} {
		_, err := SquareOf(fr[0], fr[1])
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SquareOf(%d, %d) error = %v, want ErrOutOfRange", fr[0], fr[1], err)
		}
		var se *SquareError
		if !errors.As(err, &se) || se.File != fr[0] || se.Rank != fr[1] {
			t.Errorf("SquareOf(%d, %d) did not return a SquareError with coordinates", fr[0], fr[1])
		}
	}

	for _, index := range []int{-1, 64, 100} {
		if _, err := SquareFromIndex(index); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("SquareFromIndex(%d) error = %v, want ErrOutOfRange", index, err)
		}
	}

	for _, s := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) succeeded, want error", s)
		}
	}

	if _, err := InitialPosition().SquareAt(9, 9); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SquareAt(9, 9) error = %v, want ErrOutOfRange", err)
	}
}

func TestSquareOffset(t *testing.T) {
	if got, ok := E2.Offset(0, 2); !ok || got != E4 {
		t.Errorf("e2 +0,+2 = %v, %v; want e4", got, ok)
	}
	if _, ok := H1.Offset(1, 0); ok {
		t.Error("h1 +1,0 should leave the board")
	}
	if _, ok := A8.Offset(0, 1); ok {
		t.Error("a8 0,+1 should leave the board")
	}
	if E7.RelativeRank(Black) != 2 || E2.RelativeRank(White) != 2 {
		t.Error("RelativeRank of starting pawn ranks should be 2")
	}
}

func TestSquareSet(t *testing.T) {
	s := SquareSetOf(E4, E3, E4, NoSquare)
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2 (duplicates and NoSquare ignored)", s.Len())
	}
	if !s.Contains(E3) || s.Contains(E5) || s.Contains(NoSquare) {
		t.Errorf("unexpected membership in %v", s)
	}
	if s.String() != "{e4 e3}" {
		t.Errorf("String = %q", s.String())
	}
	if s.Remove(E4).Union(SquareSetOf(A1)) != SquareSetOf(E3, A1) {
		t.Errorf("Remove/Union mismatch")
	}
}
