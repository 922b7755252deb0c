package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPositionString(t *testing.T) {
	want := `8 rnbqkbnr
7 pppppppp
6 ........
5 ........
4 ........
3 ........
2 PPPPPPPP
1 RNBQKBNR
  abcdefgh
White to play
White can castle queenside
White can castle kingside
Black can castle queenside
Black can castle kingside
No en passant
Had 0 moves since capture or pawn advance
`
	if diff := cmp.Diff(want, InitialPosition().String()); diff != "" {
		t.Errorf("initial dump mismatch (-want +got):\n%s", diff)
	}

	pos := InitialPosition().ApplyMove(NewMove(E2, E4))
	got := pos.String()
	for _, line := range []string{"Black to play", "En passant allows moving to e3"} {
		if !containsLine(got, line) {
			t.Errorf("dump missing %q:\n%s", line, got)
		}
	}
}

func containsLine(dump, line string) bool {
	start := 0
	for i := 0; i < len(dump); i++ {
		if dump[i] == '\n' {
			if dump[start:i] == line {
				return true
			}
			start = i + 1
		}
	}
	return false
}

func TestSquareAt(t *testing.T) {
	pos := InitialPosition()
	piece, err := pos.SquareAt(4, 8)
	if err != nil {
		t.Fatal(err)
	}
	if piece != NewPiece(Queen, Black) {
		t.Errorf("SquareAt(d8) = %v, want q", piece)
	}

	if _, err := pos.SquareAt(0, 3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SquareAt(0, 3) error = %v, want ErrOutOfRange", err)
	}
}

func TestCastlingRightsString(t *testing.T) {
	tests := []struct {
		cr   CastlingRights
		want string
	}{
		{AllCastling, "KQkq"},
		{CastlingRights{}, "-"},
		{CastlingRights{WhiteKingSide: true, BlackQueenSide: true}, "Kq"},
	}
	for _, tc := range tests {
		if got := tc.cr.String(); got != tc.want {
			t.Errorf("%+v.String() = %q, want %q", tc.cr, got, tc.want)
		}
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    Move
		wantErr bool
	}{
		{"e2e4", NewMove(E2, E4), false},
		{"e7e8q", NewPromotion(E7, E8, Queen), false},
		{"a2a1n", NewPromotion(A2, A1, Knight), false},
		{"e7e8k", NoMove, true},
		{"e2", NoMove, true},
		{"i2e4", NoMove, true},
		{"e2e9", NoMove, true},
	}
	for _, tc := range tests {
		got, err := ParseMove(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseMove(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidMove) {
				t.Errorf("ParseMove(%q) error %v does not wrap ErrInvalidMove", tc.in, err)
			}
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tc.in)
		}
	}
}
