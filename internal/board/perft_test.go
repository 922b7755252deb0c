package board

import "testing"

// Reference node counts from the chess programming community's perft tables.
var perftTests = []struct {
	name   string
	fen    string
	counts []int64
	slow   []int64 // deeper counts, skipped with -short
}{
	{
		name:   "initial",
		fen:    StartFEN,
		counts: []int64{20, 400, 8902},
		slow:   []int64{197281},
	},
	{
		name:   "kiwipete",
		fen:    "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		counts: []int64{48, 2039},
		slow:   []int64{97862},
	},
	{
		name:   "endgame",
		fen:    "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		counts: []int64{14, 191, 2812},
	},
	{
		name:   "promotions",
		fen:    "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		counts: []int64{6, 264},
		slow:   []int64{9467},
	},
	{
		name:   "discovered check",
		fen:    "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		counts: []int64{44, 1486},
		slow:   []int64{62379},
	},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftTests {
		t.Run(tc.name, func(t *testing.T) {
			pos := MustParseFEN(tc.fen)
			counts := tc.counts
			if !testing.Short() {
				counts = append(append([]int64{}, counts...), tc.slow...)
			}
			for i, want := range counts {
				depth := i + 1
				if got := Perft(pos, depth); got != want {
					t.Errorf("perft(%d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

func TestPerftZero(t *testing.T) {
	if got := Perft(InitialPosition(), 0); got != 1 {
		t.Errorf("perft(0) = %d, want 1", got)
	}
}

func BenchmarkPerft3(b *testing.B) {
	pos := InitialPosition()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Perft(pos, 3)
	}
}
