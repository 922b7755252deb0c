package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hailam/chessplay/internal/board"
	"github.com/hailam/chessplay/internal/storage"
)

// run feeds script to a fresh console and returns its output lines.
func run(t *testing.T, store *storage.Storage, script string) []string {
	t.Helper()
	var out bytes.Buffer
	c := New(strings.NewReader(script), &out, store)
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestTranscript(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{
			name:   "moves and fen",
			script: "move e2e4\nmove e5\nmove Nf3\nfen\n",
			want: []string{
				"played e4",
				"played e5",
				"played Nf3",
				"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
			},
		},
		{
			name:   "legal and pseudo sets",
			script: "legal e2\nlegal e7\npseudo e7\nlegal e4\n",
			want:   []string{"{e4 e3}", "{}", "{e6 e5}", "{}"},
		},
		{
			name:   "pinned piece",
			script: "position fen 4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1\npseudo e2\nlegal e2\n",
			want:   []string{"{a6 b5 h5 c4 g4 d3 f3 d1 f1}", "{}"},
		},
		{
			name:   "check",
			script: "position startpos moves f2f3 e7e5 g2g4 d8h4\ncheck\nlegal\n",
			want:   []string{"White is in check", "0 moves: "},
		},
		{
			name:   "undo",
			script: "move d4\nundo\nundo\nfen\n",
			want: []string{
				"played d4",
				"undone d2d4",
				"error: no moves to undo",
				board.StartFEN,
			},
		},
		{
			name:   "history from black",
			script: "position fen 4k3/8/8/8/8/8/4P3/4K3 b - - 0 12 moves e8d7 e2e4 d7d6\nhistory\n",
			want:   []string{"12... Kd7 13. e4 Kd6"},
		},
		{
			name:   "errors keep the loop alive",
			script: "bogus\nmove e2e5\nposition fen 8/8/8/8/8/8/8/8 w - - 0 1\nlegal z9\nperft 0\nsave x\nfen\n",
			want: []string{
				`error: unknown command "bogus" (try help)`,
				"error: e2e5: illegal move",
				"error: invalid FEN: White has no king: king missing from board",
				`error: invalid square "z9": file 26 rank 9: square out of range`,
				`error: invalid depth "0"`,
				"error: storage not available",
				board.StartFEN,
			},
		},
		{
			name:   "quit stops reading",
			script: "# comment\n\nquit\nfen\n",
			want:   []string{""},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := run(t, nil, tc.script)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("transcript mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPerft(t *testing.T) {
	got := run(t, nil, "perft 2\n")
	if len(got) != 22 {
		t.Fatalf("perft 2 printed %d lines, want 20 moves plus totals:\n%s", len(got), strings.Join(got, "\n"))
	}
	if got[20] != "Nodes: 400" {
		t.Errorf("totals line = %q, want Nodes: 400", got[20])
	}
	if !strings.HasPrefix(got[21], "Time: ") {
		t.Errorf("last line = %q, want Time:", got[21])
	}
}

func TestDisplay(t *testing.T) {
	got := run(t, nil, "d\n")
	if got[0] != "8 rnbqkbnr" || got[8] != "  abcdefgh" || got[9] != "White to play" {
		t.Errorf("unexpected dump:\n%s", strings.Join(got, "\n"))
	}
}

func TestArchiveCommands(t *testing.T) {
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	got := run(t, store, strings.Join([]string{
		"position startpos moves e2e4 e7e5",
		"save opening",
		"position startpos",
		"load opening",
		"fen",
		"load missing",
		"delete opening",
		"games",
	}, "\n"))

	want := []string{
		`saved "opening" (2 moves)`,
		`loaded "opening" (2 moves)`,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		`error: "missing": saved game not found`,
		`deleted "opening"`,
		"no saved games",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestPGNCommand(t *testing.T) {
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	got := strings.Join(run(t, store, "move e4\nmove e5\nsave kings pawn\npgn kings pawn\ngames\n"), "\n")
	for _, want := range []string{`[Event "kings pawn"]`, "e4", "e5", "kings pawn\t2 moves"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestHelpListsCommandsSorted(t *testing.T) {
	got := run(t, nil, "help\n")
	if len(got) != len(commands) {
		t.Fatalf("help printed %d lines for %d commands", len(got), len(commands))
	}
	if !strings.HasPrefix(strings.TrimSpace(got[0]), "check") {
		t.Errorf("first help line = %q, want check", got[0])
	}
	if !strings.HasPrefix(strings.TrimSpace(got[len(got)-1]), "undo") {
		t.Errorf("last help line = %q, want undo", got[len(got)-1])
	}
}
