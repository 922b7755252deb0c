// Package console implements a line-oriented text protocol for driving a
// game from a terminal or a script.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/hailam/chessplay/internal/board"
	"github.com/hailam/chessplay/internal/game"
	"github.com/hailam/chessplay/internal/storage"
)

// errQuit ends the command loop.
var errQuit = errors.New("quit")

// ErrNoStorage is returned by archive commands when no storage is attached.
var ErrNoStorage = errors.New("storage not available")

type command struct {
	usage   string
	summary string
	run     func(c *Console, args []string) error
}

// commands is filled in init to let help refer to the table.
var commands map[string]command

func init() {
	commands = map[string]command{
		"position": {"position startpos|fen <fen> [moves m1 m2 ...]", "set up a position", (*Console).handlePosition},
		"move":     {"move <uci|san>", "play a move", (*Console).handleMove},
		"undo":     {"undo", "take back the last move", (*Console).handleUndo},
		"history":  {"history", "list the moves played", (*Console).handleHistory},
		"legal":    {"legal [square]", "legal moves of a piece, or all of them", (*Console).handleLegal},
		"pseudo":   {"pseudo <square>", "moves ignoring king safety", (*Console).handlePseudo},
		"map":      {"map <square>", "draw a piece's legal moves", (*Console).handleMap},
		"check":    {"check", "is the side to move in check", (*Console).handleCheck},
		"fen":      {"fen", "print the position as FEN", (*Console).handleFEN},
		"d":        {"d", "print the board", (*Console).handleDisplay},
		"perft":    {"perft <depth>", "count leaf nodes, split by first move", (*Console).handlePerft},
		"save":     {"save <name>", "save the game", (*Console).handleSave},
		"load":     {"load <name>", "load a saved game", (*Console).handleLoad},
		"games":    {"games", "list saved games", (*Console).handleGames},
		"delete":   {"delete <name>", "delete a saved game", (*Console).handleDelete},
		"pgn":      {"pgn <name>", "export a saved game as PGN", (*Console).handlePGN},
		"help":     {"help", "list commands", (*Console).handleHelp},
		"quit":     {"quit", "exit", func(*Console, []string) error { return errQuit }},
	}
}

// Console reads commands from in and writes responses to out.
type Console struct {
	in      io.Reader
	out     io.Writer
	session *game.Game
	store   *storage.Storage // nil disables the archive commands
}

// New creates a console playing from the initial position. store may be nil.
func New(in io.Reader, out io.Writer, store *storage.Storage) *Console {
	return &Console{
		in:      in,
		out:     out,
		session: game.New(),
		store:   store,
	}
}

// SetPosition replaces the game with one starting from fen.
func (c *Console) SetPosition(fen string) error {
	g, err := game.FromFEN(fen)
	if err != nil {
		return err
	}
	c.session = g
	return nil
}

// Run processes commands until quit or end of input. Command errors are
// reported on out and do not stop the loop.
func (c *Console) Run() error {
	scanner := bufio.NewScanner(c.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		err := c.Execute(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

// Execute runs a single command line.
func (c *Console) Execute(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	cmd, ok := commands[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", parts[0])
	}
	return cmd.run(c, parts[1:])
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (c *Console) handlePosition(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: " + commands["position"].usage)
	}

	movesAt := len(args)
	for i, arg := range args {
		if arg == "moves" {
			movesAt = i
			break
		}
	}

	var fen string
	switch args[0] {
	case "startpos":
		if movesAt != 1 {
			return fmt.Errorf("unexpected %q after startpos", args[1])
		}
	case "fen":
		fen = strings.Join(args[1:movesAt], " ")
		if fen == "" {
			return errors.New("missing FEN")
		}
	default:
		return fmt.Errorf("expected startpos or fen, got %q", args[0])
	}

	var moves []string
	if movesAt < len(args) {
		moves = args[movesAt+1:]
	}
	g, err := game.Replay(fen, moves)
	if err != nil {
		return err
	}
	c.session = g
	return nil
}

func (c *Console) handleMove(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: " + commands["move"].usage)
	}
	if _, err := c.session.PlayText(args[0]); err != nil {
		return err
	}
	sans := c.session.SANMoves()
	c.printf("played %s\n", sans[len(sans)-1])
	return nil
}

func (c *Console) handleUndo([]string) error {
	m, err := c.session.Undo()
	if err != nil {
		return err
	}
	c.printf("undone %v\n", m)
	return nil
}

func (c *Console) handleHistory([]string) error {
	sans := c.session.SANMoves()
	if len(sans) == 0 {
		c.printf("no moves\n")
		return nil
	}

	// Number from the starting position's move counter.
	start := c.session.Start()
	num := start.FullMoveNumber()
	var sb strings.Builder
	for i, san := range sans {
		blackFirst := start.SideToMove() == board.Black
		switch {
		case i == 0 && blackFirst:
			fmt.Fprintf(&sb, "%d... %s", num, san)
			num++
		case (i%2 == 0) != blackFirst:
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d. %s", num, san)
		default:
			fmt.Fprintf(&sb, " %s", san)
			num++
		}
	}
	c.printf("%s\n", sb.String())
	return nil
}

func (c *Console) parseSquareArg(cmd string, args []string) (board.Square, error) {
	if len(args) != 1 {
		return board.NoSquare, errors.New("usage: " + commands[cmd].usage)
	}
	return board.ParseSquare(args[0])
}

func (c *Console) handleLegal(args []string) error {
	pos := c.session.Current()
	if len(args) == 0 {
		var out []string
		for _, m := range pos.LegalMoveList() {
			out = append(out, m.String())
		}
		slices.Sort(out)
		c.printf("%d moves: %s\n", len(out), strings.Join(out, " "))
		return nil
	}

	sq, err := c.parseSquareArg("legal", args)
	if err != nil {
		return err
	}
	c.printf("%v\n", pos.LegalMoves(sq))
	return nil
}

func (c *Console) handlePseudo(args []string) error {
	sq, err := c.parseSquareArg("pseudo", args)
	if err != nil {
		return err
	}
	c.printf("%v\n", c.session.Current().PseudoMoves(sq))
	return nil
}

func (c *Console) handleMap(args []string) error {
	sq, err := c.parseSquareArg("map", args)
	if err != nil {
		return err
	}
	c.printf("%s", c.session.Current().LegalMoves(sq).Diagram())
	return nil
}

func (c *Console) handleCheck([]string) error {
	pos := c.session.Current()
	if pos.InCheck() {
		c.printf("%v is in check\n", pos.SideToMove())
	} else {
		c.printf("%v is not in check\n", pos.SideToMove())
	}
	return nil
}

func (c *Console) handleFEN([]string) error {
	c.printf("%s\n", c.session.Current().FEN())
	return nil
}

func (c *Console) handleDisplay([]string) error {
	c.printf("%s", c.session.Current())
	return nil
}

func (c *Console) handlePerft(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: " + commands["perft"].usage)
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		return fmt.Errorf("invalid depth %q", args[0])
	}

	pos := c.session.Current()
	start := time.Now()
	var nodes int64
	for _, m := range pos.LegalMoveList() {
		n := board.Perft(pos.ApplyMove(m), depth-1)
		c.printf("%v: %d\n", m, n)
		nodes += n
	}
	elapsed := time.Since(start)

	c.printf("Nodes: %d\n", nodes)
	c.printf("Time: %v\n", elapsed.Round(time.Millisecond))
	return nil
}

func (c *Console) requireStore() error {
	if c.store == nil {
		return ErrNoStorage
	}
	return nil
}

func nameArg(cmd string, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("usage: " + commands[cmd].usage)
	}
	return strings.Join(args, " "), nil
}

func (c *Console) handleSave(args []string) error {
	if err := c.requireStore(); err != nil {
		return err
	}
	name, err := nameArg("save", args)
	if err != nil {
		return err
	}
	if err := c.store.SaveGame(name, c.session); err != nil {
		return err
	}
	c.printf("saved %q (%d moves)\n", name, c.session.Len())
	return nil
}

func (c *Console) handleLoad(args []string) error {
	if err := c.requireStore(); err != nil {
		return err
	}
	name, err := nameArg("load", args)
	if err != nil {
		return err
	}
	g, err := c.store.LoadGame(name)
	if err != nil {
		return err
	}
	c.session = g
	c.printf("loaded %q (%d moves)\n", name, g.Len())
	return nil
}

func (c *Console) handleGames([]string) error {
	if err := c.requireStore(); err != nil {
		return err
	}
	games, err := c.store.ListGames()
	if err != nil {
		return err
	}
	if len(games) == 0 {
		c.printf("no saved games\n")
		return nil
	}
	for _, sg := range games {
		c.printf("%s\t%d moves\t%s\n", sg.Name, len(sg.Moves), sg.SavedAt.Format(time.DateTime))
	}
	return nil
}

func (c *Console) handleDelete(args []string) error {
	if err := c.requireStore(); err != nil {
		return err
	}
	name, err := nameArg("delete", args)
	if err != nil {
		return err
	}
	if err := c.store.DeleteGame(name); err != nil {
		return err
	}
	c.printf("deleted %q\n", name)
	return nil
}

func (c *Console) handlePGN(args []string) error {
	if err := c.requireStore(); err != nil {
		return err
	}
	name, err := nameArg("pgn", args)
	if err != nil {
		return err
	}
	pgn, err := c.store.ExportPGN(name)
	if err != nil {
		return err
	}
	c.printf("%s\n", strings.TrimRight(pgn, "\n"))
	return nil
}

func (c *Console) handleHelp([]string) error {
	names := maps.Keys(commands)
	slices.Sort(names)
	for _, name := range names {
		cmd := commands[name]
		c.printf("  %-46s %s\n", cmd.usage, cmd.summary)
	}
	return nil
}
