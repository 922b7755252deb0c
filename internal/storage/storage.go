package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/notnil/chess"

	"github.com/hailam/chessplay/internal/board"
	"github.com/hailam/chessplay/internal/game"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyFirstLaunch = "first_launch"
	gamePrefix     = "game/"
)

// ErrGameNotFound is returned when no game is saved under the given name.
var ErrGameNotFound = errors.New("saved game not found")

// ErrInvalidName is returned for empty game names.
var ErrInvalidName = errors.New("invalid game name")

// UserPreferences stores user settings
type UserPreferences struct {
	FlipBoard  bool      `json:"flip_board"`
	ShowHints  bool      `json:"show_hints"`
	SoundOn    bool      `json:"sound_on"`
	LastGame   string    `json:"last_game"`
	LastPlayed time.Time `json:"last_played"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		FlipBoard:  false,
		ShowHints:  true,
		SoundOn:    true,
		LastPlayed: time.Now(),
	}
}

// SavedGame is a game as stored: where it started and the moves in UCI notation.
type SavedGame struct {
	Name     string    `json:"name"`
	StartFEN string    `json:"start_fen"`
	Moves    []string  `json:"moves"`
	SavedAt  time.Time `json:"saved_at"`
}

// Game rebuilds the playable game by replaying the stored moves.
func (sg *SavedGame) Game() (*game.Game, error) {
	return game.Replay(sg.StartFEN, sg.Moves)
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	return Open("")
}

// Open opens the database under dataDir, or the platform data directory when
// dataDir is empty.
func Open(dataDir string) (*Storage, error) {
	dbDir, err := GetDatabaseDir(dataDir)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbDir, err)
	}

	return &Storage{db: db}, nil
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory database: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch
func (s *Storage) IsFirstLaunch() (bool, error) {
	var firstLaunch bool = true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			firstLaunch = true
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

func gameKey(name string) []byte {
	return []byte(gamePrefix + name)
}

// SaveGame stores g under name, replacing any game already saved there.
func (s *Storage) SaveGame(name string, g *game.Game) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}

	sg := SavedGame{
		Name:     name,
		StartFEN: g.Start().FEN(),
		Moves:    g.UCIMoves(),
		SavedAt:  time.Now(),
	}
	data, err := json.Marshal(sg)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(name), data)
	})
	if err != nil {
		return fmt.Errorf("save game %q: %w", name, err)
	}
	return nil
}

// LoadSavedGame returns the stored record for name.
func (s *Storage) LoadSavedGame(name string) (*SavedGame, error) {
	var sg SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(name))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, ErrGameNotFound)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sg)
		})
	})
	if err != nil {
		return nil, err
	}
	return &sg, nil
}

// LoadGame loads and replays the game saved under name.
func (s *Storage) LoadGame(name string) (*game.Game, error) {
	sg, err := s.LoadSavedGame(name)
	if err != nil {
		return nil, err
	}
	g, err := sg.Game()
	if err != nil {
		return nil, fmt.Errorf("replay %q: %w", name, err)
	}
	return g, nil
}

// ListGames returns every saved game, ordered by name.
func (s *Storage) ListGames() ([]SavedGame, error) {
	var games []SavedGame

	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(gamePrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var sg SavedGame
				if err := json.Unmarshal(val, &sg); err != nil {
					return err
				}
				games = append(games, sg)
				return nil
			})
			if err != nil {
				log.Printf("Warning: skipping unreadable saved game %s: %v", item.Key(), err)
			}
		}
		return nil
	})

	return games, err
}

// DeleteGame removes the game saved under name.
func (s *Storage) DeleteGame(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(name)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("%q: %w", name, ErrGameNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(gameKey(name))
	})
}

// ExportPGN renders the game saved under name as PGN.
func (s *Storage) ExportPGN(name string) (string, error) {
	sg, err := s.LoadSavedGame(name)
	if err != nil {
		return "", err
	}

	fen, err := chess.FEN(sg.StartFEN)
	if err != nil {
		return "", fmt.Errorf("export %q: %w", name, err)
	}
	pgn := chess.NewGame(fen, chess.UseNotation(chess.UCINotation{}))
	for i, m := range sg.Moves {
		if err := pgn.MoveStr(m); err != nil {
			return "", fmt.Errorf("export %q move %d %s: %w", name, i+1, m, err)
		}
	}

	chess.UseNotation(chess.AlgebraicNotation{})(pgn)
	pgn.AddTagPair("Event", sg.Name)
	pgn.AddTagPair("Site", appName)
	pgn.AddTagPair("Date", sg.SavedAt.Format("2006.01.02"))
	if sg.StartFEN != board.StartFEN {
		pgn.AddTagPair("SetUp", "1")
		pgn.AddTagPair("FEN", sg.StartFEN)
	}
	return pgn.String(), nil
}
