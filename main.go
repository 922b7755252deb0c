// ChessPlay - A chess board built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/chessplay/internal/storage"
	"github.com/hailam/chessplay/internal/ui"
)

var (
	dataDir  = flag.String("data", "", "data directory (default: $"+storage.DataDirEnv+" or the platform data directory)")
	startFEN = flag.String("fen", "", "starting position in FEN (default: the standard initial position)")
	inMemory = flag.Bool("in-memory", false, "do not persist games or preferences")
)

func main() {
	flag.Parse()

	var (
		store *storage.Storage
		err   error
	)
	if *inMemory {
		store, err = storage.OpenInMemory()
	} else {
		store, err = storage.Open(*dataDir)
	}
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game, err := ui.NewGame(ui.Options{StartFEN: *startFEN, Storage: store})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("ChessPlay")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
