// Command chessplay-cli drives a game over a line-oriented text protocol on
// stdin and stdout. Type "help" for the command list.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/chessplay/internal/console"
	"github.com/hailam/chessplay/internal/storage"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	dataDir    = flag.String("data", "", "data directory (default: $"+storage.DataDirEnv+" or the platform data directory)")
	startFEN   = flag.String("fen", "", "starting position in FEN")
	inMemory   = flag.Bool("in-memory", false, "keep saved games in memory only")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

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
		// Archive commands report the missing storage; play still works.
		log.Printf("Warning: storage not available: %v", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	c := console.New(os.Stdin, os.Stdout, store)
	if *startFEN != "" {
		if err := c.SetPosition(*startFEN); err != nil {
			log.Fatal(err)
		}
	}
	if err := c.Run(); err != nil {
		log.Printf("input error: %v", err)
	}
}
