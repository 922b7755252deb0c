// Package ui implements the chess board front-end using Ebitengine.
package ui

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/chessplay/internal/game"
	"github.com/hailam/chessplay/internal/storage"
	"github.com/hailam/chessplay/internal/view"
)

// UI Constants
const (
	ScreenWidth  = 960
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// QuickSaveName is the slot used by the save and load keys.
const QuickSaveName = "quicksave"

// Options configures a new Game.
type Options struct {
	// StartFEN is the position a new game starts from; empty means the
	// standard initial position.
	StartFEN string
	// Storage persists games and preferences. It may be nil.
	Storage *storage.Storage
}

// Game implements ebiten.Game interface.
type Game struct {
	startFEN string
	session  *game.Game
	state    view.State

	// Storage
	storage *storage.Storage
	prefs   *storage.UserPreferences

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	toasts   *ToastManager
	sounds   *SoundPlayer

	// HiDPI scaling
	scale float64
}

// NewGame creates a new chess game.
func NewGame(opts Options) (*Game, error) {
	session := game.New()
	if opts.StartFEN != "" {
		var err error
		if session, err = game.FromFEN(opts.StartFEN); err != nil {
			return nil, err
		}
	}

	g := &Game{
		startFEN: opts.StartFEN,
		session:  session,
		state:    view.NewState(session.Current()),
		storage:  opts.Storage,
		renderer: NewRenderer(BoardSize, SquareSize),
		input:    NewInputHandler(),
		panel:    NewPanel(),
		toasts:   NewToastManager(),
		sounds:   NewSoundPlayer(),
		scale:    1.0,
	}

	g.loadPreferences()
	g.checkFirstLaunch()
	return g, nil
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		g.sounds.SetEnabled(g.prefs.SoundOn)
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}
	g.renderer.SetFlipped(g.prefs.FlipBoard)
	g.sounds.SetEnabled(g.prefs.SoundOn)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	g.prefs.FlipBoard = g.renderer.Flipped()
	g.prefs.SoundOn = g.sounds.Enabled()
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// checkFirstLaunch greets a new user with the key bindings.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		log.Printf("Warning: Failed to check first launch: %v", err)
		return
	}
	if !isFirst {
		return
	}

	g.toasts.Show("Click a piece to pick it up. Keys are listed on the right.", ToastInfo)
	if err := g.storage.MarkFirstLaunchComplete(); err != nil {
		log.Printf("Warning: Failed to mark first launch complete: %v", err)
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update(g.scale)
	g.toasts.Update()

	for _, a := range g.input.Actions() {
		g.handleAction(a)
	}

	g.handleBoardInput()
	g.updateCursor()
	return nil
}

// handleBoardInput feeds pointer movement and clicks to the view state.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()
	sq := g.renderer.ScreenToSquare(mx, my)
	g.state = g.state.HoverOver(sq)

	if !g.input.IsLeftJustPressed() {
		return
	}

	next, m, ok := g.state.Click(sq)
	g.state = next
	if !ok {
		return
	}
	before := g.session.Current()
	if err := g.session.Play(m); err != nil {
		// The view only offers legal destinations, so this is a bug.
		log.Printf("Warning: rejected move %v: %v", m, err)
		g.sounds.Play(SoundIllegal)
		g.toasts.Show("Illegal move", ToastError)
		return
	}
	played, _ := g.session.LastMove()
	g.sounds.Play(soundFor(before, played))
	g.state = g.state.WithPosition(g.session.Current())
}

// handleAction runs a keyboard command.
func (g *Game) handleAction(a Action) {
	switch a {
	case ActionUndo:
		if _, err := g.session.Undo(); err != nil {
			g.toasts.Show("Nothing to undo", ToastInfo)
			return
		}
		g.state = g.state.WithPosition(g.session.Current())

	case ActionNewGame:
		g.newGame()

	case ActionFlip:
		g.renderer.SetFlipped(!g.renderer.Flipped())
		g.savePreferences()

	case ActionToggleHints:
		g.prefs.ShowHints = !g.prefs.ShowHints
		g.savePreferences()

	case ActionSave:
		g.saveGame(QuickSaveName)

	case ActionLoad:
		g.loadGame(QuickSaveName)

	case ActionToggleSound:
		g.sounds.SetEnabled(!g.sounds.Enabled())
		g.savePreferences()
	}
}

// newGame starts over from the configured starting position.
func (g *Game) newGame() {
	session := game.New()
	if g.startFEN != "" {
		var err error
		if session, err = game.FromFEN(g.startFEN); err != nil {
			log.Printf("Warning: %v", err)
			session = game.New()
		}
	}
	g.session = session
	g.state = view.NewState(session.Current())
}

func (g *Game) saveGame(name string) {
	if g.storage == nil {
		g.toasts.Show("Storage unavailable", ToastError)
		return
	}
	if err := g.storage.SaveGame(name, g.session); err != nil {
		log.Printf("Warning: Failed to save game: %v", err)
		g.toasts.Show("Save failed", ToastError)
		return
	}
	g.prefs.LastGame = name
	g.savePreferences()
	g.toasts.Show(fmt.Sprintf("Saved %q", name), ToastSuccess)
}

func (g *Game) loadGame(name string) {
	if g.storage == nil {
		g.toasts.Show("Storage unavailable", ToastError)
		return
	}
	session, err := g.storage.LoadGame(name)
	if errors.Is(err, storage.ErrGameNotFound) {
		g.toasts.Show(fmt.Sprintf("No game saved as %q", name), ToastInfo)
		return
	}
	if err != nil {
		log.Printf("Warning: Failed to load game: %v", err)
		g.toasts.Show("Load failed", ToastError)
		return
	}
	g.session = session
	g.state = view.NewState(session.Current())
	g.toasts.Show(fmt.Sprintf("Loaded %q", name), ToastSuccess)
}

// updateCursor shows a pointer over squares where a click does something.
func (g *Game) updateCursor() {
	hover := g.state.Hover
	v := view.Compute(g.state)
	if hover.IsValid() && v.Squares[hover].Interactable {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetScale(g.scale)
	g.panel.SetScale(g.scale)

	screen.Fill(g.renderer.Theme().Background)

	v := view.Compute(g.state)
	last, _ := g.session.LastMove()
	g.renderer.DrawView(screen, v, last, g.prefs.ShowHints)

	g.panel.Draw(screen, v.Status, g.session.Current().InCheck(), g.session.SANMoves())
	g.toasts.Draw(screen, g.scale)
}

// Layout returns the game's screen dimensions, scaled for HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Get and store device scale factor (2.0 on Retina, 1.0 on standard displays)
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale < 1.0 {
		g.scale = 1.0
	}
	return int(float64(ScreenWidth) * g.scale), int(float64(ScreenHeight) * g.scale)
}

