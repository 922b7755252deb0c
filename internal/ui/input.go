package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a keyboard command.
type Action int

const (
	ActionNone Action = iota
	ActionUndo
	ActionNewGame
	ActionFlip
	ActionToggleHints
	ActionSave
	ActionLoad
	ActionToggleSound
)

// keyBindings maps keys to the actions they trigger.
var keyBindings = map[ebiten.Key]Action{
	ebiten.KeyU: ActionUndo,
	ebiten.KeyN: ActionNewGame,
	ebiten.KeyF: ActionFlip,
	ebiten.KeyH: ActionToggleHints,
	ebiten.KeyS: ActionSave,
	ebiten.KeyL: ActionLoad,
	ebiten.KeyM: ActionToggleSound,
}

// InputHandler manages mouse and keyboard input.
type InputHandler struct {
	mouseX, mouseY  int // Logical coordinates (unscaled)
	leftJustPressed bool
	actions         []Action
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update samples the input state. Call this once per frame.
func (ih *InputHandler) Update(scale float64) {
	rawX, rawY := ebiten.CursorPosition()

	// Convert to logical coordinates by dividing by scale
	if scale < 1.0 {
		scale = 1.0
	}
	ih.mouseX = int(float64(rawX) / scale)
	ih.mouseY = int(float64(rawY) / scale)

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	ih.actions = ih.actions[:0]
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if a, ok := keyBindings[key]; ok {
			ih.actions = append(ih.actions, a)
		}
	}
}

// MousePosition returns the current mouse position in logical coordinates.
func (ih *InputHandler) MousePosition() (int, int) {
	return ih.mouseX, ih.mouseY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// Actions returns the keyboard commands triggered this frame.
func (ih *InputHandler) Actions() []Action {
	return ih.actions
}
