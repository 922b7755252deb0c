package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/chessplay/internal/board"
	"github.com/hailam/chessplay/internal/view"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	HoverSquare    color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Interactable   color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		HoverSquare:    color.RGBA{255, 255, 255, 50},
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},  // Softer yellow-green
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		Interactable:   color.RGBA{76, 175, 120, 160},
		Background:     color.RGBA{40, 44, 52, 255}, // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255},
	}
}

// Renderer handles all drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool    // Black at the bottom
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
	r.sprites.SetScale(scale)
}

// SetFlipped sets the board orientation.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Flipped reports whether Black is drawn at the bottom.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawView draws the board, its highlights and pieces as described by v.
func (r *Renderer) DrawView(screen *ebiten.Image, v view.View, lastMove board.Move, showHints bool) {
	r.drawSquares(screen)

	if lastMove != board.NoMove {
		r.highlightSquare(screen, lastMove.From, r.theme.LastMoveColor)
		r.highlightSquare(screen, lastMove.To, r.theme.LastMoveColor)
	}

	for _, sv := range v.Squares {
		switch {
		case sv.Check:
			r.highlightSquare(screen, sv.Square, r.theme.CheckColor)
		case sv.InHand:
			r.highlightSquare(screen, sv.Square, r.theme.SelectedSquare)
		}
		if sv.Hover {
			r.highlightSquare(screen, sv.Square, r.theme.HoverSquare)
		}
		if showHints && sv.Interactable && !sv.Move {
			r.outlineSquare(screen, sv.Square, r.theme.Interactable)
		}
	}

	r.drawCoordinates(screen)

	for _, sv := range v.Squares {
		if sv.Piece == board.NoPiece {
			continue
		}
		x, y := r.SquareToScreen(sv.Square)
		r.sprites.DrawPieceAt(screen, sv.Piece, int(r.s(x)), int(r.s(y)), float64(r.s(r.squareSize)))
	}

	if showHints {
		for _, sv := range v.Squares {
			if sv.Move {
				r.drawLegalMoveIndicator(screen, sv.Square, sv.Piece != board.NoPiece)
			}
		}
	}
}

// drawSquares draws the light and dark squares.
func (r *Renderer) drawSquares(screen *ebiten.Image) {
	for i := 0; i < 64; i++ {
		sq := board.Square(i)
		x, y := r.SquareToScreen(sq)

		c := r.theme.LightSquare
		if (sq.File()+sq.Rank())%2 == 0 {
			c = r.theme.DarkSquare
		}
		vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
	}
}

// drawCoordinates draws file letters along the bottom edge and rank numbers
// along the left edge.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetFaceWithSize(11 * r.scale)
	if face == nil {
		return
	}

	for i := 0; i < board.BoardSide; i++ {
		// Bottom row squares carry the file letters
		bottom := (board.BoardSide - 1) * r.squareSize
		left := 0
		col := i * r.squareSize

		fileSq := r.ScreenToSquare(col, bottom)
		rankSq := r.ScreenToSquare(left, col)

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.s(col+r.squareSize-10)), float64(r.s(bottom+r.squareSize-15)))
		op.ColorScale.ScaleWithColor(r.labelColor(fileSq))
		text.Draw(screen, string(rune('a'+fileSq.File()-1)), face, op)

		op = &text.DrawOptions{}
		op.GeoM.Translate(float64(r.s(left+3)), float64(r.s(col+2)))
		op.ColorScale.ScaleWithColor(r.labelColor(rankSq))
		text.Draw(screen, string(rune('0'+rankSq.Rank())), face, op)
	}
}

// labelColor contrasts with the square the label sits on.
func (r *Renderer) labelColor(sq board.Square) color.RGBA {
	if (sq.File()+sq.Rank())%2 == 0 {
		return r.theme.LightSquare
	}
	return r.theme.DarkSquare
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.IsValid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
}

// outlineSquare draws a thin frame inside a square.
func (r *Renderer) outlineSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	x, y := r.SquareToScreen(sq)
	w := r.s(2)
	vector.StrokeRect(screen, r.s(x)+w/2, r.s(y)+w/2, r.s(r.squareSize)-w, r.s(r.squareSize)-w, w, c, false)
}

// drawLegalMoveIndicator draws a dot on an empty destination and a ring
// around an occupied one.
func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, sq board.Square, capture bool) {
	x, y := r.SquareToScreen(sq)
	cx := r.s(x) + r.s(r.squareSize)/2
	cy := r.s(y) + r.s(r.squareSize)/2

	if capture {
		radius := r.s(r.squareSize) * 0.45
		vector.StrokeCircle(screen, cx, cy, radius, r.s(4), r.theme.LegalMoveColor, true)
		return
	}
	radius := r.s(r.squareSize) * 0.15
	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.LegalMoveColor, true)
}

// SquareToScreen converts a board square to logical screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	col := sq.File() - 1
	row := board.BoardSide - sq.Rank() // rank 8 at the top
	if r.flipped {
		col = board.BoardSide - 1 - col
		row = board.BoardSide - 1 - row
	}
	return col * r.squareSize, row * r.squareSize
}

// ScreenToSquare converts logical screen coordinates to a board square,
// NoSquare when off the board.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	col := x / r.squareSize
	row := y / r.squareSize
	if r.flipped {
		col = board.BoardSide - 1 - col
		row = board.BoardSide - 1 - row
	}
	sq, err := board.SquareOf(col+1, board.BoardSide-row)
	if err != nil {
		return board.NoSquare
	}
	return sq
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
