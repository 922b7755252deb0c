package ui

import (
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/chessplay/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// pieceShapes holds the SVG body of each piece type on a 45x45 canvas.
// {fill} and {stroke} are replaced per side.
var pieceShapes = [...]string{
	board.Pawn: `<circle cx="22.5" cy="14" r="5.5"/>
<path d="M 17 20 L 28 20 L 26 27 L 31 37 L 14 37 L 19 27 Z"/>
<rect x="11" y="37" width="23" height="4"/>`,

	board.Knight: `<path d="M 22 10 C 32 11 37 18 36 39 L 15 39 C 15 30 25 32.5 23 18 C 21 23 17 25 12 26 C 9 26 9 23 10 22 C 13 19 16 15 18 12 L 18 9 Z"/>
<circle cx="16.5" cy="16.5" r="1.2" fill="{stroke}"/>`,

	board.Bishop: `<circle cx="22.5" cy="7" r="2.5"/>
<path d="M 22.5 9.5 C 26 13 31 18 31 25 C 31 30 27 32 22.5 32 C 18 32 14 30 14 25 C 14 18 19 13 22.5 9.5 Z"/>
<path d="M 15 32 L 30 32 L 33 36 L 12 36 Z"/>
<rect x="10" y="36" width="25" height="4"/>
<path d="M 20 21 L 25 21 M 22.5 18.5 L 22.5 23.5" fill="none"/>`,

	board.Rook: `<path d="M 11 9 L 15 9 L 15 12 L 20 12 L 20 9 L 25 9 L 25 12 L 30 12 L 30 9 L 34 9 L 34 16 L 31 18 L 31 31 L 34 34 L 34 37 L 11 37 L 11 34 L 14 31 L 14 18 L 11 16 Z"/>
<rect x="9" y="37" width="27" height="4"/>
<path d="M 14 18 L 31 18 M 14 31 L 31 31" fill="none"/>`,

	board.Queen: `<path d="M 9 26 L 12 13 L 17 24 L 22.5 11 L 28 24 L 33 13 L 36 26 C 34 30 33 33 33 36 L 12 36 C 12 33 11 30 9 26 Z"/>
<circle cx="12" cy="12" r="2.5"/>
<circle cx="22.5" cy="9.5" r="2.5"/>
<circle cx="33" cy="12" r="2.5"/>
<rect x="11" y="36" width="23" height="4"/>`,

	board.King: `<path d="M 22.5 5 L 22.5 13 M 19 8.5 L 26 8.5" fill="none"/>
<path d="M 22.5 14 C 26 14 27 17 26 20 C 31 17 37 19 36 25 C 35 30 30 32 30 36 L 15 36 C 15 32 10 30 9 25 C 8 19 14 17 19 20 C 18 17 19 14 22.5 14 Z"/>
<rect x="12" y="36" width="21" height="4"/>`,
}

// pieceSVG returns a complete SVG document for the piece.
func pieceSVG(p board.Piece) string {
	fill, stroke := "#ffffff", "#000000"
	if p.Color() == board.Black {
		fill, stroke = "#202020", "#e8e8e8"
	}
	body := strings.NewReplacer("{fill}", fill, "{stroke}", stroke).Replace(pieceShapes[p.Type()])
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="45" height="45" viewBox="0 0 45 45">
<g fill="%s" stroke="%s" stroke-width="1.5" stroke-linejoin="round" stroke-linecap="round">
%s
</g>
</svg>`, fill, stroke, body)
}

// rasterizePiece renders the piece's SVG into a size x size image.
func rasterizePiece(p board.Piece, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(pieceSVG(p)))
	if err != nil {
		return nil, fmt.Errorf("parse %v sprite: %w", p, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadPieces()
	return sm
}

// loadPieces rasterises every piece once.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for _, c := range []board.Color{board.White, board.Black} {
		for pt := board.Pawn; pt <= board.King; pt++ {
			piece := board.NewPiece(pt, c)
			rgba, err := rasterizePiece(piece, renderSize)
			if err != nil {
				log.Printf("Warning: %v", err)
				continue
			}
			sm.pieces[piece] = ebiten.NewImageFromImage(rgba)
		}
	}
}

// SetScale adjusts the render resolution for HiDPI displays.
func (sm *SpriteManager) SetScale(scale float64) {
	want := 3.0 * scale
	if want == sm.renderScale {
		return
	}
	sm.renderScale = want
	sm.loadPieces()
}

// DrawPieceAt draws a piece at the given pixel coordinates, sized to fit a
// square of side px.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int, px float64) {
	if p == board.NoPiece {
		return
	}
	sprite := sm.pieces[p]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := px / float64(sprite.Bounds().Dx())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	// Use linear filtering for smooth scaling
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
