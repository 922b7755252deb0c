package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel dimensions
const (
	PanelPadding  = 20
	SectionLabelH = 22
	RowHeight     = 22
)

// Panel colors
var (
	panelBg       = color.RGBA{38, 40, 45, 255}    // Dark background
	textPrimary   = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary = color.RGBA{160, 165, 175, 255} // Secondary text
	textMuted     = color.RGBA{120, 125, 135, 255} // Muted text
	dividerColor  = color.RGBA{60, 65, 72, 255}    // Divider line
	moveRowAlt    = color.RGBA{44, 48, 54, 255}    // Alternating row
	statusCheck   = color.RGBA{255, 120, 120, 255}
)

// keyHelp is shown at the bottom of the panel.
var keyHelp = []string{
	"U undo   N new game   F flip",
	"H hints  S save       L load",
	"M sound",
}

// Panel is the side panel: position status, move history and key help.
type Panel struct {
	scale float64
}

// NewPanel creates a new panel.
func NewPanel() *Panel {
	return &Panel{scale: 1}
}

// SetScale sets the HiDPI scale factor.
func (p *Panel) SetScale(scale float64) {
	p.scale = scale
}

// Draw renders the panel with the status lines and the SAN move history.
func (p *Panel) Draw(screen *ebiten.Image, status []string, inCheck bool, moves []string) {
	vector.DrawFilledRect(screen, p.s(BoardSize), 0, p.s(PanelWidth), p.s(ScreenHeight), panelBg, false)

	x := BoardSize + PanelPadding
	y := PanelPadding

	p.drawBold(screen, "Position", x, y)
	y += SectionLabelH + 4
	for i, line := range status {
		c := textPrimary
		if i == 1 && inCheck {
			c = statusCheck
		} else if i > 1 {
			c = textSecondary
		}
		p.drawText(screen, line, x, y, c)
		y += RowHeight
	}

	y += 10
	p.drawDivider(screen, y)
	y += 14

	p.drawBold(screen, "Moves", x, y)
	y += SectionLabelH + 4
	p.drawMoveHistory(screen, moves, y)

	helpY := ScreenHeight - PanelPadding - len(keyHelp)*RowHeight
	p.drawDivider(screen, helpY-10)
	for i, line := range keyHelp {
		p.drawText(screen, line, x, helpY+i*RowHeight, textMuted)
	}
}

// drawMoveHistory lists moves two per row, keeping the latest rows visible.
func (p *Panel) drawMoveHistory(screen *ebiten.Image, moves []string, startY int) {
	if len(moves) == 0 {
		p.drawText(screen, "No moves yet", BoardSize+PanelPadding, startY, textMuted)
		return
	}

	x := BoardSize + PanelPadding
	maxY := ScreenHeight - PanelPadding - len(keyHelp)*RowHeight - 20
	visibleRows := (maxY - startY) / RowHeight

	totalRows := (len(moves) + 1) / 2
	firstRow := 0
	if totalRows > visibleRows {
		firstRow = totalRows - visibleRows
	}

	y := startY
	for row := firstRow; row < totalRows; row++ {
		if row%2 == 1 {
			vector.DrawFilledRect(screen, p.s(x-4), p.s(y-2), p.s(PanelWidth-PanelPadding*2+8), p.s(RowHeight), moveRowAlt, false)
		}
		i := row * 2
		p.drawText(screen, fmt.Sprintf("%d.", row+1), x, y, textMuted)
		p.drawText(screen, moves[i], x+36, y, textPrimary)
		if i+1 < len(moves) {
			p.drawText(screen, moves[i+1], x+120, y, textPrimary)
		}
		y += RowHeight
	}
}

func (p *Panel) s(v int) float32 {
	return float32(float64(v) * p.scale)
}

func (p *Panel) drawDivider(screen *ebiten.Image, y int) {
	vector.DrawFilledRect(screen, p.s(BoardSize+PanelPadding), p.s(y), p.s(PanelWidth-PanelPadding*2), p.s(1), dividerColor, false)
}

// Text drawing helpers
func (p *Panel) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	p.draw(screen, s, GetRegularFace(p.scale), x, y, c)
}

func (p *Panel) drawBold(screen *ebiten.Image, s string, x, y int) {
	p.draw(screen, s, GetBoldFace(p.scale), x, y, textPrimary)
}

func (p *Panel) draw(screen *ebiten.Image, s string, face *text.GoTextFace, x, y int, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(p.s(x)), float64(p.s(y)))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
