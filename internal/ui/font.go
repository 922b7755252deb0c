package ui

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// Font faces for text rendering
	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 16.0
)

func init() {
	initFonts()
}

func initFonts() {
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Failed to load regular font: %v", err)
		return
	}
	regularFace = &text.GoTextFace{Source: regularSource, Size: defaultFontSize}

	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Failed to load bold font: %v", err)
		return
	}
	boldFace = &text.GoTextFace{Source: boldSource, Size: titleFontSize}
}

// GetRegularFace returns the regular font face at the given HiDPI scale.
func GetRegularFace(scale float64) *text.GoTextFace {
	return scaled(regularFace, scale)
}

// GetBoldFace returns the bold font face at the given HiDPI scale.
func GetBoldFace(scale float64) *text.GoTextFace {
	return scaled(boldFace, scale)
}

// GetFaceWithSize returns a regular face with a custom size.
func GetFaceWithSize(size float64) *text.GoTextFace {
	if regularFace == nil {
		return nil
	}
	return &text.GoTextFace{Source: regularFace.Source, Size: size}
}

func scaled(face *text.GoTextFace, scale float64) *text.GoTextFace {
	if face == nil || scale == 1 {
		return face
	}
	return &text.GoTextFace{Source: face.Source, Size: face.Size * scale}
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
