package pixel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font sizes in pixels.
const (
	sizeEndTitle = 48
	sizeTitle    = 36
	sizeEndBody  = 32
	sizeLabel    = 24
	sizeSmall    = 20
)

var fontSizes = []float64{sizeEndTitle, sizeTitle, sizeEndBody, sizeLabel, sizeSmall}

// Fonts holds the Go Regular faces used by the renderer, keyed by pixel size.
type Fonts struct {
	faces map[float64]text.Face
}

// LoadFonts parses the bundled Go Regular font at every size the renderer uses.
func LoadFonts() (*Fonts, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("pixel: parse font: %w", err)
	}

	fonts := &Fonts{faces: make(map[float64]text.Face, len(fontSizes))}
	for _, size := range fontSizes {
		face, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("pixel: create %vpx face: %w", size, err)
		}
		fonts.faces[size] = text.NewGoXFace(face)
	}
	return fonts, nil
}

// Face returns the face for size. Sizes are fixed at load time.
func (f *Fonts) Face(size float64) text.Face {
	return f.faces[size]
}
