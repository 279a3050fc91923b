package render

import (
	"errors"
	"image"
	"sync"

	"github.com/cortex/favicons/internal/render/layout"
	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// ErrEmptySheet is returned when a preview sheet has nothing to show.
var ErrEmptySheet = errors.New("preview sheet has no entries")

const (
	sheetPadding  = 16
	labelGap      = 6
	labelFontSize = 12
)

// SheetEntry is one image on the preview sheet.
type SheetEntry struct {
	Label string
	Image image.Image
}

var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
	labelFontErr  error
)

// newLabelFace returns a fresh face per call since truetype faces cache
// glyphs and are not safe for concurrent use. Falls back to basicfont when the
// TrueType font can't be parsed.
func newLabelFace() font.Face {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = truetype.Parse(goregular.TTF)
	})
	if labelFontErr != nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(labelFont, &truetype.Options{Size: labelFontSize, DPI: 72, Hinting: font.HintingFull})
}

// RenderSheet lays entries out left to right, each centered in its own cell
// with its label underneath.
func RenderSheet(entries []SheetEntry) (*image.RGBA, error) {
	if len(entries) == 0 {
		return nil, ErrEmptySheet
	}
	face := newLabelFace()
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	labelHeight := ascent + metrics.Descent.Ceil() + labelGap

	tallest := 0
	widths := make([]int, len(entries))
	for i, e := range entries {
		b := e.Image.Bounds()
		tallest = max(tallest, b.Dy())
		textWidth := font.MeasureString(face, e.Label).Ceil()
		widths[i] = max(b.Dx(), textWidth) + 2*sheetPadding
	}

	cells := layout.Row(image.Point{}, tallest+labelHeight+2*sheetPadding, widths...)
	canvas := image.NewRGBA(layout.Bounding(cells))
	xdraw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: SheetBackground}, image.Point{}, xdraw.Src)

	for i, e := range entries {
		inner := layout.Inset(cells[i], sheetPadding)
		iconArea, labelArea := layout.SplitHorizontal(inner, tallest)

		b := e.Image.Bounds()
		dst := layout.Center(iconArea, b.Dx(), b.Dy())
		xdraw.Draw(canvas, dst, e.Image, b.Min, xdraw.Over)

		drawLabel(canvas, face, e.Label, labelArea, labelArea.Min.Y+labelGap+ascent)
	}
	return canvas, nil
}

func drawLabel(dst *image.RGBA, face font.Face, text string, area image.Rectangle, baselineY int) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  &image.Uniform{C: SheetForeground},
		Face: face,
	}
	textWidth := drawer.MeasureString(text).Ceil()
	xPos := area.Min.X + (area.Dx()-textWidth)/2
	drawer.Dot = fixed.P(xPos, baselineY)
	drawer.DrawString(text)
}
