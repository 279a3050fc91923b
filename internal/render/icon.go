package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// IconRenderer draws the Cortex neural-network icon.
type IconRenderer struct {
	Palette Palette
}

func NewIconRenderer() *IconRenderer { return &IconRenderer{Palette: CortexPalette()} }

// Render returns a transparent size×size canvas with the icon painted on it.
// The same size always yields identical pixels.
func (r *IconRenderer) Render(size int) (*image.RGBA, error) {
	geom, err := Compute(size)
	if err != nil {
		return nil, err
	}
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	for _, shape := range geom.Shapes(r.Palette) {
		paint(canvas, shape)
	}
	return canvas, nil
}

// Render draws the icon with the default palette.
func Render(size int) (*image.RGBA, error) {
	return NewIconRenderer().Render(size)
}

func paint(dst *image.RGBA, s Shape) {
	src := &image.Uniform{C: s.Color}
	switch s.Kind {
	case ShapeRect:
		xdraw.Draw(dst, s.Rect, src, image.Point{}, xdraw.Over)
	case ShapeDisc:
		mask := discMask{center: s.Center, r: s.Radius}
		bounds := s.Bounds()
		xdraw.DrawMask(dst, bounds, src, image.Point{}, mask, bounds.Min, xdraw.Over)
	}
}

// discMask is an alpha mask covering a filled disc. A pixel at offset
// (dx, dy) from the center is inside when dx²+dy² <= r²+r, which keeps
// small radii round instead of collapsing to a plus sign.
type discMask struct {
	center image.Point
	r      int
}

func (m discMask) ColorModel() color.Model { return color.AlphaModel }

func (m discMask) Bounds() image.Rectangle {
	return image.Rect(m.center.X-m.r, m.center.Y-m.r, m.center.X+m.r+1, m.center.Y+m.r+1)
}

func (m discMask) At(x, y int) color.Color {
	dx, dy := x-m.center.X, y-m.center.Y
	if dx*dx+dy*dy <= m.r*m.r+m.r {
		return color.Alpha{A: 0xFF}
	}
	return color.Alpha{}
}
