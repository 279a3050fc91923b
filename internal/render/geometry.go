package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidSize is returned for non-positive icon sizes.
var ErrInvalidSize = errors.New("invalid icon size")

// Geometry is the pixel layout of the icon at one size. Every metric is a
// base constant on the 32px grid multiplied by Scale and truncated toward zero.
type Geometry struct {
	Size  int
	Scale float64

	Margin int
	// CornerRadius is reported for the background but never painted; the
	// background is a plain rectangle.
	CornerRadius int

	Center image.Point

	CoreRadius      int
	CoreRadiusMed   int
	CoreRadiusSmall int

	NodeOffset int
	NodeRadius int

	SideOffset     int
	SideNodeRadius int

	CornerOffset     int
	CornerNodeRadius int

	AccentInset  int
	AccentRadius int
}

// Compute derives the layout for a size×size icon.
func Compute(size int) (Geometry, error) {
	if size <= 0 {
		return Geometry{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	scale := float64(size) / BaseSize
	at := func(k float64) int { return int(k * scale) }

	return Geometry{
		Size:             size,
		Scale:            scale,
		Margin:           at(2),
		CornerRadius:     at(6),
		Center:           image.Pt(size/2, size/2),
		CoreRadius:       at(4),
		CoreRadiusMed:    at(2.5),
		CoreRadiusSmall:  at(1),
		NodeOffset:       at(4),
		NodeRadius:       max(1, at(1.5)),
		SideOffset:       at(8),
		SideNodeRadius:   max(1, at(1)),
		CornerOffset:     at(2),
		CornerNodeRadius: max(1, at(0.8)),
		AccentInset:      at(6),
		AccentRadius:     max(1, at(1.5)),
	}, nil
}

type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeDisc
)

// Shape is one paint operation. Rect shapes use Rect (half-open, like
// image.Rectangle); discs use Center and Radius.
type Shape struct {
	Kind   ShapeKind
	Rect   image.Rectangle
	Center image.Point
	Radius int
	Color  color.RGBA
}

// Bounds returns the pixels the shape may touch, before clipping.
func (s Shape) Bounds() image.Rectangle {
	if s.Kind == ShapeRect {
		return s.Rect
	}
	return image.Rect(s.Center.X-s.Radius, s.Center.Y-s.Radius, s.Center.X+s.Radius+1, s.Center.Y+s.Radius+1)
}

func disc(x, y, r int, c color.RGBA) Shape {
	return Shape{Kind: ShapeDisc, Center: image.Pt(x, y), Radius: r, Color: c}
}

// Shapes returns the paint operations in back-to-front order.
func (g Geometry) Shapes(p Palette) []Shape {
	shapes := make([]Shape, 0, 19)

	// Background: both corners inclusive.
	shapes = append(shapes, Shape{
		Kind:  ShapeRect,
		Rect:  image.Rect(g.Margin, g.Margin, g.Size-g.Margin+1, g.Size-g.Margin+1),
		Color: p.Background,
	})

	cx, cy := g.Center.X, g.Center.Y

	core := []struct {
		r int
		c color.RGBA
	}{
		{g.CoreRadius, p.OrangePrimary},
		{g.CoreRadiusMed, p.OrangeLight},
		{g.CoreRadiusSmall, p.White},
	}
	for _, c := range core {
		if c.r > 0 {
			shapes = append(shapes, disc(cx, cy, c.r, c.c))
		}
	}

	o := g.NodeOffset
	for _, d := range diagonals {
		shapes = append(shapes, disc(cx+d.X*o, cy+d.Y*o, g.NodeRadius, p.BluePrimary))
	}

	shapes = append(shapes,
		disc(cx-g.SideOffset, cy, g.SideNodeRadius, p.BluePrimary),
		disc(cx+g.SideOffset, cy, g.SideNodeRadius, p.BluePrimary),
	)

	co := o + g.CornerOffset
	for _, d := range diagonals {
		shapes = append(shapes, disc(cx+d.X*co, cy+d.Y*co, g.CornerNodeRadius, p.OrangePrimary))
	}

	a := g.AccentInset
	shapes = append(shapes,
		disc(g.Size-a, a, g.AccentRadius, p.BluePrimary),
		disc(a, g.Size-a, g.AccentRadius, p.OrangePrimary),
	)
	return shapes
}

// top-left, top-right, bottom-left, bottom-right
var diagonals = [4]image.Point{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
