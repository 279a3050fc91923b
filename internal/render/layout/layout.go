package layout

import "image"

// Inset shrinks rect by paddingPx on every side.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	topHeightPx = clamp(topHeightPx, 0, rect.Dy())
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// Row places cells of the given widths left to right, starting at origin,
// each heightPx tall. Negative widths count as zero.
func Row(origin image.Point, heightPx int, widthsPx ...int) []image.Rectangle {
	cells := make([]image.Rectangle, 0, len(widthsPx))
	x := origin.X
	for _, w := range widthsPx {
		w = max(w, 0)
		cells = append(cells, image.Rect(x, origin.Y, x+w, origin.Y+heightPx))
		x += w
	}
	return cells
}

// Bounding returns the smallest rectangle containing every rect.
func Bounding(rects []image.Rectangle) image.Rectangle {
	var out image.Rectangle
	for _, r := range rects {
		out = out.Union(r)
	}
	return out
}

// Center returns a widthPx×heightPx rectangle centered in rect. The result is
// not clipped; content larger than rect overhangs evenly on both sides.
func Center(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
