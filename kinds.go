package bounce

// gemHexagonMinWidth is the width above which a gem is drawn as a hexagon.
const gemHexagonMinWidth = 40

// gemBevel is the horizontal inset of a hexagon gem's slanted edges.
const gemBevel = 20

// Palette cycled by OvalAndRectangle shapes, one step per bounce.
var ovalAndRectanglePalette = [...]Color{
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorMagenta,
}

// draw runs the kind-specific part of Paint.
func (s *Shape) draw(p Painter) {
	switch s.kind {
	case KindRectangle:
		p.DrawRect(s.x, s.y, s.width, s.height)
	case KindOval:
		p.DrawOval(s.x, s.y, s.width, s.height)
	case KindGem:
		drawPolyline(p, s.x, s.y, s.gemOutline())
	case KindDynamicRectangle:
		p.SetColor(s.color)
		if s.filled {
			p.FillRect(s.x, s.y, s.width, s.height)
		} else {
			p.DrawRect(s.x, s.y, s.width, s.height)
		}
	case KindOvalAndRectangle:
		p.SetColor(ovalAndRectanglePalette[s.palette])
		if s.oval {
			p.FillOval(s.x, s.y, s.width, s.height)
		} else {
			p.FillRect(s.x, s.y, s.width, s.height)
		}
	case KindImage:
		if s.image != nil {
			p.DrawImage(s.image, s.x, s.y, s.width, s.height)
		}
	case KindNesting:
		s.drawNesting(p)
	}
}

// moved runs the kind-specific policy after Move has committed the new
// position. Collision flags from that Move are still valid here.
func (s *Shape) moved() {
	switch s.kind {
	case KindDynamicRectangle:
		// Side walls win at corners.
		if s.CollidingVertical() {
			s.filled = true
		} else if s.CollidingHorizontal() {
			s.filled = false
		}
	case KindOvalAndRectangle:
		if s.collisions != 0 {
			s.palette = (s.palette + 1) % len(ovalAndRectanglePalette)
			s.oval = !s.oval
		}
	case KindNesting:
		for _, child := range s.children {
			child.Move(s.width, s.height)
		}
	}
}

// Filled reports whether a DynamicRectangle currently paints filled.
func (s *Shape) Filled() bool { return s.filled }

// Color returns the current paint color of a DynamicRectangle or
// OvalAndRectangle shape, and black for every other kind.
func (s *Shape) Color() Color {
	switch s.kind {
	case KindDynamicRectangle:
		return s.color
	case KindOvalAndRectangle:
		return ovalAndRectanglePalette[s.palette]
	}
	return ColorBlack
}

// IsOval reports whether an OvalAndRectangle shape currently paints as an oval.
func (s *Shape) IsOval() bool { return s.oval }

// point is an integer offset from a shape's top-left corner.
type point struct{ x, y int }

// gemOutline returns the closed outline of a gem relative to its top-left
// corner, clockwise from the left vertex. The first point is repeated at the
// end.
func (s *Shape) gemOutline() []point {
	w, h := s.width, s.height
	if w > gemHexagonMinWidth {
		return []point{
			{0, h / 2},
			{gemBevel, 0},
			{w - gemBevel, 0},
			{w, h / 2},
			{w - gemBevel, h},
			{gemBevel, h},
			{0, h / 2},
		}
	}
	return []point{
		{0, h / 2},
		{w / 2, 0},
		{w, h / 2},
		{w / 2, h},
		{0, h / 2},
	}
}

// drawPolyline draws consecutive segments through pts, offset by (x, y).
func drawPolyline(p Painter, x, y int, pts []point) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		p.DrawLine(x+a.x, y+a.y, x+b.x, y+b.y)
	}
}
