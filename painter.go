package bounce

import (
	"fmt"
	"image"
	"strings"
)

// Painter is a drawing surface offering the primitives shapes paint with. All
// coordinates are integer pixels in the painter's current frame. Translate is
// cumulative and is undone by translating again by the negated offset.
type Painter interface {
	DrawRect(x, y, width, height int)
	DrawOval(x, y, width, height int)
	DrawLine(x1, y1, x2, y2 int)
	FillRect(x, y, width, height int)
	FillOval(x, y, width, height int)

	Color() Color
	SetColor(c Color)

	// Translate moves the origin of the frame by (dx, dy).
	Translate(dx, dy int)

	// DrawCenteredText draws text centered on the point (cx, cy).
	DrawCenteredText(text string, cx, cy int)

	// DrawImage draws img scaled to the given box.
	DrawImage(img image.Image, x, y, width, height int)
}

// LogPainter is a Painter that draws nothing and instead records each call as
// text, e.g. "(rectangle 0,0,25,35)". Translations are tracked but not
// recorded; shapes always log coordinates in their parent's frame.
type LogPainter struct {
	log    strings.Builder
	color  Color
	origin image.Point
}

// NewLogPainter returns an empty LogPainter with black as the current color.
func NewLogPainter() *LogPainter {
	return &LogPainter{color: ColorBlack}
}

func (p *LogPainter) DrawRect(x, y, width, height int) {
	p.logf("rectangle %d,%d,%d,%d", x, y, width, height)
}

func (p *LogPainter) DrawOval(x, y, width, height int) {
	p.logf("oval %d,%d,%d,%d", x, y, width, height)
}

func (p *LogPainter) DrawLine(x1, y1, x2, y2 int) {
	p.logf("line %d,%d,%d,%d", x1, y1, x2, y2)
}

func (p *LogPainter) FillRect(x, y, width, height int) {
	p.logf("filledRect %d,%d,%d,%d", x, y, width, height)
}

func (p *LogPainter) FillOval(x, y, width, height int) {
	p.logf("filledOval %d,%d,%d,%d", x, y, width, height)
}

// Color returns the most recently set color. Not logged.
func (p *LogPainter) Color() Color { return p.color }

func (p *LogPainter) SetColor(c Color) {
	p.color = c
	p.logf("colour %v", c)
}

// Translate shifts the tracked origin. Not logged.
func (p *LogPainter) Translate(dx, dy int) {
	p.origin = p.origin.Add(image.Pt(dx, dy))
}

func (p *LogPainter) DrawCenteredText(text string, cx, cy int) {
	p.logf("text %s", text)
}

func (p *LogPainter) DrawImage(img image.Image, x, y, width, height int) {
	p.logf("image %d,%d,%d,%d", x, y, width, height)
}

// Origin returns the cumulative translation applied so far.
func (p *LogPainter) Origin() image.Point { return p.origin }

// String returns everything logged since creation or the last Reset.
func (p *LogPainter) String() string { return p.log.String() }

// Reset clears the log. The current color and origin are kept.
func (p *LogPainter) Reset() { p.log.Reset() }

func (p *LogPainter) logf(format string, args ...any) {
	p.log.WriteByte('(')
	fmt.Fprintf(&p.log, format, args...)
	p.log.WriteByte(')')
}
