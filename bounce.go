package bounce

import (
	"fmt"
	"image/color"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Color implements color.Color so it can be handed straight to image and
// rendering backends.
type Color struct {
	R, G, B, A float64
}

// rgb8 builds an opaque Color from 8-bit channel values.
func rgb8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// Named colors. OvalAndRectangle cycles through Red to Magenta.
var (
	ColorBlack   = rgb8(0, 0, 0)
	ColorWhite   = rgb8(255, 255, 255)
	ColorRed     = rgb8(255, 0, 0)
	ColorOrange  = rgb8(255, 200, 0)
	ColorYellow  = rgb8(255, 255, 0)
	ColorGreen   = rgb8(0, 255, 0)
	ColorCyan    = rgb8(0, 255, 255)
	ColorBlue    = rgb8(0, 0, 255)
	ColorMagenta = rgb8(255, 0, 255)
)

// RGBA implements color.Color. Components are premultiplied by alpha as the
// interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the color as straight-alpha 8-bit channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

// String formats the color as its 8-bit channels, e.g. "r=255,g=200,b=0".
func (c Color) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("r=%d,g=%d,b=%d", n.R, n.G, n.B)
}

func channel8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Rect is an axis-aligned integer rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Fits reports whether r lies inside a box of the given size anchored at the
// origin. Only the far edges are checked, matching attachment rules.
func (r Rect) Fits(width, height int) bool {
	return r.X+r.Width <= width && r.Y+r.Height <= height
}

// Kind distinguishes drawing and post-move behavior for a Shape.
type Kind uint8

const (
	KindRectangle        Kind = iota // outlined rectangle
	KindOval                         // outlined ellipse
	KindGem                          // diamond when narrow, hexagon when wide
	KindDynamicRectangle             // fills on side bounces, outlines on top/bottom bounces
	KindOvalAndRectangle             // cycles palette color and rect/oval on every bounce
	KindImage                        // raster image scaled to the shape's box
	KindNesting                      // container with child shapes
)

var kindNames = [...]string{
	KindRectangle:        "RectangleShape",
	KindOval:             "OvalShape",
	KindGem:              "GemShape",
	KindDynamicRectangle: "DynamicRectangleShape",
	KindOvalAndRectangle: "OvalAndRectangleShape",
	KindImage:            "ImageRectangleShape",
	KindNesting:          "NestingShape",
}

// String returns the display name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Collision is a bitmask of the boundaries hit during the most recent Move.
type Collision uint8

const (
	CollideNorth Collision = 1 << iota // top boundary
	CollideSouth                       // bottom boundary
	CollideEast                        // right boundary
	CollideWest                        // left boundary
)

// Has reports whether every flag in mask is set.
func (c Collision) Has(mask Collision) bool {
	return c&mask == mask
}

// Default geometry applied by DefaultConfig.
const (
	DefaultX      = 0
	DefaultY      = 0
	DefaultDeltaX = 5
	DefaultDeltaY = 5
	DefaultWidth  = 25
	DefaultHeight = 35
)

// Config holds the initial placement, velocity, size and text of a shape.
// An empty Text means the shape carries no text.
type Config struct {
	X, Y           int
	DeltaX, DeltaY int
	Width, Height  int
	Text           string
}

// DefaultConfig returns the geometry used when a caller has no preference:
// origin placement, a 5 pixel per step diagonal velocity and a 25x35 box.
func DefaultConfig() Config {
	return Config{
		X:      DefaultX,
		Y:      DefaultY,
		DeltaX: DefaultDeltaX,
		DeltaY: DefaultDeltaY,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// At returns a copy of c positioned at (x, y).
func (c Config) At(x, y int) Config {
	c.X, c.Y = x, y
	return c
}

// Moving returns a copy of c with velocity (dx, dy).
func (c Config) Moving(dx, dy int) Config {
	c.DeltaX, c.DeltaY = dx, dy
	return c
}

// Sized returns a copy of c with the given size.
func (c Config) Sized(w, h int) Config {
	c.Width, c.Height = w, h
	return c
}

// WithText returns a copy of c carrying text.
func (c Config) WithText(text string) Config {
	c.Text = text
	return c
}
