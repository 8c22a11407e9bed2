package bounce

import (
	"image"
	"slices"
)

// shapeIDCounter is a plain counter. Shapes are only built on the goroutine
// that owns the model; ImageLoader decodes elsewhere but builds in Drain.
var shapeIDCounter uint32

func nextShapeID() uint32 {
	shapeIDCounter++
	return shapeIDCounter
}

// Shape is the fundamental scene graph element. A single flat struct is used
// for every kind of shape; kind-specific drawing and bounce policy dispatch on
// Kind rather than through an interface.
//
// Shapes have reference semantics: two *Shape values are the same shape only
// when the pointers are equal.
type Shape struct {
	id   uint32
	kind Kind

	// Hierarchy. parent is a non-owning back-reference kept in step with the
	// parent's children slice by Add and Remove.
	parent   *Shape
	children []*Shape

	// Geometry and velocity, integer pixels in the parent's local frame.
	x, y          int
	deltaX        int
	deltaY        int
	width, height int

	text string

	// Boundaries hit by the most recent Move. Reset at the start of each Move.
	collisions Collision

	// DynamicRectangle
	color  Color
	filled bool

	// OvalAndRectangle
	palette int
	oval    bool

	// Image
	image image.Image
}

func newShape(kind Kind, cfg Config) *Shape {
	return &Shape{
		id:     nextShapeID(),
		kind:   kind,
		x:      cfg.X,
		y:      cfg.Y,
		deltaX: cfg.DeltaX,
		deltaY: cfg.DeltaY,
		width:  cfg.Width,
		height: cfg.Height,
		text:   cfg.Text,
		color:  ColorBlack,
	}
}

// NewRectangle creates a shape painted as an outlined rectangle.
func NewRectangle(cfg Config) *Shape {
	return newShape(KindRectangle, cfg)
}

// NewOval creates a shape painted as an outlined ellipse.
func NewOval(cfg Config) *Shape {
	return newShape(KindOval, cfg)
}

// NewGem creates a shape painted as a diamond when it is at most 40 pixels
// wide and as a hexagon otherwise.
func NewGem(cfg Config) *Shape {
	return newShape(KindGem, cfg)
}

// NewDynamicRectangle creates a rectangle painted in c that becomes filled
// after bouncing off a side wall and outlined after bouncing off the top or
// bottom. It starts outlined.
func NewDynamicRectangle(cfg Config, c Color) *Shape {
	s := newShape(KindDynamicRectangle, cfg)
	s.color = c
	return s
}

// NewOvalAndRectangle creates a shape that starts as a filled red rectangle
// and, on every bounce, advances through a seven color palette while flipping
// between rectangle and oval.
func NewOvalAndRectangle(cfg Config) *Shape {
	return newShape(KindOvalAndRectangle, cfg)
}

// NewImageRectangle creates a shape that paints img. The shape is placed at
// the origin and sized to the image's pixel bounds; only its velocity is
// configurable.
func NewImageRectangle(deltaX, deltaY int, img image.Image) *Shape {
	b := img.Bounds()
	s := newShape(KindImage, Config{
		DeltaX: deltaX,
		DeltaY: deltaY,
		Width:  b.Dx(),
		Height: b.Dy(),
	})
	s.image = img
	return s
}

// NewNesting creates a container shape. It paints as an outlined rectangle and
// moves and paints its children inside its own box.
func NewNesting(cfg Config) *Shape {
	return newShape(KindNesting, cfg)
}

// --- Motion ---

// Move advances the shape by one step inside a world of the given size. On
// reaching a boundary the shape is clamped to it and the matching velocity
// component is reversed. Both axes are evaluated on every step, so a corner
// hit records a vertical and a horizontal collision at once. Nesting shapes
// then move their children within their own size.
func (s *Shape) Move(boundsWidth, boundsHeight int) {
	nextX := s.x + s.deltaX
	nextY := s.y + s.deltaY
	s.collisions = 0

	if nextY <= 0 {
		s.collisions |= CollideNorth
		nextY = 0
		s.deltaY = -s.deltaY
	} else if nextY+s.height >= boundsHeight {
		s.collisions |= CollideSouth
		nextY = boundsHeight - s.height
		s.deltaY = -s.deltaY
	}

	if nextX <= 0 {
		s.collisions |= CollideWest
		nextX = 0
		s.deltaX = -s.deltaX
	} else if nextX+s.width >= boundsWidth {
		s.collisions |= CollideEast
		nextX = boundsWidth - s.width
		s.deltaX = -s.deltaX
	}

	s.x = nextX
	s.y = nextY

	s.moved()
}

// Collisions returns the boundaries hit by the most recent Move.
func (s *Shape) Collisions() Collision {
	return s.collisions
}

// CollidingVertical reports whether the most recent Move hit the left or right
// boundary.
func (s *Shape) CollidingVertical() bool {
	return s.collisions&(CollideWest|CollideEast) != 0
}

// CollidingHorizontal reports whether the most recent Move hit the top or
// bottom boundary.
func (s *Shape) CollidingHorizontal() bool {
	return s.collisions&(CollideNorth|CollideSouth) != 0
}

// --- Painting ---

// Paint draws the shape with p. The painter's color is reset to black before
// the kind-specific drawing, and any text is drawn centered on the shape
// afterwards, in the painter's current frame.
func (s *Shape) Paint(p Painter) {
	if p == nil {
		panic("bounce: cannot paint with nil painter")
	}
	p.SetColor(ColorBlack)
	s.draw(p)
	if s.HasText() {
		p.DrawCenteredText(s.text, s.x+s.width/2, s.y+s.height/2)
	}
}

// --- Accessors ---

// ID returns the shape's process-unique identifier.
func (s *Shape) ID() uint32 { return s.id }

// Kind returns the kind of the shape.
func (s *Shape) Kind() Kind { return s.kind }

// X returns the left edge in the parent's frame.
func (s *Shape) X() int { return s.x }

// Y returns the top edge in the parent's frame.
func (s *Shape) Y() int { return s.y }

// DeltaX returns the horizontal velocity in pixels per step.
func (s *Shape) DeltaX() int { return s.deltaX }

// DeltaY returns the vertical velocity in pixels per step.
func (s *Shape) DeltaY() int { return s.deltaY }

func (s *Shape) Width() int  { return s.width }
func (s *Shape) Height() int { return s.height }

// Bounds returns the shape's box in the parent's frame.
func (s *Shape) Bounds() Rect {
	return Rect{X: s.x, Y: s.y, Width: s.width, Height: s.height}
}

// Text returns the text drawn over the shape, or "" if it has none.
func (s *Shape) Text() string { return s.text }

// HasText reports whether the shape carries text.
func (s *Shape) HasText() bool { return s.text != "" }

// Image returns the raster image of an image shape, or nil for other kinds.
func (s *Shape) Image() image.Image { return s.image }

// Parent returns the nesting shape that contains s, or nil.
func (s *Shape) Parent() *Shape { return s.parent }

// Path returns the shapes from the outermost ancestor down to and including
// s. A shape without a parent yields a single-element path.
func (s *Shape) Path() []*Shape {
	var path []*Shape
	for p := s; p != nil; p = p.parent {
		path = append(path, p)
	}
	slices.Reverse(path)
	return path
}

// String returns the display name of the shape's kind, with its text if any.
func (s *Shape) String() string {
	if s.HasText() {
		return s.kind.String() + " " + s.text
	}
	return s.kind.String()
}
