package ebitenpaint

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/bounce"
)

// DefaultFontSize is the text size used when no face is supplied.
const DefaultFontSize = 12

// strokeWidth is the pen width for outlines and lines.
const strokeWidth = 1

// LoadDefaultFace returns the Go Regular face at the given size.
func LoadDefaultFace(size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenpaint: failed to parse font: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

type cachedImage struct {
	img   *ebiten.Image
	frame uint64
}

// Painter implements bounce.Painter on an *ebiten.Image. Call Begin at the
// start of each frame before painting.
//
// Source images handed to DrawImage are uploaded once and reused. Images not
// drawn during a frame are released at the next Begin.
type Painter struct {
	dst    *ebiten.Image
	face   text.Face
	color  bounce.Color
	ox, oy int

	frame  uint64
	images map[image.Image]*cachedImage

	// Scratch buffers for ovals.
	points [][2]float32
	verts  []ebiten.Vertex
	inds   []uint16
}

// NewPainter creates a painter that draws text with face. A nil face disables
// text.
func NewPainter(face text.Face) *Painter {
	return &Painter{
		face:   face,
		color:  bounce.ColorBlack,
		images: make(map[image.Image]*cachedImage),
	}
}

// Begin targets dst for a new frame, resetting the color to black and the
// origin to dst's top-left corner.
func (p *Painter) Begin(dst *ebiten.Image) {
	for k, c := range p.images {
		if c.frame < p.frame {
			c.img.Deallocate()
			delete(p.images, k)
		}
	}
	p.frame++
	p.dst = dst
	p.color = bounce.ColorBlack
	p.ox, p.oy = 0, 0
}

func (p *Painter) pt(x, y int) (float32, float32) {
	return float32(x + p.ox), float32(y + p.oy)
}

func (p *Painter) DrawRect(x, y, width, height int) {
	fx, fy := p.pt(x, y)
	vector.StrokeRect(p.dst, fx, fy, float32(width), float32(height), strokeWidth, p.color, true)
}

func (p *Painter) FillRect(x, y, width, height int) {
	fx, fy := p.pt(x, y)
	vector.DrawFilledRect(p.dst, fx, fy, float32(width), float32(height), p.color, true)
}

func (p *Painter) DrawLine(x1, y1, x2, y2 int) {
	fx1, fy1 := p.pt(x1, y1)
	fx2, fy2 := p.pt(x2, y2)
	vector.StrokeLine(p.dst, fx1, fy1, fx2, fy2, strokeWidth, p.color, true)
}

func (p *Painter) DrawOval(x, y, width, height int) {
	fx, fy := p.pt(x, y)
	p.points = ellipsePoints(p.points[:0], fx, fy, float32(width), float32(height))
	n := len(p.points)
	for i, a := range p.points {
		b := p.points[(i+1)%n]
		vector.StrokeLine(p.dst, a[0], a[1], b[0], b[1], strokeWidth, p.color, true)
	}
}

func (p *Painter) FillOval(x, y, width, height int) {
	fx, fy := p.pt(x, y)
	p.points = ellipsePoints(p.points[:0], fx, fy, float32(width), float32(height))

	// Vertex colors are premultiplied.
	c := p.color
	r, g, b, a := float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A)
	p.verts = p.verts[:0]
	for _, pt := range p.points {
		p.verts = append(p.verts, ebiten.Vertex{
			DstX: pt[0], DstY: pt[1],
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	p.inds = fanIndices(p.inds[:0], len(p.verts))

	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	p.dst.DrawTriangles(p.verts, p.inds, ensureWhitePixel(), &op)
}

func (p *Painter) Color() bounce.Color { return p.color }

func (p *Painter) SetColor(c bounce.Color) { p.color = c }

func (p *Painter) Translate(dx, dy int) {
	p.ox += dx
	p.oy += dy
}

// Origin returns the current translation.
func (p *Painter) Origin() image.Point { return image.Pt(p.ox, p.oy) }

func (p *Painter) DrawCenteredText(s string, cx, cy int) {
	if p.face == nil {
		return
	}
	fx, fy := p.pt(cx, cy)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(fx), float64(fy))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(p.color)
	text.Draw(p.dst, s, p.face, op)
}

func (p *Painter) DrawImage(img image.Image, x, y, width, height int) {
	b := img.Bounds()
	if b.Empty() || width <= 0 || height <= 0 {
		return
	}
	fx, fy := p.pt(x, y)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	op.GeoM.Translate(float64(fx), float64(fy))
	op.Filter = ebiten.FilterLinear
	p.dst.DrawImage(p.upload(img), op)
}

// upload returns the GPU copy of img, creating it on first use.
func (p *Painter) upload(img image.Image) *ebiten.Image {
	c, ok := p.images[img]
	if !ok {
		c = &cachedImage{img: ebiten.NewImageFromImage(img)}
		p.images[img] = c
	}
	c.frame = p.frame
	return c.img
}

// CachedImages returns the number of uploaded images currently held.
func (p *Painter) CachedImages() int { return len(p.images) }

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source for untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}
