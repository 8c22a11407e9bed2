// Package termpaint paints bounce models onto a terminal with tcell.
//
// Pixel coordinates are mapped onto character cells by a fixed cell size, so
// a model built for a window can be shown in a terminal unchanged, only
// coarser.
package termpaint

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/bounce"
)

// Default cell size in pixels, roughly the aspect of a terminal glyph.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Glyphs used for outlines and fills.
const (
	runeHorizontal  = '─'
	runeVertical    = '│'
	runeTopLeft     = '┌'
	runeTopRight    = '┐'
	runeBottomLeft  = '└'
	runeBottomRight = '┘'
	runeFalling     = '╲'
	runeRising      = '╱'
	runeDot         = '•'
	runeBlock       = '█'
)

// Options configures a Painter. Zero values use the defaults.
type Options struct {
	// CellWidth and CellHeight are the pixel size of one character cell.
	CellWidth, CellHeight int

	// Background is the cell background drawn behind everything.
	Background tcell.Color
}

// Painter implements bounce.Painter on a tcell.Screen.
type Painter struct {
	screen tcell.Screen
	cw, ch int
	bg     tcell.Color

	color  bounce.Color
	ox, oy int
}

// NewPainter creates a painter for screen.
func NewPainter(screen tcell.Screen, opts Options) *Painter {
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultCellWidth
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = DefaultCellHeight
	}
	if opts.Background == 0 {
		opts.Background = tcell.ColorReset
	}
	return &Painter{
		screen: screen,
		cw:     opts.CellWidth,
		ch:     opts.CellHeight,
		bg:     opts.Background,
		color:  bounce.ColorBlack,
	}
}

// Begin clears the screen and resets the color and origin for a new frame.
// Call screen.Show after painting.
func (p *Painter) Begin() {
	p.screen.Fill(' ', tcell.StyleDefault.Background(p.bg))
	p.color = bounce.ColorBlack
	p.ox, p.oy = 0, 0
}

// WorldSize returns the pixel size covered by the screen.
func (p *Painter) WorldSize() (width, height int) {
	cols, rows := p.screen.Size()
	return cols * p.cw, rows * p.ch
}

// cell maps a point in the current frame to a screen cell.
func (p *Painter) cell(x, y int) (col, row int) {
	return floorDiv(x+p.ox, p.cw), floorDiv(y+p.oy, p.ch)
}

// cellBox returns the inclusive cell range covered by a pixel box.
func (p *Painter) cellBox(x, y, width, height int) (c0, r0, c1, r1 int) {
	c0, r0 = p.cell(x, y)
	c1, r1 = p.cell(x+max(width, 1)-1, y+max(height, 1)-1)
	return c0, r0, c1, r1
}

func (p *Painter) style() tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(p.color)).Background(p.bg)
}

func (p *Painter) set(col, row int, r rune, style tcell.Style) {
	p.screen.SetContent(col, row, r, nil, style)
}

func (p *Painter) DrawRect(x, y, width, height int) {
	c0, r0, c1, r1 := p.cellBox(x, y, width, height)
	st := p.style()
	if c0 == c1 || r0 == r1 {
		// Too thin for corners.
		r := runeHorizontal
		if c0 == c1 {
			r = runeVertical
		}
		if c0 == c1 && r0 == r1 {
			r = runeDot
		}
		p.fillCells(c0, r0, c1, r1, r, st)
		return
	}
	for c := c0 + 1; c < c1; c++ {
		p.set(c, r0, runeHorizontal, st)
		p.set(c, r1, runeHorizontal, st)
	}
	for r := r0 + 1; r < r1; r++ {
		p.set(c0, r, runeVertical, st)
		p.set(c1, r, runeVertical, st)
	}
	p.set(c0, r0, runeTopLeft, st)
	p.set(c1, r0, runeTopRight, st)
	p.set(c0, r1, runeBottomLeft, st)
	p.set(c1, r1, runeBottomRight, st)
}

func (p *Painter) FillRect(x, y, width, height int) {
	c0, r0, c1, r1 := p.cellBox(x, y, width, height)
	p.fillCells(c0, r0, c1, r1, runeBlock, p.style())
}

func (p *Painter) fillCells(c0, r0, c1, r1 int, r rune, st tcell.Style) {
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			p.set(col, row, r, st)
		}
	}
}

// DrawLine walks the cells between the endpoints, choosing a glyph by slope.
func (p *Painter) DrawLine(x1, y1, x2, y2 int) {
	c0, r0 := p.cell(x1, y1)
	c1, r1 := p.cell(x2, y2)
	g := lineRune(x2-x1, y2-y1)
	st := p.style()

	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := sign(c1-c0), sign(r1-r0)
	e := dc + dr
	for {
		p.set(c0, r0, g, st)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

// DrawOval marks every cell the outline passes through.
func (p *Painter) DrawOval(x, y, width, height int) {
	st := p.style()
	rx, ry := float64(width)/2, float64(height)/2
	cx, cy := float64(x)+rx, float64(y)+ry
	n := 4 * (width/p.cw + height/p.ch + 2)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		px := int(math.Round(cx + rx*math.Cos(a)))
		py := int(math.Round(cy + ry*math.Sin(a)))
		col, row := p.cell(min(px, x+width-1), min(py, y+height-1))
		p.set(col, row, runeDot, st)
	}
}

// FillOval fills every cell whose center lies inside the ellipse.
func (p *Painter) FillOval(x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c0, r0, c1, r1 := p.cellBox(x, y, width, height)
	st := p.style()
	rx, ry := float64(width)/2, float64(height)/2
	cx, cy := float64(x+p.ox)+rx, float64(y+p.oy)+ry
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			dx := (float64(col*p.cw) + float64(p.cw)/2 - cx) / rx
			dy := (float64(row*p.ch) + float64(p.ch)/2 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				p.set(col, row, runeBlock, st)
			}
		}
	}
}

func (p *Painter) Color() bounce.Color { return p.color }

func (p *Painter) SetColor(c bounce.Color) { p.color = c }

func (p *Painter) Translate(dx, dy int) {
	p.ox += dx
	p.oy += dy
}

// Origin returns the current translation in pixels.
func (p *Painter) Origin() image.Point { return image.Pt(p.ox, p.oy) }

// DrawCenteredText writes text on the row holding (cx, cy), centered on its
// column by display width.
func (p *Painter) DrawCenteredText(text string, cx, cy int) {
	col, row := p.cell(cx, cy)
	col -= runewidth.StringWidth(text) / 2
	st := p.style()
	for _, r := range text {
		p.set(col, row, r, st)
		col += max(runewidth.RuneWidth(r), 1)
	}
}

// DrawImage samples img at the center of each covered cell and paints the cell
// background with that color.
func (p *Painter) DrawImage(img image.Image, x, y, width, height int) {
	b := img.Bounds()
	if b.Empty() || width <= 0 || height <= 0 {
		return
	}
	c0, r0, c1, r1 := p.cellBox(x, y, width, height)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			// Cell center relative to the box, in image pixels.
			px := (col*p.cw + p.cw/2 - (x + p.ox)) * b.Dx() / width
			py := (row*p.ch + p.ch/2 - (y + p.oy)) * b.Dy() / height
			px = min(max(px, 0), b.Dx()-1)
			py = min(max(py, 0), b.Dy()-1)
			c := tcellColor(img.At(b.Min.X+px, b.Min.Y+py))
			p.set(col, row, ' ', tcell.StyleDefault.Background(c))
		}
	}
}

// tcellColor converts any color to a 24-bit tcell color, ignoring alpha.
func tcellColor(c color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// lineRune picks the glyph closest to a line's direction.
func lineRune(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case ady*2 <= adx:
		return runeHorizontal
	case adx*2 <= ady:
		return runeVertical
	case (dx > 0) == (dy > 0):
		return runeFalling
	default:
		return runeRising
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
