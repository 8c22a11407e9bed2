package ebitenpaint

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/bounce"
)

// RunConfig configures Run. Zero values pick sensible defaults.
type RunConfig struct {
	// Title is the window title.
	Title string

	// Width and Height size the window. Zero uses the model's bounds.
	Width, Height int

	// TPS is the number of Update calls per second. Zero keeps Ebitengine's
	// default of 60.
	TPS int

	// ShowFPS draws the current FPS and TPS in the top-left corner.
	ShowFPS bool

	// Background fills the window before each frame. Zero is white.
	Background bounce.Color

	// ScreenshotDir receives F12 and scripted screenshots. Empty uses
	// DefaultScreenshotDir.
	ScreenshotDir string

	// Script, when set, drives the run. The window closes after a quit step.
	Script *Script

	// Face draws shape text. Nil loads Go Regular at DefaultFontSize.
	Face text.Face

	// Update, when set, is called once per tick before the animator advances.
	// Returning an error stops the run with that error.
	Update func() error
}

// Run opens a window and animates anim until the window is closed, a script
// quits, or RunConfig.Update fails.
func Run(anim *bounce.Animator, cfg RunConfig) error {
	g, err := newGame(anim, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(g.width, g.height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type game struct {
	screenshotter

	anim    *bounce.Animator
	painter *Painter
	cfg     RunConfig

	width, height int
}

func newGame(anim *bounce.Animator, cfg RunConfig) (*game, error) {
	face := cfg.Face
	if face == nil {
		f, err := LoadDefaultFace(DefaultFontSize)
		if err != nil {
			return nil, err
		}
		face = f
	}
	if cfg.Background == (bounce.Color{}) {
		cfg.Background = bounce.ColorWhite
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = DefaultScreenshotDir
	}
	w, h := anim.Model().Bounds()
	if cfg.Width > 0 {
		w = cfg.Width
	}
	if cfg.Height > 0 {
		h = cfg.Height
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("ebitenpaint: invalid window size %dx%d", w, h)
	}
	return &game{
		screenshotter: screenshotter{dir: cfg.ScreenshotDir},
		anim:          anim,
		painter:       NewPainter(face),
		cfg:           cfg,
		width:         w,
		height:        h,
	}, nil
}

func (g *game) Pause()  { g.anim.Pause() }
func (g *game) Resume() { g.anim.Resume() }

func (g *game) SetSpeed(speed float64, duration float32) {
	g.anim.SetSpeed(speed, duration, ease.InOutQuad)
}

// togglePause pauses a running animation or resumes a paused one.
func (g *game) togglePause() {
	if g.anim.Paused() {
		g.Resume()
	} else {
		g.Pause()
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if g.cfg.Script != nil && g.cfg.Script.step(g) {
		return ebiten.Termination
	}
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	g.anim.Update(1 / float32(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	g.painter.Begin(screen)
	g.anim.Paint(g.painter)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	g.flush(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
