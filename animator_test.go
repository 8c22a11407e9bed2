package bounce

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func newAnimatedModel(t *testing.T) (*Model, *Shape) {
	t.Helper()
	m := NewModel(10000, 10000)
	s := NewRectangle(Config{X: 10, Y: 10, DeltaX: 1, DeltaY: 1, Width: 5, Height: 5})
	if err := m.Add(s, m.Root()); err != nil {
		t.Fatal(err)
	}
	return m, s
}

func TestAnimatorDefaults(t *testing.T) {
	m, _ := newAnimatedModel(t)
	a := NewAnimator(m)
	if a.StepRate != DefaultStepRate {
		t.Errorf("StepRate = %v, want %v", a.StepRate, DefaultStepRate)
	}
	if a.Speed() != 1 || a.Paused() {
		t.Errorf("Speed = %v, Paused = %v, want 1, false", a.Speed(), a.Paused())
	}
	if a.Model() != m {
		t.Error("Model() should return the animated model")
	}
}

func TestAnimatorStepsPerSecond(t *testing.T) {
	m, s := newAnimatedModel(t)
	a := NewAnimator(m)
	a.StepRate = 10

	if n := a.Update(1); n != 10 {
		t.Errorf("steps = %d, want 10", n)
	}
	if s.X() != 20 {
		t.Errorf("X = %d, want 20", s.X())
	}
}

func TestAnimatorAccumulatesPartialSteps(t *testing.T) {
	m, s := newAnimatedModel(t)
	a := NewAnimator(m)
	a.StepRate = 4

	total := 0
	for range 8 {
		total += a.Update(0.125) // half a step each
	}
	if total != 4 {
		t.Errorf("steps = %d, want 4", total)
	}
	if s.X() != 14 {
		t.Errorf("X = %d, want 14", s.X())
	}
}

func TestAnimatorCapsCatchUp(t *testing.T) {
	m, _ := newAnimatedModel(t)
	a := NewAnimator(m)
	if n := a.Update(60); n != maxStepsPerUpdate {
		t.Errorf("steps = %d, want %d", n, maxStepsPerUpdate)
	}
	if n := a.Update(0); n != 0 {
		t.Errorf("steps after cap = %d, want 0 (backlog dropped)", n)
	}
}

func TestAnimatorSetSpeedImmediate(t *testing.T) {
	m, _ := newAnimatedModel(t)
	a := NewAnimator(m)
	a.StepRate = 10
	a.SetSpeed(2, 0, ease.Linear)
	if a.Speed() != 2 {
		t.Errorf("Speed = %v, want 2", a.Speed())
	}
	if n := a.Update(1); n != 20 {
		t.Errorf("steps = %d, want 20", n)
	}
}

func TestAnimatorPauseRampsToStop(t *testing.T) {
	m, s := newAnimatedModel(t)
	a := NewAnimator(m)
	a.Pause()
	if !a.Paused() {
		t.Error("Paused should be true right after Pause")
	}
	for range 10 {
		a.Update(0.1)
	}
	if a.Speed() != 0 {
		t.Fatalf("Speed after ramp = %v, want 0", a.Speed())
	}
	x := s.X()
	a.Update(1)
	if s.X() != x {
		t.Errorf("paused animator moved shape from %d to %d", x, s.X())
	}

	a.Resume()
	if a.Paused() {
		t.Error("Paused should be false after Resume")
	}
	for range 10 {
		a.Update(0.1)
	}
	if a.Speed() != 1 {
		t.Errorf("Speed after resume = %v, want 1", a.Speed())
	}
}

func TestAnimatorPaint(t *testing.T) {
	m, _ := newAnimatedModel(t)
	p := NewLogPainter()
	NewAnimator(m).Paint(p)
	if want := black + "(rectangle 0,0,10000,10000)" + black + "(rectangle 10,10,5,5)"; p.String() != want {
		t.Errorf("log = %s, want %s", p, want)
	}
}
