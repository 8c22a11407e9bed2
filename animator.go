package bounce

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultStepRate is the number of animation steps per second at speed 1,
// one step every 40ms.
const DefaultStepRate = 25

// maxStepsPerUpdate caps catch-up after a long frame so a stall does not turn
// into a burst of hundreds of steps.
const maxStepsPerUpdate = 32

// defaultRamp is the duration in seconds of Pause and Resume speed ramps.
const defaultRamp = 0.4

// Animator drives a Model from a variable frame clock. Each Update converts
// elapsed time into whole animation steps at StepRate steps per second, scaled
// by a speed multiplier that can be eased between values.
//
// Hosts call Update themselves, once per frame.
type Animator struct {
	model *Model

	// StepRate is the number of Model.Clock calls per second at speed 1.
	StepRate float64

	speed  float64
	target float64
	ramp   *gween.Tween
	accum  float64
}

// NewAnimator creates an animator for m running at DefaultStepRate and full
// speed.
func NewAnimator(m *Model) *Animator {
	return &Animator{
		model:    m,
		StepRate: DefaultStepRate,
		speed:    1,
		target:   1,
	}
}

// Model returns the animated model.
func (a *Animator) Model() *Model {
	return a.model
}

// Update advances the speed ramp and the model by dt seconds and returns the
// number of steps taken.
func (a *Animator) Update(dt float32) int {
	if a.ramp != nil {
		val, finished := a.ramp.Update(dt)
		a.speed = float64(val)
		if finished {
			a.ramp = nil
		}
	}

	a.accum += float64(dt) * a.speed * a.StepRate
	steps := int(a.accum)
	if steps <= 0 {
		return 0
	}
	a.accum -= float64(steps)
	if steps > maxStepsPerUpdate {
		steps = maxStepsPerUpdate
		a.accum = 0
	}
	for range steps {
		a.model.Clock()
	}
	return steps
}

// Paint paints the model with p.
func (a *Animator) Paint(p Painter) {
	a.model.Paint(p)
}

// Speed returns the current speed multiplier.
func (a *Animator) Speed() float64 {
	return a.speed
}

// SetSpeed eases the speed multiplier to the given value over duration
// seconds using fn. A non-positive duration applies the speed immediately.
func (a *Animator) SetSpeed(to float64, duration float32, fn ease.TweenFunc) {
	a.target = to
	if duration <= 0 {
		a.speed = to
		a.ramp = nil
		return
	}
	a.ramp = gween.New(float32(a.speed), float32(to), duration, fn)
}

// Pause ramps the animation down to a stop.
func (a *Animator) Pause() {
	a.SetSpeed(0, defaultRamp, ease.OutQuad)
}

// Resume ramps the animation back up to full speed.
func (a *Animator) Resume() {
	a.SetSpeed(1, defaultRamp, ease.InQuad)
}

// Paused reports whether the animator is stopped or stopping.
func (a *Animator) Paused() bool {
	return a.target == 0
}
