package ebitenpaint

import (
	"slices"
	"testing"
)

type fakeTarget struct {
	calls []string
	speed float64
}

func (f *fakeTarget) Screenshot(label string) { f.calls = append(f.calls, "screenshot:"+label) }
func (f *fakeTarget) Pause()                  { f.calls = append(f.calls, "pause") }
func (f *fakeTarget) Resume()                 { f.calls = append(f.calls, "resume") }
func (f *fakeTarget) SetSpeed(speed float64, duration float32) {
	f.calls = append(f.calls, "speed")
	f.speed = speed
}

func TestLoadScript(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "screenshot", "label": "start"},
		{"action": "wait", "frames": 3},
		{"action": "speed", "speed": 2.5, "duration": 0.5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(s.steps))
	}
	if st := s.steps[2]; st.Speed != 2.5 || st.Duration != 0.5 {
		t.Errorf("speed step = %+v", st)
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	for _, data := range []string{
		`not json`,
		`{"steps": []}`,
		`{}`,
		`{"steps": [{"action": "click"}]}`,
	} {
		if _, err := LoadScript([]byte(data)); err == nil {
			t.Errorf("LoadScript(%s) should fail", data)
		}
	}
}

func TestScriptStep_Sequence(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "pause"},
		{"action": "wait", "frames": 2},
		{"action": "speed", "speed": 3},
		{"action": "resume"},
		{"action": "screenshot", "label": "end"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	f := &fakeTarget{}

	// pause, wait (frame 1), wait (frame 2), speed, resume, screenshot.
	for i := 0; i < 6; i++ {
		if s.step(f) {
			t.Fatal("unexpected quit")
		}
	}
	want := []string{"pause", "speed", "resume", "screenshot:end"}
	if !slices.Equal(f.calls, want) {
		t.Errorf("calls = %v, want %v", f.calls, want)
	}
	if f.speed != 3 {
		t.Errorf("speed = %v, want 3", f.speed)
	}
	if !s.Done() {
		t.Error("script should be done")
	}
	if s.step(f) || len(f.calls) != len(want) {
		t.Error("finished script should do nothing")
	}
}

func TestScriptStep_WaitCountsFrames(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	f := &fakeTarget{}
	for i := 0; i < 3; i++ {
		s.step(f)
	}
	if len(f.calls) != 0 {
		t.Fatalf("screenshot taken during wait: %v", f.calls)
	}
	if s.Done() {
		t.Error("should not be done while a step is pending")
	}
	s.step(f)
	if !slices.Equal(f.calls, []string{"screenshot:"}) {
		t.Errorf("calls = %v", f.calls)
	}
}

func TestScriptStep_Quit(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "quit"},
		{"action": "pause"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	f := &fakeTarget{}
	if !s.step(f) {
		t.Error("quit step should report quit")
	}
	if !s.Done() {
		t.Error("quit should finish the script")
	}
	if s.step(f) || len(f.calls) != 0 {
		t.Error("steps after quit should not run")
	}
}
