package ebitenpaint

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Speed    float64 `json:"speed,omitempty"`
	Duration float32 `json:"duration,omitempty"`
}

// scriptFile is the top-level JSON structure of a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// scriptTarget is what a script drives. Run's game implements it.
type scriptTarget interface {
	Screenshot(label string)
	Pause()
	Resume()
	SetSpeed(speed float64, duration float32)
}

// Script sequences animation controls and screenshots across frames for
// unattended runs, e.g.
//
//	{"steps": [
//	  {"action": "wait", "frames": 60},
//	  {"action": "screenshot", "label": "start"},
//	  {"action": "speed", "speed": 3, "duration": 0.5},
//	  {"action": "wait", "frames": 120},
//	  {"action": "pause"},
//	  {"action": "quit"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "wait", "screenshot", "pause", "resume", "speed", "quit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame and reports whether it asked to quit.
func (s *Script) step(t scriptTarget) (quit bool) {
	if s.done {
		return false
	}
	if s.waitCount > 0 {
		s.waitCount--
		return false
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return false
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "screenshot":
		t.Screenshot(st.Label)
	case "pause":
		t.Pause()
	case "resume":
		t.Resume()
	case "speed":
		t.SetSpeed(st.Speed, st.Duration)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		s.done = true
		return true
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
	return false
}
