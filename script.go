package easel

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer gestures across ticks, driving a scene
// without a user: demos, soak runs, reproducing interaction bugs. Attach
// one with Scene.SetScript.
//
// Scripts are JSON:
//
//	{"steps": [
//	  {"action": "click", "x": 100, "y": 120},
//	  {"action": "drag", "fromX": 50, "fromY": 50, "toX": 450, "toY": 450, "frames": 10},
//	  {"action": "wait", "frames": 30}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script. Scripts with no steps are rejected.
func LoadScript(data []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return &Script{steps: file.Steps}, nil
}

// SetScript attaches a script to the scene. It advances one step per Update
// once the previous step's injected events have drained; pass nil to detach.
func (s *Scene) SetScript(script *Script) {
	s.script = script
	if script != nil {
		s.requestRepaint()
	}
}

// Done reports whether every step has run.
func (sc *Script) Done() bool {
	return sc.done
}

// step advances the script by one tick. Called from Scene.Update.
func (sc *Script) step(s *Scene) {
	if sc.done {
		return
	}
	// Let pending injections drain before advancing.
	if s.injectPending() {
		return
	}
	if sc.waitCount > 0 {
		sc.waitCount--
		return
	}
	if sc.cursor >= len(sc.steps) {
		sc.done = true
		return
	}

	st := sc.steps[sc.cursor]
	sc.cursor++

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			sc.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if sc.cursor >= len(sc.steps) && sc.waitCount == 0 && !s.injectPending() {
		sc.done = true
	}
}
