package fling

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a transition script.
type scriptStep struct {
	Action  string  `json:"action"`
	From    string  `json:"from,omitempty"`
	To      string  `json:"to,omitempty"`
	FromTag string  `json:"fromTag,omitempty"`
	ToTag   string  `json:"toTag,omitempty"`
	Target  string  `json:"target,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	W       float64 `json:"w,omitempty"`
	H       float64 `json:"h,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a transition script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"transition": true,
	"reverse":    true,
	"wait":       true,
	"move":       true,
	"resize":     true,
	"remove":     true,
	"abort":      true,
}

// ScriptRunner sequences transitions and layout changes across frames for
// automated runs. Node and boundary references are node names; tags are
// strings. Attach to a Navigator via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	last      *Transition
}

// LoadScript parses a JSON transition script and returns a ScriptRunner
// ready to be attached to a Navigator via SetScript.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Last returns the most recent transition started or reversed by the script.
func (r *ScriptRunner) Last() *Transition {
	return r.last
}

// step executes at most one step per frame. Called from Navigator.Update.
func (r *ScriptRunner) step(nav *Navigator) error {
	if r.done {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++
	err := r.exec(nav, st)

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	if err != nil {
		return fmt.Errorf("script step %d (%s): %w", r.cursor-1, st.Action, err)
	}
	return nil
}

func (r *ScriptRunner) exec(nav *Navigator, st scriptStep) error {
	switch st.Action {
	case "transition":
		tr, err := nav.StartTransition(nav.root.FindByName(st.From), nav.root.FindByName(st.To), st.FromTag, st.ToTag)
		if err != nil {
			return err
		}
		r.last = tr
	case "reverse":
		if r.last == nil {
			return fmt.Errorf("no transition to reverse")
		}
		tr, err := nav.Reverse(r.last)
		if err != nil {
			return err
		}
		r.last = tr
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "move", "resize", "remove":
		n := nav.root.FindByName(st.Target)
		if n == nil {
			return fmt.Errorf("no node named %q", st.Target)
		}
		switch st.Action {
		case "move":
			n.SetPosition(st.X, st.Y)
		case "resize":
			n.SetSize(st.W, st.H)
		default:
			n.Dispose()
		}
	case "abort":
		f := nav.controller.Flight(st.FromTag, st.ToTag)
		if f == nil {
			return fmt.Errorf("no flight %s -> %s", st.FromTag, st.ToTag)
		}
		f.Abort()
	}
	return nil
}
