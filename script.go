package pinchzoom

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnknownAction is returned for a script step whose action is not recognized.
var ErrUnknownAction = errors.New("unknown script action")

// Script step actions.
const (
	ActionTouches    = "touches"    // set the active touch list to Points
	ActionRelease    = "release"    // lift every touch
	ActionTap        = "tap"        // one touch at At, then release
	ActionPan        = "pan"        // drag one touch From -> To over Frames
	ActionPinch      = "pinch"      // two touches around At, FromDist -> ToDist over Frames
	ActionAutoZoom   = "auto-zoom"  // auto-zoom to At, or to the last single touch
	ActionConfigure  = "configure"  // change zoom range or container size
	ActionWait       = "wait"       // idle for Frames frames (View only)
	ActionScreenshot = "screenshot" // capture the container as Label (View only)
)

// ScriptStep is one action in a gesture script. Points are container-relative.
type ScriptStep struct {
	Action   string  `yaml:"action" json:"action"`
	Label    string  `yaml:"label,omitempty" json:"label,omitempty"`
	Points   []Point `yaml:"points,omitempty" json:"points,omitempty"`
	At       *Point  `yaml:"at,omitempty" json:"at,omitempty"`
	From     Point   `yaml:"from,omitempty" json:"from,omitempty"`
	To       Point   `yaml:"to,omitempty" json:"to,omitempty"`
	FromDist float64 `yaml:"from-dist,omitempty" json:"from-dist,omitempty"`
	ToDist   float64 `yaml:"to-dist,omitempty" json:"to-dist,omitempty"`
	Frames   int     `yaml:"frames,omitempty" json:"frames,omitempty"`

	MinZoomScale *float64 `yaml:"min-zoom-scale,omitempty" json:"min-zoom-scale,omitempty"`
	MaxZoomScale *float64 `yaml:"max-zoom-scale,omitempty" json:"max-zoom-scale,omitempty"`
	BoundSize    *Size    `yaml:"bound-size,omitempty" json:"bound-size,omitempty"`
	ContentSize  *Size    `yaml:"content-size,omitempty" json:"content-size,omitempty"`
}

// Script is a sequence of gesture steps.
type Script struct {
	Steps []ScriptStep `yaml:"steps" json:"steps"`
}

// ParseGestureScript decodes a YAML or JSON gesture script.
func ParseGestureScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range s.Steps {
		if !knownAction(st.Action) {
			return nil, fmt.Errorf("parse gesture script: step %d: %w %q", i, ErrUnknownAction, st.Action)
		}
	}
	return &s, nil
}

// LoadGestureScript reads and parses a gesture script file.
func LoadGestureScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load gesture script: %w", err)
	}
	return ParseGestureScript(data)
}

func knownAction(a string) bool {
	switch a {
	case ActionTouches, ActionRelease, ActionTap, ActionPan, ActionPinch,
		ActionAutoZoom, ActionConfigure, ActionWait, ActionScreenshot:
		return true
	}
	return false
}

// frames expands touch actions into per-frame active touch lists.
// ok is false for actions that do not produce touch input.
func (st ScriptStep) frames() (frames [][]Point, ok bool) {
	switch st.Action {
	case ActionTouches:
		return [][]Point{st.Points}, true
	case ActionRelease:
		return [][]Point{nil}, true
	case ActionTap:
		return tapFrames(st.at()), true
	case ActionPan:
		return panFrames(st.From, st.To, st.Frames), true
	case ActionPinch:
		return pinchFrames(st.at(), st.FromDist, st.ToDist, st.Frames), true
	}
	return nil, false
}

func (st ScriptStep) at() Point {
	if st.At == nil {
		return Point{}
	}
	return *st.At
}

// configure returns cfg with the step's overrides applied.
func (st ScriptStep) configure(cfg Config) Config {
	if st.MinZoomScale != nil {
		cfg.MinZoomScale = *st.MinZoomScale
	}
	if st.MaxZoomScale != nil {
		cfg.MaxZoomScale = *st.MaxZoomScale
	}
	if st.BoundSize != nil {
		cfg.BoundSize = *st.BoundSize
	}
	if st.ContentSize != nil {
		cfg.ContentSize = *st.ContentSize
	}
	return cfg
}

// autoZoom runs the auto-zoom step against z.
func (st ScriptStep) autoZoom(z *Zoomer) {
	if st.At != nil {
		z.AutoZoomToPosition(*st.At)
		return
	}
	z.AutoZoomToLastTouchPoint()
}

// Replay runs script against z without a display, delivering every frame
// synchronously. fn, if non-nil, is called after each step with the
// resulting transform. Wait and screenshot steps only report.
func Replay(z *Zoomer, script *Script, fn func(i int, step ScriptStep, t Transform)) error {
	var tt touchTracker
	for i, st := range script.Steps {
		if frames, ok := st.frames(); ok {
			container := Rect{Size: z.geom.BoundSize()}
			for _, f := range frames {
				tt.feed(z, container, f)
			}
		} else {
			switch st.Action {
			case ActionAutoZoom:
				st.autoZoom(z)
			case ActionConfigure:
				z.SetConfig(st.configure(z.Config()))
			case ActionWait, ActionScreenshot:
			default:
				return fmt.Errorf("replay step %d: %w %q", i, ErrUnknownAction, st.Action)
			}
		}
		if fn != nil {
			fn(i, st, z.Transform())
		}
	}
	return nil
}

// ScriptRunner plays a gesture script through a View one frame at a time,
// injecting touches the same way hardware input arrives. Attach it with
// View.SetScriptRunner.
type ScriptRunner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

// NewScriptRunner creates a runner for script.
func NewScriptRunner(script *Script) *ScriptRunner {
	return &ScriptRunner{steps: script.Steps}
}

// SetScriptRunner attaches a runner. Its step is called at the start of each
// View.Update.
func (v *View) SetScriptRunner(r *ScriptRunner) {
	v.runner = r
}

// Done reports whether all steps have been executed and their input drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(v *View) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(v.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if frames, ok := st.frames(); ok {
		origin := v.Bounds.Origin
		for _, f := range frames {
			abs := make([]Point, len(f))
			for i, p := range f {
				abs[i] = Sum(p, origin)
			}
			v.injectQueue = append(v.injectQueue, abs)
		}
	} else {
		switch st.Action {
		case ActionAutoZoom:
			st.autoZoom(v.zoomer)
		case ActionConfigure:
			cfg := st.configure(v.zoomer.Config())
			v.Bounds.Size = cfg.BoundSize
			v.zoomer.SetConfig(cfg)
		case ActionScreenshot:
			v.Screenshot(st.Label)
		case ActionWait:
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
			}
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(v.injectQueue) == 0 {
		r.done = true
	}
}
