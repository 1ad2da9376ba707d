package pinchzoom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultTransitionDuration is the ease-in time, in seconds, after a
	// gesture ends or auto-zoom fires.
	DefaultTransitionDuration float32 = 0.3
)

// Transition eases the displayed transform toward the transform the engine
// settled on. During a gesture the presentation follows the touch exactly;
// corrections from the bounds guard and auto-zoom jumps animate.
//
// There is no global animation manager. Call Update once per frame.
type Transition struct {
	// Duration of animated changes in seconds.
	Duration float32
	// Ease shapes animated changes. Defaults to ease.OutCubic.
	Ease ease.TweenFunc

	current Transform
	target  Transform

	zoom *gween.Tween
	tx   *gween.Tween
	ty   *gween.Tween
}

// NewTransition creates a Transition resting at t.
func NewTransition(t Transform) *Transition {
	return &Transition{
		Duration: DefaultTransitionDuration,
		Ease:     ease.OutCubic,
		current:  t,
		target:   t,
	}
}

// Apply moves toward change.Transform, animating when change.Animated is set.
func (tr *Transition) Apply(change TransformChange) {
	if change.Animated && tr.Duration > 0 {
		tr.Animate(change.Transform)
		return
	}
	tr.Jump(change.Transform)
}

// Jump shows t immediately and cancels any running animation.
func (tr *Transition) Jump(t Transform) {
	tr.current = t
	tr.target = t
	tr.zoom, tr.tx, tr.ty = nil, nil, nil
}

// Animate starts easing from the currently shown transform to t.
func (tr *Transition) Animate(t Transform) {
	fn := tr.Ease
	if fn == nil {
		fn = ease.OutCubic
	}
	from := tr.current
	tr.target = t
	tr.zoom = gween.New(float32(from.ZoomFactor), float32(t.ZoomFactor), tr.Duration, fn)
	tr.tx = gween.New(float32(from.Translate.X), float32(t.Translate.X), tr.Duration, fn)
	tr.ty = gween.New(float32(from.Translate.Y), float32(t.Translate.Y), tr.Duration, fn)
}

// Update advances a running animation by dt seconds and returns the
// transform to display.
func (tr *Transition) Update(dt float32) Transform {
	if tr.zoom == nil {
		return tr.current
	}
	zf, doneZ := tr.zoom.Update(dt)
	x, doneX := tr.tx.Update(dt)
	y, doneY := tr.ty.Update(dt)
	if doneZ && doneX && doneY {
		tr.Jump(tr.target)
		return tr.current
	}
	tr.current = Transform{ZoomFactor: float64(zf), Translate: Point{X: float64(x), Y: float64(y)}}
	return tr.current
}

// Current returns the transform being displayed.
func (tr *Transition) Current() Transform {
	return tr.current
}

// Target returns the transform the transition is heading to.
func (tr *Transition) Target() Transform {
	return tr.target
}

// Animating reports whether an animation is in progress.
func (tr *Transition) Animating() bool {
	return tr.zoom != nil
}
