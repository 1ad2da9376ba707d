package pinchzoom

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTransitionJump(t *testing.T) {
	tr := NewTransition(identityTransform)
	target := Transform{ZoomFactor: 2, Translate: Point{X: 5, Y: 6}}
	tr.Apply(TransformChange{Transform: target})
	if tr.Animating() {
		t.Error("non-animated change should not animate")
	}
	if tr.Current() != target || tr.Update(0.1) != target {
		t.Errorf("Current = %+v, want %+v", tr.Current(), target)
	}
}

func TestTransitionAnimate(t *testing.T) {
	tr := NewTransition(identityTransform)
	tr.Ease = ease.Linear
	target := Transform{ZoomFactor: 3, Translate: Point{X: -20, Y: 40}}
	tr.Apply(TransformChange{Transform: target, Animated: true})

	if !tr.Animating() {
		t.Fatal("animated change should animate")
	}
	if tr.Target() != target {
		t.Errorf("Target = %+v, want %+v", tr.Target(), target)
	}

	mid := tr.Update(DefaultTransitionDuration / 2)
	if !approxEqual(mid.ZoomFactor, 2, 1e-4) {
		t.Errorf("mid zoom = %v, want 2", mid.ZoomFactor)
	}
	if !approxPoint(mid.Translate, Point{X: -10, Y: 20}, 1e-3) {
		t.Errorf("mid translate = %v, want (-10,20)", mid.Translate)
	}

	end := tr.Update(DefaultTransitionDuration)
	if end != target {
		t.Errorf("end = %+v, want exact target %+v", end, target)
	}
	if tr.Animating() {
		t.Error("transition should be finished")
	}
}

func TestTransitionRetargetsFromShown(t *testing.T) {
	tr := NewTransition(identityTransform)
	tr.Ease = ease.Linear
	tr.Animate(Transform{ZoomFactor: 3})
	tr.Update(DefaultTransitionDuration / 2)

	tr.Animate(Transform{ZoomFactor: 1})
	if got := tr.Update(0).ZoomFactor; !approxEqual(got, 2, 1e-4) {
		t.Errorf("retargeted animation starts at %v, want 2", got)
	}
}

func TestTransitionZeroDurationJumps(t *testing.T) {
	tr := NewTransition(identityTransform)
	tr.Duration = 0
	target := Transform{ZoomFactor: 4}
	tr.Apply(TransformChange{Transform: target, Animated: true})
	if tr.Animating() || tr.Current() != target {
		t.Errorf("zero-duration transition should jump, current %+v", tr.Current())
	}
}
