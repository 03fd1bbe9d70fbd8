package fling

import "testing"

func TestLinearRectTweenEnds(t *testing.T) {
	from := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	to := Rect{X: 100, Y: 100, Width: 50, Height: 50}
	tw := NewLinearRectTween(Known(from), Known(to))

	if got := mustKnow(t, tw.Evaluate(0)); got != from {
		t.Errorf("Evaluate(0) = %v, want %v", got, from)
	}
	if got := mustKnow(t, tw.Evaluate(1)); got != to {
		t.Errorf("Evaluate(1) = %v, want %v", got, to)
	}
	if got := mustKnow(t, tw.Evaluate(-1)); got != from {
		t.Errorf("Evaluate(-1) = %v, want clamped to from", got)
	}
	assertRect(t, "Evaluate(0.5)", mustKnow(t, tw.Evaluate(0.5)), Rect{X: 50, Y: 50, Width: 30, Height: 30})
}

func TestBezierRectTweenMovesCenterAlongArc(t *testing.T) {
	from := Rect{X: 0, Y: 0, Width: 10, Height: 10}    // center (5, 5)
	to := Rect{X: 90, Y: -110, Width: 30, Height: 30} // center (105, -95)
	tw := NewBezierRectTween(Known(from), Known(to))

	if got := mustKnow(t, tw.Evaluate(0)); got != from {
		t.Errorf("Evaluate(0) = %v, want %v", got, from)
	}
	if got := mustKnow(t, tw.Evaluate(1)); got != to {
		t.Errorf("Evaluate(1) = %v, want %v", got, to)
	}
	// Moving up: vertex (5, -95), center at 0.5 = (30, -70), size 20.
	assertRect(t, "Evaluate(0.5)", mustKnow(t, tw.Evaluate(0.5)), Rect{X: 20, Y: -80, Width: 20, Height: 20})
}

func TestBezierRectTweenCurve(t *testing.T) {
	from := Rect{Width: 10, Height: 10}
	to := Rect{X: 100, Width: 10, Height: 10}
	tw := BezierRectTween{From: Known(from), To: Known(to), Curve: CurveFunc(func(float64) float64 { return 1 })}
	// Every interior progress is mapped to the end.
	assertRect(t, "curved", mustKnow(t, tw.Evaluate(0.3)), to)
}

func TestBezierRectTweenUnknownFallsBack(t *testing.T) {
	to := Rect{X: 4, Y: 4, Width: 8, Height: 8}
	tw := NewBezierRectTween(Unknown[Rect](), Known(to))
	if got := mustKnow(t, tw.Evaluate(0.5)); got != to {
		t.Errorf("Evaluate with unknown begin = %v, want %v", got, to)
	}
}

func TestReverseRectTween(t *testing.T) {
	from := Rect{Width: 10, Height: 10}
	to := Rect{X: 100, Y: 40, Width: 30, Height: 20}
	fwd := NewLinearRectTween(Known(from), Known(to))
	rev := reverseTween(fwd)

	if got := mustKnow(t, rev.Begin()); got != to {
		t.Errorf("reversed Begin = %v, want %v", got, to)
	}
	if got := mustKnow(t, rev.End()); got != from {
		t.Errorf("reversed End = %v, want %v", got, from)
	}
	assertRect(t, "rev(0.25)", mustKnow(t, rev.Evaluate(0.25)), mustKnow(t, fwd.Evaluate(0.75)))

	if reverseTween(rev) != fwd {
		t.Error("reversing twice should unwrap to the original tween")
	}
}

func TestFadeTween(t *testing.T) {
	f := fadeTween{from: 0.5}
	tests := []struct {
		t, want float64
	}{
		{0.5, 1},
		{0.75, 0.5},
		{1, 0},
	}
	for _, tt := range tests {
		if got := f.opacity(tt.t); got != tt.want {
			t.Errorf("opacity(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}
