package fling

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestLinearCurve(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1} {
		if got := Linear.Transform(v); got != v {
			t.Errorf("Linear(%v) = %v", v, got)
		}
	}
}

func TestEaseCurveAdaptsGween(t *testing.T) {
	c := EaseCurve(ease.OutQuad)
	if math.Abs(c.Transform(0.5)-0.75) > 1e-6 {
		t.Errorf("OutQuad(0.5) = %v, want 0.75", c.Transform(0.5))
	}
	if c.Transform(0) != 0 || math.Abs(c.Transform(1)-1) > 1e-6 {
		t.Errorf("OutQuad ends = %v, %v", c.Transform(0), c.Transform(1))
	}
	// Input is clamped to [0, 1].
	if math.Abs(c.Transform(2)-1) > 1e-6 {
		t.Errorf("OutQuad(2) = %v, want 1", c.Transform(2))
	}
}

func TestIntervalCurve(t *testing.T) {
	iv := Interval{Begin: 0.2, End: 0.6}
	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{0.2, 0},
		{0.4, 0.5},
		{0.6, 1},
		{1, 1},
	}
	for _, tt := range tests {
		if got := iv.Transform(tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Interval(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestIntervalWithCurve(t *testing.T) {
	iv := Interval{Begin: 0, End: 0.2, Curve: EaseCurve(ease.OutQuad)}
	if got := iv.Transform(0.1); math.Abs(got-0.75) > 1e-6 {
		t.Errorf("Interval(0.1) = %v, want 0.75", got)
	}
}

func TestCurveSetEvaluateAtSameProgress(t *testing.T) {
	cs := DefaultCurves()

	start := cs.Evaluate(0)
	if start.Begin != 0 || start.Middle != 0 || start.End != 0 {
		t.Errorf("Evaluate(0) = %+v, want zeros", start)
	}
	if start.Edge() != 1 {
		t.Errorf("Edge at 0 = %v, want 1 (source look)", start.Edge())
	}

	mid := cs.Evaluate(0.5)
	if mid.Begin != 1 || mid.Middle != 0.5 || mid.End != 0 {
		t.Errorf("Evaluate(0.5) = %+v, want {1 0.5 0}", mid)
	}
	if mid.Edge() != 0 {
		t.Errorf("Edge at 0.5 = %v, want 0", mid.Edge())
	}

	end := cs.Evaluate(1)
	if end.Begin != 1 || end.Middle != 1 || end.End != 1 {
		t.Errorf("Evaluate(1) = %+v, want ones", end)
	}
	if end.Edge() != 1 {
		t.Errorf("Edge at 1 = %v, want 1 (destination look)", end.Edge())
	}
}

func TestCurveSetNilCurvesAreLinear(t *testing.T) {
	v := CurveSet{}.Evaluate(0.3)
	if v.Begin != 0.3 || v.Middle != 0.3 || v.End != 0.3 {
		t.Errorf("Evaluate with nil curves = %+v, want all 0.3", v)
	}
}

func TestCurveFunc(t *testing.T) {
	sq := CurveFunc(func(t float64) float64 { return t * t })
	if got := sq.Transform(0.5); got != 0.25 {
		t.Errorf("CurveFunc(0.5) = %v, want 0.25", got)
	}
}
