package fling

import "github.com/tanema/gween/ease"

// Curve maps a progress fraction in [0, 1] to an eased fraction.
type Curve interface {
	Transform(t float64) float64
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(t float64) float64

// Transform calls f(t).
func (f CurveFunc) Transform(t float64) float64 { return f(t) }

// Linear is the identity curve.
var Linear Curve = CurveFunc(func(t float64) float64 { return t })

// EaseCurve adapts a gween easing function to Curve.
func EaseCurve(fn ease.TweenFunc) Curve {
	return CurveFunc(func(t float64) float64 {
		return float64(fn(float32(clamp01(t)), 0, 1, 1))
	})
}

// Interval is a curve that is 0 until Begin, 1 after End, and follows Curve
// (Linear when nil) in between.
type Interval struct {
	Begin, End float64
	Curve      Curve
}

// Transform implements Curve.
func (iv Interval) Transform(t float64) float64 {
	if t <= iv.Begin {
		return 0
	}
	if t >= iv.End {
		return 1
	}
	local := (t - iv.Begin) / (iv.End - iv.Begin)
	if iv.Curve == nil {
		return local
	}
	return iv.Curve.Transform(local)
}

// CurveSet holds the three curves evaluated at the same global progress: Begin
// paces the departure from the source, Middle the translation, End the
// arrival at the destination.
type CurveSet struct {
	Begin  Curve
	Middle Curve
	End    Curve
}

// CurveValues is a CurveSet evaluated at one progress value.
type CurveValues struct {
	Begin, Middle, End float64
}

// Edge returns EdgeBlend of the begin and end values.
func (v CurveValues) Edge() float64 {
	return EdgeBlend(v.Begin, v.End)
}

// DefaultCurves returns the curve set used when none is configured: short
// eased entry and exit windows around a linear translation.
func DefaultCurves() CurveSet {
	return CurveSet{
		Begin:  Interval{Begin: 0, End: 0.2, Curve: EaseCurve(ease.OutQuad)},
		Middle: Linear,
		End:    Interval{Begin: 0.8, End: 1, Curve: EaseCurve(ease.InQuad)},
	}
}

// Evaluate runs every curve at t. Nil curves behave as Linear.
func (cs CurveSet) Evaluate(t float64) CurveValues {
	return CurveValues{
		Begin:  transformOr(cs.Begin, t),
		Middle: transformOr(cs.Middle, t),
		End:    transformOr(cs.End, t),
	}
}

func transformOr(c Curve, t float64) float64 {
	if c == nil {
		return t
	}
	return c.Transform(t)
}
