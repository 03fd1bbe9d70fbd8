package fling

// RectTween interpolates the shuttle's rectangle over flight progress.
type RectTween interface {
	Begin() Endpoint[Rect]
	End() Endpoint[Rect]
	Evaluate(t float64) Endpoint[Rect]
}

// RectTweenFactory builds a RectTween between two locations.
type RectTweenFactory func(begin, end Endpoint[Rect]) RectTween

// LinearRectTween interpolates every edge linearly.
type LinearRectTween struct {
	From, To Endpoint[Rect]
}

// NewLinearRectTween is the default RectTweenFactory.
func NewLinearRectTween(begin, end Endpoint[Rect]) RectTween {
	return LinearRectTween{From: begin, To: end}
}

func (tw LinearRectTween) Begin() Endpoint[Rect] { return tw.From }
func (tw LinearRectTween) End() Endpoint[Rect]   { return tw.To }

// Evaluate implements RectTween.
func (tw LinearRectTween) Evaluate(t float64) Endpoint[Rect] {
	if t <= 0 {
		return tw.From
	}
	if t >= 1 {
		return tw.To
	}
	return InterpolateRect(tw.From, tw.To, t)
}

// BezierRectTween moves the rectangle's center along BezierOffset while the
// size interpolates linearly. Curve, when set, reshapes progress before it is
// applied to the path.
type BezierRectTween struct {
	From, To Endpoint[Rect]
	Curve    Curve
}

// NewBezierRectTween is a RectTweenFactory producing curved motion.
func NewBezierRectTween(begin, end Endpoint[Rect]) RectTween {
	return BezierRectTween{From: begin, To: end}
}

func (tw BezierRectTween) Begin() Endpoint[Rect] { return tw.From }
func (tw BezierRectTween) End() Endpoint[Rect]   { return tw.To }

// Evaluate implements RectTween.
func (tw BezierRectTween) Evaluate(t float64) Endpoint[Rect] {
	if t <= 0 {
		return tw.From
	}
	if t >= 1 {
		return tw.To
	}
	t = transformOr(tw.Curve, t)
	b, bok := tw.From.Get()
	e, eok := tw.To.Get()
	if !bok || !eok {
		return InterpolateRect(tw.From, tw.To, t)
	}
	center, _ := BezierOffset(Known(b.Center()), Known(e.Center()), t).Get()
	return Known(RectFromCenter(center, lerpVec(b.Size(), e.Size(), t)))
}

// ReverseRectTween runs Tween backward: Evaluate(t) == Tween.Evaluate(1-t).
type ReverseRectTween struct {
	Tween RectTween
}

func (tw ReverseRectTween) Begin() Endpoint[Rect] { return tw.Tween.End() }
func (tw ReverseRectTween) End() Endpoint[Rect]   { return tw.Tween.Begin() }

// Evaluate implements RectTween.
func (tw ReverseRectTween) Evaluate(t float64) Endpoint[Rect] {
	return tw.Tween.Evaluate(1 - t)
}

// reverseTween unwraps a reversed tween instead of stacking wrappers.
func reverseTween(tw RectTween) RectTween {
	if r, ok := tw.(ReverseRectTween); ok {
		return r.Tween
	}
	return ReverseRectTween{Tween: tw}
}

// fadeTween is the opacity of a shuttle whose destination vanished: fully
// opaque at progress from, transparent at 1.
type fadeTween struct {
	from float64
}

func (f fadeTween) opacity(t float64) float64 {
	return 1 - Interval{Begin: f.from, End: 1}.Transform(t)
}
