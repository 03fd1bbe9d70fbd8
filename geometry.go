package fling

// InterpolateRect linearly interpolates each edge of begin toward end.
// When one endpoint is Unknown the other is returned unmodified; when both
// are Unknown the result is Unknown.
func InterpolateRect(begin, end Endpoint[Rect], t float64) Endpoint[Rect] {
	b, bok := begin.Get()
	e, eok := end.Get()
	switch {
	case !bok && !eok:
		return Unknown[Rect]()
	case !bok:
		return end
	case !eok:
		return begin
	}
	return Known(RectFromLTRB(
		lerp(b.Left(), e.Left(), t),
		lerp(b.Top(), e.Top(), t),
		lerp(b.Right(), e.Right(), t),
		lerp(b.Bottom(), e.Bottom(), t),
	))
}

// BezierOffset returns the point at t along a quadratic Bezier curve from a
// to b. The control point bows the path into an L-shaped arc:
//
//   - if the move is purely horizontal or vertical the control point sits on
//     a and the path is the straight segment;
//   - moving up (delta.Y < 0) the curve leaves a vertically;
//   - otherwise it leaves a horizontally.
//
// An Unknown endpoint has no curve: the result is the linear interpolation
// with the absent point taken as the origin.
func BezierOffset(a, b Endpoint[Vec2], t float64) Endpoint[Vec2] {
	pa, aok := a.Get()
	pb, bok := b.Get()
	switch {
	case !aok && !bok:
		return Unknown[Vec2]()
	case !aok:
		return Known(pb.Scale(t))
	case !bok:
		return Known(pa.Scale(1 - t))
	}
	return Known(quadBezier(pa, pb, t))
}

// bezierControl returns the control offset, relative to a, for a curve from
// a to b.
func bezierControl(a, b Vec2) Vec2 {
	delta := b.Sub(a)
	switch {
	case delta.X == 0 || delta.Y == 0:
		return Vec2{}
	case delta.Y < 0:
		return Vec2{0, delta.Y}
	default:
		return Vec2{delta.X, 0}
	}
}

// quadBezier evaluates a*(1-t)^2 + vertex*2t(1-t) + b*t^2 with
// vertex = a + control.
func quadBezier(a, b Vec2, t float64) Vec2 {
	vertex := a.Add(bezierControl(a, b))
	mt := 1 - t
	return a.Scale(mt * mt).
		Add(vertex.Scale(2 * t * mt)).
		Add(b.Scale(t * t))
}

// EdgeBlend returns the weight of endpoint styling on an in-flight shuttle:
// while the end curve has not started it is the remaining share of the begin
// curve (source look), afterwards the end curve value (destination look).
// With disjoint begin/end intervals it is 1 at both ends and 0 in between.
func EdgeBlend(beginValue, endValue float64) float64 {
	if endValue > 0 {
		return endValue
	}
	return 1 - beginValue
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{lerp(a.X, b.X, t), lerp(a.Y, b.Y, t)}
}
