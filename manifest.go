package fling

// Manifest is the immutable description of one flight: which participants
// fly, along which tween, showing which shuttle, driven by which progress.
// Locations are resolved once, on first access.
type Manifest struct {
	Direction    FlightDirection
	Overlay      *Overlay
	From, To     *Fling
	FromBoundary *Boundary
	ToBoundary   *Boundary
	Progress     Progress
	Curves       CurveSet

	// DefaultRectTween is the controller-level tween, used when the
	// destination has no override. Nil means linear.
	DefaultRectTween RectTweenFactory

	overlaySize  Vec2
	resolved     bool
	fromLocation Rect
	toLocation   Rect
}

// newManifest snapshots the overlay size at construction.
func newManifest(m Manifest) *Manifest {
	out := m
	if out.Overlay != nil {
		out.overlaySize = out.Overlay.Size()
	}
	return &out
}

// OverlaySize is the overlay's size when the manifest was built.
func (m *Manifest) OverlaySize() Vec2 { return m.overlaySize }

func (m *Manifest) resolve() {
	if m.resolved {
		return
	}
	m.resolved = true
	space := m.Overlay.Space()
	var err error
	if m.fromLocation, err = m.From.location(space); err != nil {
		m.fromLocation = nonFiniteRect
	}
	if m.toLocation, err = m.To.location(space); err != nil {
		m.toLocation = nonFiniteRect
	}
}

// FromLocation is the source's bounds in overlay space.
func (m *Manifest) FromLocation() Rect {
	m.resolve()
	return m.fromLocation
}

// ToLocation is the destination's bounds in overlay space.
func (m *Manifest) ToLocation() Rect {
	m.resolve()
	return m.toLocation
}

// IsValid reports whether both locations are finite. Invalid manifests never
// start a flight.
func (m *Manifest) IsValid() bool {
	return m.FromLocation().IsFinite() && m.ToLocation().IsFinite()
}

// RectTweenFactory picks the destination's override, then the controller's
// default, then linear interpolation.
func (m *Manifest) RectTweenFactory() RectTweenFactory {
	if m.To.opts.RectTween != nil {
		return m.To.opts.RectTween
	}
	if m.DefaultRectTween != nil {
		return m.DefaultRectTween
	}
	return NewLinearRectTween
}

// ShuttleBuilder picks the destination's builder, then the source's, then a
// builder showing the destination's content as is.
func (m *Manifest) ShuttleBuilder() ShuttleBuilder {
	if m.To.opts.Shuttle != nil {
		return m.To.opts.Shuttle
	}
	if m.From.opts.Shuttle != nil {
		return m.From.opts.Shuttle
	}
	return defaultShuttle
}

func defaultShuttle(ctx ShuttleContext) Content {
	return ctx.To.Content
}

func (m *Manifest) shuttleContext() ShuttleContext {
	return ShuttleContext{
		Direction: m.Direction,
		From:      m.From,
		To:        m.To,
		Progress:  m.Progress,
		Curves:    m.Curves,
	}
}
