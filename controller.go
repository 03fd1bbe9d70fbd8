package fling

// ControllerConfig configures a Controller. The zero value is usable.
type ControllerConfig struct {
	// RectTween is the default tween when the destination has no override.
	// Nil means linear interpolation.
	RectTween RectTweenFactory
	// Curves are handed to shuttle builders. Zero value uses DefaultCurves.
	Curves CurveSet
}

// flightKey identifies the flight of one tag pair.
type flightKey struct {
	from, to any
}

// Controller matches participants across a transition and runs one Flight
// per animating tag pair. It observes a Navigator.
type Controller struct {
	nav     *Navigator
	cfg     ControllerConfig
	flights map[flightKey]*Flight
}

// NewController creates a controller for nav. It is not registered; pass it
// to Navigator.AddObserver.
func NewController(nav *Navigator, cfg ControllerConfig) *Controller {
	if cfg.Curves.Begin == nil && cfg.Curves.Middle == nil && cfg.Curves.End == nil {
		cfg.Curves = DefaultCurves()
	}
	return &Controller{nav: nav, cfg: cfg, flights: make(map[flightKey]*Flight)}
}

// OnTransition implements TransitionObserver. Matching is deferred until
// after the next layout pass so the destination has been laid out; a
// destination at progress 0 is kept offstage until then.
func (c *Controller) OnTransition(tr *Transition) error {
	p := tr.Progress
	if p.Value() == 1 {
		return nil
	}
	to := tr.To
	hidden := p.Value() == 0 && !to.Offstage
	if hidden {
		to.Offstage = true
	}
	restore := func() {
		if hidden {
			to.Offstage = false
		}
	}
	c.nav.afterLayout(func() error {
		restore()
		return c.match(tr)
	}, restore)
	return nil
}

// Flight returns the running flight for a tag pair, in either order.
func (c *Controller) Flight(fromTag, toTag any) *Flight {
	_, f := c.lookup(fromTag, toTag)
	return f
}

// NumFlights returns the number of running flights.
func (c *Controller) NumFlights() int {
	return len(c.flights)
}

func (c *Controller) lookup(fromTag, toTag any) (flightKey, *Flight) {
	k := flightKey{fromTag, toTag}
	if f, ok := c.flights[k]; ok {
		return k, f
	}
	k = flightKey{toTag, fromTag}
	if f, ok := c.flights[k]; ok {
		return k, f
	}
	return flightKey{}, nil
}

// match pairs the requested tags across the transition and starts or
// diverts a flight. Destination participants left out are released.
func (c *Controller) match(tr *Transition) error {
	fromParts, err := CollectParticipants(tr.From.node)
	if err != nil {
		return err
	}
	toParts, err := CollectParticipants(tr.To.node)
	if err != nil {
		return err
	}

	src := fromParts[tr.FromTag]
	if src == nil && tr.From != c.nav.rootBoundary() {
		src = findParticipant(c.nav.root, tr.FromTag, tr.To.node)
	}
	dst := toParts[tr.ToTag]
	if dst == nil && tr.To != c.nav.rootBoundary() {
		dst = findParticipant(c.nav.root, tr.ToTag, tr.From.node)
	}

	var matched *Fling
	if src != nil && dst != nil {
		if c.fly(tr, src, dst) {
			matched = dst
		}
	} else if globalDebug {
		debugLog("transition %v -> %v: no participant pair, not animating", tr.FromTag, tr.ToTag)
	}

	for _, f := range toParts {
		if f != matched {
			f.endFlight(false)
		}
	}
	return nil
}

// fly starts or diverts the flight for the pair. It reports whether a flight
// is now running toward dst.
func (c *Controller) fly(tr *Transition, src, dst *Fling) bool {
	if tr.Settled() {
		if globalDebug {
			debugLog("flight %v -> %v skipped: transition settled before matching", tr.FromTag, tr.ToTag)
		}
		return false
	}
	m := newManifest(Manifest{
		Direction:        tr.Direction,
		Overlay:          c.nav.overlay,
		From:             src,
		To:               dst,
		FromBoundary:     tr.From,
		ToBoundary:       tr.To,
		Progress:         tr.Progress,
		Curves:           c.cfg.Curves,
		DefaultRectTween: c.cfg.RectTween,
	})
	if !m.IsValid() {
		if globalDebug {
			debugLog("flight %v -> %v skipped: from %v to %v", tr.FromTag, tr.ToTag, m.FromLocation(), m.ToLocation())
		}
		return false
	}

	key := flightKey{tr.FromTag, tr.ToTag}
	if oldKey, existing := c.lookup(tr.FromTag, tr.ToTag); existing != nil {
		existing.Divert(m)
		delete(c.flights, oldKey)
		c.flights[key] = existing
		return true
	}
	if tr.Progress.Value() != 0 {
		// Nothing to divert and too late to start cleanly.
		return false
	}
	f := newFlight(c.emit, func(done *Flight) {
		for k, v := range c.flights {
			if v == done {
				delete(c.flights, k)
			}
		}
	})
	c.flights[key] = f
	f.Start(m)
	return true
}

func (c *Controller) emit(f *Flight, t FlightEventType) {
	m := f.manifest
	if globalDebug {
		debugLog("flight %v -> %v %s (%s, progress %.2f)", m.From.Tag, m.To.Tag, t, m.Direction, m.Progress.Value())
	}
	c.nav.emit(FlightEvent{
		Type:      t,
		FromTag:   m.From.Tag,
		ToTag:     m.To.Tag,
		Direction: m.Direction,
		Progress:  m.Progress.Value(),
		Rect:      f.Rect(),
	})
}
