package fling

import "github.com/hajimehoshi/ebiten/v2"

// FlightState is the lifecycle position of a Flight.
type FlightState uint8

const (
	FlightIdle       FlightState = iota // constructed, not started
	FlightStarting                      // hiding participants, mounting the shuttle
	FlightInFlight                      // tracking endpoints every tick
	FlightAborting                      // destination lost or abort requested; fading out
	FlightCompleting                    // progress settled, tearing down
	FlightDone                          // shuttle removed, participants released
)

func (s FlightState) String() string {
	switch s {
	case FlightStarting:
		return "starting"
	case FlightInFlight:
		return "in-flight"
	case FlightAborting:
		return "aborting"
	case FlightCompleting:
		return "completing"
	case FlightDone:
		return "done"
	}
	return "idle"
}

// Flight owns one shuttle on the overlay and moves it between the endpoints
// of its current manifest as progress advances.
type Flight struct {
	manifest  *Manifest
	state     FlightState
	rectTween RectTween
	fade      *fadeTween
	aborted   bool
	entry     *OverlayEntry
	shuttle   Content

	// lastFrom and lastTo are the endpoint bounds seen on the previous tick.
	lastFrom, lastTo Rect
	// beginTracksSource is false after a divert re-anchored the tween on
	// the shuttle's in-flight rect.
	beginTracksSource bool

	progress   Progress
	listenerID ListenerID
	statusID   ListenerID

	onEvent func(*Flight, FlightEventType)
	onDone  func(*Flight)
}

func newFlight(onEvent func(*Flight, FlightEventType), onDone func(*Flight)) *Flight {
	return &Flight{onEvent: onEvent, onDone: onDone}
}

// Manifest returns the active manifest.
func (f *Flight) Manifest() *Manifest { return f.manifest }

// State returns the lifecycle state.
func (f *Flight) State() FlightState { return f.state }

// Aborted reports whether endpoint tracking has stopped.
func (f *Flight) Aborted() bool { return f.aborted }

// Entry returns the flight's overlay entry; nil before start.
func (f *Flight) Entry() *OverlayEntry { return f.entry }

// Rect returns the shuttle's bounds, in overlay space, at the current progress.
func (f *Flight) Rect() Rect {
	if f.rectTween == nil {
		return nonFiniteRect
	}
	return f.rectTween.Evaluate(f.progress.Value()).Or(f.lastTo)
}

// Opacity returns the shuttle's opacity at the current progress.
func (f *Flight) Opacity() float64 {
	if f.fade == nil {
		return 1
	}
	return f.fade.opacity(f.progress.Value())
}

// Start hides both participants, mounts the shuttle and begins tracking.
// Progress must be at 0.
func (f *Flight) Start(m *Manifest) {
	if f.state != FlightIdle {
		panic("fling: flight already started")
	}
	if m.Progress.Value() != 0 {
		panic("fling: flight must start at progress 0")
	}
	f.state = FlightStarting
	f.manifest = m

	m.From.startFlight(m.Direction, m.Direction == FlightPush)
	m.To.startFlight(m.Direction, false)

	f.lastFrom = m.FromLocation()
	f.lastTo = m.ToLocation()
	f.rectTween = m.RectTweenFactory()(Known(f.lastFrom), Known(f.lastTo))
	f.beginTracksSource = true
	f.shuttle = m.ShuttleBuilder()(m.shuttleContext())
	f.entry = m.Overlay.Insert(f.paint)
	f.subscribe(m.Progress)

	f.state = FlightInFlight
	f.emit(FlightStarted)
}

// Divert re-targets a running flight at a new manifest without removing the
// shuttle from the overlay. When the new manifest runs the same driver
// backward between the same participants, the current tween is reversed;
// otherwise the new tween starts at the shuttle's current rect.
func (f *Flight) Divert(m *Manifest) {
	if f.state == FlightIdle || f.state == FlightDone {
		panic("fling: divert of a flight that is not running")
	}
	old := f.manifest
	if isReversal(old, m) {
		f.rectTween = reverseTween(f.rectTween)
		f.beginTracksSource = true
		f.lastFrom, f.lastTo = f.lastTo, f.lastFrom
	} else {
		current := f.Rect()
		f.lastFrom = m.FromLocation()
		f.lastTo = m.ToLocation()
		f.rectTween = m.RectTweenFactory()(Known(current), Known(f.lastTo))
		f.beginTracksSource = false
	}
	f.unsubscribe()

	old.From.endFlight(true)
	old.To.endFlight(true)
	m.From.startFlight(m.Direction, m.Direction == FlightPush)
	m.To.startFlight(m.Direction, false)

	f.manifest = m
	f.shuttle = m.ShuttleBuilder()(m.shuttleContext())
	f.aborted = false
	f.fade = nil
	f.subscribe(m.Progress)
	f.state = FlightInFlight
	f.emit(FlightDiverted)
}

// isReversal reports whether next runs prev's driver the other way between
// the same two participants.
func isReversal(prev, next *Manifest) bool {
	d := underlyingDriver(prev.Progress)
	return d != nil && d == underlyingDriver(next.Progress) &&
		prev.Direction != next.Direction &&
		prev.From == next.To && prev.To == next.From
}

// Abort stops endpoint tracking. The shuttle keeps flying and fades out; it
// is removed when progress settles.
func (f *Flight) Abort() {
	if f.state == FlightIdle || f.state == FlightDone || f.aborted {
		return
	}
	f.aborted = true
	if f.fade == nil {
		f.fade = &fadeTween{from: f.progress.Value()}
	}
	f.state = FlightAborting
	f.emit(FlightAborted)
}

func (f *Flight) subscribe(p Progress) {
	f.progress = p
	f.listenerID = p.AddListener(f.tick)
	f.statusID = p.AddStatusListener(f.handleStatus)
}

func (f *Flight) unsubscribe() {
	if f.progress == nil {
		return
	}
	f.progress.RemoveListener(f.listenerID)
	f.progress.RemoveStatusListener(f.statusID)
}

// tick re-resolves both endpoints. A destination that can no longer be
// resolved starts a fade over the remaining progress, and tracking stops.
func (f *Flight) tick() {
	if f.state != FlightInFlight && f.state != FlightAborting {
		return
	}
	m := f.manifest
	space := m.Overlay.Space()
	p := f.progress.Value()

	toRect, toOK := Rect{}, false
	if !f.aborted && m.To.reachable(space) {
		if r, err := m.To.location(space); err == nil && r.IsFinite() {
			toRect, toOK = r, true
		}
	}

	if !f.aborted && toOK {
		begin, end := f.rectTween.Begin(), f.rectTween.End()
		moved := false
		if f.beginTracksSource && m.From.reachable(space) {
			if r, err := m.From.location(space); err == nil && r.IsFinite() && r != f.lastFrom {
				f.lastFrom = r
				begin = Known(r)
				moved = true
			}
		}
		if toRect != f.lastTo {
			f.lastTo = toRect
			end = Known(toRect)
			moved = true
		}
		if moved {
			f.rectTween = m.RectTweenFactory()(begin, end)
		}
	} else if f.fade == nil {
		f.fade = &fadeTween{from: p}
		f.state = FlightAborting
		if globalDebug {
			debugLog("flight %v -> %v lost its destination at %.2f, fading", m.From.Tag, m.To.Tag, p)
		}
	}
	if !f.aborted && !toOK {
		f.aborted = true
		f.emit(FlightAborted)
	}
}

func (f *Flight) handleStatus(s Status) {
	switch s {
	case StatusCompleted:
		f.finish(true)
	case StatusDismissed:
		f.finish(false)
	}
}

// finish tears the flight down. On completion the destination shows its
// content and the source stays hidden; on dismissal the reverse.
func (f *Flight) finish(completed bool) {
	if f.state == FlightDone {
		return
	}
	f.state = FlightCompleting
	f.unsubscribe()
	if f.entry != nil {
		f.entry.Remove()
	}
	m := f.manifest
	if completed {
		m.From.endFlight(true)
		m.To.endFlight(false)
	} else {
		m.To.endFlight(true)
		m.From.endFlight(false)
	}
	f.state = FlightDone
	if completed {
		f.emit(FlightCompleted)
	} else {
		f.emit(FlightDismissed)
	}
	if f.onDone != nil {
		f.onDone(f)
	}
}

// paint draws the shuttle with this frame's rect and opacity.
func (f *Flight) paint(dst *ebiten.Image) {
	if f.shuttle == nil {
		return
	}
	r := f.Rect()
	if !r.IsFinite() {
		return
	}
	space := f.manifest.Overlay.Space()
	f.shuttle.Draw(dst, transformedBounds(space.worldTransform, r), f.Opacity())
}

func (f *Flight) emit(t FlightEventType) {
	if f.onEvent != nil {
		f.onEvent(f, t)
	}
}
