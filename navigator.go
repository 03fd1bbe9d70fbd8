package fling

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultDuration is the transition duration when none is configured.
const DefaultDuration = 300 * time.Millisecond

// Config configures a Navigator. The zero value is usable.
type Config struct {
	// Duration of transitions whose destination boundary sets none.
	Duration time.Duration
	// Width and Height size the navigator's root boundary (the overlay
	// space). Hosts that resize call Navigator.SetSize.
	Width, Height float64
	// Controller configures the built-in flight controller.
	Controller ControllerConfig
	// Debug enables debug logging to stderr; see SetDebugMode.
	Debug bool
}

// Transition is one navigation between two boundaries, observed by
// TransitionObservers.
type Transition struct {
	From, To  *Boundary
	FromTag   any
	ToTag     any
	Direction FlightDirection
	// Progress runs 0 -> 1 over the transition as seen by its direction.
	Progress Progress

	driver *Driver
	gen    uint64
}

// Driver returns the driver behind the transition.
func (tr *Transition) Driver() *Driver { return tr.driver }

// Settled reports whether the transition can no longer animate: its driver
// has stopped at an end or was recycled for another transition.
func (tr *Transition) Settled() bool {
	if tr.driver != nil && tr.driver.gen != tr.gen {
		return true
	}
	return !tr.Progress.Status().IsAnimating()
}

// TransitionObserver is notified synchronously, in registration order, when
// a transition starts or is reversed.
type TransitionObserver interface {
	OnTransition(tr *Transition) error
}

// ObserverFunc adapts a function to TransitionObserver.
type ObserverFunc func(tr *Transition) error

// OnTransition calls f(tr).
func (f ObserverFunc) OnTransition(tr *Transition) error { return f(tr) }

// Navigator owns the boundary tree, the overlay flights paint on, the
// driver pool and the frame loop.
type Navigator struct {
	root       *Node
	overlay    *Overlay
	pool       driverPool
	controller *Controller
	observers  []TransitionObserver
	pending    []deferredCall
	sink       FlightEventSink
	script     *ScriptRunner
	cfg        Config
	debug      bool
	disposed   bool
}

// NewNavigator creates a navigator with a root boundary and a registered
// flight controller.
func NewNavigator(cfg Config) *Navigator {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	root := NewBoundary("navigator", rootBoundaryTag{}, BoundaryOptions{})
	root.SetSize(cfg.Width, cfg.Height)
	nav := &Navigator{root: root, cfg: cfg}
	nav.overlay = newOverlay(root)
	nav.controller = NewController(nav, cfg.Controller)
	nav.observers = append(nav.observers, nav.controller)
	nav.SetDebugMode(cfg.Debug)
	return nav
}

// Root returns the navigator's root boundary node. Boundaries are added
// beneath it.
func (nav *Navigator) Root() *Node { return nav.root }

func (nav *Navigator) rootBoundary() *Boundary { return nav.root.boundary }

// Overlay returns the surface flights paint on.
func (nav *Navigator) Overlay() *Overlay { return nav.overlay }

// Controller returns the built-in flight controller.
func (nav *Navigator) Controller() *Controller { return nav.controller }

// SetSize resizes the root boundary.
func (nav *Navigator) SetSize(w, h float64) {
	nav.root.SetSize(w, h)
}

// AddObserver registers o after the existing observers.
func (nav *Navigator) AddObserver(o TransitionObserver) {
	nav.observers = append(nav.observers, o)
}

// SetEventSink sets the optional flight event sink.
func (nav *Navigator) SetEventSink(sink FlightEventSink) {
	nav.sink = sink
}

// SetScript attaches a ScriptRunner stepped at the start of every Update.
func (nav *Navigator) SetScript(runner *ScriptRunner) {
	nav.script = runner
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// tree operations panic, deep trees are reported, and flight lifecycle
// events are logged to stderr.
func (nav *Navigator) SetDebugMode(enabled bool) {
	nav.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set debug flag so that node and
// flight code (which lack a Navigator pointer) can check it cheaply.
var globalDebug bool

// StartTransition runs a new transition from one boundary to another,
// flying the participant tagged fromTag in from to the one tagged toTag in
// to. Both nodes must be boundaries attached under Root.
func (nav *Navigator) StartTransition(from, to *Node, fromTag, toTag any) (*Transition, error) {
	fb, err := nav.attachedBoundary("start transition", from)
	if err != nil {
		return nil, err
	}
	tb, err := nav.attachedBoundary("start transition", to)
	if err != nil {
		return nil, err
	}
	for _, tag := range []any{fromTag, toTag} {
		if err := checkTag("start transition", tag); err != nil {
			return nil, err
		}
	}
	d := nav.acquire(tb.Duration(nav.cfg.Duration))
	tr := &Transition{
		From: fb, To: tb,
		FromTag: fromTag, ToTag: toTag,
		Direction: FlightPush,
		Progress:  d,
		driver:    d,
		gen:       d.gen,
	}
	d.Forward(0)
	if globalDebug {
		debugLog("transition %s -> %s (%v -> %v) over %v", describeNode(from), describeNode(to), fromTag, toTag, d.Duration())
	}
	return tr, nav.notify(tr)
}

// Reverse runs tr back to its start, flying its participants home. A
// transition whose driver is still running is reversed in place, diverting
// its flights; a settled one gets a driver starting at 1.
func (nav *Navigator) Reverse(tr *Transition) (*Transition, error) {
	if tr == nil {
		return nil, &ConfigurationError{Op: "reverse", Msg: "nil transition"}
	}
	if _, err := nav.attachedBoundary("reverse", tr.From.node); err != nil {
		return nil, err
	}
	if _, err := nav.attachedBoundary("reverse", tr.To.node); err != nil {
		return nil, err
	}
	d := tr.driver
	if !nav.pool.reclaim(d, tr.gen) {
		d = nav.acquire(tr.driver.Duration())
		if tr.Direction == FlightPush {
			d.seek(1)
		}
	}
	back := &Transition{
		From: tr.To, To: tr.From,
		FromTag: tr.ToTag, ToTag: tr.FromTag,
		driver: d,
		gen:    d.gen,
	}
	if tr.Direction == FlightPush {
		back.Direction = FlightPop
		back.Progress = ReverseProgress(d)
		d.Reverse()
	} else {
		back.Direction = FlightPush
		back.Progress = d
		d.Forward(d.Value())
	}
	return back, nav.notify(back)
}

// acquire checks a driver out of the pool and returns it there when its
// transition settles.
func (nav *Navigator) acquire(duration time.Duration) *Driver {
	d := nav.pool.Acquire(duration)
	d.AddStatusListener(func(s Status) {
		if !s.IsAnimating() {
			nav.pool.Release(d)
		}
	})
	return d
}

func (nav *Navigator) notify(tr *Transition) error {
	for _, o := range nav.observers {
		if err := o.OnTransition(tr); err != nil {
			return err
		}
	}
	return nil
}

// attachedBoundary resolves n to a boundary under the navigator's root.
func (nav *Navigator) attachedBoundary(op string, n *Node) (*Boundary, error) {
	b, err := boundaryNode(op, n)
	if err != nil {
		return nil, err
	}
	if n.IsDisposed() || !isAncestor(nav.root, n) {
		return nil, &ConfigurationError{Op: op, Msg: "boundary " + describeNode(n) + " is not attached to this navigator"}
	}
	return b, nil
}

// BoundaryOf returns the boundary owning n: n itself if it is a boundary,
// the owner recorded by the last matching pass for a participant, or the
// nearest boundary above it.
func (nav *Navigator) BoundaryOf(n *Node) (*Boundary, error) {
	if n == nil {
		return nil, &ConfigurationError{Op: "boundary lookup", Msg: "nil node"}
	}
	if n.boundary != nil {
		return n.boundary, nil
	}
	if n.fling != nil && n.fling.boundaryID != 0 {
		for p := n.Parent; p != nil; p = p.Parent {
			if p.ID == n.fling.boundaryID && p.boundary != nil {
				return p.boundary, nil
			}
		}
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.boundary != nil {
			return p.boundary, nil
		}
	}
	return nil, &ConfigurationError{Op: "boundary lookup", Msg: "no boundary above " + describeNode(n)}
}

// deferredCall is queued work for the next Update. cancel, when set, undoes
// whatever was done at queue time if the call never runs.
type deferredCall struct {
	run    func() error
	cancel func()
}

// afterLayout queues run for the next Update, after the layout pass. cancel
// runs instead if the navigator is disposed first.
func (nav *Navigator) afterLayout(run func() error, cancel func()) {
	nav.pending = append(nav.pending, deferredCall{run: run, cancel: cancel})
}

func (nav *Navigator) emit(ev FlightEvent) {
	if nav.sink != nil {
		nav.sink.EmitFlightEvent(ev)
	}
}

// Update runs one frame. The host lays nodes out (SetSize, positions) before
// calling it. Order: script step, world transforms, deferred matching, then
// driver ticks, during which flights re-resolve their endpoints. The first
// configuration error raised by deferred matching is returned.
func (nav *Navigator) Update(dt float64) error {
	if nav.disposed {
		return nil
	}
	var firstErr error
	if nav.script != nil {
		firstErr = nav.script.step(nav)
	}

	updateWorldTransform(nav.root, identityTransform, 1.0, false)

	pending := nav.pending
	nav.pending = nil
	for _, call := range pending {
		if err := call.run(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	nav.pool.Update(dt)
	return firstErr
}

// Draw paints visible boundary content, then the overlay on top.
func (nav *Navigator) Draw(screen *ebiten.Image) {
	if nav.disposed {
		return
	}
	drawNode(screen, nav.root, identityTransform, 1)
	nav.overlay.Draw(screen)
}

func drawNode(dst *ebiten.Image, n *Node, parent [6]float64, parentAlpha float64) {
	if !n.Visible || (n.boundary != nil && n.boundary.Offstage) {
		return
	}
	m := multiplyAffine(parent, computeLocalTransform(n))
	alpha := parentAlpha * n.Alpha
	if n.Content != nil && n.sized {
		n.Content.Draw(dst, transformedBounds(m, Rect{Width: n.width, Height: n.height}), alpha)
	}
	for _, c := range n.children {
		drawNode(dst, c, m, alpha)
	}
}

// Dispose tears the navigator down: pending matches are cancelled, which
// brings offstage destinations back, and every pooled driver is disposed.
// Running flights stop where they are.
func (nav *Navigator) Dispose() {
	if nav.disposed {
		return
	}
	nav.disposed = true
	for _, call := range nav.pending {
		if call.cancel != nil {
			call.cancel()
		}
	}
	nav.pending = nil
	for _, f := range nav.controller.flights {
		f.Abort()
	}
	nav.pool.Dispose()
}
