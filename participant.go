package fling

import "github.com/hajimehoshi/ebiten/v2"

// FlingState is what a participant paints while flights come and go.
type FlingState uint8

const (
	FlingIdle                   FlingState = iota // paints its own content
	FlingPlaceholder                              // paints only a sized placeholder
	FlingPlaceholderWithContent                   // placeholder, content kept in the tree but hidden
)

func (s FlingState) String() string {
	switch s {
	case FlingPlaceholder:
		return "placeholder"
	case FlingPlaceholderWithContent:
		return "placeholder+content"
	}
	return "idle"
}

// ShuttleContext is handed to a ShuttleBuilder when a flight starts or is
// diverted.
type ShuttleContext struct {
	Direction FlightDirection
	From, To  *Fling
	Progress  Progress
	Curves    CurveSet
}

// Values evaluates the flight's curves at the current progress.
func (c ShuttleContext) Values() CurveValues {
	return c.Curves.Evaluate(c.Progress.Value())
}

// ShuttleBuilder produces the content painted in the overlay while a flight
// is running.
type ShuttleBuilder func(ctx ShuttleContext) Content

// PlaceholderBuilder produces what a participant paints while a flight owns
// its content. size is the participant's size when the flight started.
type PlaceholderBuilder func(size Vec2, content Content) Content

// FlingOptions configures a participant. The zero value is usable.
type FlingOptions struct {
	// Shuttle overrides the default shuttle (the destination's content).
	// The destination's builder takes precedence over the source's.
	Shuttle ShuttleBuilder
	// Placeholder paints instead of nothing while the participant is hidden.
	Placeholder PlaceholderBuilder
	// FlightSize, when set, overrides the size of this participant's
	// location for flights, keeping its center.
	FlightSize *Vec2
	// RectTween overrides the controller's tween when this participant is
	// the destination.
	RectTween RectTweenFactory
	// OnFlightStart runs every time a flight hides this participant.
	OnFlightStart func(dir FlightDirection)
	// OnFlightEnd runs every time a flight releases this participant.
	OnFlightEnd func()
}

// Fling is a tagged participant that can travel between boundaries.
type Fling struct {
	// Tag pairs participants across boundaries. It must be comparable.
	Tag any
	// Content is the participant's own content.
	Content Content

	opts            FlingOptions
	node            *Node
	state           FlingState
	placeholderSize Vec2
	boundaryID      uint32
}

// NewFling creates a node carrying a flight participant.
func NewFling(name string, tag any, content Content, opts FlingOptions) *Node {
	if err := checkTag("new fling", tag); err != nil {
		panic(err)
	}
	n := &Node{Name: name, Kind: NodeKindFling}
	nodeDefaults(n)
	n.fling = &Fling{Tag: tag, Content: content, opts: opts, node: n}
	n.Content = flingPainter{n.fling}
	return n
}

// Node returns the node carrying this participant.
func (f *Fling) Node() *Node { return f.node }

// Options returns the participant's options.
func (f *Fling) Options() FlingOptions { return f.opts }

// State reports what the participant currently paints.
func (f *Fling) State() FlingState { return f.state }

// InFlight reports whether a flight currently hides this participant.
func (f *Fling) InFlight() bool { return f.state != FlingIdle }

// PlaceholderSize is the size captured when the current flight started.
func (f *Fling) PlaceholderSize() Vec2 { return f.placeholderSize }

// LaidOutSize is the size layout should give the node: the captured size
// while a placeholder stands in, the real size otherwise.
func (f *Fling) LaidOutSize() Vec2 {
	if f.state != FlingIdle {
		return f.placeholderSize
	}
	return f.node.Size()
}

// startFlight hides the participant behind a placeholder of its current
// size. includeContent keeps the content as a hidden descendant so a source
// preserves its tree identity during a forward transition.
func (f *Fling) startFlight(dir FlightDirection, includeContent bool) {
	if f.node.HasFinalizedSize() {
		f.placeholderSize = f.node.Size()
	}
	if includeContent {
		f.state = FlingPlaceholderWithContent
	} else {
		f.state = FlingPlaceholder
	}
	if f.opts.OnFlightStart != nil {
		f.opts.OnFlightStart(dir)
	}
}

// endFlight releases the participant. keepPlaceholder leaves it hidden,
// which is what a participant that was just flown away from wants.
func (f *Fling) endFlight(keepPlaceholder bool) {
	if !keepPlaceholder {
		f.state = FlingIdle
		f.placeholderSize = Vec2{}
	}
	if f.opts.OnFlightEnd != nil {
		f.opts.OnFlightEnd()
	}
}

// reachable reports whether the participant is still attached under space.
func (f *Fling) reachable(space *Node) bool {
	return !f.node.IsDisposed() && isAncestor(space, f.node)
}

// location resolves the participant's bounds in space, applying FlightSize.
func (f *Fling) location(space *Node) (Rect, error) {
	r, err := BoundingBoxFor(f.node, space)
	if err != nil {
		return r, err
	}
	if f.opts.FlightSize != nil {
		r = r.WithSize(*f.opts.FlightSize)
	}
	return r, nil
}

// flingPainter paints a participant according to its flight state.
type flingPainter struct {
	f *Fling
}

func (p flingPainter) Draw(dst *ebiten.Image, bounds Rect, alpha float64) {
	f := p.f
	switch {
	case f.state == FlingIdle:
		if f.Content != nil {
			f.Content.Draw(dst, bounds, alpha)
		}
	case f.opts.Placeholder != nil:
		if ph := f.opts.Placeholder(f.placeholderSize, f.Content); ph != nil {
			ph.Draw(dst, Rect{X: bounds.X, Y: bounds.Y, Width: f.placeholderSize.X, Height: f.placeholderSize.Y}, alpha)
		}
	}
}
