package fling

import "time"

// BoundaryOptions configures a boundary. The zero value is usable.
type BoundaryOptions struct {
	// Duration of transitions into this boundary. Zero uses the navigator's
	// Config.Duration.
	Duration time.Duration
	// Offstage boundaries are laid out but not painted.
	Offstage bool
}

// Boundary is a navigable grouping scope, typically a page. Participants are
// matched per boundary: a tag may appear at most once in a boundary's own
// scope, which excludes nested boundaries.
type Boundary struct {
	// Tag names the boundary. Nested boundaries may not repeat an
	// ancestor's tag.
	Tag any
	// Offstage boundaries are laid out but not painted.
	Offstage bool

	opts BoundaryOptions
	node *Node
}

// NewBoundary creates a node carrying a boundary scope.
func NewBoundary(name string, tag any, opts BoundaryOptions) *Node {
	if err := checkTag("new boundary", tag); err != nil {
		panic(err)
	}
	n := &Node{Name: name, Kind: NodeKindBoundary}
	nodeDefaults(n)
	n.boundary = &Boundary{Tag: tag, Offstage: opts.Offstage, opts: opts, node: n}
	return n
}

// Node returns the node carrying this boundary.
func (b *Boundary) Node() *Node { return b.node }

// ID identifies the boundary; participants refer to their owner by it.
func (b *Boundary) ID() uint32 { return b.node.ID }

// Duration returns the configured transition duration, or fallback when unset.
func (b *Boundary) Duration(fallback time.Duration) time.Duration {
	if b.opts.Duration > 0 {
		return b.opts.Duration
	}
	return fallback
}

// rootBoundaryTag tags a navigator's own boundary so that user tags never
// collide with it.
type rootBoundaryTag struct{}

// boundaryNode returns n's boundary or a ConfigurationError naming op.
func boundaryNode(op string, n *Node) (*Boundary, error) {
	if n == nil || n.boundary == nil {
		name := "<nil>"
		if n != nil {
			name = describeNode(n)
		}
		return nil, &ConfigurationError{Op: op, Msg: "node " + name + " is not a boundary"}
	}
	return n.boundary, nil
}
