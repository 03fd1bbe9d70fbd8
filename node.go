package fling

// NodeKind distinguishes the role a Node plays during flight matching.
type NodeKind uint8

const (
	NodeKindContainer NodeKind = iota // plain layout node
	NodeKindFling                     // a tagged flight participant
	NodeKindBoundary                  // a navigable grouping scope
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindFling:
		return "fling"
	case NodeKindBoundary:
		return "boundary"
	}
	return "container"
}

// nodeIDCounter is a plain counter; fling is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the layout element flights are resolved against. A single flat
// struct serves containers, participants and boundaries.
//
// Size is owned by the host's layout pass: a node reports HasFinalizedSize
// only after SetSize has been called with finite values.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Kind NodeKind

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Layout result
	width, height float64
	sized         bool

	// Computed during Navigator.Update
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility
	Alpha   float64
	Visible bool

	// FlightsDisabled stops the tag registry from descending into this
	// subtree.
	FlightsDisabled bool

	// Content paints this node. Nil draws nothing.
	Content Content

	fling    *Fling
	boundary *Boundary

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.worldAlpha = 1
	n.worldTransform = identityTransform
	n.Visible = true
	n.transformDirty = true
}

// NewContainer creates a plain layout node.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Kind: NodeKindContainer}
	nodeDefaults(n)
	return n
}

// Fling returns the participant carried by this node, or nil.
func (n *Node) Fling() *Fling {
	return n.fling
}

// Boundary returns the boundary scope carried by this node, or nil.
func (n *Node) Boundary() *Boundary {
	return n.boundary
}

// --- Layout ---

// SetSize records the laid-out size of the node and marks it final.
func (n *Node) SetSize(w, h float64) {
	n.width = w
	n.height = h
	n.sized = isFinite(w) && isFinite(h)
}

// InvalidateLayout forgets the laid-out size until the next SetSize.
func (n *Node) InvalidateLayout() {
	n.sized = false
}

// HasFinalizedSize reports whether a layout pass has produced a finite size.
func (n *Node) HasFinalizedSize() bool {
	return n.sized && !n.disposed
}

// Size returns the laid-out size. Only meaningful when HasFinalizedSize.
func (n *Node) Size() Vec2 {
	return Vec2{n.width, n.height}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, child is an ancestor of this node (cycle), or the
// attachment would nest a fling inside a fling or a boundary inside a
// boundary with the same tag.
func (n *Node) AddChild(child *Node) {
	n.AddChildAt(child, len(n.children))
}

// AddChildAt inserts child at the given index.
// Same reparenting and validation behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("fling: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("fling: adding child would create a cycle")
	}
	validateAttach(n, child)
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("fling: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("fling: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// FindByName returns the first node named name in a depth-first walk of the
// subtree rooted at n, or nil.
func (n *Node) FindByName(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Flights referencing a disposed
// node treat it as unreachable.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Content = nil
	n.sized = false
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// validateAttach enforces the nesting invariants for attaching child under
// parent: no fling inside a fling, and no boundary inside a boundary that
// carries the same tag.
func validateAttach(parent, child *Node) {
	inFling := false
	var tags []any
	for p := parent; p != nil; p = p.Parent {
		switch p.Kind {
		case NodeKindFling:
			inFling = true
		case NodeKindBoundary:
			tags = append(tags, p.boundary.Tag)
		}
	}
	validateSubtree(child, inFling, tags)
}

func validateSubtree(n *Node, inFling bool, tags []any) {
	switch n.Kind {
	case NodeKindFling:
		if inFling {
			configPanic("attach", "fling %s (tag %v) is nested inside another fling", describeNode(n), n.fling.Tag)
		}
		inFling = true
	case NodeKindBoundary:
		for _, t := range tags {
			if t == n.boundary.Tag {
				configPanic("attach", "boundary %s is nested inside a boundary with the same tag %v", describeNode(n), t)
			}
		}
		tags = append(tags[:len(tags):len(tags)], n.boundary.Tag)
	}
	for _, c := range n.children {
		validateSubtree(c, inFling, tags)
	}
}
