package fling

import (
	"errors"
	"testing"
)

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeKindContainer)
	if n.Fling() != nil || n.Boundary() != nil {
		t.Error("container should carry neither a fling nor a boundary")
	}
}

func TestNewFlingDefaults(t *testing.T) {
	n := NewFling("hero", "photo", Solid{R: 1, A: 1}, FlingOptions{})
	assertNodeDefaults(t, n, "hero", NodeKindFling)
	f := n.Fling()
	if f == nil {
		t.Fatal("Fling() = nil")
	}
	if f.Tag != "photo" {
		t.Errorf("Tag = %v, want photo", f.Tag)
	}
	if f.Node() != n {
		t.Error("Fling.Node() should return the carrying node")
	}
	if f.State() != FlingIdle {
		t.Errorf("State = %v, want idle", f.State())
	}
	if n.Content == nil {
		t.Error("fling node should paint through its participant")
	}
}

func TestNewBoundaryDefaults(t *testing.T) {
	n := NewBoundary("page", "detail", BoundaryOptions{Offstage: true})
	assertNodeDefaults(t, n, "page", NodeKindBoundary)
	b := n.Boundary()
	if b == nil {
		t.Fatal("Boundary() = nil")
	}
	if b.Tag != "detail" {
		t.Errorf("Tag = %v, want detail", b.Tag)
	}
	if !b.Offstage {
		t.Error("Offstage option should carry over")
	}
	if b.ID() != n.ID {
		t.Errorf("ID = %d, want node ID %d", b.ID(), n.ID)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, kind NodeKind) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Kind != kind {
		t.Errorf("Kind = %v, want %v", n.Kind, kind)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if !n.transformDirty {
		t.Error("transformDirty should be true")
	}
	if n.HasFinalizedSize() {
		t.Error("a new node should not have a finalized size")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewBoundary("b", "b", BoundaryOptions{})
	c := NewFling("c", "c", nil, FlingOptions{})
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- Layout ---

func TestSetSizeFinalizes(t *testing.T) {
	n := NewContainer("n")
	n.SetSize(40, 30)
	if !n.HasFinalizedSize() {
		t.Fatal("HasFinalizedSize should be true after SetSize")
	}
	if got := n.Size(); got != (Vec2{40, 30}) {
		t.Errorf("Size = %v, want (40, 30)", got)
	}
	n.InvalidateLayout()
	if n.HasFinalizedSize() {
		t.Error("InvalidateLayout should clear the finalized size")
	}
}

func TestSetSizeNonFinite(t *testing.T) {
	n := NewContainer("n")
	n.SetSize(nonFiniteRect.Width, 10)
	if n.HasFinalizedSize() {
		t.Error("a NaN width should not finalize the size")
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 || child.Parent != p2 {
		t.Error("child should now belong to p2")
	}
}

func TestAddChildAtOrder(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(c)
	parent.AddChildAt(b, 1)

	for i, want := range []*Node{a, b, c} {
		if parent.ChildAt(i) != want {
			t.Errorf("ChildAt(%d) = %q, want %q", i, parent.ChildAt(i).Name, want.Name)
		}
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child")
		}
	}()
	NewContainer("parent").AddChild(nil)
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent)
}

// --- Nesting invariants ---

// expectConfigPanic runs fn and fails unless it panics with a
// ConfigurationError.
func expectConfigPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected a configuration panic, got none")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrConfiguration) {
			t.Fatalf("panic value = %v, want a configuration error", r)
		}
	}()
	fn()
}

func TestNonComparableTagPanics(t *testing.T) {
	expectConfigPanic(t, func() { NewFling("f", []string{"hero"}, nil, FlingOptions{}) })
	expectConfigPanic(t, func() { NewBoundary("b", map[string]int{}, BoundaryOptions{}) })

	// Nil and comparable composite tags are fine.
	NewFling("nil", nil, nil, FlingOptions{})
	NewFling("pair", [2]string{"a", "b"}, nil, FlingOptions{})
}

func TestFlingInsideFlingPanics(t *testing.T) {
	outer := NewFling("outer", "a", nil, FlingOptions{})
	inner := NewFling("inner", "b", nil, FlingOptions{})
	expectConfigPanic(t, func() { outer.AddChild(inner) })
}

func TestFlingNestedThroughContainerPanics(t *testing.T) {
	outer := NewFling("outer", "a", nil, FlingOptions{})
	box := NewContainer("box")
	box.AddChild(NewFling("inner", "b", nil, FlingOptions{}))
	expectConfigPanic(t, func() { outer.AddChild(box) })
}

func TestBoundaryWithSameTagPanics(t *testing.T) {
	outer := NewBoundary("outer", "page", BoundaryOptions{})
	mid := NewContainer("mid")
	outer.AddChild(mid)
	expectConfigPanic(t, func() {
		mid.AddChild(NewBoundary("inner", "page", BoundaryOptions{}))
	})
}

func TestBoundaryWithOtherTagAllowed(t *testing.T) {
	outer := NewBoundary("outer", "page", BoundaryOptions{})
	inner := NewBoundary("inner", "tab", BoundaryOptions{})
	outer.AddChild(inner)
	if inner.Parent != outer {
		t.Error("boundaries with distinct tags should nest")
	}
}

func TestFailedAttachLeavesChildInPlace(t *testing.T) {
	home := NewContainer("home")
	child := NewFling("child", "b", nil, FlingOptions{})
	home.AddChild(child)
	outer := NewFling("outer", "a", nil, FlingOptions{})

	func() {
		defer func() { _ = recover() }()
		outer.AddChild(child)
	}()
	if child.Parent != home || home.NumChildren() != 1 {
		t.Error("a rejected attach should not detach the child from its parent")
	}
}

// --- Remove / Find ---

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	parent.RemoveChild(child)
	if child.Parent != nil || parent.NumChildren() != 0 {
		t.Error("RemoveChild should detach the child")
	}
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")
	a.AddChild(child)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic removing a child from the wrong parent")
		}
	}()
	b.RemoveChild(child)
}

func TestRemoveFromParentNoParent(t *testing.T) {
	NewContainer("orphan").RemoveFromParent()
}

func TestFindByName(t *testing.T) {
	root := NewContainer("root")
	page := NewBoundary("page", "page", BoundaryOptions{})
	hero := NewFling("hero", "hero", nil, FlingOptions{})
	page.AddChild(hero)
	root.AddChild(page)

	if got := root.FindByName("hero"); got != hero {
		t.Errorf("FindByName(hero) = %v, want hero", got)
	}
	if got := root.FindByName("missing"); got != nil {
		t.Errorf("FindByName(missing) = %v, want nil", got)
	}
}

// --- Dispose ---

func TestDisposeRecursive(t *testing.T) {
	root := NewContainer("root")
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	root.AddChild(parent)
	parent.AddChild(child)
	child.AddChild(grandchild)
	child.SetSize(10, 10)

	parent.Dispose()

	if root.NumChildren() != 0 {
		t.Error("Dispose should detach from the parent")
	}
	for _, n := range []*Node{parent, child, grandchild} {
		if !n.IsDisposed() {
			t.Errorf("%q should be disposed", n.Name)
		}
	}
	if child.HasFinalizedSize() {
		t.Error("a disposed node should not report a finalized size")
	}
}

func TestDisposeTwice(t *testing.T) {
	n := NewContainer("n")
	n.Dispose()
	n.Dispose()
	if !n.IsDisposed() {
		t.Error("node should stay disposed")
	}
}

func TestDescribeNodePath(t *testing.T) {
	root := NewContainer("root")
	page := NewContainer("page")
	root.AddChild(page)
	if got, want := describeNode(page), `"root"/"page"`; got != want {
		t.Errorf("describeNode = %s, want %s", got, want)
	}
	if got := describeNode(nil); got != "<nil>" {
		t.Errorf("describeNode(nil) = %s", got)
	}
}
