package fling

import "github.com/hajimehoshi/ebiten/v2"

// PaintFunc paints an overlay entry onto the screen.
type PaintFunc func(dst *ebiten.Image)

// OverlayEntry is a handle to one painted layer. Only the holder of the
// handle removes it.
type OverlayEntry struct {
	paint   PaintFunc
	overlay *Overlay
}

// Remove takes the entry off its overlay. Removing twice is a no-op.
func (e *OverlayEntry) Remove() {
	if e.overlay == nil {
		return
	}
	e.overlay.remove(e)
	e.overlay = nil
}

// Mounted reports whether the entry is still on an overlay.
func (e *OverlayEntry) Mounted() bool {
	return e.overlay != nil
}

// Overlay is the surface flights paint on, above all boundary content. Its
// coordinate space is that of its space node.
type Overlay struct {
	space   *Node
	entries []*OverlayEntry
}

func newOverlay(space *Node) *Overlay {
	return &Overlay{space: space}
}

// Space is the node whose coordinate space overlay entries paint in.
func (o *Overlay) Space() *Node { return o.space }

// Size is the laid-out size of the overlay's space.
func (o *Overlay) Size() Vec2 { return o.space.Size() }

// Insert adds an entry painted on top of every existing one.
func (o *Overlay) Insert(paint PaintFunc) *OverlayEntry {
	e := &OverlayEntry{paint: paint, overlay: o}
	o.entries = append(o.entries, e)
	return e
}

func (o *Overlay) remove(e *OverlayEntry) {
	for i, c := range o.entries {
		if c == e {
			copy(o.entries[i:], o.entries[i+1:])
			o.entries[len(o.entries)-1] = nil
			o.entries = o.entries[:len(o.entries)-1]
			return
		}
	}
}

// Len returns the number of mounted entries.
func (o *Overlay) Len() int {
	return len(o.entries)
}

// Draw paints every entry in insertion order.
func (o *Overlay) Draw(dst *ebiten.Image) {
	for _, e := range o.entries {
		if e.paint != nil {
			e.paint(dst)
		}
	}
}
