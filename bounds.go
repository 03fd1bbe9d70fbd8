package fling

import (
	"errors"
	"fmt"
	"math"
)

var errNotAncestor = errors.New("not an ancestor")

// LayoutElement is what the bounding-box resolver needs from the layout
// engine. *Node implements it.
type LayoutElement interface {
	HasFinalizedSize() bool
	Size() Vec2
	TransformTo(ancestor LayoutElement) ([6]float64, error)
}

// BoundingBoxFor returns the axis-aligned bounds of element's laid-out box in
// ancestor's coordinate space. It fails with ErrLayoutNotReady when the
// element has no finite, finalized size. Results are not cached: call it
// every frame, since layout in between may move either side.
func BoundingBoxFor(element, ancestor LayoutElement) (Rect, error) {
	if !element.HasFinalizedSize() {
		return nonFiniteRect, ErrLayoutNotReady
	}
	size := element.Size()
	if !size.IsFinite() {
		return nonFiniteRect, ErrLayoutNotReady
	}
	m, err := element.TransformTo(ancestor)
	if err != nil {
		return nonFiniteRect, fmt.Errorf("bounding box: %w", err)
	}

	return transformedBounds(m, Rect{Width: size.X, Height: size.Y}), nil
}

// transformedBounds returns the axis-aligned bounds of r after applying m.
func transformedBounds(m [6]float64, r Rect) Rect {
	corners := [4][2]float64{
		{r.Left(), r.Top()}, {r.Right(), r.Top()},
		{r.Left(), r.Bottom()}, {r.Right(), r.Bottom()},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := transformPoint(m, c[0], c[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return RectFromLTRB(minX, minY, maxX, maxY)
}
