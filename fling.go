package fling

import (
	"fmt"
	"image/color"
	"math"
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromLTRB builds a rectangle from its four edges.
func RectFromLTRB(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// RectFromCenter builds a rectangle of the given size centered on c.
func RectFromCenter(c, size Vec2) Rect {
	return Rect{X: c.X - size.X/2, Y: c.Y - size.Y/2, Width: size.X, Height: size.Y}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Vec2 { return Vec2{r.X, r.Y} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 { return Vec2{r.X + r.Width/2, r.Y + r.Height/2} }

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// WithSize returns a rectangle of the given size sharing r's center.
func (r Rect) WithSize(size Vec2) Rect {
	return RectFromCenter(r.Center(), size)
}

// IsFinite reports whether every coordinate is neither NaN nor infinite.
func (r Rect) IsFinite() bool {
	return isFinite(r.X) && isFinite(r.Y) && isFinite(r.Width) && isFinite(r.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%.1f, %.1f, %.1f x %.1f)", r.X, r.Y, r.Width, r.Height)
}

// nonFiniteRect marks a location that could not be resolved.
var nonFiniteRect = Rect{math.NaN(), math.NaN(), math.NaN(), math.NaN()}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Endpoint is either a known value or Unknown. Interpolation functions define
// their behavior for each variant instead of relying on nil propagation.
type Endpoint[T any] struct {
	value T
	known bool
}

// Known wraps a resolved value.
func Known[T any](v T) Endpoint[T] {
	return Endpoint[T]{value: v, known: true}
}

// Unknown returns the absent variant.
func Unknown[T any]() Endpoint[T] {
	return Endpoint[T]{}
}

// Get returns the value and whether it is known.
func (e Endpoint[T]) Get() (T, bool) {
	return e.value, e.known
}

// IsKnown reports whether the endpoint carries a value.
func (e Endpoint[T]) IsKnown() bool {
	return e.known
}

// Or returns the value, or fallback when the endpoint is Unknown.
func (e Endpoint[T]) Or(fallback T) T {
	if e.known {
		return e.value
	}
	return fallback
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Status is the state of a progress driver.
type Status uint8

const (
	StatusDismissed Status = iota // stopped at progress 0
	StatusForward                 // running toward 1
	StatusReverse                 // running toward 0
	StatusCompleted               // stopped at progress 1
)

func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	case StatusCompleted:
		return "completed"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// IsAnimating reports whether the driver is moving.
func (s Status) IsAnimating() bool {
	return s == StatusForward || s == StatusReverse
}

// FlightDirection tells whether a flight follows a transition forward or runs
// a previous transition backward.
type FlightDirection uint8

const (
	FlightPush FlightDirection = iota // the transition driver runs 0 -> 1
	FlightPop                         // the transition driver runs 1 -> 0
)

func (d FlightDirection) String() string {
	if d == FlightPop {
		return "pop"
	}
	return "push"
}
