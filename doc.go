// Package fling is a shared-element transition engine for [Ebitengine].
//
// When navigation moves from one boundary (a page) to another, a participant
// tagged in the outgoing boundary flies to the participant carrying the
// matching tag in the incoming one. While it flies, both participants are
// hidden behind placeholders and a shuttle is painted on the navigator's
// overlay, following a rectangle tween that is re-anchored every frame as
// layout moves either end.
//
// # Quick start
//
//	nav := fling.NewNavigator(fling.Config{Width: 640, Height: 480})
//
//	list := fling.NewBoundary("list", "list", fling.BoundaryOptions{})
//	thumb := fling.NewFling("thumb", "photo-1", fling.Solid{R: 1, A: 1}, fling.FlingOptions{})
//	thumb.SetPosition(20, 20)
//	thumb.SetSize(64, 64)
//	list.AddChild(thumb)
//
//	detail := fling.NewBoundary("detail", "detail", fling.BoundaryOptions{})
//	hero := fling.NewFling("hero", "photo-1", fling.Solid{R: 1, A: 1}, fling.FlingOptions{})
//	hero.SetSize(640, 320)
//	detail.AddChild(hero)
//
//	nav.Root().AddChild(list)
//	nav.Root().AddChild(detail)
//	tr, err := nav.StartTransition(list, detail, "photo-1", "photo-1")
//
// Drive frames with [Run], or call [Navigator.Update] and [Navigator.Draw]
// from your own [ebiten.Game]. [Navigator.Reverse] runs a transition back,
// diverting its flight if it is still in the air.
//
// # Layout
//
// fling does not lay anything out. The host positions nodes and reports
// their size with [Node.SetSize] before each [Navigator.Update]; a node that
// has never been sized cannot be flown to or from.
//
// # Motion
//
// [NewLinearRectTween] interpolates rectangle edges. [NewBezierRectTween]
// moves the center along the quadratic arc of [BezierOffset], bowing
// vertically when moving up and horizontally otherwise. Shuttle builders
// receive a [CurveSet] whose begin, middle and end curves, evaluated at the
// same progress, pace entry, translation and exit; [EdgeBlend] combines the
// begin and end values. Curves adapt any [gween] easing via [EaseCurve].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package fling
