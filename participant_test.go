package fling

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestFlingStartEndFlight(t *testing.T) {
	var started []FlightDirection
	ended := 0
	n := NewFling("hero", "hero", nil, FlingOptions{
		OnFlightStart: func(dir FlightDirection) { started = append(started, dir) },
		OnFlightEnd:   func() { ended++ },
	})
	n.SetSize(40, 20)
	f := n.Fling()

	f.startFlight(FlightPush, true)
	if f.State() != FlingPlaceholderWithContent {
		t.Errorf("State = %v, want placeholder+content", f.State())
	}
	if !f.InFlight() {
		t.Error("InFlight should be true")
	}
	if f.PlaceholderSize() != (Vec2{40, 20}) {
		t.Errorf("PlaceholderSize = %v, want (40, 20)", f.PlaceholderSize())
	}

	// Layout changes while hidden do not resize the placeholder.
	n.SetSize(80, 80)
	if f.LaidOutSize() != (Vec2{40, 20}) {
		t.Errorf("LaidOutSize = %v, want captured (40, 20)", f.LaidOutSize())
	}

	f.endFlight(true)
	if f.State() != FlingPlaceholderWithContent {
		t.Error("endFlight(true) should keep the placeholder")
	}
	f.endFlight(false)
	if f.State() != FlingIdle {
		t.Errorf("State = %v, want idle", f.State())
	}
	if f.LaidOutSize() != (Vec2{80, 80}) {
		t.Errorf("LaidOutSize = %v, want real size", f.LaidOutSize())
	}

	if len(started) != 1 || started[0] != FlightPush {
		t.Errorf("OnFlightStart calls = %v, want [push]", started)
	}
	if ended != 2 {
		t.Errorf("OnFlightEnd calls = %d, want 2", ended)
	}
}

func TestFlingStartWithoutContent(t *testing.T) {
	f := NewFling("hero", "hero", nil, FlingOptions{}).Fling()
	f.startFlight(FlightPop, false)
	if f.State() != FlingPlaceholder {
		t.Errorf("State = %v, want placeholder", f.State())
	}
	if f.PlaceholderSize() != (Vec2{}) {
		t.Errorf("unsized participant captured %v", f.PlaceholderSize())
	}
}

func TestFlingLocationFlightSize(t *testing.T) {
	root := NewContainer("root")
	size := Vec2{10, 10}
	n := NewFling("hero", "hero", nil, FlingOptions{FlightSize: &size})
	n.SetPosition(20, 20)
	n.SetSize(40, 40)
	root.AddChild(n)

	got, err := n.Fling().location(root)
	if err != nil {
		t.Fatalf("location: %v", err)
	}
	assertRect(t, "location", got, Rect{X: 35, Y: 35, Width: 10, Height: 10})
}

func TestFlingReachable(t *testing.T) {
	root := NewContainer("root")
	n := NewFling("hero", "hero", nil, FlingOptions{})
	root.AddChild(n)
	f := n.Fling()

	if !f.reachable(root) {
		t.Error("attached participant should be reachable")
	}
	n.RemoveFromParent()
	if f.reachable(root) {
		t.Error("detached participant should not be reachable")
	}
	root.AddChild(n)
	n.Dispose()
	if f.reachable(root) {
		t.Error("disposed participant should not be reachable")
	}
}

func TestFlingPainterPlaceholder(t *testing.T) {
	var gotSize Vec2
	calls := 0
	n := NewFling("hero", "hero", nil, FlingOptions{
		Placeholder: func(size Vec2, _ Content) Content {
			gotSize = size
			calls++
			return nil
		},
	})
	n.SetSize(12, 34)
	f := n.Fling()

	n.Content.Draw(nil, Rect{Width: 12, Height: 34}, 1)
	if calls != 0 {
		t.Error("an idle participant should not build a placeholder")
	}

	f.startFlight(FlightPush, true)
	n.Content.Draw(nil, Rect{Width: 12, Height: 34}, 1)
	if calls != 1 || gotSize != (Vec2{12, 34}) {
		t.Errorf("placeholder built %d times with %v", calls, gotSize)
	}
}

func TestFlingPainterIdleDrawsContent(t *testing.T) {
	drawn := 0
	content := ContentFunc(func(_ *ebiten.Image, _ Rect, _ float64) { drawn++ })
	n := NewFling("hero", "hero", content, FlingOptions{})
	n.Content.Draw(nil, Rect{}, 1)
	n.Fling().startFlight(FlightPush, true)
	n.Content.Draw(nil, Rect{}, 1)
	if drawn != 1 {
		t.Errorf("content drawn %d times, want 1 (only while idle)", drawn)
	}
}
