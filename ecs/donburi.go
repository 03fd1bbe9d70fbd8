package ecs

import (
	"github.com/phanxgames/fling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FlightEventType is the Donburi event type for fling flight events.
var FlightEventType = events.NewEventType[fling.FlightEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a FlightEventSink backed by a Donburi world.
// Events are published to FlightEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) fling.FlightEventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitFlightEvent(event fling.FlightEvent) {
	FlightEventType.Publish(s.world, event)
}
