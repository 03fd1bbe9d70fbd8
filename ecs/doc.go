// Package ecs provides ECS adapters for fling's flight events.
//
// The primary adapter is [NewDonburiSink], which forwards flight lifecycle
// events (started, diverted, aborted, completed, dismissed) into a [Donburi]
// world as typed events. Subscribe to [FlightEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	nav.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
