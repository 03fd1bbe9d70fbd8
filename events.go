package fling

// FlightEventType identifies a flight lifecycle event.
type FlightEventType uint8

const (
	FlightStarted   FlightEventType = iota // shuttle mounted, participants hidden
	FlightDiverted                         // re-targeted at a new manifest
	FlightAborted                          // endpoint tracking stopped; fading out
	FlightCompleted                        // progress reached 1
	FlightDismissed                        // progress returned to 0
)

func (t FlightEventType) String() string {
	switch t {
	case FlightStarted:
		return "started"
	case FlightDiverted:
		return "diverted"
	case FlightAborted:
		return "aborted"
	case FlightCompleted:
		return "completed"
	case FlightDismissed:
		return "dismissed"
	}
	return "unknown"
}

// FlightEvent carries flight lifecycle data to an event sink.
type FlightEvent struct {
	Type      FlightEventType
	FromTag   any
	ToTag     any
	Direction FlightDirection
	Progress  float64
	Rect      Rect
}

// FlightEventSink is the interface for optional event forwarding, e.g. into
// an ECS world. Set it with Navigator.SetEventSink.
type FlightEventSink interface {
	EmitFlightEvent(event FlightEvent)
}
