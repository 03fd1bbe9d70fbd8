package fling

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Progress is a read-only view of a 0..1 transition progress with change
// notifications. Flights observe it; they never drive it.
type Progress interface {
	Value() float64
	Status() Status
	// AddListener registers fn to run whenever the value changes.
	AddListener(fn func()) ListenerID
	RemoveListener(id ListenerID)
	// AddStatusListener registers fn to run whenever the status changes.
	AddStatusListener(fn func(Status)) ListenerID
	RemoveStatusListener(id ListenerID)
}

// ListenerID identifies a registered listener for removal.
type ListenerID uint64

type valueListener struct {
	id      ListenerID
	fn      func()
	removed bool
}

type statusListener struct {
	id      ListenerID
	fn      func(Status)
	removed bool
}

// Driver advances a progress value from 0 to 1 (or back) over a fixed
// duration. It is ticked by the navigator each frame.
type Driver struct {
	duration time.Duration
	tween    *gween.Tween
	elapsed  float32
	value    float64
	status   Status
	stopped  bool

	listeners       []*valueListener
	statusListeners []*statusListener
	nextID          ListenerID

	// pool bookkeeping
	gen        uint64
	checkedOut bool
	disposed   bool
}

// NewDriver creates a dismissed driver for the given duration.
func NewDriver(duration time.Duration) *Driver {
	d := &Driver{duration: duration}
	d.tween = gween.New(0, 1, d.seconds(), ease.Linear)
	return d
}

func (d *Driver) seconds() float32 {
	return float32(d.duration.Seconds())
}

// Duration returns the configured duration.
func (d *Driver) Duration() time.Duration { return d.duration }

// Value implements Progress.
func (d *Driver) Value() float64 { return d.value }

// Status implements Progress.
func (d *Driver) Status() Status { return d.status }

// Forward starts running toward 1 from the given value.
func (d *Driver) Forward(from float64) {
	d.stopped = false
	d.seek(clamp01(from))
	if d.value >= 1 || d.duration <= 0 {
		d.seek(1)
		d.setStatus(StatusCompleted)
		return
	}
	d.setStatus(StatusForward)
}

// Reverse starts running toward 0 from the current value.
func (d *Driver) Reverse() {
	d.stopped = false
	if d.value <= 0 || d.duration <= 0 {
		d.seek(0)
		d.setStatus(StatusDismissed)
		return
	}
	d.setStatus(StatusReverse)
}

// Stop halts the driver where it is. A driver stopped at an end reports
// completed or dismissed.
func (d *Driver) Stop() {
	d.stopped = true
	switch {
	case d.value >= 1:
		d.setStatus(StatusCompleted)
	case d.value <= 0:
		d.setStatus(StatusDismissed)
	}
	// Mid-way stops keep the last direction so observers can tell which way
	// the transition was heading.
}

// SetValue jumps to v, notifying listeners. Reaching an end stops the driver.
func (d *Driver) SetValue(v float64) {
	d.seek(clamp01(v))
	d.notify()
	switch {
	case d.value >= 1:
		d.setStatus(StatusCompleted)
	case d.value <= 0:
		d.setStatus(StatusDismissed)
	}
}

// Update advances the driver by dt seconds if it is running.
func (d *Driver) Update(dt float64) {
	if d.disposed || d.stopped || !d.status.IsAnimating() {
		return
	}
	if d.status == StatusForward {
		d.elapsed += float32(dt)
	} else {
		d.elapsed -= float32(dt)
	}
	v, _ := d.tween.Set(d.elapsed)
	d.value = clamp01(float64(v))
	if d.elapsed >= d.seconds() {
		d.value = 1
	} else if d.elapsed <= 0 {
		d.value = 0
	}
	d.notify()
	switch {
	case d.status == StatusForward && d.value >= 1:
		d.setStatus(StatusCompleted)
	case d.status == StatusReverse && d.value <= 0:
		d.setStatus(StatusDismissed)
	}
}

func (d *Driver) seek(v float64) {
	d.value = v
	d.elapsed = float32(v) * d.seconds()
	d.tween.Set(d.elapsed)
}

func (d *Driver) setStatus(s Status) {
	if d.status == s {
		return
	}
	d.status = s
	snapshot := append([]*statusListener(nil), d.statusListeners...)
	for _, l := range snapshot {
		if !l.removed {
			l.fn(s)
		}
	}
}

func (d *Driver) notify() {
	snapshot := append([]*valueListener(nil), d.listeners...)
	for _, l := range snapshot {
		if !l.removed {
			l.fn()
		}
	}
}

// AddListener implements Progress.
func (d *Driver) AddListener(fn func()) ListenerID {
	d.nextID++
	d.listeners = append(d.listeners, &valueListener{id: d.nextID, fn: fn})
	return d.nextID
}

// RemoveListener implements Progress.
func (d *Driver) RemoveListener(id ListenerID) {
	for i, l := range d.listeners {
		if l.id == id {
			l.removed = true
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// AddStatusListener implements Progress.
func (d *Driver) AddStatusListener(fn func(Status)) ListenerID {
	d.nextID++
	d.statusListeners = append(d.statusListeners, &statusListener{id: d.nextID, fn: fn})
	return d.nextID
}

// RemoveStatusListener implements Progress.
func (d *Driver) RemoveStatusListener(id ListenerID) {
	for i, l := range d.statusListeners {
		if l.id == id {
			l.removed = true
			d.statusListeners = append(d.statusListeners[:i], d.statusListeners[i+1:]...)
			return
		}
	}
}

// reset returns the driver to a fresh dismissed state with no listeners.
func (d *Driver) reset() {
	for _, l := range d.listeners {
		l.removed = true
	}
	for _, l := range d.statusListeners {
		l.removed = true
	}
	d.listeners = nil
	d.statusListeners = nil
	d.status = StatusDismissed
	d.stopped = false
	d.seek(0)
	d.gen++
}

// --- Reversed view ---

// reverseProgress observes a driver backward: value 1-v, forward and reverse
// swapped, completed and dismissed swapped.
type reverseProgress struct {
	d *Driver
}

// ReverseProgress returns a view of d that runs 1 -> 0 as 0 -> 1.
func ReverseProgress(d *Driver) Progress {
	return reverseProgress{d: d}
}

func (r reverseProgress) Value() float64 { return 1 - r.d.Value() }
func (r reverseProgress) Status() Status { return flipStatus(r.d.Status()) }

func (r reverseProgress) AddListener(fn func()) ListenerID { return r.d.AddListener(fn) }
func (r reverseProgress) RemoveListener(id ListenerID)     { r.d.RemoveListener(id) }

func (r reverseProgress) AddStatusListener(fn func(Status)) ListenerID {
	return r.d.AddStatusListener(func(s Status) { fn(flipStatus(s)) })
}

func (r reverseProgress) RemoveStatusListener(id ListenerID) { r.d.RemoveStatusListener(id) }

func flipStatus(s Status) Status {
	switch s {
	case StatusForward:
		return StatusReverse
	case StatusReverse:
		return StatusForward
	case StatusCompleted:
		return StatusDismissed
	default:
		return StatusCompleted
	}
}

// underlyingDriver unwraps the driver behind a Progress, or nil.
func underlyingDriver(p Progress) *Driver {
	switch v := p.(type) {
	case *Driver:
		return v
	case reverseProgress:
		return v.d
	}
	return nil
}
