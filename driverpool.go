package fling

import "time"

// driverPool manages reusable drivers keyed by duration. A driver is checked
// out by Acquire and becomes idle again when its transition settles; idle
// drivers are recycled before new ones are allocated.
type driverPool struct {
	buckets map[time.Duration][]*Driver
	all     []*Driver // acquisition order, for deterministic ticking
}

// Acquire returns a dismissed driver with no listeners for the duration.
func (p *driverPool) Acquire(duration time.Duration) *Driver {
	if p.buckets != nil {
		for _, d := range p.buckets[duration] {
			if !d.checkedOut && !d.status.IsAnimating() {
				d.reset()
				d.checkedOut = true
				return d
			}
		}
	}
	if p.buckets == nil {
		p.buckets = make(map[time.Duration][]*Driver)
	}
	d := NewDriver(duration)
	d.checkedOut = true
	p.buckets[duration] = append(p.buckets[duration], d)
	p.all = append(p.all, d)
	return d
}

// Release marks d idle. It keeps its value and listeners until recycled, so
// a settled transition can still be reversed if nobody reacquired it.
func (p *driverPool) Release(d *Driver) {
	if d == nil {
		return
	}
	d.checkedOut = false
}

// reclaim checks d out again if it has not been recycled since gen.
func (p *driverPool) reclaim(d *Driver, gen uint64) bool {
	if d == nil || d.disposed || d.gen != gen {
		return false
	}
	d.checkedOut = true
	return true
}

// Update ticks every checked-out driver.
func (p *driverPool) Update(dt float64) {
	for _, d := range p.all {
		if d.checkedOut {
			d.Update(dt)
		}
	}
}

// Len returns the number of drivers the pool has allocated.
func (p *driverPool) Len() int {
	return len(p.all)
}

// Dispose drops every driver. Disposed drivers ignore Update.
func (p *driverPool) Dispose() {
	for _, d := range p.all {
		d.reset()
		d.disposed = true
		d.checkedOut = false
	}
	p.buckets = nil
	p.all = nil
}
