package models

import "github.com/golangdaddy/crossroads/road"

// Capacity counts, per approach direction, the vehicles that have spawned
// but not yet passed their commit checkpoint. Counts never go negative and
// operations on an unknown direction are no-ops.
type Capacity struct {
	counts [road.DirectionCount]int
}

// NewCapacity creates a tracker preloaded with the given counts.
func NewCapacity(counts map[road.Direction]int) Capacity {
	var c Capacity
	for d, n := range counts {
		c.Set(d, n)
	}
	return c
}

// Increment adds one queued vehicle to d.
func (c *Capacity) Increment(d road.Direction) {
	if !d.Valid() {
		return
	}
	c.counts[d]++
}

// Decrement removes one queued vehicle from d, saturating at zero.
func (c *Capacity) Decrement(d road.Direction) {
	if !d.Valid() || c.counts[d] == 0 {
		return
	}
	c.counts[d]--
}

// Set overwrites the count for d. Negative values are clamped to zero.
func (c *Capacity) Set(d road.Direction, n int) {
	if !d.Valid() {
		return
	}
	if n < 0 {
		n = 0
	}
	c.counts[d] = n
}

// Get returns the count for d, zero for an unknown direction.
func (c Capacity) Get(d road.Direction) int {
	if !d.Valid() {
		return 0
	}
	return c.counts[d]
}

// Total returns the number of queued vehicles across all approaches.
func (c Capacity) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Busiest returns the direction with the most queued vehicles. Ties go to
// the earliest direction in road.Priority.
func (c Capacity) Busiest() road.Direction {
	best := road.Priority[0]
	for _, d := range road.Priority[1:] {
		if c.counts[d] > c.counts[best] {
			best = d
		}
	}
	return best
}
