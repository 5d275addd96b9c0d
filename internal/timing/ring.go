// Package timing tracks recent frame durations for the diagnostics line.
package timing

// Ring is a fixed-capacity circular buffer of frame durations in
// milliseconds. Each Add overwrites the oldest slot. Average is the mean
// over the whole buffer, zero slots included, so the reading ramps up until
// the buffer first fills.
type Ring struct {
	slots  []float64
	cursor int
}

// NewRing returns a ring with the given capacity, minimum 1.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{slots: make([]float64, capacity)}
}

// Add records a frame duration, overwriting the oldest slot.
func (r *Ring) Add(ms float64) {
	r.slots[r.cursor] = ms
	r.cursor++
	if r.cursor >= len(r.slots) {
		r.cursor = 0
	}
}

// Average returns the arithmetic mean over every slot.
func (r *Ring) Average() float64 {
	var sum float64
	for _, v := range r.slots {
		sum += v
	}
	return sum / float64(len(r.slots))
}

// Cap returns the ring's capacity.
func (r *Ring) Cap() int { return len(r.slots) }
