package ui

// RevealThreshold is the intersection ratio at which an element is revealed.
const RevealThreshold = 0.1

// Reveal tracks scroll-triggered elements. An element is revealed the first
// time it intersects the viewport past RevealThreshold and stays revealed.
type Reveal struct {
	observed map[string]bool
	revealed map[string]bool
}

// NewReveal returns a tracker observing ids.
func NewReveal(ids ...string) *Reveal {
	r := &Reveal{observed: map[string]bool{}, revealed: map[string]bool{}}
	r.Observe(ids...)
	return r
}

// Observe adds ids to the observed set.
func (r *Reveal) Observe(ids ...string) {
	for _, id := range ids {
		r.observed[id] = true
	}
}

// Intersect records an intersection and reports whether id was newly revealed.
func (r *Reveal) Intersect(id string, ratio float64) bool {
	if !r.observed[id] || r.revealed[id] || ratio < RevealThreshold {
		return false
	}
	r.revealed[id] = true
	return true
}

// Revealed reports whether id has been revealed.
func (r *Reveal) Revealed(id string) bool { return r.revealed[id] }

// RevealedSet returns a copy of the revealed ids.
func (r *Reveal) RevealedSet() map[string]bool {
	out := make(map[string]bool, len(r.revealed))
	for id := range r.revealed {
		out[id] = true
	}
	return out
}
