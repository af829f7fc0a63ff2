package pushbox

// proximityMargin widens the player's AABB for the touch check. The crate's
// box stays exact, so "touching" really means "within a meter".
const proximityMargin = 1.0

// OverlapTracker detects rising edges of an AABB overlap recomputed every
// frame. There is no persistent contact state: a one-frame gap in overlap
// fully resets the touching flag, and the next overlap is a new edge.
type OverlapTracker struct {
	touching bool
}

// Update feeds this frame's overlap result and reports whether it is a
// rising edge (was not overlapping, now is).
func (t *OverlapTracker) Update(overlapping bool) bool {
	rising := overlapping && !t.touching
	t.touching = overlapping
	return rising
}

// Touching reports the most recent overlap state.
func (t *OverlapTracker) Touching() bool {
	return t.touching
}

// Reset clears the touching flag.
func (t *OverlapTracker) Reset() {
	t.touching = false
}
