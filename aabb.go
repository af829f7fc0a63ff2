package pushbox

// AABB is an axis-aligned bounding box in world space (meters, Y-up).
// AABBs are derived values: recomputed from a body's position and
// half-extents every frame, never cached across frames.
type AABB struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// AABBFromCenter builds the box [center-half-margin, center+half+margin]
// per axis. The margin inflates the box symmetrically and is how the
// proximity check widens the player's bounds without touching the crate's.
func AABBFromCenter(center Vec2, halfW, halfH, margin float64) AABB {
	return AABB{
		MinX: center.X - halfW - margin,
		MinY: center.Y - halfH - margin,
		MaxX: center.X + halfW + margin,
		MaxY: center.Y + halfH + margin,
	}
}

// Intersects reports whether a and b overlap. The disjoint test is strict,
// so boxes that merely touch along an edge count as overlapping.
func (a AABB) Intersects(b AABB) bool {
	if a.MaxX < b.MinX || a.MinX > b.MaxX {
		return false
	}
	if a.MaxY < b.MinY || a.MinY > b.MaxY {
		return false
	}
	return true
}

// Width returns the box extent on the X axis.
func (a AABB) Width() float64 { return a.MaxX - a.MinX }

// Height returns the box extent on the Y axis.
func (a AABB) Height() float64 { return a.MaxY - a.MinY }
