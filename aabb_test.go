package pushbox

import "testing"

func TestAABBFromCenter(t *testing.T) {
	box := AABBFromCenter(Vec2{X: 1, Y: 2}, 0.5, 0.25, 0)
	want := AABB{MinX: 0.5, MinY: 1.75, MaxX: 1.5, MaxY: 2.25}
	if box != want {
		t.Errorf("box = %+v, want %+v", box, want)
	}
}

func TestAABBFromCenterMargin(t *testing.T) {
	box := AABBFromCenter(Vec2{X: 0, Y: 0}, 1, 1, 1)
	want := AABB{MinX: -2, MinY: -2, MaxX: 2, MaxY: 2}
	if box != want {
		t.Errorf("box = %+v, want %+v", box, want)
	}
}

func TestIntersectsSymmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b AABB
	}{
		{"overlapping", AABB{0, 0, 2, 2}, AABB{1, 1, 3, 3}},
		{"disjoint x", AABB{0, 0, 1, 1}, AABB{5, 0, 6, 1}},
		{"disjoint y", AABB{0, 0, 1, 1}, AABB{0, 5, 1, 6}},
		{"contained", AABB{0, 0, 4, 4}, AABB{1, 1, 2, 2}},
		{"touching edge", AABB{0, 0, 1, 1}, AABB{1, 0, 2, 1}},
	}
	for _, tc := range cases {
		ab := tc.a.Intersects(tc.b)
		ba := tc.b.Intersects(tc.a)
		if ab != ba {
			t.Errorf("%s: Intersects not symmetric: a/b=%v b/a=%v", tc.name, ab, ba)
		}
	}
}

func TestIntersectsTouchingEdgesCount(t *testing.T) {
	a := AABB{0, 0, 1, 1}
	b := AABB{1, 0, 2, 1} // a.MaxX == b.MinX
	if !a.Intersects(b) {
		t.Error("boxes sharing an edge should count as overlapping")
	}
	corner := AABB{1, 1, 2, 2} // shares only the corner point
	if !a.Intersects(corner) {
		t.Error("boxes sharing a corner should count as overlapping")
	}
}

func TestIntersectsDisjoint(t *testing.T) {
	a := AABB{0, 0, 1, 1}
	if a.Intersects(AABB{1.001, 0, 2, 1}) {
		t.Error("boxes separated on X should not overlap")
	}
	if a.Intersects(AABB{0, 1.001, 1, 2}) {
		t.Error("boxes separated on Y should not overlap")
	}
}

// Overlap must hold exactly when the centers are closer than the summed
// half-extents (plus margin) on both axes.
func TestIntersectsCenterDistance(t *testing.T) {
	const (
		hwA, hhA = 1.0, 1.0
		hwB, hhB = 0.5, 0.5
		margin   = 1.0
	)
	a := AABBFromCenter(Vec2{0, 0}, hwA, hhA, margin)

	for _, tc := range []struct {
		name    string
		center  Vec2
		overlap bool
	}{
		{"close on both axes", Vec2{2.0, 0}, true},
		{"exactly at x threshold", Vec2{hwA + hwB + margin, 0}, true},
		{"past x threshold", Vec2{hwA + hwB + margin + 0.01, 0}, false},
		{"past y threshold", Vec2{0, hhA + hhB + margin + 0.01}, false},
		{"diagonal inside", Vec2{2.0, 2.0}, true},
	} {
		b := AABBFromCenter(tc.center, hwB, hhB, 0)
		if got := a.Intersects(b); got != tc.overlap {
			t.Errorf("%s: overlap = %v, want %v", tc.name, got, tc.overlap)
		}
	}
}

func TestAABBSize(t *testing.T) {
	box := AABB{MinX: -1, MinY: -2, MaxX: 3, MaxY: 4}
	if box.Width() != 4 {
		t.Errorf("Width = %v, want 4", box.Width())
	}
	if box.Height() != 6 {
		t.Errorf("Height = %v, want 6", box.Height())
	}
}
