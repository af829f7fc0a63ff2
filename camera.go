package pushbox

// Screen and view constants. The view is fixed: world origin at screen
// center, 50 pixels to the meter, no zoom or rotation.
const (
	ScreenWidth    = 800
	ScreenHeight   = 600
	PixelsPerMeter = 50.0
)

// Camera converts between world space (meters, Y-up) and screen space
// (pixels, Y-down). X and Y are the world-space position the camera
// centers on; the demo leaves them at the origin unless following.
type Camera struct {
	X, Y float64

	followLerp    float64
	followEnabled bool
	targetX       float64
	targetY       float64
}

// NewCamera creates a camera centered on the world origin.
func NewCamera() *Camera {
	return &Camera{}
}

// Follow makes the camera track a world position with the given lerp
// factor per tick. A lerp of 1.0 snaps immediately; lower values give
// smoother following.
func (c *Camera) Follow(x, y, lerp float64) {
	c.followEnabled = true
	c.targetX = x
	c.targetY = y
	c.followLerp = lerp
}

// Unfollow stops tracking and leaves the camera where it is.
func (c *Camera) Unfollow() {
	c.followEnabled = false
}

// Update advances the follow lerp. Called once per tick.
func (c *Camera) Update() {
	if !c.followEnabled {
		return
	}
	c.X += (c.targetX - c.X) * c.followLerp
	c.Y += (c.targetY - c.Y) * c.followLerp
}

// ToScreen converts a world position to screen pixels.
func (c *Camera) ToScreen(world Vec2) Vec2 {
	return Vec2{
		X: (world.X-c.X)*PixelsPerMeter + ScreenWidth/2,
		Y: ScreenHeight/2 - (world.Y-c.Y)*PixelsPerMeter,
	}
}

// ToWorld converts a screen position back to world meters.
func (c *Camera) ToWorld(screen Vec2) Vec2 {
	return Vec2{
		X: (screen.X-ScreenWidth/2)/PixelsPerMeter + c.X,
		Y: (ScreenHeight/2-screen.Y)/PixelsPerMeter + c.Y,
	}
}

// SizeToPixels converts a world-space length to pixels.
func (c *Camera) SizeToPixels(meters float64) float64 {
	return meters * PixelsPerMeter
}
