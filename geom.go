package pushbox

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// Scene palette.
var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorPlayer = Color{0.9, 0.3, 0.25, 1}
	ColorCrate  = Color{0.2, 0.5, 0.8, 1}
	ColorTouch  = Color{1, 1, 0, 1}
	ColorGround = Color{0.4, 0.6, 0.3, 1}
	ColorClear  = Color{0.1, 0.1, 0.15, 1}
)

// toRGBA converts a Color to a color.RGBA (premultiplied).
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// WithAlpha returns the color with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	return Color{c.R, c.G, c.B, c.A * a}
}

// Vec2 is a 2D vector used for positions, velocities, and sizes.
// World space is in meters with Y increasing upward, matching the physics
// space; screen space is in pixels with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// WhitePixel is a 1x1 white image used for solid color quads and particles.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Range is a general-purpose min/max range used for randomized spawn
// parameters (particle speed, lifetime, size).
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
