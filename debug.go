package pushbox

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi"
)

// debugOutlineColor marks AABB outlines in the overlay.
var debugOutlineColor = Color{0, 1, 0.4, 0.9}

// DebugOverlay draws per-entity AABBs and frame stats when enabled.
// Toggled at runtime with the debug key.
type DebugOverlay struct {
	Enabled bool
}

// Toggle flips the overlay on or off.
func (d *DebugOverlay) Toggle() {
	d.Enabled = !d.Enabled
}

// Draw renders AABB outlines (the player's inflated by the proximity
// margin) and a stats readout. No-op while disabled.
func (d *DebugOverlay) Draw(screen *ebiten.Image, reg *Registry, cam *Camera, score int, particles int) {
	if !d.Enabled {
		return
	}

	reg.Each(func(e donburi.Entity) {
		margin := 0.0
		if reg.Tag(e) == TagPlayer {
			margin = proximityMargin
		}
		drawAABBOutline(screen, cam, reg.AABB(e, margin))
	})

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nTPS: %.1f\nscore: %d\nparticles: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), score, particles))
}

// drawAABBOutline strokes a world-space box with 1 px screen-space lines
// built from the white pixel, avoiding any extra draw dependency.
func drawAABBOutline(screen *ebiten.Image, cam *Camera, box AABB) {
	topLeft := cam.ToScreen(Vec2{X: box.MinX, Y: box.MaxY})
	w := cam.SizeToPixels(box.Width())
	h := cam.SizeToPixels(box.Height())

	fillRect(screen, topLeft.X, topLeft.Y, w, 1)
	fillRect(screen, topLeft.X, topLeft.Y+h-1, w, 1)
	fillRect(screen, topLeft.X, topLeft.Y, 1, h)
	fillRect(screen, topLeft.X+w-1, topLeft.Y, 1, h)
}

func fillRect(screen *ebiten.Image, x, y, w, h float64) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	c := debugOutlineColor
	a := float32(c.A)
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
	screen.DrawImage(WhitePixel, &op)
}
