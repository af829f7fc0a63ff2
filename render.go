package pushbox

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// particleColor tints explosion particles.
var particleColor = Color{1, 0.6, 0.2, 1}

// Renderer draws the scene with per-entity immediate draws. There is no
// batching: each quad's transform and tint are pushed right before its
// draw call, mirroring how small a scene this is.
type Renderer struct {
	camera *Camera
	font   *BitmapFont // nil = text rendering disabled
}

// NewRenderer creates a renderer for the given view. A nil font silently
// disables popup and HUD text.
func NewRenderer(camera *Camera, font *BitmapFont) *Renderer {
	return &Renderer{camera: camera, font: font}
}

// DrawEntities clears the screen and draws every registered entity as a
// textured or solid-color quad, in spawn order.
func (r *Renderer) DrawEntities(screen *ebiten.Image, reg *Registry) {
	screen.Fill(ColorClear.toRGBA())
	reg.Each(func(e donburi.Entity) {
		r.drawEntity(screen, reg, e)
	})
}

// drawEntity composes the quad transform: scale to the entity's pixel
// size (with pulse), rotate by the body angle, translate to screen.
func (r *Renderer) drawEntity(screen *ebiten.Image, reg *Registry, e donburi.Entity) {
	ref := reg.Body(e)
	vis := reg.Visual(e)

	img := WhitePixel
	if vis.Textured && vis.Texture != nil {
		img = vis.Texture
	}

	w := r.camera.SizeToPixels(ref.HalfW*2) * vis.Pulse
	h := r.camera.SizeToPixels(ref.HalfH*2) * vis.Pulse
	bounds := img.Bounds()
	pos := r.camera.ToScreen(reg.Position(e))

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(-w/2, -h/2)
	// World angles are counterclockwise; the Y flip to screen space
	// inverts the visual direction.
	op.GeoM.Rotate(-ref.Body.Angle())
	op.GeoM.Translate(pos.X, pos.Y)

	tint := vis.Tint
	a := float32(clamp01(tint.A))
	op.ColorScale.Scale(float32(tint.R)*a, float32(tint.G)*a, float32(tint.B)*a, a)

	screen.DrawImage(img, &op)
}

// DrawParticles draws every alive particle as a rotated solid quad.
func (r *Renderer) DrawParticles(screen *ebiten.Image, pool *ParticlePool) {
	a := float32(particleColor.A)
	cr := float32(particleColor.R) * a
	cg := float32(particleColor.G) * a
	cb := float32(particleColor.B) * a

	for i := 0; i < pool.alive; i++ {
		pt := &pool.particles[i]

		var op ebiten.DrawImageOptions
		op.GeoM.Scale(pt.size, pt.size)
		op.GeoM.Translate(-pt.size/2, -pt.size/2)
		op.GeoM.Rotate(pt.rotation)
		op.GeoM.Translate(pt.x, pt.y)
		op.ColorScale.Scale(cr, cg, cb, a)

		screen.DrawImage(WhitePixel, &op)
	}
}

// DrawPopups draws the floating score texts, shadow first, fading both by
// remaining/duration. No-op when text rendering is disabled.
func (r *Renderer) DrawPopups(screen *ebiten.Image, pool *FloatingTextPool) {
	if r.font == nil {
		return
	}
	for _, ft := range pool.Texts() {
		alpha := ft.Alpha()
		r.font.Draw(screen, ft.Text,
			ft.X+ft.ShadowOffset.X, ft.Y+ft.ShadowOffset.Y,
			ft.ShadowColor.WithAlpha(alpha))
		r.font.Draw(screen, ft.Text, ft.X, ft.Y, ft.Color.WithAlpha(alpha))
	}
}

// DrawHUD draws the running score in the top-left corner.
func (r *Renderer) DrawHUD(screen *ebiten.Image, score int) {
	if r.font == nil {
		return
	}
	text := fmt.Sprintf("SCORE %d", score)
	r.font.Draw(screen, text, 18, 18, Color{0, 0, 0, 1}.WithAlpha(0.8))
	r.font.Draw(screen, text, 16, 16, ColorWhite)
}
