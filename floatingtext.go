package pushbox

// Popup tuning.
const (
	popupDuration  = 1.5  // seconds on screen
	popupRiseSpeed = 40.0 // pixels per second, upward
)

// defaultShadowOffset is the drop-shadow displacement in pixels.
var defaultShadowOffset = Vec2{X: 2, Y: 2}

// FloatingText is a short-lived screen-space popup, one per scoring event.
type FloatingText struct {
	Text         string
	X, Y         float64
	Color        Color
	ShadowColor  Color
	ShadowOffset Vec2
	life         float64 // remaining lifetime in seconds
}

// Alpha returns the fade factor, remaining/duration, applied to both the
// fill and the shadow at render time.
func (ft *FloatingText) Alpha() float64 {
	return clamp01(ft.life / popupDuration)
}

// FloatingTextPool holds the live popups in spawn order. The list only
// grows via Spawn and shrinks via expiry.
type FloatingTextPool struct {
	texts []FloatingText
}

// NewFloatingTextPool creates an empty pool.
func NewFloatingTextPool() *FloatingTextPool {
	return &FloatingTextPool{}
}

// Spawn adds a popup at (x, y) in screen space with the fixed duration.
func (p *FloatingTextPool) Spawn(text string, x, y float64, col Color) {
	p.texts = append(p.texts, FloatingText{
		Text:         text,
		X:            x,
		Y:            y,
		Color:        col,
		ShadowColor:  Color{0, 0, 0, 1},
		ShadowOffset: defaultShadowOffset,
		life:         popupDuration,
	})
}

// Update raises every popup at the constant screen-space rate and evicts
// the ones whose lifetime has expired, preserving spawn order.
func (p *FloatingTextPool) Update(dt float64) {
	kept := p.texts[:0]
	for i := range p.texts {
		ft := &p.texts[i]
		ft.life -= dt
		if ft.life <= 0 {
			continue
		}
		ft.Y -= popupRiseSpeed * dt
		kept = append(kept, *ft)
	}
	p.texts = kept
}

// Texts returns the live popups. The returned slice MUST NOT be mutated.
func (p *FloatingTextPool) Texts() []FloatingText {
	return p.texts
}

// Count returns the number of live popups.
func (p *FloatingTextPool) Count() int {
	return len(p.texts)
}
