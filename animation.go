package pushbox

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse tuning: the crate breathes between neutral and pulseMax scale
// while the player is within proximity.
const (
	pulseMax        = 1.15
	pulseHalfPeriod = 0.25 // seconds per expand or contract leg
)

// Pulse drives the touch animation: a render-only scale factor that
// oscillates while active and snaps back to neutral the moment it is
// deactivated. There is no global animation manager; the game loop calls
// Update each tick.
type Pulse struct {
	tween     *gween.Tween
	expanding bool
	active    bool
	value     float64
}

// NewPulse creates an inactive pulse at neutral scale.
func NewPulse() *Pulse {
	return &Pulse{value: 1}
}

// SetActive starts or stops the oscillation. Deactivating resets the
// scale to neutral immediately.
func (p *Pulse) SetActive(active bool) {
	if active == p.active {
		return
	}
	p.active = active
	if active {
		p.expanding = true
		p.tween = gween.New(1, pulseMax, pulseHalfPeriod, ease.OutQuad)
	} else {
		p.tween = nil
		p.value = 1
	}
}

// Active reports whether the pulse is oscillating.
func (p *Pulse) Active() bool {
	return p.active
}

// Update advances the animation by dt seconds and returns the current
// scale factor. Returns exactly 1 while inactive.
func (p *Pulse) Update(dt float64) float64 {
	if !p.active {
		return 1
	}
	v, done := p.tween.Update(float32(dt))
	p.value = float64(v)
	if done {
		if p.expanding {
			p.tween = gween.New(pulseMax, 1, pulseHalfPeriod, ease.InQuad)
		} else {
			p.tween = gween.New(1, pulseMax, pulseHalfPeriod, ease.OutQuad)
		}
		p.expanding = !p.expanding
	}
	return p.value
}

// Value returns the most recently computed scale factor.
func (p *Pulse) Value() float64 {
	return p.value
}
