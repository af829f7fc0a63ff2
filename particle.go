package pushbox

import (
	"math"
	"math/rand/v2"
)

// particle holds per-particle simulation state. Unexported; managed by ParticlePool.
type particle struct {
	x, y     float64
	vx, vy   float64
	life     float64 // remaining lifetime in seconds
	maxLife  float64 // initial lifetime (for the shrink fraction)
	baseSize float64 // size at birth in pixels
	size     float64 // current size; reaches zero exactly at expiry
	rotation float64
	rotSpeed float64
}

// BurstConfig controls explosion bursts. All positions and speeds are in
// screen pixels; Gravity pulls down the screen (Y increases downward).
type BurstConfig struct {
	// CountMin and CountMax bound the particles spawned per burst, inclusive.
	CountMin, CountMax int
	// Speed is the range of initial particle speeds in pixels per second.
	Speed Range
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime Range
	// Size is the range of particle sizes at birth in pixels.
	Size Range
	// RotSpeed is the range of rotation speeds in radians per second,
	// applied in a random direction.
	RotSpeed Range
	// Gravity is the constant downward acceleration in pixels per second squared.
	Gravity float64
}

// DefaultBurstConfig returns the explosion tuning used by the demo.
func DefaultBurstConfig() BurstConfig {
	return BurstConfig{
		CountMin: 10,
		CountMax: 15,
		Speed:    Range{60, 180},
		Lifetime: Range{0.5, 1.0},
		Size:     Range{4, 10},
		RotSpeed: Range{1, 6},
		Gravity:  300,
	}
}

// maxParticles is the pool capacity. Spawns beyond it are silently dropped,
// not queued; there is no oldest-first eviction.
const maxParticles = 256

// ParticlePool is a fixed-capacity pool of burst particles with CPU-based
// simulation. Dead particles are swap-removed, so iteration order is not
// stable across updates.
type ParticlePool struct {
	config    BurstConfig
	particles [maxParticles]particle
	alive     int
}

// NewParticlePool creates a pool with the given burst tuning.
func NewParticlePool(cfg BurstConfig) *ParticlePool {
	if cfg.CountMax < cfg.CountMin {
		cfg.CountMax = cfg.CountMin
	}
	return &ParticlePool{config: cfg}
}

// AliveCount returns the number of alive particles.
func (p *ParticlePool) AliveCount() int {
	return p.alive
}

// Config returns a pointer to the pool's config for live tuning.
func (p *ParticlePool) Config() *BurstConfig {
	return &p.config
}

// Burst spawns a random count of particles at (x, y) in screen space, each
// with a uniformly random direction and randomized speed, lifetime, size,
// and spin. Returns how many were actually spawned after the capacity cap.
func (p *ParticlePool) Burst(x, y float64) int {
	count := p.config.CountMin
	if span := p.config.CountMax - p.config.CountMin; span > 0 {
		count += rand.IntN(span + 1)
	}

	spawned := 0
	for i := 0; i < count; i++ {
		if p.alive >= maxParticles {
			break
		}
		pt := &p.particles[p.alive]
		p.alive++
		spawned++

		angle := rand.Float64() * 2 * math.Pi
		speed := p.config.Speed.Random()
		pt.x = x
		pt.y = y
		pt.vx = math.Cos(angle) * speed
		pt.vy = math.Sin(angle) * speed

		pt.life = p.config.Lifetime.Random()
		pt.maxLife = pt.life
		pt.baseSize = p.config.Size.Random()
		pt.size = pt.baseSize

		pt.rotation = rand.Float64() * 2 * math.Pi
		pt.rotSpeed = p.config.RotSpeed.Random()
		if rand.IntN(2) == 0 {
			pt.rotSpeed = -pt.rotSpeed
		}
	}
	return spawned
}

// Update advances the simulation by dt seconds: Euler integration with
// constant downward gravity, size shrinking with the remaining-lifetime
// fraction, and immediate swap-removal of expired particles.
func (p *ParticlePool) Update(dt float64) {
	g := p.config.Gravity * dt

	i := 0
	for i < p.alive {
		pt := &p.particles[i]
		pt.life -= dt
		if pt.life <= 0 {
			// Swap with last alive particle.
			p.alive--
			p.particles[i] = p.particles[p.alive]
			continue
		}

		pt.vy += g
		pt.x += pt.vx * dt
		pt.y += pt.vy * dt
		pt.rotation += pt.rotSpeed * dt

		pt.size = pt.baseSize * (pt.life / pt.maxLife)

		i++
	}
}
