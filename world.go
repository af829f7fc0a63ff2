package pushbox

import (
	"github.com/jakecoffman/cp"
)

// Simulation tuning. World units are meters, Y-up, matching Chipmunk.
const (
	// FixedTimestep is the simulation delta per tick. The loop is
	// frame-locked: one tick, one step, no accumulator.
	FixedTimestep = 1.0 / 60.0

	// solverIterations is the Chipmunk constraint solver pass count.
	solverIterations = 8

	gravityY        = -10.0
	defaultDensity  = 1.0
	defaultFriction = 0.3

	groundHalfW = 50.0
	groundHalfH = 0.1
	groundY     = -5.0
)

// World owns the Chipmunk space and every body in it. Dropping the World
// (via Destroy) invalidates all bodies at once; callers must not retain
// body handles past that point.
type World struct {
	space *cp.Space
}

// NewWorld creates an empty space with the scene gravity and solver settings.
func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = solverIterations
	space.SetGravity(cp.Vector{X: 0, Y: gravityY})
	return &World{space: space}
}

// Space exposes the underlying Chipmunk space for stepping and queries.
func (w *World) Space() *cp.Space {
	return w.space
}

// Step advances the simulation by one fixed timestep.
func (w *World) Step() {
	w.space.Step(FixedTimestep)
}

// AddGround creates the single static ground slab at its fixed position.
func (w *World) AddGround() *cp.Body {
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: 0, Y: groundY})
	w.space.AddBody(body)

	shape := cp.NewBox(body, groundHalfW*2, groundHalfH*2, 0)
	shape.SetFriction(defaultFriction)
	w.space.AddShape(shape)
	return body
}

// AddDynamicBox creates a dynamic box body centered at pos with the given
// half-extents. Mass is derived from the default density, matching the
// density/friction material the scene uses for every dynamic body.
func (w *World) AddDynamicBox(pos Vec2, halfW, halfH float64) *cp.Body {
	width := halfW * 2
	height := halfH * 2
	mass := defaultDensity * width * height

	body := cp.NewBody(mass, cp.MomentForBox(mass, width, height))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	w.space.AddBody(body)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(defaultFriction)
	w.space.AddShape(shape)
	return body
}

// Destroy releases the space. All bodies and shapes become invalid.
func (w *World) Destroy() {
	w.space = nil
}
