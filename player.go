package pushbox

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Player tuning.
const (
	// moveForce is applied horizontally every tick a direction key is held.
	moveForce = 20.0
	// jumpImpulse is applied once per jump press, only while grounded.
	jumpImpulse = 6.0
	// groundedThreshold approximates "standing on something": a jump is
	// allowed only while |vy| is below this, so an airborne body cannot
	// receive a second impulse.
	groundedThreshold = 0.01
	// fallThreshold triggers the silent out-of-bounds recovery.
	fallThreshold = -20.0
)

// playerSpawn is where the player starts and respawns.
var playerSpawn = Vec2{X: 0, Y: 10}

// PlayerInput is one tick's worth of control intent, decoupled from the
// keyboard so the controller can be driven directly in tests.
type PlayerInput struct {
	Left  bool
	Right bool
	Jump  bool
	Reset bool
}

// Controller translates control intent into forces and impulses on the
// player body. Forces accumulate for the next space step and are cleared
// by Chipmunk after it runs.
type Controller struct {
	body *cp.Body
}

// NewController wraps the player body.
func NewController(body *cp.Body) *Controller {
	return &Controller{body: body}
}

// Apply pushes the body according to in. Held directions apply a constant
// world-space force at the center of mass; jump applies a single upward
// impulse gated by the grounded threshold; reset teleports to spawn.
func (c *Controller) Apply(in PlayerInput) {
	pos := c.body.Position()
	if in.Left {
		c.body.ApplyForceAtWorldPoint(cp.Vector{X: -moveForce, Y: 0}, pos)
	}
	if in.Right {
		c.body.ApplyForceAtWorldPoint(cp.Vector{X: moveForce, Y: 0}, pos)
	}
	if in.Jump {
		if math.Abs(c.body.Velocity().Y) < groundedThreshold {
			c.body.ApplyImpulseAtWorldPoint(cp.Vector{X: 0, Y: jumpImpulse}, pos)
		}
	}
	if in.Reset {
		c.respawn()
	}
}

// RecoverIfFallen teleports the body back to spawn when it has dropped
// below the fall threshold. Silent and unconditional; this is recovery,
// not an error. Reports whether a recovery happened.
func (c *Controller) RecoverIfFallen() bool {
	if c.body.Position().Y >= fallThreshold {
		return false
	}
	c.respawn()
	return true
}

// respawn resets transform and motion in one shot.
func (c *Controller) respawn() {
	c.body.SetPosition(cp.Vector{X: playerSpawn.X, Y: playerSpawn.Y})
	c.body.SetAngle(0)
	c.body.SetVelocity(0, 0)
	c.body.SetAngularVelocity(0)
}
