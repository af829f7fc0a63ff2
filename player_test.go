package pushbox

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

// freeBody returns a controller around a player-sized body in a world
// with gravity disabled, so motion comes only from the controller.
func freeBody(t *testing.T) (*World, *Controller, *cp.Body) {
	t.Helper()
	w := NewWorld()
	w.Space().SetGravity(cp.Vector{})
	body := w.AddDynamicBox(playerSpawn, playerHalf, playerHalf)
	return w, NewController(body), body
}

func TestHeldForceIncreasesVelocityMonotonically(t *testing.T) {
	w, c, body := freeBody(t)

	var prevVX float64
	for i := 0; i < 30; i++ {
		c.Apply(PlayerInput{Right: true})
		w.Step()
		vx := body.Velocity().X
		if vx <= prevVX {
			t.Fatalf("step %d: vx = %v, want > %v while force held", i, vx, prevVX)
		}
		prevVX = vx
	}

	// After release, no force: velocity must not increase further.
	held := body.Velocity().X
	for i := 0; i < 30; i++ {
		w.Step()
	}
	if body.Velocity().X > held+1e-9 {
		t.Errorf("vx = %v after release, want <= %v", body.Velocity().X, held)
	}
}

// Constant force on a known mass must integrate close to the analytic
// constant-acceleration formula. The discrete symplectic step overshoots
// x = a*t^2/2 by O(dt), so the tolerance is loose.
func TestConstantForceMatchesAnalytic(t *testing.T) {
	w, c, body := freeBody(t)

	const steps = 60
	for i := 0; i < steps; i++ {
		c.Apply(PlayerInput{Right: true})
		w.Step()
	}

	mass := defaultDensity * (playerHalf * 2) * (playerHalf * 2)
	accel := moveForce / mass
	elapsed := float64(steps) * FixedTimestep

	wantV := accel * elapsed
	if gotV := body.Velocity().X; math.Abs(gotV-wantV) > 0.01 {
		t.Errorf("vx = %v, want %v +- 0.01", gotV, wantV)
	}

	wantX := playerSpawn.X + 0.5*accel*elapsed*elapsed
	if gotX := body.Position().X; math.Abs(gotX-wantX) > 0.1 {
		t.Errorf("x = %v, want %v +- 0.1", gotX, wantX)
	}
}

func TestJumpRequiresGrounded(t *testing.T) {
	w, c, body := freeBody(t)

	// Airborne: vertical speed above the grounded threshold.
	body.SetVelocity(0, 0.5)
	c.Apply(PlayerInput{Jump: true})
	w.Step()
	if vy := body.Velocity().Y; math.Abs(vy-0.5) > 1e-9 {
		t.Errorf("vy = %v, want 0.5: airborne body must not receive an impulse", vy)
	}

	// Falling also counts as airborne.
	body.SetVelocity(0, -0.5)
	c.Apply(PlayerInput{Jump: true})
	w.Step()
	if vy := body.Velocity().Y; math.Abs(vy+0.5) > 1e-9 {
		t.Errorf("vy = %v, want -0.5: falling body must not receive an impulse", vy)
	}
}

func TestJumpImpulseWhileGrounded(t *testing.T) {
	w, c, body := freeBody(t)

	body.SetVelocity(0, 0)
	c.Apply(PlayerInput{Jump: true})
	w.Step()

	mass := defaultDensity * (playerHalf * 2) * (playerHalf * 2)
	want := jumpImpulse / mass
	if vy := body.Velocity().Y; math.Abs(vy-want) > 1e-9 {
		t.Errorf("vy = %v, want %v after grounded jump", vy, want)
	}
}

func TestResetTeleportsToSpawn(t *testing.T) {
	_, c, body := freeBody(t)

	body.SetPosition(cp.Vector{X: 7, Y: -3})
	body.SetVelocity(4, -9)
	body.SetAngle(1.2)
	c.Apply(PlayerInput{Reset: true})

	pos := body.Position()
	if pos.X != playerSpawn.X || pos.Y != playerSpawn.Y {
		t.Errorf("position = %+v, want %+v", pos, playerSpawn)
	}
	if v := body.Velocity(); v.X != 0 || v.Y != 0 {
		t.Errorf("velocity = %+v, want exactly zero", v)
	}
	if body.Angle() != 0 {
		t.Errorf("angle = %v, want 0", body.Angle())
	}
}

func TestRecoverIfFallen(t *testing.T) {
	_, c, body := freeBody(t)

	body.SetPosition(cp.Vector{X: 0, Y: -25})
	body.SetVelocity(0, -30)

	if !c.RecoverIfFallen() {
		t.Fatal("body below the fall threshold should recover")
	}
	if y := body.Position().Y; y != 10.0 {
		t.Errorf("y = %v, want exactly 10.0", y)
	}
	if v := body.Velocity(); v.X != 0 || v.Y != 0 {
		t.Errorf("velocity = %+v, want exactly zero", v)
	}
}

func TestRecoverIgnoresBodiesAboveThreshold(t *testing.T) {
	_, c, body := freeBody(t)

	body.SetPosition(cp.Vector{X: 3, Y: -19.9})
	if c.RecoverIfFallen() {
		t.Error("body above the fall threshold must not be touched")
	}
	if pos := body.Position(); pos.X != 3 {
		t.Errorf("position moved to %+v", pos)
	}
}
