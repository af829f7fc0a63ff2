package pushbox

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Bindings maps gameplay actions to keyboard keys. Multiple keys may bind
// the same action (arrows and WASD both steer).
type Bindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key

	Reset       ebiten.Key
	Explode     ebiten.Key
	DebugToggle ebiten.Key
	Screenshot  ebiten.Key
}

// DefaultBindings returns the demo's control scheme.
func DefaultBindings() Bindings {
	return Bindings{
		Left:        []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:       []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Jump:        []ebiten.Key{ebiten.KeySpace},
		Reset:       ebiten.KeyR,
		Explode:     ebiten.KeyE,
		DebugToggle: ebiten.KeyF1,
		Screenshot:  ebiten.KeyF12,
	}
}

// FrameInput is everything the keyboard said this tick. Held actions
// (movement, jump) report level state; one-shot actions report the press
// edge only.
type FrameInput struct {
	Player      PlayerInput
	Explode     bool
	DebugToggle bool
	Screenshot  bool
}

// Poll reads the keyboard once for this tick. Movement and jump use held
// state to match the force-while-held control model; jump repetition is
// naturally limited by the grounded gate.
func (b Bindings) Poll() FrameInput {
	return FrameInput{
		Player: PlayerInput{
			Left:  anyKeyPressed(b.Left),
			Right: anyKeyPressed(b.Right),
			Jump:  anyKeyPressed(b.Jump),
			Reset: inpututil.IsKeyJustPressed(b.Reset),
		},
		Explode:     inpututil.IsKeyJustPressed(b.Explode),
		DebugToggle: inpututil.IsKeyJustPressed(b.DebugToggle),
		Screenshot:  inpututil.IsKeyJustPressed(b.Screenshot),
	}
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
