package pushbox

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Scene layout. Half-extents in meters.
const (
	playerHalf  = 1.0
	crateHalf   = 0.5
	crateSpawnX = 2.0
	crateSpawnY = 6.0

	scoreIncrement = 10
)

// Config points at optional on-disk assets. Every asset has a built-in
// fallback, so a zero path is not an error.
type Config struct {
	PlayerTexturePath string
	CrateTexturePath  string
	GroundTexturePath string
	FontPath          string
	FontAtlasPath     string
	ScreenshotDir     string
}

// DefaultConfig returns the asset layout the demo ships with.
func DefaultConfig() Config {
	return Config{
		PlayerTexturePath: "assets/player.png",
		CrateTexturePath:  "assets/crate.png",
		GroundTexturePath: "assets/ground.png",
		FontPath:          "assets/font.fnt",
		FontAtlasPath:     "assets/font.png",
		ScreenshotDir:     DefaultScreenshotDir,
	}
}

// Game is the application state: physics world, entity registry, effect
// pools, and the running score. It implements ebiten.Game; every Update
// call is one fixed simulation tick.
type Game struct {
	world      *World
	registry   *Registry
	controller *Controller
	camera     *Camera
	renderer   *Renderer
	bindings   Bindings
	overlay    DebugOverlay

	player donburi.Entity
	crate  donburi.Entity

	tracker   OverlapTracker
	pulse     *Pulse
	particles *ParticlePool
	popups    *FloatingTextPool

	score          int
	screenshotDir  string
	wantScreenshot bool
}

// NewGame builds the fixed scene: one static ground, one dynamic player,
// one dynamic crate, plus the effect pools and renderer.
func NewGame(cfg Config) (*Game, error) {
	world := NewWorld()
	registry := NewRegistry()
	camera := NewCamera()

	playerTex := LoadTexture(cfg.PlayerTexturePath, Color{0.95, 0.5, 0.45, 1}, Color{0.7, 0.2, 0.15, 1})
	crateTex := LoadTexture(cfg.CrateTexturePath, Color{0.2, 0.5, 0.8, 1}, Color{0.1, 0.3, 0.6, 1})
	groundTex := LoadTexture(cfg.GroundTexturePath, Color{0.4, 0.6, 0.3, 1}, Color{0.3, 0.5, 0.2, 1})

	ground := world.AddGround()
	playerBody := world.AddDynamicBox(playerSpawn, playerHalf, playerHalf)
	crateBody := world.AddDynamicBox(Vec2{X: crateSpawnX, Y: crateSpawnY}, crateHalf, crateHalf)

	registry.Spawn(TagGround, ground, groundHalfW, groundHalfH, Visual{
		Tint: ColorGround, Texture: groundTex, Textured: true,
	})
	player := registry.Spawn(TagPlayer, playerBody, playerHalf, playerHalf, Visual{
		Tint: ColorPlayer, Texture: playerTex, Textured: true,
	})
	crate := registry.Spawn(TagBox, crateBody, crateHalf, crateHalf, Visual{
		Tint: ColorCrate, Texture: crateTex, Textured: true,
	})

	font := LoadFont(cfg.FontPath, cfg.FontAtlasPath)

	return &Game{
		world:         world,
		registry:      registry,
		controller:    NewController(playerBody),
		camera:        camera,
		renderer:      NewRenderer(camera, font),
		bindings:      DefaultBindings(),
		player:        player,
		crate:         crate,
		pulse:         NewPulse(),
		particles:     NewParticlePool(DefaultBurstConfig()),
		popups:        NewFloatingTextPool(),
		screenshotDir: cfg.ScreenshotDir,
	}, nil
}

// Update runs one fixed tick. Ebitengine calls this at 60 TPS; the
// simulation is locked to that rate.
func (g *Game) Update() error {
	g.step(g.bindings.Poll())
	return nil
}

// step is one tick of the loop: intent, physics, proximity check with
// edge-triggered scoring, effect updates, then out-of-bounds recovery.
// Separated from Update so tests can drive it without a keyboard.
func (g *Game) step(in FrameInput) {
	g.controller.Apply(in.Player)
	g.world.Step()

	overlap := g.registry.AABB(g.player, proximityMargin).
		Intersects(g.registry.AABB(g.crate, 0))

	crateVis := g.registry.Visual(g.crate)
	if overlap {
		crateVis.Tint = ColorTouch
	} else {
		crateVis.Tint = ColorCrate
	}

	if g.tracker.Update(overlap) {
		g.score += scoreIncrement
		at := g.camera.ToScreen(g.registry.Position(g.crate))
		g.popups.Spawn(fmt.Sprintf("+%d", scoreIncrement), at.X, at.Y, ColorTouch)
		g.particles.Burst(at.X, at.Y)
	}

	g.pulse.SetActive(overlap)
	crateVis.Pulse = g.pulse.Update(FixedTimestep)

	if in.Explode {
		at := g.camera.ToScreen(g.registry.Position(g.player))
		g.particles.Burst(at.X, at.Y)
	}

	g.particles.Update(FixedTimestep)
	g.popups.Update(FixedTimestep)

	g.controller.RecoverIfFallen()
	g.camera.Update()

	if in.DebugToggle {
		g.overlay.Toggle()
	}
	if in.Screenshot {
		g.wantScreenshot = true
	}
}

// Draw renders the frame: entities, particles, popups, HUD, overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawEntities(screen, g.registry)
	g.renderer.DrawParticles(screen, g.particles)
	g.renderer.DrawPopups(screen, g.popups)
	g.renderer.DrawHUD(screen, g.score)
	g.overlay.Draw(screen, g.registry, g.camera, g.score, g.particles.AliveCount())

	if g.wantScreenshot {
		g.wantScreenshot = false
		if err := SaveScreenshot(screen, g.screenshotDir); err != nil {
			fmt.Fprintf(os.Stderr, "[pushbox] %v\n", err)
		}
	}
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Score returns the running score.
func (g *Game) Score() int {
	return g.score
}

// Destroy tears the game down. The physics world goes as one unit, which
// invalidates every body the registry still references.
func (g *Game) Destroy() {
	g.world.Destroy()
}
