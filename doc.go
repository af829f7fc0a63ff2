// Package pushbox is a small physics platformer demo for [Ebitengine].
//
// A keyboard-driven player box pushes a crate around a single fixed scene.
// Rigid-body simulation is delegated to [Chipmunk] (jakecoffman/cp); pushbox
// supplies the entity registry, the per-frame proximity check that drives
// scoring, and the incidental effects layered on top: particle explosions,
// floating "+10" popups, and a bitmap-font HUD.
//
// The simulation is frame-locked: Ebitengine calls [Game.Update] at a fixed
// 60 ticks per second and every tick advances the physics space by exactly
// 1/60 s. There is no accumulator or sub-stepping; simulation speed follows
// the achieved tick rate.
//
// # Quick start
//
//	game, err := pushbox.NewGame(pushbox.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	ebiten.SetWindowSize(pushbox.ScreenWidth, pushbox.ScreenHeight)
//	if err := ebiten.RunGame(game); err != nil {
//		log.Fatal(err)
//	}
//
// # Controls
//
//	left / right (or A / D)  push the player
//	space                    jump (only while grounded)
//	R                        reset the player to the spawn point
//	E                        particle explosion at the player
//	F1                       debug overlay (AABBs, FPS, score)
//	F12                      save a screenshot
//
// [Ebitengine]: https://ebitengine.org
// [Chipmunk]: https://github.com/jakecoffman/cp
package pushbox
