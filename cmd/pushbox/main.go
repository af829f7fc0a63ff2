// pushbox runs the physics platformer demo: push the crate, rack up points.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pushbox"
)

func main() {
	game, err := pushbox.NewGame(pushbox.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	defer game.Destroy()

	ebiten.SetWindowSize(pushbox.ScreenWidth, pushbox.ScreenHeight)
	ebiten.SetWindowTitle("pushbox")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
