package pushbox

import (
	"bytes"
	"fmt"
	"image"
	"os"

	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadTexture reads and decodes an image file. A missing or undecodable
// file is recoverable: it warns to stderr and substitutes a procedural
// checkerboard in the given two colors.
func LoadTexture(path string, light, dark Color) *ebiten.Image {
	data, err := os.ReadFile(path)
	if err == nil {
		img, _, derr := image.Decode(bytes.NewReader(data))
		if derr == nil {
			return ebiten.NewImageFromImage(img)
		}
		err = derr
	}
	fmt.Fprintf(os.Stderr, "[pushbox] texture %s: %v; using checkerboard\n", path, err)
	return CheckerTexture(64, 8, light, dark)
}

// CheckerTexture generates a size x size checkerboard with cell-pixel
// squares alternating between the two colors.
func CheckerTexture(size, cell int, light, dark Color) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	lc := light.toRGBA()
	dc := dark.toRGBA()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := lc
			if (x/cell+y/cell)%2 == 1 {
				c = dc
			}
			img.SetRGBA(x, y, c)
		}
	}
	return ebiten.NewImageFromImage(img)
}

// LoadFont reads a BMFont .fnt file and its atlas page. A missing font is
// recoverable: it warns to stderr and returns nil, which silently
// disables text rendering.
func LoadFont(fntPath, atlasPath string) *BitmapFont {
	fntData, err := os.ReadFile(fntPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[pushbox] font %s: %v; text disabled\n", fntPath, err)
		return nil
	}

	atlasData, err := os.ReadFile(atlasPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[pushbox] font atlas %s: %v; text disabled\n", atlasPath, err)
		return nil
	}
	atlasImg, _, err := image.Decode(bytes.NewReader(atlasData))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[pushbox] font atlas %s: %v; text disabled\n", atlasPath, err)
		return nil
	}

	font, err := LoadBitmapFont(fntData, ebiten.NewImageFromImage(atlasImg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[pushbox] font %s: %v; text disabled\n", fntPath, err)
		return nil
	}
	return font
}
