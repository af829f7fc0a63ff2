package pushbox

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// glyph is one entry of the prebuilt metrics table: atlas region, size,
// bearing, and advance.
type glyph struct {
	id       rune
	x, y     uint16
	width    uint16
	height   uint16
	xOffset  int16
	yOffset  int16
	xAdvance int16
}

const asciiGlyphCount = 128

// BitmapFont renders text from a pre-rasterized glyph atlas in BMFont
// text format. Layout is simple left-to-right advance positioning; runes
// without a table entry are skipped rather than rendered.
type BitmapFont struct {
	atlas      *ebiten.Image
	lineHeight float64
	base       float64

	asciiGlyphs [asciiGlyphCount]glyph // fixed array for ASCII, zero-alloc lookup
	asciiSet    [asciiGlyphCount]bool  // which ASCII entries are populated
}

// LoadBitmapFont parses BMFont .fnt text-format data against its atlas
// page image. Only ASCII glyphs are kept; the demo's HUD and popups never
// need more.
func LoadBitmapFont(fntData []byte, atlas *ebiten.Image) (*BitmapFont, error) {
	f := &BitmapFont{atlas: atlas}

	scanner := bufio.NewScanner(bytes.NewReader(fntData))
	var charCount int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tag, rest := splitTag(line)
		fields := parseFields(rest)

		switch tag {
		case "common":
			if v, ok := fields["lineHeight"]; ok {
				f.lineHeight, _ = strconv.ParseFloat(v, 64)
			}
			if v, ok := fields["base"]; ok {
				f.base, _ = strconv.ParseFloat(v, 64)
			}

		case "char":
			charCount++
			g := glyph{}
			if v, ok := fields["id"]; ok {
				id, _ := strconv.Atoi(v)
				g.id = rune(id)
			}
			if v, ok := fields["x"]; ok {
				val, _ := strconv.Atoi(v)
				g.x = uint16(val)
			}
			if v, ok := fields["y"]; ok {
				val, _ := strconv.Atoi(v)
				g.y = uint16(val)
			}
			if v, ok := fields["width"]; ok {
				val, _ := strconv.Atoi(v)
				g.width = uint16(val)
			}
			if v, ok := fields["height"]; ok {
				val, _ := strconv.Atoi(v)
				g.height = uint16(val)
			}
			if v, ok := fields["xoffset"]; ok {
				val, _ := strconv.Atoi(v)
				g.xOffset = int16(val)
			}
			if v, ok := fields["yoffset"]; ok {
				val, _ := strconv.Atoi(v)
				g.yOffset = int16(val)
			}
			if v, ok := fields["xadvance"]; ok {
				val, _ := strconv.Atoi(v)
				g.xAdvance = int16(val)
			}

			if g.id >= 0 && g.id < asciiGlyphCount {
				f.asciiGlyphs[g.id] = g
				f.asciiSet[g.id] = true
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pushbox: error reading .fnt data: %w", err)
	}

	if f.lineHeight == 0 {
		return nil, fmt.Errorf("pushbox: .fnt data missing common lineHeight")
	}
	if charCount == 0 {
		return nil, fmt.Errorf("pushbox: .fnt data has no char definitions")
	}

	return f, nil
}

// LineHeight returns the vertical distance between baselines.
func (f *BitmapFont) LineHeight() float64 {
	return f.lineHeight
}

// MeasureString returns the width of the rendered text in pixels.
// Unknown runes contribute nothing.
func (f *BitmapFont) MeasureString(s string) float64 {
	var cursorX float64
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		g := f.glyph(r)
		if g == nil {
			continue
		}
		cursorX += float64(g.xAdvance)
	}
	return cursorX
}

// glyph returns the table entry for the given rune, or nil if not found.
func (f *BitmapFont) glyph(r rune) *glyph {
	if r >= 0 && r < asciiGlyphCount && f.asciiSet[r] {
		return &f.asciiGlyphs[r]
	}
	return nil
}

// Draw renders s onto dst with its top-left at (x, y), tinted by col.
// Glyphs are positioned left-to-right by their advance; runes without a
// table entry are skipped.
func (f *BitmapFont) Draw(dst *ebiten.Image, s string, x, y float64, col Color) {
	a := float32(clamp01(col.A))
	cursorX := x

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		g := f.glyph(r)
		if g == nil {
			continue
		}

		if g.width > 0 && g.height > 0 {
			sub := f.atlas.SubImage(image.Rect(
				int(g.x), int(g.y),
				int(g.x)+int(g.width), int(g.y)+int(g.height),
			)).(*ebiten.Image)

			var op ebiten.DrawImageOptions
			op.GeoM.Translate(cursorX+float64(g.xOffset), y+float64(g.yOffset))
			op.ColorScale.Scale(float32(col.R)*a, float32(col.G)*a, float32(col.B)*a, a)
			dst.DrawImage(sub, &op)
		}

		cursorX += float64(g.xAdvance)
	}
}

// splitTag splits a BMFont line into its tag and the rest of the line.
func splitTag(line string) (string, string) {
	idx := strings.IndexByte(line, ' ')
	if idx == -1 {
		return line, ""
	}
	return line[:idx], line[idx+1:]
}

// parseFields parses "key=value key=value ..." into a map.
func parseFields(s string) map[string]string {
	fields := make(map[string]string)
	for _, part := range strings.Fields(s) {
		eq := strings.IndexByte(part, '=')
		if eq == -1 {
			continue
		}
		key := part[:eq]
		val := part[eq+1:]
		// Strip quotes from values like face="Arial"
		if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
			val = val[1 : len(val)-1]
		}
		fields[key] = val
	}
	return fields
}
