package pushbox

import (
	"math"
	"testing"
)

func TestPopupSpawnDefaults(t *testing.T) {
	p := NewFloatingTextPool()
	p.Spawn("+10", 100, 200, ColorTouch)

	if p.Count() != 1 {
		t.Fatalf("count = %d, want 1", p.Count())
	}
	ft := p.Texts()[0]
	if ft.Text != "+10" {
		t.Errorf("text = %q, want %q", ft.Text, "+10")
	}
	if ft.Alpha() != 1 {
		t.Errorf("alpha = %v, want 1 at spawn", ft.Alpha())
	}
}

func TestPopupFadeIsRemainingOverDuration(t *testing.T) {
	p := NewFloatingTextPool()
	p.Spawn("+10", 0, 0, ColorWhite)

	p.Update(0.5)
	got := p.Texts()[0].Alpha()
	want := (popupDuration - 0.5) / popupDuration
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("alpha = %v, want %v", got, want)
	}
}

func TestPopupRisesAtConstantRate(t *testing.T) {
	p := NewFloatingTextPool()
	p.Spawn("+10", 0, 300, ColorWhite)

	for i := 0; i < 30; i++ {
		p.Update(1.0 / 60.0)
	}
	got := p.Texts()[0].Y
	want := 300 - popupRiseSpeed*0.5
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("y = %v, want %v", got, want)
	}
}

func TestPopupExpires(t *testing.T) {
	p := NewFloatingTextPool()
	p.Spawn("+10", 0, 0, ColorWhite)
	p.Update(popupDuration + 0.001)
	if p.Count() != 0 {
		t.Errorf("count = %d, want 0 after duration elapsed", p.Count())
	}
}

func TestPopupExpiryPreservesOrder(t *testing.T) {
	p := NewFloatingTextPool()
	p.Spawn("first", 0, 0, ColorWhite)
	p.Update(1.0)
	p.Spawn("second", 0, 0, ColorWhite)
	p.Spawn("third", 0, 0, ColorWhite)

	// Expire only the first popup.
	p.Update(0.6)
	texts := p.Texts()
	if len(texts) != 2 {
		t.Fatalf("count = %d, want 2", len(texts))
	}
	if texts[0].Text != "second" || texts[1].Text != "third" {
		t.Errorf("order = [%q, %q], want [second, third]", texts[0].Text, texts[1].Text)
	}
}
