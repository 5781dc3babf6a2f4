package physics

import (
	"testing"

	"github.com/lixenwraith/actcore/core"
)

func TestOverlap(t *testing.T) {
	base := core.Rect{X: 10, Y: 10, W: 8, H: 8}
	cases := []struct {
		name string
		r    core.Rect
		want bool
	}{
		{"identical", base, true},
		{"contained", core.Rect{X: 12, Y: 12, W: 2, H: 2}, true},
		{"corner overlap", core.Rect{X: 17, Y: 17, W: 4, H: 4}, true},
		{"touching right edge", core.Rect{X: 18, Y: 10, W: 4, H: 4}, false},
		{"touching bottom edge", core.Rect{X: 10, Y: 18, W: 4, H: 4}, false},
		{"left of", core.Rect{X: 0, Y: 10, W: 10, H: 8}, false},
		{"empty width", core.Rect{X: 12, Y: 12, W: 0, H: 4}, false},
		{"negative coords", core.Rect{X: -5, Y: -5, W: 16, H: 16}, true},
	}
	for _, c := range cases {
		if got := Overlap(base, c.r); got != c.want {
			t.Errorf("%s: Overlap = %v, want %v", c.name, got, c.want)
		}
		if got := Overlap(c.r, base); got != c.want {
			t.Errorf("%s (swapped): Overlap = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestOverlapResolvedAgainstPosition(t *testing.T) {
	hit := core.Rect{X: 4, Y: -3, W: 10, H: 6}
	hurt := core.Rect{X: -4, Y: -4, W: 8, H: 8}

	if !Overlap(hit.Offset(100, 50), hurt.Offset(112, 50)) {
		t.Error("Expected attack box to reach target 12px right")
	}
	if Overlap(hit.Offset(100, 50), hurt.Offset(120, 50)) {
		t.Error("Expected no overlap at 20px")
	}
}
