package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/abdobasha2004/newscard/wrap"
)

func mustLayout(t *testing.T, lines wrap.Lines, g Geometry, fontSize int, factor float64) *Plan {
	t.Helper()
	plan, err := Layout(lines, g, fontSize, factor)
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	return plan
}

// TestBlockCenteredInBand 验证：1..3 行时文本块中点与色带中点
// 的偏差不超过 1px（舍入误差）。
func TestBlockCenteredInBand(t *testing.T) {
	g := DefaultGeometry()
	for n := 1; n <= 3; n++ {
		lines := make(wrap.Lines, n)
		for i := range lines {
			lines[i] = "سطر"
		}
		plan := mustLayout(t, lines, g, 48, 1.25)

		bandMid := float64(plan.BandTop) + float64(plan.BandHeight)/2
		blockMid := (plan.Baselines[0] + plan.Baselines[n-1]) / 2
		if diff := math.Abs(blockMid - bandMid); diff > 1.0 {
			t.Fatalf("n=%d: block midpoint %g deviates from band midpoint %g by %g", n, blockMid, bandMid, diff)
		}
		if blockMid < float64(plan.BandTop) || blockMid > float64(plan.BandTop+plan.BandHeight) {
			t.Fatalf("n=%d: block midpoint %g outside band [%d, %d]", n, blockMid, plan.BandTop, plan.BandTop+plan.BandHeight)
		}
	}
}

// TestBaselinesMonotonicEvenlySpaced 验证基线单调递增且等距
// round(fontSizePx*lineHeightFactor)。
func TestBaselinesMonotonicEvenlySpaced(t *testing.T) {
	g := DefaultGeometry()
	plan := mustLayout(t, wrap.Lines{"أ", "ب", "ج"}, g, 48, 1.25)

	wantSpacing := float64(int(math.Round(48 * 1.25)))
	if float64(plan.LineHeight) != wantSpacing {
		t.Fatalf("LineHeight = %d, want %g", plan.LineHeight, wantSpacing)
	}
	for i := 1; i < len(plan.Baselines); i++ {
		gap := plan.Baselines[i] - plan.Baselines[i-1]
		if gap <= 0 {
			t.Fatalf("baselines not increasing at %d: %v", i, plan.Baselines)
		}
		if math.Abs(gap-wantSpacing) > 1e-9 {
			t.Fatalf("baseline spacing %g, want %g", gap, wantSpacing)
		}
	}
}

func TestBandExtent(t *testing.T) {
	g := DefaultGeometry()
	plan := mustLayout(t, wrap.Lines{"خبر"}, g, 48, 1.25)
	if plan.BandTop != 648 { // round(1080*0.60)
		t.Fatalf("BandTop = %d, want 648", plan.BandTop)
	}
	if plan.BandHeight != 259 { // round(1080*0.24)
		t.Fatalf("BandHeight = %d, want 259", plan.BandHeight)
	}
	if plan.CenterX != 540 {
		t.Fatalf("CenterX = %g, want 540", plan.CenterX)
	}
}

func TestEmptyLinesStillCenter(t *testing.T) {
	g := DefaultGeometry()
	plan := mustLayout(t, wrap.Lines{""}, g, 48, 1.25)
	if len(plan.Baselines) != 1 {
		t.Fatalf("expected one baseline for empty line, got %d", len(plan.Baselines))
	}
	bandMid := float64(plan.BandTop) + float64(plan.BandHeight)/2
	if math.Abs(plan.Baselines[0]-bandMid) > 1.0 {
		t.Fatalf("empty block not centered: baseline=%g bandMid=%g", plan.Baselines[0], bandMid)
	}
}

func TestBrandCaptionBelowHeadline(t *testing.T) {
	g := DefaultGeometry()
	plan := mustLayout(t, wrap.Lines{"أ", "ب"}, g, 48, 1.25)
	last := plan.Baselines[len(plan.Baselines)-1]
	if got := plan.BrandBaselines[0]; got != last+float64(g.BrandGapPx) {
		t.Fatalf("first brand baseline = %g, want %g", got, last+float64(g.BrandGapPx))
	}
	wantSecond := plan.BrandBaselines[0] + float64(g.BrandFontPx) + float64(g.BrandLineGapPx)
	if got := plan.BrandBaselines[1]; got != wantSecond {
		t.Fatalf("second brand baseline = %g, want %g", got, wantSecond)
	}
}

func TestBadgeAnchoredTopRight(t *testing.T) {
	g := DefaultGeometry()
	plan := mustLayout(t, wrap.Lines{"خبر"}, g, 48, 1.25)
	if plan.Badge.X != float64(g.CanvasWidth-g.BadgeMargin-g.BadgeWidth) {
		t.Fatalf("badge X = %g", plan.Badge.X)
	}
	if plan.Badge.Y != float64(g.BadgeMargin) {
		t.Fatalf("badge Y = %g", plan.Badge.Y)
	}
	// 角标独立于文本布局：行数变化不应移动角标
	plan3 := mustLayout(t, wrap.Lines{"أ", "ب", "ج"}, g, 48, 1.25)
	if plan3.Badge != plan.Badge {
		t.Fatalf("badge must be independent of line count: %+v vs %+v", plan3.Badge, plan.Badge)
	}
}

func TestInvalidParamsRaiseLayoutError(t *testing.T) {
	g := DefaultGeometry()
	cases := []struct {
		name string
		g    Geometry
		size int
		lh   float64
	}{
		{"zero width", func() Geometry { c := g; c.CanvasWidth = 0; return c }(), 48, 1.25},
		{"negative height", func() Geometry { c := g; c.CanvasHeight = -1; return c }(), 48, 1.25},
		{"zero font size", g, 0, 1.25},
		{"zero line height", g, 48, 0},
	}
	for _, c := range cases {
		_, err := Layout(wrap.Lines{"خبر"}, c.g, c.size, c.lh)
		var le *LayoutError
		if !errors.As(err, &le) {
			t.Fatalf("%s: expected LayoutError, got %v", c.name, err)
		}
	}
}
