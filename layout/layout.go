// Package layout 将折行结果与样式参数换算为像素级绝对坐标：
// 色带区间、逐行基线、品牌说明行与角标矩形。全部为纯计算，无副作用。
package layout

import (
	"fmt"
	"math"

	"github.com/abdobasha2004/newscard/wrap"
)

// Geometry 是画布与各固定元素的不可变配置。
// 以显式结构体传入而非散落常量，便于派生其它卡片尺寸。
type Geometry struct {
	CanvasWidth  int
	CanvasHeight int

	// 色带：top = height*BandTopFrac，height = height*BandHeightFrac。
	BandTopFrac    float64
	BandHeightFrac float64
	// 色带顶部阴影条的高度（px）。
	BandShadowPx int

	// 角标：右上角固定尺寸与边距（px）。
	BadgeWidth  int
	BadgeHeight int
	BadgeMargin int
	BadgeFontPx int

	// 品牌说明：距最后一行标题基线的固定间距与两行的行距（px）。
	BrandGapPx     int
	BrandLineGapPx int
	BrandFontPx    int
}

// DefaultGeometry 返回 1080×1080 卡片的默认几何配置。高度固定为 1080。
func DefaultGeometry() Geometry {
	return Geometry{
		CanvasWidth:    1080,
		CanvasHeight:   1080,
		BandTopFrac:    0.60,
		BandHeightFrac: 0.24,
		BandShadowPx:   8,
		BadgeWidth:     180,
		BadgeHeight:    70,
		BadgeMargin:    40,
		BadgeFontPx:    34,
		BrandGapPx:     50,
		BrandLineGapPx: 6,
		BrandFontPx:    22,
	}
}

// Rect 是像素坐标下的矩形（左上角原点）。
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Plan 是布局结果：所有后续绘制坐标的唯一来源。
type Plan struct {
	CanvasWidth  int
	CanvasHeight int

	// 色带纵向区间与顶部阴影条。
	BandTop    int
	BandHeight int
	Shadow     Rect

	// 所有文本共享的水平中心（居中锚点，RTL 必需）。
	CenterX float64

	// 标题：逐行基线 Y，自上而下单调递增、等距 LineHeight。
	FontSizePx int
	LineHeight int
	Baselines  []float64

	// 品牌说明两行的基线 Y。
	BrandFontPx    int
	BrandBaselines [2]float64

	// 角标矩形与标签基线。
	Badge            Rect
	BadgeFontPx      int
	BadgeLabelOrigin struct{ X, Y float64 }
}

// LayoutError 表示数值参数非法（如非正的宽度或字号）。
type LayoutError struct {
	Field string
	Value float64
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("布局参数 %s 非法: %g（必须为正数）", e.Field, e.Value)
}

// Layout 计算折行结果在给定几何配置下的完整布局。
// 纯函数：文本块在色带内垂直居中，1..3 行均满足
// 块中点与色带中点误差不超过 1px 的舍入。
func Layout(lines wrap.Lines, g Geometry, fontSizePx int, lineHeightFactor float64) (*Plan, error) {
	if g.CanvasWidth <= 0 {
		return nil, &LayoutError{Field: "canvasWidth", Value: float64(g.CanvasWidth)}
	}
	if g.CanvasHeight <= 0 {
		return nil, &LayoutError{Field: "canvasHeight", Value: float64(g.CanvasHeight)}
	}
	if fontSizePx <= 0 {
		return nil, &LayoutError{Field: "fontSizePx", Value: float64(fontSizePx)}
	}
	if lineHeightFactor <= 0 {
		return nil, &LayoutError{Field: "lineHeightFactor", Value: lineHeightFactor}
	}
	if len(lines) == 0 {
		lines = wrap.Lines{""}
	}

	h := float64(g.CanvasHeight)
	lineHeight := int(math.Round(float64(fontSizePx) * lineHeightFactor))
	bandTop := int(math.Round(h * g.BandTopFrac))
	bandHeight := int(math.Round(h * g.BandHeightFrac))

	plan := &Plan{
		CanvasWidth:  g.CanvasWidth,
		CanvasHeight: g.CanvasHeight,
		BandTop:      bandTop,
		BandHeight:   bandHeight,
		CenterX:      float64(g.CanvasWidth) / 2,
		FontSizePx:   fontSizePx,
		LineHeight:   lineHeight,
		BrandFontPx:  g.BrandFontPx,
		BadgeFontPx:  g.BadgeFontPx,
	}

	plan.Shadow = Rect{
		X:      0,
		Y:      float64(bandTop - g.BandShadowPx),
		Width:  float64(g.CanvasWidth),
		Height: float64(g.BandShadowPx),
	}

	// 垂直居中：块高 = (n-1)*lineHeight，首基线位于色带中点上方半个块高处。
	blockHeight := float64(len(lines)-1) * float64(lineHeight)
	first := float64(bandTop) + float64(bandHeight)/2 - blockHeight/2
	plan.Baselines = make([]float64, len(lines))
	for i := range lines {
		plan.Baselines[i] = first + float64(i)*float64(lineHeight)
	}

	last := plan.Baselines[len(plan.Baselines)-1]
	plan.BrandBaselines[0] = last + float64(g.BrandGapPx)
	plan.BrandBaselines[1] = plan.BrandBaselines[0] + float64(g.BrandFontPx) + float64(g.BrandLineGapPx)

	plan.Badge = Rect{
		X:      float64(g.CanvasWidth - g.BadgeMargin - g.BadgeWidth),
		Y:      float64(g.BadgeMargin),
		Width:  float64(g.BadgeWidth),
		Height: float64(g.BadgeHeight),
	}
	// 标签基线：矩形垂直中点向下偏移约 0.35 个字号，使标签视觉居中。
	plan.BadgeLabelOrigin.X = plan.Badge.X + plan.Badge.Width/2
	plan.BadgeLabelOrigin.Y = plan.Badge.Y + plan.Badge.Height/2 + float64(g.BadgeFontPx)*0.35

	return plan, nil
}
