package scene

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/abdobasha2004/newscard/layout"
	"github.com/abdobasha2004/newscard/wrap"
)

// Build 按自底向上的顺序装配场景图层：
// 背景图（cover 居中裁剪）→ 色带 → 阴影条 → 标题 → 品牌说明 → 角标底与标签 → 二维码（可选）。
// 背景无法解码返回 AssetError；未提供字体绑定返回 FontBindingError。
func Build(plan *layout.Plan, lines wrap.Lines, background []byte, font *FontBinding, theme *Theme) (*Scene, error) {
	if plan == nil {
		return nil, fmt.Errorf("scene: 布局结果为空")
	}
	if font == nil {
		return nil, &FontBindingError{Family: "(nil)", Reason: "未提供字体绑定"}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	if len(background) == 0 {
		return nil, &AssetError{Resource: "background", Err: fmt.Errorf("背景图字节为空")}
	}

	bg, err := imaging.Decode(bytes.NewReader(background))
	if err != nil {
		return nil, &AssetError{Resource: "background", Err: err}
	}
	// cover 裁剪：等比缩放后居中裁出与画布一致的区域。
	cover := imaging.Fill(bg, plan.CanvasWidth, plan.CanvasHeight, imaging.Center, imaging.Lanczos)

	sc := &Scene{Width: plan.CanvasWidth, Height: plan.CanvasHeight}
	sc.Layers = append(sc.Layers, &ImageLayer{Img: cover})

	sc.Layers = append(sc.Layers, &RectLayer{
		X:      0,
		Y:      float64(plan.BandTop),
		Width:  float64(plan.CanvasWidth),
		Height: float64(plan.BandHeight),
		Fill:   theme.BandColor,
	})
	sc.Layers = append(sc.Layers, &RectLayer{
		X:      plan.Shadow.X,
		Y:      plan.Shadow.Y,
		Width:  plan.Shadow.Width,
		Height: plan.Shadow.Height,
		Fill:   theme.BandShadow,
	})

	headline := &TextLayer{
		Font:      font,
		SizePx:    float64(plan.FontSizePx),
		Color:     theme.HeadlineColor,
		Direction: DirectionRTL,
		Bidi:      BidiPlaintext,
	}
	for i, line := range lines {
		headline.Runs = append(headline.Runs, TextRun{Content: line, X: plan.CenterX, Y: plan.Baselines[i]})
	}
	sc.Layers = append(sc.Layers, headline)

	if len(theme.BrandLines) > 0 {
		brand := &TextLayer{
			Font:      font,
			SizePx:    float64(plan.BrandFontPx),
			Color:     theme.BrandColor,
			Direction: DirectionRTL,
			Bidi:      BidiPlaintext,
		}
		for i, line := range theme.BrandLines {
			if i >= len(plan.BrandBaselines) {
				break
			}
			brand.Runs = append(brand.Runs, TextRun{Content: line, X: plan.CenterX, Y: plan.BrandBaselines[i]})
		}
		sc.Layers = append(sc.Layers, brand)
	}

	sc.Layers = append(sc.Layers, &RectLayer{
		X:      plan.Badge.X,
		Y:      plan.Badge.Y,
		Width:  plan.Badge.Width,
		Height: plan.Badge.Height,
		Fill:   theme.BadgeFill,
	})
	if theme.BadgeLabel != "" {
		sc.Layers = append(sc.Layers, &TextLayer{
			Runs:      []TextRun{{Content: theme.BadgeLabel, X: plan.BadgeLabelOrigin.X, Y: plan.BadgeLabelOrigin.Y}},
			Font:      font,
			SizePx:    float64(plan.BadgeFontPx),
			Color:     theme.BadgeTextColor,
			Direction: DirectionRTL,
			Bidi:      BidiPlaintext,
		})
	}

	if theme.QRContent != "" {
		size := theme.QRSizePx
		if size <= 0 {
			size = 120
		}
		qr, err := qrcode.New(theme.QRContent, qrcode.Medium)
		if err != nil {
			return nil, &AssetError{Resource: "qr", Err: err}
		}
		margin := 40
		sc.Layers = append(sc.Layers, &ImageLayer{
			Img: qr.Image(size),
			X:   float64(margin),
			Y:   float64(plan.CanvasHeight - margin - size),
		})
	}

	return sc, nil
}
