package scene

import "image/color"

// Theme 描述卡片的配色与固定文案，通常由 template 包从主题 DSL 编译而来。
type Theme struct {
	BandColor     color.NRGBA
	BandShadow    color.NRGBA
	HeadlineColor color.NRGBA

	BadgeLabel     string
	BadgeFill      color.NRGBA
	BadgeTextColor color.NRGBA

	BrandLines []string
	BrandColor color.NRGBA

	// QRContent 非空时在左下角追加二维码图层。
	QRContent string
	QRSizePx  int
}

// DefaultTheme 是内置的“突发新闻”主题。
func DefaultTheme() *Theme {
	return &Theme{
		BandColor:      color.NRGBA{R: 0xD3, G: 0x2F, B: 0x2F, A: 0xFF},
		BandShadow:     color.NRGBA{R: 0x9A, G: 0x00, B: 0x07, A: 0xFF},
		HeadlineColor:  color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		BadgeLabel:     "عاجل",
		BadgeFill:      color.NRGBA{R: 0xFF, G: 0xC1, B: 0x07, A: 0xFF},
		BadgeTextColor: color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF},
		BrandLines:     []string{"شبكة الأخبار™", "www.news-network.com"},
		BrandColor:     color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xE0},
		QRSizePx:       120,
	}
}
