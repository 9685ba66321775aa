package chromerenderer

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"image/color"
	"image/png"
	"strings"

	"github.com/abdobasha2004/newscard/renderer"
	"github.com/abdobasha2004/newscard/scene"
)

// MarkupSVG 把场景物化为自包含的 SVG 文档：
// 字体与位图都以 data URI 内嵌，页面环境不需要加载任何外部资源。
// 文本节点声明 direction:rtl 与 unicode-bidi:plaintext，
// 内嵌拉丁子串（域名、™ 等）按其固有方向就地渲染。
func MarkupSVG(sc *scene.Scene, font *scene.FontBinding) (string, error) {
	if err := renderer.ValidateBinding(sc, font); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d">`,
		sc.Width, sc.Height, sc.Width, sc.Height)
	fmt.Fprintf(&b, `<defs><style>@font-face{font-family:%q;src:url(data:font/ttf;base64,%s);}</style></defs>`,
		font.Family(), base64.StdEncoding.EncodeToString(font.Bytes()))

	for _, l := range sc.Layers {
		switch layer := l.(type) {
		case *scene.ImageLayer:
			data, err := encodePNG(layer)
			if err != nil {
				return "", err
			}
			bounds := layer.Img.Bounds()
			fmt.Fprintf(&b, `<image x="%g" y="%g" width="%d" height="%d" href="data:image/png;base64,%s"/>`,
				layer.X, layer.Y, bounds.Dx(), bounds.Dy(), data)
		case *scene.RectLayer:
			fmt.Fprintf(&b, `<rect x="%g" y="%g" width="%g" height="%g" fill="%s" fill-opacity="%s"/>`,
				layer.X, layer.Y, layer.Width, layer.Height, hexRGB(layer.Fill), opacity(layer.Fill))
		case *scene.TextLayer:
			for _, run := range layer.Runs {
				if run.Content == "" {
					continue
				}
				fmt.Fprintf(&b, `<text x="%g" y="%g" text-anchor="middle" font-family=%q font-size="%g" fill="%s" fill-opacity="%s" style="direction:%s;unicode-bidi:%s">%s</text>`,
					run.X, run.Y, layer.Font.Family(), layer.SizePx, hexRGB(layer.Color), opacity(layer.Color),
					direction(layer.Direction), bidi(layer.Bidi), html.EscapeString(run.Content))
			}
		}
	}
	b.WriteString(`</svg>`)
	return b.String(), nil
}

// DataURI 返回可直接导航的 base64 SVG data URI。
func DataURI(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

func encodePNG(layer *scene.ImageLayer) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, layer.Img); err != nil {
		return "", &scene.AssetError{Resource: "image-layer", Err: err}
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func hexRGB(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func opacity(c color.NRGBA) string {
	return fmt.Sprintf("%.3f", float64(c.A)/255.0)
}

func direction(d scene.Direction) string {
	if d == scene.DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

func bidi(m scene.BidiMode) string {
	if m == scene.BidiPlaintext {
		return "plaintext"
	}
	return "normal"
}
