// Package canvasrenderer 用 github.com/tdewolff/canvas 直接光栅化场景
// （策略 B）：无页面环境，字体字节必须显式注册到光栅器的字体族，
// 文本整形（含阿拉伯语连写与双向）由 canvas 的排版层完成。
package canvasrenderer

import (
	"bytes"
	"context"
	"image/png"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/abdobasha2004/newscard/renderer"
	"github.com/abdobasha2004/newscard/scene"
)

// pxToPt 把像素尺寸换算为字体面所需的 pt。
// 画布以 1 单位 = 1px（DPMM 1.0）光栅化，canvas 内部按 mm 计单位，
// 因此换算系数与 mm→pt 相同。
const pxToPt = 72.0 / 25.4

// Renderer 是原生矢量光栅化策略。无外部进程，可随 CPU 并发扩展。
type Renderer struct{}

var _ renderer.Renderer = (*Renderer)(nil)

// New 创建原生光栅化渲染器。
func New() *Renderer { return &Renderer{} }

// Render 将场景绘制为 plan 尺寸的 PNG。
// 相同场景与相同字体字节两次渲染产出逐字节一致的结果。
func (r *Renderer) Render(ctx context.Context, sc *scene.Scene, font *scene.FontBinding) ([]byte, error) {
	if err := renderer.ValidateBinding(sc, font); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 没有系统字体目录可查：字体族只能来自注入的字节，
	// 族名取自绑定句柄，任何泛型族回退在此处都不存在。
	family := canvas.NewFontFamily(font.Family())
	if err := family.LoadFont(font.Bytes(), 0, canvas.FontRegular); err != nil {
		return nil, &scene.FontBindingError{Family: font.Family(), Reason: "字体字节无法解析", Err: err}
	}

	c := canvas.New(float64(sc.Width), float64(sc.Height))
	cctx := canvas.NewContext(c)
	cctx.SetCoordSystem(canvas.CartesianIV) // 与布局保持左上角为原点

	for _, l := range sc.Layers {
		switch layer := l.(type) {
		case *scene.ImageLayer:
			cctx.DrawImage(layer.X, layer.Y, layer.Img, canvas.DPMM(1.0))
		case *scene.RectLayer:
			cctx.SetStrokeColor(canvas.Transparent)
			cctx.SetFillColor(layer.Fill)
			cctx.DrawPath(layer.X, layer.Y, canvas.Rectangle(layer.Width, layer.Height))
		case *scene.TextLayer:
			face := family.Face(layer.SizePx*pxToPt, layer.Color, canvas.FontRegular, canvas.FontNormal)
			for _, run := range layer.Runs {
				if run.Content == "" {
					continue
				}
				// 居中锚点绘制；RTL 整形由 canvas 的 shaper 处理。
				cctx.DrawText(run.X, run.Y, canvas.NewTextLine(face, run.Content, canvas.Center))
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
