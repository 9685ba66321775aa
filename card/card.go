// Package card 串联唯一的生成流水线：
// 标题与参数 → 折行 → 布局 → 场景装配 → 渲染 → PNG 字节。
// 所有实体按请求创建、用后即弃，核心不持有任何跨请求可变状态。
package card

import (
	"context"

	"github.com/abdobasha2004/newscard/layout"
	"github.com/abdobasha2004/newscard/renderer"
	"github.com/abdobasha2004/newscard/scene"
	"github.com/abdobasha2004/newscard/wrap"
)

// 请求参数默认值。画布高度固定为 1080。
const (
	DefaultTitle            = "عنوان الخبر هنا"
	DefaultCanvasWidth      = 1080
	CanvasHeight            = 1080
	DefaultFontSizePx       = 48
	DefaultLineHeightFactor = 1.25
)

// Request 是一次卡片生成的全部输入。零值字段取默认值。
type Request struct {
	Title            string
	Background       []byte // 必填：已抓取的背景图字节
	Font             []byte // 必填：原始字体字节
	CanvasWidth      int
	FontSizePx       int
	LineHeightFactor float64
	MaxLines         int
	Theme            *scene.Theme
}

func (r Request) withDefaults() Request {
	if r.Title == "" {
		r.Title = DefaultTitle
	}
	// CanvasWidth 不在此处取默认：宽度为 0 必须走 LayoutError，
	// “参数缺省为 1080”由外层参数解析负责（见 server 包）。
	if r.FontSizePx == 0 {
		r.FontSizePx = DefaultFontSizePx
	}
	if r.LineHeightFactor == 0 {
		r.LineHeightFactor = DefaultLineHeightFactor
	}
	if r.MaxLines == 0 {
		r.MaxLines = wrap.DefaultMaxLines
	}
	return r
}

// Compose 执行渲染前的纯计算阶段，返回装配好的场景与字体绑定。
// 参数非法返回 LayoutError；字体字节为空返回 FontBindingError；
// 背景不可解码返回 AssetError。
func Compose(req Request) (*scene.Scene, *scene.FontBinding, error) {
	req = req.withDefaults()

	g := layout.DefaultGeometry()
	g.CanvasWidth = req.CanvasWidth
	g.CanvasHeight = CanvasHeight

	lines := wrap.Wrap(req.Title, wrap.BudgetFor(req.CanvasWidth), req.MaxLines)
	plan, err := layout.Layout(lines, g, req.FontSizePx, req.LineHeightFactor)
	if err != nil {
		return nil, nil, err
	}

	font, err := scene.BindFont("headline", req.Font)
	if err != nil {
		return nil, nil, err
	}

	sc, err := scene.Build(plan, lines, req.Background, font, req.Theme)
	if err != nil {
		return nil, nil, err
	}
	return sc, font, nil
}

// Render 组合 Compose 与给定渲染策略，产出 PNG 字节。
func Render(ctx context.Context, req Request, r renderer.Renderer) ([]byte, error) {
	sc, font, err := Compose(req)
	if err != nil {
		return nil, err
	}
	return r.Render(ctx, sc, font)
}
