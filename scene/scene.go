// Package scene 将布局结果装配为与渲染后端无关的矢量场景：
// 自底向上有序的绘制图层（背景图、矩形、文本、二维码），
// 以及文本图层所引用的字体绑定句柄。
// 场景由单次渲染调用独占，构建完成后不再修改。
package scene

import (
	"image"
	"image/color"
)

// Direction 是文本图层的书写方向。卡片标题均为 RTL。
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// BidiMode 声明双向文本的处理方式。plaintext 表示整段按首个强方向
// 字符排版，内嵌的拉丁子串（商标符号、域名等）就地 LTR 渲染，
// 不重新解释段落方向。
type BidiMode int

const (
	BidiDefault BidiMode = iota
	BidiPlaintext
)

// Layer 是一个可绘制图层。Scene.Layers 自底向上有序（back-to-front）。
type Layer interface {
	layer()
}

// ImageLayer 是一张已解码的位图图层（背景图或二维码）。
// 背景图在构建阶段已完成 cover 裁剪，尺寸与目标区域一致。
type ImageLayer struct {
	Img  image.Image
	X, Y float64
}

// RectLayer 是一个填充矩形（色带、阴影条、角标底）。
type RectLayer struct {
	X, Y          float64
	Width, Height float64
	Fill          color.NRGBA
}

// TextRun 是一段已定位的文本：X 为居中锚点的水平坐标，Y 为基线。
type TextRun struct {
	Content string
	X, Y    float64
}

// TextLayer 是一组共享样式的文本 run。
// Font 必须与渲染器注册的绑定完全一致；锚点固定为居中。
type TextLayer struct {
	Runs      []TextRun
	Font      *FontBinding
	SizePx    float64
	Color     color.NRGBA
	Direction Direction
	Bidi      BidiMode
}

func (*ImageLayer) layer() {}
func (*RectLayer) layer() {}
func (*TextLayer) layer() {}

var (
	_ Layer = (*ImageLayer)(nil)
	_ Layer = (*RectLayer)(nil)
	_ Layer = (*TextLayer)(nil)
)

// Scene 是一次渲染的全部输入：画布尺寸与有序图层。
type Scene struct {
	Width, Height int
	Layers        []Layer
}

// Texts 返回场景中的全部文本图层（按绘制顺序），供渲染器校验字体绑定。
func (s *Scene) Texts() []*TextLayer {
	var out []*TextLayer
	for _, l := range s.Layers {
		if t, ok := l.(*TextLayer); ok {
			out = append(out, t)
		}
	}
	return out
}
