// Package renderer 定义场景到 PNG 的渲染能力与超时错误。
// 两个可互换的实现：renderer/chrome（完整页面引擎截图）
// 与 renderer/canvas（原生矢量光栅化）。
package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/abdobasha2004/newscard/scene"
)

// Renderer 将场景与字体绑定渲染为固定尺寸的 PNG 字节。
// 两种实现都必须把 font 的原始字节注册到 font.Family() 之下，
// 并拒绝任何与之不一致的文本图层；失败时绝不返回残缺图像。
type Renderer interface {
	Render(ctx context.Context, sc *scene.Scene, font *scene.FontBinding) ([]byte, error)
}

// RenderTimeout 表示光栅化超过了调用方给定的时限。
// 返回该错误时实现必须已经释放全部页面环境资源。
type RenderTimeout struct {
	Timeout time.Duration
	Err     error
}

func (e *RenderTimeout) Error() string {
	return fmt.Sprintf("渲染超时（时限 %s）: %v", e.Timeout, e.Err)
}

func (e *RenderTimeout) Unwrap() error { return e.Err }

// ValidateBinding 校验场景内所有文本图层与注册的绑定是同一句柄。
// 族名字符串相同但句柄不同仍视为装配错误：历史上正是这种
// “看似一致的名字”导致静默回退到系统字体。
func ValidateBinding(sc *scene.Scene, font *scene.FontBinding) error {
	if font == nil || len(font.Bytes()) == 0 {
		return &scene.FontBindingError{Family: "(nil)", Reason: "渲染前未提供有效字体绑定"}
	}
	for _, tl := range sc.Texts() {
		if tl.Font != font {
			family := "(nil)"
			if tl.Font != nil {
				family = tl.Font.Family()
			}
			return &scene.FontBindingError{
				Family: family,
				Reason: fmt.Sprintf("文本图层引用的绑定与注册的 %s 不一致", font.Family()),
			}
		}
	}
	return nil
}
