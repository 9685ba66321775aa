// Package chromerenderer 通过无头 Chrome 渲染场景（策略 A）：
// 场景物化为自包含 SVG，导航到 data URI，待字体加载稳定后
// 对 svg 元素截图。整形保真度最高，启动与内存开销也最高。
package chromerenderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/abdobasha2004/newscard/renderer"
	"github.com/abdobasha2004/newscard/scene"
)

// DefaultTimeout 是整卡渲染的默认时限；诊断场景建议用更短的值。
const DefaultTimeout = 20 * time.Second

// Options 配置无头环境。
type Options struct {
	// Timeout 限制单次渲染（含浏览器启动）的总耗时，零值取 DefaultTimeout。
	Timeout time.Duration
	// ExecPath 指定 Chrome 可执行文件路径，空则用 chromedp 的查找逻辑。
	ExecPath string
}

// Renderer 是页面引擎截图策略。每次 Render 独占一个浏览器环境，
// 在同一请求内启动、使用并保证销毁（包括超时与出错路径）。
type Renderer struct {
	opts Options
}

var _ renderer.Renderer = (*Renderer)(nil)

// New 创建无头 Chrome 渲染器。
func New(opts Options) *Renderer {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Renderer{opts: opts}
}

// Render 截图产出与画布尺寸一致的 PNG。超时返回 RenderTimeout，
// 且无头进程已随上下文取消而回收。
func (r *Renderer) Render(ctx context.Context, sc *scene.Scene, font *scene.FontBinding) ([]byte, error) {
	svg, err := MarkupSVG(sc, font)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	// 无头稳定性：禁沙箱、禁 GPU、单进程。
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("single-process", true),
		chromedp.Flag("no-zygote", true),
	)
	if r.opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.opts.ExecPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	var shot []byte
	err = chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(sc.Width), int64(sc.Height)),
		chromedp.Navigate(DataURI(svg)),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		waitFontsReady(),
		chromedp.Screenshot(`svg`, &shot, chromedp.ByQuery),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &renderer.RenderTimeout{Timeout: r.opts.Timeout, Err: err}
		}
		return nil, fmt.Errorf("无头渲染失败: %w", err)
	}
	if len(shot) == 0 {
		return nil, fmt.Errorf("无头渲染失败: 截图为空")
	}
	return shot, nil
}

// waitFontsReady 等待内嵌 @font-face 完成加载，避免截到回退字体。
func waitFontsReady() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		return chromedp.Evaluate(`document.fonts.ready.then(() => true)`, nil,
			func(p *cdpruntime.EvaluateParams) *cdpruntime.EvaluateParams {
				return p.WithAwaitPromise(true)
			}).Do(ctx)
	})
}
