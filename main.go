// newscard 生成 1080×1080 的新闻卡片 PNG：
// 背景图、带折行阿拉伯语标题的色带、品牌说明与右上角角标。
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abdobasha2004/newscard/assets"
	"github.com/abdobasha2004/newscard/card"
	"github.com/abdobasha2004/newscard/config"
	"github.com/abdobasha2004/newscard/renderer"
	canvasrenderer "github.com/abdobasha2004/newscard/renderer/canvas"
	chromerenderer "github.com/abdobasha2004/newscard/renderer/chrome"
	"github.com/abdobasha2004/newscard/server"
	"github.com/abdobasha2004/newscard/template"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "newscard",
		Short:         "生成新闻卡片 PNG",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRenderCmd(), newServeCmd())
	return root
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
}

// selectRenderer 按配置选择渲染策略。
func selectRenderer(name, chromePath string, timeout time.Duration) (renderer.Renderer, error) {
	switch name {
	case config.RendererCanvas:
		return canvasrenderer.New(), nil
	case config.RendererChrome:
		return chromerenderer.New(chromerenderer.Options{Timeout: timeout, ExecPath: chromePath}), nil
	default:
		return nil, fmt.Errorf("renderer 取值非法: %s（可选 canvas/chrome）", name)
	}
}

func newRenderCmd() *cobra.Command {
	var (
		title        string
		imagePath    string
		imageURL     string
		fontPath     string
		output       string
		width        int
		fontSize     int
		lineHeight   float64
		maxLines     int
		rendererName string
		themePath    string
		chromePath   string
		timeout      time.Duration
		domain       string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "渲染单张卡片到文件",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			var background []byte
			var err error
			switch {
			case imagePath != "":
				background, err = os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("读取背景图 %s 失败: %w", imagePath, err)
				}
			case imageURL != "":
				background, err = assets.FetchBytes(cmd.Context(), imageURL)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("必须提供 --image 或 --image-url")
			}

			fontBytes, err := assets.ReadLocalFont(fontPath)
			if err != nil {
				return err
			}

			data := map[string]string{"title": title}
			if domain != "" {
				data["domain"] = domain
			}
			theme, err := template.Load(themePath, data)
			if err != nil {
				return err
			}

			r, err := selectRenderer(rendererName, chromePath, timeout)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			start := time.Now()
			png, err := card.Render(ctx, card.Request{
				Title:            title,
				Background:       background,
				Font:             fontBytes,
				CanvasWidth:      width,
				FontSizePx:       fontSize,
				LineHeightFactor: lineHeight,
				MaxLines:         maxLines,
				Theme:            theme,
			}, r)
			if err != nil {
				return fmt.Errorf("生成卡片失败: %w", err)
			}

			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("创建输出目录失败: %w", err)
			}
			if err := os.WriteFile(output, png, 0o644); err != nil {
				return fmt.Errorf("写入 %s 失败: %w", output, err)
			}
			logger.Info("卡片已生成", "out", output, "bytes", len(png), "elapsed", time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "标题文本（空则用默认占位标题）")
	cmd.Flags().StringVar(&imagePath, "image", "", "背景图文件路径")
	cmd.Flags().StringVar(&imageURL, "image-url", "", "背景图 URL")
	cmd.Flags().StringVar(&fontPath, "font", "", "字体文件路径（必填）")
	cmd.Flags().StringVar(&output, "out", "output/card.png", "PNG 输出路径")
	cmd.Flags().IntVar(&width, "width", card.DefaultCanvasWidth, "画布宽度")
	cmd.Flags().IntVar(&fontSize, "font-size", card.DefaultFontSizePx, "标题字号 px")
	cmd.Flags().Float64Var(&lineHeight, "line-height", card.DefaultLineHeightFactor, "行高系数")
	cmd.Flags().IntVar(&maxLines, "max-lines", 3, "最大行数")
	cmd.Flags().StringVar(&rendererName, "renderer", config.RendererCanvas, "渲染策略：canvas 或 chrome")
	cmd.Flags().StringVar(&themePath, "theme", "", "主题 DSL 文件路径")
	cmd.Flags().StringVar(&chromePath, "chrome", "", "Chrome 可执行文件路径")
	cmd.Flags().DurationVar(&timeout, "timeout", 20*time.Second, "渲染时限")
	cmd.Flags().StringVar(&domain, "domain", "", "品牌域名（注入 ${domain}）")
	cmd.MarkFlagRequired("font")
	return cmd
}

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cfg.FontPath == "" {
				return fmt.Errorf("配置缺少 font_path：服务模式必须提供本地字体")
			}
			fontBytes, err := assets.ReadLocalFont(cfg.FontPath)
			if err != nil {
				return err
			}
			theme, err := template.Load(cfg.TemplatePath, nil)
			if err != nil {
				return err
			}
			r, err := selectRenderer(cfg.Renderer, cfg.ChromePath, cfg.Timeout())
			if err != nil {
				return err
			}

			srv := server.New(r, fontBytes, theme, logger, cfg.Timeout())
			logger.Info("服务启动", "listen", cfg.Listen, "renderer", cfg.Renderer)
			return srv.Router().Run(cfg.Listen)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML 配置文件路径")
	return cmd
}
