// Package server 是核心流水线的 HTTP 协作层：解析请求参数并填默认值、
// 抓取背景图、把错误分类翻译成响应状态码。核心本身只分类，不决定状态码。
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abdobasha2004/newscard/assets"
	"github.com/abdobasha2004/newscard/card"
	"github.com/abdobasha2004/newscard/layout"
	"github.com/abdobasha2004/newscard/renderer"
	"github.com/abdobasha2004/newscard/scene"
)

// Server 绑定渲染策略、字体供给与主题。
type Server struct {
	Renderer renderer.Renderer
	// FontBytes 是进程启动时载入的本地字体（单写后只读，可安全并发读）。
	FontBytes []byte
	Theme     *scene.Theme
	Logger    *log.Logger
	Timeout   time.Duration

	// fetch 可在测试中替换。
	fetch func(ctx context.Context, url string) ([]byte, error)
}

// New 创建 HTTP 协作层。
func New(r renderer.Renderer, fontBytes []byte, theme *scene.Theme, logger *log.Logger, timeout time.Duration) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Server{
		Renderer:  r,
		FontBytes: fontBytes,
		Theme:     theme,
		Logger:    logger,
		Timeout:   timeout,
		fetch:     assets.FetchBytes,
	}
}

// Router 注册路由与请求 ID 中间件。
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID())
	r.GET("/healthz", s.health)
	r.GET("/card", s.renderCard)
	r.POST("/card", s.renderCard)
	return r
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// cardParams 同时接受查询参数（GET）与 JSON（POST）。
type cardParams struct {
	Title      string  `form:"title" json:"title"`
	Image      string  `form:"image" json:"image"`
	Width      *int    `form:"width" json:"width"`
	FontSize   int     `form:"font_size" json:"font_size"`
	LineHeight float64 `form:"line_height" json:"line_height"`
	MaxLines   int     `form:"max_lines" json:"max_lines"`
}

func (s *Server) renderCard(c *gin.Context) {
	start := time.Now()
	id, _ := c.Get("request_id")
	logger := s.Logger.With("request_id", id)

	var p cardParams
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		if err := c.ShouldBindQuery(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	// 背景图是调用方责任：缺席在进入核心前就拒绝。
	if p.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 image 参数"})
		return
	}
	// 宽度缺省为 1080；显式 0 原样传入核心并触发 LayoutError。
	width := card.DefaultCanvasWidth
	if p.Width != nil {
		width = *p.Width
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.Timeout)
	defer cancel()

	background, err := s.fetch(ctx, p.Image)
	if err != nil {
		logger.Error("抓取背景失败", "url", p.Image, "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	png, err := card.Render(ctx, card.Request{
		Title:            p.Title,
		Background:       background,
		Font:             s.FontBytes,
		CanvasWidth:      width,
		FontSizePx:       p.FontSize,
		LineHeightFactor: p.LineHeight,
		MaxLines:         p.MaxLines,
		Theme:            s.Theme,
	}, s.Renderer)
	if err != nil {
		status := statusFor(err)
		logger.Error("渲染失败", "status", status, "err", err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	logger.Info("卡片已生成",
		"title_len", len(p.Title),
		"width", width,
		"bytes", len(png),
		"elapsed", time.Since(start))
	c.Data(http.StatusOK, "image/png", png)
}

// statusFor 把核心错误分类映射到 HTTP 状态码。
func statusFor(err error) int {
	var le *layout.LayoutError
	var ae *scene.AssetError
	var fbe *scene.FontBindingError
	var rt *renderer.RenderTimeout
	switch {
	case errors.As(err, &le):
		return http.StatusBadRequest
	case errors.As(err, &ae):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fbe):
		return http.StatusInternalServerError
	case errors.As(err, &rt):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
