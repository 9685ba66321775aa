// Package config 读取运行时 TOML 配置（监听地址、渲染策略、资源路径）。
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// 渲染策略取值。
const (
	RendererCanvas = "canvas"
	RendererChrome = "chrome"
)

// Config 是进程级配置；核心流水线不读取配置，只消费显式参数。
type Config struct {
	Listen        string   `toml:"listen"`
	Renderer      string   `toml:"renderer"`
	FontPath      string   `toml:"font_path"`
	TemplatePath  string   `toml:"template_path"`
	ChromePath    string   `toml:"chrome_path"`
	RenderTimeout duration `toml:"render_timeout"`
}

// duration 让 TOML 里可以写 "20s" 这类时长字面量。
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Default 返回默认配置：本地监听、原生光栅化策略、20s 渲染时限。
func Default() *Config {
	return &Config{
		Listen:        ":8080",
		Renderer:      RendererCanvas,
		RenderTimeout: duration{20 * time.Second},
	}
}

// Load 读取 TOML 配置文件并覆盖默认值。path 为空返回默认配置。
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("读取配置 %s 失败: %w", path, err)
	}
	if cfg.Renderer != RendererCanvas && cfg.Renderer != RendererChrome {
		return nil, fmt.Errorf("renderer 取值非法: %s（可选 canvas/chrome）", cfg.Renderer)
	}
	if cfg.RenderTimeout.Duration <= 0 {
		cfg.RenderTimeout = Default().RenderTimeout
	}
	return cfg, nil
}

// Timeout 返回渲染时限。
func (c *Config) Timeout() time.Duration { return c.RenderTimeout.Duration }
