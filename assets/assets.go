// Package assets 提供核心流水线的外部协作接口：
// 远程资源抓取与本地字体读取。传输失败、HTTP 状态失败与空内容
// 是可区分的错误；字体缺失必须大声失败，绝不静默替换。
package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const fetchTimeout = 10 * time.Second

// StatusError 表示远端返回了非 2xx 状态（区别于传输层失败）。
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("抓取 %s 返回状态 %d", e.URL, e.Status)
}

// FetchBytes 抓取远程资源（背景图或远程托管的字体）。
// 传输错误原样包装返回；非 2xx 返回 StatusError；空响应体视为错误。
func FetchBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("构造请求 %s 失败: %w", url, err)
	}
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("抓取 %s 失败: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, Status: resp.StatusCode}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取 %s 响应失败: %w", url, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("抓取 %s 返回空内容", url)
	}
	return data, nil
}

// ReadLocalFont 读取本地字体文件。文件缺失或长度为零都立即报错：
// 静默回退的字体对阿拉伯文渲染意味着必然的乱码。
func ReadLocalFont(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体 %s 失败: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("字体文件 %s 长度为零", path)
	}
	return data, nil
}
