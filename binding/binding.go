// Package binding 将主题文案中的 ${key} 占位符替换为请求数据。
package binding

import (
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${key} 替换为 data 中的值。
// 若 data 为空或键不存在，则保留原占位符。
func Interpolate(text string, data map[string]string) string {
	if len(data) == 0 {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		key := strings.TrimSpace(groups[1])
		if key == "" {
			return match
		}
		if val, ok := data[key]; ok {
			return val
		}
		return match
	})
}
