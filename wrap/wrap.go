// Package wrap 实现标题的贪心折行：在字符预算内逐词累积，
// 超出预算时提交当前行，行数达到上限后剩余词全部并入最后一行。
package wrap

import (
	"math"
	"strings"
)

// 每行预算按 canvasWidth/36 推导，且不低于 16。
const (
	minCharsPerLine = 16
	budgetPerLinePx = 36.0
	DefaultMaxLines = 3
)

// Lines 是折行结果，1..maxLines 行，产出后不可变。
type Lines []string

// BudgetFor 根据画布宽度推导每行字符预算：max(16, round(width/36))。
func BudgetFor(canvasWidth int) int {
	budget := int(math.Round(float64(canvasWidth) / budgetPerLinePx))
	if budget < minCharsPerLine {
		return minCharsPerLine
	}
	return budget
}

// Wrap 将标题按空白分词后贪心折行。
// 预算以 UTF-8 字节长度衡量；单词自身超出预算时独占一行，不做截断或连字。
// 提交满 maxLines-1 行后，剩余所有词强制并入最后一行（刻意的简化行为）。
// 空标题返回单个空行。该函数是全函数，不产生错误。
func Wrap(title string, maxCharsPerLine, maxLines int) Lines {
	if maxLines < 1 {
		maxLines = 1
	}
	words := strings.Fields(title)
	if len(words) == 0 {
		return Lines{""}
	}

	lines := make(Lines, 0, maxLines)
	current := words[0]
	for _, word := range words[1:] {
		if len(lines) == maxLines-1 || len(current)+1+len(word) <= maxCharsPerLine {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}
