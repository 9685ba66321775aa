package wrap

import (
	"strings"
	"testing"
)

func TestBudgetFor(t *testing.T) {
	cases := []struct {
		width int
		want  int
	}{
		{1080, 30},
		{720, 20},
		{360, 16}, // round(360/36)=10，低于下限 16
		{0, 16},
	}
	for _, c := range cases {
		if got := BudgetFor(c.width); got != c.want {
			t.Fatalf("BudgetFor(%d) = %d, want %d", c.width, got, c.want)
		}
	}
}

func TestWrapEmptyTitleYieldsSingleEmptyLine(t *testing.T) {
	lines := Wrap("", 30, 3)
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("expected single empty line, got %#v", lines)
	}
	// 纯空白同理
	lines = Wrap("  \t ", 30, 3)
	if len(lines) != 1 || lines[0] != "" {
		t.Fatalf("expected single empty line for blank title, got %#v", lines)
	}
}

// TestWrapArabicHeadlineThreeLines 对应默认预算下的典型阿拉伯语长标题：
// canvasWidth=1080 时预算为 30，应折成恰好 3 行。
func TestWrapArabicHeadlineThreeLines(t *testing.T) {
	title := "عاجل خبر الآن اختبار الكتابة الطويلة جدا على البطاقة"
	budget := BudgetFor(1080)
	if budget != 30 {
		t.Fatalf("budget = %d, want 30", budget)
	}
	lines := Wrap(title, budget, 3)
	if len(lines) != 3 {
		t.Fatalf("expected exactly 3 lines, got %d: %#v", len(lines), lines)
	}
}

// TestWrapPreservesWords 验证：任意标题在 maxLines=3 下产出 1..3 行，
// 且用单个空格拼接各行后等于空白规整后的原标题（不丢词、不重复）。
func TestWrapPreservesWords(t *testing.T) {
	titles := []string{
		"",
		"كلمة",
		"خبر عاجل من الموقع الرسمي",
		"عاجل خبر الآن اختبار الكتابة الطويلة جدا على البطاقة",
		"one two three four five six seven eight nine ten eleven twelve",
		"aVeryLongSingleWordThatExceedsAnyReasonableBudgetOnItsOwn",
	}
	for _, title := range titles {
		lines := Wrap(title, 30, 3)
		if len(lines) < 1 || len(lines) > 3 {
			t.Fatalf("title %q: got %d lines, want 1..3", title, len(lines))
		}
		normalized := strings.Join(strings.Fields(title), " ")
		if got := strings.Join(lines, " "); strings.TrimSpace(got) != normalized {
			t.Fatalf("title %q: joined lines %q != normalized %q", title, got, normalized)
		}
	}
}

func TestWrapOversizedWordStandsAlone(t *testing.T) {
	lines := Wrap("tiny aWordFarLongerThanTheBudget tail", 10, 3)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %#v", lines)
	}
	if lines[1] != "aWordFarLongerThanTheBudget" {
		t.Fatalf("oversized word must stand alone, got %q", lines[1])
	}
}

// TestWrapMergesOverflowIntoLastLine 验证提交满 maxLines-1 行后，
// 剩余词全部进入最后一行且不再折行。
func TestWrapMergesOverflowIntoLastLine(t *testing.T) {
	title := "aa bb cc dd ee ff gg hh ii jj"
	lines := Wrap(title, 5, 3)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %#v", lines)
	}
	if lines[0] != "aa bb" || lines[1] != "cc dd" {
		t.Fatalf("unexpected committed lines: %#v", lines)
	}
	if lines[2] != "ee ff gg hh ii jj" {
		t.Fatalf("last line must absorb the remainder, got %q", lines[2])
	}
	if len(lines[2]) <= 5 {
		t.Fatalf("last line is expected to exceed the budget here")
	}
}

func TestWrapMaxLinesOne(t *testing.T) {
	lines := Wrap("a b c d", 2, 1)
	if len(lines) != 1 || lines[0] != "a b c d" {
		t.Fatalf("maxLines=1 must keep everything on one line, got %#v", lines)
	}
}
