// Package template 解析卡片主题 DSL 并编译为 scene.Theme。
// 主题文件声明色带、标题、角标与品牌说明的配色与文案，例如：
//
//	card "breaking" {
//	  band {
//	    color: #D32F2F
//	    shadow: #9A0007
//	  }
//	  badge {
//	    label: "عاجل"
//	    color: #FFC107
//	    text-color: #212121
//	  }
//	  brand {
//	    color: #FFFFFFE0
//	    "شبكة ${brand} الإخبارية"
//	    "${domain}"
//	  }
//	}
package template

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	themeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[{}:;]`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(themeLexer),
		participle.Elide("Whitespace", "LineComment"),
	)
)

// Document 是主题 DSL 的根节点。
type Document struct {
	Pos      lexer.Position
	Name     StringLiteral `parser:"Newline* 'card' @String"`
	Sections []*Section    `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Section 是一个命名配置块（band/headline/badge/brand/qr）。
type Section struct {
	Name  string `parser:"@Ident"`
	Block *Block `parser:"@@"`
}

// Block 是花括号内的语句列表。
type Block struct {
	Statements []*Statement `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Statement 是赋值或裸字符串（品牌说明行）。
type Statement struct {
	Assignment *Assignment  `parser:"  @@"`
	Text       *TextLiteral `parser:"| @@"`
}

// Assignment 使用冒号语法（key: value）。
type Assignment struct {
	Key   string `parser:"@Ident"`
	Value *Value `parser:"':' @@"`
}

// TextLiteral 是块内的裸字符串语句。
type TextLiteral struct {
	Value StringLiteral `parser:"@String"`
}

// Value 是属性值：字符串、颜色或整数。
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Color  *string        `parser:"| @Color"`
	Number *string        `parser:"| @Number"`
}

// StringLiteral 捕获时做 Go 风格解引号。
type StringLiteral string

// Capture 实现 participle.Capture。
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse 从 io.Reader 解析主题 DSL。
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString 从字符串解析主题 DSL。
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
