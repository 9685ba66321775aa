package template

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/abdobasha2004/newscard/binding"
	"github.com/abdobasha2004/newscard/scene"
)

// Compile 将主题文档应用到默认主题之上，并用 data 插值所有文案。
// 未出现的段落与键保留默认值；未知段落或键报错，避免拼写错误静默失效。
func Compile(doc *Document, data map[string]string) (*scene.Theme, error) {
	theme := scene.DefaultTheme()
	if doc == nil {
		return theme, nil
	}

	for _, sec := range doc.Sections {
		if sec.Block == nil {
			continue
		}
		switch sec.Name {
		case "band":
			if err := applyBand(theme, sec.Block); err != nil {
				return nil, err
			}
		case "headline":
			if err := applyHeadline(theme, sec.Block); err != nil {
				return nil, err
			}
		case "badge":
			if err := applyBadge(theme, sec.Block); err != nil {
				return nil, err
			}
		case "brand":
			if err := applyBrand(theme, sec.Block); err != nil {
				return nil, err
			}
		case "qr":
			if err := applyQR(theme, sec.Block); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("主题段落 %s 未知", sec.Name)
		}
	}

	theme.BadgeLabel = binding.Interpolate(theme.BadgeLabel, data)
	theme.QRContent = binding.Interpolate(theme.QRContent, data)
	for i, line := range theme.BrandLines {
		theme.BrandLines[i] = binding.Interpolate(line, data)
	}
	return theme, nil
}

// Load 读取并编译主题文件。path 为空时返回默认主题。
func Load(path string, data map[string]string) (*scene.Theme, error) {
	if path == "" {
		return Compile(nil, data)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开主题文件 %s 失败: %w", path, err)
	}
	defer f.Close()
	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("解析主题文件 %s 失败: %w", path, err)
	}
	return Compile(doc, data)
}

func applyBand(theme *scene.Theme, block *Block) error {
	return eachAssignment(block, "band", func(key string, v *Value) error {
		switch key {
		case "color":
			return setColor(&theme.BandColor, v, "band.color")
		case "shadow":
			return setColor(&theme.BandShadow, v, "band.shadow")
		default:
			return fmt.Errorf("band 段落不支持键 %s", key)
		}
	})
}

func applyHeadline(theme *scene.Theme, block *Block) error {
	return eachAssignment(block, "headline", func(key string, v *Value) error {
		if key != "color" {
			return fmt.Errorf("headline 段落不支持键 %s", key)
		}
		return setColor(&theme.HeadlineColor, v, "headline.color")
	})
}

func applyBadge(theme *scene.Theme, block *Block) error {
	return eachAssignment(block, "badge", func(key string, v *Value) error {
		switch key {
		case "label":
			return setString(&theme.BadgeLabel, v, "badge.label")
		case "color":
			return setColor(&theme.BadgeFill, v, "badge.color")
		case "text-color":
			return setColor(&theme.BadgeTextColor, v, "badge.text-color")
		default:
			return fmt.Errorf("badge 段落不支持键 %s", key)
		}
	})
}

func applyBrand(theme *scene.Theme, block *Block) error {
	var lines []string
	for _, st := range block.Statements {
		if st == nil {
			continue
		}
		if st.Text != nil {
			lines = append(lines, string(st.Text.Value))
			continue
		}
		if st.Assignment == nil {
			continue
		}
		if st.Assignment.Key != "color" {
			return fmt.Errorf("brand 段落不支持键 %s", st.Assignment.Key)
		}
		if err := setColor(&theme.BrandColor, st.Assignment.Value, "brand.color"); err != nil {
			return err
		}
	}
	if len(lines) > 0 {
		theme.BrandLines = lines
	}
	return nil
}

func applyQR(theme *scene.Theme, block *Block) error {
	return eachAssignment(block, "qr", func(key string, v *Value) error {
		switch key {
		case "content":
			return setString(&theme.QRContent, v, "qr.content")
		case "size":
			if v == nil || v.Number == nil {
				return fmt.Errorf("qr.size 需要整数值")
			}
			n, err := strconv.Atoi(*v.Number)
			if err != nil || n <= 0 {
				return fmt.Errorf("qr.size 非法: %s", *v.Number)
			}
			theme.QRSizePx = n
			return nil
		default:
			return fmt.Errorf("qr 段落不支持键 %s", key)
		}
	})
}

func eachAssignment(block *Block, section string, fn func(key string, v *Value) error) error {
	for _, st := range block.Statements {
		if st == nil || st.Assignment == nil {
			if st != nil && st.Text != nil {
				return fmt.Errorf("%s 段落不接受裸字符串", section)
			}
			continue
		}
		if err := fn(st.Assignment.Key, st.Assignment.Value); err != nil {
			return err
		}
	}
	return nil
}

func setString(dst *string, v *Value, field string) error {
	if v == nil || v.String == nil {
		return fmt.Errorf("%s 需要字符串值", field)
	}
	*dst = string(*v.String)
	return nil
}

func setColor(dst *color.NRGBA, v *Value, field string) error {
	if v == nil || v.Color == nil {
		return fmt.Errorf("%s 需要颜色值（#RGB/#RRGGBB/#RRGGBBAA）", field)
	}
	c, err := parseHexColor(*v.Color)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*dst = c
	return nil
}

func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	parse := func(sub string) uint8 {
		n, _ := strconv.ParseUint(sub, 16, 8)
		return uint8(n)
	}
	switch len(hex) {
	case 3:
		return color.NRGBA{
			R: parse(string([]byte{hex[0], hex[0]})),
			G: parse(string([]byte{hex[1], hex[1]})),
			B: parse(string([]byte{hex[2], hex[2]})),
			A: 0xFF,
		}, nil
	case 6:
		return color.NRGBA{R: parse(hex[0:2]), G: parse(hex[2:4]), B: parse(hex[4:6]), A: 0xFF}, nil
	case 8:
		return color.NRGBA{R: parse(hex[0:2]), G: parse(hex[2:4]), B: parse(hex[4:6]), A: parse(hex[6:8])}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("颜色 %s 格式非法", s)
	}
}
