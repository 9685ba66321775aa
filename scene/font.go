package scene

import "fmt"

// FontBinding 把逻辑字体族名与原始字体字节绑定为一个不透明句柄。
// Scene Builder 与渲染器共用同一个句柄，从构造上排除
// “族名字符串不一致导致静默回退到系统字体”这一历史高发故障。
type FontBinding struct {
	family string
	data   []byte
}

// BindFont 用给定名称绑定字体字节。字节为空立即返回 FontBindingError，
// 绝不进入光栅化阶段（空字体对非拉丁文字意味着必然的乱码渲染）。
func BindFont(name string, data []byte) (*FontBinding, error) {
	if name == "" {
		name = "headline"
	}
	if len(data) == 0 {
		return nil, &FontBindingError{Family: name, Reason: "字体字节为空"}
	}
	return &FontBinding{family: name, data: data}, nil
}

// Family 返回渲染器注册与文本图层引用共用的族名。
func (b *FontBinding) Family() string { return b.family }

// Bytes 返回原始字体数据。调用方不得修改。
func (b *FontBinding) Bytes() []byte { return b.data }

// FontBindingError 表示字体缺失、为空或注册不一致。
type FontBindingError struct {
	Family string
	Reason string
	Err    error
}

func (e *FontBindingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("字体绑定 %s 失败: %s: %v", e.Family, e.Reason, e.Err)
	}
	return fmt.Sprintf("字体绑定 %s 失败: %s", e.Family, e.Reason)
}

func (e *FontBindingError) Unwrap() error { return e.Err }

// AssetError 表示背景等资源不可读或无法解码。
type AssetError struct {
	Resource string
	Err      error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("资源 %s 不可用: %v", e.Resource, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }
