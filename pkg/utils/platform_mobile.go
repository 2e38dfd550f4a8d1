//go:build mobile

package utils

// IsMobile 使用 -tags mobile 构建时恒为 true（触摸提示、无键盘快捷键）
func IsMobile() bool {
	return true
}
