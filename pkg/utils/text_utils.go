package utils

import "strings"

// MeasureFunc 测量文本在指定字号下的宽度（像素）
type MeasureFunc func(s string, size float64) float64

// WrapWords 按单词贪心换行
// 参数:
//   - words: 已拆分的单词（至少一个）
//   - size: 字号
//   - measure: 宽度测量函数
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 只要 "当前行 + 空格 + 下一个单词" 的宽度不超过 maxWidth 就继续追加
//   - 否则当前行结束，下一个单词开始新行
//   - 单个单词本身超宽时独占一行，不做拆分
func WrapWords(words []string, size float64, measure MeasureFunc, maxWidth float64) []string {
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, len(words))
	currentLine := words[0]

	for _, word := range words[1:] {
		testLine := currentLine + " " + word
		if measure(testLine, size) > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	// 添加最后一行
	return append(lines, currentLine)
}

// SplitWords 按空白拆分文本，连续空白视为一个分隔符
func SplitWords(s string) []string {
	return strings.Fields(s)
}
