package render

import (
	"unicode/utf8"

	"github.com/decker502/wheel/pkg/utils"
)

const (
	// BaseFontSize 标签默认字号
	BaseFontSize = 18.0
	// MediumFontSize 标签超过 15 个字符时的字号
	MediumFontSize = 14.0
	// SmallFontSize 标签超过 20 个字符时的字号
	SmallFontSize = 12.0
	// MinFontSize 单个长单词缩小字号的下限
	MinFontSize = 8.0

	// LabelRadiusRatio 标签中心距圆心的比例
	LabelRadiusRatio = 0.65
	// LabelMaxWidthRatio 标签最大宽度与半径的比例
	LabelMaxWidthRatio = 0.5
	// LabelBaselineNudge 单行标签基线的下移量，使文字视觉上居中
	LabelBaselineNudge = 5.0
	// LineGap 多行标签的行高 = 字号 + LineGap
	LineGap = 2.0
)

// LabelLine 标签的一行，Y 为相对扇区中线的基线偏移
type LabelLine struct {
	Text string
	Y    float64
}

// LabelLayout 标签排版结果
type LabelLayout struct {
	FontSize float64
	Lines    []LabelLine
	Wrapped  bool // 多单词标签被折行
	Shrunk   bool // 单个长单词被缩小字号
}

// BaseFontSizeFor 根据标签长度选择初始字号
// adaptive 为 false 时始终使用 18
func BaseFontSizeFor(label string, adaptive bool) float64 {
	if !adaptive {
		return BaseFontSize
	}
	n := utf8.RuneCountInString(label)
	switch {
	case n > 20:
		return SmallFontSize
	case n > 15:
		return MediumFontSize
	default:
		return BaseFontSize
	}
}

// LayoutLabel 在半径为 radius 的扇区内排版标签
//
// 宽度超过 0.5·radius 时：多单词标签贪心折行并以中线为中心纵向堆叠；
// 单个单词则逐级缩小字号直到放得下或到达 8。
func LayoutLabel(label string, radius float64, measure utils.MeasureFunc, adaptive bool) LabelLayout {
	size := BaseFontSizeFor(label, adaptive)
	maxWidth := radius * LabelMaxWidthRatio

	width := measure(label, size)
	if width <= maxWidth {
		return LabelLayout{FontSize: size, Lines: []LabelLine{{Text: label, Y: LabelBaselineNudge}}}
	}

	words := utils.SplitWords(label)
	if len(words) > 1 {
		lines := utils.WrapWords(words, size, measure, maxWidth)
		lineHeight := size + LineGap
		totalHeight := float64(len(lines)) * lineHeight
		startY := -totalHeight/2 + lineHeight/2

		out := make([]LabelLine, len(lines))
		for i, line := range lines {
			out[i] = LabelLine{Text: line, Y: startY + float64(i)*lineHeight}
		}
		return LabelLayout{FontSize: size, Lines: out, Wrapped: true}
	}

	for width > maxWidth && size > MinFontSize {
		size--
		width = measure(label, size)
	}
	return LabelLayout{FontSize: size, Lines: []LabelLine{{Text: label, Y: LabelBaselineNudge}}, Shrunk: true}
}
