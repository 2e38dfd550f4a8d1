package render

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

// monoMeasure 等宽测量：每个字符宽 0.6 × 字号
func monoMeasure(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * 0.6
}

// TestBaseFontSizeFor 测试按标签长度选择字号
func TestBaseFontSizeFor(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		adaptive bool
		want     float64
	}{
		{"短标签", "Walk", true, 18},
		{"15 个字符", strings.Repeat("a", 15), true, 18},
		{"16 个字符", strings.Repeat("a", 16), true, 14},
		{"20 个字符", strings.Repeat("a", 20), true, 14},
		{"21 个字符", strings.Repeat("a", 21), true, 12},
		{"固定字号", strings.Repeat("a", 30), false, 18},
		{"多字节字符按字符计数", strings.Repeat("转", 16), true, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseFontSizeFor(tt.label, tt.adaptive); got != tt.want {
				t.Errorf("BaseFontSizeFor(%q, %v) = %v, want %v", tt.label, tt.adaptive, got, tt.want)
			}
		})
	}
}

// TestLayoutLabelFits 放得下的标签保持单行并下移基线
func TestLayoutLabelFits(t *testing.T) {
	got := LayoutLabel("Walk", 200, monoMeasure, true)
	if got.FontSize != 18 || got.Wrapped || got.Shrunk {
		t.Errorf("unexpected layout %+v", got)
	}
	if len(got.Lines) != 1 || got.Lines[0].Text != "Walk" || got.Lines[0].Y != LabelBaselineNudge {
		t.Errorf("Lines = %+v, want single line at y=%v", got.Lines, LabelBaselineNudge)
	}
}

// TestLayoutLabelWraps 超宽的多单词标签折成多行，每行不超过最大宽度
func TestLayoutLabelWraps(t *testing.T) {
	const radius = 200.0
	maxWidth := radius * LabelMaxWidthRatio

	for _, label := range []string{
		"Read a good book tonight",
		"Go for a walk outside",
		"Call an old friend",
	} {
		t.Run(label, func(t *testing.T) {
			got := LayoutLabel(label, radius, monoMeasure, true)
			if !got.Wrapped {
				t.Fatalf("expected wrapped layout, got %+v", got)
			}
			if len(got.Lines) < 2 {
				t.Fatalf("expected at least 2 lines, got %d", len(got.Lines))
			}

			var words []string
			for _, line := range got.Lines {
				if w := monoMeasure(line.Text, got.FontSize); w > maxWidth {
					t.Errorf("line %q width %.1f exceeds %.1f", line.Text, w, maxWidth)
				}
				words = append(words, strings.Fields(line.Text)...)
			}
			if strings.Join(words, " ") != strings.Join(strings.Fields(label), " ") {
				t.Errorf("wrapping lost words: %v", words)
			}

			// 行高 = 字号 + 2，整体以中线为中心
			lineHeight := got.FontSize + LineGap
			for i := 1; i < len(got.Lines); i++ {
				if d := got.Lines[i].Y - got.Lines[i-1].Y; math.Abs(d-lineHeight) > 1e-9 {
					t.Errorf("line spacing %v, want %v", d, lineHeight)
				}
			}
			first, last := got.Lines[0].Y, got.Lines[len(got.Lines)-1].Y
			if math.Abs(first+last) > 1e-9 {
				t.Errorf("lines not centred: first=%v last=%v", first, last)
			}
		})
	}
}

// TestLayoutLabelShrinksSingleWord 单个超宽单词逐级缩小字号
func TestLayoutLabelShrinksSingleWord(t *testing.T) {
	// 20 个字符 → 初始 14；最大宽度 100 → 20*s*0.6 <= 100 → s = 8
	got := LayoutLabel("Supercalifragilistic", 200, monoMeasure, true)
	if !got.Shrunk || got.Wrapped {
		t.Fatalf("expected shrunk layout, got %+v", got)
	}
	if got.FontSize != 8 {
		t.Errorf("FontSize = %v, want 8", got.FontSize)
	}
	if len(got.Lines) != 1 || got.Lines[0].Y != LabelBaselineNudge {
		t.Errorf("Lines = %+v, want one line at the nudged baseline", got.Lines)
	}

	// 12 个字符 → 18；12*s*0.6 <= 100 → s = 13
	got = LayoutLabel("Extraordinar", 200, monoMeasure, true)
	if got.FontSize != 13 {
		t.Errorf("FontSize = %v, want 13", got.FontSize)
	}
}

// TestLayoutLabelShrinkFloor 缩小到 8 后不再继续缩小
func TestLayoutLabelShrinkFloor(t *testing.T) {
	got := LayoutLabel(strings.Repeat("x", 60), 100, monoMeasure, true)
	if got.FontSize != MinFontSize {
		t.Errorf("FontSize = %v, want floor %v", got.FontSize, MinFontSize)
	}
}

// TestLayoutLabelFixedSizing 固定字号模式下不按长度缩小初始字号
func TestLayoutLabelFixedSizing(t *testing.T) {
	label := "Twenty one characters"
	fixed := LayoutLabel(label, 400, monoMeasure, false)
	adaptive := LayoutLabel(label, 400, monoMeasure, true)
	if fixed.FontSize != 18 {
		t.Errorf("fixed FontSize = %v, want 18", fixed.FontSize)
	}
	if adaptive.FontSize != 12 {
		t.Errorf("adaptive FontSize = %v, want 12", adaptive.FontSize)
	}
}
