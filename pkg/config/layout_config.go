package config

// 布局配置常量
// 本文件定义了窗口尺寸以及转盘面板内各元素的位置

const (
	// GameWindowWidth 默认窗口宽度
	GameWindowWidth = 1000

	// GameWindowHeight 默认窗口高度
	GameWindowHeight = 640

	// TitleAreaHeight 转盘上方标题区域高度
	TitleAreaHeight = 48.0

	// ResultAreaHeight 转盘下方结果文字区域高度
	ResultAreaHeight = 56.0

	// TitleFontSize 标题字号
	TitleFontSize = 22.0

	// ResultFontSize 结果文字字号
	ResultFontSize = 24.0

	// HintFontSize 底部提示文字字号
	HintFontSize = 14.0

	// ResultFadeSeconds 结果文字淡入时长（秒）
	ResultFadeSeconds = 0.4
)

// PanelRect 一个转盘面板在窗口中的矩形区域
type PanelRect struct {
	X, Y, Width, Height float64
}

// SplitPanels 把窗口横向均分为 count 个转盘面板
func SplitPanels(width, height float64, count int) []PanelRect {
	if count <= 0 {
		return nil
	}
	w := width / float64(count)
	panels := make([]PanelRect, count)
	for i := range panels {
		panels[i] = PanelRect{X: float64(i) * w, Y: 0, Width: w, Height: height}
	}
	return panels
}

// WheelArea 面板中除去标题与结果区域后留给转盘的矩形
// 面板过矮时高度为 0
func (p PanelRect) WheelArea() PanelRect {
	h := p.Height - TitleAreaHeight - ResultAreaHeight
	if h < 0 {
		h = 0
	}
	return PanelRect{
		X:      p.X,
		Y:      p.Y + TitleAreaHeight,
		Width:  p.Width,
		Height: h,
	}
}
