package render

import (
	"image/color"
	"math"

	"github.com/decker502/wheel/pkg/wheel"
)

const (
	// BorderWidth 扇区与中心圆的白色描边宽度
	BorderWidth = 3.0
	// HubRadius 中心圆半径（像素，不随转盘缩放）
	HubRadius = 20.0
	// MaxWheelSize 转盘画布的最大边长
	MaxWheelSize = 600.0
	// WheelMargin 画布与容器之间的留白
	WheelMargin = 40.0
	// RimMargin 转盘与画布边缘的距离（留给指针）
	RimMargin = 30.0
	// PointerSize 顶部指针三角形的边长
	PointerSize = 24.0
)

var (
	// BorderColor 描边颜色
	BorderColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// HubColor 中心圆填充色 #333
	HubColor = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	// TextColor 标签文字颜色
	TextColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// PointerColor 指针颜色
	PointerColor = color.RGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	// FallbackColor 无法解析颜色时的扇区填充色
	FallbackColor = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
)

// Layout 转盘在画布上的位置
type Layout struct {
	CenterX float64
	CenterY float64
	Radius  float64
}

// FitLayout 在矩形区域内放置转盘
//
// 边长取 min(区域短边 - 40, 600)，半径 = 边长/2 - 30，居中放置。
// 窗口尺寸改变时每帧重新计算即可，渲染不依赖上一帧。
func FitLayout(x, y, width, height float64) Layout {
	size := math.Min(math.Min(width, height)-WheelMargin, MaxWheelSize)
	radius := size/2 - RimMargin
	if radius < HubRadius {
		radius = HubRadius
	}
	return Layout{
		CenterX: x + width/2,
		CenterY: y + height/2,
		Radius:  radius,
	}
}

// Contains 判断点是否落在转盘圆面内
func (l Layout) Contains(x, y float64) bool {
	return math.Hypot(x-l.CenterX, y-l.CenterY) <= l.Radius
}

// Options 渲染选项
type Options struct {
	// AdaptiveSizing 按标签长度自动选择字号；false 时固定 18
	AdaptiveSizing bool
}

// Render 把转盘状态绘制到 dst
//
// 所有扇区在一个等于 state.Rotation 的旋转变换下绘制，从局部角度 0 开始；
// 中心圆最后绘制且不随转盘旋转，用于遮住扇区顶点。
func Render(dst Surface, state wheel.State, layout Layout, opts Options) {
	n := len(state.Sections)

	if n > 0 {
		step := state.AnglePerSection()

		dst.Save()
		dst.Translate(layout.CenterX, layout.CenterY)
		dst.Rotate(state.Rotation)

		for i, section := range state.Sections {
			start := float64(i) * step
			end := start + step

			fill, err := section.RGBA()
			if err != nil {
				fill = FallbackColor
			}
			dst.FillWedge(layout.Radius, start, end, fill)
			dst.StrokeWedge(layout.Radius, start, end, BorderWidth, BorderColor)

			drawLabel(dst, section.Label, start+step/2, layout.Radius, opts)
		}

		dst.Restore()
	}

	dst.Save()
	dst.Translate(layout.CenterX, layout.CenterY)
	dst.FillCircle(HubRadius, HubColor)
	dst.StrokeCircle(HubRadius, BorderWidth, BorderColor)
	dst.Restore()
}

// drawLabel 旋转到扇区中线后沿半径方向绘制标签
func drawLabel(dst Surface, label string, midAngle, radius float64, opts Options) {
	dst.Save()
	defer dst.Restore()

	dst.Rotate(midAngle)
	layout := LayoutLabel(label, radius, dst.MeasureText, opts.AdaptiveSizing)
	x := radius * LabelRadiusRatio
	for _, line := range layout.Lines {
		dst.FillText(line.Text, layout.FontSize, x, line.Y, TextColor)
	}
}

// RenderPointer 在转盘顶部绘制固定指针，尖端向下指向盘面
func RenderPointer(dst Surface, layout Layout) {
	tipY := layout.CenterY - layout.Radius + PointerSize/2
	baseY := layout.CenterY - layout.Radius - PointerSize/2
	half := PointerSize / 2

	dst.Save()
	dst.FillPolygon([]Point{
		{X: layout.CenterX - half, Y: baseY},
		{X: layout.CenterX + half, Y: baseY},
		{X: layout.CenterX, Y: tipY},
	}, PointerColor)
	dst.Restore()
}
