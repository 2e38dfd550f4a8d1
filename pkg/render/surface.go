// Package render 把转盘状态绘制到任意画布上
//
// Surface 是一个类似 HTML Canvas 2D 上下文的最小接口：带变换栈，
// 所有图元都以当前原点为圆心绘制。渲染函数本身不保存任何帧间状态，
// 同一个 wheel.State 每次都得到同样的画面。
package render

import "image/color"

// Point 画布坐标中的点
type Point struct {
	X, Y float64
}

// Surface 转盘渲染目标
//
// 角度单位为弧度，0 指向 +X，正方向顺时针（y 轴朝下），与 Canvas 一致。
type Surface interface {
	// Save 压入当前变换
	Save()
	// Restore 弹出最近一次 Save 的变换
	Restore()
	// Translate 平移当前坐标系
	Translate(x, y float64)
	// Rotate 旋转当前坐标系
	Rotate(theta float64)

	// FillWedge 以原点为圆心填充扇形 [start, end]
	FillWedge(radius, start, end float64, clr color.Color)
	// StrokeWedge 描边扇形（圆弧和两条半径）
	StrokeWedge(radius, start, end, width float64, clr color.Color)
	// FillCircle 以原点为圆心填充圆
	FillCircle(radius float64, clr color.Color)
	// StrokeCircle 以原点为圆心描边圆
	StrokeCircle(radius, width float64, clr color.Color)
	// FillPolygon 填充多边形（当前坐标系）
	FillPolygon(points []Point, clr color.Color)

	// MeasureText 返回文本在指定字号下的宽度
	MeasureText(s string, size float64) float64
	// FillText 绘制文本：x 为水平中心，y 为基线
	FillText(s string, size, x, y float64, clr color.Color)
}
