package components

import (
	"github.com/decker502/wheel/pkg/config"
	"github.com/decker502/wheel/pkg/render"
)

// WheelLayoutComponent 转盘在窗口中的位置
// 窗口尺寸变化时由场景重新计算
type WheelLayoutComponent struct {
	Panel config.PanelRect // 整个面板（标题 + 转盘 + 结果）
	Wheel render.Layout    // 转盘圆心与半径
}
