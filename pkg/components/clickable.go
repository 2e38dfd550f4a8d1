package components

// ClickableComponent 标记实体可以被鼠标点击或触摸
// 点击区域由 WheelLayoutComponent 的圆形区域决定
type ClickableComponent struct {
	IsEnabled bool // 是否响应点击
}
