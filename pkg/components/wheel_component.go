package components

import "github.com/decker502/wheel/pkg/wheel"

// WheelComponent 转盘的模型数据
// 每个转盘实体持有一份独立的状态、物理参数与随机源
type WheelComponent struct {
	ID             string           // 转盘标识，如 "activity"
	Title          string           // 显示在转盘上方的标题
	State          *wheel.State     // 扇区、旋转角度、角速度、是否旋转中
	Physics        wheel.Physics    // 摩擦系数与速度阈值
	Rand           wheel.RandSource // 起转速度随机源
	AdaptiveSizing bool             // 按标签长度选择字号
	SpinTicks      int              // 本次旋转已经推进的 tick 数
	SpinCount      int              // 累计完成的旋转次数
}

// IsSpinning 返回转盘是否正在旋转
func (w *WheelComponent) IsSpinning() bool {
	return w.State != nil && w.State.Spinning
}
