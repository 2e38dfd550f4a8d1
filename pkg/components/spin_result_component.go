package components

import "github.com/decker502/wheel/pkg/wheel"

// SpinResultComponent 最近一次旋转的结果
// 开始新的旋转时被清空，停止时写入
type SpinResultComponent struct {
	HasResult bool             // 是否已有结果可显示
	Result    wheel.SpinResult // 选中的扇区
	Elapsed   float64          // 结果出现后经过的时间（秒），用于淡入
}

// Clear 清空结果（新的旋转开始时调用）
func (r *SpinResultComponent) Clear() {
	r.HasResult = false
	r.Result = wheel.SpinResult{}
	r.Elapsed = 0
}

// Set 记录新的结果并重新开始淡入
func (r *SpinResultComponent) Set(result wheel.SpinResult) {
	r.HasResult = true
	r.Result = result
	r.Elapsed = 0
}
