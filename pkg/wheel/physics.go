package wheel

import "fmt"

// Physics 旋转物理参数
type Physics struct {
	Friction           float64 `yaml:"friction"`           // 每 tick 的角速度衰减系数，越接近 1 转得越久
	MinVelocity        float64 `yaml:"minVelocity"`        // 低于该角速度即停止
	MinInitialVelocity float64 `yaml:"minInitialVelocity"` // 初始角速度下限（弧度/tick）
	MaxInitialVelocity float64 `yaml:"maxInitialVelocity"` // 初始角速度上限（弧度/tick）
}

// DefaultPhysics 返回默认物理参数
func DefaultPhysics() Physics {
	return Physics{
		Friction:           0.98,
		MinVelocity:        0.001,
		MinInitialVelocity: 0.3,
		MaxInitialVelocity: 0.5,
	}
}

// Validate 检查物理参数
// friction 必须在 (0, 1) 内，否则旋转永不停止或立即停止
func (p Physics) Validate() error {
	if p.Friction <= 0 || p.Friction >= 1 {
		return fmt.Errorf("%w: friction must be in (0, 1), got %v", ErrInvalidConfig, p.Friction)
	}
	if p.MinVelocity <= 0 {
		return fmt.Errorf("%w: minVelocity must be > 0, got %v", ErrInvalidConfig, p.MinVelocity)
	}
	if p.MinInitialVelocity < 0 || p.MaxInitialVelocity < p.MinInitialVelocity {
		return fmt.Errorf("%w: initial velocity range [%v, %v] is invalid",
			ErrInvalidConfig, p.MinInitialVelocity, p.MaxInitialVelocity)
	}
	return nil
}

// StartSpin 开始一次旋转
// 已经在旋转时不做任何事并返回 false
func StartSpin(s *State, p Physics, rng RandSource) bool {
	if s.Spinning {
		return false
	}
	span := p.MaxInitialVelocity - p.MinInitialVelocity
	s.AngularVelocity = p.MinInitialVelocity + rng.Float64()*span
	s.Spinning = true
	return true
}

// Advance 推进一个模拟 tick
//
// 先按摩擦系数衰减角速度，再累加到旋转角并归一化。
// 返回 false 表示角速度已低于阈值，调用方应调用 Finish 结算。
func Advance(s *State, p Physics) bool {
	if !s.Spinning {
		return false
	}
	s.AngularVelocity *= p.Friction
	s.Rotation = normalizeAngle(s.Rotation + s.AngularVelocity)
	return s.AngularVelocity >= p.MinVelocity
}

// ExpectedTravel 连续近似下一次旋转的总转角：v0 / (1 - friction)
func (p Physics) ExpectedTravel(initialVelocity float64) float64 {
	return initialVelocity / (1 - p.Friction)
}
