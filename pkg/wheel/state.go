package wheel

import "math"

// TwoPi 一整圈的弧度
const TwoPi = 2 * math.Pi

// State 转盘的完整可变状态
//
// 不变量：
//   - Rotation 每次更新后都归一化到 [0, 2π)
//   - AngularVelocity >= 0，旋转过程中单调不增
type State struct {
	Sections        []Section
	Rotation        float64 // 当前旋转角（弧度）
	AngularVelocity float64 // 角速度（弧度/tick）
	Spinning        bool
}

// NewState 创建静止的转盘状态，sections 会被复制
func NewState(sections []Section) *State {
	s := &State{}
	s.SetSections(sections)
	return s
}

// SetSections 整体替换扇区列表（配置重新加载时调用）
func (s *State) SetSections(sections []Section) {
	s.Sections = append([]Section(nil), sections...)
}

// SetRotation 设置旋转角，自动归一化到 [0, 2π)
func (s *State) SetRotation(rotation float64) {
	s.Rotation = normalizeAngle(rotation)
}

// SectionCount 返回扇区数量
func (s State) SectionCount() int {
	return len(s.Sections)
}

// AnglePerSection 每个扇区的张角；没有扇区时返回 0
func (s State) AnglePerSection() float64 {
	if len(s.Sections) == 0 {
		return 0
	}
	return TwoPi / float64(len(s.Sections))
}

// floorMod 取模，结果总是落在 [0, m)
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	// -1e-18 + 2π 在浮点下会等于 2π
	if r >= m {
		r = 0
	}
	return r
}

func normalizeAngle(a float64) float64 {
	return floorMod(a, TwoPi)
}
