package wheel

import (
	"fmt"
	"math"
)

// PointerAngle 指针所在的固定角度（转盘顶部，向下指向盘面）
const PointerAngle = -math.Pi / 2

// SpinResult 一次旋转的结果，在停止时由最终旋转角计算得出
type SpinResult struct {
	Index   int
	Section Section
}

// SectionIndexAt 计算指针在给定旋转角下指向的扇区索引
//
// 扇区 i 在未旋转坐标系中覆盖 [i·(2π/n), (i+1)·(2π/n))。
// pointer - rotation 可能为负，必须使用 floor-mod 而不是截断取余。
func SectionIndexAt(rotation float64, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: no sections to resolve", ErrInvalidState)
	}
	step := TwoPi / float64(n)
	normalized := floorMod(PointerAngle-rotation, TwoPi)
	index := int(math.Floor(normalized / step))
	if index >= n {
		index = n - 1
	}
	return index, nil
}

// Resolve 计算当前指针下的获胜扇区
func Resolve(s State) (SpinResult, error) {
	index, err := SectionIndexAt(s.Rotation, len(s.Sections))
	if err != nil {
		return SpinResult{}, err
	}
	return SpinResult{Index: index, Section: s.Sections[index]}, nil
}

// Finish 结束旋转：清零角速度、退出旋转状态并结算
func Finish(s *State) (SpinResult, error) {
	s.Spinning = false
	s.AngularVelocity = 0
	return Resolve(*s)
}

// CrossedBoundaries 返回一个 tick 内经过指针的扇区边界数量
// prevRotation 是推进前的旋转角，delta 是本 tick 转过的角度
func CrossedBoundaries(prevRotation, delta float64, n int) int {
	return crossedBoundaries(prevRotation, delta, n, false)
}

// CrossedBoundariesFromStart 与 CrossedBoundaries 相同，但用于一次旋转的第一个 tick：
// 起转时恰好停在指针下的边界也算作经过
func CrossedBoundariesFromStart(prevRotation, delta float64, n int) int {
	return crossedBoundaries(prevRotation, delta, n, true)
}

func crossedBoundaries(prevRotation, delta float64, n int, includeStart bool) int {
	if n <= 0 || delta <= 0 {
		return 0
	}
	step := TwoPi / float64(n)
	// 转盘正向旋转时，指针在转盘坐标系中的角度反向移动
	from := floorMod(PointerAngle-prevRotation, TwoPi)
	hi := snapToBoundary(from / step)
	lo := snapToBoundary((from - delta) / step)

	// 区间 [lo, hi) 首尾相接，同一条边界不会被相邻两个 tick 重复计数
	upper := math.Ceil(hi)
	if includeStart {
		upper = math.Floor(hi) + 1
	}
	return int(upper - math.Ceil(lo))
}

// snapToBoundary 把浮点误差范围内的边界位置吸附到整数
func snapToBoundary(x float64) float64 {
	if r := math.Round(x); math.Abs(x-r) < 1e-9 {
		return r
	}
	return x
}
