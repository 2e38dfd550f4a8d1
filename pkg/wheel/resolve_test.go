package wheel

import (
	"errors"
	"math"
	"testing"
)

// TestResolveScenarios 固定旋转角下的获胜扇区
func TestResolveScenarios(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		rotation  float64
		wantIndex int
	}{
		// ((-π/2 - 0) mod 2π) = 3π/2, / (π/2) = 3
		{"四等分, 旋转角 0", 4, 0, 3},
		{"四等分, 旋转角 π/2", 4, math.Pi / 2, 2},
		{"四等分, 旋转角 π", 4, math.Pi, 1},
		{"四等分, 旋转角 3π/2", 4, 3 * math.Pi / 2, 0},
		{"两等分, 旋转角 0", 2, 0, 1},
		{"两等分, 旋转角 π", 2, math.Pi, 0},
		{"单扇区", 1, 2.5, 0},
		{"接近 2π", 4, TwoPi - 1e-12, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(testSections(tt.n))
			s.SetRotation(tt.rotation)
			res, err := Resolve(*s)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if res.Index != tt.wantIndex {
				t.Errorf("Resolve() index = %d, want %d", res.Index, tt.wantIndex)
			}
			if res.Section != s.Sections[tt.wantIndex] {
				t.Errorf("Resolve() section = %+v, want %+v", res.Section, s.Sections[tt.wantIndex])
			}
		})
	}
}

// TestResolveTwoSectionsFlip 两扇区时旋转半圈结果翻转
func TestResolveTwoSectionsFlip(t *testing.T) {
	s := NewState(testSections(2))
	at0, _ := Resolve(*s)
	s.SetRotation(math.Pi)
	atPi, _ := Resolve(*s)
	if at0.Index == atPi.Index {
		t.Errorf("rotation by π should flip the winner, both got %d", at0.Index)
	}
}

// TestResolveIndexAlwaysInRange 任意旋转角、任意扇区数，索引都在 [0, n)
func TestResolveIndexAlwaysInRange(t *testing.T) {
	for n := 1; n <= 24; n++ {
		for k := 0; k <= 720; k++ {
			rotation := TwoPi * float64(k) / 720
			idx, err := SectionIndexAt(rotation, n)
			if err != nil {
				t.Fatalf("SectionIndexAt(%v, %d) error: %v", rotation, n, err)
			}
			if idx < 0 || idx >= n {
				t.Fatalf("SectionIndexAt(%v, %d) = %d, out of range", rotation, n, idx)
			}
		}
	}
}

// TestResolveEmptyWheel 没有扇区时必须报错而不是返回默认值
func TestResolveEmptyWheel(t *testing.T) {
	_, err := Resolve(*NewState(nil))
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("Resolve() error = %v, want ErrInvalidState", err)
	}

	s := NewState(nil)
	s.Spinning = true
	if _, err := Finish(s); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Finish() error = %v, want ErrInvalidState", err)
	}
	if s.Spinning {
		t.Error("Finish() should leave spinning=false even on error")
	}
}

// TestSetRotationNormalizes 旋转角归一化
func TestSetRotationNormalizes(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{TwoPi, 0},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		s := NewState(nil)
		s.SetRotation(tt.in)
		if math.Abs(s.Rotation-tt.want) > 1e-9 {
			t.Errorf("SetRotation(%v) = %v, want %v", tt.in, s.Rotation, tt.want)
		}
	}
}

// TestCrossedBoundaries 指针经过的扇区边界计数
func TestCrossedBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		prev  float64
		delta float64
		n     int
		want  int
	}{
		{"小步不越界", 0, 0.1, 4, 0},
		{"越过一条边界", 0, math.Pi/2 + 0.1, 4, 1},
		{"整圈", 0.3, TwoPi, 4, 4},
		{"零速度", 1, 0, 4, 0},
		{"没有扇区", 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CrossedBoundaries(tt.prev, tt.delta, tt.n); got != tt.want {
				t.Errorf("CrossedBoundaries(%v, %v, %d) = %d, want %d", tt.prev, tt.delta, tt.n, got, tt.want)
			}
		})
	}
}

// TestCrossedBoundariesFromStart 起转时停在边界上，第一个 tick 计入该边界
func TestCrossedBoundariesFromStart(t *testing.T) {
	tests := []struct {
		name  string
		prev  float64
		delta float64
		n     int
		want  int
	}{
		{"八等分从边界起转", 0, 0.1, 8, 1},
		{"四等分从边界起转", 0, 0.1, 4, 1},
		{"十二等分从边界起转", 0, 0.1, 12, 1},
		{"不在边界上起转", 0.1, 0.05, 8, 0},
		{"从边界起转并越过下一条", 0, math.Pi/4 + 0.1, 8, 2},
		{"零速度", 0, 0, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CrossedBoundariesFromStart(tt.prev, tt.delta, tt.n); got != tt.want {
				t.Errorf("CrossedBoundariesFromStart(%v, %v, %d) = %d, want %d", tt.prev, tt.delta, tt.n, got, tt.want)
			}
		})
	}
}

// TestCrossedBoundariesWholeSpin 一次完整旋转的计数等于经过的扇区边界总数
func TestCrossedBoundariesWholeSpin(t *testing.T) {
	for _, n := range []int{4, 8, 12} {
		s := NewState(make([]Section, n))
		s.Spinning = true
		s.AngularVelocity = 0.4
		p := DefaultPhysics()

		step := TwoPi / float64(n)
		total, travel := 0, 0.0
		for tick := 0; ; tick++ {
			prev := s.Rotation
			moving := Advance(s, p)
			travel += s.AngularVelocity
			if tick == 0 {
				total += CrossedBoundariesFromStart(prev, s.AngularVelocity, n)
			} else {
				total += CrossedBoundaries(prev, s.AngularVelocity, n)
			}
			if !moving {
				break
			}
		}

		// 从边界 0 出发，经过的边界为 0, 1, ..., floor(travel/step)
		want := int(math.Floor(travel/step)) + 1
		if total != want {
			t.Errorf("n=%d: counted %d boundaries, want %d (travel %.4f)", n, total, want, travel)
		}
	}
}

// TestSetSectionsCopies 重新加载扇区时不与调用方共享底层数组
func TestSetSectionsCopies(t *testing.T) {
	src := testSections(3)
	s := NewState(src)
	src[0].Label = "changed"
	if s.Sections[0].Label == "changed" {
		t.Error("State shares the caller's slice")
	}
}
