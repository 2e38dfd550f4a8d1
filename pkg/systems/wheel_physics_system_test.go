package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/decker502/wheel/pkg/components"
	"github.com/decker502/wheel/pkg/ecs"
	"github.com/decker502/wheel/pkg/render"
	"github.com/decker502/wheel/pkg/wheel"
)

const maxTestTicks = 10000

func runUntilStopped(t *testing.T, s *WheelPhysicsSystem, w *components.WheelComponent) int {
	t.Helper()
	for i := 1; i <= maxTestTicks; i++ {
		s.Update(1.0 / 60.0)
		if !w.IsSpinning() {
			return i
		}
	}
	t.Fatalf("wheel did not stop within %d ticks", maxTestTicks)
	return 0
}

// TestWheelPhysicsSystemSpin 测试开始旋转与重复请求
func TestWheelPhysicsSystemSpin(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestWheel(em, "a", 4, render.Layout{})
	s := NewWheelPhysicsSystem(em)

	result, _ := ecs.GetComponent[*components.SpinResultComponent](em, id)
	result.Set(wheel.SpinResult{Index: 1})

	if !s.Spin(id) {
		t.Fatal("first Spin() should start the wheel")
	}
	w, _ := ecs.GetComponent[*components.WheelComponent](em, id)
	if !w.IsSpinning() || math.Abs(w.State.AngularVelocity-0.4) > 1e-12 {
		t.Errorf("unexpected state after Spin(): %+v", w.State)
	}
	if result.HasResult {
		t.Error("previous result should be cleared when a spin starts")
	}

	w.State.AngularVelocity = 0.123
	if s.Spin(id) {
		t.Error("Spin() while spinning should be a no-op")
	}
	if w.State.AngularVelocity != 0.123 {
		t.Errorf("Spin() while spinning changed velocity to %v", w.State.AngularVelocity)
	}

	if s.Spin(ecs.EntityID(999)) {
		t.Error("Spin() on unknown entity should return false")
	}
}

// TestWheelPhysicsSystemStopsAndResolves 旋转结束时结算并通知一次
func TestWheelPhysicsSystemStopsAndResolves(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestWheel(em, "a", 6, render.Layout{})
	s := NewWheelPhysicsSystem(em)

	var results []wheel.SpinResult
	s.OnResult = func(e ecs.EntityID, w *components.WheelComponent, r wheel.SpinResult) {
		if e != id {
			t.Errorf("OnResult entity = %d, want %d", e, id)
		}
		results = append(results, r)
	}

	s.Spin(id)
	w, _ := ecs.GetComponent[*components.WheelComponent](em, id)
	ticks := runUntilStopped(t, s, w)

	if len(results) != 1 {
		t.Fatalf("OnResult called %d times, want 1", len(results))
	}
	want, err := wheel.Resolve(*w.State)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if results[0] != want {
		t.Errorf("result = %+v, want %+v", results[0], want)
	}
	if w.State.AngularVelocity != 0 {
		t.Errorf("velocity after stop = %v, want 0", w.State.AngularVelocity)
	}
	if w.SpinTicks != ticks || w.SpinCount != 1 {
		t.Errorf("SpinTicks=%d (want %d), SpinCount=%d (want 1)", w.SpinTicks, ticks, w.SpinCount)
	}

	rc, _ := ecs.GetComponent[*components.SpinResultComponent](em, id)
	if !rc.HasResult || rc.Result != want {
		t.Errorf("SpinResultComponent = %+v", rc)
	}

	// 停止后继续 Update：旋转角不变，结果显示时间累计
	rotation := w.State.Rotation
	s.Update(0.5)
	if w.State.Rotation != rotation {
		t.Error("idle wheel should not move")
	}
	if rc.Elapsed != 0.5 {
		t.Errorf("Elapsed = %v, want 0.5", rc.Elapsed)
	}
	if len(results) != 1 {
		t.Error("OnResult must not fire again for an idle wheel")
	}
}

// TestWheelPhysicsSystemTicks 边界经过次数与总转角一致
// 转盘从旋转角 0 起转，此时指针正好在一条边界上，这条边界也要响一次
func TestWheelPhysicsSystemTicks(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestWheel(em, "a", 8, render.Layout{})
	s := NewWheelPhysicsSystem(em)

	crossings := 0
	s.OnTick = func(_ ecs.EntityID, n int) { crossings += n }

	w, _ := ecs.GetComponent[*components.WheelComponent](em, id)
	travel := 0.0
	s.Spin(id)
	for i := 0; i < maxTestTicks && w.IsSpinning(); i++ {
		v := w.State.AngularVelocity * w.Physics.Friction
		s.Update(1.0 / 60.0)
		travel += v
	}

	step := wheel.TwoPi / 8
	approx := travel / step
	if want := int(math.Floor(approx)) + 1; crossings != want {
		t.Errorf("crossings = %d, want %d (travel covers %.2f sections)", crossings, want, approx)
	}
}

// TestWheelPhysicsSystemIndependentWheels 多个转盘互不影响
func TestWheelPhysicsSystemIndependentWheels(t *testing.T) {
	em := ecs.NewEntityManager()
	a := newTestWheel(em, "a", 4, render.Layout{})
	b := newTestWheel(em, "b", 4, render.Layout{})
	s := NewWheelPhysicsSystem(em)

	s.Spin(a)
	for i := 0; i < 10; i++ {
		s.Update(1.0 / 60.0)
	}

	wb, _ := ecs.GetComponent[*components.WheelComponent](em, b)
	if wb.IsSpinning() || wb.State.Rotation != 0 {
		t.Errorf("wheel b should be untouched, got %+v", wb.State)
	}

	if started := s.SpinAll(); started != 1 {
		t.Errorf("SpinAll() started %d wheels, want 1", started)
	}
}

// TestWheelPhysicsSystemEmptyWheel 没有扇区的转盘停止时不产生结果，而是通过 OnError 报告
func TestWheelPhysicsSystemEmptyWheel(t *testing.T) {
	em := ecs.NewEntityManager()
	id := newTestWheel(em, "empty", 0, render.Layout{})
	s := NewWheelPhysicsSystem(em)

	called := false
	s.OnResult = func(ecs.EntityID, *components.WheelComponent, wheel.SpinResult) { called = true }
	var errs []error
	s.OnError = func(e ecs.EntityID, err error) {
		if e != id {
			t.Errorf("OnError entity = %d, want %d", e, id)
		}
		errs = append(errs, err)
	}

	s.Spin(id)
	w, _ := ecs.GetComponent[*components.WheelComponent](em, id)
	runUntilStopped(t, s, w)

	if called {
		t.Error("OnResult should not be called for a wheel without sections")
	}
	rc, _ := ecs.GetComponent[*components.SpinResultComponent](em, id)
	if rc.HasResult {
		t.Error("empty wheel should not record a result")
	}
	if len(errs) != 1 {
		t.Fatalf("OnError called %d times, want 1", len(errs))
	}
	if !errors.Is(errs[0], wheel.ErrInvalidState) {
		t.Errorf("OnError error = %v, want wheel.ErrInvalidState", errs[0])
	}
}
