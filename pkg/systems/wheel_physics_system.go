package systems

import (
	"fmt"
	"log"

	"github.com/decker502/wheel/pkg/components"
	"github.com/decker502/wheel/pkg/ecs"
	"github.com/decker502/wheel/pkg/wheel"
)

// WheelPhysicsSystem 每个 tick 推进所有正在旋转的转盘
//
// 停止时结算结果并通过 OnResult 通知；无法结算（例如没有扇区）时通过 OnError 通知；
// 转过扇区边界时通过 OnTick 通知（用于播放咔哒声）。
type WheelPhysicsSystem struct {
	entityManager *ecs.EntityManager

	// OnTick 本 tick 内指针经过了 crossings 条扇区边界
	OnTick func(id ecs.EntityID, crossings int)
	// OnResult 转盘停止并得出结果
	OnResult func(id ecs.EntityID, w *components.WheelComponent, result wheel.SpinResult)
	// OnError 转盘停止但无法结算，err 包装 wheel.ErrInvalidState
	OnError func(id ecs.EntityID, err error)
}

// NewWheelPhysicsSystem 创建转盘物理系统
func NewWheelPhysicsSystem(em *ecs.EntityManager) *WheelPhysicsSystem {
	return &WheelPhysicsSystem{
		entityManager: em,
	}
}

// Spin 请求转盘开始旋转
// 转盘已经在旋转时不做任何事并返回 false
func (s *WheelPhysicsSystem) Spin(id ecs.EntityID) bool {
	w, ok := ecs.GetComponent[*components.WheelComponent](s.entityManager, id)
	if !ok {
		return false
	}
	if !wheel.StartSpin(w.State, w.Physics, w.Rand) {
		return false
	}
	w.SpinTicks = 0

	if result, ok := ecs.GetComponent[*components.SpinResultComponent](s.entityManager, id); ok {
		result.Clear()
	}

	log.Printf("[WheelPhysicsSystem] Wheel %q started spinning (v0=%.4f rad/tick)", w.ID, w.State.AngularVelocity)
	return true
}

// SpinAll 让所有静止的转盘开始旋转，返回实际开始旋转的数量
func (s *WheelPhysicsSystem) SpinAll() int {
	started := 0
	for _, id := range ecs.GetEntitiesWith1[*components.WheelComponent](s.entityManager) {
		if s.Spin(id) {
			started++
		}
	}
	return started
}

// Update 推进所有转盘一个 tick，并累计结果显示时间
func (s *WheelPhysicsSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.WheelComponent](s.entityManager) {
		w, _ := ecs.GetComponent[*components.WheelComponent](s.entityManager, id)

		if result, ok := ecs.GetComponent[*components.SpinResultComponent](s.entityManager, id); ok && result.HasResult {
			result.Elapsed += deltaTime
		}

		if !w.IsSpinning() {
			continue
		}
		s.advance(id, w)
	}
}

// advance 推进单个转盘
func (s *WheelPhysicsSystem) advance(id ecs.EntityID, w *components.WheelComponent) {
	prev := w.State.Rotation
	moving := wheel.Advance(w.State, w.Physics)

	count := wheel.CrossedBoundaries
	if w.SpinTicks == 0 {
		count = wheel.CrossedBoundariesFromStart
	}
	w.SpinTicks++

	if crossings := count(prev, w.State.AngularVelocity, w.State.SectionCount()); crossings > 0 && s.OnTick != nil {
		s.OnTick(id, crossings)
	}

	if moving {
		return
	}

	result, err := wheel.Finish(w.State)
	if err != nil {
		log.Printf("[WheelPhysicsSystem] Wheel %q stopped without a result: %v", w.ID, err)
		if s.OnError != nil {
			s.OnError(id, fmt.Errorf("wheel %q: %w", w.ID, err))
		}
		return
	}
	w.SpinCount++

	log.Printf("[WheelPhysicsSystem] Wheel %q stopped after %d ticks: #%d %q",
		w.ID, w.SpinTicks, result.Index, result.Section.Label)

	if rc, ok := ecs.GetComponent[*components.SpinResultComponent](s.entityManager, id); ok {
		rc.Set(result)
	}
	if s.OnResult != nil {
		s.OnResult(id, w, result)
	}
}
