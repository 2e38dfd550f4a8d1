package entities

import (
	"fmt"
	"log"

	"github.com/decker502/wheel/pkg/components"
	"github.com/decker502/wheel/pkg/config"
	"github.com/decker502/wheel/pkg/ecs"
	"github.com/decker502/wheel/pkg/wheel"
)

// NewWheelEntity 根据配置创建一个转盘实体
// 参数:
//   - manager: EntityManager 实例
//   - cfg: 转盘配置（扇区、物理参数、字号模式）
//   - rng: 起转速度随机源，每个转盘可以使用独立的随机源
//
// 返回: 创建的实体ID；物理参数退化时返回 wheel.ErrInvalidConfig
func NewWheelEntity(manager *ecs.EntityManager, cfg *config.WheelConfig, rng wheel.RandSource) (ecs.EntityID, error) {
	if err := cfg.Physics.Validate(); err != nil {
		return 0, fmt.Errorf("wheel %q: %w", cfg.ID, err)
	}

	id := manager.CreateEntity()

	manager.AddComponent(id, &components.WheelComponent{
		ID:             cfg.ID,
		Title:          cfg.Title,
		State:          wheel.NewState(cfg.WheelSections()),
		Physics:        cfg.Physics,
		Rand:           rng,
		AdaptiveSizing: cfg.IsAdaptive(),
	})

	// 布局由场景在第一次 Layout 时计算
	manager.AddComponent(id, &components.WheelLayoutComponent{})
	manager.AddComponent(id, &components.SpinResultComponent{})
	manager.AddComponent(id, &components.ClickableComponent{IsEnabled: true})

	log.Printf("[WheelFactory] Created wheel %q (entity %d) with %d sections", cfg.ID, id, len(cfg.Sections))
	return id, nil
}

// ApplyWheelConfig 用重新加载的配置更新已有的转盘实体
//
// 当前旋转角保持不变；如果转盘正在旋转，新扇区会在下一帧生效，
// 停止时按新扇区计算结果。
func ApplyWheelConfig(manager *ecs.EntityManager, id ecs.EntityID, cfg *config.WheelConfig) error {
	w, ok := ecs.GetComponent[*components.WheelComponent](manager, id)
	if !ok {
		return fmt.Errorf("entity %d has no WheelComponent", id)
	}
	if err := cfg.Physics.Validate(); err != nil {
		return fmt.Errorf("wheel %q: %w", cfg.ID, err)
	}

	w.Title = cfg.Title
	w.Physics = cfg.Physics
	w.AdaptiveSizing = cfg.IsAdaptive()
	w.State.SetSections(cfg.WheelSections())

	if result, ok := ecs.GetComponent[*components.SpinResultComponent](manager, id); ok && !w.IsSpinning() {
		result.Clear()
	}

	log.Printf("[WheelFactory] Reloaded wheel %q with %d sections", cfg.ID, len(cfg.Sections))
	return nil
}

// FindWheelEntity 按转盘 ID 查找实体
func FindWheelEntity(manager *ecs.EntityManager, wheelID string) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.WheelComponent](manager) {
		w, _ := ecs.GetComponent[*components.WheelComponent](manager, id)
		if w.ID == wheelID {
			return id, true
		}
	}
	return 0, false
}
