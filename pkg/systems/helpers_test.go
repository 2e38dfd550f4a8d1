package systems

import (
	"github.com/decker502/wheel/pkg/components"
	"github.com/decker502/wheel/pkg/ecs"
	"github.com/decker502/wheel/pkg/render"
	"github.com/decker502/wheel/pkg/wheel"
)

// fixedRand 始终返回同一个值
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func testSections(n int) []wheel.Section {
	colors := []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#00ffff"}
	sections := make([]wheel.Section, n)
	for i := range sections {
		sections[i] = wheel.Section{Label: string(rune('A' + i)), Color: colors[i%len(colors)]}
	}
	return sections
}

// newTestWheel 创建一个位于 layout 的转盘实体
func newTestWheel(em *ecs.EntityManager, id string, n int, layout render.Layout) ecs.EntityID {
	e := em.CreateEntity()
	em.AddComponent(e, &components.WheelComponent{
		ID:             id,
		Title:          id,
		State:          wheel.NewState(testSections(n)),
		Physics:        wheel.DefaultPhysics(),
		Rand:           fixedRand(0.5),
		AdaptiveSizing: true,
	})
	em.AddComponent(e, &components.WheelLayoutComponent{Wheel: layout})
	em.AddComponent(e, &components.SpinResultComponent{})
	em.AddComponent(e, &components.ClickableComponent{IsEnabled: true})
	return e
}
