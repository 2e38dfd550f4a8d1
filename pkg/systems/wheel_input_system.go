package systems

import (
	"log"

	"github.com/decker502/wheel/pkg/components"
	"github.com/decker502/wheel/pkg/ecs"
	"github.com/decker502/wheel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WheelInputSystem 把点击和按键映射为转盘命令
//
// 操作：
//   - 点击/触摸转盘：旋转该转盘
//   - Space：旋转所有静止的转盘
//   - R：重新加载转盘配置
//   - F：切换自适应字号
//   - M：切换音效
//   - H：打开历史记录面板
type WheelInputSystem struct {
	entityManager *ecs.EntityManager
	physics       *WheelPhysicsSystem

	OnReload        func()
	OnToggleFont    func()
	OnToggleSound   func()
	OnToggleHistory func()
}

// NewWheelInputSystem 创建输入系统
func NewWheelInputSystem(em *ecs.EntityManager, physics *WheelPhysicsSystem) *WheelInputSystem {
	return &WheelInputSystem{
		entityManager: em,
		physics:       physics,
	}
}

// Update 读取本帧输入
func (s *WheelInputSystem) Update() {
	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked {
		s.HandleClick(float64(x), float64(y))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.physics.SpinAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && s.OnReload != nil {
		s.OnReload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) && s.OnToggleFont != nil {
		s.OnToggleFont()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.OnToggleSound != nil {
		s.OnToggleSound()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && s.OnToggleHistory != nil {
		s.OnToggleHistory()
	}

	// 悬停在可点击的转盘上时显示手型光标
	px, py := utils.GetPointerPosition()
	if _, ok := s.WheelAt(float64(px), float64(py)); ok {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// WheelAt 返回屏幕坐标 (x, y) 处可点击的转盘实体
func (s *WheelInputSystem) WheelAt(x, y float64) (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith2[*components.WheelLayoutComponent, *components.ClickableComponent](s.entityManager)
	for _, id := range ids {
		clickable, _ := ecs.GetComponent[*components.ClickableComponent](s.entityManager, id)
		if !clickable.IsEnabled {
			continue
		}
		layout, _ := ecs.GetComponent[*components.WheelLayoutComponent](s.entityManager, id)
		if layout.Wheel.Radius > 0 && layout.Wheel.Contains(x, y) {
			return id, true
		}
	}
	return 0, false
}

// HandleClick 处理一次点击，返回是否命中转盘
// 命中正在旋转的转盘时不做任何事
func (s *WheelInputSystem) HandleClick(x, y float64) bool {
	id, ok := s.WheelAt(x, y)
	if !ok {
		return false
	}

	if s.physics.Spin(id) {
		log.Printf("[WheelInputSystem] Click at (%.0f, %.0f) spun entity %d", x, y, id)
	}
	return true
}
