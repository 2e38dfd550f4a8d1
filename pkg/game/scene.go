package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application (e.g. the wheel board).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，用于支持窗口尺寸变化
//
// 实现此接口的场景会在逻辑屏幕尺寸变化时收到新的宽高，
// 并据此重新计算布局。
type Resizable interface {
	Resize(width, height int)
}
