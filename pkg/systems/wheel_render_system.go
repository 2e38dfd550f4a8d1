package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/wheel/pkg/components"
	"github.com/decker502/wheel/pkg/config"
	"github.com/decker502/wheel/pkg/ecs"
	"github.com/decker502/wheel/pkg/render"
	"github.com/decker502/wheel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	// TitleColor 转盘标题颜色
	TitleColor = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	// SpinningTextColor 旋转中提示文字颜色
	SpinningTextColor = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
)

// resultSlide 结果文字淡入时的上移距离（像素）
const resultSlide = 8.0

// WheelRenderSystem 绘制所有转盘：标题、盘面、指针与结果文字
type WheelRenderSystem struct {
	entityManager *ecs.EntityManager
	surface       *render.EbitenSurface

	// FixedFont 为 true 时忽略转盘配置，统一使用固定字号
	FixedFont bool
}

// NewWheelRenderSystem 创建渲染系统
// source 为标签字体，可通过 render.NewLabelFontSource 获得
func NewWheelRenderSystem(em *ecs.EntityManager, source *text.GoTextFaceSource) *WheelRenderSystem {
	return &WheelRenderSystem{
		entityManager: em,
		surface:       render.NewEbitenSurface(nil, source),
	}
}

// Draw 绘制到屏幕
func (s *WheelRenderSystem) Draw(screen *ebiten.Image) {
	s.surface.Reset(screen)
	s.DrawTo(s.surface)
}

// DrawTo 绘制到任意 Surface
// 每个转盘只依赖当前状态，不保留上一帧的任何东西
func (s *WheelRenderSystem) DrawTo(dst render.Surface) {
	ids := ecs.GetEntitiesWith2[*components.WheelComponent, *components.WheelLayoutComponent](s.entityManager)
	for _, id := range ids {
		w, _ := ecs.GetComponent[*components.WheelComponent](s.entityManager, id)
		layout, _ := ecs.GetComponent[*components.WheelLayoutComponent](s.entityManager, id)
		if layout.Wheel.Radius <= 0 {
			continue
		}

		s.drawTitle(dst, w, layout.Panel)

		render.Render(dst, *w.State, layout.Wheel, render.Options{
			AdaptiveSizing: w.AdaptiveSizing && !s.FixedFont,
		})
		render.RenderPointer(dst, layout.Wheel)

		if result, ok := ecs.GetComponent[*components.SpinResultComponent](s.entityManager, id); ok {
			s.drawResult(dst, w, result, layout.Panel)
		}
	}
}

func (s *WheelRenderSystem) drawTitle(dst render.Surface, w *components.WheelComponent, panel config.PanelRect) {
	if w.Title == "" {
		return
	}
	x := panel.X + panel.Width/2
	y := panel.Y + config.TitleAreaHeight/2 + config.TitleFontSize/3
	dst.FillText(w.Title, config.TitleFontSize, x, y, TitleColor)
}

// drawResult 结果文字使用选中扇区的颜色，并在 ResultFadeSeconds 内淡入
func (s *WheelRenderSystem) drawResult(dst render.Surface, w *components.WheelComponent, result *components.SpinResultComponent, panel config.PanelRect) {
	x := panel.X + panel.Width/2
	y := panel.Y + panel.Height - config.ResultAreaHeight/2 + config.ResultFontSize/3

	if w.IsSpinning() {
		dst.FillText("Spinning...", config.HintFontSize, x, y, SpinningTextColor)
		return
	}
	if !result.HasResult {
		return
	}

	progress := utils.EaseOutCubic(result.Elapsed / config.ResultFadeSeconds)
	clr, err := result.Result.Section.RGBA()
	if err != nil {
		clr = render.TextColor
	}
	faded := color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: uint8(255 * progress)}

	label := fmt.Sprintf("You got: %s!", result.Result.Section.Label)
	dst.FillText(label, config.ResultFontSize, x, y+utils.Lerp(resultSlide, 0, progress), faded)
}
