package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/wheel/pkg/components"
	"github.com/decker502/wheel/pkg/config"
	"github.com/decker502/wheel/pkg/ecs"
	"github.com/decker502/wheel/pkg/entities"
	"github.com/decker502/wheel/pkg/game"
	"github.com/decker502/wheel/pkg/modules"
	"github.com/decker502/wheel/pkg/render"
	"github.com/decker502/wheel/pkg/systems"
	"github.com/decker502/wheel/pkg/utils"
	"github.com/decker502/wheel/pkg/wheel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	// BackgroundColor 场景背景色
	BackgroundColor = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	// HintColor 底部提示文字颜色
	HintColor = color.RGBA{R: 0x99, G: 0x99, B: 0xaa, A: 0xff}
)

// statusSeconds 状态消息（重新加载、切换设置）的显示时长
const statusSeconds = 2.5

// WheelSceneOptions 创建转盘场景所需的依赖
type WheelSceneOptions struct {
	Wheels     *config.WheelsConfig   // 已加载的转盘配置
	ConfigPath string                 // 重新加载时读取的路径，为空表示内置配置
	Rand       wheel.RandSource       // 起转速度与随机颜色的随机源
	FontSource *text.GoTextFaceSource // 标签与提示文字字体
	Settings   *game.SettingsManager  // 可为 nil
	History    *game.HistoryManager   // 可为 nil
	Audio      *game.AudioManager     // 可为 nil
	FixedFont  bool                   // 本次运行使用固定字号，不写入设置
}

// WheelScene 并排显示多个独立转盘的场景
//
// 每个转盘都是一个 ECS 实体；输入系统把点击映射为旋转请求，
// 物理系统每个 tick 推进并在停止时结算，渲染系统只根据当前状态绘制。
type WheelScene struct {
	entityManager *ecs.EntityManager
	physicsSystem *systems.WheelPhysicsSystem
	inputSystem   *systems.WheelInputSystem
	renderSystem  *systems.WheelRenderSystem
	historyPanel  *modules.HistoryPanelModule

	settings *game.SettingsManager
	history  *game.HistoryManager
	audio    *game.AudioManager

	configPath string
	rng        wheel.RandSource

	wheels []ecs.EntityID // 按配置文件顺序排列，决定面板位置
	width  int
	height int

	hintFace    *text.GoTextFace
	status      string
	statusTimer float64
}

// NewWheelScene 创建转盘场景并为每个配置创建转盘实体
func NewWheelScene(opts WheelSceneOptions) (*WheelScene, error) {
	em := ecs.NewEntityManager()
	physics := systems.NewWheelPhysicsSystem(em)

	s := &WheelScene{
		entityManager: em,
		physicsSystem: physics,
		inputSystem:   systems.NewWheelInputSystem(em, physics),
		renderSystem:  systems.NewWheelRenderSystem(em, opts.FontSource),
		settings:      opts.Settings,
		history:       opts.History,
		audio:         opts.Audio,
		configPath:    opts.ConfigPath,
		rng:           opts.Rand,
		width:         config.GameWindowWidth,
		height:        config.GameWindowHeight,
		hintFace:      &text.GoTextFace{Source: opts.FontSource, Size: config.HintFontSize},
	}

	for i := range opts.Wheels.Wheels {
		id, err := entities.NewWheelEntity(em, &opts.Wheels.Wheels[i], opts.Rand)
		if err != nil {
			return nil, fmt.Errorf("failed to create wheel: %w", err)
		}
		s.wheels = append(s.wheels, id)
	}

	s.renderSystem.FixedFont = opts.FixedFont
	if s.settings != nil && s.settings.GetSettings().FixedFont {
		s.renderSystem.FixedFont = true
	}

	physics.OnTick = s.onTick
	physics.OnResult = s.onResult
	physics.OnError = s.onSpinError
	s.inputSystem.OnReload = func() { s.Reload() }
	s.inputSystem.OnToggleFont = s.toggleFont
	s.inputSystem.OnToggleSound = s.toggleSound
	s.historyPanel = modules.NewHistoryPanelModule(s.history, opts.FontSource, s.width, s.height, nil)
	s.inputSystem.OnToggleHistory = s.historyPanel.Toggle

	s.relayout()
	log.Printf("[WheelScene] Created with %d wheels", len(s.wheels))
	return s, nil
}

// Update 每个 tick 调用一次
// 历史面板打开时由面板接管输入，转盘照常推进
func (s *WheelScene) Update(deltaTime float64) {
	if s.historyPanel.IsActive() {
		s.historyPanel.Update()
	} else {
		s.inputSystem.Update()
	}
	s.step(deltaTime)
}

// step 推进物理与状态消息，不读取输入
func (s *WheelScene) step(deltaTime float64) {
	s.physicsSystem.Update(deltaTime)

	if s.statusTimer > 0 {
		s.statusTimer -= deltaTime
		if s.statusTimer <= 0 {
			s.status = ""
		}
	}
}

// Draw 绘制背景、所有转盘与底部提示
func (s *WheelScene) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)
	s.renderSystem.Draw(screen)

	hint := s.status
	if hint == "" {
		hint = s.hintText()
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	op.GeoM.Translate(float64(s.width)/2, float64(s.height)-4)
	op.ColorScale.ScaleWithColor(HintColor)
	text.Draw(screen, hint, s.hintFace, op)

	s.historyPanel.Draw(screen)
}

// Resize 实现 game.Resizable，窗口尺寸变化时重新布局
func (s *WheelScene) Resize(width, height int) {
	s.width, s.height = width, height
	s.historyPanel.Resize(width, height)
	s.relayout()
}

// relayout 把窗口横向均分给各个转盘，并同步历史面板的转盘列表
func (s *WheelScene) relayout() {
	ids := make([]string, 0, len(s.wheels))
	for _, id := range s.wheels {
		if w, ok := ecs.GetComponent[*components.WheelComponent](s.entityManager, id); ok {
			ids = append(ids, w.ID)
		}
	}
	s.historyPanel.SetWheelIDs(ids)

	panels := config.SplitPanels(float64(s.width), float64(s.height), len(s.wheels))
	for i, id := range s.wheels {
		layout, ok := ecs.GetComponent[*components.WheelLayoutComponent](s.entityManager, id)
		if !ok {
			continue
		}
		area := panels[i].WheelArea()
		layout.Panel = panels[i]
		layout.Wheel = render.FitLayout(area.X, area.Y, area.Width, area.Height)
	}
}

// Reload 重新读取转盘配置
//
// 已有转盘保留旋转角，只替换扇区与参数；新出现的转盘被创建，
// 配置中已删除的转盘被移除。读取或校验失败时保持现有转盘不变。
func (s *WheelScene) Reload() error {
	cfg, err := config.LoadWheelConfig(s.configPath, s.rng)
	if err != nil {
		log.Printf("[WheelScene] Reload failed: %v", err)
		s.setStatus("Reload failed, keeping current wheels")
		return err
	}

	keep := make(map[ecs.EntityID]bool, len(cfg.Wheels))
	ordered := make([]ecs.EntityID, 0, len(cfg.Wheels))
	for i := range cfg.Wheels {
		wc := &cfg.Wheels[i]
		if id, ok := entities.FindWheelEntity(s.entityManager, wc.ID); ok {
			if err := entities.ApplyWheelConfig(s.entityManager, id, wc); err != nil {
				return err
			}
			keep[id] = true
			ordered = append(ordered, id)
			continue
		}
		id, err := entities.NewWheelEntity(s.entityManager, wc, s.rng)
		if err != nil {
			return err
		}
		keep[id] = true
		ordered = append(ordered, id)
	}

	for _, id := range s.wheels {
		if !keep[id] {
			s.entityManager.DestroyEntity(id)
		}
	}
	s.entityManager.RemoveMarkedEntities()
	s.wheels = ordered

	s.relayout()
	s.setStatus(fmt.Sprintf("Reloaded %d wheels", len(s.wheels)))
	log.Printf("[WheelScene] Reloaded configuration: %d wheels", len(s.wheels))
	return nil
}

// Wheels 返回当前的转盘实体，按面板顺序
func (s *WheelScene) Wheels() []ecs.EntityID {
	return append([]ecs.EntityID(nil), s.wheels...)
}

// HistoryPanel 返回历史记录面板
func (s *WheelScene) HistoryPanel() *modules.HistoryPanelModule {
	return s.historyPanel
}

// EntityManager 返回场景的实体管理器
func (s *WheelScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

func (s *WheelScene) onTick(ecs.EntityID, int) {
	if s.audio != nil {
		s.audio.PlayTick()
	}
}

func (s *WheelScene) onResult(_ ecs.EntityID, w *components.WheelComponent, result wheel.SpinResult) {
	if s.history == nil {
		return
	}
	entry := game.HistoryEntry{
		WheelID: w.ID,
		Label:   result.Section.Label,
		Color:   result.Section.Color,
	}
	if err := s.history.Record(entry); err != nil {
		log.Printf("[WheelScene] Warning: Failed to record result: %v", err)
	}
}

// onSpinError 转盘停止却没有结果时提示用户
func (s *WheelScene) onSpinError(id ecs.EntityID, err error) {
	log.Printf("[WheelScene] Warning: %v", err)
	name := "Wheel"
	if w, ok := ecs.GetComponent[*components.WheelComponent](s.entityManager, id); ok && w.Title != "" {
		name = w.Title
	}
	s.setStatus(fmt.Sprintf("%s stopped without a result", name))
}

func (s *WheelScene) toggleFont() {
	fixed := !s.renderSystem.FixedFont
	if s.settings != nil {
		s.settings.SaveFixedFont(fixed)
	}
	s.renderSystem.FixedFont = fixed
	if fixed {
		s.setStatus("Label size: fixed")
	} else {
		s.setStatus("Label size: adaptive")
	}
}

func (s *WheelScene) toggleSound() {
	if s.settings == nil {
		return
	}
	if s.settings.ToggleSound() {
		s.setStatus("Sound on")
	} else {
		s.setStatus("Sound off")
	}
}

func (s *WheelScene) setStatus(msg string) {
	s.status = msg
	s.statusTimer = statusSeconds
}

func (s *WheelScene) hintText() string {
	if utils.IsMobile() {
		return "Tap a wheel to spin"
	}
	return "Click a wheel or press Space to spin  ·  R reload  ·  F label size  ·  M sound  ·  H history"
}
