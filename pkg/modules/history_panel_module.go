package modules

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"slices"

	"github.com/decker502/wheel/pkg/game"
	"github.com/decker502/wheel/pkg/render"
	"github.com/decker502/wheel/pkg/utils"
	"github.com/decker502/wheel/pkg/wheel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	historyPanelMaxWidth  = 440.0
	historyPanelMaxHeight = 480.0
	historyPanelMargin    = 20.0
	historyTitleSize      = 20.0
	historyLineSize       = 15.0
	historyLineHeight     = 24.0
	historyHeaderHeight   = 56.0
	historyFooterHeight   = 36.0
	historySwatchSize     = 12.0
)

var (
	overlayColor      = color.RGBA{A: 0x99}
	historyPanelColor = color.RGBA{R: 0x24, G: 0x24, B: 0x3a, A: 0xff}
	historyTextColor  = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	historyDimColor   = color.RGBA{R: 0x88, G: 0x88, B: 0x99, A: 0xff}
)

// HistoryPanelModule 最近旋转结果面板
//
// 职责：
//   - 以半透明遮罩覆盖转盘，居中显示最近的结果（最新的在最上面）
//   - 面板打开时拦截输入：H / Esc / 点击关闭，Tab 切换只看某个转盘，C 清空记录
//
// 面板只读取 HistoryManager，不持有自己的数据。
type HistoryPanelModule struct {
	history *game.HistoryManager
	surface *render.EbitenSurface

	visible bool

	// 按转盘过滤：filter 为空表示显示全部
	wheelIDs []string
	filter   string

	// 回调函数
	onClose func()

	// 屏幕尺寸
	windowWidth  int
	windowHeight int
}

// NewHistoryPanelModule 创建历史记录面板
//
// 参数:
//   - history: 历史记录管理器，可为 nil（面板显示为空）
//   - source: 面板文字字体
//   - windowWidth, windowHeight: 当前窗口尺寸
//   - onClose: 关闭面板回调函数（可选）
func NewHistoryPanelModule(history *game.HistoryManager, source *text.GoTextFaceSource, windowWidth, windowHeight int, onClose func()) *HistoryPanelModule {
	return &HistoryPanelModule{
		history:      history,
		surface:      render.NewEbitenSurface(nil, source),
		onClose:      onClose,
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
	}
}

// Show 显示面板
func (m *HistoryPanelModule) Show() {
	m.visible = true
	log.Printf("[HistoryPanelModule] History panel shown")
}

// Hide 隐藏面板
func (m *HistoryPanelModule) Hide() {
	if !m.visible {
		return
	}
	m.visible = false
	log.Printf("[HistoryPanelModule] History panel hidden")
	if m.onClose != nil {
		m.onClose()
	}
}

// Toggle 切换显示状态
func (m *HistoryPanelModule) Toggle() {
	if m.visible {
		m.Hide()
	} else {
		m.Show()
	}
}

// IsActive 面板是否显示中
func (m *HistoryPanelModule) IsActive() bool {
	return m.visible
}

// Resize 更新窗口尺寸
func (m *HistoryPanelModule) Resize(width, height int) {
	m.windowWidth, m.windowHeight = width, height
}

// SetWheelIDs 设置可供过滤的转盘 ID（按面板顺序）
// 当前过滤的转盘已不存在时恢复为显示全部
func (m *HistoryPanelModule) SetWheelIDs(ids []string) {
	m.wheelIDs = append([]string(nil), ids...)
	if m.filter != "" && !slices.Contains(m.wheelIDs, m.filter) {
		m.filter = ""
	}
}

// CycleFilter 按 全部 → 第一个转盘 → … → 全部 的顺序切换过滤
func (m *HistoryPanelModule) CycleFilter() {
	next := 0
	if m.filter != "" {
		next = slices.Index(m.wheelIDs, m.filter) + 1
	}
	if next >= len(m.wheelIDs) {
		m.filter = ""
	} else {
		m.filter = m.wheelIDs[next]
	}
	log.Printf("[HistoryPanelModule] Filter: %q", m.filter)
}

// Filter 当前过滤的转盘 ID，空字符串表示全部
func (m *HistoryPanelModule) Filter() string {
	return m.filter
}

// Update 面板显示时处理输入
func (m *HistoryPanelModule) Update() {
	if !m.visible {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		m.ClearHistory()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		m.CycleFilter()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.Hide()
		return
	}
	if clicked, _, _ := utils.IsJustTouchedOrClicked(); clicked {
		m.Hide()
	}
}

// ClearHistory 清空历史记录
func (m *HistoryPanelModule) ClearHistory() {
	if m.history == nil {
		return
	}
	if err := m.history.Clear(); err != nil {
		log.Printf("[HistoryPanelModule] Warning: Failed to clear history: %v", err)
	}
}

// panelRect 面板矩形（居中）
func (m *HistoryPanelModule) panelRect() (x, y, w, h float64) {
	w = math.Min(historyPanelMaxWidth, float64(m.windowWidth)-2*historyPanelMargin)
	h = math.Min(historyPanelMaxHeight, float64(m.windowHeight)-2*historyPanelMargin)
	x = (float64(m.windowWidth) - w) / 2
	y = (float64(m.windowHeight) - h) / 2
	return x, y, w, h
}

// VisibleEntries 能放进面板的记录，最新的在前
func (m *HistoryPanelModule) VisibleEntries() []game.HistoryEntry {
	if m.history == nil {
		return nil
	}
	_, _, _, h := m.panelRect()
	capacity := int((h - historyHeaderHeight - historyFooterHeight) / historyLineHeight)
	if capacity <= 0 {
		return nil
	}

	entries := m.history.Entries()
	if m.filter != "" {
		entries = m.history.ForWheel(m.filter)
	}
	out := make([]game.HistoryEntry, 0, min(capacity, len(entries)))
	for i := len(entries) - 1; i >= 0 && len(out) < capacity; i-- {
		out = append(out, entries[i])
	}
	return out
}

// Draw 绘制到屏幕
func (m *HistoryPanelModule) Draw(screen *ebiten.Image) {
	if !m.visible {
		return
	}
	m.surface.Reset(screen)
	m.DrawTo(m.surface)
}

// DrawTo 绘制遮罩、面板背景、标题与每条记录
func (m *HistoryPanelModule) DrawTo(dst render.Surface) {
	if !m.visible {
		return
	}

	ww, wh := float64(m.windowWidth), float64(m.windowHeight)
	dst.FillPolygon(rect(0, 0, ww, wh), overlayColor)

	x, y, w, h := m.panelRect()
	dst.FillPolygon(rect(x, y, w, h), historyPanelColor)

	cx := x + w/2
	title := "Recent spins"
	if m.filter != "" {
		title = fmt.Sprintf("Recent spins: %s", m.filter)
	}
	dst.FillText(title, historyTitleSize, cx, y+historyHeaderHeight/2+historyTitleSize/3, historyTextColor)

	entries := m.VisibleEntries()
	if len(entries) == 0 {
		dst.FillText("No spins yet", historyLineSize, cx, y+historyHeaderHeight+historyLineHeight, historyDimColor)
	}
	for i, e := range entries {
		line := fmt.Sprintf("%s: %s", e.WheelID, e.Label)
		baseline := y + historyHeaderHeight + float64(i+1)*historyLineHeight - historyLineHeight/3

		swatch, err := wheel.ParseColor(e.Color)
		if err != nil {
			swatch = render.FallbackColor
		}
		textWidth := dst.MeasureText(line, historyLineSize)
		sx := cx - textWidth/2 - historySwatchSize - 8
		dst.FillPolygon(rect(sx, baseline-historySwatchSize, historySwatchSize, historySwatchSize), swatch)
		dst.FillText(line, historyLineSize, cx, baseline, historyTextColor)
	}

	dst.FillText("H / Esc close  ·  Tab wheel  ·  C clear", historyLineSize-2, cx, y+h-historyFooterHeight/2+4, historyDimColor)
}

func rect(x, y, w, h float64) []render.Point {
	return []render.Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}
