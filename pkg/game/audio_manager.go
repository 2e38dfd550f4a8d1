package game

import (
	"log"

	"github.com/decker502/wheel/internal/audio"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// maxTickPlayers 同时播放的咔哒声上限
// 转盘刚起转时每帧都可能经过边界，多余的请求直接丢弃
const maxTickPlayers = 4

// AudioManager 音频管理器
// 职责：
//   - 播放扇区边界经过指针时的咔哒声
//   - 应用 SettingsManager 中的音效开关与音量
type AudioManager struct {
	context         *ebaudio.Context // 音频上下文，可为 nil（无音频设备时静默）
	settingsManager *SettingsManager // 设置管理器，可为 nil
	tickPCM         []byte           // 合成的咔哒声 PCM 数据
	players         []*ebaudio.Player
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（采样率须为 audio.SampleRate），可为 nil
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *ebaudio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         ctx,
		settingsManager: sm,
		tickPCM:         audio.TickPCM(audio.SampleRate, audio.DefaultTickParams()),
	}
}

// PlayTick 播放一次咔哒声
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlayTick() bool {
	if !am.soundEnabled() || am.context == nil {
		return false
	}

	am.releaseFinished()
	if len(am.players) >= maxTickPlayers {
		return false
	}

	player := am.context.NewPlayerFromBytes(am.tickPCM)
	player.SetVolume(am.getSoundVolume())
	player.Play()
	am.players = append(am.players, player)
	return true
}

// releaseFinished 关闭已经播放完的播放器
func (am *AudioManager) releaseFinished() {
	active := am.players[:0]
	for _, p := range am.players {
		if p.IsPlaying() {
			active = append(active, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close tick player: %v", err)
		}
	}
	am.players = active
}

// soundEnabled 检查音效是否启用
func (am *AudioManager) soundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
