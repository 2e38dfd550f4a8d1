// Package audio 生成转盘使用的合成音效
package audio

import (
	"encoding/binary"
	"math"
)

// SampleRate 音频上下文使用的采样率
const SampleRate = 48000

// TickParams 咔哒声参数
type TickParams struct {
	Frequency float64 // 基频（Hz）
	Duration  float64 // 时长（秒）
	Decay     float64 // 指数衰减速率（1/秒），越大越短促
	Amplitude float64 // 峰值幅度 0.0 ~ 1.0
}

// DefaultTickParams 扇区边界经过指针时的咔哒声
func DefaultTickParams() TickParams {
	return TickParams{
		Frequency: 1800,
		Duration:  0.03,
		Decay:     160,
		Amplitude: 0.5,
	}
}

// TickPCM 生成 16-bit 有符号小端立体声 PCM 数据
// 可直接传给 ebiten audio.Context.NewPlayerFromBytes
func TickPCM(sampleRate int, p TickParams) []byte {
	frames := int(float64(sampleRate) * p.Duration)
	if frames <= 0 {
		return nil
	}

	amp := math.Max(0, math.Min(1, p.Amplitude))
	data := make([]byte, frames*4)
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)
		v := amp * math.Exp(-p.Decay*t) * math.Sin(2*math.Pi*p.Frequency*t)
		sample := int16(v * math.MaxInt16)

		// 左右声道相同
		binary.LittleEndian.PutUint16(data[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(data[i*4+2:], uint16(sample))
	}
	return data
}
