package wheel

import (
	"math/rand/v2"
	"time"
)

// RandSource 均匀分布随机数源，返回 [0, 1) 区间的浮点数
// math/rand/v2 的 *rand.Rand 直接满足该接口，测试中可注入确定序列
type RandSource interface {
	Float64() float64
}

// NewRand 创建 PCG 随机源
// seed 为 0 时使用当前时间作为种子
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
