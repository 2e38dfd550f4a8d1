package wheel

import "errors"

var (
	// ErrInvalidState 转盘状态无法给出结果（例如没有任何扇区）
	ErrInvalidState = errors.New("wheel: invalid state")
	// ErrInvalidConfig 物理参数退化，会导致无限旋转或立即停止
	ErrInvalidConfig = errors.New("wheel: invalid physics config")
	// ErrInvalidColor 无法解析的颜色字符串
	ErrInvalidColor = errors.New("wheel: invalid color")
)
