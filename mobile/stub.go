//go:build !mobile

// Package mobile 是 ebitenmobile bind 的入口。
//
// 转盘的移动端代码（mobile.go、embed.go）只在 -tags mobile 时编译；
// 普通构建只剩下这个文件，保证 ./... 能正常遍历该包。
package mobile

// Dummy 普通构建下的占位导出
func Dummy() {}
