//go:build !android

package utils

// EnsureStorageDir 桌面平台上 gdata 自行创建目录，这里什么也不做
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 桌面平台由 gdata 决定存储位置，返回空字符串
func GetStoragePath() string {
	return ""
}
