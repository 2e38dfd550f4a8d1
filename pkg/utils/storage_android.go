//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// androidDataRoot 应用私有数据目录的父目录
const androidDataRoot = "/data/data"

// EnsureStorageDir 在打开 gdata 之前创建 Android 上的存档目录
// gdata 使用 /data/data/{package}/ 作为根目录，但不会创建 saves 子目录；
// 目录不可写时返回错误，调用方应退回到仅内存的设置与历史记录。
func EnsureStorageDir() error {
	pkg, err := androidPackageName()
	if err != nil {
		return fmt.Errorf("failed to detect Android package: %w", err)
	}

	dir := filepath.Join(androidDataRoot, pkg, "saves")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create saves directory %s: %w", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("saves directory %s is not writable: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// androidPackageName 从 /proc/self/cmdline 读取进程名（即包名）
// cmdline 以 NUL 分隔参数，只取第一个
func androidPackageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}

// GetStoragePath 设置与历史记录所在目录，无法检测时返回空字符串
func GetStoragePath() string {
	pkg, err := androidPackageName()
	if err != nil {
		return ""
	}
	return filepath.Join(androidDataRoot, pkg)
}
