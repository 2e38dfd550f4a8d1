package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MaxHistoryEntries 最多保留的旋转结果条数
const MaxHistoryEntries = 20

// HistoryEntry 一次旋转的结果记录
type HistoryEntry struct {
	WheelID string    `yaml:"wheel"`
	Label   string    `yaml:"label"`
	Color   string    `yaml:"color"`
	Time    time.Time `yaml:"time"`
}

// HistoryManager 最近旋转结果的记录
// 只保存结果，不保存转盘配置本身
type HistoryManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存）
	entries      []HistoryEntry // 按时间顺序，最新的在最后
}

const (
	historyObject   = "history"
	historyProperty = "results"
)

// NewHistoryManager 创建历史记录管理器并加载已保存的记录
func NewHistoryManager(gdataManager *gdata.Manager) *HistoryManager {
	hm := &HistoryManager{gdataManager: gdataManager}
	if err := hm.Load(); err != nil {
		log.Printf("[HistoryManager] Warning: Failed to load history: %v (starting empty)", err)
	}
	return hm
}

// Load 从 gdata 加载历史记录
func (hm *HistoryManager) Load() error {
	hm.entries = nil
	if hm.gdataManager == nil || !hm.gdataManager.ObjectPropExists(historyObject, historyProperty) {
		return nil
	}

	data, err := hm.gdataManager.LoadObjectProp(historyObject, historyProperty)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	var entries []HistoryEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to unmarshal history: %w", err)
	}
	hm.entries = trimHistory(entries)

	log.Printf("[HistoryManager] Loaded %d history entries", len(hm.entries))
	return nil
}

// Save 保存历史记录到 gdata
func (hm *HistoryManager) Save() error {
	if hm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(hm.entries)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := hm.gdataManager.SaveObjectProp(historyObject, historyProperty, data); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// Record 追加一条结果并保存
// 超过 MaxHistoryEntries 时丢弃最旧的记录
func (hm *HistoryManager) Record(entry HistoryEntry) error {
	if entry.Time.IsZero() {
		entry.Time = time.Now()
	}
	hm.entries = trimHistory(append(hm.entries, entry))
	return hm.Save()
}

// Entries 返回全部记录的副本，最新的在最后
func (hm *HistoryManager) Entries() []HistoryEntry {
	return append([]HistoryEntry(nil), hm.entries...)
}

// ForWheel 返回指定转盘的记录，最新的在最后
func (hm *HistoryManager) ForWheel(wheelID string) []HistoryEntry {
	var out []HistoryEntry
	for _, e := range hm.entries {
		if e.WheelID == wheelID {
			out = append(out, e)
		}
	}
	return out
}

// Clear 清空历史记录并保存
func (hm *HistoryManager) Clear() error {
	hm.entries = nil
	return hm.Save()
}

func trimHistory(entries []HistoryEntry) []HistoryEntry {
	if len(entries) <= MaxHistoryEntries {
		return entries
	}
	return append([]HistoryEntry(nil), entries[len(entries)-MaxHistoryEntries:]...)
}
