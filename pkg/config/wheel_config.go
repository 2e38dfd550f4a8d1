package config

import (
	"fmt"
	"os"

	"github.com/decker502/wheel/pkg/embedded"
	"github.com/decker502/wheel/pkg/wheel"
	"gopkg.in/yaml.v3"
)

// DefaultWheelConfigPath 内置转盘配置在嵌入资源中的路径
const DefaultWheelConfigPath = "data/wheels.yaml"

// MinSections 每个转盘至少需要的扇区数
const MinSections = 2

// SectionEntry YAML 中的一个扇区
// 既可以写成完整映射 {label, color}，也可以只写一个字符串作为标签（颜色随机）
type SectionEntry struct {
	wheel.Section
}

// UnmarshalYAML 支持标量与映射两种写法
func (e *SectionEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		e.Label = value.Value
		return nil
	}
	return value.Decode(&e.Section)
}

// WheelConfig 单个转盘的配置
type WheelConfig struct {
	ID             string         `yaml:"id"`             // 转盘唯一标识，如 "activity"
	Title          string         `yaml:"title"`          // 显示在转盘上方的标题
	AdaptiveSizing *bool          `yaml:"adaptiveSizing"` // 按标签长度选择字号，缺省为 true
	Physics        wheel.Physics  `yaml:"physics"`        // 物理参数，缺省字段使用默认值
	Sections       []SectionEntry `yaml:"sections"`
}

// UnmarshalYAML 先填入默认物理参数再解码
// 文件中缺省的物理字段保持默认值，显式写出的值（包括 0）原样保留并交给校验
func (c *WheelConfig) UnmarshalYAML(value *yaml.Node) error {
	type rawWheelConfig WheelConfig
	raw := rawWheelConfig{Physics: wheel.DefaultPhysics()}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*c = WheelConfig(raw)
	return nil
}

// WheelSections 返回扇区列表
func (c *WheelConfig) WheelSections() []wheel.Section {
	out := make([]wheel.Section, len(c.Sections))
	for i, e := range c.Sections {
		out[i] = e.Section
	}
	return out
}

// IsAdaptive 返回是否启用自适应字号
func (c *WheelConfig) IsAdaptive() bool {
	return c.AdaptiveSizing == nil || *c.AdaptiveSizing
}

// WheelsConfig 转盘配置文件
type WheelsConfig struct {
	Wheels []WheelConfig `yaml:"wheels"`
}

// Find 按 ID 查找转盘配置
func (c *WheelsConfig) Find(id string) (*WheelConfig, bool) {
	for i := range c.Wheels {
		if c.Wheels[i].ID == id {
			return &c.Wheels[i], true
		}
	}
	return nil, false
}

// LoadWheelConfig 从磁盘加载转盘配置
// path 为空时加载内置配置
func LoadWheelConfig(path string, rng wheel.RandSource) (*WheelsConfig, error) {
	if path == "" {
		return LoadEmbeddedWheelConfig(rng)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wheel config file %s: %w", path, err)
	}
	return ParseWheelConfig(data, path, rng)
}

// LoadEmbeddedWheelConfig 加载内置的转盘配置
func LoadEmbeddedWheelConfig(rng wheel.RandSource) (*WheelsConfig, error) {
	data, err := embedded.ReadFile(DefaultWheelConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded wheel config: %w", err)
	}
	return ParseWheelConfig(data, DefaultWheelConfigPath, rng)
}

// ParseWheelConfig 解析转盘配置
// source 仅用于错误信息；rng 用于为未指定颜色的扇区生成霓虹色，为 nil 时使用按时间播种的随机源
func ParseWheelConfig(data []byte, source string, rng wheel.RandSource) (*WheelsConfig, error) {
	if rng == nil {
		rng = wheel.NewRand(0)
	}

	var cfg WheelsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse wheel config YAML from %s: %w", source, err)
	}

	applyWheelDefaults(&cfg, rng)

	if err := validateWheelConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid wheel config in %s: %w", source, err)
	}
	return &cfg, nil
}

// applyWheelDefaults 为缺失的 ID 与颜色设置默认值（物理参数的默认值在解码时填入）
func applyWheelDefaults(cfg *WheelsConfig, rng wheel.RandSource) {
	for i := range cfg.Wheels {
		w := &cfg.Wheels[i]
		if w.ID == "" {
			w.ID = fmt.Sprintf("wheel-%d", i+1)
		}
		for j := range w.Sections {
			if w.Sections[j].Color == "" {
				w.Sections[j].Color = wheel.NeonColor(rng)
			}
		}
	}
}

// validateWheelConfig 验证必填字段
func validateWheelConfig(cfg *WheelsConfig) error {
	if len(cfg.Wheels) == 0 {
		return fmt.Errorf("no wheels defined")
	}

	seen := make(map[string]bool, len(cfg.Wheels))
	for _, w := range cfg.Wheels {
		if seen[w.ID] {
			return fmt.Errorf("duplicate wheel id %q", w.ID)
		}
		seen[w.ID] = true

		if len(w.Sections) < MinSections {
			return fmt.Errorf("wheel %q: needs at least %d sections, got %d", w.ID, MinSections, len(w.Sections))
		}
		if err := w.Physics.Validate(); err != nil {
			return fmt.Errorf("wheel %q: %w", w.ID, err)
		}
		for j, s := range w.Sections {
			if s.Label == "" {
				return fmt.Errorf("wheel %q: section %d has an empty label", w.ID, j)
			}
			if _, err := s.RGBA(); err != nil {
				return fmt.Errorf("wheel %q: section %q: %w", w.ID, s.Label, err)
			}
		}
	}
	return nil
}
