package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/wheel/pkg/embedded"
	"github.com/decker502/wheel/pkg/wheel"
)

// TestParseWheelConfig 测试完整配置的解析
func TestParseWheelConfig(t *testing.T) {
	data := []byte(`
wheels:
  - id: activity
    title: "What should I do?"
    sections:
      - Read a book
      - { label: "Walk", color: "#00ff00" }
  - id: duration
    adaptiveSizing: false
    physics:
      friction: 0.95
    sections:
      - { label: "5 min", color: "red" }
      - { label: "10 min", color: "hsl(200, 80%, 50%)" }
`)

	cfg, err := ParseWheelConfig(data, "test.yaml", wheel.NewRand(1))
	if err != nil {
		t.Fatalf("ParseWheelConfig() error: %v", err)
	}
	if len(cfg.Wheels) != 2 {
		t.Fatalf("expected 2 wheels, got %d", len(cfg.Wheels))
	}

	activity, ok := cfg.Find("activity")
	if !ok {
		t.Fatal("activity wheel not found")
	}
	sections := activity.WheelSections()
	if sections[0].Label != "Read a book" {
		t.Errorf("scalar section label = %q", sections[0].Label)
	}
	if sections[0].Color == "" {
		t.Error("scalar section should receive a generated colour")
	}
	if sections[1].Color != "#00ff00" {
		t.Errorf("mapping section colour = %q, want #00ff00", sections[1].Color)
	}
	if !activity.IsAdaptive() {
		t.Error("adaptiveSizing should default to true")
	}
	if activity.Physics != wheel.DefaultPhysics() {
		t.Errorf("physics = %+v, want defaults", activity.Physics)
	}

	duration, _ := cfg.Find("duration")
	if duration.IsAdaptive() {
		t.Error("adaptiveSizing: false was ignored")
	}
	if duration.Physics.Friction != 0.95 {
		t.Errorf("friction = %v, want 0.95", duration.Physics.Friction)
	}
	if duration.Physics.MinVelocity != 0.001 {
		t.Errorf("minVelocity default not applied: %v", duration.Physics.MinVelocity)
	}
}

// TestParseWheelConfigErrors 测试非法配置
func TestParseWheelConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "没有转盘",
			yaml:    "wheels: []",
			wantErr: "no wheels",
		},
		{
			name: "扇区不足",
			yaml: `
wheels:
  - id: a
    sections: [only]
`,
			wantErr: "at least 2 sections",
		},
		{
			name: "重复ID",
			yaml: `
wheels:
  - id: a
    sections: [x, y]
  - id: a
    sections: [x, y]
`,
			wantErr: "duplicate",
		},
		{
			name: "非法颜色",
			yaml: `
wheels:
  - id: a
    sections:
      - { label: x, color: "#nothex" }
      - y
`,
			wantErr: "invalid color",
		},
		{
			name: "摩擦系数退化",
			yaml: `
wheels:
  - id: a
    physics: { friction: 1.0 }
    sections: [x, y]
`,
			wantErr: "friction",
		},
		{
			name:    "YAML 语法错误",
			yaml:    "wheels: [",
			wantErr: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWheelConfig([]byte(tt.yaml), "bad.yaml", wheel.NewRand(1))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

// TestParseWheelConfigDegeneratePhysicsIsConfigError 退化物理参数可以用 errors.Is 识别
// 显式写出的 0 不会被当作缺省值
func TestParseWheelConfigDegeneratePhysicsIsConfigError(t *testing.T) {
	tests := []struct {
		name    string
		physics string
	}{
		{"负的最小速度", "{ minVelocity: -1 }"},
		{"摩擦系数为 0", "{ friction: 0 }"},
		{"最小速度为 0", "{ minVelocity: 0 }"},
		{"摩擦与最小速度都为 0", "{ friction: 0, minVelocity: 0 }"},
		{"初速度范围颠倒", "{ minInitialVelocity: 0.5, maxInitialVelocity: 0.1 }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte("wheels:\n  - id: a\n    physics: " + tt.physics + "\n    sections: [x, y]\n")
			_, err := ParseWheelConfig(data, "bad.yaml", wheel.NewRand(1))
			if !errors.Is(err, wheel.ErrInvalidConfig) {
				t.Errorf("error = %v, want wheel.ErrInvalidConfig", err)
			}
		})
	}
}

// TestParseWheelConfigPartialPhysics 只写部分物理字段时其余字段取默认值
func TestParseWheelConfigPartialPhysics(t *testing.T) {
	data := []byte("wheels:\n  - id: a\n    physics: { maxInitialVelocity: 0.6 }\n    sections: [x, y]\n")
	cfg, err := ParseWheelConfig(data, "partial.yaml", wheel.NewRand(1))
	if err != nil {
		t.Fatalf("ParseWheelConfig() error: %v", err)
	}

	want := wheel.DefaultPhysics()
	want.MaxInitialVelocity = 0.6
	if got := cfg.Wheels[0].Physics; got != want {
		t.Errorf("physics = %+v, want %+v", got, want)
	}
}

// TestParseWheelConfigNilRand 没有传入随机源时仍能为扇区生成颜色
func TestParseWheelConfigNilRand(t *testing.T) {
	data := []byte("wheels:\n  - id: a\n    sections: [x, y]\n")
	cfg, err := ParseWheelConfig(data, "nil-rand.yaml", nil)
	if err != nil {
		t.Fatalf("ParseWheelConfig() error: %v", err)
	}
	for _, sec := range cfg.Wheels[0].WheelSections() {
		if sec.Color == "" {
			t.Errorf("section %q has no colour", sec.Label)
		}
	}
}

// TestLoadWheelConfigFromDisk 从磁盘文件加载
func TestLoadWheelConfigFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheels.yaml")
	if err := os.WriteFile(path, []byte("wheels:\n  - id: coin\n    sections: [Heads, Tails]\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadWheelConfig(path, wheel.NewRand(3))
	if err != nil {
		t.Fatalf("LoadWheelConfig() error: %v", err)
	}
	if _, ok := cfg.Find("coin"); !ok {
		t.Error("coin wheel not found")
	}

	if _, err := LoadWheelConfig(filepath.Join(t.TempDir(), "missing.yaml"), wheel.NewRand(3)); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestDefaultWheelConfigFile 仓库内置的配置文件本身必须合法
func TestDefaultWheelConfigFile(t *testing.T) {
	data, err := os.ReadFile("../../" + DefaultWheelConfigPath)
	if err != nil {
		t.Skipf("无法读取内置配置 %s: %v", DefaultWheelConfigPath, err)
	}
	cfg, err := ParseWheelConfig(data, DefaultWheelConfigPath, wheel.NewRand(1))
	if err != nil {
		t.Fatalf("built-in config invalid: %v", err)
	}
	for _, id := range []string{"activity", "duration"} {
		if _, ok := cfg.Find(id); !ok {
			t.Errorf("built-in config missing wheel %q", id)
		}
	}
}

// TestLoadEmbeddedWheelConfig 空路径加载嵌入资源
func TestLoadEmbeddedWheelConfig(t *testing.T) {
	embedded.Init(fstest.MapFS{
		DefaultWheelConfigPath: &fstest.MapFile{Data: []byte("wheels:\n  - id: dice\n    sections: [\"1\", \"2\", \"3\"]\n")},
	})

	cfg, err := LoadWheelConfig("", wheel.NewRand(5))
	if err != nil {
		t.Fatalf("LoadWheelConfig(\"\") error: %v", err)
	}
	dice, ok := cfg.Find("dice")
	if !ok {
		t.Fatal("dice wheel not found")
	}
	if len(dice.Sections) != 3 {
		t.Errorf("expected 3 sections, got %d", len(dice.Sections))
	}
}
