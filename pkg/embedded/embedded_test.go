package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/wheels.yaml": &fstest.MapFile{Data: []byte("wheels: []\n")},
	}
}

// TestInit 测试初始化与重置
func TestInit(t *testing.T) {
	Init(nil)
	if _, err := ReadFile("data/wheels.yaml"); err == nil {
		t.Error("ReadFile() should fail after Init(nil)")
	}

	Init(testFS())
	defer func() { initialized = false }()

	if _, err := ReadFile("data/wheels.yaml"); err != nil {
		t.Errorf("ReadFile() after Init() error: %v", err)
	}
}

// TestNotInitialized 测试未初始化时的各个接口
func TestNotInitialized(t *testing.T) {
	initialized = false
	const want = "embedded package not initialized, call Init() first"

	if _, err := Open("data/wheels.yaml"); err == nil || err.Error() != want {
		t.Errorf("Open() error = %v", err)
	}
	if _, err := ReadFile("data/wheels.yaml"); err == nil || err.Error() != want {
		t.Errorf("ReadFile() error = %v", err)
	}
}

// TestReadFile 测试读取嵌入文件
func TestReadFile(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"标准路径", "data/wheels.yaml", "wheels: []\n", false},
		{"带 ./ 前缀", "./data/wheels.yaml", "wheels: []\n", false},
		{"文件不存在", "data/missing.yaml", "", true},
		{"无效前缀", "assets/wheels.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

// TestOpenInvalidPrefix 测试无效路径前缀的错误信息
func TestOpenInvalidPrefix(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	_, err := Open("invalid/path/test.png")
	if err == nil {
		t.Fatal("Expected error for invalid path prefix")
	}
	if err.Error() != "unknown resource path prefix: invalid/path/test.png (must start with 'data/')" {
		t.Errorf("Unexpected error message: %v", err)
	}
}
