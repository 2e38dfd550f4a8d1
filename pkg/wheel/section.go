package wheel

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Section 转盘上的一个扇区
// 扇区身份由其在转盘中的位置（索引）决定，Label/Color 只在绘制和结算时读取
type Section struct {
	Label string `yaml:"label"`
	Color string `yaml:"color"` // "#rrggbb" / "#rgb" / "hsl(h, s%, l%)" / "rgb(r, g, b)" / 颜色名
}

// RGBA 解析扇区颜色
func (s Section) RGBA() (color.RGBA, error) {
	return ParseColor(s.Color)
}

// ParseColor 把颜色字符串解析为 color.RGBA
//
// 支持的格式：
//   - 十六进制: "#ff00aa", "#f0a"
//   - HSL: "hsl(120, 80%, 60%)"
//   - RGB: "rgb(255, 0, 128)"
//   - SVG/CSS 颜色名: "red", "deepskyblue"
func ParseColor(s string) (color.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return color.RGBA{}, fmt.Errorf("%w: empty", ErrInvalidColor)

	case strings.HasPrefix(v, "#"):
		c, err := colorful.Hex(v)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		return toRGBA(c), nil

	case strings.HasPrefix(v, "hsl(") && strings.HasSuffix(v, ")"):
		args, err := parseArgs(v[len("hsl("):len(v)-1], 3)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		h := math.Mod(args[0], 360)
		if h < 0 {
			h += 360
		}
		c := colorful.Hsl(h, clamp01(args[1]/100), clamp01(args[2]/100))
		return toRGBA(c), nil

	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		args, err := parseArgs(v[len("rgb("):len(v)-1], 3)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		c := colorful.Color{R: clamp01(args[0] / 255), G: clamp01(args[1] / 255), B: clamp01(args[2] / 255)}
		return toRGBA(c), nil
	}

	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// NeonColor 生成一个高饱和度、高亮度的随机颜色（HSL 字符串）
// 色相 [0, 360)，饱和度 [70, 100)%，亮度 [50, 70)%
func NeonColor(rng RandSource) string {
	hue := int(math.Floor(rng.Float64() * 360))
	saturation := 70 + int(math.Floor(rng.Float64()*30))
	lightness := 50 + int(math.Floor(rng.Float64()*20))
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, saturation, lightness)
}

// parseArgs 解析逗号分隔的数值参数，允许 "%" 与 "deg" 后缀
func parseArgs(body string, want int) ([]float64, error) {
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d arguments, got %d", want, len(parts))
	}
	out := make([]float64, 0, want)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.TrimSuffix(p, "%")
		p = strings.TrimSuffix(p, "deg")
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
