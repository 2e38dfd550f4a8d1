package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
)

// NewLabelFontSource 加载标签使用的粗体字体（内置 Go Bold）
func NewLabelFontSource() (*text.GoTextFaceSource, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}
	return source, nil
}

// EbitenSurface 在 *ebiten.Image 上实现 Surface
// 每帧通过 Reset 绑定新的目标图像，变换栈同时清空
type EbitenSurface struct {
	transformStack
	dst       *ebiten.Image
	source    *text.GoTextFaceSource
	antiAlias bool
	faces     map[float64]*text.GoTextFace
}

// NewEbitenSurface 创建绘制到 dst 的 Surface
func NewEbitenSurface(dst *ebiten.Image, source *text.GoTextFaceSource) *EbitenSurface {
	return &EbitenSurface{
		transformStack: newTransformStack(),
		dst:            dst,
		source:         source,
		antiAlias:      true,
		faces:          make(map[float64]*text.GoTextFace),
	}
}

// Reset 绑定新的目标图像并清空变换
func (s *EbitenSurface) Reset(dst *ebiten.Image) {
	s.dst = dst
	s.reset()
}

func (s *EbitenSurface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.source, Size: size}
	s.faces[size] = f
	return f
}

// wedgePath 在屏幕坐标中构建扇形路径
// 当前变换只包含平移、旋转与等比缩放，圆弧可直接换算
func (s *EbitenSurface) wedgePath(radius, start, end float64) *vector.Path {
	cx, cy := s.current.apply(0, 0)
	r := radius * s.current.scale()
	rot := s.current.angle()

	path := &vector.Path{}
	path.MoveTo(float32(cx), float32(cy))
	path.Arc(float32(cx), float32(cy), float32(r), float32(start+rot), float32(end+rot), vector.Clockwise)
	path.Close()
	return path
}

func (s *EbitenSurface) circlePath(radius float64) *vector.Path {
	cx, cy := s.current.apply(0, 0)
	r := radius * s.current.scale()

	path := &vector.Path{}
	path.MoveTo(float32(cx+r), float32(cy))
	path.Arc(float32(cx), float32(cy), float32(r), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	return path
}

func (s *EbitenSurface) drawOptions(clr color.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: s.antiAlias}
	op.ColorScale.ScaleWithColor(clr)
	return op
}

func (s *EbitenSurface) fill(path *vector.Path, clr color.Color) {
	vector.FillPath(s.dst, path, &vector.FillOptions{FillRule: vector.FillRuleNonZero}, s.drawOptions(clr))
}

func (s *EbitenSurface) stroke(path *vector.Path, width float64, clr color.Color) {
	vector.StrokePath(s.dst, path, &vector.StrokeOptions{
		Width:    float32(width * s.current.scale()),
		LineJoin: vector.LineJoinMiter,
	}, s.drawOptions(clr))
}

// FillWedge 实现 Surface
func (s *EbitenSurface) FillWedge(radius, start, end float64, clr color.Color) {
	s.fill(s.wedgePath(radius, start, end), clr)
}

// StrokeWedge 实现 Surface
func (s *EbitenSurface) StrokeWedge(radius, start, end, width float64, clr color.Color) {
	s.stroke(s.wedgePath(radius, start, end), width, clr)
}

// FillCircle 实现 Surface
func (s *EbitenSurface) FillCircle(radius float64, clr color.Color) {
	s.fill(s.circlePath(radius), clr)
}

// StrokeCircle 实现 Surface
func (s *EbitenSurface) StrokeCircle(radius, width float64, clr color.Color) {
	s.stroke(s.circlePath(radius), width, clr)
}

// FillPolygon 实现 Surface
func (s *EbitenSurface) FillPolygon(points []Point, clr color.Color) {
	if len(points) < 3 {
		return
	}
	path := &vector.Path{}
	for i, p := range points {
		x, y := s.current.apply(p.X, p.Y)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	s.fill(path, clr)
}

// MeasureText 实现 Surface
func (s *EbitenSurface) MeasureText(str string, size float64) float64 {
	return text.Advance(str, s.face(size))
}

// FillText 实现 Surface
// text/v2 以行框顶部为锚点，这里减去 ascent 使 y 对应基线
func (s *EbitenSurface) FillText(str string, size, x, y float64, clr color.Color) {
	face := s.face(size)
	ascent := face.Metrics().HAscent

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y-ascent)
	op.GeoM.Concat(s.geoM())
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterLinear
	text.Draw(s.dst, str, face, op)
}

// geoM 把当前变换转换为 ebiten.GeoM
func (s *EbitenSurface) geoM() ebiten.GeoM {
	var g ebiten.GeoM
	m := s.current
	g.SetElement(0, 0, m.a)
	g.SetElement(0, 1, m.c)
	g.SetElement(0, 2, m.e)
	g.SetElement(1, 0, m.b)
	g.SetElement(1, 1, m.d)
	g.SetElement(1, 2, m.f)
	return g
}
