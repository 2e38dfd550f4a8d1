package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// RasterSurface 在内存中的 image.RGBA 上实现 Surface
// 不依赖图形设备，用于 PNG 快照和像素级测试
type RasterSurface struct {
	transformStack
	img   *image.RGBA
	font  *opentype.Font
	faces map[float64]font.Face
	z     *vector.Rasterizer
}

// NewRasterSurface 创建 width×height 的透明画布
func NewRasterSurface(width, height int) (*RasterSurface, error) {
	fnt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}
	return &RasterSurface{
		transformStack: newTransformStack(),
		img:            image.NewRGBA(image.Rect(0, 0, width, height)),
		font:           fnt,
		faces:          make(map[float64]font.Face),
		z:              vector.NewRasterizer(width, height),
	}, nil
}

// Image 返回底层图像
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

// Clear 用纯色填充整个画布并清空变换
func (s *RasterSurface) Clear(clr color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
	s.reset()
}

// EncodePNG 把画布编码为 PNG
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

func (s *RasterSurface) face(size float64) (font.Face, error) {
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	s.faces[size] = f
	return f, nil
}

// fillPoly 光栅化一个屏幕坐标下的闭合多边形
func (s *RasterSurface) fillPoly(pts []Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
	s.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		s.z.LineTo(float32(p.X), float32(p.Y))
	}
	s.z.ClosePath()
	s.z.Draw(s.img, b, image.NewUniform(clr), image.Point{})
}

// arcPoints 当前坐标系下的圆弧折线（已变换到屏幕坐标）
func (s *RasterSurface) arcPoints(radius, start, end float64) []Point {
	n := arcSegments(radius*s.current.scale(), end-start)
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		sin, cos := math.Sincos(a)
		x, y := s.current.apply(radius*cos, radius*sin)
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts
}

// radialBand 从圆心到 radius 处、角度为 angle 的一条宽度为 width 的线段
func (s *RasterSurface) radialBand(radius, angle, width float64) []Point {
	sin, cos := math.Sincos(angle)
	nx, ny := -sin*width/2, cos*width/2
	corners := [4][2]float64{
		{nx, ny},
		{radius*cos + nx, radius*sin + ny},
		{radius*cos - nx, radius*sin - ny},
		{-nx, -ny},
	}
	pts := make([]Point, 0, 4)
	for _, c := range corners {
		x, y := s.current.apply(c[0], c[1])
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts
}

// ring 内外半径之间的环形带
func (s *RasterSurface) ring(inner, outer, start, end float64) []Point {
	pts := s.arcPoints(outer, start, end)
	in := s.arcPoints(math.Max(inner, 0), start, end)
	for i := len(in) - 1; i >= 0; i-- {
		pts = append(pts, in[i])
	}
	return pts
}

// FillWedge 实现 Surface
func (s *RasterSurface) FillWedge(radius, start, end float64, clr color.Color) {
	cx, cy := s.current.apply(0, 0)
	pts := append([]Point{{X: cx, Y: cy}}, s.arcPoints(radius, start, end)...)
	s.fillPoly(pts, clr)
}

// StrokeWedge 实现 Surface
// 各段分别光栅化，避免方向相反的子路径互相抵消
func (s *RasterSurface) StrokeWedge(radius, start, end, width float64, clr color.Color) {
	s.fillPoly(s.ring(radius-width/2, radius+width/2, start, end), clr)
	s.fillPoly(s.radialBand(radius, start, width), clr)
	s.fillPoly(s.radialBand(radius, end, width), clr)
}

// FillCircle 实现 Surface
func (s *RasterSurface) FillCircle(radius float64, clr color.Color) {
	s.fillPoly(s.arcPoints(radius, 0, 2*math.Pi), clr)
}

// StrokeCircle 实现 Surface
func (s *RasterSurface) StrokeCircle(radius, width float64, clr color.Color) {
	// 分成两半，保证每个多边形都是简单多边形
	s.fillPoly(s.ring(radius-width/2, radius+width/2, 0, math.Pi), clr)
	s.fillPoly(s.ring(radius-width/2, radius+width/2, math.Pi, 2*math.Pi), clr)
}

// FillPolygon 实现 Surface
func (s *RasterSurface) FillPolygon(points []Point, clr color.Color) {
	pts := make([]Point, len(points))
	for i, p := range points {
		x, y := s.current.apply(p.X, p.Y)
		pts[i] = Point{X: x, Y: y}
	}
	s.fillPoly(pts, clr)
}

// MeasureText 实现 Surface
func (s *RasterSurface) MeasureText(str string, size float64) float64 {
	f, err := s.face(size)
	if err != nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(f, str))
}

// FillText 实现 Surface
//
// 先把文字画到一张小的透明图上，再按当前变换（含旋转）贴回画布。
func (s *RasterSurface) FillText(str string, size, x, y float64, clr color.Color) {
	f, err := s.face(size)
	if err != nil || str == "" {
		return
	}
	const pad = 2
	metrics := f.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	width := fixedToFloat(font.MeasureString(f, str))

	w := int(math.Ceil(width)) + 2*pad
	h := int(math.Ceil(ascent+descent)) + 2*pad
	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(clr),
		Face: f,
		Dot:  fixed.P(pad, pad+int(math.Ceil(ascent))),
	}
	d.DrawString(str)

	// 小图左上角在局部坐标中的位置：水平居中，基线对齐 y
	m := s.current.translate(x-width/2-pad, y-math.Ceil(ascent)-pad)
	s2d := f64.Aff3{m.a, m.c, m.e, m.b, m.d, m.f}
	draw.BiLinear.Transform(s.img, s2d, glyphs, glyphs.Bounds(), draw.Over, nil)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
