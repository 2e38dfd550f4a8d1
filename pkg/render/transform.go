package render

import "math"

// affine 2D 仿射变换，约定与 Canvas setTransform(a, b, c, d, e, f) 相同：
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type affine struct {
	a, b, c, d, e, f float64
}

func identity() affine {
	return affine{a: 1, d: 1}
}

// translate 右乘平移矩阵
func (m affine) translate(x, y float64) affine {
	m.e += m.a*x + m.c*y
	m.f += m.b*x + m.d*y
	return m
}

// rotate 右乘旋转矩阵
func (m affine) rotate(theta float64) affine {
	sin, cos := math.Sincos(theta)
	a, b, c, d := m.a, m.b, m.c, m.d
	m.a = a*cos + c*sin
	m.b = b*cos + d*sin
	m.c = c*cos - a*sin
	m.d = d*cos - b*sin
	return m
}

func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

// angle 变换中的旋转分量
func (m affine) angle() float64 {
	return math.Atan2(m.b, m.a)
}

// scale 变换中的（等比）缩放分量
func (m affine) scale() float64 {
	return math.Hypot(m.a, m.b)
}

// transformStack Save/Restore 的共同实现
type transformStack struct {
	current affine
	saved   []affine
}

func newTransformStack() transformStack {
	return transformStack{current: identity()}
}

func (t *transformStack) Save() {
	t.saved = append(t.saved, t.current)
}

func (t *transformStack) Restore() {
	if len(t.saved) == 0 {
		return
	}
	t.current = t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
}

func (t *transformStack) Translate(x, y float64) {
	t.current = t.current.translate(x, y)
}

func (t *transformStack) Rotate(theta float64) {
	t.current = t.current.rotate(theta)
}

func (t *transformStack) reset() {
	t.current = identity()
	t.saved = t.saved[:0]
}

// arcSegments 把圆弧拆成折线时的分段数，保证每段弦长约 2 像素
func arcSegments(radius, sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) * radius / 2))
	if n < 8 {
		n = 8
	}
	if n > 720 {
		n = 720
	}
	return n
}
