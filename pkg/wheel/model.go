package wheel

// Model 把状态、校验过的物理参数和随机源绑定在一起
// 适合只关心单个转盘的调用方；ECS 组件直接使用 State 与自由函数
type Model struct {
	State   *State
	Physics Physics
	rng     RandSource
}

// NewModel 创建转盘模型，物理参数退化时返回 ErrInvalidConfig
func NewModel(sections []Section, p Physics, rng RandSource) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return &Model{
		State:   NewState(sections),
		Physics: p,
		rng:     rng,
	}, nil
}

// StartSpin 见 StartSpin
func (m *Model) StartSpin() bool {
	return StartSpin(m.State, m.Physics, m.rng)
}

// Advance 见 Advance
func (m *Model) Advance() bool {
	return Advance(m.State, m.Physics)
}

// Resolve 见 Resolve
func (m *Model) Resolve() (SpinResult, error) {
	return Resolve(*m.State)
}

// Finish 见 Finish
func (m *Model) Finish() (SpinResult, error) {
	return Finish(m.State)
}

// Simulate 从当前旋转角开始把一次旋转跑完，见 SimulateSpin
func (m *Model) Simulate() (Simulation, error) {
	return SimulateSpin(m.State, m.Physics, m.rng)
}

// Snapshot 返回当前状态的副本，供渲染使用
func (m *Model) Snapshot() State {
	s := *m.State
	s.Sections = append([]Section(nil), m.State.Sections...)
	return s
}
