package wheel

// Simulation 一次完整旋转的统计
type Simulation struct {
	InitialVelocity float64
	Ticks           int     // 从开始到停止的 tick 数（包含最后一个 tick）
	Travel          float64 // 实际累计转过的弧度
	Result          SpinResult
}

// SimulateSpin 在无渲染的情况下把一次旋转跑完
// 物理参数非法时直接返回错误，避免死循环
func SimulateSpin(s *State, p Physics, rng RandSource) (Simulation, error) {
	if err := p.Validate(); err != nil {
		return Simulation{}, err
	}
	if len(s.Sections) == 0 {
		return Simulation{}, ErrInvalidState
	}

	StartSpin(s, p, rng)
	sim := Simulation{InitialVelocity: s.AngularVelocity}
	for {
		sim.Ticks++
		more := Advance(s, p)
		sim.Travel += s.AngularVelocity
		if !more {
			break
		}
	}

	result, err := Finish(s)
	if err != nil {
		return sim, err
	}
	sim.Result = result
	return sim, nil
}
