package components

// CaptureState 光子的运动状态
//
// 状态机只有两个状态和一条单向转移：
// Free --（进入事件视界）--> Captured，Captured 是终态。
type CaptureState int

const (
	// CaptureStateFree 自由飞行，牛顿式受力运动
	CaptureStateFree CaptureState = iota
	// CaptureStateCaptured 已被俘获，沿向内螺旋运动
	CaptureStateCaptured
)

// String 返回状态名称（用于日志和调试叠加层）
func (s CaptureState) String() string {
	switch s {
	case CaptureStateFree:
		return "free"
	case CaptureStateCaptured:
		return "captured"
	default:
		return "unknown"
	}
}

// PhotonComponent 单个光子的俘获状态
//
// 纯数据组件，不包含任何方法。
// CaptureAngle 和 CaptureRadius 仅在 State == CaptureStateCaptured 时有意义。
type PhotonComponent struct {
	// State 当前运动状态
	State CaptureState

	// CaptureAngle 螺旋运动的极角（弧度），每 tick 递减一个固定角度步长
	CaptureAngle float64

	// CaptureRadius 俘获发生时记录的事件视界半径，设置后不再改变
	CaptureRadius float64
}
