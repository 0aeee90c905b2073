package game

import (
	"fmt"
	"math"

	"github.com/decker502/blackhole/pkg/utils"
)

// singularityEpsilon 距离小于该值时视为正好处于奇点，不施加任何力
const singularityEpsilon = 1e-5

// forceRadiusFloor 引力计算中的距离下限
// 加速度按 1/r² 计算，距离下限防止近距离时的数值爆炸；
// 注意事件视界检测和移除检测使用的是未钳制的真实距离
const forceRadiusFloor = 1.0

// GravitySource 表示模拟中唯一的大质量引力体（黑洞）
//
// 构造后所有字段不可变：中心位置、质量以及由
// 质量推导出的史瓦西半径和事件视界半径在一次模拟运行中固定不变。
type GravitySource struct {
	center              utils.Vector2
	mass                float64
	gravitationalConst  float64
	schwarzschildRadius float64
	eventHorizonRadius  float64
}

// NewGravitySource 创建黑洞
//
// 史瓦西半径 rs = 2*G*mass/c²，事件视界半径 = 2*rs。
//
// 参数:
//   - centerX, centerY: 中心位置（世界坐标）
//   - mass: 质量，必须为正
//   - g: 引力常数 G，必须为正
//   - c: 光速，必须为正
//
// 返回:
//   - *GravitySource: 黑洞实例
//   - error: 参数非正时返回错误
func NewGravitySource(centerX, centerY, mass, g, c float64) (*GravitySource, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("gravity source mass must be positive, got %v", mass)
	}
	if g <= 0 {
		return nil, fmt.Errorf("gravitational constant must be positive, got %v", g)
	}
	if c <= 0 {
		return nil, fmt.Errorf("light speed must be positive, got %v", c)
	}

	rs := 2 * g * mass / (c * c)
	return &GravitySource{
		center:              utils.Vector2{X: centerX, Y: centerY},
		mass:                mass,
		gravitationalConst:  g,
		schwarzschildRadius: rs,
		eventHorizonRadius:  2 * rs,
	}, nil
}

// Center 返回黑洞中心位置
func (gs *GravitySource) Center() utils.Vector2 {
	return gs.center
}

// Mass 返回黑洞质量
func (gs *GravitySource) Mass() float64 {
	return gs.mass
}

// SchwarzschildRadius 返回史瓦西半径 2*G*mass/c²
func (gs *GravitySource) SchwarzschildRadius() float64 {
	return gs.schwarzschildRadius
}

// EventHorizonRadius 返回事件视界半径（2倍史瓦西半径）
func (gs *GravitySource) EventHorizonRadius() float64 {
	return gs.eventHorizonRadius
}

// DistanceTo 返回 (x, y) 到黑洞中心的真实（未钳制）距离
func (gs *GravitySource) DistanceTo(x, y float64) float64 {
	return gs.center.Sub(utils.Vector2{X: x, Y: y}).Length()
}

// AccelerationAt 返回位于 (x, y) 的质点受到的瞬时引力加速度
//
// 加速度模 a = G*mass/r²，方向指向黑洞中心，
// 其中 r 为钳制后的距离 max(forceRadiusFloor, 真实距离)。
// 正好处于奇点（距离 < singularityEpsilon）时不施加力，返回零向量。
func (gs *GravitySource) AccelerationAt(x, y float64) utils.Vector2 {
	displacement := gs.center.Sub(utils.Vector2{X: x, Y: y})
	dist := displacement.Length()
	if dist <= singularityEpsilon {
		return utils.Vector2{}
	}

	r := math.Max(forceRadiusFloor, dist)
	magnitude := gs.gravitationalConst * gs.mass / (r * r)
	return displacement.Normalize().Scale(magnitude)
}

// AngleTo 返回从黑洞中心指向 (x, y) 的极角（弧度）
func (gs *GravitySource) AngleTo(x, y float64) float64 {
	return math.Atan2(y-gs.center.Y, x-gs.center.X)
}

// CaptureAngleAt 计算光子在 (x, y) 被俘获时的初始螺旋角
//
// 俘获角 = 指向中心的极角 + 到视界切面的修正角
// acos(clamp(eventHorizon/dist, -1, 1))；clamp 防止浮点越界导致
// 反三角函数的定义域错误。
//
// 前置条件是光子已越过事件视界（dist <= eventHorizonRadius）。
// 作为兜底保护，dist 超过视界时返回 (0, false)，调用方不应转移状态。
func (gs *GravitySource) CaptureAngleAt(x, y float64) (float64, bool) {
	dist := gs.DistanceTo(x, y)
	if dist > gs.eventHorizonRadius {
		return 0, false
	}
	if dist == 0 {
		// 正好处于中心：极角无定义，直接取 0
		return 0, true
	}

	angleToCenter := gs.AngleTo(x, y)
	angleToSurface := math.Acos(utils.Clamp(gs.eventHorizonRadius/dist, -1, 1))
	return angleToCenter + angleToSurface, true
}
