package systems

import (
	"math"

	"github.com/decker502/blackhole/pkg/components"
	"github.com/decker502/blackhole/pkg/config"
	"github.com/decker502/blackhole/pkg/ecs"
	"github.com/decker502/blackhole/pkg/game"
)

// spiralRadiusFloor 螺旋半径下限，防止俘获光子的位置退化到奇点本身
const spiralRadiusFloor = 1.0

// MotionSystem 根据光子状态推进位置
//
// 自由光子：显式欧拉积分 pos += vel * dt。
// 俘获光子：沿衰减螺旋向内推进，每 tick 角度递减固定步长，
// 半径随累计角度线性收缩（有下限）。
//
// 螺旋推进每 tick 恰好发生一次，且只发生在本系统中；
// DeflectionSystem 跳过俘获光子（见该系统的测试）。
type MotionSystem struct {
	entityManager *ecs.EntityManager
	gravitySource *game.GravitySource
	simConfig     *config.SimulationConfig
}

// NewMotionSystem 创建运动系统
func NewMotionSystem(em *ecs.EntityManager, gs *game.GravitySource, cfg *config.SimulationConfig) *MotionSystem {
	return &MotionSystem{
		entityManager: em,
		gravitySource: gs,
		simConfig:     cfg,
	}
}

// Update 推进所有光子一个 tick
func (s *MotionSystem) Update(deltaTime float64) {
	photons := ecs.GetEntitiesWith3[
		*components.PhotonComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range photons {
		photon, ok := ecs.GetComponent[*components.PhotonComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		switch photon.State {
		case components.CaptureStateFree:
			vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
			if !ok {
				continue
			}
			pos.X += vel.VX * deltaTime
			pos.Y += vel.VY * deltaTime

		case components.CaptureStateCaptured:
			s.advanceSpiral(photon, pos)
		}
	}
}

// advanceSpiral 俘获光子的向内螺旋推进
//
// 角度递减为顺时针旋转；半径 = max(下限, 俘获半径 - |角度|*收紧系数)，
// 位置直接由极坐标重建，不再参考速度。
func (s *MotionSystem) advanceSpiral(photon *components.PhotonComponent, pos *components.PositionComponent) {
	photon.CaptureAngle -= s.simConfig.Capture.AngularStep

	radius := photon.CaptureRadius - math.Abs(photon.CaptureAngle)*s.simConfig.Capture.SpiralTightness
	if radius < spiralRadiusFloor {
		radius = spiralRadiusFloor
	}

	center := s.gravitySource.Center()
	sin, cos := math.Sincos(photon.CaptureAngle)
	pos.X = center.X + radius*cos
	pos.Y = center.Y + radius*sin
}
