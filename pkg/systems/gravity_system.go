package systems

import (
	"github.com/decker502/blackhole/pkg/components"
	"github.com/decker502/blackhole/pkg/config"
	"github.com/decker502/blackhole/pkg/ecs"
	"github.com/decker502/blackhole/pkg/game"
)

// GravitySystem 每 tick 对所有光子执行黑洞的拉力通道
//
// 对每个光子依次完成三件事：
//  1. 自由光子按 G*mass/r² 更新速度（r 有下限，见 GravitySource）
//  2. 真实距离小于最小安全半径的光子标记移除
//     （唯一的销毁路径；已俘获的光子同样适用，
//     螺旋收缩到安全半径以内后在这里被清掉）
//  3. 自由光子越过事件视界时转入俘获态
//
// 移除采用 EntityManager 的延迟删除，遍历期间存活集不变。
type GravitySystem struct {
	entityManager *ecs.EntityManager
	gravitySource *game.GravitySource
	simConfig     *config.SimulationConfig
}

// NewGravitySystem 创建引力系统
func NewGravitySystem(em *ecs.EntityManager, gs *game.GravitySource, cfg *config.SimulationConfig) *GravitySystem {
	return &GravitySystem{
		entityManager: em,
		gravitySource: gs,
		simConfig:     cfg,
	}
}

// Update 对所有光子执行一次拉力通道
// deltaTime 是本 tick 的固定时间步长（秒）
func (s *GravitySystem) Update(deltaTime float64) {
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
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 1. 引力加速：只作用于自由光子，俘获态的运动完全由螺旋决定
		if photon.State == components.CaptureStateFree {
			acc := s.gravitySource.AccelerationAt(pos.X, pos.Y)
			vel.VX += acc.X * deltaTime
			vel.VY += acc.Y * deltaTime
		}

		// 2. 移除检测使用未钳制的真实距离
		dist := s.gravitySource.DistanceTo(pos.X, pos.Y)
		if dist < s.simConfig.MinSafeRadius {
			s.entityManager.DestroyEntity(id)
			continue
		}

		// 3. 俘获检测：单向转移 Free -> Captured
		if photon.State == components.CaptureStateFree && dist < s.gravitySource.EventHorizonRadius() {
			angle, captured := s.gravitySource.CaptureAngleAt(pos.X, pos.Y)
			if captured {
				photon.State = components.CaptureStateCaptured
				photon.CaptureAngle = angle
				photon.CaptureRadius = s.gravitySource.EventHorizonRadius()
			}
		}
	}
}
