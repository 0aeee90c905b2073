package systems

import (
	"github.com/decker502/blackhole/pkg/components"
	"github.com/decker502/blackhole/pkg/config"
	"github.com/decker502/blackhole/pkg/ecs"
	"github.com/decker502/blackhole/pkg/game"
	"github.com/decker502/blackhole/pkg/utils"
)

// DeflectionSystem 二次偏转通道（透镜近似）
//
// 对每个自由光子施加一个固定模长的切向速度增量：
// 取光子相对黑洞中心的极角 θ，把向量 (偏转力度, 0) 旋转 2θ 后
// 加到速度上。无论光子在视界内外，公式相同，产生一致的涡旋偏转。
//
// 俘获光子被跳过：螺旋推进由 MotionSystem 独占，
// 每 tick 恰好一次（见 TestDeflectionSkipsCapturedPhotons）。
type DeflectionSystem struct {
	entityManager *ecs.EntityManager
	gravitySource *game.GravitySource
	simConfig     *config.SimulationConfig
}

// NewDeflectionSystem 创建偏转系统
func NewDeflectionSystem(em *ecs.EntityManager, gs *game.GravitySource, cfg *config.SimulationConfig) *DeflectionSystem {
	return &DeflectionSystem{
		entityManager: em,
		gravitySource: gs,
		simConfig:     cfg,
	}
}

// Update 对所有自由光子施加切向偏转
func (s *DeflectionSystem) Update(deltaTime float64) {
	photons := ecs.GetEntitiesWith3[
		*components.PhotonComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range photons {
		photon, ok := ecs.GetComponent[*components.PhotonComponent](s.entityManager, id)
		if !ok || photon.State != components.CaptureStateFree {
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

		angle := s.gravitySource.AngleTo(pos.X, pos.Y)
		nudge := utils.Vector2{X: s.simConfig.DeflectionMagnitude}.Rotate(2 * angle)
		vel.VX += nudge.X
		vel.VY += nudge.Y
	}
}
