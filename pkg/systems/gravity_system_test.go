package systems

import (
	"testing"

	"github.com/decker502/blackhole/pkg/components"
	"github.com/decker502/blackhole/pkg/config"
	"github.com/decker502/blackhole/pkg/ecs"
	"github.com/decker502/blackhole/pkg/entities"
	"github.com/decker502/blackhole/pkg/game"
)

// 测试环境：黑洞位于 (400, 300)，mass=10000, G=2, c=30
// 事件视界半径 ≈ 88.89
func newTestWorld(t *testing.T) (*ecs.EntityManager, *game.GravitySource, *config.SimulationConfig) {
	t.Helper()
	em := ecs.NewEntityManager()
	cfg := config.DefaultSimulationConfig()
	gs, err := game.NewGravitySource(400, 300, cfg.BlackHoleMass, cfg.GravitationalConstant, cfg.LightSpeed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return em, gs, cfg
}

func getPhoton(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) (*components.PhotonComponent, *components.PositionComponent, *components.VelocityComponent) {
	t.Helper()
	photon, ok := ecs.GetComponent[*components.PhotonComponent](em, id)
	if !ok {
		t.Fatal("missing photon component")
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("missing position component")
	}
	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok {
		t.Fatal("missing velocity component")
	}
	return photon, pos, vel
}

func TestPullAcceleratesTowardCenter(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	system := NewGravitySystem(em, gs, cfg)

	// 视界外的自由光子
	id := entities.NewPhotonEntity(em, cfg, 700, 100)
	_, pos, vel := getPhoton(t, em, id)
	beforeVX, beforeVY := vel.VX, vel.VY

	system.Update(cfg.TimeStep)

	// 速度增量与（中心 - 位置）方向点积为正
	deltaVX := vel.VX - beforeVX
	deltaVY := vel.VY - beforeVY
	dot := deltaVX*(400-pos.X) + deltaVY*(300-pos.Y)
	if dot <= 0 {
		t.Errorf("velocity delta should point toward center, dot=%v", dot)
	}
}

func TestPullCapturesPhotonInsideHorizon(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	system := NewGravitySystem(em, gs, cfg)

	// 视界内（但在安全半径外）的自由光子
	id := entities.NewPhotonEntity(em, cfg, 400+50, 300)
	photon, _, _ := getPhoton(t, em, id)

	system.Update(cfg.TimeStep)

	if photon.State != components.CaptureStateCaptured {
		t.Fatal("photon inside horizon should be captured")
	}
	if photon.CaptureRadius != gs.EventHorizonRadius() {
		t.Errorf("capture radius should be the event horizon radius, got %v", photon.CaptureRadius)
	}
}

func TestPullDoesNotCaptureOutsideHorizon(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	system := NewGravitySystem(em, gs, cfg)

	id := entities.NewPhotonEntity(em, cfg, 700, 300)
	photon, _, _ := getPhoton(t, em, id)

	system.Update(cfg.TimeStep)

	if photon.State != components.CaptureStateFree {
		t.Error("photon outside horizon should stay free")
	}
}

func TestCaptureIsOneWay(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	gravity := NewGravitySystem(em, gs, cfg)
	motion := NewMotionSystem(em, gs, cfg)

	id := entities.NewPhotonEntity(em, cfg, 400+50, 300)
	photon, _, _ := getPhoton(t, em, id)

	// 俘获后经历任意多 tick 都不会回到自由态
	for i := 0; i < 200; i++ {
		gravity.Update(cfg.TimeStep)
		motion.Update(cfg.TimeStep)
		em.RemoveMarkedEntities()

		if em.EntityCount() == 0 {
			// 螺旋收缩进安全半径后被移除，属于正常生命周期终点
			return
		}
		if photon.State != components.CaptureStateCaptured {
			t.Fatalf("tick %d: captured photon reverted to %v", i, photon.State)
		}
	}
}

func TestPhotonInsideSafeRadiusRemovedWithinOneTick(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	system := NewGravitySystem(em, gs, cfg)

	// 出生在距中心 3 单位处（< 最小安全半径 5）
	id := entities.NewPhotonEntity(em, cfg, 403, 300)

	system.Update(cfg.TimeStep)
	em.RemoveMarkedEntities()

	if ecs.HasComponentOf[*components.PhotonComponent](em, id) {
		t.Error("photon spawned inside safe radius should be removed within one tick")
	}
}

func TestCapturedPhotonRemovedWhenSpiralShrinksInside(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	gravity := NewGravitySystem(em, gs, cfg)
	motion := NewMotionSystem(em, gs, cfg)

	entities.NewPhotonEntity(em, cfg, 400+80, 300)

	// 螺旋每 tick 收缩 angularStep*spiralTightness = 0.25 单位，
	// 从约 88.9 收缩到安全半径 5 需要几百个 tick
	for i := 0; i < 2000; i++ {
		gravity.Update(cfg.TimeStep)
		motion.Update(cfg.TimeStep)
		em.RemoveMarkedEntities()
		if em.EntityCount() == 0 {
			return
		}
	}
	t.Error("captured photon should eventually shrink inside the safe radius and be removed")
}

func TestDestructionIsTheOnlyRemovalPath(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	system := NewGravitySystem(em, gs, cfg)

	// 视界内但安全半径外：俘获但不销毁
	entities.NewPhotonEntity(em, cfg, 400+30, 300)

	system.Update(cfg.TimeStep)
	em.RemoveMarkedEntities()

	if em.EntityCount() != 1 {
		t.Error("capture alone must not destroy a photon")
	}
}
