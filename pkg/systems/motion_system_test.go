package systems

import (
	"math"
	"testing"

	"github.com/decker502/blackhole/pkg/components"
	"github.com/decker502/blackhole/pkg/entities"
)

func TestFreePhotonEulerStep(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	system := NewMotionSystem(em, gs, cfg)

	id := entities.NewPhotonEntity(em, cfg, 780, 300)
	_, pos, vel := getPhoton(t, em, id)

	system.Update(cfg.TimeStep)

	// pos += vel * dt：初速度 (-30, 0)，dt=0.1 → x 减少 3
	if math.Abs(pos.X-777) > 1e-9 || pos.Y != 300 {
		t.Errorf("expected position (777,300), got (%v,%v)", pos.X, pos.Y)
	}
	// 自由运动不改变速度
	if vel.VX != -cfg.LightSpeed || vel.VY != 0 {
		t.Errorf("free motion must not change velocity, got (%v,%v)", vel.VX, vel.VY)
	}
}

func TestCapturedPhotonIgnoresVelocity(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	system := NewMotionSystem(em, gs, cfg)

	id := entities.NewPhotonEntity(em, cfg, 400+50, 300)
	photon, pos, vel := getPhoton(t, em, id)
	photon.State = components.CaptureStateCaptured
	photon.CaptureAngle = 0
	photon.CaptureRadius = gs.EventHorizonRadius()
	vel.VX, vel.VY = 1000, 1000 // 速度残留不应影响螺旋位置

	system.Update(cfg.TimeStep)

	// 位置完全由极坐标重建：radius = 88.89 - 0.05*5 ≈ 88.64
	wantRadius := gs.EventHorizonRadius() - cfg.Capture.AngularStep*cfg.Capture.SpiralTightness
	gotRadius := gs.DistanceTo(pos.X, pos.Y)
	if math.Abs(gotRadius-wantRadius) > 1e-9 {
		t.Errorf("expected spiral radius %v, got %v", wantRadius, gotRadius)
	}
}

func TestSpiralAngleDecreasesEachTick(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	system := NewMotionSystem(em, gs, cfg)

	id := entities.NewPhotonEntity(em, cfg, 400+50, 300)
	photon, _, _ := getPhoton(t, em, id)
	photon.State = components.CaptureStateCaptured
	photon.CaptureAngle = 1.0
	photon.CaptureRadius = gs.EventHorizonRadius()

	for i := 1; i <= 10; i++ {
		system.Update(cfg.TimeStep)
		want := 1.0 - float64(i)*cfg.Capture.AngularStep
		if math.Abs(photon.CaptureAngle-want) > 1e-9 {
			t.Fatalf("tick %d: expected angle %v, got %v", i, want, photon.CaptureAngle)
		}
	}
}

func TestSpiralRadiusMonotonicWithFloor(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	system := NewMotionSystem(em, gs, cfg)

	id := entities.NewPhotonEntity(em, cfg, 400+50, 300)
	photon, pos, _ := getPhoton(t, em, id)
	photon.State = components.CaptureStateCaptured
	photon.CaptureAngle = 0
	photon.CaptureRadius = gs.EventHorizonRadius()

	// 半径必须单调不增，触底后恒为 1，绝不回升、绝不为负
	prev := math.Inf(1)
	floorHits := 0
	for i := 0; i < 1000; i++ {
		system.Update(cfg.TimeStep)
		radius := gs.DistanceTo(pos.X, pos.Y)

		if radius > prev+1e-9 {
			t.Fatalf("tick %d: spiral radius increased from %v to %v", i, prev, radius)
		}
		if radius < 1-1e-9 {
			t.Fatalf("tick %d: spiral radius %v fell below the floor of 1", i, radius)
		}
		if math.Abs(radius-1) < 1e-9 {
			floorHits++
		}
		prev = radius
	}

	if floorHits == 0 {
		t.Error("spiral should reach the radius floor within 1000 ticks")
	}
}

func TestMotionDispatchByState(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	system := NewMotionSystem(em, gs, cfg)

	freeID := entities.NewPhotonEntity(em, cfg, 700, 100)
	capturedID := entities.NewPhotonEntity(em, cfg, 400+50, 300)

	captured, _, _ := getPhoton(t, em, capturedID)
	captured.State = components.CaptureStateCaptured
	captured.CaptureAngle = 0
	captured.CaptureRadius = gs.EventHorizonRadius()

	system.Update(cfg.TimeStep)

	// 自由光子走欧拉积分
	_, freePos, _ := getPhoton(t, em, freeID)
	if freePos.X != 700-cfg.LightSpeed*cfg.TimeStep {
		t.Errorf("free photon should move by euler step, got x=%v", freePos.X)
	}

	// 俘获光子的角度被推进
	if captured.CaptureAngle != -cfg.Capture.AngularStep {
		t.Errorf("captured photon should advance spiral angle, got %v", captured.CaptureAngle)
	}
}
