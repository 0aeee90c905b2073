// verify_beam 光束发射几何验证程序（无窗口）
//
// 用默认配置发射一束光子，检查数量、间距和初速度，
// 不符合预期时以非零状态码退出。
//
// 运行: go run ./cmd/verify_beam
package main

import (
	"fmt"
	"os"

	"github.com/decker502/blackhole/pkg/components"
	"github.com/decker502/blackhole/pkg/config"
	"github.com/decker502/blackhole/pkg/ecs"
	"github.com/decker502/blackhole/pkg/entities"
)

func main() {
	cfg := config.DefaultSimulationConfig()
	em := ecs.NewEntityManager()

	ids := entities.SpawnPhotonBeam(em, cfg, config.GameWindowWidth, config.GameWindowHeight)

	wantCount := int(config.GameWindowHeight / cfg.Beam.Spacing)
	failures := 0

	if len(ids) != wantCount {
		fmt.Printf("FAIL: expected %d photons, got %d\n", wantCount, len(ids))
		failures++
	}

	wantX := config.GameWindowWidth - cfg.Beam.OffsetFromRight
	for i, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			fmt.Printf("FAIL: photon %d has no position component\n", i)
			failures++
			continue
		}
		if pos.X != wantX {
			fmt.Printf("FAIL: photon %d at x=%v, expected %v\n", i, pos.X, wantX)
			failures++
		}
		if want := float64(i) * cfg.Beam.Spacing; pos.Y != want {
			fmt.Printf("FAIL: photon %d at y=%v, expected %v\n", i, pos.Y, want)
			failures++
		}

		vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
		if !ok {
			fmt.Printf("FAIL: photon %d has no velocity component\n", i)
			failures++
			continue
		}
		if vel.VX != -cfg.LightSpeed || vel.VY != 0 {
			fmt.Printf("FAIL: photon %d velocity (%v,%v), expected (%v,0)\n", i, vel.VX, vel.VY, -cfg.LightSpeed)
			failures++
		}
	}

	if failures > 0 {
		fmt.Printf("verify_beam: %d failure(s)\n", failures)
		os.Exit(1)
	}
	fmt.Printf("verify_beam: OK (%d photons, spacing %v, x=%v)\n", len(ids), cfg.Beam.Spacing, wantX)
}
