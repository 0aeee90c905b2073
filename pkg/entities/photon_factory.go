package entities

import (
	"github.com/decker502/blackhole/pkg/components"
	"github.com/decker502/blackhole/pkg/config"
	"github.com/decker502/blackhole/pkg/ecs"
)

// NewPhotonEntity 在 (x, y) 创建一个自由光子实体
//
// 初速度为 (-c, 0)：光子水平向左飞行，朝向屏幕中央的黑洞。
// 坐标可以是任意有限数，越界坐标由调用方负责避免。
//
// 参数:
//   - manager: EntityManager 实例
//   - cfg: 模拟物理配置（提供光速）
//   - x, y: 出生位置（世界坐标）
//
// 返回: 创建的实体ID
func NewPhotonEntity(manager *ecs.EntityManager, cfg *config.SimulationConfig, x, y float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.PositionComponent{
		X: x,
		Y: y,
	})

	manager.AddComponent(id, &components.VelocityComponent{
		VX: -cfg.LightSpeed,
		VY: 0,
	})

	manager.AddComponent(id, &components.PhotonComponent{
		State: components.CaptureStateFree,
	})

	return id
}

// SpawnPhotonBeam 沿窗口右侧的垂直线发射一束水平光子
//
// 从 y=0 开始，每隔 cfg.Beam.Spacing 个单位生成一个光子，
// 直到窗口底部；x 坐标固定为 窗口宽度 - cfg.Beam.OffsetFromRight。
//
// 返回: 创建的全部实体ID（按自上而下的顺序）
func SpawnPhotonBeam(manager *ecs.EntityManager, cfg *config.SimulationConfig, windowWidth, windowHeight float64) []ecs.EntityID {
	x := windowWidth - cfg.Beam.OffsetFromRight

	ids := make([]ecs.EntityID, 0, int(windowHeight/cfg.Beam.Spacing))
	for y := 0.0; y < windowHeight; y += cfg.Beam.Spacing {
		ids = append(ids, NewPhotonEntity(manager, cfg, x, y))
	}
	return ids
}

// NewBeamButtonEntity 创建发射光束的UI按钮实体
func NewBeamButtonEntity(manager *ecs.EntityManager) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.BeamButtonComponent{
		X:      config.BeamButtonX,
		Y:      config.BeamButtonY,
		Width:  config.BeamButtonWidth,
		Height: config.BeamButtonHeight,
		Label:  config.BeamButtonLabel,
	})

	return id
}
