package systems

import (
	"log"

	"github.com/decker502/blackhole/pkg/components"
	"github.com/decker502/blackhole/pkg/config"
	"github.com/decker502/blackhole/pkg/ecs"
	"github.com/decker502/blackhole/pkg/entities"
	"github.com/decker502/blackhole/pkg/utils"
)

// InputSystem 处理鼠标/触摸输入
//
// 点击光束按钮 → 发射一束水平光子；
// 点击其他位置 → 在点击处生成单个光子。
type InputSystem struct {
	entityManager *ecs.EntityManager
	simConfig     *config.SimulationConfig
	windowWidth   float64
	windowHeight  float64
}

// NewInputSystem 创建输入系统
func NewInputSystem(em *ecs.EntityManager, cfg *config.SimulationConfig, windowWidth, windowHeight float64) *InputSystem {
	return &InputSystem{
		entityManager: em,
		simConfig:     cfg,
		windowWidth:   windowWidth,
		windowHeight:  windowHeight,
	}
}

// Update 处理本帧的点击事件
func (s *InputSystem) Update(deltaTime float64) {
	clicked, cx, cy := utils.IsJustTouchedOrClicked()
	if !clicked {
		return
	}

	s.HandleClick(float64(cx), float64(cy))
}

// HandleClick 处理一次点击（拆出来便于测试，不依赖 ebiten 输入状态）
func (s *InputSystem) HandleClick(x, y float64) {
	// 命中光束按钮？
	for _, id := range ecs.GetEntitiesWith1[*components.BeamButtonComponent](s.entityManager) {
		btn, ok := ecs.GetComponent[*components.BeamButtonComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if utils.PointInRect(x, y, btn.X, btn.Y, btn.Width, btn.Height) {
			ids := entities.SpawnPhotonBeam(s.entityManager, s.simConfig, s.windowWidth, s.windowHeight)
			log.Printf("[Input] Beam button pressed, spawned %d photons", len(ids))
			return
		}
	}

	// 点击空白处：在点击位置生成单个光子
	entities.NewPhotonEntity(s.entityManager, s.simConfig, x, y)
	log.Printf("[Input] Spawned photon at (%.0f, %.0f)", x, y)
}
