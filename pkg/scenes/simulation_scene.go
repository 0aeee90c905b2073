// Package scenes 包含可运行的场景实现
package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/blackhole/pkg/components"
	"github.com/decker502/blackhole/pkg/config"
	"github.com/decker502/blackhole/pkg/ecs"
	"github.com/decker502/blackhole/pkg/entities"
	"github.com/decker502/blackhole/pkg/game"
	"github.com/decker502/blackhole/pkg/systems"
)

// SimulationScene 黑洞光子模拟场景
//
// 场景是模拟状态的唯一所有者：实体管理器、引力源和全部系统
// 都由场景持有并按固定顺序驱动，没有任何进程级单例。
//
// 每帧执行一个模拟 tick，物理时间步长取配置中的固定 dt，
// 与真实帧间隔无关。
type SimulationScene struct {
	entityManager *ecs.EntityManager
	gravitySource *game.GravitySource
	simConfig     *config.SimulationConfig

	settingsManager *game.SettingsManager // 可为 nil

	inputSystem      *systems.InputSystem
	gravitySystem    *systems.GravitySystem
	motionSystem     *systems.MotionSystem
	deflectionSystem *systems.DeflectionSystem

	renderSystem       *systems.RenderSystem
	buttonRenderSystem *systems.ButtonRenderSystem
}

// NewSimulationScene 创建模拟场景
//
// 黑洞固定在逻辑屏幕中心；光束按钮实体在这里创建。
//
// 参数:
//   - cfg: 模拟物理配置（已通过 Validate）
//   - settingsManager: 设置管理器，可为 nil
func NewSimulationScene(cfg *config.SimulationConfig, settingsManager *game.SettingsManager) (*SimulationScene, error) {
	em := ecs.NewEntityManager()

	gravitySource, err := game.NewGravitySource(
		config.GameWindowWidth/2.0, config.GameWindowHeight/2.0,
		cfg.BlackHoleMass, cfg.GravitationalConstant, cfg.LightSpeed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gravity source: %w", err)
	}

	log.Printf("[Scene] Black hole at (%.0f, %.0f), rs=%.2f, event horizon=%.2f",
		gravitySource.Center().X, gravitySource.Center().Y,
		gravitySource.SchwarzschildRadius(), gravitySource.EventHorizonRadius())

	scene := &SimulationScene{
		entityManager:      em,
		gravitySource:      gravitySource,
		simConfig:          cfg,
		settingsManager:    settingsManager,
		inputSystem:        systems.NewInputSystem(em, cfg, config.GameWindowWidth, config.GameWindowHeight),
		gravitySystem:      systems.NewGravitySystem(em, gravitySource, cfg),
		motionSystem:       systems.NewMotionSystem(em, gravitySource, cfg),
		deflectionSystem:   systems.NewDeflectionSystem(em, gravitySource, cfg),
		renderSystem:       systems.NewRenderSystem(em, gravitySource),
		buttonRenderSystem: systems.NewButtonRenderSystem(em),
	}

	entities.NewBeamButtonEntity(em)

	return scene, nil
}

// Update 执行一个模拟 tick
// deltaTime 是帧间隔，仅满足 Scene 接口；物理推进使用配置的固定步长
func (s *SimulationScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	s.step()
}

// step 固定顺序推进一个物理 tick：
// 引力（受力/移除/俘获）→ 运动 → 偏转 → 延迟删除清理
func (s *SimulationScene) step() {
	dt := s.simConfig.TimeStep
	s.gravitySystem.Update(dt)
	s.motionSystem.Update(dt)
	s.deflectionSystem.Update(dt)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景
func (s *SimulationScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.renderSystem.Draw(screen)
	s.buttonRenderSystem.Draw(screen)
}

// SaveOnExit 实现 game.Saveable：窗口关闭时保存设置
func (s *SimulationScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[Scene] Failed to save settings on exit: %v", err)
		return false
	}
	return true
}

// SpawnPhoton 在 (x, y) 生成单个光子
// 供外部输入层和验证程序直接调用
func (s *SimulationScene) SpawnPhoton(x, y float64) ecs.EntityID {
	return entities.NewPhotonEntity(s.entityManager, s.simConfig, x, y)
}

// SpawnBeam 发射一束水平光子
func (s *SimulationScene) SpawnBeam() []ecs.EntityID {
	return entities.SpawnPhotonBeam(s.entityManager, s.simConfig, config.GameWindowWidth, config.GameWindowHeight)
}

// GravitySource 返回场景的引力源（渲染层需要中心和半径信息）
func (s *SimulationScene) GravitySource() *game.GravitySource {
	return s.gravitySource
}

// PhotonCounts 返回当前自由/俘获光子数量，用于调试叠加层和验证程序
func (s *SimulationScene) PhotonCounts() (free, captured int) {
	for _, id := range ecs.GetEntitiesWith1[*components.PhotonComponent](s.entityManager) {
		photon, ok := ecs.GetComponent[*components.PhotonComponent](s.entityManager, id)
		if !ok {
			continue
		}
		switch photon.State {
		case components.CaptureStateFree:
			free++
		case components.CaptureStateCaptured:
			captured++
		}
	}
	return free, captured
}
