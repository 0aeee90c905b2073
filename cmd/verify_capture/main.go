// verify_capture 俘获行为验证程序
//
// 发射一束水平光子并实时叠加显示自由/俘获/已移除数量，
// 用于人工确认俘获转移和向内螺旋的视觉效果。
//
// 运行: go run ./cmd/verify_capture [-mass 10000] [-beam]
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/blackhole/pkg/config"
	"github.com/decker502/blackhole/pkg/scenes"
)

var (
	massFlag = flag.Float64("mass", 0, "覆盖黑洞质量（0 表示使用默认值）")
	beamFlag = flag.Bool("beam", true, "启动时自动发射一束光子")
)

// VerifyCaptureGame 俘获验证程序
type VerifyCaptureGame struct {
	scene *scenes.SimulationScene

	// 统计信息
	totalSpawned int
	peakCaptured int
}

// NewVerifyCaptureGame 创建验证程序实例
func NewVerifyCaptureGame() (*VerifyCaptureGame, error) {
	cfg := config.DefaultSimulationConfig()
	if *massFlag > 0 {
		cfg.BlackHoleMass = *massFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scene, err := scenes.NewSimulationScene(cfg, nil)
	if err != nil {
		return nil, err
	}

	g := &VerifyCaptureGame{scene: scene}
	if *beamFlag {
		g.totalSpawned += len(scene.SpawnBeam())
	}
	return g, nil
}

// Update 更新验证程序
func (g *VerifyCaptureGame) Update() error {
	// B 键：再发射一束
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.totalSpawned += len(g.scene.SpawnBeam())
	}

	g.scene.Update(1.0 / 60.0)

	free, captured := g.scene.PhotonCounts()
	if captured > g.peakCaptured {
		g.peakCaptured = captured
	}
	// 鼠标点击生成的光子经由场景输入系统，不经过本程序计数
	if free+captured > g.totalSpawned {
		g.totalSpawned = free + captured
	}
	return nil
}

// Draw 绘制场景和调试叠加层
func (g *VerifyCaptureGame) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	free, captured := g.scene.PhotonCounts()
	removed := g.totalSpawned - free - captured
	gs := g.scene.GravitySource()
	info := fmt.Sprintf(
		"rs=%.2f eh=%.2f\nspawned=%d free=%d captured=%d (peak %d) removed=%d\n[B] spawn beam  [click] spawn photon",
		gs.SchwarzschildRadius(), gs.EventHorizonRadius(),
		g.totalSpawned, free, captured, g.peakCaptured, removed,
	)
	ebitenutil.DebugPrintAt(screen, info, 10, config.GameWindowHeight-50)
}

// Layout 返回逻辑屏幕尺寸
func (g *VerifyCaptureGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

func main() {
	flag.Parse()

	g, err := NewVerifyCaptureGame()
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("verify_capture - 俘获行为验证")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
