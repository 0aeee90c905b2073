package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/blackhole/pkg/components"
	"github.com/decker502/blackhole/pkg/ecs"
)

// beamButtonColor 光束按钮底色
var beamButtonColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}

// ButtonRenderSystem 绘制UI按钮
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.BeamButtonComponent](s.entityManager) {
		btn, ok := ecs.GetComponent[*components.BeamButtonComponent](s.entityManager, id)
		if !ok {
			continue
		}

		vector.DrawFilledRect(screen,
			float32(btn.X), float32(btn.Y),
			float32(btn.Width), float32(btn.Height),
			beamButtonColor, false)

		// 文字在按钮内左上留出一点边距
		ebitenutil.DebugPrintAt(screen, btn.Label, int(btn.X)+10, int(btn.Y)+10)
	}
}
