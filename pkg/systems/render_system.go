package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/blackhole/pkg/components"
	"github.com/decker502/blackhole/pkg/config"
	"github.com/decker502/blackhole/pkg/ecs"
	"github.com/decker502/blackhole/pkg/game"
)

// photonColor 光子绘制颜色
var photonColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}

// horizonDotColor 事件视界虚线圆的颜色
var horizonDotColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// RenderSystem 绘制模拟画面：光子、黑洞本体和事件视界
//
// 黑洞用同心灰度圆表示：中心白色，向外逐渐变黑；
// 事件视界用一圈等距小圆点表示。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gravitySource *game.GravitySource
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GravitySource) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gravitySource: gs,
	}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawPhotons(screen)
	s.drawEventHorizon(screen)
	s.drawBlackHole(screen)
}

// drawPhotons 绘制所有光子
func (s *RenderSystem) drawPhotons(screen *ebiten.Image) {
	photons := ecs.GetEntitiesWith2[
		*components.PhotonComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range photons {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen,
			float32(pos.X), float32(pos.Y),
			config.PhotonDrawRadius, photonColor, true)
	}
}

// drawBlackHole 用同心灰度圆绘制黑洞本体
// 半径从史瓦西半径向内递减：外圈黑色，中心白色
func (s *RenderSystem) drawBlackHole(screen *ebiten.Image) {
	center := s.gravitySource.Center()
	rs := s.gravitySource.SchwarzschildRadius()

	for r := int(rs); r > 0; r-- {
		grey := uint8(255 - int(255*float64(r)/rs))
		clr := color.RGBA{R: grey, G: grey, B: grey, A: 255}
		vector.DrawFilledCircle(screen,
			float32(center.X), float32(center.Y),
			float32(r), clr, true)
	}
}

// drawEventHorizon 用虚线圆（等距圆点）标出事件视界
func (s *RenderSystem) drawEventHorizon(screen *ebiten.Image) {
	center := s.gravitySource.Center()
	radius := s.gravitySource.EventHorizonRadius()

	angleIncrement := 2 * math.Pi / float64(config.EventHorizonDotCount)
	for i := 0; i < config.EventHorizonDotCount; i++ {
		angle := float64(i) * angleIncrement
		sin, cos := math.Sincos(angle)
		vector.DrawFilledCircle(screen,
			float32(center.X+radius*cos), float32(center.Y+radius*sin),
			config.EventHorizonDotWidth, horizonDotColor, true)
	}
}
