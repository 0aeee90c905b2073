package components

// BeamButtonComponent 发射水平光束的屏幕按钮
//
// 纯数据组件：按钮的绘制由 ButtonRenderSystem 负责，
// 命中测试和点击响应由 InputSystem 负责。
type BeamButtonComponent struct {
	// X, Y 按钮左上角（屏幕坐标）
	X float64
	Y float64

	// Width, Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// Label 按钮文字
	Label string
}
