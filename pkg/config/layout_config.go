package config

// layout_config.go - 窗口与UI布局常量
//
// 屏幕坐标系与模拟坐标系一致：原点在窗口左上角，Y 轴向下。

const (
	// GameWindowWidth 逻辑屏幕宽度（像素/模拟单位）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素/模拟单位）
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Kerr Black Hole Simulation"
)

// 光束按钮布局
const (
	// BeamButtonX 按钮左上角X坐标
	BeamButtonX = 20.0

	// BeamButtonY 按钮左上角Y坐标
	BeamButtonY = 20.0

	// BeamButtonWidth 按钮宽度
	BeamButtonWidth = 280.0

	// BeamButtonHeight 按钮高度
	BeamButtonHeight = 35.0

	// BeamButtonLabel 按钮文字
	BeamButtonLabel = "Send Horizontal Beam"
)

// 渲染参数
const (
	// PhotonDrawRadius 光子绘制半径（像素）
	PhotonDrawRadius = 4.0

	// EventHorizonDotCount 事件视界虚线圆的圆点数量
	EventHorizonDotCount = 50

	// EventHorizonDotWidth 事件视界圆点半径（像素）
	EventHorizonDotWidth = 2.0
)
