package components

// PositionComponent 实体在模拟平面上的位置（世界坐标）
type PositionComponent struct {
	X float64
	Y float64
}
