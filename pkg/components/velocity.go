package components

// VelocityComponent 实体的速度（模拟单位/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
