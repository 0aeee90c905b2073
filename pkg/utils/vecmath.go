// Package utils 提供通用工具函数
package utils

import "math"

// Vector2 表示一个二维向量（模拟平面坐标）
// 值类型，所有运算返回新向量，不修改接收者
type Vector2 struct {
	X, Y float64
}

// Add 向量加法
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub 向量减法
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Scale 向量数乘
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Length 向量模长
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize 返回单位向量，零向量返回零向量
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{v.X / l, v.Y / l}
}

// Rotate 绕原点逆时针旋转 angle 弧度
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Dot 向量点积
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Clamp 将 x 限制在 [min, max] 区间内
func Clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
