package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/blackhole/pkg/embedded"
)

// SimulationConfig 黑洞光子模拟的物理调参
//
// 所有字段都是可观测行为的一部分：轨迹形状、俘获时机和
// 移除时机都直接由这些数值决定，不要在代码里重新推导。
//
// 配置文件位置: data/simulation.yaml
type SimulationConfig struct {
	// LightSpeed 光速 c（模拟单位/秒）
	// 同时决定事件视界大小和光子初速度 (-c, 0)
	LightSpeed float64 `yaml:"lightSpeed"`

	// GravitationalConstant 引力常数 G
	GravitationalConstant float64 `yaml:"gravitationalConstant"`

	// TimeStep 固定时间步长 dt（秒/tick），与真实帧间隔无关
	TimeStep float64 `yaml:"timeStep"`

	// BlackHoleMass 黑洞质量
	BlackHoleMass float64 `yaml:"blackHoleMass"`

	// Capture 俘获后向内螺旋参数
	Capture CaptureConfig `yaml:"capture"`

	// DeflectionMagnitude 二次偏转通道的切向速度增量模
	DeflectionMagnitude float64 `yaml:"deflectionMagnitude"`

	// MinSafeRadius 最小安全半径：光子距中心小于该值时从模拟中移除
	MinSafeRadius float64 `yaml:"minSafeRadius"`

	// Beam 水平光束发射参数
	Beam BeamConfig `yaml:"beam"`
}

// CaptureConfig 向内螺旋调参
type CaptureConfig struct {
	// AngularStep 每 tick 角度递减量（弧度），正值为顺时针旋转
	AngularStep float64 `yaml:"angularStep"`

	// SpiralTightness 螺旋收紧系数，越大螺旋越快收向奇点
	SpiralTightness float64 `yaml:"spiralTightness"`
}

// BeamConfig 水平光束的几何参数
type BeamConfig struct {
	// OffsetFromRight 光束距窗口右边缘的偏移（模拟单位）
	OffsetFromRight float64 `yaml:"offsetFromRight"`

	// Spacing 光束内相邻光子的垂直间距（模拟单位）
	Spacing float64 `yaml:"spacing"`
}

// DefaultSimulationConfig 返回默认物理参数
// 与 data/simulation.yaml 保持一致，供测试和 cmd/verify_* 程序使用
func DefaultSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		LightSpeed:            30,
		GravitationalConstant: 2,
		TimeStep:              0.1,
		BlackHoleMass:         10000,
		Capture: CaptureConfig{
			AngularStep:     0.05,
			SpiralTightness: 5,
		},
		DeflectionMagnitude: 7,
		MinSafeRadius:       5,
		Beam: BeamConfig{
			OffsetFromRight: 20,
			Spacing:         10,
		},
	}
}

// LoadSimulationConfig 加载模拟物理配置
//
// 优先从嵌入资源读取（embedded.Init 已调用时），
// 否则退回到文件系统读取，方便 cmd 下的工具程序直接运行。
//
// 参数:
//   - path: 配置文件路径（如 "data/simulation.yaml"）
//
// 返回:
//   - *SimulationConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadSimulationConfig(path string) (*SimulationConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	return ParseSimulationConfig(data)
}

// ParseSimulationConfig 解析并校验 YAML 格式的模拟配置
func ParseSimulationConfig(data []byte) (*SimulationConfig, error) {
	var cfg SimulationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证配置有效性
//
// 事件视界半径 2*(2*G*m/c²) 要求 m、G、c 均为正值，
// 其余参数为正是数值稳定性的前提（半径下限、时间步长等）。
func (c *SimulationConfig) Validate() error {
	if c.LightSpeed <= 0 {
		return fmt.Errorf("lightSpeed must be positive, got %v", c.LightSpeed)
	}
	if c.GravitationalConstant <= 0 {
		return fmt.Errorf("gravitationalConstant must be positive, got %v", c.GravitationalConstant)
	}
	if c.TimeStep <= 0 {
		return fmt.Errorf("timeStep must be positive, got %v", c.TimeStep)
	}
	if c.BlackHoleMass <= 0 {
		return fmt.Errorf("blackHoleMass must be positive, got %v", c.BlackHoleMass)
	}
	if c.Capture.AngularStep <= 0 {
		return fmt.Errorf("capture.angularStep must be positive, got %v", c.Capture.AngularStep)
	}
	if c.Capture.SpiralTightness <= 0 {
		return fmt.Errorf("capture.spiralTightness must be positive, got %v", c.Capture.SpiralTightness)
	}
	if c.DeflectionMagnitude < 0 {
		return fmt.Errorf("deflectionMagnitude must not be negative, got %v", c.DeflectionMagnitude)
	}
	if c.MinSafeRadius <= 0 {
		return fmt.Errorf("minSafeRadius must be positive, got %v", c.MinSafeRadius)
	}
	if c.Beam.Spacing <= 0 {
		return fmt.Errorf("beam.spacing must be positive, got %v", c.Beam.Spacing)
	}
	if c.Beam.OffsetFromRight < 0 {
		return fmt.Errorf("beam.offsetFromRight must not be negative, got %v", c.Beam.OffsetFromRight)
	}
	return nil
}
