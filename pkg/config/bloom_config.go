package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/decker502/bloom/pkg/embedded"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// BloomConfigPath 内嵌配置文件路径
const BloomConfigPath = "data/bloom.yaml"

// ErrInvalidConfig 配置校验失败
// 调用者可使用 errors.Is 判断
var ErrInvalidConfig = errors.New("invalid bloom config")

// BloomConfig 花朵动画配置
//
// 配置文件位置: data/bloom.yaml（编译时内嵌）
type BloomConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Viewport ViewportConfig `yaml:"viewport"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Palette  PaletteConfig  `yaml:"palette"`
	Timeline TimelineConfig `yaml:"timeline"`

	// colors 解析后的调色板（由 Validate 填充）
	colors *Palette
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ViewportConfig 世界坐标可见范围
type ViewportConfig struct {
	XMin float64 `yaml:"xMin"`
	XMax float64 `yaml:"xMax"`
	YMin float64 `yaml:"yMin"`
	YMax float64 `yaml:"yMax"`
}

// ScheduleConfig 调度器配置
type ScheduleConfig struct {
	// Frames 一轮动画的总帧数
	Frames int `yaml:"frames"`
	// IntervalMs 相邻两帧的间隔（毫秒）
	IntervalMs int `yaml:"intervalMs"`
	// Repeat 播放完后是否从第 0 帧重新开始
	Repeat bool `yaml:"repeat"`
	// Seed 闪光颜色随机数种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`
}

// Interval 返回帧间隔
func (s ScheduleConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMs) * time.Millisecond
}

// PaletteConfig 调色板（十六进制颜色字符串）
type PaletteConfig struct {
	Figure       string   `yaml:"figure"`
	Background   string   `yaml:"background"`
	Petals       []string `yaml:"petals"`
	Leaf         string   `yaml:"leaf"`
	Stem         string   `yaml:"stem"`
	Thorn        string   `yaml:"thorn"`
	Center       string   `yaml:"center"`
	Stamen       string   `yaml:"stamen"`
	Star         string   `yaml:"star"`
	Label        string   `yaml:"label"`
	PetalOutline string   `yaml:"petalOutline"`
	Sparkles     []string `yaml:"sparkles"`
}

// Palette 解析后的调色板
type Palette struct {
	Figure       color.RGBA
	Background   color.RGBA
	Petals       []color.RGBA
	Leaf         color.RGBA
	Stem         color.RGBA
	Thorn        color.RGBA
	Center       color.RGBA
	Stamen       color.RGBA
	Star         color.RGBA
	Label        color.RGBA
	PetalOutline color.RGBA
	Sparkles     []color.RGBA
}

// PhaseWindow 动画阶段的起始帧和持续帧数
type PhaseWindow struct {
	Start    int `yaml:"start"`
	Duration int `yaml:"duration"`
	// Max 数量上限（仅闪光阶段使用）
	Max int `yaml:"max,omitempty"`
}

// TimelineConfig 各动画阶段的时间轴
type TimelineConfig struct {
	Stem     PhaseWindow `yaml:"stem"`
	Leaves   PhaseWindow `yaml:"leaves"`
	Petals   PhaseWindow `yaml:"petals"`
	Stars    PhaseWindow `yaml:"stars"`
	Sparkles PhaseWindow `yaml:"sparkles"`
	// Label 进度文字在 [Start, Start+Duration) 区间内显示，百分比以 Duration 为满
	Label       PhaseWindow `yaml:"label"`
	LabelFormat string      `yaml:"labelFormat"`
}

// LoadBloomConfig 从内嵌资源加载花朵动画配置
//
// 参数:
//   - path: 配置文件路径（如 "data/bloom.yaml"）
//
// 返回:
//   - *BloomConfig: 校验通过的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadBloomConfig(path string) (*BloomConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bloom config: %w", err)
	}
	return ParseBloomConfig(data)
}

// ParseBloomConfig 解析 YAML 格式的配置内容并校验
func ParseBloomConfig(data []byte) (*BloomConfig, error) {
	var cfg BloomConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bloom config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 验证配置有效性并解析颜色
//
// 检查项：
//   - 窗口尺寸为正
//   - 视口范围非空
//   - 帧数、间隔为正
//   - 各阶段持续时间为正，起始帧非负
//   - 花瓣颜色至少覆盖所有花瓣层，闪光颜色非空
//   - 所有颜色均为合法十六进制
func (c *BloomConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d",
			ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Viewport.XMin >= c.Viewport.XMax || c.Viewport.YMin >= c.Viewport.YMax {
		return fmt.Errorf("%w: empty viewport x[%.1f, %.1f] y[%.1f, %.1f]",
			ErrInvalidConfig, c.Viewport.XMin, c.Viewport.XMax, c.Viewport.YMin, c.Viewport.YMax)
	}
	if c.Schedule.Frames <= 0 {
		return fmt.Errorf("%w: schedule frames must be positive, got %d", ErrInvalidConfig, c.Schedule.Frames)
	}
	if c.Schedule.IntervalMs <= 0 {
		return fmt.Errorf("%w: schedule intervalMs must be positive, got %d", ErrInvalidConfig, c.Schedule.IntervalMs)
	}

	phases := []struct {
		name string
		w    PhaseWindow
	}{
		{"stem", c.Timeline.Stem},
		{"leaves", c.Timeline.Leaves},
		{"petals", c.Timeline.Petals},
		{"stars", c.Timeline.Stars},
		{"sparkles", c.Timeline.Sparkles},
		{"label", c.Timeline.Label},
	}
	for _, p := range phases {
		if p.w.Start < 0 {
			return fmt.Errorf("%w: %s start must not be negative, got %d", ErrInvalidConfig, p.name, p.w.Start)
		}
		if p.w.Duration <= 0 {
			return fmt.Errorf("%w: %s duration must be positive, got %d", ErrInvalidConfig, p.name, p.w.Duration)
		}
	}
	if c.Timeline.Sparkles.Max < 0 {
		return fmt.Errorf("%w: sparkles max must not be negative, got %d", ErrInvalidConfig, c.Timeline.Sparkles.Max)
	}
	if c.Timeline.LabelFormat == "" {
		return fmt.Errorf("%w: labelFormat is empty", ErrInvalidConfig)
	}

	if len(c.Palette.Petals) < PetalLayers {
		return fmt.Errorf("%w: need at least %d petal colors, got %d",
			ErrInvalidConfig, PetalLayers, len(c.Palette.Petals))
	}
	if len(c.Palette.Sparkles) == 0 {
		return fmt.Errorf("%w: sparkle color set is empty", ErrInvalidConfig)
	}

	colors, err := c.Palette.resolve()
	if err != nil {
		return err
	}
	c.colors = colors
	return nil
}

// Colors 返回解析后的调色板
// 必须先调用 Validate（LoadBloomConfig/ParseBloomConfig 已自动调用）
func (c *BloomConfig) Colors() *Palette {
	if c.colors == nil {
		if err := c.Validate(); err != nil {
			panic(fmt.Sprintf("bloom config used before validation: %v", err))
		}
	}
	return c.colors
}

func (p PaletteConfig) resolve() (*Palette, error) {
	var firstErr error
	parse := func(field, hex string) color.RGBA {
		c, err := ParseHexColor(hex)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%w: palette.%s: %v", ErrInvalidConfig, field, err)
		}
		return c
	}
	parseAll := func(field string, hexes []string) []color.RGBA {
		out := make([]color.RGBA, len(hexes))
		for i, h := range hexes {
			out[i] = parse(fmt.Sprintf("%s[%d]", field, i), h)
		}
		return out
	}

	pal := &Palette{
		Figure:       parse("figure", p.Figure),
		Background:   parse("background", p.Background),
		Petals:       parseAll("petals", p.Petals),
		Leaf:         parse("leaf", p.Leaf),
		Stem:         parse("stem", p.Stem),
		Thorn:        parse("thorn", p.Thorn),
		Center:       parse("center", p.Center),
		Stamen:       parse("stamen", p.Stamen),
		Star:         parse("star", p.Star),
		Label:        parse("label", p.Label),
		PetalOutline: parse("petalOutline", p.PetalOutline),
		Sparkles:     parseAll("sparkles", p.Sparkles),
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return pal, nil
}

// ParseHexColor 将 "#RRGGBB" 形式的颜色解析为不透明 RGBA
func ParseHexColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// DefaultBloomConfig 返回与 data/bloom.yaml 一致的默认配置
// 用于测试和内嵌资源不可用时的调试工具
func DefaultBloomConfig() *BloomConfig {
	cfg := &BloomConfig{
		Window:   WindowConfig{Width: 1200, Height: 1000, Title: "Flor Creciendo"},
		Viewport: ViewportConfig{XMin: -8, XMax: 8, YMin: -6, YMax: 10},
		Schedule: ScheduleConfig{Frames: 250, IntervalMs: 100, Repeat: true},
		Palette: PaletteConfig{
			Figure:       "#000000",
			Background:   "#001122",
			Petals:       []string{"#FF69B4", "#FF1493", "#DC143C", "#B22222", "#FF6347"},
			Leaf:         "#228B22",
			Stem:         "#32CD32",
			Thorn:        "#228B22",
			Center:       "#FFD700",
			Stamen:       "#FF8C00",
			Star:         "#FFFFFF",
			Label:        "#FFFFFF",
			PetalOutline: "#FFFFFF",
			Sparkles:     []string{"#FFD700", "#FFFFFF", "#FF69B4", "#00FFFF"},
		},
		Timeline: TimelineConfig{
			Stem:        PhaseWindow{Start: 0, Duration: 30},
			Leaves:      PhaseWindow{Start: 20, Duration: 30},
			Petals:      PhaseWindow{Start: 40, Duration: 60},
			Stars:       PhaseWindow{Start: 60, Duration: 1},
			Sparkles:    PhaseWindow{Start: 80, Duration: 100, Max: 20},
			Label:       PhaseWindow{Start: 0, Duration: 200},
			LabelFormat: "Creciendo... %.0f%%",
		},
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("default bloom config invalid: %v", err))
	}
	return cfg
}
