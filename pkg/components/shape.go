package components

import (
	"image/color"

	"github.com/decker502/bloom/pkg/types"
)

// Point 世界坐标系中的一个点
// 世界坐标：X 向右，Y 向上（与屏幕坐标 Y 轴方向相反）
type Point struct {
	X float64
	Y float64
}

// ShapeKind 图形的绘制方式
type ShapeKind int

const (
	// ShapePolygon 填充多边形（Points 为顶点序列）
	ShapePolygon ShapeKind = iota
	// ShapeLine 线段（Points[0] -> Points[1]）
	ShapeLine
	// ShapeCircle 填充圆（Points[0] 为圆心，Radius 为世界坐标半径）
	ShapeCircle
	// ShapeMarker 标记符号（Points[0] 为位置，Size 为磅值，大小不随视口缩放）
	ShapeMarker
	// ShapeText 文字（Points[0] 为左下角锚点，Size 为字号磅值）
	ShapeText
)

// MarkerGlyph 标记符号的形状
type MarkerGlyph int

const (
	// MarkerDot 圆点
	MarkerDot MarkerGlyph = iota
	// MarkerStar 五角星
	MarkerStar
)

// Shape 单个图形描述
//
// 图形只在一帧内存在：每帧重新生成，不保留跨帧身份。
// 所有宽度和标记大小以"磅"为单位，由渲染系统换算为像素。
type Shape struct {
	Kind ShapeKind
	Part types.Part

	// Points 世界坐标点序列，含义取决于 Kind
	Points []Point

	// Color 填充色（线段为描边色）
	Color color.RGBA
	// Alpha 不透明度 0.0 ~ 1.0，与 Color.A 相乘
	Alpha float64

	// Width 线宽（磅），仅 ShapeLine 使用
	Width float64

	// Outline 是否绘制多边形轮廓
	Outline      bool
	OutlineColor color.RGBA
	OutlineWidth float64

	// Radius 圆半径（世界坐标），仅 ShapeCircle 使用
	Radius float64

	// Glyph 标记形状，仅 ShapeMarker 使用
	Glyph MarkerGlyph
	// Size 标记大小或字号（磅）
	Size float64

	// Text 文字内容，仅 ShapeText 使用
	Text string

	// Layer 花瓣所在层（0 为最外层），其他部位为 0
	Layer int
}

// Anchor 返回图形的定位点（第一个点）
// 没有点时返回原点
func (s Shape) Anchor() Point {
	if len(s.Points) == 0 {
		return Point{}
	}
	return s.Points[0]
}

// Frame 一帧完整的场景描述
//
// Shapes 的顺序即绘制顺序（后绘制的覆盖先绘制的）。
type Frame struct {
	// Index 帧序号
	Index int
	// Background 坐标区域背景色
	Background color.RGBA
	// Shapes 按绘制顺序排列的图形
	Shapes []Shape
}

// Add 追加一个图形
func (f *Frame) Add(s Shape) {
	f.Shapes = append(f.Shapes, s)
}

// Count 返回指定部位的图形数量
func (f *Frame) Count(part types.Part) int {
	n := 0
	for _, s := range f.Shapes {
		if s.Part == part {
			n++
		}
	}
	return n
}

// Filter 返回指定部位的所有图形（保持绘制顺序）
func (f *Frame) Filter(part types.Part) []Shape {
	var out []Shape
	for _, s := range f.Shapes {
		if s.Part == part {
			out = append(out, s)
		}
	}
	return out
}

// CountLayer 返回指定层的花瓣数量
func (f *Frame) CountLayer(layer int) int {
	n := 0
	for _, s := range f.Shapes {
		if s.Part == types.PartPetal && s.Layer == layer {
			n++
		}
	}
	return n
}
