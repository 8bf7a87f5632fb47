package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/bloom/pkg/components"
	"github.com/decker502/bloom/pkg/config"
	"github.com/decker502/bloom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 将一帧场景描述绘制到屏幕
//
// 职责范围：
//   - 清屏并填充坐标区域背景
//   - 按 Frame.Shapes 的顺序逐个绘制（后绘制的覆盖先绘制的）
//   - 世界坐标 → 屏幕坐标转换（等比例视口）
//   - 线宽、标记大小、字号从磅换算为像素
//
// 不保留任何跨帧的图形状态，只复用顶点缓冲区。
type RenderSystem struct {
	viewport utils.Viewport
	face     *text.GoTextFace
	figure   color.RGBA

	vertices []ebiten.Vertex // 顶点数组（复用，避免每帧分配）
	indices  []uint16        // 索引数组（复用，避免每帧分配）
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	pix := make([]byte, 4*3*3)
	for i := range pix {
		pix[i] = 0xff
	}
	whiteImage.WritePixels(pix)
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - viewport: 世界坐标到屏幕坐标的映射
//   - face: 文字字体，为 nil 时不绘制文字
//   - figure: 视口之外区域的填充色
func NewRenderSystem(viewport utils.Viewport, face *text.GoTextFace, figure color.RGBA) *RenderSystem {
	return &RenderSystem{
		viewport: viewport,
		face:     face,
		figure:   figure,
		vertices: make([]ebiten.Vertex, 0, 4096),
		indices:  make([]uint16, 0, 8192),
	}
}

// Draw 清屏并绘制整帧
func (s *RenderSystem) Draw(screen *ebiten.Image, frame *components.Frame) {
	screen.Fill(s.figure)
	if frame == nil {
		return
	}

	bx, by, bw, bh := s.viewport.Bounds()
	vector.DrawFilledRect(screen, float32(bx), float32(by), float32(bw), float32(bh), frame.Background, false)

	for i := range frame.Shapes {
		s.drawShape(screen, &frame.Shapes[i])
	}
}

func (s *RenderSystem) drawShape(screen *ebiten.Image, shape *components.Shape) {
	if len(shape.Points) == 0 || shape.Alpha <= 0 {
		return
	}

	switch shape.Kind {
	case components.ShapePolygon:
		s.drawPolygon(screen, shape)
	case components.ShapeLine:
		s.drawLine(screen, shape)
	case components.ShapeCircle:
		c := shape.Anchor()
		cx, cy := s.viewport.WorldToScreen(c.X, c.Y)
		r := s.viewport.LengthToScreen(shape.Radius)
		if r <= 0 {
			return
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), withAlpha(shape.Color, shape.Alpha), true)
	case components.ShapeMarker:
		s.drawMarker(screen, shape)
	case components.ShapeText:
		s.drawText(screen, shape)
	}
}

func (s *RenderSystem) drawPolygon(screen *ebiten.Image, shape *components.Shape) {
	if len(shape.Points) < 3 {
		return
	}
	path := s.worldPath(shape.Points)

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.drawVertices(screen, shape.Color, shape.Alpha, true)

	if shape.Outline && shape.OutlineWidth > 0 {
		s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], &vector.StrokeOptions{
			Width:    float32(config.PointsToPixels(shape.OutlineWidth)),
			LineJoin: vector.LineJoinRound,
		})
		s.drawVertices(screen, shape.OutlineColor, 1, false)
	}
}

func (s *RenderSystem) drawLine(screen *ebiten.Image, shape *components.Shape) {
	if len(shape.Points) < 2 {
		return
	}
	x0, y0 := s.viewport.WorldToScreen(shape.Points[0].X, shape.Points[0].Y)
	x1, y1 := s.viewport.WorldToScreen(shape.Points[1].X, shape.Points[1].Y)
	if x0 == x1 && y0 == y1 {
		return
	}
	width := config.PointsToPixels(shape.Width)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(width),
		withAlpha(shape.Color, shape.Alpha), true)
}

// drawMarker 标记大小不随视口缩放，Size 为标记直径（磅）
func (s *RenderSystem) drawMarker(screen *ebiten.Image, shape *components.Shape) {
	anchor := shape.Anchor()
	cx, cy := s.viewport.WorldToScreen(anchor.X, anchor.Y)
	radius := config.PointsToPixels(shape.Size) / 2

	switch shape.Glyph {
	case components.MarkerStar:
		pts := utils.RegularStar(cx, cy, radius, radius*0.4, 5, -math.Pi/2)
		var path vector.Path
		for i, p := range pts {
			if i == 0 {
				path.MoveTo(float32(p.X), float32(p.Y))
				continue
			}
			path.LineTo(float32(p.X), float32(p.Y))
		}
		path.Close()
		s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
		s.drawVertices(screen, shape.Color, shape.Alpha, true)
	default:
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(radius), withAlpha(shape.Color, shape.Alpha), true)
	}
}

// drawText 锚点为文字基线左端
func (s *RenderSystem) drawText(screen *ebiten.Image, shape *components.Shape) {
	if s.face == nil || shape.Text == "" {
		return
	}
	anchor := shape.Anchor()
	x, y := s.viewport.WorldToScreen(anchor.X, anchor.Y)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-s.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(shape.Color)
	op.ColorScale.ScaleAlpha(float32(shape.Alpha))
	text.Draw(screen, shape.Text, s.face, op)
}

// worldPath 将世界坐标点序列转换为闭合的屏幕路径
func (s *RenderSystem) worldPath(points []components.Point) *vector.Path {
	var path vector.Path
	for i, p := range points {
		x, y := s.viewport.WorldToScreen(p.X, p.Y)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
			continue
		}
		path.LineTo(float32(x), float32(y))
	}
	path.Close()
	return &path
}

// drawVertices 使用单色绘制当前缓冲区中的三角形
// nonZero 为 true 时按非零环绕规则填充（凹多边形需要）
func (s *RenderSystem) drawVertices(screen *ebiten.Image, c color.RGBA, alpha float64, nonZero bool) {
	if len(s.indices) == 0 {
		return
	}
	r, g, b, a := vertexColor(c, alpha)
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	if nonZero {
		op.FillRule = ebiten.FillRuleNonZero
	}
	screen.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}

// vertexColor 返回顶点颜色（非预乘 Alpha，与 DrawTrianglesOptions 的默认模式一致）
func vertexColor(c color.RGBA, alpha float64) (float32, float32, float32, float32) {
	a := float32(utils.Clamp01(alpha)) * float32(c.A) / 0xff
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, a
}

// withAlpha 返回叠加不透明度后的非预乘颜色
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	a := utils.Clamp01(alpha) * float64(c.A)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a))}
}
