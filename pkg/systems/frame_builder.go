package systems

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/bloom/pkg/components"
	"github.com/decker502/bloom/pkg/config"
	"github.com/decker502/bloom/pkg/types"
	"github.com/decker502/bloom/pkg/utils"
)

// RenderContext 单帧渲染所需的全部输入
//
// 帧生成不依赖任何全局状态：样式、帧序号和随机数源都由调用者显式传入。
type RenderContext struct {
	// Frame 帧序号（负数按 0 处理）
	Frame int
	// Style 动画配置（只读）
	Style *config.BloomConfig
	// Rand 闪光颜色随机数源，为 nil 时所有闪光使用颜色集中的第一个颜色
	Rand *rand.Rand
}

// Progress 各动画阶段在当前帧的进度，均在 [0, 1] 区间
type Progress struct {
	Stem  float64
	Leaf  float64
	Petal float64
	// Magic 闪光阶段的原始进度，不做上限截断（数量上限另行控制）
	Magic float64
	// Label 进度文字显示的百分比（0 ~ 100）
	Label float64
}

// ComputeProgress 根据帧序号计算所有阶段进度
func ComputeProgress(frame int, tl config.TimelineConfig) Progress {
	if frame < 0 {
		frame = 0
	}
	magic := 0.0
	if frame >= tl.Sparkles.Start {
		magic = float64(frame-tl.Sparkles.Start) / float64(tl.Sparkles.Duration)
	}
	return Progress{
		Stem:  utils.PhaseProgress(frame, tl.Stem.Start, tl.Stem.Duration),
		Leaf:  utils.PhaseProgress(frame, tl.Leaves.Start, tl.Leaves.Duration),
		Petal: utils.PhaseProgress(frame, tl.Petals.Start, tl.Petals.Duration),
		Magic: magic,
		Label: math.Min(float64(frame-tl.Label.Start)/float64(tl.Label.Duration)*100, 100),
	}
}

// StemHeight 返回当前茎高度
func StemHeight(p Progress) float64 {
	return p.Stem * config.StemMaxHeight
}

// SparkleCount 返回当前可见的闪光数量
// 数量随进度线性增长，不超过上限
func SparkleCount(p Progress, limit int) int {
	if p.Magic <= 0 {
		return 0
	}
	return min(int(p.Magic*float64(limit)), limit)
}

// CenterRadius 返回花心半径；花瓣进度未超过阈值时为 0
func CenterRadius(p Progress) float64 {
	if p.Petal <= config.CenterThreshold {
		return 0
	}
	return (p.Petal - config.CenterThreshold) * config.CenterGrowth
}

// PetalsVisible 返回某层当前可见的花瓣数量
// 第 i 片花瓣在 progress > i/n 时出现（严格大于）
func PetalsVisible(p Progress, layer int) int {
	n := PetalCount(layer)
	visible := 0
	for i := 0; i < n; i++ {
		if p.Petal > float64(i)/float64(n) {
			visible++
		}
	}
	return visible
}

// PetalCount 返回某层花瓣总数
func PetalCount(layer int) int {
	return config.PetalBaseCount + config.PetalCountStep*layer
}

// ProgressLabel 返回进度文字；超出显示区间时返回空字符串
func ProgressLabel(frame int, tl config.TimelineConfig) string {
	if frame < 0 {
		frame = 0
	}
	if frame < tl.Label.Start || frame >= tl.Label.Start+tl.Label.Duration {
		return ""
	}
	return fmt.Sprintf(tl.LabelFormat, ComputeProgress(frame, tl).Label)
}

// BuildFrame 生成一帧完整的场景描述
//
// 绘制顺序（即图层顺序）：茎 → 刺 → 叶片 → 花瓣 → 花心 → 雄蕊 → 闪光 → 星星 → 进度文字
func BuildFrame(ctx RenderContext) *components.Frame {
	f := ctx.Frame
	if f < 0 {
		f = 0
	}
	style := ctx.Style
	tl := style.Timeline
	pal := style.Colors()
	p := ComputeProgress(f, tl)

	frame := &components.Frame{
		Index:      f,
		Background: pal.Background,
	}

	if f >= tl.Stem.Start {
		buildStem(frame, p, pal)
	}
	if f >= tl.Leaves.Start {
		buildLeaves(frame, p, pal)
	}
	if f >= tl.Petals.Start {
		buildPetals(frame, p, pal)
		buildCenter(frame, p, pal)
	}
	if f >= tl.Sparkles.Start {
		buildSparkles(frame, f, p, tl.Sparkles.Max, pal, ctx.Rand)
	}
	if f >= tl.Stars.Start {
		buildStars(frame, f, pal)
	}
	if label := ProgressLabel(f, tl); label != "" {
		frame.Add(components.Shape{
			Kind:   components.ShapeText,
			Part:   types.PartLabel,
			Points: []components.Point{{X: config.LabelX, Y: config.LabelY}},
			Color:  pal.Label,
			Alpha:  config.LabelAlpha,
			Size:   config.LabelSize,
			Text:   label,
		})
	}

	return frame
}

func buildStem(frame *components.Frame, p Progress, pal *config.Palette) {
	height := StemHeight(p)
	frame.Add(line(types.PartStem,
		config.StemBaseX, config.StemBaseY,
		config.StemBaseX, config.StemBaseY+height,
		pal.Stem, config.StemAlpha, config.StemWidth))

	if height <= config.ThornMinStemHeight {
		return
	}
	for i := 0; i < int(height); i++ {
		y := config.StemBaseY + float64(i) + config.ThornOffset
		frame.Add(line(types.PartThorn,
			config.StemBaseX-config.ThornHalfLength, y,
			config.StemBaseX+config.ThornHalfLength, y,
			pal.Thorn, config.ThornAlpha, config.ThornWidth))
	}
}

// buildLeaves 左叶从阶段开始的第一帧就存在（此时尺寸为 0），右叶在进度严格超过一半后出现
func buildLeaves(frame *components.Frame, p Progress, pal *config.Palette) {
	size := p.Leaf * config.LeftLeafMaxSize
	frame.Add(polygon(types.PartLeaf,
		utils.LeafArc(config.LeftLeafX, config.LeftLeafY, size, false, config.LeafSamples),
		pal.Leaf, config.LeafAlpha))
	frame.Add(line(types.PartLeafVein,
		config.LeftLeafX, config.LeftLeafY,
		config.StemBaseX, config.LeftVeinEndY,
		pal.Thorn, 1, config.LeafVeinWidth))

	if p.Leaf > config.RightLeafThreshold {
		size := (p.Leaf - config.RightLeafThreshold) * config.RightLeafGrowth
		frame.Add(polygon(types.PartLeaf,
			utils.LeafArc(config.RightLeafX, config.RightLeafY, size, true, config.LeafSamples),
			pal.Leaf, config.LeafAlpha))
		frame.Add(line(types.PartLeafVein,
			config.RightLeafX, config.RightLeafY,
			config.StemBaseX, config.RightVeinEndY,
			pal.Thorn, 1, config.LeafVeinWidth))
	}
}

func buildPetals(frame *components.Frame, p Progress, pal *config.Palette) {
	for layer := 0; layer < config.PetalLayers; layer++ {
		n := PetalCount(layer)
		radius := config.PetalBaseRadius - config.PetalRadiusStep*float64(layer)
		size := config.PetalBaseSize * (config.PetalSizeFactor - config.PetalSizeStep*float64(layer))
		alpha := config.PetalBaseAlpha - config.PetalAlphaStep*float64(layer)

		// 可见花瓣总是从第 0 片开始的连续序列
		visible := PetalsVisible(p, layer)
		for i := 0; i < visible; i++ {
			angle := 2*math.Pi*float64(i)/float64(n) + config.PetalLayerTwist*float64(layer)
			pos := utils.PolarPoint(config.FlowerCenterX, config.FlowerCenterY,
				radius*config.PetalRadiusScale, angle)

			petal := polygon(types.PartPetal,
				utils.HeartCurve(pos.X, pos.Y, size, angle, config.HeartSamples),
				pal.Petals[layer], alpha)
			petal.Layer = layer
			petal.Outline = true
			petal.OutlineColor = pal.PetalOutline
			petal.OutlineWidth = config.PetalOutlineWidth
			frame.Add(petal)
		}
	}
}

func buildCenter(frame *components.Frame, p Progress, pal *config.Palette) {
	radius := CenterRadius(p)
	if radius <= 0 {
		return
	}
	frame.Add(components.Shape{
		Kind:   components.ShapeCircle,
		Part:   types.PartCenter,
		Points: []components.Point{{X: config.FlowerCenterX, Y: config.FlowerCenterY}},
		Color:  pal.Center,
		Alpha:  config.CenterAlpha,
		Radius: radius,
	})

	if radius <= config.StamenThreshold {
		return
	}
	for i := 0; i < config.StamenCount; i++ {
		angle := float64(i) * 2 * math.Pi / config.StamenCount
		frame.Add(components.Shape{
			Kind:   components.ShapeMarker,
			Part:   types.PartStamen,
			Points: []components.Point{utils.PolarPoint(config.FlowerCenterX, config.FlowerCenterY, config.StamenRadius, angle)},
			Color:  pal.Stamen,
			Alpha:  1,
			Glyph:  components.MarkerDot,
			Size:   config.StamenSize,
		})
	}
}

func buildSparkles(frame *components.Frame, f int, p Progress, limit int, pal *config.Palette, rng *rand.Rand) {
	count := SparkleCount(p, limit)
	for i := 0; i < count; i++ {
		angle := float64(f+i*config.SparklePhaseOffset) * config.SparkleAngleStep
		distance := config.SparkleOrbitBase +
			config.SparkleOrbitSwing*math.Sin(float64(f+i*config.SparkleOrbitOffset)*config.SparkleOrbitRate)
		cx := config.FlowerCenterX + distance*math.Cos(angle)
		cy := config.FlowerCenterY + distance*math.Sin(angle) + config.SparkleLift

		frame.Add(polygon(types.PartSparkle,
			utils.SparklePolygon(cx, cy, config.SparkleSize, config.SparkleInnerRatio, config.SparklePoints),
			pickColor(pal.Sparkles, rng), config.SparkleAlpha))
	}
}

func buildStars(frame *components.Frame, f int, pal *config.Palette) {
	for i := 0; i < config.StarCount; i++ {
		x := config.StarLeft + float64(i)*config.StarSpan/config.StarCount
		y := config.StarBaseY + config.StarSwing*math.Sin(float64(f+i*config.StarSwingOffset)*config.StarSwingRate)
		brightness := 0.5 + 0.5*math.Sin(float64(f+i*config.StarPulseOffset)*config.StarPulseRate)

		frame.Add(components.Shape{
			Kind:   components.ShapeMarker,
			Part:   types.PartStar,
			Points: []components.Point{{X: x, Y: y}},
			Color:  pal.Star,
			Alpha:  brightness,
			Glyph:  components.MarkerStar,
			Size:   config.StarSize,
		})
	}
}

// pickColor 从颜色集中均匀随机选取一个颜色
func pickColor(set []color.RGBA, rng *rand.Rand) color.RGBA {
	if len(set) == 0 {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	if rng == nil {
		return set[0]
	}
	return set[rng.Intn(len(set))]
}

func line(part types.Part, x0, y0, x1, y1 float64, c color.RGBA, alpha, width float64) components.Shape {
	return components.Shape{
		Kind:   components.ShapeLine,
		Part:   part,
		Points: []components.Point{{X: x0, Y: y0}, {X: x1, Y: y1}},
		Color:  c,
		Alpha:  alpha,
		Width:  width,
	}
}

func polygon(part types.Part, pts []components.Point, c color.RGBA, alpha float64) components.Shape {
	return components.Shape{
		Kind:   components.ShapePolygon,
		Part:   part,
		Points: pts,
		Color:  c,
		Alpha:  alpha,
	}
}
