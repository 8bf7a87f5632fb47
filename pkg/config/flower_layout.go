package config

// 花朵几何布局常量
// 所有坐标使用世界坐标系（X 向右，Y 向上），可见范围由 data/bloom.yaml 的 viewport 决定

// Stem 茎配置
const (
	// StemBaseX 茎底部 X 坐标
	StemBaseX = 0.0
	// StemBaseY 茎底部 Y 坐标（视口下边界）
	StemBaseY = -6.0
	// StemMaxHeight 茎完全长成后的高度
	StemMaxHeight = 6.0
	// StemWidth 茎线宽（磅）
	StemWidth = 8.0
	// StemAlpha 茎不透明度
	StemAlpha = 0.9

	// ThornHalfLength 刺的半长（刺从 -0.1 画到 0.1）
	ThornHalfLength = 0.1
	// ThornOffset 刺在每个单位高度内的偏移（y = base + i + 0.5）
	ThornOffset = 0.5
	// ThornMinStemHeight 茎高度超过此值才开始长刺
	ThornMinStemHeight = 1.0
	// ThornWidth 刺线宽（磅）
	ThornWidth = 2.0
	// ThornAlpha 刺不透明度
	ThornAlpha = 0.7
)

// Leaf 叶片配置
// 左叶随进度线性生长；进度超过一半后右叶出现，用剩余一半进度长到相同大小
const (
	// LeafSamples 叶片半椭圆弧采样点数
	LeafSamples = 30
	// LeftLeafMaxSize 左叶最大尺寸（size = progress * 1.5）
	LeftLeafMaxSize = 1.5
	// LeftLeafX / LeftLeafY 左叶附着点
	LeftLeafX = -2.0
	LeftLeafY = -2.0
	// LeftVeinEndY 左叶连接线在茎上的终点 Y
	LeftVeinEndY = -1.0

	// RightLeafThreshold 右叶出现所需的叶片进度（严格大于）
	RightLeafThreshold = 0.5
	// RightLeafGrowth 右叶尺寸系数（size = (progress - 0.5) * 3）
	RightLeafGrowth = 3.0
	// RightLeafX / RightLeafY 右叶附着点
	RightLeafX = 1.5
	RightLeafY = -3.0
	// RightVeinEndY 右叶连接线在茎上的终点 Y
	RightVeinEndY = -2.0

	// LeafAlpha 叶片不透明度
	LeafAlpha = 0.8
	// LeafVeinWidth 连接线线宽（磅）
	LeafVeinWidth = 3.0
)

// Petal 花瓣配置
const (
	// PetalLayers 花瓣层数
	PetalLayers = 3
	// PetalBaseCount 第 0 层花瓣数，每向内一层增加 PetalCountStep
	PetalBaseCount = 6
	PetalCountStep = 2
	// PetalBaseRadius 第 0 层花瓣所在圆半径，每向内一层减少 PetalRadiusStep
	PetalBaseRadius = 2.0
	PetalRadiusStep = 0.3
	// PetalRadiusScale 花瓣位置相对于层半径的缩放
	PetalRadiusScale = 0.7
	// PetalBaseSize / PetalSizeFactor / PetalSizeStep: size = 0.15 * (1.2 - 0.2 * layer)
	PetalBaseSize   = 0.15
	PetalSizeFactor = 1.2
	PetalSizeStep   = 0.2
	// PetalLayerTwist 每层花瓣的附加旋转（弧度）
	PetalLayerTwist = 0.2
	// PetalBaseAlpha 第 0 层不透明度，每向内一层减少 PetalAlphaStep
	PetalBaseAlpha = 0.9
	PetalAlphaStep = 0.1
	// PetalOutlineWidth 花瓣白色轮廓线宽（磅）
	PetalOutlineWidth = 0.5
	// HeartSamples 心形曲线采样点数
	HeartSamples = 100

	// FlowerCenterX / FlowerCenterY 花心位置
	FlowerCenterX = 0.0
	FlowerCenterY = 0.0
)

// Center 花心与雄蕊配置
const (
	// CenterThreshold 花瓣进度超过此值后开始绘制花心（严格大于）
	CenterThreshold = 0.8
	// CenterGrowth 花心半径 = (progress - 0.8) * 5 * 0.5
	CenterGrowth = 5.0 * 0.5
	// CenterAlpha 花心不透明度
	CenterAlpha = 0.9
	// StamenThreshold 花心半径超过此值后绘制雄蕊
	StamenThreshold = 0.15
	// StamenCount 雄蕊数量
	StamenCount = 8
	// StamenRadius 雄蕊到花心的距离
	StamenRadius = 0.1
	// StamenSize 雄蕊圆点大小（磅）
	StamenSize = 3.0
)

// Sparkle 魔法闪光配置
const (
	// SparklePoints 闪光多边形顶点数
	SparklePoints = 8
	// SparkleSize 闪光外半径
	SparkleSize = 0.15
	// SparkleInnerRatio 内半径与外半径之比
	SparkleInnerRatio = 0.4
	// SparkleAlpha 闪光不透明度
	SparkleAlpha = 0.8
	// SparkleAngleStep / SparklePhaseOffset: angle = (f + i*30) * 0.1
	SparkleAngleStep   = 0.1
	SparklePhaseOffset = 30
	// SparkleOrbitBase / SparkleOrbitSwing: distance = 3 + 1.5*sin((f + i*20) * 0.05)
	SparkleOrbitBase   = 3.0
	SparkleOrbitSwing  = 1.5
	SparkleOrbitOffset = 20
	SparkleOrbitRate   = 0.05
	// SparkleLift 闪光轨道中心相对花心的垂直偏移
	SparkleLift = 1.0
)

// Star 背景星星配置
const (
	// StarCount 星星数量
	StarCount = 15
	// StarLeft 第一颗星的 X 坐标，星星均匀分布在 StarSpan 宽度内
	StarLeft = -7.0
	StarSpan = 14.0
	// StarBaseY / StarSwing: y = 8 + 1.5*sin((f + i*30) * 0.1)
	StarBaseY       = 8.0
	StarSwing       = 1.5
	StarSwingOffset = 30
	StarSwingRate   = 0.1
	StarPulseOffset = 20
	StarPulseRate   = 0.15
	// StarSize 星星标记大小（磅）
	StarSize = 8.0
)

// Label 进度文字配置
const (
	LabelX     = -7.5
	LabelY     = -5.5
	LabelSize  = 10.0
	LabelAlpha = 0.7
)

// PointsPerInch 磅与像素换算：1 磅 = 1/72 英寸
const PointsPerInch = 72.0

// DotsPerInch 渲染分辨率（每英寸像素数）
const DotsPerInch = 100.0

// PointsToPixels 将磅值换算为像素
func PointsToPixels(pt float64) float64 {
	return pt * DotsPerInch / PointsPerInch
}
