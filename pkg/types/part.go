// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Part 标识一个图形属于花朵的哪个部位
// 每帧生成的图形都带有部位标签，便于测试和调试工具按部位统计
type Part int

const (
	// PartUnknown 未知部位
	PartUnknown Part = iota
	// PartStem 茎
	PartStem
	// PartThorn 茎上的刺
	PartThorn
	// PartLeaf 叶片
	PartLeaf
	// PartLeafVein 叶片与茎之间的连接线
	PartLeafVein
	// PartPetal 花瓣
	PartPetal
	// PartCenter 花心
	PartCenter
	// PartStamen 雄蕊（花心周围的小点）
	PartStamen
	// PartSparkle 魔法闪光
	PartSparkle
	// PartStar 背景星星
	PartStar
	// PartLabel 进度文字
	PartLabel
)

// String 返回部位的字符串表示
func (p Part) String() string {
	switch p {
	case PartStem:
		return "Stem"
	case PartThorn:
		return "Thorn"
	case PartLeaf:
		return "Leaf"
	case PartLeafVein:
		return "LeafVein"
	case PartPetal:
		return "Petal"
	case PartCenter:
		return "Center"
	case PartStamen:
		return "Stamen"
	case PartSparkle:
		return "Sparkle"
	case PartStar:
		return "Star"
	case PartLabel:
		return "Label"
	default:
		return "Unknown"
	}
}

// AllParts 按绘制顺序返回所有已知部位
func AllParts() []Part {
	return []Part{
		PartStem, PartThorn, PartLeaf, PartLeafVein, PartPetal,
		PartCenter, PartStamen, PartSparkle, PartStar, PartLabel,
	}
}
