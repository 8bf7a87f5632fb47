package utils

import (
	"math"

	"github.com/decker502/bloom/pkg/components"
)

// 参数曲线
//
// 所有函数都是纯函数：相同参数总是返回相同的点序列。

// Linspace 返回 [start, stop] 区间内 n 个等距采样值（包含两端）
// n == 1 时只返回 start，n <= 0 返回 nil
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	// 避免累积误差，末端精确落在 stop
	out[n-1] = stop
	return out
}

// HeartCurve 生成心形花瓣轮廓
//
// 参数方程（t ∈ [0, 2π]）：
//
//	x = 16 sin³t
//	y = 13 cos t − 5 cos 2t − 2 cos 3t − cos 4t
//
// 曲线先按 size 缩放，再绕原点旋转 angle 弧度，最后平移到 (cx, cy)。
// 首尾采样点重合，轮廓闭合。
func HeartCurve(cx, cy, size, angle float64, samples int) []components.Point {
	ts := Linspace(0, 2*math.Pi, samples)
	cosA, sinA := math.Cos(angle), math.Sin(angle)

	points := make([]components.Point, len(ts))
	for i, t := range ts {
		s := math.Sin(t)
		x := size * (16 * s * s * s)
		y := size * (13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))
		points[i] = components.Point{
			X: x*cosA - y*sinA + cx,
			Y: x*sinA + y*cosA + cy,
		}
	}
	return points
}

// LeafArc 生成半椭圆形叶片轮廓（t ∈ [0, π]）
//
// mirrored 为 false 时叶片向左展开：x = −size·cos t + ax
// mirrored 为 true 时叶片向右展开：x = size·cos t + ax
// 两种情况下 y = size·sin t + ay
func LeafArc(ax, ay, size float64, mirrored bool, samples int) []components.Point {
	ts := Linspace(0, math.Pi, samples)
	dir := -1.0
	if mirrored {
		dir = 1.0
	}

	points := make([]components.Point, len(ts))
	for i, t := range ts {
		points[i] = components.Point{
			X: dir*size*math.Cos(t) + ax,
			Y: size*math.Sin(t) + ay,
		}
	}
	return points
}

// SparklePolygon 生成闪光星形多边形
//
// 在 [0, 2π] 上取 points 个等距角度（包含两端），偶数序号的顶点使用外半径 size，
// 奇数序号的顶点使用内半径 size*innerRatio。
func SparklePolygon(cx, cy, size, innerRatio float64, points int) []components.Point {
	angles := Linspace(0, 2*math.Pi, points)
	inner := size * innerRatio

	out := make([]components.Point, len(angles))
	for i, a := range angles {
		r := size
		if i%2 == 1 {
			r = inner
		}
		out[i] = components.Point{
			X: cx + r*math.Cos(a),
			Y: cy + r*math.Sin(a),
		}
	}
	return out
}

// RegularStar 生成正多角星轮廓（tips 个尖角，共 2*tips 个顶点）
//
// 第一个尖角位于 rotation 方向，外半径 outer，内半径 inner。
// 渲染系统用它在屏幕坐标中绘制星形标记。
func RegularStar(cx, cy, outer, inner float64, tips int, rotation float64) []components.Point {
	if tips <= 0 {
		return nil
	}
	n := tips * 2
	out := make([]components.Point, n)
	for i := 0; i < n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := rotation + math.Pi*float64(i)/float64(tips)
		out[i] = components.Point{
			X: cx + r*math.Cos(a),
			Y: cy + r*math.Sin(a),
		}
	}
	return out
}

// PolarPoint 返回以 (cx, cy) 为中心、距离 r、角度 angle 的点
func PolarPoint(cx, cy, r, angle float64) components.Point {
	return components.Point{
		X: cx + r*math.Cos(angle),
		Y: cy + r*math.Sin(angle),
	}
}
