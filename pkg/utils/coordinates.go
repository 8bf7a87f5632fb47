// Package utils 提供动画渲染中常用的工具函数
//
// coordinates.go 提供世界坐标与屏幕坐标之间的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：花朵所在的数学坐标系，X 向右，Y 向上，可见范围由视口决定（默认 x∈[-8,8], y∈[-6,10]）
//   - **屏幕坐标**：相对于游戏窗口左上角，X 向右，Y 向下（Ebiten 默认行为）
//
// # 核心转换公式
//
// 视口保持等比例（X 与 Y 每单位对应相同像素数），并在屏幕中居中：
//
//	screenX = OffsetX + (worldX - XMin) * Scale
//	screenY = OffsetY + (YMax - worldY) * Scale
//
// 其中 Scale = min(screenW / (XMax-XMin), screenH / (YMax-YMin))。
package utils

import "math"

// Viewport 世界坐标到屏幕坐标的等比例映射
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64

	// Scale 每个世界单位对应的像素数
	Scale float64
	// OffsetX / OffsetY 坐标区域左上角在屏幕上的位置
	OffsetX float64
	OffsetY float64
}

// NewViewport 创建视口映射
//
// 参数：
//   - xMin, xMax, yMin, yMax: 世界坐标可见范围
//   - screenW, screenH: 屏幕尺寸（像素）
//
// 坐标区域按等比例缩放后在屏幕中居中，多余部分留白（由渲染系统填充背景色）
func NewViewport(xMin, xMax, yMin, yMax float64, screenW, screenH int) Viewport {
	worldW := xMax - xMin
	worldH := yMax - yMin

	scale := 0.0
	if worldW > 0 && worldH > 0 {
		scale = math.Min(float64(screenW)/worldW, float64(screenH)/worldH)
	}

	return Viewport{
		XMin:    xMin,
		XMax:    xMax,
		YMin:    yMin,
		YMax:    yMax,
		Scale:   scale,
		OffsetX: (float64(screenW) - worldW*scale) / 2,
		OffsetY: (float64(screenH) - worldH*scale) / 2,
	}
}

// WorldToScreen 将世界坐标转换为屏幕坐标
func (v Viewport) WorldToScreen(x, y float64) (float64, float64) {
	return v.OffsetX + (x-v.XMin)*v.Scale, v.OffsetY + (v.YMax-y)*v.Scale
}

// ScreenToWorld 将屏幕坐标转换为世界坐标
// Scale 为 0 时返回视口左上角
func (v Viewport) ScreenToWorld(sx, sy float64) (float64, float64) {
	if v.Scale == 0 {
		return v.XMin, v.YMax
	}
	return v.XMin + (sx-v.OffsetX)/v.Scale, v.YMax - (sy-v.OffsetY)/v.Scale
}

// LengthToScreen 将世界坐标长度转换为像素长度
func (v Viewport) LengthToScreen(l float64) float64 {
	return l * v.Scale
}

// Bounds 返回坐标区域在屏幕上的矩形（x, y, width, height）
func (v Viewport) Bounds() (float64, float64, float64, float64) {
	return v.OffsetX, v.OffsetY, (v.XMax - v.XMin) * v.Scale, (v.YMax - v.YMin) * v.Scale
}
