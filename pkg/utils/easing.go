package utils

import "math"

// 进度函数
//
// 动画的每个阶段都由帧序号推导出一个 [0, 1] 区间内的进度值。
// 进度只随帧序号单调递增，达到 1 后保持不变，不会外推到完全长成之后。

// Clamp01 将 t 限制在 [0, 1] 区间
// NaN 视为 0
func Clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// PhaseProgress 计算阶段进度
// 公式：clamp((frame - start) / duration, 0, 1)
// duration <= 0 时阶段视为瞬间完成：frame >= start 返回 1，否则返回 0
func PhaseProgress(frame, start, duration int) float64 {
	if duration <= 0 {
		if frame >= start {
			return 1
		}
		return 0
	}
	return Clamp01(float64(frame-start) / float64(duration))
}
