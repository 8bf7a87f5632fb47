package utils

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestNewViewport 测试等比例视口在不同屏幕尺寸下的缩放和居中
func TestNewViewport(t *testing.T) {
	tests := []struct {
		name             string
		screenW, screenH int
		wantScale        float64
		wantOffX         float64
		wantOffY         float64
	}{
		{"宽屏", 1200, 1000, 62.5, 100, 0},
		{"正方形", 800, 800, 50, 0, 0},
		{"竖屏", 400, 1000, 25, 0, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(-8, 8, -6, 10, tt.screenW, tt.screenH)
			if !approxEqual(v.Scale, tt.wantScale) {
				t.Errorf("Scale = %v, 期望 %v", v.Scale, tt.wantScale)
			}
			if !approxEqual(v.OffsetX, tt.wantOffX) || !approxEqual(v.OffsetY, tt.wantOffY) {
				t.Errorf("Offset = (%v, %v), 期望 (%v, %v)", v.OffsetX, v.OffsetY, tt.wantOffX, tt.wantOffY)
			}
		})
	}
}

// TestWorldToScreen 测试世界坐标到屏幕坐标的转换（Y 轴翻转）
func TestWorldToScreen(t *testing.T) {
	v := NewViewport(-8, 8, -6, 10, 1200, 1000)

	tests := []struct {
		name           string
		wx, wy         float64
		wantSX, wantSY float64
	}{
		{"左上角", -8, 10, 100, 0},
		{"右下角", 8, -6, 1100, 1000},
		{"原点", 0, 0, 600, 625},
		{"茎底部", 0, -6, 600, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := v.WorldToScreen(tt.wx, tt.wy)
			if !approxEqual(sx, tt.wantSX) || !approxEqual(sy, tt.wantSY) {
				t.Errorf("WorldToScreen(%v, %v) = (%v, %v), 期望 (%v, %v)",
					tt.wx, tt.wy, sx, sy, tt.wantSX, tt.wantSY)
			}
		})
	}
}

// TestScreenToWorldRoundTrip 验证正反转换互逆
func TestScreenToWorldRoundTrip(t *testing.T) {
	v := NewViewport(-8, 8, -6, 10, 1200, 1000)
	for _, p := range [][2]float64{{0, 0}, {-7.5, -5.5}, {3.2, 8.1}} {
		sx, sy := v.WorldToScreen(p[0], p[1])
		wx, wy := v.ScreenToWorld(sx, sy)
		if !approxEqual(wx, p[0]) || !approxEqual(wy, p[1]) {
			t.Errorf("round trip %v -> (%v, %v)", p, wx, wy)
		}
	}
}

func TestViewportEqualAspect(t *testing.T) {
	v := NewViewport(-8, 8, -6, 10, 1200, 1000)
	x0, y0 := v.WorldToScreen(0, 0)
	x1, _ := v.WorldToScreen(1, 0)
	_, y1 := v.WorldToScreen(0, 1)
	if !approxEqual(x1-x0, y0-y1) {
		t.Errorf("unit lengths differ: dx=%v dy=%v", x1-x0, y0-y1)
	}
	if got := v.LengthToScreen(2); !approxEqual(got, 125) {
		t.Errorf("LengthToScreen(2) = %v, 期望 125", got)
	}

	bx, by, bw, bh := v.Bounds()
	if !approxEqual(bx, 100) || !approxEqual(by, 0) || !approxEqual(bw, 1000) || !approxEqual(bh, 1000) {
		t.Errorf("Bounds = (%v, %v, %v, %v)", bx, by, bw, bh)
	}
}
