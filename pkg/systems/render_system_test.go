package systems

import (
	"bytes"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/bloom/pkg/config"
	"github.com/decker502/bloom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func TestVertexColor(t *testing.T) {
	c := color.RGBA{R: 0xFF, G: 0x69, B: 0xB4, A: 0xFF}
	r, g, b, a := vertexColor(c, 0.8)
	if r != 1 || math.Abs(float64(g)-105.0/255) > 1e-6 || math.Abs(float64(b)-180.0/255) > 1e-6 {
		t.Errorf("rgb = (%v, %v, %v)", r, g, b)
	}
	if math.Abs(float64(a)-0.8) > 1e-6 {
		t.Errorf("alpha = %v, 期望 0.8", a)
	}

	// 不透明度超出范围时截断
	if _, _, _, a := vertexColor(c, 1.7); a != 1 {
		t.Errorf("alpha = %v, 期望 1", a)
	}
	if _, _, _, a := vertexColor(c, -0.2); a != 0 {
		t.Errorf("alpha = %v, 期望 0", a)
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		name  string
		c     color.RGBA
		alpha float64
		want  color.NRGBA
	}{
		{"不透明", color.RGBA{R: 0x32, G: 0xCD, B: 0x32, A: 0xFF}, 1, color.NRGBA{R: 0x32, G: 0xCD, B: 0x32, A: 0xFF}},
		{"半透明", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, 0.5, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 128}},
		{"茎", color.RGBA{R: 0x32, G: 0xCD, B: 0x32, A: 0xFF}, 0.9, color.NRGBA{R: 0x32, G: 0xCD, B: 0x32, A: 230}},
		{"全透明", color.RGBA{R: 0xFF, A: 0xFF}, 0, color.NRGBA{R: 0xFF, A: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withAlpha(tt.c, tt.alpha); got != tt.want {
				t.Errorf("withAlpha = %v, 期望 %v", got, tt.want)
			}
		})
	}
}

// TestRenderSystemDraw 在离屏图像上绘制各阶段的帧
func TestRenderSystemDraw(t *testing.T) {
	style := config.DefaultBloomConfig()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("failed to load font: %v", err)
	}
	face := &text.GoTextFace{Source: source, Size: config.PointsToPixels(config.LabelSize)}
	viewport := utils.NewViewport(style.Viewport.XMin, style.Viewport.XMax,
		style.Viewport.YMin, style.Viewport.YMax, style.Window.Width, style.Window.Height)
	rs := NewRenderSystem(viewport, face, style.Colors().Figure)
	screen := ebiten.NewImage(style.Window.Width, style.Window.Height)

	tests := []struct {
		name  string
		frame int
	}{
		{name: "第一帧", frame: 0},
		{name: "花瓣生长中", frame: 100},
		{name: "最后一帧", frame: 249},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildFrame(RenderContext{
				Frame: tt.frame,
				Style: style,
				Rand:  rand.New(rand.NewSource(1)),
			})
			if len(frame.Shapes) == 0 {
				t.Fatalf("frame %d has no shapes", tt.frame)
			}
			rs.Draw(screen, frame)
		})
	}

	t.Run("空帧只填充背景", func(t *testing.T) {
		rs.Draw(screen, nil)
	})
}
