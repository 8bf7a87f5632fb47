package app

import (
	"context"
	"errors"
	"image/color"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/bloom/pkg/config"
	"github.com/decker502/bloom/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func initTestData(t *testing.T, override func(string) string) {
	t.Helper()
	data, err := os.ReadFile("../../data/bloom.yaml")
	if err != nil {
		t.Fatalf("failed to read shipped config: %v", err)
	}
	content := string(data)
	if override != nil {
		content = override(content)
	}
	embedded.Init(fstest.MapFS{
		config.BloomConfigPath: &fstest.MapFile{Data: []byte(content)},
	})
}

// panicScene 在 Update 中触发 panic
type panicScene struct{}

func (panicScene) Update(float64) { panic("boom") }
func (panicScene) Draw(*ebiten.Image) { panic("boom") }

func TestNewApp(t *testing.T) {
	initTestData(t, nil)

	a, err := NewApp(context.Background(), Config{Seed: 7})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	w, h := a.Layout(640, 480)
	if w != 1200 || h != 1000 {
		t.Errorf("Layout() = (%d, %d), 期望 (1200, 1000)", w, h)
	}
	if a.Scene() == nil {
		t.Fatal("期望创建花朵场景")
	}
	if a.Scene().Seed() != 7 {
		t.Errorf("seed = %d, want 7", a.Scene().Seed())
	}
	if a.Style().Window.Title != "Flor Creciendo" {
		t.Errorf("title = %q", a.Style().Window.Title)
	}
}

func TestNewAppConfigErrors(t *testing.T) {
	tests := []struct {
		name        string
		override    func(string) string
		configPath  string
		errContains string
	}{
		{
			name:        "配置文件不存在",
			configPath:  "data/missing.yaml",
			errContains: "动画配置加载失败",
		},
		{
			name: "配置校验失败",
			override: func(s string) string {
				return strings.Replace(s, "frames: 250", "frames: 0", 1)
			},
			errContains: "frames",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initTestData(t, tt.override)
			_, err := NewApp(context.Background(), Config{ConfigPath: tt.configPath})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("期望错误包含 %q, 实际 %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestAppUpdateAdvancesScene(t *testing.T) {
	initTestData(t, nil)
	a, err := NewApp(context.Background(), Config{Seed: 1})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	// 100ms 间隔在 60 TPS 下约需 6~7 次 Update
	for i := 0; i < 20; i++ {
		if err := a.Update(); err != nil {
			t.Fatalf("Update returned %v", err)
		}
	}
	if a.Scene().FrameIndex() < 1 {
		t.Errorf("expected playback to advance, frame = %d", a.Scene().FrameIndex())
	}
}

func TestAppUpdateInterrupted(t *testing.T) {
	initTestData(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	a, err := NewApp(ctx, Config{Seed: 1})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	cancel()
	if err := a.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update after cancel = %v, want ebiten.Termination", err)
	}
	if !a.Interrupted() {
		t.Error("期望标记为中断")
	}
	if !a.Scene().Finished() {
		t.Error("期望中断时停止播放")
	}
}

func TestAppUpdateFinishedPlayback(t *testing.T) {
	initTestData(t, func(s string) string {
		s = strings.Replace(s, "frames: 250", "frames: 1", 1)
		return strings.Replace(s, "repeat: true", "repeat: false", 1)
	})
	a, err := NewApp(context.Background(), Config{Seed: 1})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	var last error
	for i := 0; i < 60 && last == nil; i++ {
		last = a.Update()
	}
	if !errors.Is(last, ebiten.Termination) {
		t.Errorf("expected ebiten.Termination after playback, got %v", last)
	}
	if a.Interrupted() {
		t.Error("finished playback must not be reported as interrupt")
	}
}

func TestAppRecoversPanics(t *testing.T) {
	initTestData(t, nil)
	a, err := NewApp(context.Background(), Config{Seed: 1})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	a.sceneManager.SwitchTo(panicScene{})

	err = a.Update()
	if err == nil || errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected a regular error from panicking update, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error should carry the panic value: %v", err)
	}

	a.Draw(ebiten.NewImage(10, 10))
	if a.err == nil || !strings.Contains(a.err.Error(), "draw panicked") {
		t.Errorf("expected draw panic to be recorded, got %v", a.err)
	}
}

func TestLetterboxColorFollowsConfig(t *testing.T) {
	tests := []struct {
		name     string
		override func(string) string
		want     color.RGBA
	}{
		{name: "默认黑色背景", want: color.RGBA{A: 0xff}},
		{
			name: "自定义背景",
			override: func(s string) string {
				return strings.Replace(s, `figure: "#000000"`, `figure: "#102030"`, 1)
			},
			want: color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initTestData(t, tt.override)
			a, err := NewApp(context.Background(), Config{Seed: 1})
			if err != nil {
				t.Fatalf("NewApp failed: %v", err)
			}
			if got := a.letterboxColor(); got != tt.want {
				t.Errorf("letterboxColor() = %v, 期望 %v", got, tt.want)
			}
		})
	}
}
