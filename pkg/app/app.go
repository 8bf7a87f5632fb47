// Package app 提供花朵动画应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被主程序和 cmd/verify_bloom 共用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/bloom/pkg/config"
	"github.com/decker502/bloom/pkg/game"
	"github.com/decker502/bloom/pkg/scenes"
	"github.com/decker502/bloom/pkg/systems"
	"github.com/decker502/bloom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 动画配置文件路径，为空时使用 config.BloomConfigPath
	ConfigPath string
	// Seed 覆盖配置文件中的随机数种子（0 表示不覆盖）
	Seed int64
}

// App 是动画应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	ctx          context.Context
	style        *config.BloomConfig
	sceneManager *game.SceneManager
	scene        *scenes.BloomScene

	interrupted bool
	// err 记录 Draw 中恢复的 panic，在下一次 Update 中返回
	err error

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化动画应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// ctx 被取消（例如收到 SIGINT）后，下一次 Update 会结束主循环。
func NewApp(ctx context.Context, cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.BloomConfigPath
	}
	style, err := config.LoadBloomConfig(path)
	if err != nil {
		return nil, fmt.Errorf("动画配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载动画配置: %s", path)

	seed := style.Schedule.Seed
	if cfg.Seed != 0 {
		seed = cfg.Seed
	}

	resourceManager := game.NewResourceManager()
	face, err := resourceManager.LoadFont(config.PointsToPixels(config.LabelSize))
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	viewport := utils.NewViewport(style.Viewport.XMin, style.Viewport.XMax,
		style.Viewport.YMin, style.Viewport.YMax, style.Window.Width, style.Window.Height)
	renderer := systems.NewRenderSystem(viewport, face, style.Colors().Figure)
	log.Printf("[App] Viewport scale %.2f px/unit, offset (%.1f, %.1f)", viewport.Scale, viewport.OffsetX, viewport.OffsetY)

	scene := scenes.NewBloomScene(style, renderer, seed)
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		ctx:          ctx,
		style:        style,
		sceneManager: sceneManager,
		scene:        scene,
	}, nil
}

// Update 更新动画逻辑
// 每个 tick 调用一次（通常每秒 60 次）
//
// 返回 ebiten.Termination 表示正常结束（中断或播放完毕），其他错误表示运行失败。
func (a *App) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("update panicked: %v", r)
			log.Printf("[App] %v", err)
		}
	}()

	if a.err != nil {
		return a.err
	}

	select {
	case <-a.ctx.Done():
		if !a.interrupted {
			a.interrupted = true
			a.sceneManager.Stop()
			log.Printf("[App] Interrupted: %v", context.Cause(a.ctx))
		}
		return ebiten.Termination
	default:
	}

	a.updateFullscreen()

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	if a.sceneManager.Finished() {
		log.Printf("[App] Playback finished")
		return ebiten.Termination
	}
	return nil
}

// updateFullscreen F11 切换全屏
func (a *App) updateFullscreen() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.style.Window.Width, a.style.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.style.Window.Width, a.style.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// 移动端没有窗口
	if utils.IsMobile() || !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
}

// Draw 绘制当前帧
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	defer func() {
		if r := recover(); r != nil && a.err == nil {
			a.err = fmt.Errorf("draw panicked: %v", r)
			log.Printf("[App] %v", a.err)
		}
	}()
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先用图形区域颜色填充（全屏时两侧留白）
	screen.Fill(a.letterboxColor())
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// letterboxColor 全屏留白颜色，与图形区域背景一致
func (a *App) letterboxColor() color.Color {
	return a.style.Colors().Figure
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.style.Window.Width, a.style.Window.Height
}

// Scene 返回花朵动画场景（供 cmd/verify_bloom 控制播放）
func (a *App) Scene() *scenes.BloomScene {
	return a.scene
}

// Style 返回已加载的动画配置
func (a *App) Style() *config.BloomConfig {
	return a.style
}

// Interrupted 返回主循环是否因中断信号结束
func (a *App) Interrupted() bool {
	return a.interrupted
}
