package scenes

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/bloom/pkg/components"
	"github.com/decker502/bloom/pkg/config"
	"github.com/decker502/bloom/pkg/game"
	"github.com/decker502/bloom/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// BloomScene 花朵生长动画场景
//
// 场景持有调度器和最近一次生成的帧：
//   - Update 推进调度器，每个 tick 生成一帧新的场景描述
//   - Draw 每次都清屏并重绘最近一帧（第一次 tick 之前绘制第 0 帧）
//
// 暂停、单步和跳帧仅供 cmd/verify_bloom 使用，主程序只会播放和停止。
type BloomScene struct {
	style     *config.BloomConfig
	scheduler *game.Scheduler
	renderer  *systems.RenderSystem
	rng       *rand.Rand
	seed      int64

	frame  *components.Frame
	paused bool
	speed  float64
}

// NewBloomScene 创建花朵动画场景
//
// 参数：
//   - style: 已通过校验的动画配置
//   - renderer: 渲染系统，为 nil 时 Draw 不做任何事（无界面模式）
//   - seed: 闪光颜色随机数种子，0 表示使用当前时间
func NewBloomScene(style *config.BloomConfig, renderer *systems.RenderSystem, seed int64) *BloomScene {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scene := &BloomScene{
		style:     style,
		scheduler: game.NewScheduler(style.Schedule.Interval(), style.Schedule.Frames, style.Schedule.Repeat),
		renderer:  renderer,
		seed:      seed,
		speed:     1,
	}
	scene.rng = rand.New(rand.NewSource(seed))
	scene.frame = scene.build(0)

	log.Printf("[BloomScene] Created: %d frames, interval %v, repeat %v, seed %d",
		style.Schedule.Frames, style.Schedule.Interval(), style.Schedule.Repeat, seed)
	return scene
}

// Update 推进调度器；进入新的一帧时重新生成场景描述
func (s *BloomScene) Update(deltaTime float64) {
	if s.paused {
		return
	}
	dt := game.SecondsToDuration(deltaTime * s.speed)
	if frame, ticked := s.scheduler.Advance(dt); ticked {
		s.frame = s.build(frame)
	}
}

// Draw 清屏并绘制最近一次生成的帧
func (s *BloomScene) Draw(screen *ebiten.Image) {
	if s.renderer == nil {
		return
	}
	s.renderer.Draw(screen, s.frame)
}

// Finished 调度结束（非循环播放完毕或被停止）时返回 true
func (s *BloomScene) Finished() bool {
	return s.scheduler.Done()
}

// Stop 立即结束播放
func (s *BloomScene) Stop() {
	log.Printf("[BloomScene] Stop requested at frame %d", s.FrameIndex())
	s.scheduler.Stop()
}

// FrameIndex 返回当前显示的帧序号
func (s *BloomScene) FrameIndex() int {
	return s.frame.Index
}

// CurrentFrame 返回当前显示的场景描述
func (s *BloomScene) CurrentFrame() *components.Frame {
	return s.frame
}

// Seed 返回实际使用的随机数种子
func (s *BloomScene) Seed() int64 {
	return s.seed
}

// SetPaused 暂停或继续播放
func (s *BloomScene) SetPaused(paused bool) {
	s.paused = paused
	log.Printf("[BloomScene] Paused: %v", paused)
}

// Paused 返回是否处于暂停状态
func (s *BloomScene) Paused() bool {
	return s.paused
}

// SetSpeed 设置播放倍速（<= 0 时忽略）
func (s *BloomScene) SetSpeed(speed float64) {
	if speed <= 0 {
		return
	}
	s.speed = speed
}

// Seek 跳转到指定帧并立即重新生成
func (s *BloomScene) Seek(frame int) {
	s.scheduler.Seek(frame)
	s.frame = s.build(s.scheduler.Frame())
	log.Printf("[BloomScene] Seek to frame %d", s.frame.Index)
}

// Step 前进或后退若干帧，超出范围时在首尾之间循环
func (s *BloomScene) Step(delta int) {
	n := s.scheduler.FrameCount()
	next := ((s.FrameIndex()+delta)%n + n) % n
	s.Seek(next)
}

// Restart 从第 0 帧重新播放，随机数源也重置为初始种子
func (s *BloomScene) Restart() {
	s.scheduler.Restart()
	s.rng = rand.New(rand.NewSource(s.seed))
	s.frame = s.build(0)
	log.Printf("[BloomScene] Restarted")
}

func (s *BloomScene) build(frame int) *components.Frame {
	return systems.BuildFrame(systems.RenderContext{
		Frame: frame,
		Style: s.style,
		Rand:  s.rng,
	})
}
