package game

import (
	"log"
	"math"
	"time"
)

// SecondsToDuration 将以秒为单位的时间步长换算为 time.Duration（四舍五入到纳秒）
//
// 直接截断会让 1/60 秒变成 16666666ns，六步之和略小于 100ms，帧间隔因此被拉长一步。
func SecondsToDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}

// Scheduler 固定间隔的帧调度器
//
// 调度器只负责"何时进入下一帧"：累积经过的时间，达到间隔后触发一次 tick，
// 超出间隔的零头计入下一帧，长期帧率与配置的间隔一致。
// 某一帧耗时超过多个间隔时只触发一次 tick，不会补发错过的 tick（不跳帧，不追帧）。
//
// 播放完 FrameCount 帧后：
//   - Repeat 为 true：帧序号回到 0 继续播放
//   - Repeat 为 false：调度结束，Done() 返回 true
type Scheduler struct {
	interval   time.Duration
	frameCount int
	repeat     bool

	elapsed time.Duration
	frame   int
	ticks   int
	done    bool
}

// NewScheduler 创建调度器
//
// 参数：
//   - interval: 相邻两帧的间隔，必须为正
//   - frameCount: 一轮动画的帧数，必须为正
//   - repeat: 播放完一轮后是否从头开始
func NewScheduler(interval time.Duration, frameCount int, repeat bool) *Scheduler {
	if interval <= 0 {
		interval = time.Millisecond
	}
	if frameCount <= 0 {
		frameCount = 1
	}
	return &Scheduler{
		interval:   interval,
		frameCount: frameCount,
		repeat:     repeat,
		frame:      -1,
	}
}

// Advance 推进调度器
//
// 参数：
//   - dt: 自上次调用以来经过的时间
//
// 返回：
//   - frame: 当前帧序号（尚未触发过 tick 时为 -1）
//   - ticked: 本次调用是否进入了新的一帧
func (s *Scheduler) Advance(dt time.Duration) (frame int, ticked bool) {
	if s.done {
		return s.frame, false
	}

	s.elapsed += dt
	if s.elapsed < s.interval {
		return s.frame, false
	}
	// 保留超出间隔的部分，但不补发错过的 tick
	s.elapsed -= s.interval
	if s.elapsed >= s.interval {
		s.elapsed = 0
	}

	next := s.frame + 1
	if next >= s.frameCount {
		if !s.repeat {
			s.done = true
			log.Printf("[Scheduler] Finished after %d frames", s.ticks)
			return s.frame, false
		}
		next = 0
		log.Printf("[Scheduler] Loop complete, restarting at frame 0")
	}

	s.frame = next
	s.ticks++
	return s.frame, true
}

// Frame 返回当前帧序号（尚未触发过 tick 时为 -1）
func (s *Scheduler) Frame() int {
	return s.frame
}

// Ticks 返回累计触发的 tick 次数（包括循环播放）
func (s *Scheduler) Ticks() int {
	return s.ticks
}

// Done 返回调度是否已结束
func (s *Scheduler) Done() bool {
	return s.done
}

// Stop 立即结束调度（用户中断时调用）
func (s *Scheduler) Stop() {
	if !s.done {
		log.Printf("[Scheduler] Stopped at frame %d", s.frame)
	}
	s.done = true
}

// Restart 回到初始状态，下一次 tick 为第 0 帧
func (s *Scheduler) Restart() {
	s.elapsed = 0
	s.frame = -1
	s.ticks = 0
	s.done = false
}

// Seek 跳转到指定帧（超出范围时截断），不触发 tick
func (s *Scheduler) Seek(frame int) {
	if frame < 0 {
		frame = 0
	}
	if frame >= s.frameCount {
		frame = s.frameCount - 1
	}
	s.frame = frame
	s.elapsed = 0
	s.done = false
}

// Interval 返回帧间隔
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// FrameCount 返回一轮动画的帧数
func (s *Scheduler) FrameCount() int {
	return s.frameCount
}
