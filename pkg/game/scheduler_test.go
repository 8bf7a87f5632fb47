package game

import (
	"testing"
	"time"
)

const testInterval = 100 * time.Millisecond

// TestSchedulerFirstTick 第一次 tick 为第 0 帧
func TestSchedulerFirstTick(t *testing.T) {
	s := NewScheduler(testInterval, 250, true)
	if s.Frame() != -1 {
		t.Fatalf("initial frame = %d, want -1", s.Frame())
	}

	frame, ticked := s.Advance(50 * time.Millisecond)
	if ticked || frame != -1 {
		t.Errorf("Advance(50ms) = (%d, %v), want (-1, false)", frame, ticked)
	}

	frame, ticked = s.Advance(50 * time.Millisecond)
	if !ticked || frame != 0 {
		t.Errorf("Advance(50ms) = (%d, %v), want (0, true)", frame, ticked)
	}
}

// TestSchedulerNoCatchUp 一次调用经过多个间隔时只触发一次 tick
func TestSchedulerNoCatchUp(t *testing.T) {
	s := NewScheduler(testInterval, 250, true)
	s.Advance(testInterval) // frame 0

	frame, ticked := s.Advance(10 * testInterval)
	if !ticked || frame != 1 {
		t.Fatalf("Advance(1s) = (%d, %v), want (1, true)", frame, ticked)
	}

	// 累积时间已清零，不会补发
	frame, ticked = s.Advance(time.Millisecond)
	if ticked || frame != 1 {
		t.Errorf("Advance(1ms) = (%d, %v), want (1, false)", frame, ticked)
	}
}

// TestSchedulerSixtyTPS 以 60 TPS 驱动时保持配置的 100ms 帧间隔
func TestSchedulerSixtyTPS(t *testing.T) {
	step := SecondsToDuration(1.0 / 60)

	tests := []struct {
		name      string
		updates   int
		wantTicks int
	}{
		{name: "一秒", updates: 60, wantTicks: 10},
		{name: "完整一轮（25 秒）", updates: 1500, wantTicks: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(testInterval, 250, true)
			ticks := 0
			for i := 0; i < tt.updates; i++ {
				if _, ticked := s.Advance(step); ticked {
					ticks++
				}
			}
			if ticks != tt.wantTicks {
				t.Errorf("期望 %d 次 tick, 实际 %d", tt.wantTicks, ticks)
			}
		})
	}
}

// TestSchedulerKeepsRemainder 超出间隔的零头计入下一帧
func TestSchedulerKeepsRemainder(t *testing.T) {
	s := NewScheduler(testInterval, 250, true)

	if _, ticked := s.Advance(130 * time.Millisecond); !ticked {
		t.Fatal("expected first tick")
	}
	// 剩余 30ms，再经过 70ms 即可进入下一帧
	if frame, ticked := s.Advance(70 * time.Millisecond); !ticked || frame != 1 {
		t.Errorf("Advance(70ms) = (%d, %v), want (1, true)", frame, ticked)
	}
}

func TestSecondsToDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    time.Duration
	}{
		{1.0 / 60, 16666667 * time.Nanosecond},
		{0.1, 100 * time.Millisecond},
		{0, 0},
	}
	for _, tt := range tests {
		if got := SecondsToDuration(tt.seconds); got != tt.want {
			t.Errorf("SecondsToDuration(%v) = %v, 期望 %v", tt.seconds, got, tt.want)
		}
	}
}

func TestSchedulerBoundedRun(t *testing.T) {
	s := NewScheduler(testInterval, 3, false)

	var frames []int
	for i := 0; i < 10; i++ {
		if frame, ticked := s.Advance(testInterval); ticked {
			frames = append(frames, frame)
		}
	}

	if len(frames) != 3 || frames[0] != 0 || frames[1] != 1 || frames[2] != 2 {
		t.Errorf("frames = %v, want [0 1 2]", frames)
	}
	if !s.Done() {
		t.Error("expected scheduler to be done")
	}
	if s.Frame() != 2 {
		t.Errorf("last frame = %d, want 2", s.Frame())
	}
}

func TestSchedulerRepeat(t *testing.T) {
	s := NewScheduler(testInterval, 3, true)

	var frames []int
	for i := 0; i < 7; i++ {
		frame, _ := s.Advance(testInterval)
		frames = append(frames, frame)
	}

	want := []int{0, 1, 2, 0, 1, 2, 0}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}
	if s.Done() {
		t.Error("repeating scheduler should never be done")
	}
	if s.Ticks() != 7 {
		t.Errorf("ticks = %d, want 7", s.Ticks())
	}
}

func TestSchedulerStop(t *testing.T) {
	s := NewScheduler(testInterval, 250, true)
	s.Advance(testInterval)
	s.Stop()

	if !s.Done() {
		t.Error("expected Done() after Stop()")
	}
	if _, ticked := s.Advance(testInterval); ticked {
		t.Error("stopped scheduler must not tick")
	}

	s.Restart()
	if s.Done() || s.Frame() != -1 {
		t.Errorf("after Restart: done=%v frame=%d", s.Done(), s.Frame())
	}
}

func TestSchedulerSeek(t *testing.T) {
	s := NewScheduler(testInterval, 250, false)

	tests := []struct {
		seek int
		want int
	}{
		{100, 100},
		{-3, 0},
		{999, 249},
	}
	for _, tt := range tests {
		s.Seek(tt.seek)
		if s.Frame() != tt.want {
			t.Errorf("Seek(%d) -> frame %d, want %d", tt.seek, s.Frame(), tt.want)
		}
	}

	s.Seek(10)
	if frame, ticked := s.Advance(testInterval); !ticked || frame != 11 {
		t.Errorf("Advance after Seek(10) = (%d, %v), want (11, true)", frame, ticked)
	}
}

func TestNewSchedulerSanitizesInput(t *testing.T) {
	s := NewScheduler(0, 0, false)
	if s.Interval() <= 0 {
		t.Errorf("interval = %v, want positive", s.Interval())
	}
	if s.FrameCount() != 1 {
		t.Errorf("frameCount = %d, want 1", s.FrameCount())
	}
}
