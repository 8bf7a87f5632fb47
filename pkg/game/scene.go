package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application (e.g., the growing flower).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Finisher 是一个可选接口，用于场景通知主循环"已播放完毕"
//
// 实现此接口的场景在 Finished() 返回 true 后，App 会结束主循环：
//   - 非循环播放的动画到达最后一帧
//   - 用户按下退出键
type Finisher interface {
	Finished() bool
}

// Stopper 是一个可选接口，用于在收到中断信号时通知场景停止
type Stopper interface {
	Stop()
}
