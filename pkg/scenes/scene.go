package scenes

import (
	"github.com/decker502/bloom/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// 编译期检查
var (
	_ Scene         = (*BloomScene)(nil)
	_ game.Finisher = (*BloomScene)(nil)
	_ game.Stopper  = (*BloomScene)(nil)
)
