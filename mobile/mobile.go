//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。构建前需要先把 data/bloom.yaml 复制到
// mobile/data/ 目录（//go:embed 无法引用上级目录）：
//
//	mkdir -p mobile/data && cp data/bloom.yaml mobile/data/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.bloom -o build/android/bloom.aar -v ./mobile
package mobile

import (
	"context"
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/bloom/pkg/app"
	"github.com/decker502/bloom/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	bloomApp, err := app.NewApp(context.Background(), app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("动画初始化失败: %v", err)
	}

	mobile.SetGame(bloomApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
