package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/decker502/bloom/pkg/app"
	"github.com/decker502/bloom/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

const bannerWidth = 40

func printBanner() {
	fmt.Println("🌹 Animación de Flor Creciendo")
	fmt.Println(strings.Repeat("=", bannerWidth))
	fmt.Println("🌹 Creando una hermosa flor...")
	fmt.Println("\n✨ La animación incluye:")
	fmt.Println("- Tallo creciendo desde la raíz")
	fmt.Println("- Hojas brotando a los lados")
	fmt.Println("- Pétalos floreciendo en capas")
	fmt.Println("- Efectos mágicos y brillos")
	fmt.Println("- Estrellas parpadeantes de fondo")
	fmt.Println("\n🎬 ¡Disfruta la animación!")
}

func printGoodbye() {
	fmt.Println("\n🌹 ¡Animación finalizada!")
}

// printError 报告错误后正常退出（不打印堆栈）
func printError(err error) {
	fmt.Printf("⚠️ Error: %v\n", err)
	fmt.Println("Asegúrate de tener un entorno gráfico disponible (OpenGL, Metal o DirectX) para ejecutar la animación.")
}

func run(ctx context.Context) error {
	gameApp, err := app.NewApp(ctx, app.Config{})
	if err != nil {
		return err
	}

	style := gameApp.Style()
	ebiten.SetWindowSize(style.Window.Width, style.Window.Height)
	ebiten.SetWindowTitle(style.Window.Title)

	// 窗口关闭时 RunGame 返回 nil；播放结束或中断时返回 ebiten.Termination
	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printBanner()

	if err := run(ctx); err != nil {
		printError(err)
		return
	}
	printGoodbye()
}
