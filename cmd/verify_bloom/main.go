// Package main provides a frame-by-frame verification tool for the growing flower animation.
//
// Usage:
//
//	go run cmd/verify_bloom/main.go [flags]
//
// Flags:
//
//	--frame <n>      Start at frame n instead of playing from the beginning (default: -1)
//	--paused         Start paused
//	--speed <x>      Playback speed multiplier (default: 1)
//	--seed <n>       Sparkle color seed, 0 uses the current time (default: 1)
//	--dump           Print the per-frame timeline table and exit (no window)
//	--verbose        Enable verbose logging
//
// Controls:
//
//	Space       - Pause / resume
//	Left/Right  - Step one frame back / forward (while paused)
//	R           - Restart from frame 0
//	Q           - Quit
//
// Purpose:
//   - Inspect individual frames of every growth phase
//   - Verify phase start frames and shape counts without watching the full loop
//   - Compare sparkle layouts for a fixed seed
//
// Must be run from the repository root (data/bloom.yaml is read from disk).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/decker502/bloom/pkg/app"
	"github.com/decker502/bloom/pkg/config"
	"github.com/decker502/bloom/pkg/embedded"
	"github.com/decker502/bloom/pkg/scenes"
	"github.com/decker502/bloom/pkg/systems"
	"github.com/decker502/bloom/pkg/types"
	"github.com/decker502/bloom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	frameFlag   = flag.Int("frame", -1, "Start at this frame (-1 plays from the beginning)")
	pausedFlag  = flag.Bool("paused", false, "Start paused")
	speedFlag   = flag.Float64("speed", 1, "Playback speed multiplier")
	seedFlag    = flag.Int64("seed", 1, "Sparkle color seed (0 uses the current time)")
	dumpFlag    = flag.Bool("dump", false, "Print the per-frame timeline table and exit")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

var errQuit = errors.New("quit")

// BloomVerifyGame wraps app.App and adds playback controls and a debug overlay
type BloomVerifyGame struct {
	*app.App
	scene    *scenes.BloomScene
	viewport utils.Viewport
}

// NewBloomVerifyGame creates the verification game
func NewBloomVerifyGame(ctx context.Context) (*BloomVerifyGame, error) {
	a, err := app.NewApp(ctx, app.Config{Verbose: *verboseFlag, Seed: *seedFlag})
	if err != nil {
		return nil, err
	}

	scene := a.Scene()
	scene.SetSpeed(*speedFlag)
	if *frameFlag >= 0 {
		scene.Seek(*frameFlag)
	}
	if *pausedFlag {
		scene.SetPaused(true)
	}

	style := a.Style()
	viewport := utils.NewViewport(style.Viewport.XMin, style.Viewport.XMax,
		style.Viewport.YMin, style.Viewport.YMax, style.Window.Width, style.Window.Height)

	return &BloomVerifyGame{App: a, scene: scene, viewport: viewport}, nil
}

// Update handles playback keys, then advances the animation
func (g *BloomVerifyGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.SetPaused(!g.scene.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Restart()
	}
	if g.scene.Paused() {
		if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
			g.scene.Step(1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
			g.scene.Step(-1)
		}
	}
	return g.App.Update()
}

// Draw renders the frame and the debug overlay
func (g *BloomVerifyGame) Draw(screen *ebiten.Image) {
	g.App.Draw(screen)

	frame := g.scene.CurrentFrame()
	cx, cy := ebiten.CursorPosition()
	p := systems.ComputeProgress(frame.Index, g.Style().Timeline)
	state := "playing"
	if g.scene.Paused() {
		state = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"Bloom Verifier (%s, seed %d)\n"+
			"Frame: %d / %d\n"+
			"stem %.2f  leaf %.2f  petal %.2f  magic %.2f\n"+
			"petals %d  sparkles %d  shapes %d\n"+
			"%s\n"+
			"Space pause | Left/Right step | R restart | Q quit",
		state, g.scene.Seed(),
		frame.Index, g.Style().Schedule.Frames-1,
		p.Stem, p.Leaf, p.Petal, p.Magic,
		frame.Count(types.PartPetal), frame.Count(types.PartSparkle), len(frame.Shapes),
		cursorLabel(g.viewport, cx, cy),
	))
}

// cursorLabel reports the cursor position in world coordinates
func cursorLabel(v utils.Viewport, sx, sy int) string {
	wx, wy := v.ScreenToWorld(float64(sx), float64(sy))
	return fmt.Sprintf("cursor (%.2f, %.2f)", wx, wy)
}

// dumpTimeline prints one row per frame without opening a window
func dumpTimeline(w io.Writer, style *config.BloomConfig) error {
	var parts []types.Part
	for _, part := range types.AllParts() {
		if part != types.PartLabel {
			parts = append(parts, part)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "frame\tstem\tleaf\tpetal\tmagic\t")
	for _, part := range parts {
		fmt.Fprintf(tw, "%s\t", part)
	}
	fmt.Fprintln(tw, "label\t")

	for f := 0; f < style.Schedule.Frames; f++ {
		frame := systems.BuildFrame(systems.RenderContext{Frame: f, Style: style})
		p := systems.ComputeProgress(f, style.Timeline)
		fmt.Fprintf(tw, "%d\t%.3f\t%.3f\t%.3f\t%.3f\t", f, p.Stem, p.Leaf, p.Petal, p.Magic)
		for _, part := range parts {
			fmt.Fprintf(tw, "%d\t", frame.Count(part))
		}
		fmt.Fprintf(tw, "%q\t\n", systems.ProgressLabel(f, style.Timeline))
	}
	return tw.Flush()
}

func loadStyle() *config.BloomConfig {
	if !embedded.Exists(config.BloomConfigPath) {
		log.Printf("Warning: %s not found (run from the repository root), using built-in defaults", config.BloomConfigPath)
		return config.DefaultBloomConfig()
	}
	style, err := config.LoadBloomConfig(config.BloomConfigPath)
	if err != nil {
		log.Printf("Warning: %v, using built-in defaults", err)
		return config.DefaultBloomConfig()
	}
	return style
}

// fatalf 直接写 stderr：app.NewApp 在非 verbose 模式下会关闭 log 输出
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	flag.Parse()

	// Setup logging
	if !*verboseFlag {
		log.SetOutput(os.Stdout)
		log.SetFlags(log.Ltime)
	}

	embedded.Init(os.DirFS("."))

	if *dumpFlag {
		if err := dumpTimeline(os.Stdout, loadStyle()); err != nil {
			log.Fatalf("Failed to dump timeline: %v", err)
		}
		return
	}

	log.Println("=== Bloom Verifier ===")
	log.Printf("Start frame: %d, paused: %v, speed: %.2fx, seed: %d", *frameFlag, *pausedFlag, *speedFlag, *seedFlag)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game, err := NewBloomVerifyGame(ctx)
	if err != nil {
		fatalf("Failed to create game: %v", err)
	}

	style := game.Style()
	ebiten.SetWindowSize(style.Window.Width, style.Window.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("Bloom Verifier - %s", style.Window.Title))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, ebiten.Termination) {
		fatalf("Game error: %v", err)
	}

	fmt.Println("Verifier closed")
}
