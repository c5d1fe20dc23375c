package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"zombie-arena/internal/clock"
	"zombie-arena/internal/component"
	"zombie-arena/internal/config"
	"zombie-arena/internal/engine"
	"zombie-arena/internal/input"
	"zombie-arena/internal/scene"
	"zombie-arena/pkg/render"
)

var fullscreen bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen mode")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen mode")
}

// AppGame adapts the frame loop to ebiten.Game.
type AppGame struct {
	loop     *engine.Loop
	source   *ebitenSource
	renderer *render.Renderer
	frame    scene.Frame
}

func (a *AppGame) Update() error {
	in := a.source.Poll(a.loop.Camera())
	if in.Quit {
		return ebiten.Termination
	}
	a.frame = a.loop.Frame(in)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.frame)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runPlay(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	tuning, patterns, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	loop, err := engine.NewLoop(tuning, patterns, clock.NewMonotonicTimeProvider())
	if err != nil {
		return err
	}
	defer loop.Close()

	app := &AppGame{
		loop:     loop,
		source:   newEbitenSource(config.ScreenWidth, config.ScreenHeight),
		renderer: render.NewRenderer(config.ScreenWidth, config.ScreenHeight),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Zombie Arena")
	ebiten.SetFullscreen(fullscreen)

	slog.Info("Starting window", "width", config.ScreenWidth, "height", config.ScreenHeight, "fullscreen", fullscreen)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

var upgradeKeys = [...]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// ebitenSource reads keyboard and mouse through ebiten. It must be polled
// from inside ebiten's Update callback.
type ebitenSource struct {
	width, height float64
}

func newEbitenSource(width, height int) *ebitenSource {
	return &ebitenSource{width: float64(width), height: float64(height)}
}

func (s *ebitenSource) Poll(camera component.Vec2) input.Snapshot {
	x, y := ebiten.CursorPosition()
	screen := component.Vec2{X: float64(x), Y: float64(y)}

	in := input.Snapshot{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyD),
		Fire:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),

		Reload:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),

		PointerScreen: screen,
		PointerWorld:  input.ScreenToWorld(screen, camera, s.width, s.height),
	}
	for i, k := range upgradeKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Upgrade = i + 1
			break
		}
	}
	return in
}
