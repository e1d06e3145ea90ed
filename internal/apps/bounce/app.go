// Package bounce implements the bouncing-block demo app: an autonomous
// block ricochets off the screen edges, each impact spawns a one-shot
// spark effect and bumps the score, and an FPS overlay reports measured
// loop timing. It exercises engine-driven motion, non-looping animation,
// timed kills and the frame-rate bookkeeping.
package bounce

import (
	_ "embed"
	"fmt"

	"github.com/vovakirdan/microsprite/internal/assets"
	"github.com/vovakirdan/microsprite/internal/config"
	"github.com/vovakirdan/microsprite/internal/engine"
	"github.com/vovakirdan/microsprite/internal/registry"
)

//go:embed art.yaml
var artYAML []byte

var art = assets.MustLoad(artYAML)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

func init() {
	registry.Register("bounce", func() registry.App { return New() })
}

// App implements the Bounce demo.
type App struct {
	cfg      config.BounceConfig
	bounces  int
	width    int
	height   int
	sparkArt []*engine.Bitmap
}

// New creates a new Bounce app instance.
func New() *App {
	return &App{}
}

// ID returns the unique identifier for this app.
func (a *App) ID() string {
	return "bounce"
}

// Title returns the display name for this app.
func (a *App) Title() string {
	return "Bounce"
}

// Score returns the number of wall bounces so far.
func (a *App) Score() int {
	return a.bounces
}

// Setup registers the block, the FPS overlay and the exit hook.
func (a *App) Setup(m *engine.Manager, rc registry.RunConfig) error {
	cfg, err := config.LoadBounce(configPath)
	if err != nil {
		return fmt.Errorf("bounce: %w", err)
	}
	a.cfg = cfg
	a.width, a.height = m.ScreenSize()

	sparkArt, err := art.Frames("spark")
	if err != nil {
		return err
	}
	a.sparkArt = sparkArt

	block, err := newBlock(a)
	if err != nil {
		return err
	}
	if err := m.Add(block); err != nil {
		return err
	}

	hud, err := newFPSHUD()
	if err != nil {
		return err
	}
	if err := m.Add(hud); err != nil {
		return err
	}

	m.SetUpdateHook(a.update)
	return nil
}

func (a *App) update(ctx *engine.Context) error {
	if ctx.Input.Pressed.Has(engine.KeyBack) {
		ctx.Exit()
	}
	return nil
}

// newSpark builds a one-shot impact effect centred on (x, y). The
// animation plays through once and clamps; the timed kill removes the
// sprite shortly after the last frame.
func (a *App) newSpark(x, y int) (*engine.Sprite, error) {
	w := a.sparkArt[0].Width()
	h := a.sparkArt[0].Height()

	spark, err := engine.NewSprite(w, h, a.sparkArt...)
	if err != nil {
		return nil, err
	}
	spark.Name = "spark"
	spark.Layer = 2
	spark.ColourKey = 0
	spark.X = x - w/2
	spark.Y = y - h/2
	if err := spark.SetupAnimation(0, len(a.sparkArt), a.cfg.Sparks.TicksPerFrame, false); err != nil {
		return nil, err
	}
	spark.KillAfter(a.cfg.Sparks.LifetimeTicks)
	return spark, nil
}
