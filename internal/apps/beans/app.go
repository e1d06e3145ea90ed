// Package beans implements the bean-catcher demo app: a keyboard-driven
// player sprite collects short-lived bean pickups while a HUD overlay
// tracks the score. It exercises input-driven velocity, looping
// animation, collision queries, deferred kills and overlay compositing.
package beans

import (
	_ "embed"
	"fmt"
	"math/rand"

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
	registry.Register("beans", func() registry.App { return New() })
}

// App implements the Beans demo.
type App struct {
	cfg     config.BeansConfig
	rng     *rand.Rand
	score   int
	width   int
	height  int
	hudTop  int
	beanArt []*engine.Bitmap
}

// New creates a new Beans app instance.
func New() *App {
	return &App{}
}

// ID returns the unique identifier for this app.
func (a *App) ID() string {
	return "beans"
}

// Title returns the display name for this app.
func (a *App) Title() string {
	return "Bean Catcher"
}

// Score returns the number of beans caught so far.
func (a *App) Score() int {
	return a.score
}

// Setup registers the player, the HUD overlay and the spawning hook.
func (a *App) Setup(m *engine.Manager, rc registry.RunConfig) error {
	cfg, err := config.LoadBeans(configPath)
	if err != nil {
		return fmt.Errorf("beans: %w", err)
	}
	a.cfg = cfg
	a.rng = rand.New(rand.NewSource(rc.Seed))
	a.width, a.height = m.ScreenSize()
	a.hudTop = assets.TextHeight() + 1

	beanArt, err := art.Frames("bean")
	if err != nil {
		return err
	}
	a.beanArt = beanArt

	player, err := newPlayer(a)
	if err != nil {
		return err
	}
	if err := m.Add(player); err != nil {
		return err
	}

	hud, err := newHUD(a)
	if err != nil {
		return err
	}
	if err := m.Add(hud); err != nil {
		return err
	}

	m.SetUpdateHook(a.update)
	return nil
}

// update is the manager-level hook: handles the exit key and keeps the
// bean population topped up.
func (a *App) update(ctx *engine.Context) error {
	if ctx.Input.Pressed.Has(engine.KeyBack) {
		ctx.Exit()
		return nil
	}

	if a.cfg.Beans.SpawnEveryTicks > 0 && ctx.Tick%uint64(a.cfg.Beans.SpawnEveryTicks) == 0 {
		if len(ctx.Named("bean")) < a.cfg.Beans.MaxOnScreen {
			bean, err := a.newBean()
			if err != nil {
				return err
			}
			return ctx.Spawn(bean)
		}
	}
	return nil
}

// newBean places a fresh pickup at a random spot below the HUD strip.
func (a *App) newBean() (*engine.Sprite, error) {
	w := a.beanArt[0].Width()
	h := a.beanArt[0].Height()

	bean, err := engine.NewSprite(w, h, a.beanArt...)
	if err != nil {
		return nil, err
	}
	bean.Name = "bean"
	bean.ColourKey = 0
	bean.X = a.rng.Intn(max(a.width-w, 1))
	bean.Y = a.hudTop + a.rng.Intn(max(a.height-a.hudTop-h, 1))
	bean.KillAfter(a.cfg.Beans.LifetimeTicks)
	return bean, nil
}
