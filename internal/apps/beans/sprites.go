package beans

import (
	"fmt"

	"github.com/vovakirdan/microsprite/internal/assets"
	"github.com/vovakirdan/microsprite/internal/engine"
)

// sprite aliases engine.Sprite so it can be embedded under a field name
// that does not shadow the promoted Sprite() method required by
// engine.Entity.
type sprite = engine.Sprite

// player is the keyboard-steered sprite. It owns its velocity: held
// directional keys set it, releasing them zeroes it.
type player struct {
	*sprite
	app *App
}

func newPlayer(app *App) (*player, error) {
	frames, err := art.Frames("player")
	if err != nil {
		return nil, err
	}

	s, err := engine.NewSprite(frames[0].Width(), frames[0].Height(), frames...)
	if err != nil {
		return nil, err
	}
	s.Name = "player"
	s.Layer = 1
	s.X = app.width / 2
	s.Y = app.height / 2
	if err := s.SetupAnimation(0, len(frames), app.cfg.Player.AnimationTicks, true); err != nil {
		return nil, err
	}
	return &player{sprite: s, app: app}, nil
}

func (p *player) Update(ctx *engine.Context) error {
	s := p.Sprite()
	speed := p.app.cfg.Player.Speed

	switch {
	case ctx.Input.Held.Has(engine.KeyUp):
		s.VY = -speed
	case ctx.Input.Held.Has(engine.KeyDown):
		s.VY = speed
	default:
		s.VY = 0
	}

	switch {
	case ctx.Input.Held.Has(engine.KeyLeft):
		s.VX = -speed
	case ctx.Input.Held.Has(engine.KeyRight):
		s.VX = speed
	default:
		s.VX = 0
	}

	s.ClampPosition(0, p.app.hudTop, p.app.width, p.app.height)

	// Eat any bean we overlap.
	for _, e := range ctx.Named("bean") {
		bean := e.Sprite()
		if s.CollidesWith(bean) {
			bean.Kill()
			p.app.score++
		}
	}
	return nil
}

// hud is an overlay sprite that redraws its exclusively-owned text
// bitmap whenever the score changes. Overlays draw last and stay out of
// collision queries.
type hud struct {
	*sprite
	app       *App
	lastScore int
}

func newHUD(app *App) (*hud, error) {
	text, err := assets.RenderText(hudText(0), 1)
	if err != nil {
		return nil, err
	}

	s, err := engine.NewSprite(text.Width(), text.Height(), text)
	if err != nil {
		return nil, err
	}
	s.Name = "hud"
	s.Overlay = true
	s.ColourKey = 0
	return &hud{sprite: s, app: app, lastScore: 0}, nil
}

func (h *hud) Update(ctx *engine.Context) error {
	if h.app.score == h.lastScore {
		return nil
	}
	h.lastScore = h.app.score

	text, err := assets.RenderText(hudText(h.app.score), 1)
	if err != nil {
		return err
	}
	s := h.Sprite()
	s.W, s.H = text.Width(), text.Height()
	return s.SetFrames(text)
}

func hudText(score int) string {
	return fmt.Sprintf("S:%d", score)
}
