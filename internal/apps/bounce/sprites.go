package bounce

import (
	"fmt"

	"github.com/vovakirdan/microsprite/internal/assets"
	"github.com/vovakirdan/microsprite/internal/engine"
)

// sprite aliases engine.Sprite so it can be embedded under a field name
// that does not shadow the promoted Sprite() method required by
// engine.Entity.
type sprite = engine.Sprite

// block is the autonomous bouncer. The engine integrates its velocity;
// the update hook only reflects it off the screen edges and reports
// impacts.
type block struct {
	*sprite
	app *App
}

func newBlock(app *App) (*block, error) {
	frames, err := art.Frames("block")
	if err != nil {
		return nil, err
	}

	s, err := engine.NewSprite(frames[0].Width(), frames[0].Height(), frames...)
	if err != nil {
		return nil, err
	}
	s.Name = "block"
	s.Layer = 1
	s.ColourKey = 0
	s.X = app.width / 3
	s.Y = app.height / 3
	s.VX = app.cfg.Block.SpeedX
	s.VY = app.cfg.Block.SpeedY
	if err := s.SetupAnimation(0, len(frames), app.cfg.Block.AnimationTicks, true); err != nil {
		return nil, err
	}
	return &block{sprite: s, app: app}, nil
}

func (b *block) Update(ctx *engine.Context) error {
	s := b.Sprite()

	var hitX, hitY int
	hit := false

	if s.X <= 0 {
		s.X = 0
		s.VX = -s.VX
		hitX, hitY = 0, s.Y+s.H/2
		hit = true
	} else if s.X+s.W >= b.app.width {
		s.X = b.app.width - s.W
		s.VX = -s.VX
		hitX, hitY = b.app.width-1, s.Y+s.H/2
		hit = true
	}

	if s.Y <= 0 {
		s.Y = 0
		s.VY = -s.VY
		hitX, hitY = s.X+s.W/2, 0
		hit = true
	} else if s.Y+s.H >= b.app.height {
		s.Y = b.app.height - s.H
		s.VY = -s.VY
		hitX, hitY = s.X+s.W/2, b.app.height-1
		hit = true
	}

	if !hit {
		return nil
	}
	b.app.bounces++

	spark, err := b.app.newSpark(hitX, hitY)
	if err != nil {
		return err
	}
	return ctx.Spawn(spark)
}

// fpsHUD is an overlay showing the measured frame rate, redrawn only
// when the rounded value changes.
type fpsHUD struct {
	*sprite
	lastText string
}

func newFPSHUD() (*fpsHUD, error) {
	text := fpsText(0)
	bm, err := assets.RenderText(text, 1)
	if err != nil {
		return nil, err
	}

	s, err := engine.NewSprite(bm.Width(), bm.Height(), bm)
	if err != nil {
		return nil, err
	}
	s.Name = "fps"
	s.Overlay = true
	s.ColourKey = 0
	return &fpsHUD{sprite: s, lastText: text}, nil
}

func (h *fpsHUD) Update(ctx *engine.Context) error {
	text := fpsText(int(ctx.ActualFPS() + 0.5))
	if text == h.lastText {
		return nil
	}
	h.lastText = text

	bm, err := assets.RenderText(text, 1)
	if err != nil {
		return err
	}
	s := h.Sprite()
	s.W, s.H = bm.Width(), bm.Height()
	return s.SetFrames(bm)
}

func fpsText(fps int) string {
	return fmt.Sprintf("FPS:%d", fps)
}
