package engine

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTargetFPS is the tick rate used when none is configured. Small
// displays rarely sustain more over their bus.
const DefaultTargetFPS = 20

// UpdateHook is the Manager-level per-tick hook, run after input polling
// and before any sprite update. Typical use is global logic such as
// detecting an exit key combination.
type UpdateHook func(ctx *Context) error

// Manager owns the tick loop: the sprite collection, the input device,
// the screen, the reusable frame buffer and the timing bookkeeping.
// It is strictly single-threaded; every hook runs on the loop goroutine.
type Manager struct {
	screen Screen
	device Device
	hook   UpdateHook
	logger *log.Logger

	sprites []Entity
	render  []Entity // reusable render-order scratch
	frame   *Frame
	bg      uint8
	camera  Entity

	input     State
	targetFPS int
	actualFPS float64
	lastTick  time.Time
	tick      uint64
	running   bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithTargetFPS sets the tick rate Run paces itself to. Zero disables
// pacing (every tick starts as soon as the previous one ends).
func WithTargetFPS(fps int) Option {
	return func(m *Manager) {
		m.targetFPS = fps
	}
}

// WithUpdateHook installs the Manager-level update hook.
func WithUpdateHook(h UpdateHook) Option {
	return func(m *Manager) {
		m.hook = h
	}
}

// SetUpdateHook replaces the Manager-level update hook. Takes effect on
// the next tick; apps installing their global logic during setup use
// this rather than the construction option.
func (m *Manager) SetUpdateHook(h UpdateHook) {
	m.hook = h
}

// WithLogger routes engine lifecycle logging to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithBackground sets the pixel value the frame is cleared to before
// each composite pass.
func WithBackground(v uint8) Option {
	return func(m *Manager) {
		m.bg = v
	}
}

// New creates a Manager driving the given screen and input device.
// The frame buffer is allocated once, sized to the screen. A nil device
// is allowed and behaves as a device with no keys held.
func New(screen Screen, device Device, opts ...Option) (*Manager, error) {
	if screen == nil {
		return nil, fmt.Errorf("engine: manager needs a screen: %w", ErrConfig)
	}
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("engine: screen size %dx%d: %w", w, h, ErrConfig)
	}

	m := &Manager{
		screen:    screen,
		device:    device,
		logger:    log.New(io.Discard),
		frame:     NewFrame(w, h),
		targetFPS: DefaultTargetFPS,
		running:   true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Add registers an entity. Registration is the validation point: a
// sprite with zero-area bounds or no animation frames is rejected before
// it can ever reach the loop.
func (m *Manager) Add(e Entity) error {
	if e == nil {
		return fmt.Errorf("engine: nil entity: %w", ErrConfig)
	}
	s := e.Sprite()
	if s == nil {
		return fmt.Errorf("engine: entity without sprite state: %w", ErrConfig)
	}
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("engine: sprite %q bounds %dx%d: %w", s.Name, s.W, s.H, ErrConfig)
	}
	if len(s.images) == 0 {
		return fmt.Errorf("engine: sprite %q has no frames: %w", s.Name, ErrConfig)
	}
	m.sprites = append(m.sprites, e)
	return nil
}

// Sprites returns the registered entities in insertion order. The slice
// is a copy and safe to hold across the call; the entities are shared.
func (m *Manager) Sprites() []Entity {
	out := make([]Entity, len(m.sprites))
	copy(out, m.sprites)
	return out
}

// SetCameraTarget makes compositing follow the given entity: every
// non-overlay sprite is drawn offset so the target sits centred on the
// frame. Overlay sprites stay in fixed frame coordinates. A nil target
// restores the static camera.
func (m *Manager) SetCameraTarget(e Entity) {
	m.camera = e
}

// CameraTarget returns the entity the camera follows, or nil.
func (m *Manager) CameraTarget() Entity {
	return m.camera
}

// Exit requests a graceful stop. The in-flight tick finishes, including
// its composite and present, and Run returns after it.
func (m *Manager) Exit() {
	m.running = false
}

// Running reports whether the loop will start another tick.
func (m *Manager) Running() bool {
	return m.running
}

// ActualFPS returns the frame rate measured over the previous tick.
func (m *Manager) ActualFPS() float64 {
	return m.actualFPS
}

// ScreenSize returns the dimensions of the frame buffer, which match
// the screen the Manager was built for.
func (m *Manager) ScreenSize() (width, height int) {
	return m.frame.width, m.frame.height
}

// Tick returns the number of completed ticks.
func (m *Manager) Tick() uint64 {
	return m.tick
}

// Step advances the loop by exactly one tick: poll, hooks, sweep,
// composite, present, bookkeeping. Run calls it in a paced loop;
// external schedulers (the terminal simulator) may drive it directly.
func (m *Manager) Step() error {
	now := time.Now()
	if !m.lastTick.IsZero() {
		if elapsed := now.Sub(m.lastTick); elapsed > 0 {
			m.actualFPS = float64(time.Second) / float64(elapsed)
		}
	}
	m.lastTick = now

	// 1. Poll input.
	var held Keys
	if m.device != nil {
		held = m.device.Poll()
	}
	m.input = m.input.Next(held)

	ctx := &Context{m: m, Input: m.input, Tick: m.tick}

	// 2. Manager-level hook. May call Exit.
	if m.hook != nil {
		if err := m.hook(ctx); err != nil {
			return fmt.Errorf("engine: manager update: %w", err)
		}
	}

	// 3. Per-sprite engine routine and update hook, in insertion order.
	// Entities spawned by a hook are not updated until next tick; the
	// range header below is evaluated once.
	if m.running {
		for _, e := range m.sprites {
			s := e.Sprite()
			if !s.alive {
				continue
			}
			s.tickRoutine()
			if err := e.Update(ctx); err != nil {
				return fmt.Errorf("engine: sprite %q update: %w", s.Name, err)
			}
		}
	}

	// 4. Sweep the dead. Never mid-iteration.
	m.sweep()

	// 5. Composite in render order.
	m.composite()

	// 6. Present. A failing screen is fatal.
	if err := m.screen.Present(m.frame); err != nil {
		return fmt.Errorf("engine: present: %w", err)
	}

	m.tick++
	return nil
}

// sweep drops dead sprites, preserving insertion order.
func (m *Manager) sweep() {
	live := m.sprites[:0]
	for _, e := range m.sprites {
		if e.Sprite().alive {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(m.sprites); i++ {
		m.sprites[i] = nil
	}
	m.sprites = live
}

// composite clears the frame and blits every sprite's current animation
// frame. Non-overlay sprites draw first in ascending layer order, then
// overlays, ties broken by insertion order. With a camera target set,
// non-overlay sprites shift so the target is centred; overlays are HUD
// and stay put.
func (m *Manager) composite() {
	m.render = m.render[:0]
	m.render = append(m.render, m.sprites...)
	sort.SliceStable(m.render, func(i, j int) bool {
		a, b := m.render[i].Sprite(), m.render[j].Sprite()
		if a.Overlay != b.Overlay {
			return !a.Overlay
		}
		return a.Layer < b.Layer
	})

	offX, offY := 0, 0
	if m.camera != nil {
		ct := m.camera.Sprite()
		offX = ct.X + (ct.W-m.frame.width)/2
		offY = ct.Y + (ct.H-m.frame.height)/2
	}

	m.frame.Fill(m.bg)
	for _, e := range m.render {
		s := e.Sprite()
		x, y := s.X, s.Y
		if !s.Overlay {
			x -= offX
			y -= offY
		}
		m.frame.Blit(s.CurrentFrame(), x, y, s.ColourKey)
	}
}

// Run drives the loop until Exit is called, a hook or the screen fails,
// or the context is cancelled. Pacing sleeps off whatever remains of the
// tick budget when a target FPS is configured; cancellation is honored
// at tick boundaries and during the idle sleep, never mid-tick.
func (m *Manager) Run(ctx context.Context) error {
	var interval time.Duration
	if m.targetFPS > 0 {
		interval = time.Second / time.Duration(m.targetFPS)
	}
	m.logger.Debug("loop starting", "target_fps", m.targetFPS, "sprites", len(m.sprites))

	for m.running {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		if err := m.Step(); err != nil {
			m.logger.Error("loop terminated", "tick", m.tick, "error", err)
			return err
		}
		if interval > 0 {
			if rem := interval - time.Since(start); rem > 0 {
				timer := time.NewTimer(rem)
				select {
				case <-ctx.Done():
					timer.Stop()
					return ctx.Err()
				case <-timer.C:
				}
			}
		}
	}

	m.logger.Debug("loop stopped", "ticks", m.tick)
	return nil
}
