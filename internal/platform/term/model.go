package term

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/microsprite/internal/config"
	"github.com/vovakirdan/microsprite/internal/engine"
	"github.com/vovakirdan/microsprite/internal/registry"
	"github.com/vovakirdan/microsprite/internal/storage"
)

// Model is the Bubble Tea model running one app on the simulated display.
// The Bubble Tea timer replaces the engine's own pacing: every TickMsg
// drives exactly one Manager.Step.
type Model struct {
	app        registry.App
	manager    *engine.Manager
	screen     *Screen
	keyboard   *Keyboard
	store      *storage.Store
	tickRate   int
	quitting   bool
	scoreSaved bool
	err        error
}

// NewModel creates a model for the given app on a fresh display, device
// and engine, and runs the app's setup.
func NewModel(app registry.App, store *storage.Store, cfg config.EngineConfig, rc registry.RunConfig) (Model, error) {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate == 0 {
		rc.TickRate = cfg.TickRate
	}

	screen := NewScreen(cfg.Screen.Width, cfg.Screen.Height)
	keyboard := NewKeyboard()

	manager, err := engine.New(screen, keyboard,
		engine.WithTargetFPS(rc.TickRate),
		engine.WithBackground(cfg.Screen.Background),
	)
	if err != nil {
		return Model{}, err
	}
	if err := app.Setup(manager, rc); err != nil {
		return Model{}, err
	}

	return Model{
		app:      app,
		manager:  manager,
		screen:   screen,
		keyboard: keyboard,
		store:    store,
		tickRate: rc.TickRate,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key, ok, isQuit := m.keyboard.MapKey(msg)
	if isQuit {
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}
	if ok {
		m.keyboard.Press(key)
	}
	return m, nil
}

// handleTick drives one engine tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.manager.Step(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	// The app requested exit; the tick that did so has already presented.
	if !m.manager.Running() {
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// saveScore persists the final score once.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.app.Score() <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, exit continues regardless
	m.store.SaveScore(m.app.ID(), m.app.Score())
	m.scoreSaved = true
}

// View renders the last presented frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.screen.View()
}

// Err returns the engine error that terminated the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the given app and blocks until
// the session ends.
func Run(app registry.App, store *storage.Store, cfg config.EngineConfig, rc registry.RunConfig) error {
	model, err := NewModel(app, store, cfg, rc)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
