// Package registry provides a global registry for app factories.
// Demo apps register themselves in init() functions, allowing the CLI
// and the simulator to discover and instantiate them without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/microsprite/internal/engine"
)

// RunConfig carries the runtime parameters an app needs to build its
// sprites deterministically.
type RunConfig struct {
	// Seed feeds the app's RNG. Zero means the platform picks one.
	Seed int64

	// TickRate is the loop cadence the platform will drive, in ticks per
	// second. Apps use it to convert durations into tick counts.
	TickRate int
}

// App is the contract demo applications implement. An app owns only its
// game logic: it registers sprites and hooks on the Manager it is handed
// and never touches the platform directly.
type App interface {
	// ID returns a unique identifier (e.g. "beans"). Used for CLI
	// commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Setup wires the app's initial sprites and manager hook. Called
	// once before the loop starts; a returned error aborts the run.
	Setup(m *engine.Manager, cfg RunConfig) error

	// Score returns the app's current score for the leaderboard.
	Score() int
}

// Info contains metadata about a registered app.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of an app.
type Factory func() App

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an app factory to the registry.
// Typically called from an app's init() function.
// Panics if an app with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: app %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered apps, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new app by its ID.
// Returns an error if the app ID is not registered.
func Create(id string) (App, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown app %q", id)
	}

	return f(), nil
}

// Exists checks if an app with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
