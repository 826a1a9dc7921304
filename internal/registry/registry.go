// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the hosts
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/folio-runner/internal/core"
)

// ErrUnknownGame is returned by Create for ids nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is the interface hosts drive. Games contain pure logic with no
// terminal or network dependencies; hosts own timing, input and output.
type Game interface {
	// ID returns a unique identifier, used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset returns the game to its title screen for the given runtime.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the simulation one tick.
	Step(in core.InputFrame) core.StepResult

	// Render redraws the whole scene into dst.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Snapshotter is implemented by games that can be streamed to remote
// clients. The returned value must marshal to JSON.
type Snapshotter interface {
	Snapshot() any
}

// Options are construction-time settings handed to a factory.
type Options struct {
	ConfigPath string // Custom YAML config, empty for the default search order
	Difficulty string // Difficulty preset name, empty for normal
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func(opts Options) (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the registered title for id, or id itself.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
