// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing main
// to pick one by ID without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
)

// ErrUnknownFrontend is returned by Create for unregistered IDs.
var ErrUnknownFrontend = errors.New("registry: unknown frontend")

// Frontend is a game loop that drives one session: it reads moves from
// the player, applies them to the game and renders the board.
type Frontend interface {
	// ID returns a unique identifier for this frontend (e.g., "tui", "line").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays the session until the game is won or lost, the player
	// quits, input ends, or ctx is cancelled. The frontend is the only
	// goroutine touching g while Run is active.
	Run(ctx context.Context, g *game.Game) error
}

// Env carries the collaborators a frontend needs.
type Env struct {
	In     io.Reader
	Out    io.Writer
	Logger *log.Logger
	Config core.RuntimeConfig
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new frontend bound to env.
type Factory func(env Env) Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the registered frontend IDs in sorted order.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

// Create instantiates a frontend by its ID.
// A nil env.Logger is replaced with a logger that discards output.
func Create(id string, env Env) (Frontend, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %s)", ErrUnknownFrontend, id, strings.Join(IDs(), ", "))
	}

	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}

	return f(env), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
