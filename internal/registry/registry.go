// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the application
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tinypix/internal/core"
)

// ErrUnknownScene is returned by Create for unregistered IDs.
var ErrUnknownScene = errors.New("registry: unknown scene")

// Scene produces world content for the renderer.
// Scenes hold pure state; the application owns the camera, the viewport and
// the event loop.
type Scene interface {
	// ID returns a unique identifier (e.g., "walker").
	// Used for CLI arguments and the session journal.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the scene state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the scene by one tick using the actions collected
	// since the previous tick.
	Step(in core.InputFrame)

	// Focus returns the world position the camera should follow.
	Focus() core.WorldPos

	// Draw projects the visible part of the world through cam into vp.
	Draw(cam *core.Camera, vp *core.Viewport)
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a scene.
type Factory func() Scene

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SceneInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
func Create(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScene, id)
	}

	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
