// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// Options are passed to a factory when a scene is created.
type Options struct {
	ConfigPath string        // Custom YAML file; empty uses the search order
	Preset     config.Preset // Difficulty preset
	Seed       int64         // RNG seed for scene generation; 0 means time-based
}

// Info contains metadata about a registered scene.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new scene instance.
type Factory func(opts Options) (engine.Scene, error)

type entry struct {
	info    Info
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene package's init() function.
// Panics if a scene with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns information about all registered scenes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
// Returns an error if the ID is not registered or the factory fails.
func Create(id string, opts Options) (engine.Scene, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	s, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return s, nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
