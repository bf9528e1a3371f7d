// Package registry provides a global registry of level factories.
// Level packages register themselves in init() functions, allowing the game
// loop and the CLI to discover and build levels without hardcoded imports.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/entity"
)

// Factory builds a fresh level. It must be pure: every call returns a new,
// independent Level with identical contents.
type Factory func() *entity.Level

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	Kind  entity.LevelKind
	Title string
}

var (
	factories = make(map[entity.LevelKind]Factory)
	titles    = make(map[entity.LevelKind]string)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Panics if the kind is already registered.
func Register(kind entity.LevelKind, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", kind))
	}

	factories[kind] = f

	// Get title by building a throwaway instance
	titles[kind] = f().Title
}

// List returns all registered levels in play order.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(factories))
	for kind := range factories {
		result = append(result, LevelInfo{
			Kind:  kind,
			Title: titles[kind],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// Kinds returns the registered level kinds in play order.
func Kinds() []entity.LevelKind {
	infos := List()
	kinds := make([]entity.LevelKind, len(infos))
	for i, info := range infos {
		kinds[i] = info.Kind
	}
	return kinds
}

// Create builds and validates a new level of the given kind.
func Create(kind entity.LevelKind) (*entity.Level, error) {
	mu.RLock()
	f, ok := factories[kind]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", kind)
	}

	lvl := f()
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("registry: level %q: %w", kind, err)
	}
	return lvl, nil
}

// Lookup finds a registered level by its short name.
func Lookup(name string) (entity.LevelKind, bool) {
	for _, info := range List() {
		if info.Kind.String() == name {
			return info.Kind, true
		}
	}
	return 0, false
}
