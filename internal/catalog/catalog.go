// Package catalog provides a global registry of component definitions.
// Widgets register themselves in init() functions, allowing the designer
// and the CLI to discover and place components without hardcoded
// dependencies.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-canvas/internal/core"
	"github.com/vovakirdan/tui-canvas/internal/render"
)

// Renderer draws a component's content into its resolved bounding box.
// Renderers contain pure drawing logic with no external dependencies
// (especially no Bubble Tea); the platform handles actual display.
type Renderer interface {
	// Render draws the component's content inside r on the given surface.
	// The frame and title around r are drawn by the canvas, not here.
	Render(s *render.Surface, r core.Rect)
}

// Definition describes a placeable component: its identity, the size
// preferences the placement resolver reads, and a factory for its renderer.
type Definition struct {
	ID    string
	Title string
	Prefs core.SizePrefs
	New   func() Renderer
}

var (
	definitions = make(map[string]Definition)
	mu          sync.RWMutex
)

// Register adds a component definition to the catalog.
// Typically called from a widget's init() function.
// Panics if a component with the same ID is already registered.
func Register(def Definition) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := definitions[def.ID]; exists {
		panic(fmt.Sprintf("catalog: component %q already registered", def.ID))
	}

	definitions[def.ID] = def
}

// Get returns the definition registered under the given component ID.
func Get(id string) (Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	def, ok := definitions[id]
	if !ok {
		return Definition{}, fmt.Errorf("catalog: unknown component %q", id)
	}

	return def, nil
}

// List returns all registered definitions, sorted by ID.
func List() []Definition {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Definition, 0, len(definitions))
	for _, def := range definitions {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Exists checks if a component with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := definitions[id]
	return ok
}
