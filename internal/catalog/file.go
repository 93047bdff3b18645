package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-canvas/internal/core"
)

// componentFile is the YAML shape of a user components file.
type componentFile struct {
	Components []componentEntry `yaml:"components"`
}

type componentEntry struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Renderer string    `yaml:"renderer"`
	Default  *sizeYAML `yaml:"default"`
	Min      *sizeYAML `yaml:"min"`
	Max      *sizeYAML `yaml:"max"`
}

type sizeYAML struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (s *sizeYAML) toSize() core.Size {
	return core.Size{Width: s.Width, Height: s.Height}
}

// LoadFile registers user-defined components from a YAML file. Each entry
// borrows the renderer of an already-registered component and carries its
// own ID, title, and size preferences. Returns the number of components
// registered; on error nothing from the file is registered.
func LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("catalog: read components file: %w", err)
	}

	var file componentFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("catalog: parse components file: %w", err)
	}

	defs := make([]Definition, 0, len(file.Components))
	seen := make(map[string]bool)
	for i, entry := range file.Components {
		def, err := entry.definition()
		if err != nil {
			return 0, fmt.Errorf("catalog: component %d: %w", i, err)
		}
		if seen[def.ID] || Exists(def.ID) {
			return 0, fmt.Errorf("catalog: component %d: %q already registered", i, def.ID)
		}
		seen[def.ID] = true
		defs = append(defs, def)
	}

	for _, def := range defs {
		Register(def)
	}

	return len(defs), nil
}

// definition validates an entry and converts it to a catalog definition.
func (e componentEntry) definition() (Definition, error) {
	if e.ID == "" {
		return Definition{}, fmt.Errorf("missing id")
	}
	if e.Default == nil || e.Default.Width <= 0 || e.Default.Height <= 0 {
		return Definition{}, fmt.Errorf("%q: default size must be strictly positive", e.ID)
	}
	if e.Renderer == "" {
		return Definition{}, fmt.Errorf("%q: missing renderer", e.ID)
	}

	base, err := Get(e.Renderer)
	if err != nil {
		return Definition{}, fmt.Errorf("%q: unknown renderer %q", e.ID, e.Renderer)
	}

	title := e.Title
	if title == "" {
		title = e.ID
	}

	prefs := core.SizePrefs{Default: e.Default.toSize()}
	if e.Min != nil {
		min := e.Min.toSize()
		prefs.Min = &min
	}
	if e.Max != nil {
		max := e.Max.toSize()
		prefs.Max = &max
	}

	return Definition{ID: e.ID, Title: title, Prefs: prefs, New: base.New}, nil
}
