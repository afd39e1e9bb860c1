package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultBlankMarker is the label marking an intentionally empty grid
// position; such positions produce no cell.
const DefaultBlankMarker = "BLANK"

// Layout is the static configuration of one palette build: the label grid,
// its placement offset, and the cell type tag the renderer keys on.
type Layout struct {
	Name        string     `yaml:"name"`
	CellType    string     `yaml:"cellType"`
	StartRow    int        `yaml:"startRow"`
	StartColumn int        `yaml:"startColumn"`
	Blank       string     `yaml:"blank"`
	Rows        [][]string `yaml:"rows"`
}

// Validate checks the layout is buildable.
func (l Layout) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("layout has no name")
	}
	if len(l.Rows) == 0 {
		return fmt.Errorf("layout %q has no rows", l.Name)
	}
	return nil
}

// blankMarker returns the configured blank label, defaulting to
// DefaultBlankMarker.
func (l Layout) blankMarker() string {
	if l.Blank != "" {
		return l.Blank
	}
	return DefaultBlankMarker
}

// cellType returns the configured cell type tag, defaulting to
// "ActionBmwCodeCell".
func (l Layout) cellType() string {
	if l.CellType != "" {
		return l.CellType
	}
	return "ActionBmwCodeCell"
}

// LoadLayout reads and validates a YAML layout file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}
