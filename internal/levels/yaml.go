package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-arrows/internal/engine"
	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk YAML structure for a level file.
type yamlLevel struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Arrows int      `yaml:"arrows,omitempty"`
	Rows   []string `yaml:"rows"`
}

// Board legend used by the rows field.
const (
	cellEmpty    = '.'
	cellStart    = 'S'
	cellGoal     = 'G'
	cellObstacle = '#'
)

// ParseYAML parses a YAML level definition into a Level. The rows field
// draws the board with one character per cell: '.' empty, 'S' start,
// 'G' goal, '#' obstacle. A level that omits the arrow budget gets one
// arrow per cell.
func ParseYAML(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("level %s has no rows", yl.ID)
	}

	cells := make([][]engine.Landmark, len(yl.Rows))
	starts := 0
	for r, row := range yl.Rows {
		if len(row) != len(yl.Rows[0]) {
			return Level{}, fmt.Errorf("level %s: row %d has %d cells, want %d",
				yl.ID, r, len(row), len(yl.Rows[0]))
		}
		cells[r] = make([]engine.Landmark, len(row))
		for c, ch := range row {
			switch ch {
			case cellEmpty:
			case cellStart:
				cells[r][c] = engine.Start
				starts++
			case cellGoal:
				cells[r][c] = engine.Goal
			case cellObstacle:
				cells[r][c] = engine.Obstacle
			default:
				return Level{}, fmt.Errorf("level %s: unknown cell %q at row %d col %d",
					yl.ID, ch, r, c)
			}
		}
	}
	if starts != 1 {
		return Level{}, fmt.Errorf("level %s has %d start cells, want exactly 1", yl.ID, starts)
	}

	arrows := yl.Arrows
	if arrows <= 0 {
		arrows = len(cells) * len(cells[0])
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:     yl.ID,
		Name:   name,
		Arrows: arrows,
		Cells:  cells,
	}, nil
}

// FormatExtensions returns the level file extensions the loader accepts.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
