package levels

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the levels compiled into the binary, sorted by ID.
func Builtin() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading builtin levels: %w", err)
	}

	var levels []Level
	for _, e := range entries {
		data, err := fs.ReadFile(builtinFS, "builtin/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading builtin level %s: %w", e.Name(), err)
		}
		level, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing builtin level %s: %w", e.Name(), err)
		}
		levels = append(levels, level)
	}

	sortByID(levels)
	return levels, nil
}

// All returns the builtin levels merged with those under root, sorted by
// ID. A directory level with the same ID as a builtin replaces it; an
// empty root yields just the builtins.
func All(root string) ([]Level, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, err
	}
	if root == "" {
		return levels, nil
	}

	custom, err := NewLoader(root).LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(levels))
	for i, lvl := range levels {
		byID[lvl.ID] = i
	}
	for _, lvl := range custom {
		if i, ok := byID[lvl.ID]; ok {
			levels[i] = lvl
			continue
		}
		levels = append(levels, lvl)
	}

	sortByID(levels)
	return levels, nil
}

// Find returns the level with the given ID from the merged catalog.
func Find(root, id string) (Level, error) {
	levels, err := All(root)
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}
