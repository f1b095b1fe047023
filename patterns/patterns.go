// Package patterns is a catalog of named seed shapes for the engine. Each
// pattern is a set of (row, col) coordinates normalized to the origin, ready
// to translate and hand to Grid.Populate.
package patterns

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/golife/engine"
)

// ErrUnknownPattern indicates a pattern name that is not in the catalog.
var ErrUnknownPattern = errors.New("patterns: unknown pattern name")

var catalog = map[string][]engine.Coord{
	// Still life
	"block": {
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
	},

	// Oscillators
	"blinker": {
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
	},
	"toad": {
		{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
	},
	"beacon": {
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
		{Row: 2, Col: 2}, {Row: 2, Col: 3},
		{Row: 3, Col: 2}, {Row: 3, Col: 3},
	},
	"pulsar": pulsarCells(),

	// Spaceships
	"glider": {
		{Row: 0, Col: 1},
		{Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	},
	"lwss": {
		{Row: 0, Col: 1}, {Row: 0, Col: 4},
		{Row: 1, Col: 0},
		{Row: 2, Col: 0}, {Row: 2, Col: 4},
		{Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	},

	// Methuselah
	"r-pentomino": {
		{Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
		{Row: 2, Col: 1},
	},
}

// pulsarCells builds the period-3 pulsar: bars of three on four sides, plus
// their mirrored posts, 48 cells in a 13×13 box.
func pulsarCells() []engine.Coord {
	var (
		bars  = []int{2, 3, 4, 8, 9, 10}
		posts = []int{0, 5, 7, 12}
		cells = make([]engine.Coord, 0, 48)
	)
	for _, row := range posts {
		for _, col := range bars {
			cells = append(cells, engine.Coord{Row: row, Col: col})
		}
	}
	for _, row := range bars {
		for _, col := range posts {
			cells = append(cells, engine.Coord{Row: row, Col: col})
		}
	}
	return cells
}

// Get returns a copy of the named pattern's coordinates, so callers cannot
// corrupt the catalog. Unknown names yield ErrUnknownPattern.
func Get(name string) ([]engine.Coord, error) {
	cells, ok := catalog[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Get] no pattern named %q", name)
	}
	out := make([]engine.Coord, len(cells))
	copy(out, cells)
	return out, nil
}

// Names returns the catalog's pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Offset returns a copy of cells translated by (dr, dc) rows and columns.
func Offset(cells []engine.Coord, dr, dc int) []engine.Coord {
	out := make([]engine.Coord, len(cells))
	for i, cell := range cells {
		out[i] = engine.Coord{Row: cell.Row + dr, Col: cell.Col + dc}
	}
	return out
}

// Bounds returns the bounding-box extent of an origin-normalized coordinate
// set, as the row and column counts needed to contain it.
func Bounds(cells []engine.Coord) (rows, cols int) {
	for _, cell := range cells {
		if cell.Row >= rows {
			rows = cell.Row + 1
		}
		if cell.Col >= cols {
			cols = cell.Col + 1
		}
	}
	return rows, cols
}
