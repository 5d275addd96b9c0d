package world

import (
	"fmt"
	"unicode/utf8"
)

// Map rows use '#' for walls and '.' for open floor. Any other rune must be
// a known entity marker; markers spawn a billboard and count as open floor
// for the caster.
const (
	cellWall  = '#'
	cellEmpty = '.'
)

// Grid is the static tile map. Immutable after Parse; the render loop only
// ever reads it.
type Grid struct {
	cells  [][]bool // cells[row][col], true = wall
	width  int
	height int
}

// Marker is an entity spawn point found while parsing.
type Marker struct {
	Kind     string
	Col, Row int
}

// Parse builds a grid from text rows. Rows must all be the same width and
// contain only '#', '.', or a known marker rune.
func Parse(rows []string) (*Grid, []Marker, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("map has no rows")
	}
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, nil, fmt.Errorf("map row 0 is empty")
	}

	g := &Grid{
		cells:  make([][]bool, len(rows)),
		width:  width,
		height: len(rows),
	}
	var markers []Marker
	for r, line := range rows {
		// count cells as runes, not bytes, so error coordinates stay
		// correct when a row carries a multi-byte rune
		runes := []rune(line)
		if len(runes) != width {
			return nil, nil, fmt.Errorf("map row %d is %d cells wide, want %d", r, len(runes), width)
		}
		g.cells[r] = make([]bool, width)
		for c, ch := range runes {
			switch ch {
			case cellWall:
				g.cells[r][c] = true
			case cellEmpty:
			default:
				kind, ok := markerKinds[ch]
				if !ok {
					return nil, nil, fmt.Errorf("map row %d col %d: unknown cell %q", r, c, ch)
				}
				markers = append(markers, Marker{Kind: kind, Col: c, Row: r})
			}
		}
	}
	return g, markers, nil
}

// IsWall reports whether the cell at (col, row) is solid. Out-of-bounds
// cells read as open space.
func (g *Grid) IsWall(col, row int) bool {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return false
	}
	return g.cells[row][col]
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }
