// Package terrain provides the course geometry the editor drives: the
// layout grid of elevations and classifications, and the triangulated
// surface mesh with its topology operations.
package terrain

import (
	"github.com/fairwaylabs/greenside/internal/editor"
)

// Grid stores per-cell elevation and terrain classification for the course
// layout. Out-of-bounds reads report ok=false; out-of-bounds writes are
// ignored.
type Grid struct {
	w, h  int
	elev  []float32
	types []editor.TerrainType
}

// NewGrid creates a flat grid uniformly classified as fill.
func NewGrid(w, h int, fill editor.TerrainType) *Grid {
	g := &Grid{
		w:     w,
		h:     h,
		elev:  make([]float32, w*h),
		types: make([]editor.TerrainType, w*h),
	}
	for i := range g.types {
		g.types[i] = fill
	}
	return g
}

// Dimensions returns the grid size in cells.
func (g *Grid) Dimensions() (w, h int) { return g.w, g.h }

// InBounds reports whether (x,y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Elevation returns the elevation of cell (x,y).
func (g *Grid) Elevation(x, y int) (float32, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.elev[y*g.w+x], true
}

// SetElevation sets the elevation of cell (x,y).
func (g *Grid) SetElevation(x, y int, z float32) {
	if !g.InBounds(x, y) {
		return
	}
	g.elev[y*g.w+x] = z
}

// TerrainType returns the classification of cell (x,y).
func (g *Grid) TerrainType(x, y int) (editor.TerrainType, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.types[y*g.w+x], true
}

// SetTerrainType sets the classification of cell (x,y).
func (g *Grid) SetTerrainType(x, y int, t editor.TerrainType) {
	if !g.InBounds(x, y) {
		return
	}
	g.types[y*g.w+x] = t
}
