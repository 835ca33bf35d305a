package editor

// Cell addresses a layout-grid cell.
type Cell struct {
	X, Y int
}

// VertexKey addresses a mesh vertex on the vertex grid.
type VertexKey struct {
	X, Y int
}

// CellsInBrush returns the cells covered by a circular brush centered on
// (cx, cy). A radius of 1 or less covers only the center cell; larger radii
// cover every offset within the circle of radius radius-1. The center is
// always included and the result is deterministic for a given input.
func CellsInBrush(cx, cy, radius int) []Cell {
	if radius <= 1 {
		return []Cell{{cx, cy}}
	}

	r := radius - 1
	cells := make([]Cell, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				cells = append(cells, Cell{cx + dx, cy + dy})
			}
		}
	}
	return cells
}

// VerticesInBrush is the vertex-grid analog of CellsInBrush. Results are
// clamped to [0,width) x [0,height); a center outside the grid can yield an
// empty set.
func VerticesInBrush(cx, cy, radius, width, height int) []VertexKey {
	inBounds := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < width && y < height
	}

	if radius <= 1 {
		if !inBounds(cx, cy) {
			return nil
		}
		return []VertexKey{{cx, cy}}
	}

	r := radius - 1
	verts := make([]VertexKey, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			x, y := cx+dx, cy+dy
			if dx*dx+dy*dy <= r*r && inBounds(x, y) {
				verts = append(verts, VertexKey{x, y})
			}
		}
	}
	return verts
}
