package terrain

import (
	"github.com/fairwaylabs/greenside/internal/editor"
	"github.com/fairwaylabs/greenside/pkg/math"
)

// Course binds the layout grid and the surface mesh into the modifier the
// editor drives. Rebuild requests are recorded rather than rendered; the
// host drains them to resync whatever visual representation it keeps.
type Course struct {
	grid     *Grid
	mesh     *Mesh
	cellSize float32

	dirtyTiles   []editor.Cell
	meshRebuilds int
}

var _ editor.Modifier = (*Course)(nil)

// NewCourse creates a flat course of w x h cells, uniformly rough.
func NewCourse(w, h int, cellSize float32) *Course {
	return &Course{
		grid:     NewGrid(w, h, editor.TerrainRough),
		mesh:     NewMesh(w+1, h+1, cellSize),
		cellSize: cellSize,
	}
}

// Grid exposes the layout grid.
func (c *Course) Grid() *Grid { return c.grid }

// Mesh exposes the surface mesh.
func (c *Course) Mesh() *Mesh { return c.mesh }

// LayoutDimensions returns the layout grid size in cells.
func (c *Course) LayoutDimensions() (w, h int) { return c.grid.Dimensions() }

// ElevationAt returns the elevation of a layout cell.
func (c *Course) ElevationAt(cell editor.Cell) (float32, bool) {
	return c.grid.Elevation(cell.X, cell.Y)
}

// SetElevationAt sets the elevation of a layout cell.
func (c *Course) SetElevationAt(cell editor.Cell, z float32) {
	c.grid.SetElevation(cell.X, cell.Y, z)
}

// TerrainTypeAt returns the classification of a layout cell.
func (c *Course) TerrainTypeAt(cell editor.Cell) (editor.TerrainType, bool) {
	return c.grid.TerrainType(cell.X, cell.Y)
}

// SetTerrainTypeAt sets the classification of a layout cell.
func (c *Course) SetTerrainTypeAt(cell editor.Cell, t editor.TerrainType) {
	c.grid.SetTerrainType(cell.X, cell.Y, t)
}

// VertexDimensions returns the vertex grid size.
func (c *Course) VertexDimensions() (w, h int) { return c.mesh.VertexDimensions() }

// WorldDimensions returns the course extent in world units.
func (c *Course) WorldDimensions() (w, h float32) {
	gw, gh := c.grid.Dimensions()
	return float32(gw) * c.cellSize, float32(gh) * c.cellSize
}

// VertexPosition returns a mesh vertex position.
func (c *Course) VertexPosition(v editor.VertexKey) (math.Vec3, bool) {
	return c.mesh.Position(v)
}

// SetVertexPosition moves a mesh vertex.
func (c *Course) SetVertexPosition(v editor.VertexKey, p math.Vec3) {
	c.mesh.SetPosition(v, p)
}

// VertexElevation returns a mesh vertex's height.
func (c *Course) VertexElevation(v editor.VertexKey) (float32, bool) {
	p, ok := c.mesh.Position(v)
	return p.Y, ok
}

// SetVertexElevation sets a mesh vertex's height, leaving X/Z untouched.
func (c *Course) SetVertexElevation(v editor.VertexKey, y float32) {
	p, ok := c.mesh.Position(v)
	if !ok {
		return
	}
	p.Y = y
	c.mesh.SetPosition(v, p)
}

// RebuildTile records a resync request for a tile and its neighbors.
func (c *Course) RebuildTile(x, y int) {
	c.dirtyTiles = append(c.dirtyTiles, editor.Cell{X: x, Y: y})
}

// RebuildMesh records a full-mesh resync request.
func (c *Course) RebuildMesh() {
	c.meshRebuilds++
}

// TakeDirtyTiles drains the pending tile resync requests.
func (c *Course) TakeDirtyTiles() []editor.Cell {
	tiles := c.dirtyTiles
	c.dirtyTiles = nil
	return tiles
}

// MeshRebuilds returns how many full-mesh resyncs have been requested.
func (c *Course) MeshRebuilds() int { return c.meshRebuilds }

// WorldToVertex maps a world position onto the vertex lattice.
func (c *Course) WorldToVertex(p math.Vec3) (editor.VertexKey, bool) {
	return c.mesh.WorldToVertex(p)
}

// NearestVertex returns the mesh vertex nearest the world position.
func (c *Course) NearestVertex(p math.Vec3) (editor.VertexKey, bool) {
	return c.mesh.NearestVertex(p)
}

// NearestEdge returns the edge nearest the world position.
func (c *Course) NearestEdge(p math.Vec3) (int, bool) {
	return c.mesh.NearestEdge(p)
}

// FaceAt returns the face under the world position.
func (c *Course) FaceAt(p math.Vec3) (int, bool) {
	return c.mesh.FaceAt(p)
}

// SubdivideEdge splits an edge at parameter t.
func (c *Course) SubdivideEdge(edge int, t float32) *editor.TopologyChange {
	before := c.mesh.Snapshot()
	v, ok := c.mesh.Subdivide(edge, t)
	if !ok {
		return nil
	}
	return &editor.TopologyChange{Before: before, NewVertex: v}
}

// FlipEdge flips an edge's diagonal.
func (c *Course) FlipEdge(edge int) *editor.TopologyChange {
	before := c.mesh.Snapshot()
	if !c.mesh.Flip(edge) {
		return nil
	}
	return &editor.TopologyChange{Before: before}
}

// CollapseEdge merges an edge's endpoints.
func (c *Course) CollapseEdge(edge int) *editor.TopologyChange {
	before := c.mesh.Snapshot()
	if !c.mesh.Collapse(edge) {
		return nil
	}
	return &editor.TopologyChange{Before: before}
}

// DeleteVertex removes a vertex and its incident topology.
func (c *Course) DeleteVertex(v editor.VertexKey) *editor.TopologyChange {
	if !c.mesh.CanDeleteVertex(v) {
		return nil
	}
	before := c.mesh.Snapshot()
	if !c.mesh.DeleteVertex(v) {
		return nil
	}
	return &editor.TopologyChange{Before: before}
}

// CanDeleteVertex reports whether the vertex may be deleted.
func (c *Course) CanDeleteVertex(v editor.VertexKey) bool {
	return c.mesh.CanDeleteVertex(v)
}

// RestoreTopology restores a snapshot taken by this course's mesh.
func (c *Course) RestoreTopology(snap editor.TopologySnapshot) {
	if s, ok := snap.(*MeshSnapshot); ok {
		c.mesh.Restore(s)
	}
}

// CaptureTopology snapshots the current mesh topology.
func (c *Course) CaptureTopology() editor.TopologySnapshot {
	return c.mesh.Snapshot()
}

// SelectEdge marks an edge highlighted.
func (c *Course) SelectEdge(edge int) { c.mesh.SelectEdge(edge) }

// ToggleEdge flips an edge's highlight.
func (c *Course) ToggleEdge(edge int) { c.mesh.ToggleEdge(edge) }

// SelectedEdges returns the highlighted edges.
func (c *Course) SelectedEdges() []int { return c.mesh.SelectedEdges() }

// ClearEdgeSelection drops all edge highlights.
func (c *Course) ClearEdgeSelection() { c.mesh.ClearEdgeSelection() }

// SelectFace marks a face highlighted.
func (c *Course) SelectFace(face int) { c.mesh.SelectFace(face) }

// DeselectFace drops one face highlight.
func (c *Course) DeselectFace(face int) { c.mesh.DeselectFace(face) }

// ToggleFace flips a face's highlight.
func (c *Course) ToggleFace(face int) { c.mesh.ToggleFace(face) }

// ClearFaceSelection drops all face highlights.
func (c *Course) ClearFaceSelection() { c.mesh.ClearFaceSelection() }

// FaceIDs returns all face ids.
func (c *Course) FaceIDs() []int { return c.mesh.FaceIDs() }
