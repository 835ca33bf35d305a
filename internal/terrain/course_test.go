package terrain

import (
	"testing"

	"github.com/fairwaylabs/greenside/internal/editor"
	"github.com/fairwaylabs/greenside/pkg/math"
)

func newCourseEditor(w, h int) (*editor.Editor, *Course) {
	c := NewCourse(w, h, 1)
	e := editor.New(c, editor.DefaultSettings(), nil)
	e.Enable()
	return e, c
}

func TestCourse_SculptThroughEditor(t *testing.T) {
	e, c := newCourseEditor(8, 8)
	e.SetTool(editor.ToolRaise)

	e.HandleMouseMove(4, 4, nil)
	e.HandleClick(false)

	if z, _ := c.Grid().Elevation(4, 4); z != 1 {
		t.Fatalf("expected elevation 1, got %v", z)
	}
	if tiles := c.TakeDirtyTiles(); len(tiles) != 1 || tiles[0] != (editor.Cell{X: 4, Y: 4}) {
		t.Errorf("expected one dirty tile at (4,4), got %v", tiles)
	}
	if tiles := c.TakeDirtyTiles(); len(tiles) != 0 {
		t.Error("expected drain to clear pending tiles")
	}
}

func TestCourse_UndoRedoRestoresGrid(t *testing.T) {
	e, c := newCourseEditor(8, 8)

	e.SetTool(editor.ToolRaise)
	e.HandleMouseMove(2, 2, nil)
	e.HandleClick(false)
	e.HandleClick(false)

	e.SetTool(editor.ToolPaintGreen)
	e.HandleMouseMove(3, 3, nil)
	e.HandleClick(false)

	for e.Undo() {
	}
	if z, _ := c.Grid().Elevation(2, 2); z != 0 {
		t.Errorf("expected flat grid after full undo, got %v", z)
	}
	if tt, _ := c.Grid().TerrainType(3, 3); tt != editor.TerrainRough {
		t.Errorf("expected rough after full undo, got %v", tt)
	}

	for e.Redo() {
	}
	if z, _ := c.Grid().Elevation(2, 2); z != 2 {
		t.Errorf("expected elevation 2 after full redo, got %v", z)
	}
	if tt, _ := c.Grid().TerrainType(3, 3); tt != editor.TerrainGreen {
		t.Errorf("expected green after full redo, got %v", tt)
	}
}

func TestCourse_DragGesture(t *testing.T) {
	e, c := newCourseEditor(8, 8)
	e.SetTool(editor.ToolRaise)
	e.SetTopologyMode(editor.TopoEdge)

	e.HandleDragStart(5, 5, nil, 200)
	e.HandleDrag(5, 5, nil, 175)
	e.HandleDrag(5, 5, nil, 150)
	e.HandleDragEnd()

	if z, _ := c.Grid().Elevation(5, 5); z != 2 {
		t.Fatalf("expected elevation 2, got %v", z)
	}
	if u, _ := e.History().Depths(); u != 1 {
		t.Fatalf("expected the gesture as one action, got %d", u)
	}
	e.Undo()
	if z, _ := c.Grid().Elevation(5, 5); z != 0 {
		t.Errorf("expected 0 after undo, got %v", z)
	}
}

func TestCourse_TopologyUndoRedo(t *testing.T) {
	e, c := newCourseEditor(4, 4)
	e.SetTopologyMode(editor.TopoEdge)

	mesh := c.Mesh()
	verts, edges, faces := mesh.VertexCount(), mesh.EdgeCount(), mesh.FaceCount()

	// Pick the bottom boundary edge and split it.
	world := math.Vec3{X: 0.5, Y: 0, Z: 0.02}
	e.HandleMouseMove(0, 0, &world)
	e.HandleClick(false)
	if e.Selection().Edge() < 0 {
		t.Fatal("expected an edge selected")
	}

	if !e.SubdivideSelectedEdge(0.5) {
		t.Fatal("subdivide failed")
	}
	if mesh.VertexCount() != verts+1 {
		t.Fatalf("expected %d vertices after subdivide, got %d", verts+1, mesh.VertexCount())
	}
	splitVerts, splitEdges, splitFaces := mesh.VertexCount(), mesh.EdgeCount(), mesh.FaceCount()

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if mesh.VertexCount() != verts || mesh.EdgeCount() != edges || mesh.FaceCount() != faces {
		t.Errorf("undo did not restore topology: %d/%d/%d",
			mesh.VertexCount(), mesh.EdgeCount(), mesh.FaceCount())
	}

	if !e.Redo() {
		t.Fatal("redo failed")
	}
	if mesh.VertexCount() != splitVerts || mesh.EdgeCount() != splitEdges || mesh.FaceCount() != splitFaces {
		t.Errorf("redo did not restore topology: %d/%d/%d",
			mesh.VertexCount(), mesh.EdgeCount(), mesh.FaceCount())
	}
	if c.MeshRebuilds() == 0 {
		t.Error("expected mesh rebuild requests for topology edits")
	}
}

func TestCourse_DeleteVerticesUndo(t *testing.T) {
	e, c := newCourseEditor(4, 4)
	mesh := c.Mesh()
	verts := mesh.VertexCount()

	e.Selection().SelectVertex(editor.VertexKey{X: 0, Y: 0}, false)
	e.Selection().SelectVertex(editor.VertexKey{X: 4, Y: 4}, true)

	if !e.DeleteSelectedVertices() {
		t.Fatal("delete failed")
	}
	if mesh.VertexCount() != verts-2 {
		t.Fatalf("expected %d vertices, got %d", verts-2, mesh.VertexCount())
	}

	e.Undo()
	if mesh.VertexCount() != verts {
		t.Errorf("expected %d vertices after undo, got %d", verts, mesh.VertexCount())
	}
	if _, ok := mesh.Position(editor.VertexKey{X: 0, Y: 0}); !ok {
		t.Error("expected deleted corner restored")
	}
}

func TestCourse_MoveVertexThroughEditor(t *testing.T) {
	e, c := newCourseEditor(4, 4)
	e.SetTool(editor.ToolMove)
	e.SetAxis(editor.AxisXZ)

	v := editor.VertexKey{X: 2, Y: 2}
	e.Selection().SelectVertex(v, false)

	start := math.Vec3{X: 2, Y: 0, Z: 2}
	e.HandleDragStart(2, 2, &start, 100)
	end := math.Vec3{X: 2.4, Y: 0, Z: 1.6}
	e.HandleDrag(2, 2, &end, 100)
	e.HandleDragEnd()

	p, _ := c.Mesh().Position(v)
	if p.X != 2.4 || p.Z != 1.6 {
		t.Errorf("expected vertex at (2.4,1.6), got (%v,%v)", p.X, p.Z)
	}

	e.Undo()
	p, _ = c.Mesh().Position(v)
	if p.X != 2 || p.Z != 2 {
		t.Errorf("expected vertex back at (2,2), got (%v,%v)", p.X, p.Z)
	}
}

func TestCourse_WorldDimensions(t *testing.T) {
	c := NewCourse(16, 8, 2)
	w, h := c.WorldDimensions()
	if w != 32 || h != 16 {
		t.Errorf("expected 32x16 world units, got %vx%v", w, h)
	}
}
