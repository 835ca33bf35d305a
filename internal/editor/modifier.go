package editor

import (
	"github.com/fairwaylabs/greenside/pkg/math"
)

// TopologyOp identifies a structural mesh edit.
type TopologyOp int

const (
	TopoSubdivide TopologyOp = iota
	TopoFlip
	TopoCollapse
	TopoDeleteVertex
)

func (op TopologyOp) String() string {
	switch op {
	case TopoSubdivide:
		return "subdivide"
	case TopoFlip:
		return "flip"
	case TopoCollapse:
		return "collapse"
	case TopoDeleteVertex:
		return "delete_vertex"
	}
	return "unknown"
}

// TopologySnapshot is opaque modifier-owned state sufficient to restore the
// mesh exactly as it was before a structural edit. The editor stores it and
// hands it back on undo/redo without looking inside.
type TopologySnapshot any

// TopologyChange is returned by the modifier after a successful structural
// edit. A nil return means the modifier declined the operation.
type TopologyChange struct {
	Before TopologySnapshot

	// NewVertex is set by SubdivideEdge so the caller can select the
	// inserted vertex.
	NewVertex VertexKey
}

// Modifier is the capability set the editor requires from the mesh/grid
// owner. The editor never writes grid or vertex storage directly; every
// persistent change goes through this interface.
type Modifier interface {
	// Layout grid: per-cell elevation and terrain classification. Reads
	// report ok=false out of bounds; writes out of bounds are ignored.
	LayoutDimensions() (w, h int)
	ElevationAt(c Cell) (float32, bool)
	SetElevationAt(c Cell, z float32)
	TerrainTypeAt(c Cell) (TerrainType, bool)
	SetTerrainTypeAt(c Cell, t TerrainType)

	// Vertex grid: mesh vertices addressed by key. Keys of vertices
	// inserted by topology edits are assigned by the modifier.
	VertexDimensions() (w, h int)
	WorldDimensions() (w, h float32)
	VertexPosition(v VertexKey) (math.Vec3, bool)
	SetVertexPosition(v VertexKey, p math.Vec3)
	VertexElevation(v VertexKey) (float32, bool)
	SetVertexElevation(v VertexKey, y float32)

	// Visual resync requests. RebuildTile covers the tile and its
	// neighbors; RebuildMesh resyncs everything.
	RebuildTile(x, y int)
	RebuildMesh()

	// Hit testing against world coordinates.
	WorldToVertex(p math.Vec3) (VertexKey, bool)
	NearestVertex(p math.Vec3) (VertexKey, bool)
	NearestEdge(p math.Vec3) (edge int, ok bool)
	FaceAt(p math.Vec3) (face int, ok bool)

	// Topology operations. Each performs the graph surgery and returns the
	// before state, or nil when the edit cannot be performed.
	SubdivideEdge(edge int, t float32) *TopologyChange
	FlipEdge(edge int) *TopologyChange
	CollapseEdge(edge int) *TopologyChange
	DeleteVertex(v VertexKey) *TopologyChange
	CanDeleteVertex(v VertexKey) bool
	RestoreTopology(snap TopologySnapshot)
	CaptureTopology() TopologySnapshot

	// Highlight pass-through for edge/face selection state owned by the
	// render layer.
	SelectEdge(edge int)
	ToggleEdge(edge int)
	SelectedEdges() []int
	ClearEdgeSelection()
	SelectFace(face int)
	DeselectFace(face int)
	ToggleFace(face int)
	ClearFaceSelection()
	FaceIDs() []int
}
