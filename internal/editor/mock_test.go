package editor

import (
	"github.com/fairwaylabs/greenside/pkg/math"
)

// mockModifier is an in-memory Modifier for tests. The layout grid is
// backed by slices, the vertex grid by a map of lattice positions with a
// cell size of one world unit. Hit testing for edges and faces returns the
// canned hitEdge/hitFace ids. Topology operations are modeled as an opaque
// generation counter so tests can observe which snapshot was restored.
type mockModifier struct {
	w, h   int
	elev   []float32
	types  []TerrainType
	vw, vh int
	pos    map[VertexKey]math.Vec3

	dirtyTiles   []Cell
	meshRebuilds int

	hitEdge int
	hitFace int
	faceIDs []int

	topoGen     int
	declineTopo bool
	canDelete   bool
	nextSynth   int

	selEdges map[int]struct{}
	selFaces map[int]struct{}
}

func newMockModifier(w, h int) *mockModifier {
	m := &mockModifier{
		w:         w,
		h:         h,
		elev:      make([]float32, w*h),
		types:     make([]TerrainType, w*h),
		vw:        w + 1,
		vh:        h + 1,
		pos:       make(map[VertexKey]math.Vec3),
		hitEdge:   -1,
		hitFace:   -1,
		canDelete: true,
		selEdges:  make(map[int]struct{}),
		selFaces:  make(map[int]struct{}),
	}
	for i := range m.types {
		m.types[i] = TerrainRough
	}
	for y := 0; y < m.vh; y++ {
		for x := 0; x < m.vw; x++ {
			m.pos[VertexKey{x, y}] = math.Vec3{X: float32(x), Y: 0, Z: float32(y)}
		}
	}
	return m
}

func (m *mockModifier) inBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.w && c.Y < m.h
}

func (m *mockModifier) LayoutDimensions() (int, int) { return m.w, m.h }

func (m *mockModifier) ElevationAt(c Cell) (float32, bool) {
	if !m.inBounds(c) {
		return 0, false
	}
	return m.elev[c.Y*m.w+c.X], true
}

func (m *mockModifier) SetElevationAt(c Cell, z float32) {
	if m.inBounds(c) {
		m.elev[c.Y*m.w+c.X] = z
	}
}

func (m *mockModifier) TerrainTypeAt(c Cell) (TerrainType, bool) {
	if !m.inBounds(c) {
		return 0, false
	}
	return m.types[c.Y*m.w+c.X], true
}

func (m *mockModifier) SetTerrainTypeAt(c Cell, t TerrainType) {
	if m.inBounds(c) {
		m.types[c.Y*m.w+c.X] = t
	}
}

func (m *mockModifier) VertexDimensions() (int, int) { return m.vw, m.vh }

func (m *mockModifier) WorldDimensions() (float32, float32) {
	return float32(m.w), float32(m.h)
}

func (m *mockModifier) VertexPosition(v VertexKey) (math.Vec3, bool) {
	p, ok := m.pos[v]
	return p, ok
}

func (m *mockModifier) SetVertexPosition(v VertexKey, p math.Vec3) {
	if _, ok := m.pos[v]; ok {
		m.pos[v] = p
	}
}

func (m *mockModifier) VertexElevation(v VertexKey) (float32, bool) {
	p, ok := m.pos[v]
	return p.Y, ok
}

func (m *mockModifier) SetVertexElevation(v VertexKey, y float32) {
	if p, ok := m.pos[v]; ok {
		p.Y = y
		m.pos[v] = p
	}
}

func (m *mockModifier) RebuildTile(x, y int) {
	m.dirtyTiles = append(m.dirtyTiles, Cell{x, y})
}

func (m *mockModifier) RebuildMesh() { m.meshRebuilds++ }

func (m *mockModifier) WorldToVertex(p math.Vec3) (VertexKey, bool) {
	return m.NearestVertex(p)
}

func (m *mockModifier) NearestVertex(p math.Vec3) (VertexKey, bool) {
	v := VertexKey{roundf(p.X), roundf(p.Z)}
	_, ok := m.pos[v]
	return v, ok
}

func roundf(f float32) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}

func (m *mockModifier) NearestEdge(p math.Vec3) (int, bool) {
	return m.hitEdge, m.hitEdge >= 0
}

func (m *mockModifier) FaceAt(p math.Vec3) (int, bool) {
	return m.hitFace, m.hitFace >= 0
}

func (m *mockModifier) SubdivideEdge(edge int, t float32) *TopologyChange {
	if m.declineTopo || t <= 0 || t >= 1 {
		return nil
	}
	before := m.topoGen
	m.topoGen++
	m.nextSynth++
	return &TopologyChange{Before: before, NewVertex: VertexKey{m.nextSynth, -1}}
}

func (m *mockModifier) FlipEdge(edge int) *TopologyChange {
	if m.declineTopo {
		return nil
	}
	before := m.topoGen
	m.topoGen++
	return &TopologyChange{Before: before}
}

func (m *mockModifier) CollapseEdge(edge int) *TopologyChange {
	if m.declineTopo {
		return nil
	}
	before := m.topoGen
	m.topoGen++
	return &TopologyChange{Before: before}
}

func (m *mockModifier) DeleteVertex(v VertexKey) *TopologyChange {
	if m.declineTopo {
		return nil
	}
	if _, ok := m.pos[v]; !ok {
		return nil
	}
	delete(m.pos, v)
	before := m.topoGen
	m.topoGen++
	return &TopologyChange{Before: before}
}

func (m *mockModifier) CanDeleteVertex(v VertexKey) bool {
	_, ok := m.pos[v]
	return ok && m.canDelete
}

func (m *mockModifier) RestoreTopology(snap TopologySnapshot) {
	m.topoGen = snap.(int)
}

func (m *mockModifier) CaptureTopology() TopologySnapshot { return m.topoGen }

func (m *mockModifier) SelectEdge(edge int) { m.selEdges[edge] = struct{}{} }

func (m *mockModifier) ToggleEdge(edge int) {
	if _, ok := m.selEdges[edge]; ok {
		delete(m.selEdges, edge)
	} else {
		m.selEdges[edge] = struct{}{}
	}
}

func (m *mockModifier) SelectedEdges() []int {
	ids := make([]int, 0, len(m.selEdges))
	for id := range m.selEdges {
		ids = append(ids, id)
	}
	return ids
}

func (m *mockModifier) ClearEdgeSelection() { clear(m.selEdges) }

func (m *mockModifier) SelectFace(face int) { m.selFaces[face] = struct{}{} }

func (m *mockModifier) DeselectFace(face int) { delete(m.selFaces, face) }

func (m *mockModifier) ToggleFace(face int) {
	if _, ok := m.selFaces[face]; ok {
		delete(m.selFaces, face)
	} else {
		m.selFaces[face] = struct{}{}
	}
}

func (m *mockModifier) ClearFaceSelection() { clear(m.selFaces) }

func (m *mockModifier) FaceIDs() []int { return m.faceIDs }
