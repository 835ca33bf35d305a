package terrain

import (
	"github.com/fairwaylabs/greenside/internal/editor"
	"github.com/fairwaylabs/greenside/pkg/math"
)

// MeshSnapshot captures the full topology of a mesh. The editor stores
// snapshots opaquely in its action log and hands them back on undo/redo;
// they stay valid for repeated restores.
type MeshSnapshot struct {
	verts map[editor.VertexKey]math.Vec3
	edges map[int][2]editor.VertexKey
	faces map[int][3]editor.VertexKey

	nextEdge  int
	nextFace  int
	nextSynth int
}

// Snapshot deep-copies the mesh topology.
func (m *Mesh) Snapshot() *MeshSnapshot {
	s := &MeshSnapshot{
		verts:     make(map[editor.VertexKey]math.Vec3, len(m.verts)),
		edges:     make(map[int][2]editor.VertexKey, len(m.edges)),
		faces:     make(map[int][3]editor.VertexKey, len(m.faces)),
		nextEdge:  m.nextEdge,
		nextFace:  m.nextFace,
		nextSynth: m.nextSynth,
	}
	for k, v := range m.verts {
		s.verts[k] = v
	}
	for k, v := range m.edges {
		s.edges[k] = v
	}
	for k, v := range m.faces {
		s.faces[k] = v
	}
	return s
}

// Restore replaces the mesh topology with a snapshot's. The snapshot is
// copied, not adopted, so it can be restored again later.
func (m *Mesh) Restore(s *MeshSnapshot) {
	m.verts = make(map[editor.VertexKey]math.Vec3, len(s.verts))
	m.edges = make(map[int][2]editor.VertexKey, len(s.edges))
	m.faces = make(map[int][3]editor.VertexKey, len(s.faces))
	for k, v := range s.verts {
		m.verts[k] = v
	}
	for k, v := range s.edges {
		m.edges[k] = v
	}
	for k, v := range s.faces {
		m.faces[k] = v
	}
	m.nextEdge = s.nextEdge
	m.nextFace = s.nextFace
	m.nextSynth = s.nextSynth

	// Highlights may reference ids that no longer exist.
	for id := range m.selEdges {
		if _, ok := m.edges[id]; !ok {
			delete(m.selEdges, id)
		}
	}
	for id := range m.selFaces {
		if _, ok := m.faces[id]; !ok {
			delete(m.selFaces, id)
		}
	}
}
