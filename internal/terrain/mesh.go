package terrain

import (
	gomath "math"

	"github.com/fairwaylabs/greenside/internal/editor"
	"github.com/fairwaylabs/greenside/pkg/math"
)

// Mesh is the triangulated course surface. Vertices are addressed by
// editor.VertexKey: lattice vertices carry their grid coordinates, vertices
// inserted by subdivision get synthetic keys with Y = -1 so they can never
// collide with the lattice. Edges and faces carry opaque integer ids.
type Mesh struct {
	cellSize float32
	vw, vh   int // vertex grid dimensions at build time

	verts map[editor.VertexKey]math.Vec3
	edges map[int][2]editor.VertexKey
	faces map[int][3]editor.VertexKey

	nextEdge  int
	nextFace  int
	nextSynth int

	selEdges map[int]struct{}
	selFaces map[int]struct{}
}

// NewMesh builds a flat (vw x vh)-vertex mesh with two triangles per cell.
func NewMesh(vw, vh int, cellSize float32) *Mesh {
	m := &Mesh{
		cellSize: cellSize,
		vw:       vw,
		vh:       vh,
		verts:    make(map[editor.VertexKey]math.Vec3, vw*vh),
		edges:    make(map[int][2]editor.VertexKey),
		faces:    make(map[int][3]editor.VertexKey),
		selEdges: make(map[int]struct{}),
		selFaces: make(map[int]struct{}),
	}

	for y := 0; y < vh; y++ {
		for x := 0; x < vw; x++ {
			m.verts[editor.VertexKey{X: x, Y: y}] = math.Vec3{
				X: float32(x) * cellSize,
				Z: float32(y) * cellSize,
			}
		}
	}

	for y := 0; y < vh-1; y++ {
		for x := 0; x < vw-1; x++ {
			a := editor.VertexKey{X: x, Y: y}
			b := editor.VertexKey{X: x + 1, Y: y}
			c := editor.VertexKey{X: x, Y: y + 1}
			d := editor.VertexKey{X: x + 1, Y: y + 1}
			m.addFace(a, b, c)
			m.addFace(b, d, c)
		}
	}

	return m
}

// VertexDimensions returns the build-time vertex grid size.
func (m *Mesh) VertexDimensions() (w, h int) { return m.vw, m.vh }

// VertexCount returns the current number of vertices.
func (m *Mesh) VertexCount() int { return len(m.verts) }

// EdgeCount returns the current number of edges.
func (m *Mesh) EdgeCount() int { return len(m.edges) }

// FaceCount returns the current number of faces.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// Position returns the position of a vertex.
func (m *Mesh) Position(v editor.VertexKey) (math.Vec3, bool) {
	p, ok := m.verts[v]
	return p, ok
}

// SetPosition moves a vertex. Unknown keys are ignored.
func (m *Mesh) SetPosition(v editor.VertexKey, p math.Vec3) {
	if _, ok := m.verts[v]; !ok {
		return
	}
	m.verts[v] = p
}

// EdgeEndpoints returns the endpoints of an edge.
func (m *Mesh) EdgeEndpoints(edge int) ([2]editor.VertexKey, bool) {
	ends, ok := m.edges[edge]
	return ends, ok
}

// FaceVertices returns the corner keys of a face.
func (m *Mesh) FaceVertices(face int) ([3]editor.VertexKey, bool) {
	verts, ok := m.faces[face]
	return verts, ok
}

// FaceIDs returns all face ids in unspecified order.
func (m *Mesh) FaceIDs() []int {
	ids := make([]int, 0, len(m.faces))
	for id := range m.faces {
		ids = append(ids, id)
	}
	return ids
}

// addFace registers a face and ensures its three boundary edges exist.
func (m *Mesh) addFace(a, b, c editor.VertexKey) int {
	id := m.nextFace
	m.nextFace++
	m.faces[id] = [3]editor.VertexKey{a, b, c}
	m.ensureEdge(a, b)
	m.ensureEdge(b, c)
	m.ensureEdge(c, a)
	return id
}

// ensureEdge creates the undirected edge a-b if it does not exist yet.
func (m *Mesh) ensureEdge(a, b editor.VertexKey) int {
	if id, ok := m.findEdge(a, b); ok {
		return id
	}
	id := m.nextEdge
	m.nextEdge++
	m.edges[id] = [2]editor.VertexKey{a, b}
	return id
}

func (m *Mesh) findEdge(a, b editor.VertexKey) (int, bool) {
	for id, ends := range m.edges {
		if (ends[0] == a && ends[1] == b) || (ends[0] == b && ends[1] == a) {
			return id, true
		}
	}
	return 0, false
}

// facesWithEdge returns the ids of faces containing both endpoints.
func (m *Mesh) facesWithEdge(a, b editor.VertexKey) []int {
	var ids []int
	for id, verts := range m.faces {
		if faceHas(verts, a) && faceHas(verts, b) {
			ids = append(ids, id)
		}
	}
	return ids
}

func faceHas(verts [3]editor.VertexKey, v editor.VertexKey) bool {
	return verts[0] == v || verts[1] == v || verts[2] == v
}

func faceOpposite(verts [3]editor.VertexKey, a, b editor.VertexKey) editor.VertexKey {
	for _, v := range verts {
		if v != a && v != b {
			return v
		}
	}
	return verts[0]
}

// synthKey allocates a key for a vertex created by subdivision.
func (m *Mesh) synthKey() editor.VertexKey {
	k := editor.VertexKey{X: m.nextSynth, Y: -1}
	m.nextSynth++
	return k
}

// Subdivide inserts a new vertex at parameter t along the edge, splitting
// each adjacent face in two. Returns the new vertex key.
func (m *Mesh) Subdivide(edge int, t float32) (editor.VertexKey, bool) {
	ends, ok := m.edges[edge]
	if !ok || t <= 0 || t >= 1 {
		return editor.VertexKey{}, false
	}
	a, b := ends[0], ends[1]

	n := m.synthKey()
	m.verts[n] = m.verts[a].Lerp(m.verts[b], t)

	for _, fid := range m.facesWithEdge(a, b) {
		verts := m.faces[fid]
		w := faceOpposite(verts, a, b)
		delete(m.faces, fid)
		delete(m.selFaces, fid)
		m.addFace(a, n, w)
		m.addFace(n, b, w)
	}

	delete(m.edges, edge)
	delete(m.selEdges, edge)
	m.ensureEdge(a, n)
	m.ensureEdge(n, b)
	return n, true
}

// Flip swaps the edge's diagonal between its two adjacent triangles. Fails
// unless the edge has exactly two adjacent faces and the flipped diagonal
// does not already exist.
func (m *Mesh) Flip(edge int) bool {
	ends, ok := m.edges[edge]
	if !ok {
		return false
	}
	a, b := ends[0], ends[1]

	adjacent := m.facesWithEdge(a, b)
	if len(adjacent) != 2 {
		return false
	}
	c := faceOpposite(m.faces[adjacent[0]], a, b)
	d := faceOpposite(m.faces[adjacent[1]], a, b)
	if _, exists := m.findEdge(c, d); exists {
		return false
	}

	for _, fid := range adjacent {
		delete(m.faces, fid)
		delete(m.selFaces, fid)
	}
	m.edges[edge] = [2]editor.VertexKey{c, d}
	m.addFace(a, c, d)
	m.addFace(b, d, c)
	return true
}

// Collapse merges the edge's endpoints into one vertex at the edge
// midpoint, deleting the edge and any faces made degenerate by the merge.
func (m *Mesh) Collapse(edge int) bool {
	ends, ok := m.edges[edge]
	if !ok {
		return false
	}
	a, b := ends[0], ends[1]

	m.verts[a] = m.verts[a].Lerp(m.verts[b], 0.5)
	delete(m.verts, b)
	delete(m.edges, edge)
	delete(m.selEdges, edge)

	for fid, verts := range m.faces {
		hasA, hasB := faceHas(verts, a), faceHas(verts, b)
		switch {
		case hasA && hasB:
			delete(m.faces, fid)
			delete(m.selFaces, fid)
		case hasB:
			for i := range verts {
				if verts[i] == b {
					verts[i] = a
				}
			}
			m.faces[fid] = verts
		}
	}

	for eid, e := range m.edges {
		if e[0] == b {
			e[0] = a
		}
		if e[1] == b {
			e[1] = a
		}
		m.edges[eid] = e
	}
	m.dedupeEdges()
	return true
}

// DeleteVertex removes a vertex and everything incident to it.
func (m *Mesh) DeleteVertex(v editor.VertexKey) bool {
	if _, ok := m.verts[v]; !ok {
		return false
	}
	delete(m.verts, v)

	for fid, verts := range m.faces {
		if faceHas(verts, v) {
			delete(m.faces, fid)
			delete(m.selFaces, fid)
		}
	}
	for eid, ends := range m.edges {
		if ends[0] == v || ends[1] == v {
			delete(m.edges, eid)
			delete(m.selEdges, eid)
		}
	}
	return true
}

// CanDeleteVertex reports whether deleting the vertex leaves a usable mesh.
func (m *Mesh) CanDeleteVertex(v editor.VertexKey) bool {
	if _, ok := m.verts[v]; !ok {
		return false
	}
	return len(m.verts) > 3
}

// dedupeEdges removes edges that ended up with identical endpoints after a
// collapse, and any self-edges.
func (m *Mesh) dedupeEdges() {
	type pair struct{ a, b editor.VertexKey }
	seen := make(map[pair]bool, len(m.edges))
	for id, ends := range m.edges {
		a, b := ends[0], ends[1]
		if a == b {
			delete(m.edges, id)
			delete(m.selEdges, id)
			continue
		}
		key := pair{a, b}
		if less(b, a) {
			key = pair{b, a}
		}
		if seen[key] {
			delete(m.edges, id)
			delete(m.selEdges, id)
			continue
		}
		seen[key] = true
	}
}

func less(a, b editor.VertexKey) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// NearestVertex returns the vertex closest to the world position on the
// ground plane, if one is within a cell of it.
func (m *Mesh) NearestVertex(p math.Vec3) (editor.VertexKey, bool) {
	var best editor.VertexKey
	bestDist := m.cellSize
	found := false
	for v, pos := range m.verts {
		d := pos.XZ().Distance(p.XZ())
		if d < bestDist || (d == bestDist && !found) {
			best = v
			bestDist = d
			found = true
		}
	}
	return best, found
}

// WorldToVertex maps a world position straight onto the lattice.
func (m *Mesh) WorldToVertex(p math.Vec3) (editor.VertexKey, bool) {
	x := int(gomath.Round(float64(p.X / m.cellSize)))
	y := int(gomath.Round(float64(p.Z / m.cellSize)))
	v := editor.VertexKey{X: x, Y: y}
	_, ok := m.verts[v]
	return v, ok
}

// NearestEdge returns the edge closest to the world position on the ground
// plane, if one is within half a cell of it.
func (m *Mesh) NearestEdge(p math.Vec3) (int, bool) {
	best := -1
	bestDist := m.cellSize * 0.5
	q := p.XZ()
	for id, ends := range m.edges {
		a, aok := m.verts[ends[0]]
		b, bok := m.verts[ends[1]]
		if !aok || !bok {
			continue
		}
		d := pointSegmentDistance(q, a.XZ(), b.XZ())
		if d < bestDist || (d == bestDist && best == -1) {
			best = id
			bestDist = d
		}
	}
	return best, best != -1
}

// FaceAt returns the face whose ground-plane projection contains the world
// position.
func (m *Mesh) FaceAt(p math.Vec3) (int, bool) {
	q := p.XZ()
	for id, verts := range m.faces {
		a, aok := m.verts[verts[0]]
		b, bok := m.verts[verts[1]]
		c, cok := m.verts[verts[2]]
		if !aok || !bok || !cok {
			continue
		}
		if pointInTriangle(q, a.XZ(), b.XZ(), c.XZ()) {
			return id, true
		}
	}
	return -1, false
}

func pointSegmentDistance(p, a, b math.Vec2) float32 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Scale(t)))
}

func pointInTriangle(p, a, b, c math.Vec2) bool {
	sign := func(p1, p2, p3 math.Vec2) float32 {
		return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
	}
	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// SelectEdge marks an edge selected for highlight.
func (m *Mesh) SelectEdge(edge int) { m.selEdges[edge] = struct{}{} }

// ToggleEdge flips an edge's highlight state.
func (m *Mesh) ToggleEdge(edge int) {
	if _, ok := m.selEdges[edge]; ok {
		delete(m.selEdges, edge)
	} else {
		m.selEdges[edge] = struct{}{}
	}
}

// SelectedEdges returns the highlighted edge ids.
func (m *Mesh) SelectedEdges() []int {
	ids := make([]int, 0, len(m.selEdges))
	for id := range m.selEdges {
		ids = append(ids, id)
	}
	return ids
}

// ClearEdgeSelection drops all edge highlights.
func (m *Mesh) ClearEdgeSelection() { clear(m.selEdges) }

// SelectFace marks a face selected for highlight.
func (m *Mesh) SelectFace(face int) { m.selFaces[face] = struct{}{} }

// DeselectFace drops one face highlight.
func (m *Mesh) DeselectFace(face int) { delete(m.selFaces, face) }

// ToggleFace flips a face's highlight state.
func (m *Mesh) ToggleFace(face int) {
	if _, ok := m.selFaces[face]; ok {
		delete(m.selFaces, face)
	} else {
		m.selFaces[face] = struct{}{}
	}
}

// ClearFaceSelection drops all face highlights.
func (m *Mesh) ClearFaceSelection() { clear(m.selFaces) }
