package editor

import "sort"

// Selection owns the current selection for each topology granularity. Only
// the set matching the active mode is authoritative; switching modes clears
// the other modes' highlight state. Edge and face highlight is mirrored to
// the modifier, which owns the visual representation.
type Selection struct {
	m    Modifier
	mode TopologyMode

	vertices map[VertexKey]struct{}
	faces    map[int]struct{}
	edge     int // selected edge id, -1 when none

	onChange func(count int)
}

// NewSelection creates an empty selection in vertex mode.
func NewSelection(m Modifier) *Selection {
	return &Selection{
		m:        m,
		mode:     TopoVertex,
		vertices: make(map[VertexKey]struct{}),
		faces:    make(map[int]struct{}),
		edge:     -1,
	}
}

// SetOnChange registers a listener notified with the new selection count
// after every mutation.
func (s *Selection) SetOnChange(fn func(count int)) {
	s.onChange = fn
}

// Mode returns the active topology mode.
func (s *Selection) Mode() TopologyMode { return s.mode }

// SetMode switches the topology granularity, clearing the stale highlight
// state of the other modes.
func (s *Selection) SetMode(mode TopologyMode) {
	if mode == s.mode {
		return
	}
	s.mode = mode

	if mode != TopoVertex {
		clear(s.vertices)
	}
	if mode != TopoEdge && s.edge != -1 {
		s.edge = -1
		s.m.ClearEdgeSelection()
	}
	if mode != TopoFace && len(s.faces) > 0 {
		clear(s.faces)
		s.m.ClearFaceSelection()
	}
	s.notify()
}

// Count returns the number of selected elements in the active mode.
func (s *Selection) Count() int {
	switch s.mode {
	case TopoVertex:
		return len(s.vertices)
	case TopoEdge:
		if s.edge == -1 {
			return 0
		}
		return 1
	case TopoFace:
		return len(s.faces)
	}
	return 0
}

// Vertices returns the selected vertex keys in deterministic order.
func (s *Selection) Vertices() []VertexKey {
	keys := make([]VertexKey, 0, len(s.vertices))
	for v := range s.vertices {
		keys = append(keys, v)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	return keys
}

// IsVertexSelected reports whether v is in the vertex selection.
func (s *Selection) IsVertexSelected(v VertexKey) bool {
	_, ok := s.vertices[v]
	return ok
}

// Edge returns the selected edge id, or -1.
func (s *Selection) Edge() int { return s.edge }

// Faces returns the selected face ids in ascending order.
func (s *Selection) Faces() []int {
	ids := make([]int, 0, len(s.faces))
	for id := range s.faces {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// IsFaceSelected reports whether the face is selected.
func (s *Selection) IsFaceSelected(face int) bool {
	_, ok := s.faces[face]
	return ok
}

// SelectVertex selects a vertex, replacing the set unless additive.
func (s *Selection) SelectVertex(v VertexKey, additive bool) {
	if !additive {
		clear(s.vertices)
	}
	s.vertices[v] = struct{}{}
	s.notify()
}

// ToggleVertex flips a vertex in or out of the selection.
func (s *Selection) ToggleVertex(v VertexKey) {
	if _, ok := s.vertices[v]; ok {
		delete(s.vertices, v)
	} else {
		s.vertices[v] = struct{}{}
	}
	s.notify()
}

// SelectEdge selects a single edge, replacing any previous edge selection.
func (s *Selection) SelectEdge(edge int) {
	s.m.ClearEdgeSelection()
	s.edge = edge
	s.m.SelectEdge(edge)
	s.notify()
}

// ToggleEdge deselects the edge if it is the current selection, otherwise
// selects it.
func (s *Selection) ToggleEdge(edge int) {
	if s.edge == edge {
		s.edge = -1
		s.m.ClearEdgeSelection()
		s.notify()
		return
	}
	s.SelectEdge(edge)
}

// SelectFace selects a face, replacing the set unless additive.
func (s *Selection) SelectFace(face int, additive bool) {
	if !additive {
		for id := range s.faces {
			s.m.DeselectFace(id)
		}
		clear(s.faces)
	}
	s.faces[face] = struct{}{}
	s.m.SelectFace(face)
	s.notify()
}

// ToggleFace flips a face in or out of the selection.
func (s *Selection) ToggleFace(face int) {
	if _, ok := s.faces[face]; ok {
		delete(s.faces, face)
		s.m.DeselectFace(face)
	} else {
		s.faces[face] = struct{}{}
		s.m.SelectFace(face)
	}
	s.notify()
}

// SelectAll selects every element of the active mode. Edge mode holds a
// single edge at a time, so select-all is a no-op there.
func (s *Selection) SelectAll() {
	switch s.mode {
	case TopoVertex:
		w, h := s.m.VertexDimensions()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				s.vertices[VertexKey{x, y}] = struct{}{}
			}
		}
	case TopoFace:
		for _, id := range s.m.FaceIDs() {
			if _, ok := s.faces[id]; !ok {
				s.faces[id] = struct{}{}
				s.m.SelectFace(id)
			}
		}
	}
	s.notify()
}

// DeselectAll clears the active mode's selection.
func (s *Selection) DeselectAll() {
	switch s.mode {
	case TopoVertex:
		clear(s.vertices)
	case TopoEdge:
		s.edge = -1
		s.m.ClearEdgeSelection()
	case TopoFace:
		clear(s.faces)
		s.m.ClearFaceSelection()
	}
	s.notify()
}

// Invert inverts the active mode's selection against its universe.
func (s *Selection) Invert() {
	switch s.mode {
	case TopoVertex:
		w, h := s.m.VertexDimensions()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := VertexKey{x, y}
				if _, ok := s.vertices[v]; ok {
					delete(s.vertices, v)
				} else {
					s.vertices[v] = struct{}{}
				}
			}
		}
	case TopoFace:
		for _, id := range s.m.FaceIDs() {
			if _, ok := s.faces[id]; ok {
				delete(s.faces, id)
				s.m.DeselectFace(id)
			} else {
				s.faces[id] = struct{}{}
				s.m.SelectFace(id)
			}
		}
	}
	s.notify()
}

// SelectInBox selects the vertices inside the axis-aligned box spanned by
// two corners, in either corner order.
func (s *Selection) SelectInBox(c1, c2 VertexKey, additive bool) {
	minX, maxX := c1.X, c2.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := c1.Y, c2.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}

	if !additive {
		clear(s.vertices)
	}

	w, h := s.m.VertexDimensions()
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if x >= 0 && y >= 0 && x < w && y < h {
				s.vertices[VertexKey{x, y}] = struct{}{}
			}
		}
	}
	s.notify()
}

// SelectInBrush selects the vertices inside a circular brush footprint.
func (s *Selection) SelectInBrush(center VertexKey, radius int, additive bool) {
	if !additive {
		clear(s.vertices)
	}
	w, h := s.m.VertexDimensions()
	for _, v := range VerticesInBrush(center.X, center.Y, radius, w, h) {
		s.vertices[v] = struct{}{}
	}
	s.notify()
}

// forgetEdge drops the edge selection bookkeeping without touching the
// modifier, for when the edge no longer exists after a topology edit.
func (s *Selection) forgetEdge() {
	s.edge = -1
	s.notify()
}

// forgetVertices drops vertices from the selection after they were deleted.
func (s *Selection) forgetVertices(verts []VertexKey) {
	for _, v := range verts {
		delete(s.vertices, v)
	}
	s.notify()
}

func (s *Selection) notify() {
	if s.onChange != nil {
		s.onChange(s.Count())
	}
}
