package editor

import "testing"

func newEdgeEditor(t *testing.T) (*Editor, *mockModifier) {
	t.Helper()
	e, m := newTestEditor(5, 5)
	e.SetTopologyMode(TopoEdge)
	m.hitEdge = 4
	e.Selection().SelectEdge(4)
	return e, m
}

func TestTopology_SubdivideSelectedEdge(t *testing.T) {
	e, m := newEdgeEditor(t)

	if !e.SubdivideSelectedEdge(0.5) {
		t.Fatal("expected subdivide to succeed")
	}
	if m.topoGen != 1 {
		t.Fatalf("expected one topology edit, got gen %d", m.topoGen)
	}
	if e.Selection().Edge() != -1 {
		t.Error("expected edge selection cleared, the edge no longer exists")
	}
	if u, _ := e.History().Depths(); u != 1 {
		t.Fatalf("expected one action, got %d", u)
	}

	e.Undo()
	if m.topoGen != 0 {
		t.Errorf("expected before state after undo, got gen %d", m.topoGen)
	}
	e.Redo()
	if m.topoGen != 1 {
		t.Errorf("expected after state restored on redo, got gen %d", m.topoGen)
	}
}

func TestTopology_SubdivideInvalidParameter(t *testing.T) {
	e, m := newEdgeEditor(t)

	if e.SubdivideSelectedEdge(0) {
		t.Error("expected t=0 declined")
	}
	if e.SubdivideSelectedEdge(1) {
		t.Error("expected t=1 declined")
	}
	if m.topoGen != 0 || e.History().CanUndo() {
		t.Error("a declined operation must leave no trace")
	}
}

func TestTopology_FlipKeepsSelection(t *testing.T) {
	e, _ := newEdgeEditor(t)

	if !e.FlipSelectedEdge() {
		t.Fatal("expected flip to succeed")
	}
	// The flipped edge keeps its id, so the selection survives.
	if e.Selection().Edge() != 4 {
		t.Errorf("expected edge still selected after flip, got %d", e.Selection().Edge())
	}
}

func TestTopology_DeclinedOperation(t *testing.T) {
	e, m := newEdgeEditor(t)
	m.declineTopo = true

	if e.FlipSelectedEdge() {
		t.Error("expected flip declined")
	}
	if e.CollapseSelectedEdge() {
		t.Error("expected collapse declined")
	}
	if e.History().CanUndo() {
		t.Error("declined operations must not reach the action log")
	}
}

func TestTopology_RequiresEdgeMode(t *testing.T) {
	e, _ := newTestEditor(5, 5)

	if e.SubdivideSelectedEdge(0.5) {
		t.Error("expected subdivide refused outside edge mode")
	}
	if e.FlipSelectedEdge() {
		t.Error("expected flip refused outside edge mode")
	}
}

func TestTopology_CollapseClearsSelection(t *testing.T) {
	e, m := newEdgeEditor(t)

	if !e.CollapseSelectedEdge() {
		t.Fatal("expected collapse to succeed")
	}
	if e.Selection().Edge() != -1 {
		t.Error("expected edge selection cleared after collapse")
	}
	if len(m.selEdges) != 0 {
		t.Error("expected modifier highlight cleared after collapse")
	}
}

func TestTopology_DeleteSelectedVertices(t *testing.T) {
	e, m := newTestEditor(5, 5)

	e.Selection().SelectVertex(VertexKey{1, 1}, false)
	e.Selection().SelectVertex(VertexKey{2, 2}, true)

	if !e.DeleteSelectedVertices() {
		t.Fatal("expected delete to succeed")
	}
	if _, ok := m.pos[VertexKey{1, 1}]; ok {
		t.Error("expected vertex deleted")
	}
	if e.Selection().Count() != 0 {
		t.Errorf("expected deleted vertices dropped from selection, got %d", e.Selection().Count())
	}
	// Both deletions land in one homogeneous action.
	if u, _ := e.History().Depths(); u != 1 {
		t.Fatalf("expected one action, got %d", u)
	}

	e.Undo()
	if m.topoGen != 0 {
		t.Errorf("expected chained deletions unwound, got gen %d", m.topoGen)
	}
}

func TestTopology_DeleteRefusedVerticesSkipped(t *testing.T) {
	e, m := newTestEditor(5, 5)
	m.canDelete = false

	e.Selection().SelectVertex(VertexKey{1, 1}, false)
	if e.DeleteSelectedVertices() {
		t.Error("expected delete refused when the modifier disallows it")
	}
	if e.History().CanUndo() {
		t.Error("refused deletions must not commit")
	}
}

func TestTopology_DisabledEditor(t *testing.T) {
	e, _ := newEdgeEditor(t)
	e.Disable()

	if e.SubdivideSelectedEdge(0.5) {
		t.Error("expected subdivide refused while disabled")
	}
}
