package editor

import "go.uber.org/zap"

// Topology edits are sequenced here but performed by the modifier, which
// owns the mesh graph. The editor wraps the returned before-state in a
// topology action so the exact prior adjacency can be restored on undo. A
// nil result from the modifier is a declined operation: nothing is applied
// and nothing reaches the action log.

// SubdivideSelectedEdge inserts a new vertex at parameter t along the
// selected edge. The inserted vertex becomes the vertex-mode selection seed
// when the host switches granularity afterwards.
func (e *Editor) SubdivideSelectedEdge(t float32) bool {
	if !e.enabled || e.sel.Mode() != TopoEdge || e.sel.Edge() < 0 {
		return false
	}
	edge := e.sel.Edge()

	change := e.m.SubdivideEdge(edge, t)
	if change == nil {
		e.log.Debug("subdivide declined", zap.Int("edge", edge))
		return false
	}

	e.commitTopology(TopoSubdivide, change.Before)
	e.sel.forgetEdge()
	e.m.ClearEdgeSelection()
	return true
}

// FlipSelectedEdge swaps the selected edge's diagonal between its two
// adjacent triangles.
func (e *Editor) FlipSelectedEdge() bool {
	if !e.enabled || e.sel.Mode() != TopoEdge || e.sel.Edge() < 0 {
		return false
	}
	edge := e.sel.Edge()

	change := e.m.FlipEdge(edge)
	if change == nil {
		e.log.Debug("flip declined", zap.Int("edge", edge))
		return false
	}

	e.commitTopology(TopoFlip, change.Before)
	return true
}

// CollapseSelectedEdge merges the selected edge's endpoints, deleting the
// edge and any faces made degenerate by the merge.
func (e *Editor) CollapseSelectedEdge() bool {
	if !e.enabled || e.sel.Mode() != TopoEdge || e.sel.Edge() < 0 {
		return false
	}
	edge := e.sel.Edge()

	change := e.m.CollapseEdge(edge)
	if change == nil {
		e.log.Debug("collapse declined", zap.Int("edge", edge))
		return false
	}

	e.commitTopology(TopoCollapse, change.Before)
	e.sel.forgetEdge()
	e.m.ClearEdgeSelection()
	return true
}

// DeleteSelectedVertices removes every selected vertex the modifier allows,
// as one homogeneous action. Returns false when nothing was deleted.
func (e *Editor) DeleteSelectedVertices() bool {
	if !e.enabled || e.sel.Mode() != TopoVertex || e.sel.Count() == 0 {
		return false
	}

	var mods []Modification
	var deleted []VertexKey
	for _, v := range e.sel.Vertices() {
		if !e.m.CanDeleteVertex(v) {
			continue
		}
		change := e.m.DeleteVertex(v)
		if change == nil {
			continue
		}
		mods = append(mods, Modification{
			Kind:   KindTopology,
			Op:     TopoDeleteVertex,
			Before: change.Before,
			After:  e.m.CaptureTopology(),
		})
		deleted = append(deleted, v)
	}

	if len(mods) == 0 {
		return false
	}

	e.m.RebuildMesh()
	e.hist.Commit(KindTopology, mods)
	e.sel.forgetVertices(deleted)
	e.log.Debug("vertices deleted", zap.Int("count", len(deleted)))
	return true
}

// commitTopology wraps a single structural edit in an action. The after
// snapshot is captured immediately so redo can replay without re-running
// the operation against ids that may no longer exist.
func (e *Editor) commitTopology(op TopologyOp, before TopologySnapshot) {
	e.m.RebuildMesh()
	e.hist.Commit(KindTopology, []Modification{{
		Kind:   KindTopology,
		Op:     op,
		Before: before,
		After:  e.m.CaptureTopology(),
	}})
	e.log.Debug("topology edit", zap.Stringer("op", op))
}
