// Package editor implements the course editing engine: tool and mode state,
// brush application, selection, drag gestures and the undo/redo action log.
// All persistent geometry is owned by the Modifier collaborator; the editor
// holds only ids, keys and snapshots.
package editor

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/fairwaylabs/greenside/pkg/math"
)

// cornerSnap is the pick radius around a cell corner, in cells.
const cornerSnap = 0.3

// Settings holds the numeric tuning of the editing engine.
type Settings struct {
	ElevationFloor  float32 // lower tool clamps here
	MaxSlopeDelta   float32 // flatten/smooth slope guard
	DragStepPixels  float32 // screen-Y pixels per sculpt step
	TranslateYScale float32 // world units per screen-Y pixel when moving vertices
}

// DefaultSettings returns the stock tuning values.
func DefaultSettings() Settings {
	return Settings{
		ElevationFloor:  -10,
		MaxSlopeDelta:   4,
		DragStepPixels:  20,
		TranslateYScale: 0.02,
	}
}

// Callbacks are observed by the host UI. All of them are optional and none
// is required for correctness.
type Callbacks struct {
	OnEnable             func()
	OnDisable            func()
	OnToolChange         func(Tool)
	OnModeChange         func(Mode)
	OnTopologyModeChange func(TopologyMode)
	OnBrushSizeChange    func(int)
	OnModification       func(tiles []Cell)
	OnUndoRedoChange     func(canUndo, canRedo bool)
	OnSelectionChange    func(count int)
}

// Editor is the editing pipeline. It owns the editor state, selection and
// action log exclusively and runs synchronously inside the host's frame
// loop; every entry point runs to completion within one call.
type Editor struct {
	m   Modifier
	set Settings
	log *zap.Logger

	// Callbacks may be assigned before the first event is routed.
	Callbacks Callbacks

	enabled       bool
	mode          Mode
	tool          Tool
	axis          Axis
	brushSize     int
	brushStrength float32

	hoverCell   *Cell
	hoverVertex *VertexKey
	hoverCorner *VertexKey
	hoverEdge   int
	hoverFace   int

	sel  *Selection
	hist *History
	drag dragState
}

// New creates an editor session driving the given modifier. A nil logger
// disables logging.
func New(m Modifier, set Settings, log *zap.Logger) *Editor {
	if log == nil {
		log = zap.NewNop()
	}

	e := &Editor{
		m:             m,
		set:           set,
		log:           log,
		tool:          ToolSelect,
		brushSize:     1,
		brushStrength: 1.0,
		hoverEdge:     -1,
		hoverFace:     -1,
		sel:           NewSelection(m),
		hist:          NewHistory(),
	}

	e.sel.SetOnChange(func(count int) {
		if e.Callbacks.OnSelectionChange != nil {
			e.Callbacks.OnSelectionChange(count)
		}
	})
	e.hist.SetOnChange(func(canUndo, canRedo bool) {
		if e.Callbacks.OnUndoRedoChange != nil {
			e.Callbacks.OnUndoRedoChange(canUndo, canRedo)
		}
	})

	return e
}

// Enabled reports whether the editor is active.
func (e *Editor) Enabled() bool { return e.enabled }

// Enable activates the editor.
func (e *Editor) Enable() {
	if e.enabled {
		return
	}
	e.enabled = true
	e.log.Debug("editor enabled")
	if e.Callbacks.OnEnable != nil {
		e.Callbacks.OnEnable()
	}
}

// Disable deactivates the editor. An in-progress drag gesture is abandoned
// without committing.
func (e *Editor) Disable() {
	if !e.enabled {
		return
	}
	e.enabled = false
	e.drag.reset()
	e.clearHover()
	e.log.Debug("editor disabled")
	if e.Callbacks.OnDisable != nil {
		e.Callbacks.OnDisable()
	}
}

// ActiveTool returns the current tool.
func (e *Editor) ActiveTool() Tool { return e.tool }

// ActiveMode returns the live mutator family, derived from the tool.
func (e *Editor) ActiveMode() Mode { return e.mode }

// SetTool switches the active tool and derives the sculpt/paint mode.
func (e *Editor) SetTool(tool Tool) {
	if tool == e.tool {
		return
	}
	e.tool = tool
	e.log.Debug("tool changed", zap.Stringer("tool", tool))
	if e.Callbacks.OnToolChange != nil {
		e.Callbacks.OnToolChange(tool)
	}

	if mode := tool.Mode(); mode != e.mode {
		e.mode = mode
		if e.Callbacks.OnModeChange != nil {
			e.Callbacks.OnModeChange(mode)
		}
	}
}

// TopologyMode returns the active selection granularity.
func (e *Editor) TopologyMode() TopologyMode { return e.sel.Mode() }

// SetTopologyMode switches the selection granularity. The other modes'
// highlight state is cleared so no stale selection survives the switch.
func (e *Editor) SetTopologyMode(mode TopologyMode) {
	if mode == e.sel.Mode() {
		return
	}
	e.sel.SetMode(mode)
	e.clearHover()
	e.log.Debug("topology mode changed", zap.Stringer("mode", mode))
	if e.Callbacks.OnTopologyModeChange != nil {
		e.Callbacks.OnTopologyModeChange(mode)
	}
}

// BrushSize returns the brush radius.
func (e *Editor) BrushSize() int { return e.brushSize }

// SetBrushSize sets the brush radius, clamped to [1,5].
func (e *Editor) SetBrushSize(size int) {
	if size < 1 {
		size = 1
	} else if size > 5 {
		size = 5
	}
	if size == e.brushSize {
		return
	}
	e.brushSize = size
	if e.Callbacks.OnBrushSizeChange != nil {
		e.Callbacks.OnBrushSizeChange(size)
	}
}

// BrushStrength returns the vertex sculpt strength.
func (e *Editor) BrushStrength() float32 { return e.brushStrength }

// SetBrushStrength sets the vertex sculpt strength, clamped to [0.1,5.0].
func (e *Editor) SetBrushStrength(strength float32) {
	if strength < 0.1 {
		strength = 0.1
	} else if strength > 5.0 {
		strength = 5.0
	}
	e.brushStrength = strength
}

// Axis returns the translation axis constraint.
func (e *Editor) Axis() Axis { return e.axis }

// SetAxis sets the translation axis constraint for move gestures.
func (e *Editor) SetAxis(axis Axis) { e.axis = axis }

// Selection exposes the selection manager.
func (e *Editor) Selection() *Selection { return e.sel }

// History exposes the action log.
func (e *Editor) History() *History { return e.hist }

// HoverCell returns the hovered layout cell, or nil.
func (e *Editor) HoverCell() *Cell { return e.hoverCell }

// HoverVertex returns the hovered mesh vertex, or nil.
func (e *Editor) HoverVertex() *VertexKey { return e.hoverVertex }

// HoverCorner returns the hovered cell corner, or nil.
func (e *Editor) HoverCorner() *VertexKey { return e.hoverCorner }

// HoverEdge returns the hovered edge id, or -1.
func (e *Editor) HoverEdge() int { return e.hoverEdge }

// HoverFace returns the hovered face id, or -1.
func (e *Editor) HoverFace() int { return e.hoverFace }

// Dragging reports whether a drag gesture is in progress.
func (e *Editor) Dragging() bool { return e.drag.active() }

// Undo reverts the most recent action. Returns false when the undo stack is
// empty.
func (e *Editor) Undo() bool {
	ok := e.hist.Undo(e.m)
	if ok {
		e.log.Debug("undo")
	}
	return ok
}

// Redo reapplies the most recently undone action. Returns false when the
// redo stack is empty.
func (e *Editor) Redo() bool {
	ok := e.hist.Redo(e.m)
	if ok {
		e.log.Debug("redo")
	}
	return ok
}

// HandleMouseMove updates the hover caches from the pointer position. The
// grid coordinates address the layout cell under the cursor; world is the
// picked surface position and may be nil when the pointer is off the
// course.
func (e *Editor) HandleMouseMove(gridX, gridY int, world *math.Vec3) {
	if !e.enabled {
		return
	}

	lw, lh := e.m.LayoutDimensions()
	if gridX >= 0 && gridY >= 0 && gridX < lw && gridY < lh {
		e.hoverCell = &Cell{gridX, gridY}
	} else {
		e.hoverCell = nil
	}

	e.hoverCorner = nil
	e.hoverVertex = nil
	e.hoverEdge = -1
	e.hoverFace = -1

	if world == nil {
		return
	}

	e.hoverCorner = e.cornerAt(*world)

	switch e.sel.Mode() {
	case TopoVertex:
		if v, ok := e.m.NearestVertex(*world); ok {
			e.hoverVertex = &v
		}
	case TopoEdge:
		if edge, ok := e.m.NearestEdge(*world); ok {
			e.hoverEdge = edge
		}
	case TopoFace:
		if face, ok := e.m.FaceAt(*world); ok {
			e.hoverFace = face
		}
	}
}

// HandleClick routes a click to selection or a single tool application.
func (e *Editor) HandleClick(shift bool) {
	if !e.enabled {
		return
	}

	switch {
	case e.tool == ToolSelect || e.tool == ToolMove:
		e.clickSelect(shift)
	case e.tool.IsPaint():
		e.clickPaint()
	case e.tool.IsSculpt():
		e.clickSculpt()
	}
}

func (e *Editor) clickSelect(shift bool) {
	switch e.sel.Mode() {
	case TopoVertex:
		if e.hoverVertex == nil {
			return
		}
		if shift {
			e.sel.ToggleVertex(*e.hoverVertex)
		} else {
			e.sel.SelectVertex(*e.hoverVertex, false)
		}
	case TopoEdge:
		if e.hoverEdge < 0 {
			return
		}
		if shift {
			e.sel.ToggleEdge(e.hoverEdge)
		} else {
			e.sel.SelectEdge(e.hoverEdge)
		}
	case TopoFace:
		if e.hoverFace < 0 {
			return
		}
		if shift {
			e.sel.ToggleFace(e.hoverFace)
		} else {
			e.sel.SelectFace(e.hoverFace, false)
		}
	}
}

func (e *Editor) clickPaint() {
	if e.hoverCell == nil {
		return
	}
	t, ok := e.tool.TerrainType()
	if !ok {
		return
	}
	mods := paintBrush(e.m, e.hoverCell.X, e.hoverCell.Y, e.brushSize, t)
	e.applyMods(mods)
	e.hist.Commit(KindPaint, mods)
}

func (e *Editor) clickSculpt() {
	if e.tool == ToolLevel {
		e.LevelSelection()
		return
	}

	// In vertex mode sculpt acts on the hovered mesh vertex by strength.
	if e.sel.Mode() == TopoVertex && e.hoverVertex != nil {
		switch e.tool {
		case ToolRaise:
			e.vertexSculptClick(*e.hoverVertex, e.brushStrength)
		case ToolLower:
			e.vertexSculptClick(*e.hoverVertex, -e.brushStrength)
		}
		return
	}

	var mods []Modification
	switch e.tool {
	case ToolRaise:
		for _, c := range e.sculptTargets() {
			if mod := applyRaise(e.m, c, 1); mod != nil {
				mods = append(mods, *mod)
			}
		}
	case ToolLower:
		for _, c := range e.sculptTargets() {
			if mod := applyLower(e.m, c, 1, e.set.ElevationFloor); mod != nil {
				mods = append(mods, *mod)
			}
		}
	case ToolFlatten:
		for _, c := range e.sculptTargets() {
			if mod := applyFlatten(e.m, c, nil, e.set.MaxSlopeDelta); mod != nil {
				mods = append(mods, *mod)
			}
		}
	case ToolSmooth:
		if e.hoverCell == nil {
			return
		}
		mods = applySmooth(e.m, e.hoverCell.X, e.hoverCell.Y, e.brushSize, e.set.MaxSlopeDelta)
	}

	e.applyMods(mods)
	e.hist.Commit(KindElevation, mods)
}

func (e *Editor) vertexSculptClick(v VertexKey, amount float32) {
	pos, ok := e.m.VertexPosition(v)
	if !ok {
		return
	}
	next := pos
	next.Y += amount
	e.m.SetVertexElevation(v, next.Y)
	e.m.RebuildMesh()
	e.hist.Commit(KindPosition, []Modification{{
		Kind:   KindPosition,
		Vertex: v,
		OldPos: pos,
		NewPos: next,
	}})
}

// LevelSelection levels the selected vertices to their mean elevation and
// commits the result as one action.
func (e *Editor) LevelSelection() {
	if !e.enabled || e.sel.Mode() != TopoVertex || e.sel.Count() == 0 {
		return
	}
	mods := applyLevel(e.m, e.sel.Vertices())
	e.applyMods(mods)
	e.hist.Commit(KindPosition, mods)
}

// sculptTargets returns the cells a sculpt application affects: the set of
// cells sharing the hovered corner when one is hovered, otherwise the brush
// footprint at the hovered cell.
func (e *Editor) sculptTargets() []Cell {
	if e.hoverCorner != nil {
		return e.cornerCells(*e.hoverCorner)
	}
	if e.hoverCell != nil {
		return CellsInBrush(e.hoverCell.X, e.hoverCell.Y, e.brushSize)
	}
	return nil
}

// cornerCells returns the in-bounds cells that share corner point (x,y).
func (e *Editor) cornerCells(corner VertexKey) []Cell {
	lw, lh := e.m.LayoutDimensions()
	var cells []Cell
	for _, c := range [4]Cell{
		{corner.X - 1, corner.Y - 1},
		{corner.X, corner.Y - 1},
		{corner.X - 1, corner.Y},
		{corner.X, corner.Y},
	} {
		if c.X >= 0 && c.Y >= 0 && c.X < lw && c.Y < lh {
			cells = append(cells, c)
		}
	}
	return cells
}

// cornerAt maps a world position to the nearest cell corner when the cursor
// is within the snap radius, else nil.
func (e *Editor) cornerAt(world math.Vec3) *VertexKey {
	ww, _ := e.m.WorldDimensions()
	lw, lh := e.m.LayoutDimensions()
	if lw == 0 || ww == 0 {
		return nil
	}
	cell := ww / float32(lw)

	fx := world.X / cell
	fy := world.Z / cell
	nx := int(gomath.Round(float64(fx)))
	ny := int(gomath.Round(float64(fy)))

	dx := fx - float32(nx)
	dy := fy - float32(ny)
	if dx > cornerSnap || dx < -cornerSnap || dy > cornerSnap || dy < -cornerSnap {
		return nil
	}
	if nx < 0 || ny < 0 || nx > lw || ny > lh {
		return nil
	}
	return &VertexKey{nx, ny}
}

// applyMods pushes the new side of each modification to the modifier and
// requests visual resync. Used for discrete (non-gesture) edits.
func (e *Editor) applyMods(mods []Modification) {
	if len(mods) == 0 {
		return
	}

	var tiles []Cell
	meshDirty := false
	for _, mod := range mods {
		switch mod.Kind {
		case KindElevation:
			e.m.SetElevationAt(mod.Cell, mod.NewZ)
			tiles = append(tiles, mod.Cell)
		case KindPaint:
			e.m.SetTerrainTypeAt(mod.Cell, mod.NewType)
			tiles = append(tiles, mod.Cell)
		case KindPosition:
			e.m.SetVertexPosition(mod.Vertex, mod.NewPos)
			meshDirty = true
		}
	}

	for _, c := range tiles {
		e.m.RebuildTile(c.X, c.Y)
	}
	if meshDirty {
		e.m.RebuildMesh()
	}
	if len(tiles) > 0 && e.Callbacks.OnModification != nil {
		e.Callbacks.OnModification(tiles)
	}
}

func (e *Editor) clearHover() {
	e.hoverCell = nil
	e.hoverVertex = nil
	e.hoverCorner = nil
	e.hoverEdge = -1
	e.hoverFace = -1
}
