package editor

import (
	"go.uber.org/zap"

	"github.com/fairwaylabs/greenside/pkg/math"
)

// gestureKind identifies the family of an in-progress drag gesture.
type gestureKind int

const (
	gestureNone gestureKind = iota
	gestureSculpt
	gestureVertexSculpt
	gesturePaint
	gestureTranslate
)

// modKey addresses a modification target for per-gesture merging.
type modKey struct {
	kind   ModKind
	cell   Cell
	vertex VertexKey
}

// dragState is the accumulator of one drag gesture. The gesture runs
// Idle -> DragStart -> Dragging -> DragEnd; a zero dragState is Idle.
type dragState struct {
	kind gestureKind

	// Sculpt: footprint locked at DragStart. The gesture keeps pulling the
	// same cells even when the pointer wanders over neighbors.
	cells  []Cell
	vertex VertexKey

	// Screen-Y thresholding. lastScreenY only advances when a full step
	// fires, so sub-threshold motion is buffered across events.
	startScreenY float32
	lastScreenY  float32

	// Paint de-dup against the immediately preceding cell.
	lastPaint  Cell
	hasPainted bool

	// Translate anchors: every selected vertex moves by the same delta
	// from its own start position, never incrementally.
	startWorld math.Vec3
	startPos   map[VertexKey]math.Vec3

	mods  []Modification
	index map[modKey]int
}

func (d *dragState) active() bool { return d.kind != gestureNone }

func (d *dragState) reset() { *d = dragState{} }

// record merges a modification into the gesture: the first application of a
// target fixes its old value, later applications only advance the new one.
func (d *dragState) record(mod Modification) {
	key := modKey{kind: mod.Kind, cell: mod.Cell, vertex: mod.Vertex}
	if d.index == nil {
		d.index = make(map[modKey]int)
	}
	if i, ok := d.index[key]; ok {
		switch mod.Kind {
		case KindElevation:
			d.mods[i].NewZ = mod.NewZ
		case KindPaint:
			d.mods[i].NewType = mod.NewType
		case KindPosition:
			d.mods[i].NewPos = mod.NewPos
		}
		return
	}
	d.index[key] = len(d.mods)
	d.mods = append(d.mods, mod)
}

// finalize returns the gesture's modifications with round-trip no-ops
// dropped (e.g. a vertex dragged back to where it started).
func (d *dragState) finalize() []Modification {
	out := d.mods[:0]
	for _, mod := range d.mods {
		switch mod.Kind {
		case KindElevation:
			if mod.OldZ == mod.NewZ {
				continue
			}
		case KindPaint:
			if mod.OldType == mod.NewType {
				continue
			}
		case KindPosition:
			if mod.OldPos == mod.NewPos {
				continue
			}
		}
		out = append(out, mod)
	}
	return out
}

// actionKind maps the gesture family to its homogeneous action kind.
func (d *dragState) actionKind() ModKind {
	switch d.kind {
	case gesturePaint:
		return KindPaint
	case gestureVertexSculpt, gestureTranslate:
		return KindPosition
	default:
		return KindElevation
	}
}

// HandleDragStart begins a drag gesture at the current pointer position.
// Sculpt gestures lock their target for the whole gesture; paint delegates
// straight to dragging so the first cell is painted immediately.
func (e *Editor) HandleDragStart(gridX, gridY int, world *math.Vec3, screenY float32) {
	if !e.enabled || e.drag.active() {
		return
	}

	e.HandleMouseMove(gridX, gridY, world)

	switch {
	case e.tool.IsPaint():
		e.drag.kind = gesturePaint
		e.paintAt(Cell{gridX, gridY})

	case e.tool == ToolMove:
		if e.sel.Mode() != TopoVertex || e.sel.Count() == 0 || world == nil {
			return
		}
		e.drag.kind = gestureTranslate
		e.drag.startWorld = *world
		e.drag.startScreenY = screenY
		e.drag.lastScreenY = screenY
		e.drag.startPos = make(map[VertexKey]math.Vec3, e.sel.Count())
		for _, v := range e.sel.Vertices() {
			if pos, ok := e.m.VertexPosition(v); ok {
				e.drag.startPos[v] = pos
			}
		}

	case e.tool == ToolRaise || e.tool == ToolLower:
		if e.sel.Mode() == TopoVertex {
			if e.hoverVertex == nil {
				return
			}
			e.drag.kind = gestureVertexSculpt
			e.drag.vertex = *e.hoverVertex
		} else {
			targets := e.sculptTargets()
			if len(targets) == 0 {
				return
			}
			e.drag.kind = gestureSculpt
			e.drag.cells = targets
		}
		e.drag.startScreenY = screenY
		e.drag.lastScreenY = screenY
	}
}

// HandleDrag advances an in-progress gesture.
func (e *Editor) HandleDrag(gridX, gridY int, world *math.Vec3, screenY float32) {
	if !e.enabled {
		return
	}

	switch e.drag.kind {
	case gesturePaint:
		c := Cell{gridX, gridY}
		if e.drag.hasPainted && c == e.drag.lastPaint {
			return
		}
		e.paintAt(c)

	case gestureSculpt:
		e.dragSculptSteps(screenY, func(dir float32) {
			for _, c := range e.drag.cells {
				var mod *Modification
				if dir > 0 {
					mod = applyRaise(e.m, c, 1)
				} else {
					mod = applyLower(e.m, c, 1, e.set.ElevationFloor)
				}
				if mod == nil {
					continue
				}
				e.m.SetElevationAt(mod.Cell, mod.NewZ)
				e.m.RebuildTile(mod.Cell.X, mod.Cell.Y)
				e.drag.record(*mod)
			}
			if e.Callbacks.OnModification != nil {
				e.Callbacks.OnModification(e.drag.cells)
			}
		})

	case gestureVertexSculpt:
		e.dragSculptSteps(screenY, func(dir float32) {
			pos, ok := e.m.VertexPosition(e.drag.vertex)
			if !ok {
				return
			}
			next := pos
			next.Y += dir * e.brushStrength
			e.m.SetVertexElevation(e.drag.vertex, next.Y)
			e.m.RebuildMesh()
			e.drag.record(Modification{
				Kind:   KindPosition,
				Vertex: e.drag.vertex,
				OldPos: pos,
				NewPos: next,
			})
		})

	case gestureTranslate:
		e.dragTranslate(world, screenY)
	}
}

// HandleDragEnd flushes the gesture into exactly one action and resets the
// drag state. A gesture that accumulated nothing commits nothing, which is
// how an abandoned drag stays off the undo stack.
func (e *Editor) HandleDragEnd() {
	if !e.drag.active() {
		return
	}

	mods := e.drag.finalize()
	kind := e.drag.actionKind()
	e.drag.reset()

	if len(mods) == 0 {
		return
	}
	e.hist.Commit(kind, mods)
	e.log.Debug("gesture committed",
		zap.Stringer("kind", kind),
		zap.Int("modifications", len(mods)),
	)
}

// dragSculptSteps converts screen-Y motion into discrete sculpt steps.
// Every full threshold crossed fires once; the remainder stays buffered so
// slow drags accumulate across events. Dragging up (decreasing screen Y)
// raises, dragging down lowers.
func (e *Editor) dragSculptSteps(screenY float32, fire func(dir float32)) {
	delta := screenY - e.drag.lastScreenY
	steps := int(delta / e.set.DragStepPixels)
	if steps == 0 {
		return
	}
	e.drag.lastScreenY += float32(steps) * e.set.DragStepPixels

	dir := float32(1)
	n := steps
	if n > 0 {
		dir = -1 // screen Y grows downward
	} else {
		n = -n
	}
	for i := 0; i < n; i++ {
		fire(dir)
	}
}

// dragTranslate moves every selected vertex by the same constrained delta
// from its drag-start position.
func (e *Editor) dragTranslate(world *math.Vec3, screenY float32) {
	var delta math.Vec3

	if e.axis == AxisY {
		delta.Y = (e.drag.startScreenY - screenY) * e.set.TranslateYScale
	} else {
		if world == nil {
			return
		}
		dx := world.X - e.drag.startWorld.X
		dz := world.Z - e.drag.startWorld.Z
		switch e.axis {
		case AxisX:
			delta.X = dx
		case AxisZ:
			delta.Z = dz
		case AxisXZ:
			delta.X = dx
			delta.Z = dz
		case AxisAll:
			delta.X = dx
			delta.Z = dz
			delta.Y = (e.drag.startScreenY - screenY) * e.set.TranslateYScale
		}
	}

	for v, start := range e.drag.startPos {
		next := start.Add(delta)
		e.m.SetVertexPosition(v, next)
		e.drag.record(Modification{
			Kind:   KindPosition,
			Vertex: v,
			OldPos: start,
			NewPos: next,
		})
	}
	e.m.RebuildMesh()
}

// paintAt applies the paint brush at a cell during a paint gesture.
func (e *Editor) paintAt(c Cell) {
	t, ok := e.tool.TerrainType()
	if !ok {
		return
	}
	mods := paintBrush(e.m, c.X, c.Y, e.brushSize, t)
	for _, mod := range mods {
		e.m.SetTerrainTypeAt(mod.Cell, mod.NewType)
		e.m.RebuildTile(mod.Cell.X, mod.Cell.Y)
		e.drag.record(mod)
	}
	e.drag.lastPaint = c
	e.drag.hasPainted = true
	if len(mods) > 0 && e.Callbacks.OnModification != nil {
		tiles := make([]Cell, len(mods))
		for i, mod := range mods {
			tiles[i] = mod.Cell
		}
		e.Callbacks.OnModification(tiles)
	}
}
