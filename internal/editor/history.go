package editor

import (
	"time"

	"github.com/fairwaylabs/greenside/pkg/math"
)

// ModKind tags a Modification variant.
type ModKind int

const (
	KindElevation ModKind = iota
	KindPaint
	KindPosition
	KindTopology
)

func (k ModKind) String() string {
	switch k {
	case KindElevation:
		return "elevation"
	case KindPaint:
		return "paint"
	case KindPosition:
		return "position"
	case KindTopology:
		return "topology"
	}
	return "unknown"
}

// Modification records one reversible change. Only the fields belonging to
// Kind are meaningful; undo/redo dispatches on Kind in a single switch.
type Modification struct {
	Kind ModKind

	// KindElevation and KindPaint
	Cell Cell

	// KindElevation
	OldZ, NewZ float32

	// KindPaint
	OldType, NewType TerrainType

	// KindPosition
	Vertex         VertexKey
	OldPos, NewPos math.Vec3

	// KindTopology
	Op     TopologyOp
	Before TopologySnapshot
	After  TopologySnapshot
}

// Action is one undo/redo unit: a homogeneous batch of same-kind
// modifications from one discrete edit or drag gesture. Actions are
// immutable once committed.
type Action struct {
	Kind ModKind
	Mods []Modification
	Time time.Time
}

// History is the two-stack action log.
type History struct {
	undo     []Action
	redo     []Action
	onChange func(canUndo, canRedo bool)
}

// NewHistory creates an empty action log.
func NewHistory() *History {
	return &History{}
}

// SetOnChange registers a listener notified whenever undo/redo availability
// may have changed.
func (h *History) SetOnChange(fn func(canUndo, canRedo bool)) {
	h.onChange = fn
}

// CanUndo reports whether an action is available to undo.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether an undone action is available to redo.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depths returns the undo and redo stack sizes.
func (h *History) Depths() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

// Commit wraps the modifications in an Action and pushes it onto the undo
// stack. An empty batch is a no-op. Committing always clears the redo stack:
// no redo survives a new edit branching from an undone state.
func (h *History) Commit(kind ModKind, mods []Modification) {
	if len(mods) == 0 {
		return
	}

	h.undo = append(h.undo, Action{
		Kind: kind,
		Mods: mods,
		Time: time.Now(),
	})
	h.redo = h.redo[:0]
	h.notify()
}

// Undo reverts the most recent action through the modifier and moves it to
// the redo stack. Returns false when there is nothing to undo.
func (h *History) Undo(m Modifier) bool {
	if len(h.undo) == 0 {
		return false
	}

	act := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	replay(m, act, true)
	h.redo = append(h.redo, act)
	h.notify()
	return true
}

// Redo reapplies the most recently undone action and moves it back to the
// undo stack. Returns false when there is nothing to redo.
func (h *History) Redo(m Modifier) bool {
	if len(h.redo) == 0 {
		return false
	}

	act := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	replay(m, act, false)
	h.undo = append(h.undo, act)
	h.notify()
	return true
}

// Clear wipes both stacks, e.g. when a new course is loaded.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
	h.notify()
}

func (h *History) notify() {
	if h.onChange != nil {
		h.onChange(len(h.undo) > 0, len(h.redo) > 0)
	}
}

// replay applies one side of an action. reverse selects the old values
// (undo); otherwise the new values are applied (redo). Modifications are
// walked back to front when reversing so chained edits unwind in order.
func replay(m Modifier, act Action, reverse bool) {
	apply := func(mod Modification) {
		switch mod.Kind {
		case KindElevation:
			if reverse {
				m.SetElevationAt(mod.Cell, mod.OldZ)
			} else {
				m.SetElevationAt(mod.Cell, mod.NewZ)
			}
			m.RebuildTile(mod.Cell.X, mod.Cell.Y)
		case KindPaint:
			if reverse {
				m.SetTerrainTypeAt(mod.Cell, mod.OldType)
			} else {
				m.SetTerrainTypeAt(mod.Cell, mod.NewType)
			}
			m.RebuildTile(mod.Cell.X, mod.Cell.Y)
		case KindPosition:
			if reverse {
				m.SetVertexPosition(mod.Vertex, mod.OldPos)
			} else {
				m.SetVertexPosition(mod.Vertex, mod.NewPos)
			}
		case KindTopology:
			if reverse {
				m.RestoreTopology(mod.Before)
			} else {
				m.RestoreTopology(mod.After)
			}
		}
	}

	if reverse {
		for i := len(act.Mods) - 1; i >= 0; i-- {
			apply(act.Mods[i])
		}
	} else {
		for _, mod := range act.Mods {
			apply(mod)
		}
	}

	if act.Kind == KindPosition || act.Kind == KindTopology {
		m.RebuildMesh()
	}
}
