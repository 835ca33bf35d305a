package editor

import (
	gomath "math"
)

// Sculpt mutators compute a proposed elevation change for a single cell and
// return nil when the tool has no effect there. They never write the grid;
// the pipeline applies accepted modifications through the Modifier.

// applyRaise raises cell c by step. Raising is unconstrained: no ceiling and
// no slope check, so cliff-style sculpting is possible.
func applyRaise(m Modifier, c Cell, step float32) *Modification {
	old, ok := m.ElevationAt(c)
	if !ok {
		return nil
	}
	return &Modification{
		Kind: KindElevation,
		Cell: c,
		OldZ: old,
		NewZ: old + step,
	}
}

// applyLower lowers cell c by step, bounded by floor. A step that would
// cross the floor is rejected outright rather than clamped to a partial
// step.
func applyLower(m Modifier, c Cell, step, floor float32) *Modification {
	old, ok := m.ElevationAt(c)
	if !ok {
		return nil
	}
	next := old - step
	if next < floor {
		return nil
	}
	return &Modification{
		Kind: KindElevation,
		Cell: c,
		OldZ: old,
		NewZ: next,
	}
}

// applyFlatten flattens cell c toward a target elevation: the explicit value
// when given, otherwise the rounded average of the in-bounds 4-neighbors.
// Returns nil when the cell is already at the target or when any in-bounds
// neighbor would end up more than maxSlope away from it. The slope guard
// lives here on purpose: raise and lower never check slope, only flatten
// and the tools built on it do.
func applyFlatten(m Modifier, c Cell, explicit *float32, maxSlope float32) *Modification {
	old, ok := m.ElevationAt(c)
	if !ok {
		return nil
	}

	neighbors := [4]Cell{
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
	}

	var target float32
	if explicit != nil {
		target = *explicit
	} else {
		var sum float32
		var count int
		for _, n := range neighbors {
			if z, ok := m.ElevationAt(n); ok {
				sum += z
				count++
			}
		}
		if count == 0 {
			return nil
		}
		target = float32(gomath.Round(float64(sum / float32(count))))
	}

	if target == old {
		return nil
	}

	for _, n := range neighbors {
		if z, ok := m.ElevationAt(n); ok {
			if diff := z - target; diff > maxSlope || diff < -maxSlope {
				return nil
			}
		}
	}

	return &Modification{
		Kind: KindElevation,
		Cell: c,
		OldZ: old,
		NewZ: target,
	}
}

// applySmooth computes the mean elevation over the brush footprint and
// flattens every covered cell to that mean, keeping only cells that change.
// Each per-cell flatten is still slope-guarded against the pre-edit
// neighborhood.
func applySmooth(m Modifier, cx, cy, radius int, maxSlope float32) []Modification {
	cells := CellsInBrush(cx, cy, radius)

	var sum float32
	var count int
	for _, c := range cells {
		if z, ok := m.ElevationAt(c); ok {
			sum += z
			count++
		}
	}
	if count == 0 {
		return nil
	}
	target := float32(gomath.Round(float64(sum / float32(count))))

	var mods []Modification
	for _, c := range cells {
		if mod := applyFlatten(m, c, &target, maxSlope); mod != nil {
			mods = append(mods, *mod)
		}
	}
	return mods
}

// applyLevel averages the elevations of an arbitrary selected vertex set and
// moves every selected vertex to that mean. The selection is not a
// geometric neighborhood, so no slope guard applies.
func applyLevel(m Modifier, selection []VertexKey) []Modification {
	var sum float32
	var count int
	for _, v := range selection {
		if y, ok := m.VertexElevation(v); ok {
			sum += y
			count++
		}
	}
	if count == 0 {
		return nil
	}
	mean := sum / float32(count)

	var mods []Modification
	for _, v := range selection {
		pos, ok := m.VertexPosition(v)
		if !ok || pos.Y == mean {
			continue
		}
		next := pos
		next.Y = mean
		mods = append(mods, Modification{
			Kind:   KindPosition,
			Vertex: v,
			OldPos: pos,
			NewPos: next,
		})
	}
	return mods
}
