package editor

// applyPaint proposes reclassifying cell c to t. Returns nil when the cell
// is out of bounds or already classified as t, making repeat application
// idempotent.
func applyPaint(m Modifier, c Cell, t TerrainType) *Modification {
	old, ok := m.TerrainTypeAt(c)
	if !ok || old == t {
		return nil
	}
	return &Modification{
		Kind:    KindPaint,
		Cell:    c,
		OldType: old,
		NewType: t,
	}
}

// paintBrush applies the terrain type to every cell of the brush footprint
// independently, accumulating only the cells that actually change.
func paintBrush(m Modifier, cx, cy, radius int, t TerrainType) []Modification {
	var mods []Modification
	for _, c := range CellsInBrush(cx, cy, radius) {
		if mod := applyPaint(m, c, t); mod != nil {
			mods = append(mods, *mod)
		}
	}
	return mods
}
