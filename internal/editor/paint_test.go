package editor

import "testing"

func TestApplyPaint(t *testing.T) {
	m := newMockModifier(5, 5)

	mod := applyPaint(m, Cell{2, 2}, TerrainBunker)
	if mod == nil {
		t.Fatal("expected a modification")
	}
	if mod.OldType != TerrainRough || mod.NewType != TerrainBunker {
		t.Errorf("expected rough -> bunker, got %v -> %v", mod.OldType, mod.NewType)
	}
}

func TestApplyPaint_Idempotent(t *testing.T) {
	m := newMockModifier(5, 5)
	m.SetTerrainTypeAt(Cell{2, 2}, TerrainBunker)

	if mod := applyPaint(m, Cell{2, 2}, TerrainBunker); mod != nil {
		t.Errorf("expected nil repainting same type, got %v", mod)
	}
}

func TestApplyPaint_OutOfBounds(t *testing.T) {
	m := newMockModifier(5, 5)
	if mod := applyPaint(m, Cell{9, 9}, TerrainGreen); mod != nil {
		t.Errorf("expected nil out of bounds, got %v", mod)
	}
}

func TestPaintBrush_OnlyChangedCells(t *testing.T) {
	m := newMockModifier(10, 10)
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			m.SetTerrainTypeAt(Cell{x, y}, TerrainBunker)
		}
	}

	// Painting bunker over a uniform bunker region changes nothing.
	if mods := paintBrush(m, 5, 5, 3, TerrainBunker); len(mods) != 0 {
		t.Errorf("expected no modifications, got %d", len(mods))
	}

	mods := paintBrush(m, 5, 5, 3, TerrainGreen)
	if len(mods) != len(CellsInBrush(5, 5, 3)) {
		t.Errorf("expected every footprint cell changed, got %d", len(mods))
	}
}
