package editor

import "testing"

func TestApplyRaise(t *testing.T) {
	m := newMockModifier(5, 5)
	m.SetElevationAt(Cell{2, 2}, 3)

	mod := applyRaise(m, Cell{2, 2}, 1)
	if mod == nil {
		t.Fatal("expected a modification")
	}
	if mod.Kind != KindElevation {
		t.Errorf("expected elevation kind, got %v", mod.Kind)
	}
	if mod.OldZ != 3 || mod.NewZ != 4 {
		t.Errorf("expected 3 -> 4, got %v -> %v", mod.OldZ, mod.NewZ)
	}
}

func TestApplyRaise_OutOfBounds(t *testing.T) {
	m := newMockModifier(5, 5)
	if mod := applyRaise(m, Cell{-1, 2}, 1); mod != nil {
		t.Errorf("expected nil out of bounds, got %v", mod)
	}
}

func TestApplyLower_Floor(t *testing.T) {
	m := newMockModifier(5, 5)
	m.SetElevationAt(Cell{1, 1}, -9)

	mod := applyLower(m, Cell{1, 1}, 1, -10)
	if mod == nil {
		t.Fatal("expected step down to the floor to be allowed")
	}
	if mod.NewZ != -10 {
		t.Errorf("expected -10, got %v", mod.NewZ)
	}

	// At the floor the next step would cross it and must be rejected
	// outright, not clamped.
	m.SetElevationAt(Cell{1, 1}, -10)
	if mod := applyLower(m, Cell{1, 1}, 1, -10); mod != nil {
		t.Errorf("expected nil at the floor, got %v", mod)
	}

	m.SetElevationAt(Cell{1, 1}, -9.5)
	if mod := applyLower(m, Cell{1, 1}, 1, -10); mod != nil {
		t.Errorf("expected partial step to be rejected, got %v", mod)
	}
}

func TestApplyFlatten_NeighborAverage(t *testing.T) {
	m := newMockModifier(5, 5)
	m.SetElevationAt(Cell{1, 2}, 2)
	m.SetElevationAt(Cell{3, 2}, 3)
	m.SetElevationAt(Cell{2, 1}, 2)
	m.SetElevationAt(Cell{2, 3}, 2)

	// Neighbor average 9/4 = 2.25, rounded to 2.
	mod := applyFlatten(m, Cell{2, 2}, nil, 4)
	if mod == nil {
		t.Fatal("expected a modification")
	}
	if mod.NewZ != 2 {
		t.Errorf("expected rounded target 2, got %v", mod.NewZ)
	}
}

func TestApplyFlatten_AlreadyAtTarget(t *testing.T) {
	m := newMockModifier(5, 5)
	if mod := applyFlatten(m, Cell{2, 2}, nil, 4); mod != nil {
		t.Errorf("expected nil when already at target, got %v", mod)
	}
}

func TestApplyFlatten_SlopeGuard(t *testing.T) {
	m := newMockModifier(5, 5)
	m.SetElevationAt(Cell{1, 2}, 20)
	m.SetElevationAt(Cell{2, 2}, 1)

	// Target is round(20/4) = 5; the cliff neighbor at 20 differs from the
	// target by more than the slope limit, so the edit is refused.
	if mod := applyFlatten(m, Cell{2, 2}, nil, 4); mod != nil {
		t.Errorf("expected slope guard to refuse, got %v", mod)
	}
}

func TestApplyFlatten_ExplicitTarget(t *testing.T) {
	m := newMockModifier(5, 5)
	m.SetElevationAt(Cell{2, 2}, 3)

	target := float32(1)
	mod := applyFlatten(m, Cell{2, 2}, &target, 4)
	if mod == nil {
		t.Fatal("expected a modification")
	}
	if mod.OldZ != 3 || mod.NewZ != 1 {
		t.Errorf("expected 3 -> 1, got %v -> %v", mod.OldZ, mod.NewZ)
	}
}

func TestApplySmooth_BrushMean(t *testing.T) {
	m := newMockModifier(10, 10)
	m.SetElevationAt(Cell{5, 5}, 4)

	// Brush size 3 covers 13 cells; mean 4/13 rounds to 0, so only the
	// spike moves and the footprint ends uniform at the rounded mean.
	mods := applySmooth(m, 5, 5, 3, 4)
	if len(mods) != 1 {
		t.Fatalf("expected 1 modification, got %d", len(mods))
	}
	if mods[0].Cell != (Cell{5, 5}) || mods[0].NewZ != 0 {
		t.Errorf("expected spike flattened to 0, got %+v", mods[0])
	}
}

func TestApplyLevel(t *testing.T) {
	m := newMockModifier(5, 5)
	m.SetVertexElevation(VertexKey{1, 1}, 0)
	m.SetVertexElevation(VertexKey{2, 2}, 2)

	mods := applyLevel(m, []VertexKey{{1, 1}, {2, 2}})
	if len(mods) != 2 {
		t.Fatalf("expected 2 modifications, got %d", len(mods))
	}
	for _, mod := range mods {
		if mod.Kind != KindPosition {
			t.Errorf("expected position kind, got %v", mod.Kind)
		}
		if mod.NewPos.Y != 1 {
			t.Errorf("vertex %v: expected mean elevation 1, got %v", mod.Vertex, mod.NewPos.Y)
		}
	}
}

func TestApplyLevel_EmptySelection(t *testing.T) {
	m := newMockModifier(5, 5)
	if mods := applyLevel(m, nil); mods != nil {
		t.Errorf("expected nil for empty selection, got %v", mods)
	}
}
