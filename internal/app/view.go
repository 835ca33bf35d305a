package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/fairwaylabs/greenside/internal/editor"
	"github.com/fairwaylabs/greenside/internal/terrain"
	"github.com/fairwaylabs/greenside/pkg/math"
)

// terrainColors is the top-down palette, one base color per classification.
var terrainColors = map[editor.TerrainType][3]uint8{
	editor.TerrainFairway:    {106, 168, 79},
	editor.TerrainGreen:      {60, 186, 84},
	editor.TerrainRough:      {56, 118, 29},
	editor.TerrainHeavyRough: {39, 78, 19},
	editor.TerrainBunker:     {230, 210, 150},
	editor.TerrainWater:      {61, 133, 198},
	editor.TerrainTee:        {147, 196, 125},
	editor.TerrainPath:       {180, 167, 140},
}

// view renders the course top-down and maps screen positions back onto the
// course plane for picking.
type view struct {
	course *terrain.Course
	ed     *editor.Editor

	winW, winH int
	tilePx     float32 // pixels per layout cell
	offX, offY float32 // top-left of the course in window pixels
	cellSize   float32 // world units per layout cell
}

func newView(course *terrain.Course, ed *editor.Editor) *view {
	lw, _ := course.LayoutDimensions()
	ww, _ := course.WorldDimensions()
	return &view{
		course:   course,
		ed:       ed,
		cellSize: ww / float32(lw),
	}
}

// resize refits the course into the window, centered and aspect-preserving.
func (v *view) resize(w, h int) {
	v.winW, v.winH = w, h
	lw, lh := v.course.LayoutDimensions()

	px := float32(w) / float32(lw)
	if py := float32(h) / float32(lh); py < px {
		px = py
	}
	v.tilePx = px
	v.offX = (float32(w) - px*float32(lw)) / 2
	v.offY = (float32(h) - px*float32(lh)) / 2
}

// pick maps a window position to the layout cell under it and the exact
// world position on the course plane. world is nil outside the course.
func (v *view) pick(x, y int) (gridX, gridY int, world *math.Vec3) {
	fx := (float32(x) - v.offX) / v.tilePx
	fy := (float32(y) - v.offY) / v.tilePx

	gridX = int(fx)
	gridY = int(fy)
	if fx < 0 {
		gridX = -1
	}
	if fy < 0 {
		gridY = -1
	}

	lw, lh := v.course.LayoutDimensions()
	if fx < 0 || fy < 0 || fx > float32(lw) || fy > float32(lh) {
		return gridX, gridY, nil
	}
	return gridX, gridY, &math.Vec3{
		X: fx * v.cellSize,
		Z: fy * v.cellSize,
	}
}

// toScreen maps a world position to window pixels.
func (v *view) toScreen(p math.Vec3) (float32, float32) {
	return v.offX + p.X/v.cellSize*v.tilePx, v.offY + p.Z/v.cellSize*v.tilePx
}

func (v *view) render(r *sdl.Renderer) error {
	if err := r.SetDrawColor(24, 24, 28, 255); err != nil {
		return err
	}
	if err := r.Clear(); err != nil {
		return err
	}

	v.drawCells(r)
	v.drawHover(r)
	v.drawSelection(r)
	return nil
}

func (v *view) drawCells(r *sdl.Renderer) {
	lw, lh := v.course.LayoutDimensions()
	for y := 0; y < lh; y++ {
		for x := 0; x < lw; x++ {
			tt, _ := v.course.Grid().TerrainType(x, y)
			z, _ := v.course.Grid().Elevation(x, y)

			base := terrainColors[tt]
			shade := 1 + z*0.04
			if shade < 0.4 {
				shade = 0.4
			} else if shade > 1.6 {
				shade = 1.6
			}
			r.SetDrawColor(scale8(base[0], shade), scale8(base[1], shade), scale8(base[2], shade), 255)
			r.FillRectF(&sdl.FRect{
				X: v.offX + float32(x)*v.tilePx,
				Y: v.offY + float32(y)*v.tilePx,
				W: v.tilePx,
				H: v.tilePx,
			})
		}
	}
}

func (v *view) drawHover(r *sdl.Renderer) {
	if c := v.ed.HoverCell(); c != nil {
		r.SetDrawColor(255, 255, 255, 255)
		size := v.ed.BrushSize()
		for _, bc := range editor.CellsInBrush(c.X, c.Y, size) {
			r.DrawRectF(&sdl.FRect{
				X: v.offX + float32(bc.X)*v.tilePx,
				Y: v.offY + float32(bc.Y)*v.tilePx,
				W: v.tilePx,
				H: v.tilePx,
			})
		}
	}

	if hv := v.ed.HoverVertex(); hv != nil {
		if p, ok := v.course.VertexPosition(*hv); ok {
			v.drawMarker(r, p, 255, 255, 0)
		}
	}
	if hc := v.ed.HoverCorner(); hc != nil {
		p := math.Vec3{X: float32(hc.X) * v.cellSize, Z: float32(hc.Y) * v.cellSize}
		v.drawMarker(r, p, 255, 128, 0)
	}
	if edge := v.ed.HoverEdge(); edge >= 0 {
		v.drawEdge(r, edge, 255, 255, 0)
	}
	if face := v.ed.HoverFace(); face >= 0 {
		v.drawFace(r, face, 255, 255, 0)
	}
}

func (v *view) drawSelection(r *sdl.Renderer) {
	sel := v.ed.Selection()
	switch sel.Mode() {
	case editor.TopoVertex:
		for _, vk := range sel.Vertices() {
			if p, ok := v.course.VertexPosition(vk); ok {
				v.drawMarker(r, p, 255, 64, 64)
			}
		}
	case editor.TopoEdge:
		if edge := sel.Edge(); edge >= 0 {
			v.drawEdge(r, edge, 255, 64, 64)
		}
	case editor.TopoFace:
		for _, face := range sel.Faces() {
			v.drawFace(r, face, 255, 64, 64)
		}
	}
}

func (v *view) drawMarker(r *sdl.Renderer, p math.Vec3, cr, cg, cb uint8) {
	x, y := v.toScreen(p)
	r.SetDrawColor(cr, cg, cb, 255)
	r.FillRectF(&sdl.FRect{X: x - 3, Y: y - 3, W: 6, H: 6})
}

func (v *view) drawEdge(r *sdl.Renderer, edge int, cr, cg, cb uint8) {
	ends, ok := v.course.Mesh().EdgeEndpoints(edge)
	if !ok {
		return
	}
	a, aok := v.course.VertexPosition(ends[0])
	b, bok := v.course.VertexPosition(ends[1])
	if !aok || !bok {
		return
	}
	ax, ay := v.toScreen(a)
	bx, by := v.toScreen(b)
	r.SetDrawColor(cr, cg, cb, 255)
	r.DrawLineF(ax, ay, bx, by)
}

func (v *view) drawFace(r *sdl.Renderer, face int, cr, cg, cb uint8) {
	verts, ok := v.course.Mesh().FaceVertices(face)
	if !ok {
		return
	}
	var pts [3][2]float32
	for i, vk := range verts {
		p, ok := v.course.VertexPosition(vk)
		if !ok {
			return
		}
		pts[i][0], pts[i][1] = v.toScreen(p)
	}
	r.SetDrawColor(cr, cg, cb, 255)
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		r.DrawLineF(pts[i][0], pts[i][1], pts[j][0], pts[j][1])
	}
}

func scale8(c uint8, f float32) uint8 {
	s := float32(c) * f
	if s > 255 {
		return 255
	}
	if s < 0 {
		return 0
	}
	return uint8(s)
}
