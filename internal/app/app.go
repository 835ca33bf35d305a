package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/fairwaylabs/greenside/internal/config"
	"github.com/fairwaylabs/greenside/internal/editor"
	"github.com/fairwaylabs/greenside/internal/terrain"
)

// dragThresholdPx is how far the pressed pointer must travel before a press
// becomes a drag gesture instead of a click.
const dragThresholdPx = 3

// App is the running editor application.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window *Window
	input  *Input
	view   *view

	course *terrain.Course
	editor *editor.Editor

	// Press tracking for click-vs-drag disambiguation.
	pressed  bool
	dragging bool
	pressX   int
	pressY   int
}

// New creates the application from configuration.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	log.Info("initializing editor",
		zap.Int("course_width", cfg.Course.Width),
		zap.Int("course_height", cfg.Course.Height),
	)

	win, err := NewWindow(WindowConfig{
		Title:      "Greenside Course Editor",
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	course := terrain.NewCourse(cfg.Course.Width, cfg.Course.Height, cfg.Course.CellSize)

	ed := editor.New(course, editor.Settings{
		ElevationFloor:  cfg.Editor.ElevationFloor,
		MaxSlopeDelta:   cfg.Editor.MaxSlopeDelta,
		DragStepPixels:  cfg.Editor.DragStepPixels,
		TranslateYScale: cfg.Editor.TranslateYScale,
	}, log)
	ed.SetBrushSize(cfg.Editor.BrushSize)
	ed.SetBrushStrength(cfg.Editor.BrushStrength)
	ed.Callbacks.OnToolChange = func(tool editor.Tool) {
		log.Info("tool", zap.Stringer("tool", tool))
	}
	ed.Callbacks.OnTopologyModeChange = func(mode editor.TopologyMode) {
		log.Info("topology mode", zap.Stringer("mode", mode))
	}
	ed.Enable()

	a := &App{
		cfg:    cfg,
		log:    log,
		window: win,
		input:  NewInput(),
		course: course,
		editor: ed,
	}
	a.view = newView(course, ed)
	w, h := win.Size()
	a.view.resize(w, h)

	return a, nil
}

// Run drives the frame loop until quit.
func (a *App) Run() error {
	a.running = true
	a.log.Info("starting editor loop")

	frames := 0
	fpsTimer := time.Now()

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}

		for _, ev := range a.input.Events() {
			a.handleEvent(ev)
		}

		if err := a.view.render(a.window.Renderer()); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		a.window.Renderer().Present()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("frames", frames))
			frames = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close shuts the application down.
func (a *App) Close() {
	a.log.Info("closing editor")
	a.editor.Disable()
	a.window.Close()
}

func (a *App) handleEvent(ev Event) {
	switch ev.Type {
	case EventQuit:
		a.running = false

	case EventWindowResize:
		a.view.resize(ev.Width, ev.Height)

	case EventKeyDown:
		a.handleKey(ev.Key)

	case EventMouseWheel:
		a.editor.SetBrushSize(a.editor.BrushSize() + ev.WheelY)

	case EventMouseMove:
		a.routeMouseMove(ev.MouseX, ev.MouseY)
		if a.pressed && !a.dragging {
			dx, dy := ev.MouseX-a.pressX, ev.MouseY-a.pressY
			if dx*dx+dy*dy >= dragThresholdPx*dragThresholdPx {
				a.dragging = true
				gx, gy, world := a.view.pick(a.pressX, a.pressY)
				a.editor.HandleDragStart(gx, gy, world, float32(a.pressY))
			}
		}
		if a.dragging {
			gx, gy, world := a.view.pick(ev.MouseX, ev.MouseY)
			a.editor.HandleDrag(gx, gy, world, float32(ev.MouseY))
		}

	case EventMouseDown:
		if ev.Button == sdl.BUTTON_LEFT {
			a.pressed = true
			a.dragging = false
			a.pressX, a.pressY = ev.MouseX, ev.MouseY
		}

	case EventMouseUp:
		if ev.Button != sdl.BUTTON_LEFT {
			return
		}
		if a.dragging {
			a.editor.HandleDragEnd()
		} else if a.pressed {
			a.routeMouseMove(ev.MouseX, ev.MouseY)
			a.editor.HandleClick(a.input.ShiftHeld())
		}
		a.pressed = false
		a.dragging = false
	}
}

func (a *App) routeMouseMove(x, y int) {
	gx, gy, world := a.view.pick(x, y)
	a.editor.HandleMouseMove(gx, gy, world)
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false

	// Tools
	case sdl.SCANCODE_Q:
		a.editor.SetTool(editor.ToolSelect)
	case sdl.SCANCODE_M:
		a.editor.SetTool(editor.ToolMove)
	case sdl.SCANCODE_1:
		a.editor.SetTool(editor.ToolRaise)
	case sdl.SCANCODE_2:
		a.editor.SetTool(editor.ToolLower)
	case sdl.SCANCODE_3:
		a.editor.SetTool(editor.ToolFlatten)
	case sdl.SCANCODE_4:
		a.editor.SetTool(editor.ToolSmooth)
	case sdl.SCANCODE_5:
		a.editor.SetTool(editor.ToolLevel)
	case sdl.SCANCODE_6:
		a.editor.SetTool(editor.ToolPaintFairway)
	case sdl.SCANCODE_7:
		a.editor.SetTool(editor.ToolPaintGreen)
	case sdl.SCANCODE_8:
		a.editor.SetTool(editor.ToolPaintRough)
	case sdl.SCANCODE_9:
		a.editor.SetTool(editor.ToolPaintBunker)
	case sdl.SCANCODE_0:
		a.editor.SetTool(editor.ToolPaintWater)

	// Topology granularity
	case sdl.SCANCODE_V:
		a.editor.SetTopologyMode(editor.TopoVertex)
	case sdl.SCANCODE_E:
		a.editor.SetTopologyMode(editor.TopoEdge)
	case sdl.SCANCODE_F:
		a.editor.SetTopologyMode(editor.TopoFace)

	// Brush
	case sdl.SCANCODE_LEFTBRACKET:
		a.editor.SetBrushSize(a.editor.BrushSize() - 1)
	case sdl.SCANCODE_RIGHTBRACKET:
		a.editor.SetBrushSize(a.editor.BrushSize() + 1)

	// Selection
	case sdl.SCANCODE_A:
		a.editor.Selection().SelectAll()
	case sdl.SCANCODE_D:
		a.editor.Selection().DeselectAll()
	case sdl.SCANCODE_I:
		a.editor.Selection().Invert()

	// Axis constraint for move gestures
	case sdl.SCANCODE_X:
		a.cycleAxis()

	// Topology operations
	case sdl.SCANCODE_S:
		a.editor.SubdivideSelectedEdge(0.5)
	case sdl.SCANCODE_R:
		a.editor.FlipSelectedEdge()
	case sdl.SCANCODE_C:
		a.editor.CollapseSelectedEdge()
	case sdl.SCANCODE_DELETE, sdl.SCANCODE_BACKSPACE:
		a.editor.DeleteSelectedVertices()

	// History
	case sdl.SCANCODE_Z:
		a.editor.Undo()
	case sdl.SCANCODE_Y:
		a.editor.Redo()
	}
}

func (a *App) cycleAxis() {
	next := map[editor.Axis]editor.Axis{
		editor.AxisAll: editor.AxisX,
		editor.AxisX:   editor.AxisY,
		editor.AxisY:   editor.AxisZ,
		editor.AxisZ:   editor.AxisXZ,
		editor.AxisXZ:  editor.AxisAll,
	}
	a.editor.SetAxis(next[a.editor.Axis()])
	a.log.Info("axis", zap.Stringer("axis", a.editor.Axis()))
}
