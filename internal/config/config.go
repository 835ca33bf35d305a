// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Course  CourseConfig  `yaml:"course"`
	Editor  EditorConfig  `yaml:"editor"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings for the editor window.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CourseConfig holds the dimensions of the editable course grid.
type CourseConfig struct {
	Width    int     `yaml:"width"`     // grid points along X
	Height   int     `yaml:"height"`    // grid points along Y
	CellSize float32 `yaml:"cell_size"` // world units per grid cell
}

// EditorConfig holds tuning values for the editing engine.
type EditorConfig struct {
	BrushSize       int     `yaml:"brush_size"`        // default brush radius, 1..5
	BrushStrength   float32 `yaml:"brush_strength"`    // default vertex sculpt strength, 0.1..5.0
	ElevationFloor  float32 `yaml:"elevation_floor"`   // lower tool clamps here
	MaxSlopeDelta   float32 `yaml:"max_slope_delta"`   // flatten/smooth slope guard
	DragStepPixels  float32 `yaml:"drag_step_pixels"`  // screen-Y pixels per sculpt step
	TranslateYScale float32 `yaml:"translate_y_scale"` // world units per screen-Y pixel
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Course: CourseConfig{
			Width:    64,
			Height:   64,
			CellSize: 1.0,
		},
		Editor: EditorConfig{
			BrushSize:       1,
			BrushStrength:   1.0,
			ElevationFloor:  -10,
			MaxSlopeDelta:   4,
			DragStepPixels:  20,
			TranslateYScale: 0.02,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
