package editor

// Mode selects which mutator family is live.
type Mode int

const (
	ModeSculpt Mode = iota
	ModePaint
)

func (m Mode) String() string {
	switch m {
	case ModeSculpt:
		return "sculpt"
	case ModePaint:
		return "paint"
	}
	return "unknown"
}

// TopologyMode selects the granularity selection and topology edits operate on.
type TopologyMode int

const (
	TopoVertex TopologyMode = iota
	TopoEdge
	TopoFace
)

func (m TopologyMode) String() string {
	switch m {
	case TopoVertex:
		return "vertex"
	case TopoEdge:
		return "edge"
	case TopoFace:
		return "face"
	}
	return "unknown"
}

// TerrainType classifies a course cell.
type TerrainType int

const (
	TerrainFairway TerrainType = iota
	TerrainGreen
	TerrainRough
	TerrainHeavyRough
	TerrainBunker
	TerrainWater
	TerrainTee
	TerrainPath
)

func (t TerrainType) String() string {
	switch t {
	case TerrainFairway:
		return "fairway"
	case TerrainGreen:
		return "green"
	case TerrainRough:
		return "rough"
	case TerrainHeavyRough:
		return "heavy_rough"
	case TerrainBunker:
		return "bunker"
	case TerrainWater:
		return "water"
	case TerrainTee:
		return "tee"
	case TerrainPath:
		return "path"
	}
	return "unknown"
}

// Tool identifies the active editing tool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolMove
	ToolRaise
	ToolLower
	ToolFlatten
	ToolSmooth
	ToolLevel
	ToolPaintFairway
	ToolPaintGreen
	ToolPaintRough
	ToolPaintHeavyRough
	ToolPaintBunker
	ToolPaintWater
	ToolPaintTee
	ToolPaintPath
)

// toolTerrain maps each paint tool to the classification it applies.
var toolTerrain = map[Tool]TerrainType{
	ToolPaintFairway:    TerrainFairway,
	ToolPaintGreen:      TerrainGreen,
	ToolPaintRough:      TerrainRough,
	ToolPaintHeavyRough: TerrainHeavyRough,
	ToolPaintBunker:     TerrainBunker,
	ToolPaintWater:      TerrainWater,
	ToolPaintTee:        TerrainTee,
	ToolPaintPath:       TerrainPath,
}

// TerrainType returns the classification a paint tool applies.
func (t Tool) TerrainType() (TerrainType, bool) {
	tt, ok := toolTerrain[t]
	return tt, ok
}

// IsPaint reports whether the tool is a terrain-type brush.
func (t Tool) IsPaint() bool {
	_, ok := toolTerrain[t]
	return ok
}

// IsSculpt reports whether the tool mutates elevation.
func (t Tool) IsSculpt() bool {
	switch t {
	case ToolRaise, ToolLower, ToolFlatten, ToolSmooth, ToolLevel:
		return true
	}
	return false
}

// Mode returns the mutator family the tool belongs to.
func (t Tool) Mode() Mode {
	if t.IsPaint() {
		return ModePaint
	}
	return ModeSculpt
}

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolMove:
		return "move"
	case ToolRaise:
		return "raise"
	case ToolLower:
		return "lower"
	case ToolFlatten:
		return "flatten"
	case ToolSmooth:
		return "smooth"
	case ToolLevel:
		return "level"
	}
	if tt, ok := toolTerrain[t]; ok {
		return "paint_" + tt.String()
	}
	return "unknown"
}

// Axis constrains vertex translation during a move gesture.
type Axis int

const (
	AxisAll Axis = iota
	AxisX
	AxisY
	AxisZ
	AxisXZ
)

func (a Axis) String() string {
	switch a {
	case AxisAll:
		return "all"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	case AxisXZ:
		return "xz"
	}
	return "unknown"
}
