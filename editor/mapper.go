package editor

// Rect is a rendered canvas rectangle in screen pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Position is a point in logical plan units.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CoordinateMapper converts between screen pixel space (the rendered canvas
// rectangle) and logical plan space (the fixed units a plan is authored in).
// Horizontal and vertical scales are independent.
type CoordinateMapper struct {
	canvas     Rect
	planWidth  float64
	planHeight float64
}

func NewCoordinateMapper(canvas Rect, planWidth, planHeight float64) CoordinateMapper {
	return CoordinateMapper{canvas: canvas, planWidth: planWidth, planHeight: planHeight}
}

// Valid reports whether conversions are possible. A degenerate canvas or plan
// makes every conversion a no-op rather than a division by zero.
func (m CoordinateMapper) Valid() bool {
	return m.canvas.Width > 0 && m.canvas.Height > 0 && m.planWidth > 0 && m.planHeight > 0
}

// ScreenToLogical maps a pixel coordinate into plan units, relative to the
// canvas origin. Degenerate mappers return the zero point.
func (m CoordinateMapper) ScreenToLogical(px, py float64) (float64, float64) {
	if !m.Valid() {
		return 0, 0
	}
	scaleX := m.planWidth / m.canvas.Width
	scaleY := m.planHeight / m.canvas.Height
	return (px - m.canvas.X) * scaleX, (py - m.canvas.Y) * scaleY
}

// LogicalToScreen maps plan units back onto the canvas.
func (m CoordinateMapper) LogicalToScreen(x, y float64) (float64, float64) {
	if !m.Valid() {
		return 0, 0
	}
	scaleX := m.canvas.Width / m.planWidth
	scaleY := m.canvas.Height / m.planHeight
	return m.canvas.X + x*scaleX, m.canvas.Y + y*scaleY
}

// ClampTable keeps a table's whole footprint inside the plan:
// 0 <= x <= planWidth-tableWidth, 0 <= y <= planHeight-tableHeight.
func (m CoordinateMapper) ClampTable(x, y, tableWidth, tableHeight float64) (float64, float64) {
	maxX := m.planWidth - tableWidth
	maxY := m.planHeight - tableHeight
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	return clamp(x, 0, maxX), clamp(y, 0, maxY)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
