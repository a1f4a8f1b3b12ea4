package editor

import "math"

// DragThreshold is the cumulative displacement, in screen pixels on either
// axis, past which a press becomes a drag instead of a click.
const DragThreshold = 5.0

type DragState int

const (
	StateIdle DragState = iota
	StatePressCandidate
	StateDragging
)

// PointerEvent is a pointer coordinate in screen pixels.
type PointerEvent struct {
	X float64
	Y float64
}

// DragController turns pointer-down/move/up sequences into either a position
// update (drag) or a selection (click). Position updates go through the
// session's optimistic move path; they stay pending until an explicit save.
type DragController struct {
	session *Session
	mapper  CoordinateMapper

	state   DragState
	tableID uint
	pressX  float64
	pressY  float64
	// logical offset between the pointer and the table origin at press time,
	// so the table does not jump under the cursor
	offsetX float64
	offsetY float64
}

func NewDragController(session *Session, mapper CoordinateMapper) *DragController {
	return &DragController{session: session, mapper: mapper}
}

// SetMapper swaps the coordinate mapper, e.g. after a canvas resize.
func (d *DragController) SetMapper(mapper CoordinateMapper) {
	d.mapper = mapper
}

func (d *DragController) State() DragState {
	return d.state
}

// PointerDown starts a press on a table: capture the table, the press point
// and the pointer-to-origin offset, then wait to see if it becomes a drag.
func (d *DragController) PointerDown(tableID uint, ev PointerEvent) {
	t := d.session.Store().TableByID(tableID)
	if t == nil {
		d.state = StateIdle
		return
	}
	lx, ly := d.mapper.ScreenToLogical(ev.X, ev.Y)
	d.state = StatePressCandidate
	d.tableID = tableID
	d.pressX = ev.X
	d.pressY = ev.Y
	d.offsetX = lx - t.PosX
	d.offsetY = ly - t.PosY
}

// PointerMove promotes a press to a drag once the threshold is crossed and,
// while dragging, commits clamped optimistic positions.
func (d *DragController) PointerMove(ev PointerEvent) {
	switch d.state {
	case StatePressCandidate:
		if math.Abs(ev.X-d.pressX) < DragThreshold && math.Abs(ev.Y-d.pressY) < DragThreshold {
			return
		}
		d.state = StateDragging
		d.moveTo(ev)
	case StateDragging:
		d.moveTo(ev)
	}
}

// PointerUp ends the gesture. A press that never crossed the threshold is a
// click and opens the selection panel; a drag just returns to idle with the
// moved position left pending.
func (d *DragController) PointerUp(ev PointerEvent) {
	state := d.state
	tableID := d.tableID
	d.state = StateIdle
	if state == StatePressCandidate {
		d.session.Panel().Select(d.session.Store(), tableID)
	}
}

// PointerLeave aborts the gesture like a pointer-up that can never be a
// click. Optimistic positions stay where they are.
func (d *DragController) PointerLeave() {
	d.state = StateIdle
}

// SecondaryClick cycles a table's occupancy status, independent of any drag
// in progress. Status is written straight through, never queued.
func (d *DragController) SecondaryClick(tableID uint) {
	d.session.CycleTableStatus(tableID)
}

func (d *DragController) moveTo(ev PointerEvent) {
	if !d.mapper.Valid() {
		return
	}
	t := d.session.Store().TableByID(d.tableID)
	if t == nil {
		d.state = StateIdle
		return
	}
	lx, ly := d.mapper.ScreenToLogical(ev.X, ev.Y)
	x, y := d.mapper.ClampTable(lx-d.offsetX, ly-d.offsetY, t.Width, t.Height)
	d.session.MoveTable(d.tableID, Position{X: x, Y: y})
}
