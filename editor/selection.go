package editor

import (
	"strconv"
	"strings"

	"github.com/openfloor/planboard/models"
	"github.com/openfloor/planboard/persistence"
)

// DefaultCapacity is the seat count a table falls back to when the edited
// value does not parse.
const DefaultCapacity = 4

// SelectionPanel holds at most one selected table snapshot, populated by the
// drag controller's click outcome. Field edits run through the session's
// optimistic update path, exactly like drags do for position.
type SelectionPanel struct {
	selected *models.Table
}

func NewSelectionPanel() *SelectionPanel {
	return &SelectionPanel{}
}

// Select snapshots a table off the store. Unknown ids clear the panel.
func (p *SelectionPanel) Select(store *PlanStore, tableID uint) {
	t := store.TableByID(tableID)
	if t == nil {
		p.selected = nil
		return
	}
	snapshot := *t
	p.selected = &snapshot
}

// Selected returns a copy of the current selection.
func (p *SelectionPanel) Selected() (models.Table, bool) {
	if p.selected == nil {
		return models.Table{}, false
	}
	return *p.selected, true
}

// Clear drops the selection, e.g. after deleting the selected table.
func (p *SelectionPanel) Clear() {
	p.selected = nil
}

// Refresh re-snapshots the selected table after a store mutation so the panel
// shows what the plan holds.
func (p *SelectionPanel) Refresh(store *PlanStore) {
	if p.selected == nil {
		return
	}
	p.Select(store, p.selected.ID)
}

// EditNumber renames the selected table's display label.
func (p *SelectionPanel) EditNumber(s *Session, number string) bool {
	if p.selected == nil {
		return false
	}
	return s.UpdateTableFields(p.selected.ID, persistence.TableFields{TableNumber: &number})
}

// EditCapacity parses a capacity edit, coercing non-numeric or non-positive
// input to the default seat count instead of rejecting it.
func (p *SelectionPanel) EditCapacity(s *Session, raw string) bool {
	if p.selected == nil {
		return false
	}
	capacity := CoerceCapacity(raw)
	return s.UpdateTableFields(p.selected.ID, persistence.TableFields{Capacity: &capacity})
}

// EditShape changes the shape and resets width/height to the shape defaults,
// discarding any custom size. Downstream views rely on this reset.
func (p *SelectionPanel) EditShape(s *Session, shape models.TableShape) bool {
	if p.selected == nil {
		return false
	}
	w, h := shape.DefaultSize()
	return s.UpdateTableFields(p.selected.ID, persistence.TableFields{Shape: &shape, Width: &w, Height: &h})
}

// EditDimensions parses width/height edits, coercing unparsable values to the
// selected shape's defaults.
func (p *SelectionPanel) EditDimensions(s *Session, rawWidth, rawHeight string) bool {
	if p.selected == nil {
		return false
	}
	defW, defH := p.selected.Shape.DefaultSize()
	w := CoerceDimension(rawWidth, defW)
	h := CoerceDimension(rawHeight, defH)
	return s.UpdateTableFields(p.selected.ID, persistence.TableFields{Width: &w, Height: &h})
}

func (p *SelectionPanel) EditSection(s *Session, section models.TableSection) bool {
	if p.selected == nil {
		return false
	}
	return s.UpdateTableFields(p.selected.ID, persistence.TableFields{Section: &section})
}

func (p *SelectionPanel) EditStatus(s *Session, status models.TableStatus) bool {
	if p.selected == nil {
		return false
	}
	return s.UpdateTableFields(p.selected.ID, persistence.TableFields{Status: &status})
}

func (p *SelectionPanel) EditAccessible(s *Session, accessible bool) bool {
	if p.selected == nil {
		return false
	}
	return s.UpdateTableFields(p.selected.ID, persistence.TableFields{Accessible: &accessible})
}

// EditAssignedServer sets the free-text server name; it is not checked
// against any roster.
func (p *SelectionPanel) EditAssignedServer(s *Session, server string) bool {
	if p.selected == nil {
		return false
	}
	return s.UpdateTableFields(p.selected.ID, persistence.TableFields{AssignedServer: &server})
}

// CoerceCapacity turns free-form capacity input into a positive seat count.
func CoerceCapacity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return DefaultCapacity
	}
	return n
}

// CoerceDimension turns free-form size input into a positive dimension,
// falling back to the given default.
func CoerceDimension(raw string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
