package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfloor/planboard/models"
	"github.com/openfloor/planboard/persistence"
)

func TestEditShapeResetsSizeToShapeDefaults(t *testing.T) {
	s, _ := newTestSession(t)

	// give the rectangle a custom size first
	w, h := 180.0, 45.0
	s.UpdateTableFields(1, persistence.TableFields{Width: &w, Height: &h})
	assert.Equal(t, 180.0, s.Store().TableByID(1).Width)

	s.Panel().Select(s.Store(), 1)
	ok := s.Panel().EditShape(s, models.ShapeSquare)
	assert.True(t, ok)

	tbl := s.Store().TableByID(1)
	assert.Equal(t, models.ShapeSquare, tbl.Shape)
	assert.Equal(t, 80.0, tbl.Width)
	assert.Equal(t, 80.0, tbl.Height)

	// the panel snapshot follows the store
	sel, _ := s.Panel().Selected()
	assert.Equal(t, 80.0, sel.Width)
}

func TestEditShapeCircleDefaults(t *testing.T) {
	s, _ := newTestSession(t)
	s.Panel().Select(s.Store(), 1)

	s.Panel().EditShape(s, models.ShapeCircle)

	tbl := s.Store().TableByID(1)
	assert.Equal(t, 70.0, tbl.Width)
	assert.Equal(t, 70.0, tbl.Height)
}

func TestEditCapacityCoercesBadInput(t *testing.T) {
	s, _ := newTestSession(t)
	s.Panel().Select(s.Store(), 1)

	s.Panel().EditCapacity(s, "twelve")
	assert.Equal(t, 4, s.Store().TableByID(1).Capacity)

	s.Panel().EditCapacity(s, " 8 ")
	assert.Equal(t, 8, s.Store().TableByID(1).Capacity)

	s.Panel().EditCapacity(s, "-3")
	assert.Equal(t, 4, s.Store().TableByID(1).Capacity)
}

func TestEditDimensionsCoercesToShapeDefaults(t *testing.T) {
	s, _ := newTestSession(t)
	s.Panel().Select(s.Store(), 1) // rectangle, defaults 100x70

	s.Panel().EditDimensions(s, "abc", "120")

	tbl := s.Store().TableByID(1)
	assert.Equal(t, 100.0, tbl.Width)
	assert.Equal(t, 120.0, tbl.Height)
}

func TestEditsRequireSelection(t *testing.T) {
	s, fake := newTestSession(t)

	assert.False(t, s.Panel().EditNumber(s, "T5"))
	assert.False(t, s.Panel().EditShape(s, models.ShapeCircle))
	assert.Empty(t, fake.updateCalls)
}

func TestEditFieldsFlowThroughUpdatePath(t *testing.T) {
	s, fake := newTestSession(t)
	s.Panel().Select(s.Store(), 2)

	s.Panel().EditSection(s, models.SectionPrivateDining)
	s.Panel().EditAccessible(s, true)
	s.Panel().EditAssignedServer(s, "alex")
	s.Panel().EditStatus(s, models.StatusReserved)

	tbl := s.Store().TableByID(2)
	assert.Equal(t, models.SectionPrivateDining, tbl.Section)
	assert.True(t, tbl.Accessible)
	assert.Equal(t, "alex", tbl.AssignedServer)
	assert.Equal(t, models.StatusReserved, tbl.Status)
	assert.Len(t, fake.updateCalls, 4)
}
