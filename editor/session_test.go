package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfloor/planboard/models"
	"github.com/openfloor/planboard/persistence"
	"github.com/openfloor/planboard/utils"
)

func TestLoadFallsBackToGeneratedPlan(t *testing.T) {
	utils.InitLogger()
	fake := &fakeAdapter{listErr: errors.New("connection refused")}
	s := NewSession(fake)

	err := s.Load(context.Background())
	assert.NoError(t, err)

	plan := s.Store().ActivePlan()
	if assert.NotNil(t, plan) {
		assert.NotEmpty(t, plan.Tables)
	}
}

func TestSwitchPlanDiscardsPendingMoves(t *testing.T) {
	s, fake := newTestSession(t)
	d := NewDragController(s, onePixelMapper())

	// drag table 1 on plan 1 by (10,10)
	d.PointerDown(1, PointerEvent{X: 100, Y: 100})
	d.PointerMove(PointerEvent{X: 110, Y: 110})
	d.PointerUp(PointerEvent{X: 110, Y: 110})
	assert.Equal(t, 1, s.Queue().Len())

	// switch away without saving, then come back
	assert.True(t, s.SwitchPlan(2))
	assert.Equal(t, 0, s.Queue().Len())
	assert.True(t, s.SwitchPlan(1))

	// saving now sends nothing: the persisted position never changed
	assert.NoError(t, s.SavePositions(context.Background()))
	assert.Empty(t, fake.batches)
}

func TestSwitchPlanClearsSelection(t *testing.T) {
	s, _ := newTestSession(t)
	s.Panel().Select(s.Store(), 1)

	s.SwitchPlan(2)

	_, ok := s.Panel().Selected()
	assert.False(t, ok)
}

func TestSavePositionsFlushesBatchForActivePlan(t *testing.T) {
	s, fake := newTestSession(t)

	s.MoveTable(1, Position{X: 250, Y: 260})
	s.MoveTable(2, Position{X: 400, Y: 100})

	assert.NoError(t, s.SavePositions(context.Background()))
	assert.Equal(t, 0, s.Queue().Len())
	if assert.Len(t, fake.batches, 1) {
		assert.Equal(t, uint(1), fake.batches[0].planID)
		assert.Len(t, fake.batches[0].updates, 2)
	}
}

func TestSavePositionsFailureLeavesQueueIntact(t *testing.T) {
	s, fake := newTestSession(t)
	fake.batchErr = errors.New("backend down")

	s.MoveTable(1, Position{X: 250, Y: 260})
	assert.Error(t, s.SavePositions(context.Background()))
	assert.Equal(t, 1, s.Queue().Len())
}

func TestUpdateTableFieldsIsOptimisticAndDetached(t *testing.T) {
	s, fake := newTestSession(t)

	server := "dana"
	ok := s.UpdateTableFields(1, persistence.TableFields{AssignedServer: &server})
	assert.True(t, ok)

	assert.Equal(t, "dana", s.Store().TableByID(1).AssignedServer)
	if assert.Len(t, fake.updateCalls, 1) {
		assert.Equal(t, uint(1), fake.updateCalls[0].tableID)
	}
}

func TestDeleteTableEvictsQueueAndSelection(t *testing.T) {
	s, fake := newTestSession(t)

	s.MoveTable(1, Position{X: 150, Y: 150})
	s.Panel().Select(s.Store(), 1)

	assert.NoError(t, s.DeleteTable(context.Background(), 1))

	assert.Nil(t, s.Store().TableByID(1))
	_, pending := s.Queue().Get(1)
	assert.False(t, pending)
	_, selected := s.Panel().Selected()
	assert.False(t, selected)
	assert.Equal(t, []uint{1}, fake.deleted)
}

func TestDeleteOtherTableKeepsSelection(t *testing.T) {
	s, _ := newTestSession(t)
	s.Panel().Select(s.Store(), 1)

	assert.NoError(t, s.DeleteTable(context.Background(), 2))

	sel, ok := s.Panel().Selected()
	assert.True(t, ok)
	assert.Equal(t, uint(1), sel.ID)
}

func TestAddTableDemoInsertsLocally(t *testing.T) {
	s, _ := newTestSession(t)

	err := s.AddTable(context.Background(), persistence.TableSpec{
		TableNumber: "T9",
		X:           50, Y: 50,
		Shape:    models.ShapeSquare,
		Capacity: 6,
		Section:  models.SectionPatio,
	})
	assert.NoError(t, err)

	plan := s.Store().ActivePlan()
	assert.Len(t, plan.Tables, 3)
	added := plan.Tables[2]
	assert.Equal(t, "T9", added.TableNumber)
	assert.Equal(t, 80.0, added.Width)
	assert.Equal(t, 80.0, added.Height)
}

func TestCycleStatusWrapsAfterFourClicks(t *testing.T) {
	s, _ := newTestSession(t)

	for i := 0; i < 4; i++ {
		s.CycleTableStatus(1)
	}
	assert.Equal(t, models.StatusAvailable, s.Store().TableByID(1).Status)
}
