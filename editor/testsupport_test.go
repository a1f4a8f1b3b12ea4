package editor

import (
	"context"
	"testing"

	"github.com/openfloor/planboard/models"
	"github.com/openfloor/planboard/persistence"
	"github.com/openfloor/planboard/utils"
)

// fakeAdapter records calls and can be told to fail, so tests can pin which
// mutations reach persistence and when.
type fakeAdapter struct {
	mode     persistence.ConnectionMode
	plans    []models.FloorPlan
	listErr  error
	batchErr error

	updateCalls []fieldUpdate
	batches     []batchCall
	deleted     []uint
	nextID      uint
}

type fieldUpdate struct {
	tableID uint
	fields  persistence.TableFields
}

type batchCall struct {
	planID  uint
	updates []persistence.PositionUpdate
}

func (f *fakeAdapter) Mode() persistence.ConnectionMode {
	if f.mode == "" {
		return persistence.ModeDemo
	}
	return f.mode
}

func (f *fakeAdapter) ListPlans(ctx context.Context) ([]models.FloorPlan, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.FloorPlan, len(f.plans))
	copy(out, f.plans)
	return out, nil
}

func (f *fakeAdapter) CreatePlan(ctx context.Context, name, preset string) (*models.FloorPlan, error) {
	f.nextID++
	plan := models.NewPresetPlan(name, preset)
	plan.ID = 100 + f.nextID
	f.plans = append(f.plans, plan)
	return &plan, nil
}

func (f *fakeAdapter) AddTable(ctx context.Context, planID uint, spec persistence.TableSpec) (*models.Table, error) {
	f.nextID++
	w, h := spec.Shape.DefaultSize()
	table := models.Table{
		ID:          200 + f.nextID,
		FloorPlanID: planID,
		TableNumber: spec.TableNumber,
		PosX:        spec.X,
		PosY:        spec.Y,
		Width:       w,
		Height:      h,
		Shape:       spec.Shape,
		Capacity:    spec.Capacity,
		Section:     spec.Section,
		Status:      models.StatusAvailable,
	}
	return &table, nil
}

func (f *fakeAdapter) UpdateTable(ctx context.Context, tableID uint, fields persistence.TableFields) error {
	f.updateCalls = append(f.updateCalls, fieldUpdate{tableID: tableID, fields: fields})
	return nil
}

func (f *fakeAdapter) BatchUpdatePositions(ctx context.Context, planID uint, updates []persistence.PositionUpdate) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.batches = append(f.batches, batchCall{planID: planID, updates: updates})
	return nil
}

func (f *fakeAdapter) DeleteTable(ctx context.Context, tableID uint) error {
	f.deleted = append(f.deleted, tableID)
	return nil
}

// testPlans builds two plans; plan 1 carries a rectangle at (100,100) and a
// circle at (300,200) on a 1000x700 canvas.
func testPlans() []models.FloorPlan {
	return []models.FloorPlan{
		{
			ID: 1, Name: "Main Floor", Width: 1000, Height: 700, Active: true,
			Tables: []models.Table{
				{ID: 1, FloorPlanID: 1, TableNumber: "T1", PosX: 100, PosY: 100, Width: 100, Height: 70,
					Shape: models.ShapeRectangle, Capacity: 4, Section: models.SectionDining, Status: models.StatusAvailable},
				{ID: 2, FloorPlanID: 1, TableNumber: "T2", PosX: 300, PosY: 200, Width: 70, Height: 70,
					Shape: models.ShapeCircle, Capacity: 2, Section: models.SectionBar, Status: models.StatusOccupied},
			},
		},
		{ID: 2, Name: "Patio", Width: 1000, Height: 700, Active: false},
	}
}

// newTestSession loads a session over the fake adapter with detached writes
// run inline so assertions see them.
func newTestSession(t *testing.T) (*Session, *fakeAdapter) {
	t.Helper()
	utils.InitLogger()
	fake := &fakeAdapter{plans: testPlans()}
	s := NewSession(fake)
	s.spawn = func(fn func()) { fn() }
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s, fake
}

// onePixelMapper maps the canvas one-to-one onto the 1000x700 plan.
func onePixelMapper() CoordinateMapper {
	return NewCoordinateMapper(Rect{X: 0, Y: 0, Width: 1000, Height: 700}, 1000, 700)
}
