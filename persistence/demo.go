package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/openfloor/planboard/models"
)

// SnapshotKey is the single cache key demo mode writes under. One demo plan
// survives across reloads; a newer plan overwrites the key on its first
// persisted mutation.
const SnapshotKey = "planboard_demo_plan"

// DemoAdapter never calls out. Every mutation is applied to an in-memory plan
// and the whole plan object is serialized into the local snapshot store. A
// freshly created plan lives only in memory until a mutation persists it.
type DemoAdapter struct {
	db          *gorm.DB
	plans       []models.FloorPlan
	nextPlanID  uint
	nextTableID uint
}

// NewDemoAdapter opens the snapshot store and restores the cached plan, or
// seeds a preset plan when the cache is empty. The seeded plan is not written
// back until the first mutation.
func NewDemoAdapter(db *gorm.DB) (*DemoAdapter, error) {
	if err := db.AutoMigrate(&models.PlanSnapshot{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot store: %w", err)
	}
	a := &DemoAdapter{db: db, nextPlanID: 1, nextTableID: 1}

	var snap models.PlanSnapshot
	err := db.First(&snap, "key = ?", SnapshotKey).Error
	switch {
	case err == nil:
		var plan models.FloorPlan
		if jsonErr := json.Unmarshal(snap.Data, &plan); jsonErr != nil {
			// corrupt cache: fall back to a fresh plan
			a.plans = []models.FloorPlan{a.seedPlan()}
		} else {
			a.plans = []models.FloorPlan{plan}
			a.bumpCounters(plan)
		}
	case err == gorm.ErrRecordNotFound:
		a.plans = []models.FloorPlan{a.seedPlan()}
	default:
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return a, nil
}

func (a *DemoAdapter) Mode() ConnectionMode { return ModeDemo }

func (a *DemoAdapter) seedPlan() models.FloorPlan {
	plan := models.NewPresetPlan("Demo Floor", models.PresetMedium)
	plan.ID = a.nextPlanID
	a.nextPlanID++
	for i := range plan.Tables {
		plan.Tables[i].ID = a.nextTableID
		plan.Tables[i].FloorPlanID = plan.ID
		a.nextTableID++
	}
	return plan
}

func (a *DemoAdapter) bumpCounters(plan models.FloorPlan) {
	if plan.ID >= a.nextPlanID {
		a.nextPlanID = plan.ID + 1
	}
	for _, t := range plan.Tables {
		if t.ID >= a.nextTableID {
			a.nextTableID = t.ID + 1
		}
	}
}

func (a *DemoAdapter) planByID(planID uint) *models.FloorPlan {
	for i := range a.plans {
		if a.plans[i].ID == planID {
			return &a.plans[i]
		}
	}
	return nil
}

func (a *DemoAdapter) planOfTable(tableID uint) (*models.FloorPlan, *models.Table) {
	for i := range a.plans {
		if t := a.plans[i].TableByID(tableID); t != nil {
			return &a.plans[i], t
		}
	}
	return nil, nil
}

// clonePlan detaches the Tables backing array. Plans handed out by the
// adapter get mutated in place by the editor store, and sharing the array
// would let those edits rewrite the adapter's own state.
func clonePlan(p models.FloorPlan) models.FloorPlan {
	p.Tables = append([]models.Table(nil), p.Tables...)
	return p
}

// persist overwrites the snapshot row with the whole plan.
func (a *DemoAdapter) persist(plan *models.FloorPlan) error {
	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	snap := models.PlanSnapshot{Key: SnapshotKey, Data: datatypes.JSON(raw)}
	if err := a.db.Save(&snap).Error; err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (a *DemoAdapter) ListPlans(ctx context.Context) ([]models.FloorPlan, error) {
	out := make([]models.FloorPlan, len(a.plans))
	for i := range a.plans {
		out[i] = clonePlan(a.plans[i])
	}
	return out, nil
}

func (a *DemoAdapter) CreatePlan(ctx context.Context, name, preset string) (*models.FloorPlan, error) {
	plan := models.NewPresetPlan(name, preset)
	plan.ID = a.nextPlanID
	a.nextPlanID++
	for i := range plan.Tables {
		plan.Tables[i].ID = a.nextTableID
		plan.Tables[i].FloorPlanID = plan.ID
		a.nextTableID++
	}
	// in memory only: the cached key is overwritten once a mutation persists
	a.plans = append(a.plans, plan)
	out := clonePlan(plan)
	return &out, nil
}

func (a *DemoAdapter) AddTable(ctx context.Context, planID uint, spec TableSpec) (*models.Table, error) {
	plan := a.planByID(planID)
	if plan == nil {
		return nil, fmt.Errorf("plan %d not found", planID)
	}
	w, h := spec.Shape.DefaultSize()
	table := models.Table{
		ID:          a.nextTableID,
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
	a.nextTableID++
	plan.Tables = append(plan.Tables, table)
	if err := a.persist(plan); err != nil {
		return nil, err
	}
	return &table, nil
}

func (a *DemoAdapter) UpdateTable(ctx context.Context, tableID uint, fields TableFields) error {
	plan, t := a.planOfTable(tableID)
	if t == nil {
		return fmt.Errorf("table %d not found", tableID)
	}
	fields.Apply(t)
	return a.persist(plan)
}

func (a *DemoAdapter) BatchUpdatePositions(ctx context.Context, planID uint, updates []PositionUpdate) error {
	plan := a.planByID(planID)
	if plan == nil {
		return fmt.Errorf("plan %d not found", planID)
	}
	for _, u := range updates {
		if t := plan.TableByID(u.TableID); t != nil {
			t.PosX = u.X
			t.PosY = u.Y
		}
	}
	return a.persist(plan)
}

func (a *DemoAdapter) DeleteTable(ctx context.Context, tableID uint) error {
	plan, t := a.planOfTable(tableID)
	if t == nil {
		return fmt.Errorf("table %d not found", tableID)
	}
	for i := range plan.Tables {
		if plan.Tables[i].ID == tableID {
			plan.Tables = append(plan.Tables[:i], plan.Tables[i+1:]...)
			break
		}
	}
	return a.persist(plan)
}
