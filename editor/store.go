package editor

import (
	"github.com/openfloor/planboard/models"
)

// PlanStore owns the plan list and the active plan. Every other component
// reads and mutates through it; nothing else holds plan state. The store is
// driven from a single UI goroutine and is not safe for concurrent use.
type PlanStore struct {
	plans    []models.FloorPlan
	activeID uint
}

func NewPlanStore() *PlanStore {
	return &PlanStore{}
}

// ReplacePlans swaps in a freshly loaded plan list. The active plan is kept
// if it still exists, otherwise the first plan becomes active.
func (s *PlanStore) ReplacePlans(plans []models.FloorPlan) {
	s.plans = plans
	if s.planIndex(s.activeID) < 0 {
		s.activeID = 0
		if len(plans) > 0 {
			s.activeID = plans[0].ID
		}
	}
}

// Plans returns the held plan list.
func (s *PlanStore) Plans() []models.FloorPlan {
	return s.plans
}

// ActivePlan returns the active plan, or nil when none is loaded.
func (s *PlanStore) ActivePlan() *models.FloorPlan {
	if i := s.planIndex(s.activeID); i >= 0 {
		return &s.plans[i]
	}
	return nil
}

// ActivePlanID returns the active plan id (0 when none).
func (s *PlanStore) ActivePlanID() uint {
	return s.activeID
}

// SetActivePlan switches the active plan. Reports whether the id was known.
func (s *PlanStore) SetActivePlan(planID uint) bool {
	if s.planIndex(planID) < 0 {
		return false
	}
	s.activeID = planID
	return true
}

// AddPlan appends a plan and makes it active.
func (s *PlanStore) AddPlan(plan models.FloorPlan) {
	s.plans = append(s.plans, plan)
	s.activeID = plan.ID
}

// TableByID finds a table on the active plan.
func (s *PlanStore) TableByID(tableID uint) *models.Table {
	plan := s.ActivePlan()
	if plan == nil {
		return nil
	}
	return plan.TableByID(tableID)
}

// SetTablePosition moves a table on the active plan. The caller is expected
// to have clamped the position already.
func (s *PlanStore) SetTablePosition(tableID uint, pos Position) bool {
	t := s.TableByID(tableID)
	if t == nil {
		return false
	}
	t.PosX = pos.X
	t.PosY = pos.Y
	return true
}

// CycleStatus advances a table's occupancy status and returns the new value.
func (s *PlanStore) CycleStatus(tableID uint) (models.TableStatus, bool) {
	t := s.TableByID(tableID)
	if t == nil {
		return "", false
	}
	t.Status = t.Status.Next()
	return t.Status, true
}

// InsertTable adds a table to the active plan.
func (s *PlanStore) InsertTable(table models.Table) {
	plan := s.ActivePlan()
	if plan == nil {
		return
	}
	plan.Tables = append(plan.Tables, table)
}

// RemoveTable deletes a table from the active plan. Reports whether it
// existed.
func (s *PlanStore) RemoveTable(tableID uint) bool {
	plan := s.ActivePlan()
	if plan == nil {
		return false
	}
	for i := range plan.Tables {
		if plan.Tables[i].ID == tableID {
			plan.Tables = append(plan.Tables[:i], plan.Tables[i+1:]...)
			return true
		}
	}
	return false
}

func (s *PlanStore) planIndex(id uint) int {
	if id == 0 {
		return -1
	}
	for i := range s.plans {
		if s.plans[i].ID == id {
			return i
		}
	}
	return -1
}
