package editor

import (
	"context"
	"fmt"

	"github.com/openfloor/planboard/models"
	"github.com/openfloor/planboard/persistence"
	"github.com/openfloor/planboard/utils"
)

// Session wires the plan store, pending queue and selection panel to a
// resolved persistence adapter. Mutations fall into two contracts that must
// not be unified:
//
//   - local-optimistic + detached remote write: field edits and status
//     cycling mutate the store immediately and fire the remote call on a
//     spawned goroutine whose error is only logged;
//   - local-optimistic + queued batch write: position changes sit in the
//     pending queue until SavePositions, the one call a caller awaits.
type Session struct {
	store   *PlanStore
	queue   *PendingUpdateQueue
	panel   *SelectionPanel
	adapter persistence.Adapter

	// spawn runs detached remote writes; replaced in tests to run inline.
	spawn func(fn func())
}

func NewSession(adapter persistence.Adapter) *Session {
	return &Session{
		store:   NewPlanStore(),
		queue:   NewPendingUpdateQueue(),
		panel:   NewSelectionPanel(),
		adapter: adapter,
		spawn:   func(fn func()) { go fn() },
	}
}

func (s *Session) Store() *PlanStore              { return s.store }
func (s *Session) Queue() *PendingUpdateQueue     { return s.queue }
func (s *Session) Panel() *SelectionPanel         { return s.panel }
func (s *Session) Mode() persistence.ConnectionMode { return s.adapter.Mode() }

// Load pulls the plan list from the adapter. A transport failure here, and
// only here, falls back to generating a demo-style plan in memory so the
// editor always has something to show.
func (s *Session) Load(ctx context.Context) error {
	plans, err := s.adapter.ListPlans(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("initial plan load failed, generating local plan: %v", err)
		fallback := models.NewPresetPlan("Main Floor", models.PresetMedium)
		fallback.ID = 1
		for i := range fallback.Tables {
			fallback.Tables[i].ID = uint(i + 1)
			fallback.Tables[i].FloorPlanID = fallback.ID
		}
		s.store.ReplacePlans([]models.FloorPlan{fallback})
		return nil
	}
	s.store.ReplacePlans(plans)
	return nil
}

// Reload refreshes the plan list from the adapter, keeping the active plan
// when it still exists. Used after structural mutations in live mode so the
// store reflects server-assigned identities.
func (s *Session) Reload(ctx context.Context) error {
	plans, err := s.adapter.ListPlans(ctx)
	if err != nil {
		return fmt.Errorf("reload plans: %w", err)
	}
	s.store.ReplacePlans(plans)
	return nil
}

// SwitchPlan activates another plan. Pending moves on the previous plan are
// discarded unconditionally; the discard is logged because it silently loses
// unsaved work.
func (s *Session) SwitchPlan(planID uint) bool {
	if n := s.queue.Len(); n > 0 {
		utils.InfoLogger.Printf("switching plan with %d unsaved position change(s), discarding", n)
	}
	s.queue.Clear()
	s.panel.Clear()
	return s.store.SetActivePlan(planID)
}

// MoveTable commits an optimistic position to the store and records it as
// pending. Nothing is persisted until SavePositions.
func (s *Session) MoveTable(tableID uint, pos Position) bool {
	if !s.store.SetTablePosition(tableID, pos) {
		return false
	}
	s.queue.Upsert(tableID, pos)
	return true
}

// CycleTableStatus advances a table's status locally and writes it straight
// through on a detached call. Status changes never enter the pending queue.
func (s *Session) CycleTableStatus(tableID uint) (models.TableStatus, bool) {
	next, ok := s.store.CycleStatus(tableID)
	if !ok {
		return "", false
	}
	s.panel.Refresh(s.store)
	status := next
	s.spawn(func() {
		if err := s.adapter.UpdateTable(context.Background(), tableID, persistence.TableFields{Status: &status}); err != nil {
			utils.ErrorLogger.Printf("status update for table %d not persisted: %v", tableID, err)
		}
	})
	return next, true
}

// UpdateTableFields applies a partial edit optimistically and fires a
// detached remote write. Failed writes leave local and remote state diverged;
// that is the contract for field edits.
func (s *Session) UpdateTableFields(tableID uint, fields persistence.TableFields) bool {
	t := s.store.TableByID(tableID)
	if t == nil {
		return false
	}
	fields.Apply(t)
	s.panel.Refresh(s.store)
	s.spawn(func() {
		if err := s.adapter.UpdateTable(context.Background(), tableID, fields); err != nil {
			utils.ErrorLogger.Printf("field update for table %d not persisted: %v", tableID, err)
		}
	})
	return true
}

// AddTable creates a table on the active plan with a default position and
// shape-default size. In live mode the plan list is reloaded afterwards so
// the store carries the server-assigned id.
func (s *Session) AddTable(ctx context.Context, spec persistence.TableSpec) error {
	plan := s.store.ActivePlan()
	if plan == nil {
		return fmt.Errorf("no active plan")
	}
	created, err := s.adapter.AddTable(ctx, plan.ID, spec)
	if err != nil {
		return fmt.Errorf("add table: %w", err)
	}
	if s.adapter.Mode() == persistence.ModeLive {
		return s.Reload(ctx)
	}
	s.store.InsertTable(*created)
	return nil
}

// DeleteTable removes a table everywhere: store, pending queue, and selection
// if it was the selected one, then the backend.
func (s *Session) DeleteTable(ctx context.Context, tableID uint) error {
	if !s.store.RemoveTable(tableID) {
		return fmt.Errorf("table %d not on active plan", tableID)
	}
	s.queue.Remove(tableID)
	if sel, ok := s.panel.Selected(); ok && sel.ID == tableID {
		s.panel.Clear()
	}
	if err := s.adapter.DeleteTable(ctx, tableID); err != nil {
		return fmt.Errorf("delete table: %w", err)
	}
	if s.adapter.Mode() == persistence.ModeLive {
		return s.Reload(ctx)
	}
	return nil
}

// CreatePlan asks the adapter for a new plan, optionally seeded from a
// preset, and makes it active.
func (s *Session) CreatePlan(ctx context.Context, name, preset string) error {
	created, err := s.adapter.CreatePlan(ctx, name, preset)
	if err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	if s.adapter.Mode() == persistence.ModeLive {
		if err := s.Reload(ctx); err != nil {
			return err
		}
		s.store.SetActivePlan(created.ID)
		return nil
	}
	s.store.AddPlan(*created)
	return nil
}

// SavePositions flushes the pending queue as one awaited batch. On failure
// the queue keeps its entries so the save can be re-issued.
func (s *Session) SavePositions(ctx context.Context) error {
	plan := s.store.ActivePlan()
	if plan == nil {
		return fmt.Errorf("no active plan")
	}
	if err := s.queue.Flush(ctx, s.adapter, plan.ID); err != nil {
		return fmt.Errorf("save positions: %w", err)
	}
	return nil
}
