package editor

import (
	"context"

	"github.com/openfloor/planboard/persistence"
)

// PendingUpdateQueue accumulates table positions that were committed to the
// store but not yet persisted. One entry per table id; the last upsert before
// a flush wins.
type PendingUpdateQueue struct {
	positions map[uint]Position
}

func NewPendingUpdateQueue() *PendingUpdateQueue {
	return &PendingUpdateQueue{positions: make(map[uint]Position)}
}

// Upsert records the latest unsaved position for a table, replacing any
// earlier one.
func (q *PendingUpdateQueue) Upsert(tableID uint, pos Position) {
	q.positions[tableID] = pos
}

// Remove evicts a table's pending entry, if any.
func (q *PendingUpdateQueue) Remove(tableID uint) {
	delete(q.positions, tableID)
}

func (q *PendingUpdateQueue) Len() int {
	return len(q.positions)
}

// Get returns the pending position for a table.
func (q *PendingUpdateQueue) Get(tableID uint) (Position, bool) {
	pos, ok := q.positions[tableID]
	return pos, ok
}

// Clear drops every pending entry.
func (q *PendingUpdateQueue) Clear() {
	q.positions = make(map[uint]Position)
}

// Flush sends the whole queue as one batch through the adapter. The queue is
// cleared only when the batch succeeds, so a failed save can simply be
// retried.
func (q *PendingUpdateQueue) Flush(ctx context.Context, adapter persistence.Adapter, planID uint) error {
	if len(q.positions) == 0 {
		return nil
	}
	updates := make([]persistence.PositionUpdate, 0, len(q.positions))
	for id, pos := range q.positions {
		updates = append(updates, persistence.PositionUpdate{TableID: id, X: pos.X, Y: pos.Y})
	}
	if err := adapter.BatchUpdatePositions(ctx, planID, updates); err != nil {
		return err
	}
	q.Clear()
	return nil
}
