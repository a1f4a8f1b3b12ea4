package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpsertLastWriteWins(t *testing.T) {
	q := NewPendingUpdateQueue()

	q.Upsert(1, Position{X: 10, Y: 10})
	q.Upsert(1, Position{X: 50, Y: 60})

	assert.Equal(t, 1, q.Len())
	pos, ok := q.Get(1)
	assert.True(t, ok)
	assert.Equal(t, Position{X: 50, Y: 60}, pos)
}

func TestFlushSendsOnlyLatestPositions(t *testing.T) {
	q := NewPendingUpdateQueue()
	fake := &fakeAdapter{}

	q.Upsert(1, Position{X: 10, Y: 10})
	q.Upsert(2, Position{X: 20, Y: 20})
	q.Upsert(1, Position{X: 99, Y: 98})

	err := q.Flush(context.Background(), fake, 7)
	assert.NoError(t, err)
	assert.Equal(t, 0, q.Len())

	if assert.Len(t, fake.batches, 1) {
		batch := fake.batches[0]
		assert.Equal(t, uint(7), batch.planID)
		assert.Len(t, batch.updates, 2)
		for _, u := range batch.updates {
			if u.TableID == 1 {
				assert.Equal(t, 99.0, u.X)
				assert.Equal(t, 98.0, u.Y)
			}
		}
	}
}

func TestFlushFailureKeepsQueueForRetry(t *testing.T) {
	q := NewPendingUpdateQueue()
	fake := &fakeAdapter{batchErr: errors.New("backend down")}

	q.Upsert(1, Position{X: 10, Y: 10})

	err := q.Flush(context.Background(), fake, 1)
	assert.Error(t, err)
	assert.Equal(t, 1, q.Len())

	// retry after the backend recovers
	fake.batchErr = nil
	assert.NoError(t, q.Flush(context.Background(), fake, 1))
	assert.Equal(t, 0, q.Len())
	assert.Len(t, fake.batches, 1)
}

func TestFlushEmptyQueueSendsNothing(t *testing.T) {
	q := NewPendingUpdateQueue()
	fake := &fakeAdapter{}

	assert.NoError(t, q.Flush(context.Background(), fake, 1))
	assert.Empty(t, fake.batches)
}

func TestRemoveEvictsEntry(t *testing.T) {
	q := NewPendingUpdateQueue()
	q.Upsert(1, Position{X: 1, Y: 2})
	q.Remove(1)
	assert.Equal(t, 0, q.Len())
}
