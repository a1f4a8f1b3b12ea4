package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/openfloor/planboard/utils"
)

// Resolve picks the adapter for a session with a single health probe against
// the remote service. Probe success means live mode for the whole session;
// anything else falls back to the demo adapter over the local snapshot
// database. There is no re-probing and no automatic failover afterwards.
func Resolve(ctx context.Context, baseURL string, snapshotDB *gorm.DB) (Adapter, error) {
	if baseURL != "" {
		live := NewLiveAdapter(baseURL)
		if live.Probe(ctx) {
			utils.InfoLogger.Printf("backend reachable at %s, running in live mode", baseURL)
			return live, nil
		}
		utils.InfoLogger.Printf("backend at %s unreachable, running in demo mode", baseURL)
	}
	return NewDemoAdapter(snapshotDB)
}
