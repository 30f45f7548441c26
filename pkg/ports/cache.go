package ports

import (
	"context"

	"github.com/sharetribe/txprocess/pkg/statedata"
)

// DecisionCache stores computed state-data descriptors keyed by
// (process, last transition, role). Descriptors depend only on those facts,
// so cached entries never go stale for a given process revision.
//
// The cache is an optimization: callers must treat any cache error as a miss
// and recompute, never as a request failure.
type DecisionCache interface {
	// Get returns the cached descriptor or domain.ErrCacheMiss.
	Get(ctx context.Context, key string) (*statedata.StateData, error)

	// Set stores the descriptor under key.
	Set(ctx context.Context, key string, data *statedata.StateData) error
}

// CacheKey builds the canonical cache key for a decision.
func CacheKey(processName, lastTransition string, role string) string {
	return processName + "|" + lastTransition + "|" + role
}
