package refset

import "context"

// Collector produces the reference set of in-use media IDs from some
// source. The orchestration workflow picks the implementation; the
// reconciliation and pruning code only ever sees the resulting Set.
type Collector interface {
	Collect(ctx context.Context) (Set, error)
}
