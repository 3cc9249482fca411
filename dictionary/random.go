package dictionary

import (
	"context"
	"math/rand"

	"github.com/JustAnotherCloudGuy/define-the-cloud/store"
)

// Sampler produces uniformly distributed integers in [0, n). Implementations
// must tolerate concurrent calls; tests inject deterministic ones.
type Sampler interface {
	Intn(n int) int
}

// randSampler draws from the process-wide math/rand source, which is safe
// for concurrent use.
type randSampler struct{}

func (randSampler) Intn(n int) int { return rand.Intn(n) }

// GetRandomDefinition returns a uniformly chosen definition, or nil when the
// collection is empty. Selection draws an index below the mirrored count and
// skips that many documents in scan order, which costs O(n) server-side per
// call.
//
// Accuracy follows the mirror: a stale-high count can land past the end of
// the collection, which returns nil rather than an error, and a stale-low
// count systematically misses trailing documents until reconciliation.
func (d *Dictionary) GetRandomDefinition(ctx context.Context) (*Definition, error) {
	n, err := d.counter.count(ctx)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}

	index := d.sampler.Intn(int(n))
	defs, err := d.queryDefinitions(ctx, store.Query{Skip: index, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		d.logger.Warn("mirrored count ahead of definitions collection",
			"count", n,
			"index", index,
		)
		return nil, nil
	}
	return defs[0], nil
}
