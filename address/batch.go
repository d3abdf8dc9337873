package address

import (
	"context"

	"github.com/spikeekips/nemaddress/util"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

type Result struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason,omitempty"`
}

func (v *Validator) Result(s string, ids NetworkIDs) Result {
	r := Result{Address: s, Valid: true}

	if err := v.Check(s, ids); err != nil {
		v.traceInvalid(s, err)

		r.Valid = false
		r.Reason = err.Error()
	}

	return r
}

// ValidateBatch validates addresses with at most limit goroutines. The
// results are in the same order with addresses.
func (v *Validator) ValidateBatch(
	ctx context.Context,
	addresses []string,
	ids NetworkIDs,
	limit int64,
) ([]Result, error) {
	if limit < 1 {
		return nil, util.InvalidArgumentError.Errorf("limit should be over zero, %d", limit)
	}

	results := make([]Result, len(addresses))

	sem := semaphore.NewWeighted(limit)
	eg := new(errgroup.Group)

	for i := range addresses {
		if err := ctx.Err(); err != nil {
			_ = eg.Wait()

			return nil, err
		}

		if err := sem.Acquire(ctx, 1); err != nil {
			_ = eg.Wait()

			return nil, err
		}

		i := i

		eg.Go(func() error {
			defer sem.Release(1)

			results[i] = v.Result(addresses[i], ids)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	v.Log().Debug().Int("addresses", len(addresses)).Int64("limit", limit).Msg("batch validated")

	return results, nil
}
