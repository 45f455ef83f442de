package estimator

import (
	"context"
	"fmt"

	"github.com/jonathan/salary-predictor/internal/types"
	"golang.org/x/sync/errgroup"
)

// EstimateBatch estimates every profile against the same dataset with at most limit
// estimates in flight (limit <= 0 means unbounded). Results keep the input order.
func (e *Estimator) EstimateBatch(ctx context.Context, profiles []types.Profile, ds *types.Dataset, limit int) ([]*types.Estimate, error) {
	if err := ValidateDataset(ds); err != nil {
		return nil, err
	}

	results := make([]*types.Estimate, len(profiles))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i := range profiles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			est, err := e.Estimate(&profiles[i], ds)
			if err != nil {
				return fmt.Errorf("profile %d: %w", i, err)
			}
			results[i] = est
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// EstimateBatch runs a batch with the system clock.
func EstimateBatch(ctx context.Context, profiles []types.Profile, ds *types.Dataset, limit int) ([]*types.Estimate, error) {
	return defaultEstimator.EstimateBatch(ctx, profiles, ds, limit)
}
