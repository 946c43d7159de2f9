package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// RunBatch processes multiple inputs concurrently with bounded
// parallelism. Inputs that hit the transcription API share a rate
// limiter; saved transcript JSON inputs are not limited.
func RunBatch(ctx context.Context, inputs []string, opts Options) ([]Result, error) {
	if len(inputs) == 1 {
		opts.InputPath = inputs[0]
		res, err := Run(ctx, opts)
		if err != nil {
			return nil, err
		}
		return []Result{*res}, nil
	}

	// Explicit output paths only make sense for a single input; with
	// several, every path is derived from its input name.
	opts.OutputPath = ""
	opts.SRTPath = ""

	maxConcurrent := opts.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	slog.Info("starting batch processing",
		"inputs", len(inputs),
		"max_concurrent", maxConcurrent,
		"rate_limit_rpm", opts.RateLimitPerMin)

	var limiter *rate.Limiter
	if opts.RateLimitPerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RateLimitPerMin)/60.0), 1)
	}

	var (
		mu      sync.Mutex
		results []Result
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if limiter != nil && !strings.EqualFold(filepath.Ext(input), ".json") {
				if err := limiter.Wait(gctx); err != nil {
					return fmt.Errorf("rate limiter: %w", err)
				}
			}

			slog.Info("processing input",
				"input", fmt.Sprintf("%d/%d", i+1, len(inputs)),
				"file", filepath.Base(input))

			inOpts := opts
			inOpts.InputPath = input
			res, err := Run(gctx, inOpts)
			if err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(input), err)
			}

			mu.Lock()
			results = append(results, *res)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].InputPath < results[j].InputPath
	})
	return results, nil
}
