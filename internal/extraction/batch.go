// SPDX-License-Identifier: Apache-2.0

package extraction

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ExtractBatch extracts each text independently, running at most concurrency
// extractions at once. Reports are returned in input order. The first failure
// cancels the remaining work and fails the batch.
func (e *Extractor) ExtractBatch(ctx context.Context, texts []string, concurrency int) ([]*Report, error) {
	reports := make([]*Report, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, text := range texts {
		g.Go(func() error {
			report, err := e.Extract(gctx, text)
			if err != nil {
				return fmt.Errorf("batch item %d: %w", i, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
