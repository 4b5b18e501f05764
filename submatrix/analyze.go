// SPDX-License-Identifier: MIT

package submatrix

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rectscan/grid"
)

// Analyze runs the full pipeline over g for d-sized rectangles:
//
//  1. validate g and d, build the prefix-sum table;
//  2. locate every candidate (Report.All);
//  3. locate the greedy non-overlapping set (Report.NonOverlapping);
//  4. cluster Report.All (Report.Clusters);
//  5. select per cluster (Report.Selections).
//
// The output is identical for any worker count. ctx is checked between
// stages and by workers; on cancellation Analyze returns ctx.Err() and an
// empty Report.
func Analyze(ctx context.Context, g grid.Grid, d Dims, opts ...Option) (Report, error) {
	o := newOptions(opts...)
	log := o.logger.With(zap.Stringer("rect", d), zap.Int("workers", o.workers))

	if err := ValidateDims(g, d); err != nil {
		return Report{}, err
	}
	start := time.Now()
	ps, err := BuildPrefixSum(g)
	if err != nil {
		return Report{}, err
	}
	log.Debug("prefix sums built",
		zap.Int("rows", g.Rows()), zap.Int("cols", g.Cols()),
		zap.Int("ones", ps.At(ps.rows, ps.cols)))

	all, err := locateParallel(ctx, ps, d, o.workers)
	if err != nil {
		return Report{}, err
	}
	log.Debug("candidates located", zap.Int("count", len(all)))

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	nonOverlap := scanGreedy(ps, d)
	log.Debug("non-overlapping set located", zap.Int("count", len(nonOverlap)))

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	clusters := Clusters(all)
	log.Debug("candidates clustered", zap.Int("clusters", len(clusters)))

	selections, err := selectParallel(ctx, clusters, d, o.workers)
	if err != nil {
		return Report{}, err
	}
	total := 0
	for _, s := range selections {
		total += s.Count()
	}
	log.Debug("per-cluster selection done",
		zap.Int("selected", total), zap.Duration("elapsed", time.Since(start)))

	return Report{
		Dims:           d,
		All:            all,
		NonOverlapping: nonOverlap,
		Clusters:       clusters,
		Selections:     selections,
	}, nil
}

// locateParallel splits the candidate top rows into contiguous bands, scans
// each band in its own goroutine and concatenates bands in order, which
// reproduces the sequential row-major output.
func locateParallel(ctx context.Context, ps PrefixSum, d Dims, workers int) ([]Coord, error) {
	topRows := ps.rows - d.Rows + 1
	if workers <= 1 || topRows < 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return scanRows(ps, d, 0, topRows), nil
	}
	bands := min(workers, topRows)
	per := (topRows + bands - 1) / bands
	parts := make([][]Coord, bands)

	eg, egCtx := errgroup.WithContext(ctx)
	for b := 0; b < bands; b++ {
		b := b
		from, to := b*per, min((b+1)*per, topRows)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			parts[b] = scanRows(ps, d, from, to)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]Coord, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

// selectParallel runs selectCluster for each cluster, at most workers at a
// time. Results are index-addressed so cluster order is preserved.
func selectParallel(ctx context.Context, clusters [][]Coord, d Dims, workers int) ([]Selection, error) {
	out := make([]Selection, len(clusters))
	if workers <= 1 {
		for i, cl := range clusters {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out[i] = selectCluster(cl, d)
		}
		return out, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, cl := range clusters {
		i, cl := i, cl
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			out[i] = selectCluster(cl, d)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
