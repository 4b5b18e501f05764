// SPDX-License-Identifier: MIT

package submatrix_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/rectscan/grid"
	"github.com/katalvlaran/rectscan/gridgen"
	"github.com/katalvlaran/rectscan/submatrix"
)

// TestAnalyze_MatchesStages verifies the report equals running each stage by hand.
func TestAnalyze_MatchesStages(t *testing.T) {
	g := gridgen.Sample()
	d := submatrix.Dims{Rows: 2, Cols: 2}

	rep, err := submatrix.Analyze(context.Background(), g, d)
	require.NoError(t, err)

	all, err := submatrix.Locate(g, d, false)
	require.NoError(t, err)
	non, err := submatrix.Locate(g, d, true)
	require.NoError(t, err)
	clusters := submatrix.Clusters(all)
	sel, err := submatrix.SelectPerCluster(clusters, d)
	require.NoError(t, err)

	want := submatrix.Report{Dims: d, All: all, NonOverlapping: non, Clusters: clusters, Selections: sel}
	if diff := cmp.Diff(want, rep); diff != "" {
		t.Errorf("Analyze mismatch (-stages +report):\n%s", diff)
	}
	assert.Len(t, rep.All, 43)
	assert.Len(t, rep.NonOverlapping, 17)
	assert.Len(t, rep.Clusters, 4)
}

// TestAnalyze_Idempotent runs the pipeline twice on one grid.
func TestAnalyze_Idempotent(t *testing.T) {
	g := randomGrid(t, 30, 30, 42, 0.8)
	d := submatrix.Dims{Rows: 2, Cols: 3}
	first, err := submatrix.Analyze(context.Background(), g, d)
	require.NoError(t, err)
	second, err := submatrix.Analyze(context.Background(), g, d)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

// TestAnalyze_WorkersPreserveOrder compares parallel runs to the sequential one.
func TestAnalyze_WorkersPreserveOrder(t *testing.T) {
	cases := []struct {
		name string
		rows int
		cols int
		d    submatrix.Dims
	}{
		{"Square", 40, 40, submatrix.Dims{Rows: 2, Cols: 2}},
		{"Tall", 64, 9, submatrix.Dims{Rows: 3, Cols: 1}},
		{"SingleTopRow", 3, 20, submatrix.Dims{Rows: 3, Cols: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := randomGrid(t, tc.rows, tc.cols, 99, 0.85)
			seq, err := submatrix.Analyze(context.Background(), g, tc.d)
			require.NoError(t, err)
			for _, w := range []int{0, 2, 3, 8, 100} {
				par, err := submatrix.Analyze(context.Background(), g, tc.d, submatrix.WithWorkers(w))
				require.NoError(t, err)
				if diff := cmp.Diff(seq, par); diff != "" {
					t.Errorf("workers=%d differs (-seq +par):\n%s", w, diff)
				}
			}
		})
	}
}

// TestAnalyze_Errors propagates validation failures with an empty report.
func TestAnalyze_Errors(t *testing.T) {
	rep, err := submatrix.Analyze(context.Background(), grid.Grid{}, submatrix.Dims{Rows: 1, Cols: 1})
	assert.ErrorIs(t, err, grid.ErrInvalidGrid)
	assert.Equal(t, submatrix.Report{}, rep)

	_, err = submatrix.Analyze(context.Background(), gridgen.Sample(), submatrix.Dims{Rows: 11, Cols: 1})
	assert.ErrorIs(t, err, submatrix.ErrInvalidDimensions)
}

// TestAnalyze_Cancelled returns ctx.Err() for an already-cancelled context,
// sequential and parallel alike.
func TestAnalyze_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := gridgen.Sample()
	for _, w := range []int{1, 4} {
		rep, err := submatrix.Analyze(ctx, g, submatrix.Dims{Rows: 2, Cols: 2}, submatrix.WithWorkers(w))
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", w)
		assert.Equal(t, submatrix.Report{}, rep)
	}
}

// TestAnalyze_Logging checks that stage statistics reach an injected logger.
func TestAnalyze_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := submatrix.Analyze(context.Background(), gridgen.Sample(), submatrix.Dims{Rows: 3, Cols: 3},
		submatrix.WithLogger(zap.New(core)))
	require.NoError(t, err)

	located := logs.FilterMessage("candidates located").All()
	require.Len(t, located, 1)
	assert.Equal(t, int64(8), located[0].ContextMap()["count"])
	assert.Equal(t, "3x3", located[0].ContextMap()["rect"])
	assert.Equal(t, 1, logs.FilterMessage("candidates clustered").Len())
}

// TestOptions_Panics ensures option constructors reject nonsense.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { submatrix.WithWorkers(-1) })
	assert.Panics(t, func() { submatrix.WithLogger(nil) })
}

// TestRect covers the geometry helpers.
func TestRect(t *testing.T) {
	d := submatrix.Dims{Rows: 2, Cols: 3}
	r := submatrix.RectAt(submatrix.Coord{Row: 1, Col: 1}, d)
	assert.Equal(t, "2x3@(1,1)", r.String())
	assert.Equal(t, 6, d.Area())
	assert.True(t, r.Contains(2, 3))
	assert.False(t, r.Contains(3, 1))
	assert.True(t, r.Overlaps(submatrix.RectAt(submatrix.Coord{Row: 2, Col: 3}, d)))
	assert.False(t, r.Overlaps(submatrix.RectAt(submatrix.Coord{Row: 1, Col: 4}, d)))
	assert.False(t, r.Overlaps(submatrix.RectAt(submatrix.Coord{Row: 3, Col: 1}, d)))
	assert.True(t, submatrix.Coord{Row: 0, Col: 5}.Less(submatrix.Coord{Row: 1, Col: 0}))
}
