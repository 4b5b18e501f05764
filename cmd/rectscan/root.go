// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rectscan/grid"
	"github.com/katalvlaran/rectscan/internal/config"
	"github.com/katalvlaran/rectscan/internal/logging"
)

// app carries flag values and the state resolved in PersistentPreRunE.
type app struct {
	// flags
	configPath string
	gridPath   string
	sample     bool
	random     string
	seed       int64
	density    float64
	rectRows   int
	rectCols   int
	workers    int
	format     string
	color      bool
	cellWidth  int
	logLevel   string
	verbose    bool

	// resolved
	cfg    *config.Config
	logger *zap.Logger
	runID  string
}

// newRootCmd builds the command tree. Each call returns independent state.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "rectscan",
		Short: "Find fixed-size all-ones rectangles in a binary grid",
		Long: `rectscan locates every x-by-y rectangle filled entirely with 1s in a binary
grid, reduces them greedily to a non-overlapping set, groups their top-left
corners into clusters of unit-step neighbours and picks a non-overlapping
subset inside each cluster.

The grid comes from --grid FILE, --sample, --random RxC or a config file.
With no source at all the built-in 10x10 sample is used.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to rectscan.yaml")
	pf.StringVar(&a.gridPath, "grid", "", "text grid file (rows of 0/1)")
	pf.BoolVar(&a.sample, "sample", false, "use the built-in 10x10 sample grid")
	pf.StringVar(&a.random, "random", "", "generate a random grid of size RxC, e.g. 20x30")
	pf.Int64Var(&a.seed, "seed", 1, "seed for --random")
	pf.Float64Var(&a.density, "density", config.DefaultDensity, "probability of a 1 cell for --random")
	pf.IntVarP(&a.rectRows, "rect-rows", "x", config.DefaultRectSize, "rectangle height")
	pf.IntVarP(&a.rectCols, "rect-cols", "y", config.DefaultRectSize, "rectangle width")
	pf.IntVar(&a.workers, "workers", 0, "parallel workers for analysis (0 or 1 = sequential)")
	pf.StringVar(&a.format, "format", config.FormatText, "output format: text or yaml")
	pf.BoolVar(&a.color, "color", false, "highlight matrix cells")
	pf.IntVar(&a.cellWidth, "cell-width", config.DefaultCellWidth, "printed width of a matrix cell")
	pf.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.newAnalyzeCmd(),
		a.newLocateCmd(),
		a.newClustersCmd(),
		a.newSelectCmd(),
		a.newShowCmd(),
	)
	return root
}

// setup resolves configuration (file, then flag overrides), validates it
// and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if err := a.applyFlags(cmd, cfg); err != nil {
		return err
	}
	if cfg.Grid.Sources() == 0 {
		cfg.Grid.Sample = true
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, a.verbose)
	if err != nil {
		return err
	}
	a.runID = uuid.NewString()
	a.logger = logger.With(zap.String("run_id", a.runID), zap.String("command", cmd.Name()))
	a.cfg = cfg
	return nil
}

// applyFlags copies explicitly set flags over cfg. Any grid flag replaces
// the configured grid source.
func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed

	if changed("grid") || changed("sample") || changed("random") {
		cfg.Grid = config.GridConfig{}
	}
	if changed("grid") {
		cfg.Grid.Path = a.gridPath
	}
	if changed("sample") {
		cfg.Grid.Sample = a.sample
	}
	if changed("random") {
		rows, cols, err := parseSize(a.random)
		if err != nil {
			return fmt.Errorf("--random: %w", err)
		}
		cfg.Grid.Random = &config.RandomConfig{Rows: rows, Cols: cols, Density: config.DefaultDensity, Seed: 1}
	}
	if r := cfg.Grid.Random; r != nil {
		if changed("seed") {
			r.Seed = a.seed
		}
		if changed("density") {
			r.Density = a.density
		}
	}
	if changed("rect-rows") {
		cfg.Rect.Rows = a.rectRows
	}
	if changed("rect-cols") {
		cfg.Rect.Cols = a.rectCols
	}
	if changed("workers") {
		cfg.Workers = a.workers
	}
	if changed("format") {
		cfg.Output.Format = a.format
	}
	if changed("color") {
		cfg.Output.Color = a.color
	}
	if changed("cell-width") {
		cfg.Output.CellWidth = a.cellWidth
	}
	if changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	return nil
}

// parseSize parses "RxC" (also "R,C" or "R*C").
func parseSize(s string) (rows, cols int, err error) {
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == 'x' || r == ',' || r == '*'
	})
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("size %q: want RxC", s)
	}
	if rows, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if cols, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	return rows, cols, nil
}

// loadGrid materializes the configured grid and logs its shape.
func (a *app) loadGrid() (grid.Grid, error) {
	g, err := config.LoadGrid(a.cfg)
	if err != nil {
		return grid.Grid{}, err
	}
	a.logger.Info("grid loaded",
		zap.Int("rows", g.Rows()), zap.Int("cols", g.Cols()), zap.Int("ones", g.Ones()))
	return g, nil
}
