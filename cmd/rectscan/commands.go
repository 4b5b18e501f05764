// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rectscan/grid"
	"github.com/katalvlaran/rectscan/internal/config"
	"github.com/katalvlaran/rectscan/render"
	"github.com/katalvlaran/rectscan/submatrix"
)

// gridInfo describes the analysed grid in YAML output.
type gridInfo struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
	Ones int `yaml:"ones"`
}

func infoOf(g grid.Grid) gridInfo {
	return gridInfo{Rows: g.Rows(), Cols: g.Cols(), Ones: g.Ones()}
}

// writeYAML encodes v to w with two-space indentation.
func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func (a *app) renderOpts() []render.Option {
	return []render.Option{
		render.WithCellWidth(a.cfg.Output.CellWidth),
		render.WithColor(a.cfg.Output.Color),
	}
}

func (a *app) yamlOutput() bool {
	return a.cfg.Output.Format == config.FormatYAML
}

// newAnalyzeCmd runs the full pipeline.
func (a *app) newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Locate, cluster and select in one run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid()
			if err != nil {
				return err
			}
			start := time.Now()
			rep, err := submatrix.Analyze(cmd.Context(), g, a.cfg.Dims(),
				submatrix.WithWorkers(a.cfg.Workers),
				submatrix.WithLogger(a.logger))
			if err != nil {
				return err
			}
			a.logger.Info("analysis complete",
				zap.Stringer("rect", rep.Dims),
				zap.Int("candidates", len(rep.All)),
				zap.Int("non_overlapping", len(rep.NonOverlapping)),
				zap.Int("clusters", len(rep.Clusters)),
				zap.Duration("elapsed", time.Since(start)))

			out := cmd.OutOrStdout()
			if a.yamlOutput() {
				return writeYAML(out, struct {
					Grid             gridInfo `yaml:"grid"`
					submatrix.Report `yaml:",inline"`
				}{infoOf(g), rep})
			}
			return render.Report(out, g, rep, a.renderOpts()...)
		},
	}
}

// newLocateCmd lists candidate corners.
func (a *app) newLocateCmd() *cobra.Command {
	var nonOverlap bool
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "List top-left corners of all-ones rectangles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("non-overlap") {
				a.cfg.SuppressOverlap = nonOverlap
			}
			g, err := a.loadGrid()
			if err != nil {
				return err
			}
			d := a.cfg.Dims()
			corners, err := submatrix.Locate(g, d, a.cfg.SuppressOverlap)
			if err != nil {
				return err
			}
			a.logger.Info("located",
				zap.Stringer("rect", d),
				zap.Bool("suppress_overlap", a.cfg.SuppressOverlap),
				zap.Int("count", len(corners)))

			out := cmd.OutOrStdout()
			if a.yamlOutput() {
				return writeYAML(out, struct {
					Grid            gridInfo          `yaml:"grid"`
					Dims            submatrix.Dims    `yaml:"dims"`
					SuppressOverlap bool              `yaml:"suppress_overlap"`
					Count           int               `yaml:"count"`
					Coords          []submatrix.Coord `yaml:"coords,flow"`
				}{infoOf(g), d, a.cfg.SuppressOverlap, len(corners), corners})
			}
			heading := fmt.Sprintf("All top-left coordinates of %s submatrices full of 1s:", d)
			if a.cfg.SuppressOverlap {
				heading = fmt.Sprintf("Non-overlapping top-left coordinates of %s submatrices (maximal set):", d)
			}
			return render.Coords(out, heading, corners)
		},
	}
	cmd.Flags().BoolVar(&nonOverlap, "non-overlap", false, "keep only a greedy non-overlapping set")
	return cmd
}

// clustersFor locates every candidate and clusters them.
func (a *app) clustersFor(g grid.Grid) ([][]submatrix.Coord, error) {
	all, err := submatrix.Locate(g, a.cfg.Dims(), false)
	if err != nil {
		return nil, err
	}
	clusters := submatrix.Clusters(all)
	a.logger.Info("clustered", zap.Int("candidates", len(all)), zap.Int("clusters", len(clusters)))
	return clusters, nil
}

// newClustersCmd lists adjacency clusters of candidate corners.
func (a *app) newClustersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clusters",
		Short: "Group candidate corners into unit-step adjacency clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid()
			if err != nil {
				return err
			}
			clusters, err := a.clustersFor(g)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.yamlOutput() {
				return writeYAML(out, struct {
					Grid     gridInfo            `yaml:"grid"`
					Dims     submatrix.Dims      `yaml:"dims"`
					Clusters [][]submatrix.Coord `yaml:"clusters,flow"`
				}{infoOf(g), a.cfg.Dims(), clusters})
			}
			return render.Clusters(out, clusters)
		},
	}
}

// newSelectCmd picks non-overlapping rectangles per cluster.
func (a *app) newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select",
		Short: "Pick non-overlapping rectangles inside each cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid()
			if err != nil {
				return err
			}
			clusters, err := a.clustersFor(g)
			if err != nil {
				return err
			}
			sels, err := submatrix.SelectPerCluster(clusters, a.cfg.Dims())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.yamlOutput() {
				return writeYAML(out, struct {
					Grid       gridInfo              `yaml:"grid"`
					Dims       submatrix.Dims        `yaml:"dims"`
					Selections []submatrix.Selection `yaml:"selections"`
				}{infoOf(g), a.cfg.Dims(), sels})
			}
			return render.Selections(out, sels)
		},
	}
}

// newShowCmd prints the grid, optionally overlaid with the greedy selection.
func (a *app) newShowCmd() *cobra.Command {
	var overlay bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the grid with row and column axes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			title := fmt.Sprintf("Original Binary Matrix (%dx%d):", g.Rows(), g.Cols())
			if err := render.Grid(out, title, g, a.renderOpts()...); err != nil {
				return err
			}
			if !overlay {
				return nil
			}
			d := a.cfg.Dims()
			non, err := submatrix.Locate(g, d, true)
			if err != nil {
				return err
			}
			return render.Matrix(out, fmt.Sprintf("Non-overlapping %s coverage:", d),
				render.Overlay(g, non, d), a.renderOpts()...)
		},
	}
	cmd.Flags().BoolVar(&overlay, "overlay", false, "also print the greedy non-overlapping coverage")
	return cmd
}
