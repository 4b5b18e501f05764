// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// DefaultCellWidth is the column width of a matrix cell.
const DefaultCellWidth = 2

// Option customizes rendering.
type Option func(*config)

type config struct {
	cellWidth int
	color     bool
}

func newConfig(opts ...Option) config {
	cfg := config{cellWidth: DefaultCellWidth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCellWidth sets the printed width of each matrix cell. Panics if n < 1.
func WithCellWidth(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("render: WithCellWidth(%d)", n))
	}
	return func(c *config) {
		c.cellWidth = n
	}
}

// WithColor toggles lipgloss highlighting of non-zero cells.
func WithColor(on bool) Option {
	return func(c *config) {
		c.color = on
	}
}

// palette cycles through label colors; label k uses palette[(k-1)%len].
var palette = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#e57373")).Bold(true),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#4db6ac")).Bold(true),
}

var (
	zeroStyle = lipgloss.NewStyle().Faint(true)
	axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d6dae0"))
)

// cell formats v right-aligned to the configured width, styled if enabled.
func (c config) cell(v int) string {
	s := fmt.Sprintf("%*d", c.cellWidth, v)
	if !c.color {
		return s
	}
	if v == 0 {
		return zeroStyle.Render(s)
	}
	if v < 0 {
		v = -v
	}
	return palette[(v-1)%len(palette)].Render(s)
}

// axis styles axis decorations if enabled.
func (c config) axis(s string) string {
	if !c.color {
		return s
	}
	return axisStyle.Render(s)
}
