// Package table builds textual stackup tables, the non-graphical
// counterpart to the cross-section diagram. Three presets trade detail
// for width so the table fits both wide terminals and narrow reports.
package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stackview/pkg/stackup"
)

// Preset selects a column set.
type Preset string

// Table presets.
const (
	// PresetDetailed shows every field including tolerances.
	PresetDetailed Preset = "detailed"

	// PresetCompact shows name, kind and thickness.
	PresetCompact Preset = "compact"

	// PresetMinimal shows name and thickness only.
	PresetMinimal Preset = "minimal"
)

// ParsePreset parses a preset name.
func ParsePreset(s string) (Preset, error) {
	switch Preset(strings.ToLower(strings.TrimSpace(s))) {
	case PresetDetailed:
		return PresetDetailed, nil
	case PresetCompact:
		return PresetCompact, nil
	case PresetMinimal:
		return PresetMinimal, nil
	default:
		return "", fmt.Errorf("unknown table preset %q (use detailed, compact or minimal)", s)
	}
}

// minColumnWidth keeps narrow columns readable.
const minColumnWidth = 4

// cellPadding is the space added around each cell's content.
const cellPadding = 2

// Table is a rendered-ready stackup table.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Build constructs the table for a stack with the given preset.
func Build(s *stackup.Stack, preset Preset) *Table {
	t := &Table{Title: s.Name}

	switch preset {
	case PresetDetailed:
		t.Headers = []string{"#", "Name", "Material", "Kind", "Thickness", "Tolerance"}
		for i, l := range s.Layers {
			t.Rows = append(t.Rows, []string{
				fmt.Sprintf("%d", i+1),
				l.Name,
				l.Material,
				l.Kind.String(),
				stackup.FormatThickness(l.ThicknessMM),
				"±" + stackup.FormatThickness(stackup.Tolerance(l.ThicknessMM)),
			})
		}
	case PresetCompact:
		t.Headers = []string{"Name", "Kind", "Thickness"}
		for _, l := range s.Layers {
			t.Rows = append(t.Rows, []string{
				l.Name,
				l.Kind.String(),
				stackup.FormatThickness(l.ThicknessMM),
			})
		}
	default: // PresetMinimal
		t.Headers = []string{"Name", "Thickness"}
		for _, l := range s.Layers {
			t.Rows = append(t.Rows, []string{
				l.Name,
				stackup.FormatThickness(l.ThicknessMM),
			})
		}
	}

	return t
}

// ColumnWidths returns the display width for each column: the longest
// cell plus padding, floored at the minimum width.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		widths[i] += cellPadding
		if widths[i] < minColumnWidth {
			widths[i] = minColumnWidth
		}
	}
	return widths
}

var (
	styleTitle  = lipgloss.NewStyle().Bold(true)
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleRule   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render produces a lipgloss-styled terminal table.
func (t *Table) Render() string {
	widths := t.ColumnWidths()

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(styleTitle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(styleHeader.Render(formatRow(t.Headers, widths)))
	b.WriteString("\n")
	b.WriteString(styleRule.Render(rule(widths)))
	b.WriteString("\n")

	for _, row := range t.Rows {
		b.WriteString(formatRow(row, widths))
		b.WriteString("\n")
	}

	return b.String()
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = pad(cell, widths[i])
	}
	return strings.TrimRight(strings.Join(parts, ""), " ")
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func rule(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	return strings.Repeat("─", total-cellPadding)
}
