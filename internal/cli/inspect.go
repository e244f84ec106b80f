package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackview/pkg/pipeline"
	"github.com/matzehuels/stackview/pkg/stackup"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// inspectCommand creates the inspect command for interactive stack browsing.
func (c *CLI) inspectCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "inspect [stack.toml]",
		Short: "Browse a stackup interactively",
		Long: `Browse a stackup interactively.

The inspect command opens a terminal UI listing every layer of the stack.
Navigate with the arrow keys to see each layer's material, kind, thickness
and tolerance, plus its share of the total board thickness.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runInspect loads the stack and starts the TUI.
func (c *CLI) runInspect(ctx context.Context, input string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	stack, err := runner.Load(ctx, pipeline.Options{StackPath: input, Logger: c.Logger})
	if err != nil {
		return fmt.Errorf("load stack %s: %w", input, err)
	}
	if len(stack.Layers) == 0 {
		printInfo("Stack is empty")
		return nil
	}

	model := newStackModel(stack)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// stackModel is the bubbletea model for interactive layer browsing.
type stackModel struct {
	stack  *stackup.Stack
	cursor int
	height int
	offset int
}

func newStackModel(s *stackup.Stack) stackModel {
	return stackModel{stack: s, height: 15}
}

func (m stackModel) Init() tea.Cmd {
	return nil
}

func (m stackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.stack.Layers)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "home", "g":
			m.cursor = 0
			m.offset = 0
		case "end", "G":
			m.cursor = len(m.stack.Layers) - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 12
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m stackModel) View() string {
	var b strings.Builder

	title := m.stack.Name
	if title == "" {
		title = "Stackup"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.stack.Layers) {
		end = len(m.stack.Layers)
	}

	for i := m.offset; i < end; i++ {
		l := m.stack.Layers[i]
		line := fmt.Sprintf("%-24s %-12s %s",
			truncate(l.Name, 24), l.Kind.String(), stackup.FormatThickness(l.ThicknessMM))
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.detailView())
	b.WriteString("\n")

	return b.String()
}

// detailView renders the detail box for the selected layer.
func (m stackModel) detailView() string {
	l := m.stack.Layers[m.cursor]

	total := m.stack.TotalThicknessMM()
	share := "n/a"
	if total > 0 {
		share = fmt.Sprintf("%.1f%%", 100*l.ThicknessMM/total)
	}

	material := l.Material
	if material == "" {
		material = "unspecified"
	}

	lines := []string{
		StyleHighlight.Render(l.Name),
		fmt.Sprintf("Material   %s", material),
		fmt.Sprintf("Kind       %s", l.Kind),
		fmt.Sprintf("Thickness  %s ±%s",
			stackup.FormatThickness(l.ThicknessMM),
			stackup.FormatThickness(stackup.Tolerance(l.ThicknessMM))),
		fmt.Sprintf("Share      %s of %s", share, stackup.FormatThickness(total)),
	}
	return detailBoxStyle.Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
