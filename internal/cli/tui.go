package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/neurolab/eegpos/pkg/errors"
	"github.com/neurolab/eegpos/pkg/montage"
	"github.com/neurolab/eegpos/pkg/sphere"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand creates the tui command for interactive electrode browsing.
func (c *CLI) tuiCommand() *cobra.Command {
	var (
		density string
		equator string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse electrode positions interactively",
		Long: `Browse electrode positions interactively.

Opens a scrollable, filterable table of all electrodes in the chosen
system with their 3D coordinates and 2D projection. Type to filter by
label prefix; press esc to clear the filter and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(fallback(density, c.Config.Density), fallback(equator, c.Config.Equator))
		},
	}

	cmd.Flags().StringVarP(&density, "density", "d", "", "system density: 10-20 (default), 10-10, 10-05")
	cmd.Flags().StringVarP(&equator, "equator", "e", "", "equator convention: Nz-T10-Iz-T9 (default), Fpz-T8-Oz-T7")

	return cmd
}

// runTUI computes the system and starts the browser program.
func (c *CLI) runTUI(density, equator string) error {
	if density == "" {
		density = string(montage.Density1020)
	}
	d, err := montage.ParseDensity(density)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDensity, err, "invalid density %q", density)
	}
	eq := montage.EquatorNz
	if equator != "" {
		eq, err = montage.ParseEquator(equator)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidEquator, err, "invalid equator %q", equator)
		}
	}

	sys, err := montage.Compute(montage.Options{Density: d, Equator: eq, Sort: true})
	if err != nil {
		return err
	}
	flat, err := sys.Project(sphere.DefaultPole)
	if err != nil {
		return err
	}

	model := newBrowserModel(sys, flat)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// =============================================================================
// browserModel - Interactive electrode table
// =============================================================================

// electrodeRow pairs a 3D position with its 2D projection for display.
type electrodeRow struct {
	Label string
	Pos   sphere.Point
	X, Y  float64
}

// browserModel is the bubbletea model for the electrode browser.
type browserModel struct {
	Title  string
	Rows   []electrodeRow
	Filter string
	Cursor int
	Height int
	Offset int
}

// newBrowserModel builds the browser from a computed system and its
// projection. Both slices share the system's label order.
func newBrowserModel(sys *montage.System, flat []montage.FlatPoint) browserModel {
	points := sys.Points()
	rows := make([]electrodeRow, len(points))
	for i, p := range points {
		rows[i] = electrodeRow{
			Label: p.Label,
			Pos:   p.Point,
			X:     flat[i].X,
			Y:     flat[i].Y,
		}
	}
	return browserModel{
		Title:  fmt.Sprintf("%s · %s", sys.Density(), sys.Equator()),
		Rows:   rows,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

// visible returns the rows matching the current filter.
func (m browserModel) visible() []electrodeRow {
	if m.Filter == "" {
		return m.Rows
	}
	needle := strings.ToLower(m.Filter)
	var out []electrodeRow
	for _, r := range m.Rows {
		if strings.HasPrefix(strings.ToLower(r.Label), needle) {
			out = append(out, r)
		}
	}
	return out
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Filter != "" {
				m.Filter = ""
				m.Cursor = 0
				m.Offset = 0
				return m, nil
			}
			return m, tea.Quit
		case "up", "ctrl+k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "ctrl+j":
			if m.Cursor < len(m.visible())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "backspace":
			if m.Filter != "" {
				m.Filter = m.Filter[:len(m.Filter)-1]
				m.Cursor = 0
				m.Offset = 0
			}
		default:
			if len(msg.String()) == 1 {
				m.Filter += msg.String()
				m.Cursor = 0
				m.Offset = 0
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  type to filter  esc clear  q quit"))
	b.WriteString("\n\n")

	visible := m.visible()
	end := m.Offset + m.Height
	if end > len(visible) {
		end = len(visible)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := visible[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			r.Label,
			fmt.Sprintf("%8.4f", r.Pos.X),
			fmt.Sprintf("%8.4f", r.Pos.Y),
			fmt.Sprintf("%8.4f", r.Pos.Z),
			fmt.Sprintf("%8.4f", r.X),
			fmt.Sprintf("%8.4f", r.Y),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Label", "X", "Y", "Z", "2D X", "2D Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	status := fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(visible))
	if m.Filter != "" {
		status += "  filter: " + m.Filter
	}
	b.WriteString(listDimStyle.Render(status))

	return b.String()
}
