package cli

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/neurolab/eegpos/pkg/errors"
	"github.com/neurolab/eegpos/pkg/montage"
)

// namesCommand creates the names command listing electrode labels.
func (c *CLI) namesCommand() *cobra.Command {
	var (
		density     string
		showAliases bool
	)

	cmd := &cobra.Command{
		Use:   "names",
		Short: "List electrode names for a placement system",
		Long: `List electrode names for a placement system.

Each label is decomposed into its row, column and hemisphere. Use
--aliases to list the accepted synonyms (T3, M1, A2, ...) and the
canonical labels they resolve to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showAliases {
				printAliasTable()
				return nil
			}
			return printNameTable(fallback(density, c.Config.Density))
		},
	}

	cmd.Flags().StringVarP(&density, "density", "d", "", "system density: 10-20 (default), 10-10, 10-05")
	cmd.Flags().BoolVar(&showAliases, "aliases", false, "list label aliases instead")

	return cmd
}

func printNameTable(density string) error {
	if density == "" {
		density = string(montage.Density1020)
	}
	d, err := montage.ParseDensity(density)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDensity, err, "invalid density %q", density)
	}
	labels, err := montage.SystemLabels(d)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		parsed, err := montage.ParseLabel(label)
		if err != nil {
			return err
		}
		rows = append(rows, []string{label, parsed.Row, parsed.Column, parsed.Hemisphere.String()})
	}

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s system", d)))
	fmt.Println(renderTable([]string{"Label", "Row", "Column", "Hemisphere"}, rows))
	printDetail("%d electrodes · landmarks: %v", len(labels), montage.Landmarks())
	return nil
}

func printAliasTable() {
	aliases := montage.Aliases()
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, aliases[name]})
	}

	fmt.Println(StyleTitle.Render("Aliases"))
	fmt.Println(renderTable([]string{"Alias", "Canonical"}, rows))
}

func renderTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorGray)
		}).
		Render()
}
