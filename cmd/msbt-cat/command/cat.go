package command

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arloliu/msbt"
	"github.com/arloliu/msbt/catalog"
	"github.com/arloliu/msbt/internal/config"
)

func newCatCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file>",
		Short: "print every label with its text",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runCat(args[0])
		},
	}
}

func (a *app) runCat(path string) error {
	c, err := a.loadCatalog(path)
	if err != nil {
		return err
	}

	entries := c.Entries()
	if !a.cfg.Sort {
		slices.SortStableFunc(entries, func(x, y catalog.Entry) int {
			return cmp.Compare(x.Index, y.Index)
		})
	}

	switch a.cfg.Output {
	case config.OutputJSON:
		return writeJSON(a.out, c.Map())
	case config.OutputTable:
		t := newTable(a.out, table.Row{"Label", "Index", "Text"})
		for _, e := range entries {
			t.AppendRow(table.Row{e.Label, e.Index, e.Text})
		}
		t.Render()
	default:
		for _, e := range entries {
			if _, err := fmt.Fprintf(a.out, "%s: %s\n", e.Label, e.Text); err != nil {
				return err
			}
		}
	}

	return nil
}

// loadCatalog parses the bundle at path and reports unresolved labels.
func (a *app) loadCatalog(path string) (*catalog.Catalog, error) {
	msg, err := msbt.Open(path, msbt.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c, err := catalog.Build(msg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for _, w := range c.Warnings() {
		a.logger.Warn().
			Str("file", path).
			Str("label", w.Label).
			Uint32("index", w.Index).
			Int("texts", w.Available).
			Msg("label index out of range")
		warnColor.Fprintf(a.errOut, "warning: %s\n", w)
	}

	for _, name := range c.Duplicates() {
		a.logger.Warn().Str("file", path).Str("label", name).Msg("duplicate label, last occurrence kept")
	}

	a.logger.Debug().Str("file", path).Int("entries", c.Len()).Msg("catalog built")

	return c, nil
}
