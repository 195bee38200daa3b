package command

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arloliu/msbt/catalog"
	"github.com/arloliu/msbt/internal/config"
)

func newDiffCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "list labels added, removed or changed between two bundles",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runDiff(args[0], args[1])
		},
	}
}

func (a *app) runDiff(oldPath, newPath string) error {
	oldCatalog, err := a.loadCatalog(oldPath)
	if err != nil {
		return err
	}
	newCatalog, err := a.loadCatalog(newPath)
	if err != nil {
		return err
	}

	changes := catalog.Diff(oldCatalog, newCatalog)

	switch a.cfg.Output {
	case config.OutputJSON:
		if changes == nil {
			changes = []catalog.Change{}
		}

		return writeJSON(a.out, changes)
	case config.OutputTable:
		t := newTable(a.out, table.Row{"Change", "Label", "Old", "New"})
		for _, c := range changes {
			t.AppendRow(table.Row{c.Kind, c.Label, c.OldText, c.NewText})
		}
		t.Render()
	default:
		for _, c := range changes {
			var err error
			switch c.Kind {
			case catalog.Added:
				_, err = addedColor.Fprintf(a.out, "+ %s: %s\n", c.Label, c.NewText)
			case catalog.Removed:
				_, err = removedColor.Fprintf(a.out, "- %s: %s\n", c.Label, c.OldText)
			default:
				_, err = warnColor.Fprintf(a.out, "~ %s: %s -> %s\n", c.Label, c.OldText, c.NewText)
			}
			if err != nil {
				return err
			}
		}
	}

	a.logger.Info().Int("changes", len(changes)).Msg("diff complete")

	return nil
}
