package command

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	warnColor    = color.New(color.FgYellow)
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)

	cfgs := make([]table.ColumnConfig, len(header))
	for i := range header {
		cfgs[i] = table.ColumnConfig{Number: i + 1, VAlign: text.VAlignMiddle, AlignHeader: text.AlignCenter}
	}
	t.SetColumnConfigs(cfgs)

	return t
}
