package command

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arloliu/msbt"
	"github.com/arloliu/msbt/compress"
	"github.com/arloliu/msbt/format"
	"github.com/arloliu/msbt/internal/config"
	"github.com/arloliu/msbt/internal/hash"
	"github.com/arloliu/msbt/section"
)

// sectionSummary describes one section. Attribute sections carry no entries.
type sectionSummary struct {
	Tag     string `json:"tag"`
	Entries int    `json:"entries,omitempty"`
}

type textSummary struct {
	Index       int    `json:"index"`
	Length      int    `json:"length"`
	Fingerprint string `json:"fingerprint"`
}

type inspectReport struct {
	File        string           `json:"file"`
	Compression string           `json:"compression"`
	Size        int              `json:"size"`
	ByteOrder   string           `json:"byteOrder"`
	Encoding    string           `json:"encoding"`
	Sections    []sectionSummary `json:"sections"`
	Buckets     int              `json:"buckets"`
	Labels      int              `json:"labels"`
	Texts       []textSummary    `json:"texts"`
}

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "describe the header and sections of a bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runInspect(args[0])
		},
	}
}

func (a *app) runInspect(path string) error {
	report, err := a.inspect(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	switch a.cfg.Output {
	case config.OutputJSON:
		return writeJSON(a.out, report)
	case config.OutputTable:
		t := newTable(a.out, table.Row{"Property", "Value"})
		for _, row := range report.properties() {
			t.AppendRow(row)
		}
		t.Render()

		t = newTable(a.out, table.Row{"Index", "Length", "Fingerprint"})
		for _, ts := range report.Texts {
			t.AppendRow(table.Row{ts.Index, ts.Length, ts.Fingerprint})
		}
		t.Render()
	default:
		for _, row := range report.properties() {
			if _, err := fmt.Fprintf(a.out, "%s: %v\n", row[0], row[1]); err != nil {
				return err
			}
		}
		for _, ts := range report.Texts {
			if _, err := fmt.Fprintf(a.out, "text %d: %d chars, %s\n", ts.Index, ts.Length, ts.Fingerprint); err != nil {
				return err
			}
		}
	}

	return nil
}

// inspect validates the whole bundle first, then walks its sections in file
// order to describe the layout.
func (a *app) inspect(path string) (*inspectReport, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, ctype, err := compress.Decompress(raw)
	if err != nil {
		return nil, err
	}

	if _, err := msbt.ParseBytes(data, msbt.WithDecompression(false), msbt.WithLogger(a.logger)); err != nil {
		return nil, err
	}

	dec, err := section.NewDecoder(bytes.NewReader(data), section.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	hdr, err := dec.ReadHeader()
	if err != nil {
		return nil, err
	}

	report := &inspectReport{
		File:        path,
		Compression: ctype.String(),
		Size:        len(data),
		ByteOrder:   hdr.ByteOrder.String(),
		Encoding:    hdr.Encoding.String(),
		Sections:    make([]sectionSummary, 0, hdr.SectionCount),
	}

	for range hdr.SectionCount {
		s, err := dec.Next()
		if err != nil {
			return nil, err
		}

		summary := sectionSummary{Tag: s.Tag().String()}
		switch v := s.(type) {
		case *section.LabelSection:
			summary.Entries = v.BucketCount()
			report.Buckets = v.BucketCount()
			report.Labels = v.Len()
		case *section.TextSection:
			summary.Entries = v.Len()
			report.Texts = report.Texts[:0]
			for i, text := range v.Texts() {
				report.Texts = append(report.Texts, textSummary{
					Index:       i,
					Length:      len([]rune(text)),
					Fingerprint: fmt.Sprintf("%016x", hash.Fingerprint(text)),
				})
			}
		}
		report.Sections = append(report.Sections, summary)
	}

	return report, nil
}

func (r *inspectReport) properties() []table.Row {
	tags := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		if s.Tag == format.TagAttribute.String() {
			tags = append(tags, s.Tag)
			continue
		}
		tags = append(tags, fmt.Sprintf("%s(%d)", s.Tag, s.Entries))
	}

	return []table.Row{
		{"file", r.File},
		{"compression", r.Compression},
		{"size", r.Size},
		{"byte order", r.ByteOrder},
		{"encoding", r.Encoding},
		{"sections", tags},
		{"buckets", r.Buckets},
		{"labels", r.Labels},
		{"texts", len(r.Texts)},
	}
}
