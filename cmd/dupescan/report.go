package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	dupescan "dupescan/pkg"
)

// renderReport writes the human-readable duplicate report: a summary table of
// all groups followed by the member paths of each group.
func renderReport(w io.Writer, groups []dupescan.DuplicateGroup) error {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No duplicates found.")
		return nil
	}

	fmt.Fprintf(w, "Found %d duplicate group(s):\n\n", len(groups))

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Hash", "Files", "Total size"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for i, group := range groups {
		tw.AppendRow(table.Row{
			i + 1,
			shortHash(group.Hash),
			group.Count,
			humanize.IBytes(uint64(group.TotalSize)),
		})
	}
	fmt.Fprintln(w, tw.Render())

	for i, group := range groups {
		fmt.Fprintf(w, "\nGroup %d  %s\n", i+1, group.Hash)
		for _, path := range group.Files {
			fmt.Fprintf(w, "  %s\n", path)
		}
	}

	return nil
}

// renderJSON writes the group slice as indented JSON. An empty result is an
// empty array, not null, so consumers can always range over it.
func renderJSON(w io.Writer, groups []dupescan.DuplicateGroup) error {
	if groups == nil {
		groups = []dupescan.DuplicateGroup{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(groups)
}

// shortHash abbreviates a digest for the summary table; the full value is
// printed in the per-group listing.
func shortHash(hash string) string {
	if len(hash) <= 16 {
		return hash
	}
	return hash[:16] + "…"
}
