package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/courtline/milestones/internal/domain/milestone"
)

// PrintSummaryTable renders per-category counts in registry order, skipping
// empty categories.
func PrintSummaryTable(w io.Writer, results *milestone.Results) {
	summary := results.Summary()

	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("CATEGORY", "DESCRIPTION", "COUNT")
	for _, cat := range milestone.Categories {
		count := summary[string(cat)]
		if count == 0 {
			continue
		}
		table.Append(string(cat), milestone.Describe(cat), strconv.Itoa(count))
	}
	table.Render()

	fmt.Fprintf(w, "\nTotal milestones: %d\n", results.Count())
}

// PrintPlayerTable renders one player's milestones with game context.
func PrintPlayerTable(w io.Writer, name string, entries []milestone.Entry) {
	if len(entries) == 0 {
		fmt.Fprintf(w, "No milestones recorded for %s\n", name)
		return
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("DATE", "GAME", "TEAM", "OPP", "MILESTONE", "DETAIL")
	for _, entry := range entries {
		table.Append(
			entry.DateYYYYMMDD,
			entry.GameID,
			entry.Team,
			entry.Opponent,
			entry.MilestoneType,
			entry.Detail,
		)
	}
	table.Render()

	fmt.Fprintf(w, "\n%s: %d milestones\n", entries[0].Player, len(entries))
}
