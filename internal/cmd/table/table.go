// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"github.com/quaverlabs/brainzgap/pkg/scan"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents data formatted for table output.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// ArtistsToTableData converts scan artists to table format. Wide mode
// adds the page ID and failure reason columns.
func ArtistsToTableData(artists []scan.Artist, wide bool) Data {
	headers := []string{"#", "TITLE", "WIKIDATA", "STATUS"}
	if wide {
		headers = append(headers, "PAGE ID", "REASON")
	}

	rows := make([][]string, 0, len(artists))
	for i, a := range artists {
		row := []string{
			strconv.Itoa(i + 1),
			a.Title,
			entityCell(a.Entity),
			a.Entity.State.String(),
		}

		if wide {
			reason := a.Entity.Reason
			if reason == "" {
				reason = "-"
			}
			row = append(row, strconv.FormatInt(a.PageID, 10), reason)
		}

		rows = append(rows, row)
	}

	alignment := []Align{AlignRight, AlignDefault, AlignDefault, AlignDefault}
	if wide {
		alignment = append(alignment, AlignRight, AlignDefault)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// entityCell renders the Wikidata column for an artist.
func entityCell(link scan.EntityLink) string {
	switch {
	case link.Linked():
		return link.ID
	case link.Failed():
		return "error"
	default:
		return "-"
	}
}

// MembersToTableData converts category members to table format.
func MembersToTableData(members []scan.Member) Data {
	headers := []string{"#", "TITLE", "PAGE ID"}

	rows := make([][]string, 0, len(members))
	for i, m := range members {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			m.Title,
			strconv.FormatInt(m.PageID, 10),
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignDefault, AlignRight},
	}
}

// StatsToTableData converts scan statistics to a key-value table.
func StatsToTableData(stats scan.Stats) Data {
	return Data{
		Headers: []string{"METRIC", "COUNT"},
		Rows: [][]string{
			{"Members", strconv.Itoa(stats.Members)},
			{"Missing", strconv.Itoa(stats.Missing)},
			{"Unlinked", strconv.Itoa(stats.Unlinked)},
			{"Errors", strconv.Itoa(stats.Errors)},
			{"With claim", strconv.Itoa(stats.WithClaim)},
		},
		ColumnAlignment: []Align{AlignDefault, AlignRight},
	}
}
