package output

import (
	"io"

	"github.com/quaverlabs/brainzgap/internal/cmd/table"
	"github.com/quaverlabs/brainzgap/pkg/scan"
)

// FormatArtists handles the common pattern of formatting artists for
// output. Table formats go through the table builders; anything else
// serializes the raw values.
func FormatArtists(w io.Writer, artists []scan.Artist, format Format) error {
	formatter := NewFormatter(format)

	var data any
	switch format {
	case FormatTable, FormatWide, "":
		data = table.ArtistsToTableData(artists, format == FormatWide)
	default:
		data = artists
	}

	return formatter.Format(w, data)
}

// FormatMembers handles the common pattern of formatting category
// members for output.
func FormatMembers(w io.Writer, members []scan.Member, format Format) error {
	formatter := NewFormatter(format)

	var data any
	switch format {
	case FormatTable, FormatWide, "":
		data = table.MembersToTableData(members)
	default:
		data = members
	}

	return formatter.Format(w, data)
}

// FormatResult handles formatting a full scan result. Table formats
// print the artist worklist; json and yaml emit the whole result
// including statistics and execution metadata.
func FormatResult(w io.Writer, r *scan.Result, format Format) error {
	formatter := NewFormatter(format)

	var data any
	switch format {
	case FormatTable, FormatWide, "":
		data = table.ArtistsToTableData(r.Artists, format == FormatWide)
	default:
		data = r
	}

	return formatter.Format(w, data)
}

// FormatAny formats any data type for output. Useful for commands with
// custom data structures.
func FormatAny(w io.Writer, data any, format Format) error {
	return NewFormatter(format).Format(w, data)
}
