package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quaverlabs/brainzgap/pkg/scan"
)

func TestSortByTitle(t *testing.T) {
	t.Run("hebrew collation", func(t *testing.T) {
		artists := []scan.Artist{
			{Title: "שלמה ארצי"},
			{Title: "אביב גפן"},
			{Title: "ריטה"},
		}

		scan.SortByTitle(artists, "he")

		assert.Equal(t, "אביב גפן", artists[0].Title)
		assert.Equal(t, "ריטה", artists[1].Title)
		assert.Equal(t, "שלמה ארצי", artists[2].Title)
	})

	t.Run("unknown language falls back to lexicographic", func(t *testing.T) {
		artists := []scan.Artist{
			{Title: "charlie"},
			{Title: "alpha"},
			{Title: "bravo"},
		}

		scan.SortByTitle(artists, "not a tag")

		assert.Equal(t, "alpha", artists[0].Title)
		assert.Equal(t, "bravo", artists[1].Title)
		assert.Equal(t, "charlie", artists[2].Title)
	})

	t.Run("empty slice", func(t *testing.T) {
		assert.NotPanics(t, func() {
			scan.SortByTitle(nil, "he")
		})
	})
}
