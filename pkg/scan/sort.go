package scan

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByTitle sorts artists in place by title using the collation
// rules of the given language tag (e.g. "he"). Unknown tags fall back
// to plain lexicographic order.
func SortByTitle(artists []Artist, lang string) {
	tag, err := language.Parse(lang)
	if err != nil {
		sort.Slice(artists, func(i, j int) bool {
			return artists[i].Title < artists[j].Title
		})
		return
	}

	c := collate.New(tag)
	sort.Slice(artists, func(i, j int) bool {
		return c.CompareString(artists[i].Title, artists[j].Title) < 0
	})
}
