package report

import (
	"fmt"
	"net/url"

	"github.com/quaverlabs/brainzgap/pkg/constants"
)

// ArticleURL returns the article page URL on the given language edition.
// The title is percent-encoded the way MediaWiki expects, with slashes
// kept intact for subpage titles.
func ArticleURL(language, title string) string {
	escaped := (&url.URL{Path: title}).EscapedPath()
	return fmt.Sprintf(constants.WikipediaArticleFormat, language) + escaped
}

// EntityURL returns the canonical Wikidata page for an entity ID.
func EntityURL(entityID string) string {
	return constants.WikidataEntityURL + entityID
}

// SearchURL returns a MusicBrainz artist search pre-filled with the
// artist name, ready for an editor to confirm and add the ID.
func SearchURL(name string) string {
	params := url.Values{}
	params.Set("query", name)
	params.Set("type", "artist")
	params.Set("method", "indexed")
	return constants.MusicBrainzSearchURL + "?" + params.Encode()
}
