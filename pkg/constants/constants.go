// Package constants provides shared constants used throughout the brainzgap
// codebase. This includes timeouts, pacing values, upstream endpoints, file
// permissions, and other configuration values that should be consistent
// across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the
	// Wikipedia and Wikidata APIs
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// ScanTimeout bounds a full category scan; large categories at the
	// default pause rate stay well inside it
	ScanTimeout = 2 * time.Hour
)

// Pacing constants govern how the pipeline spaces its upstream requests
const (
	// DefaultPause is the minimum interval enforced between consecutive
	// pipeline items. A plain spacing gate, not a token bucket: the
	// upstream APIs are public and the only goal is to not hammer them.
	DefaultPause = 100 * time.Millisecond

	// ProgressStep is how many items are processed between progress reports
	ProgressStep = 10

	// PreviewCount is how many result entries the CLI prints after a scan
	PreviewCount = 5
)

// Scan defaults used when no configuration overrides them
const (
	// DefaultCategory is the category scanned when none is configured.
	// The name carries no namespace prefix.
	DefaultCategory = "זמרים_ישראלים"

	// DefaultLanguage is the Wikipedia language edition scanned by default
	DefaultLanguage = "he"

	// CategoryPageLimit is the page size requested from the category
	// members listing; "max" asks the API for its per-request maximum
	CategoryPageLimit = "max"

	// MusicBrainzArtistProperty is the Wikidata property that links an
	// entity to its MusicBrainz artist record
	MusicBrainzArtistProperty = "P434"

	// ArticleNamespace is the MediaWiki namespace of plain articles;
	// category members in any other namespace are discarded
	ArticleNamespace = 0
)

// Upstream endpoints and link bases
const (
	// WikipediaAPIFormat builds the per-language MediaWiki API endpoint
	WikipediaAPIFormat = "https://%s.wikipedia.org/w/api.php"

	// WikipediaArticleFormat builds the per-language article base URL;
	// the percent-encoded title is appended
	WikipediaArticleFormat = "https://%s.wikipedia.org/wiki/"

	// WikidataAPIURL is the Wikidata API endpoint (fixed host)
	WikidataAPIURL = "https://www.wikidata.org/w/api.php"

	// WikidataEntityURL is the canonical entity page base; the entity ID
	// is appended
	WikidataEntityURL = "https://www.wikidata.org/wiki/"

	// MusicBrainzSearchURL is the search endpoint used for the pre-filled
	// "add this artist" links in the report
	MusicBrainzSearchURL = "https://musicbrainz.org/search"
)

// Output constants
const (
	// ReportFileSuffix is appended to the category name to form the
	// default report file name
	ReportFileSuffix = "_without_musicbrainz.html"

	// MarkdownFileSuffix is the suffix of the optional Markdown worklist
	MarkdownFileSuffix = "_without_musicbrainz.md"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// UserAgent identifies the tool to the Wikimedia APIs, per their
// etiquette guidelines for automated clients.
const UserAgent = "brainzgap/1.0 (+https://github.com/quaverlabs/brainzgap)"
