package brainzgap

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/quaverlabs/brainzgap/pkg/constants"
	"github.com/quaverlabs/brainzgap/pkg/errors"
	"github.com/quaverlabs/brainzgap/pkg/scan"
	"github.com/quaverlabs/brainzgap/pkg/throttle"
)

// options holds the resolved configuration of a Scanner. Every field
// has a default; Option functions override them.
type options struct {
	category  string
	language  string
	property  string
	pause     time.Duration
	timeout   time.Duration
	userAgent string

	// Endpoint overrides, used by tests to point at local servers.
	wikipediaURL string
	wikidataURL  string
	httpClient   *http.Client

	gate     throttle.Gate
	progress scan.ProgressFunc
	logger   *zerolog.Logger

	// Injected sources. Any nil field falls back to the HTTP clients.
	lister   CategoryLister
	resolver scan.EntityResolver
	checker  scan.ClaimChecker
}

// defaultOptions returns the configuration used when no Option
// overrides it: the Hebrew Wikipedia singers category checked for the
// MusicBrainz artist property.
func defaultOptions() *options {
	return &options{
		category: constants.DefaultCategory,
		language: constants.DefaultLanguage,
		property: constants.MusicBrainzArtistProperty,
		pause:    constants.DefaultPause,
		timeout:  constants.ScanTimeout,
	}
}

// Option is a function that configures a Scanner instance.
type Option func(*options) error

// WithCategory sets the category to scan. The name may carry a
// namespace prefix ("Category:" or its localized form); a bare name
// gets the prefix added when the API is called.
func WithCategory(category string) Option {
	return func(o *options) error {
		if category == "" {
			return &errors.ValidationError{
				Field:   "category",
				Message: "category name is required",
			}
		}
		o.category = category
		return nil
	}
}

// WithLanguage sets the Wikipedia language edition to scan, e.g. "he"
// or "en".
func WithLanguage(language string) Option {
	return func(o *options) error {
		if language == "" {
			return &errors.ValidationError{
				Field:   "language",
				Message: "language code is required",
			}
		}
		o.language = language
		return nil
	}
}

// WithProperty sets the Wikidata property whose absence marks an
// artist, e.g. "P434" for the MusicBrainz artist ID.
func WithProperty(property string) Option {
	return func(o *options) error {
		if len(property) < 2 || property[0] != 'P' {
			return &errors.ValidationError{
				Field:   "property",
				Value:   property,
				Message: "must be a Wikidata property ID like P434",
			}
		}
		o.property = property
		return nil
	}
}

// WithPause sets the minimum interval between consecutive upstream
// lookups. Zero disables pacing.
func WithPause(pause time.Duration) Option {
	return func(o *options) error {
		if pause < 0 {
			return &errors.ValidationError{
				Field:   "pause",
				Value:   pause,
				Message: "pause must not be negative",
			}
		}
		o.pause = pause
		return nil
	}
}

// WithTimeout bounds the whole scan. Zero means no bound beyond the
// caller's context.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout < 0 {
			return &errors.ValidationError{
				Field:   "timeout",
				Value:   timeout,
				Message: "timeout must not be negative",
			}
		}
		o.timeout = timeout
		return nil
	}
}

// WithUserAgent overrides the User-Agent header sent to the Wikimedia
// APIs. Their etiquette guidelines ask automated clients to identify
// themselves with a contact address.
func WithUserAgent(userAgent string) Option {
	return func(o *options) error {
		if userAgent == "" {
			return &errors.ValidationError{
				Field:   "userAgent",
				Message: "user agent is required",
			}
		}
		o.userAgent = userAgent
		return nil
	}
}

// WithGate replaces the pacing gate. Overrides WithPause.
func WithGate(gate throttle.Gate) Option {
	return func(o *options) error {
		o.gate = gate
		return nil
	}
}

// WithProgress sets a callback invoked as members are checked.
func WithProgress(fn scan.ProgressFunc) Option {
	return func(o *options) error {
		o.progress = fn
		return nil
	}
}

// WithLogger sets a custom logger for the scan.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithHTTPClient sets the underlying HTTP client, e.g. one with a
// custom transport or timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) error {
		o.httpClient = client
		return nil
	}
}

// WithBaseURLs overrides the API endpoints. Empty strings keep the
// defaults. Used by tests to point the scanner at local servers.
func WithBaseURLs(wikipediaURL, wikidataURL string) Option {
	return func(o *options) error {
		o.wikipediaURL = wikipediaURL
		o.wikidataURL = wikidataURL
		return nil
	}
}

// WithSources injects the category lister, entity resolver, and claim
// checker directly. Any nil argument keeps the default HTTP-backed
// implementation.
func WithSources(lister CategoryLister, resolver scan.EntityResolver, checker scan.ClaimChecker) Option {
	return func(o *options) error {
		o.lister = lister
		o.resolver = resolver
		o.checker = checker
		return nil
	}
}
