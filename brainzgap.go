// Package brainzgap finds the members of a Wikipedia category whose
// Wikidata entity lacks a MusicBrainz identifier. A scan enumerates
// the category through the MediaWiki API, resolves each article's
// Wikidata entity, and checks the entity's claims for the configured
// property (P434, the MusicBrainz artist ID, by default). The result
// lists the artists still missing the identifier, ready to be rendered
// as an HTML or Markdown worklist.
package brainzgap

import (
	"context"
	"strings"
	"time"

	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/quaverlabs/brainzgap/internal/sources/wikidata"
	"github.com/quaverlabs/brainzgap/internal/sources/wikipedia"
	"github.com/quaverlabs/brainzgap/internal/transport"
	"github.com/quaverlabs/brainzgap/pkg/logging"
	"github.com/quaverlabs/brainzgap/pkg/scan"
	"github.com/quaverlabs/brainzgap/pkg/throttle"
)

// CategoryLister enumerates the article members of a category.
type CategoryLister interface {
	CategoryMembers(ctx context.Context, category string) ([]scan.Member, error)
}

// Compile-time interface checks for the HTTP-backed sources.
var (
	_ CategoryLister      = (*wikipedia.Client)(nil)
	_ scan.EntityResolver = (*wikipedia.Client)(nil)
	_ scan.ClaimChecker   = (*wikidata.Client)(nil)
)

// Scanner runs category scans. Create one with New, then call Scan.
// A Scanner is safe to reuse across scans of the same category.
type Scanner struct {
	options *options
}

// New creates a Scanner with the given options. Without options the
// scanner checks the default category on the Hebrew Wikipedia for the
// MusicBrainz artist property.
func New(opts ...Option) (*Scanner, error) {
	s := &Scanner{options: defaultOptions()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s.options); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Scan enumerates the configured category and checks every member
// against Wikidata. It returns the members missing the property,
// sorted by title, along with classification counts. Per-member lookup
// failures are recorded on the member and do not abort the scan; only
// context cancellation does.
func (s *Scanner) Scan(ctx context.Context) (*scan.Result, error) {
	ctx, cancel := s.scanContext(ctx)
	defer cancel()

	logger := s.logger()
	start := time.Now()

	lister, resolver, checker := s.sources()

	logger.Info().
		Str("category", s.options.category).
		Str("language", s.options.language).
		Str("property", s.options.property).
		Msg("Fetching category members")

	members, err := lister.CategoryMembers(ctx, s.options.category)
	if err != nil {
		return nil, err
	}

	artists, stats, err := scan.NewPipeline(resolver, checker).
		WithGate(s.gate()).
		WithProgress(s.options.progress).
		WithLogger(logger).
		Run(ctx, members)
	if err != nil {
		return nil, err
	}

	scan.SortByTitle(artists, s.options.language)

	return &scan.Result{
		Category:   categoryLabel(s.options.category),
		Language:   s.options.language,
		Property:   s.options.property,
		Artists:    artists,
		Stats:      stats,
		ExecutedAt: utc.Now(),
		Duration:   time.Since(start),
	}, nil
}

// Members enumerates the configured category without checking the
// members against Wikidata.
func (s *Scanner) Members(ctx context.Context) ([]scan.Member, error) {
	ctx, cancel := s.scanContext(ctx)
	defer cancel()

	lister, _, _ := s.sources()
	return lister.CategoryMembers(ctx, s.options.category)
}

// scanContext applies the configured timeout and tags the context with
// the category for downstream log records.
func (s *Scanner) scanContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithCategory(ctx, s.options.category)
	if s.options.timeout > 0 {
		return context.WithTimeout(ctx, s.options.timeout)
	}
	return ctx, func() {}
}

// sources returns the category lister, entity resolver, and claim
// checker, constructing HTTP clients for any that were not injected.
func (s *Scanner) sources() (CategoryLister, scan.EntityResolver, scan.ClaimChecker) {
	lister := s.options.lister
	resolver := s.options.resolver
	checker := s.options.checker
	if lister != nil && resolver != nil && checker != nil {
		return lister, resolver, checker
	}

	t := transport.NewWithClient(s.options.httpClient)
	if s.options.userAgent != "" {
		t.SetUserAgent(s.options.userAgent)
	}

	wp := wikipedia.New(s.options.language,
		wikipedia.WithTransport(t),
		wikipedia.WithBaseURL(s.options.wikipediaURL),
	)
	wd := wikidata.New(
		wikidata.WithTransport(t),
		wikidata.WithBaseURL(s.options.wikidataURL),
		wikidata.WithProperty(s.options.property),
	)

	if lister == nil {
		lister = wp
	}
	if resolver == nil {
		resolver = wp
	}
	if checker == nil {
		checker = wd
	}
	return lister, resolver, checker
}

func (s *Scanner) gate() throttle.Gate {
	if s.options.gate != nil {
		return s.options.gate
	}
	return throttle.NewMinInterval(s.options.pause)
}

func (s *Scanner) logger() *zerolog.Logger {
	if s.options.logger != nil {
		return s.options.logger
	}
	return logging.Default()
}

// categoryLabel strips a namespace prefix from a category name. Report
// titles and file names use the bare name.
func categoryLabel(category string) string {
	if i := strings.Index(category, ":"); i >= 0 {
		return category[i+1:]
	}
	return category
}
