// Package wikipedia reads category listings and Wikidata links from the
// MediaWiki Action API of a single language edition of Wikipedia.
package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/quaverlabs/brainzgap/internal/transport"
	"github.com/quaverlabs/brainzgap/pkg/constants"
	"github.com/quaverlabs/brainzgap/pkg/errors"
	"github.com/quaverlabs/brainzgap/pkg/logging"
	"github.com/quaverlabs/brainzgap/pkg/scan"
)

const source = "wikipedia"

// wikibaseItem is the page property that carries the linked Wikidata
// entity ID.
const wikibaseItem = "wikibase_item"

// CategoryResponse represents a MediaWiki categorymembers response.
type CategoryResponse struct {
	BatchComplete string         `json:"batchcomplete,omitempty"`
	Continue      *Continue      `json:"continue,omitempty"`
	Query         *CategoryQuery `json:"query,omitempty"`
	Error         *ErrorPayload  `json:"error,omitempty"`
}

// Continue carries the token for the next page of a category listing.
type Continue struct {
	CmContinue string `json:"cmcontinue"`
	Continue   string `json:"continue"`
}

// CategoryQuery holds the member list of a categorymembers response.
type CategoryQuery struct {
	CategoryMembers []CategoryMember `json:"categorymembers"`
}

// CategoryMember represents one entry of a category listing.
type CategoryMember struct {
	PageID    int64  `json:"pageid"`
	Namespace int    `json:"ns"`
	Title     string `json:"title"`
}

// PagePropsResponse represents a MediaWiki pageprops response.
type PagePropsResponse struct {
	BatchComplete string        `json:"batchcomplete,omitempty"`
	Query         *PagesQuery   `json:"query,omitempty"`
	Error         *ErrorPayload `json:"error,omitempty"`
}

// PagesQuery holds the pages of a pageprops response, keyed by page ID.
type PagesQuery struct {
	Pages map[string]Page `json:"pages"`
}

// Page represents a single page entry with its page properties.
type Page struct {
	PageID    int64             `json:"pageid,omitempty"`
	Namespace int               `json:"ns"`
	Title     string            `json:"title"`
	Missing   *string           `json:"missing,omitempty"`
	PageProps map[string]string `json:"pageprops,omitempty"`
}

// ErrorPayload represents a MediaWiki API error envelope.
type ErrorPayload struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// Client reads from the Action API of one language edition.
type Client struct {
	transport *transport.Client
	language  string
	baseURL   string
	limit     string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, primarily so tests can point
// the client at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithTransport sets the HTTP transport the client requests through.
func WithTransport(t *transport.Client) Option {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithPageLimit sets the cmlimit value for category listing requests.
func WithPageLimit(limit string) Option {
	return func(c *Client) {
		if limit != "" {
			c.limit = limit
		}
	}
}

// New creates a client for the given language edition, e.g. "he" for
// the Hebrew Wikipedia.
func New(language string, opts ...Option) *Client {
	c := &Client{
		transport: transport.New(),
		language:  language,
		baseURL:   fmt.Sprintf(constants.WikipediaAPIFormat, language),
		limit:     constants.CategoryPageLimit,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Language returns the language edition this client reads from.
func (c *Client) Language() string {
	return c.language
}

// CategoryMembers lists the article-namespace members of a category,
// following continuation tokens until the listing is exhausted. The
// category name may be given with or without a namespace prefix.
func (c *Client) CategoryMembers(ctx context.Context, category string) ([]scan.Member, error) {
	if category == "" {
		return nil, &errors.ValidationError{
			Field:   "category",
			Message: "category name cannot be empty",
		}
	}

	log := logging.Ctx(ctx)
	title := categoryTitle(category)

	var members []scan.Member
	token := ""

	for {
		params := url.Values{}
		params.Set("action", "query")
		params.Set("list", "categorymembers")
		params.Set("cmtitle", title)
		params.Set("cmlimit", c.limit)
		params.Set("format", "json")
		if token != "" {
			params.Set("cmcontinue", token)
		}

		var page CategoryResponse
		if err := c.transport.GetJSON(ctx, source, c.baseURL, params, &page); err != nil {
			return nil, err
		}
		if page.Error != nil {
			return nil, page.Error.toError("category", category)
		}
		if page.Query == nil {
			return nil, errors.NewParseError("json", source, "categorymembers response has no query result", nil)
		}

		for _, m := range page.Query.CategoryMembers {
			if m.Namespace != constants.ArticleNamespace {
				continue
			}
			members = append(members, scan.Member{Title: m.Title, PageID: m.PageID})
		}

		if page.Continue == nil || page.Continue.CmContinue == "" {
			break
		}
		token = page.Continue.CmContinue

		log.Debug().
			Str("category", category).
			Int("members", len(members)).
			Msg("Following category continuation")
	}

	return members, nil
}

// EntityID resolves an article title to its linked Wikidata entity ID
// through the pageprops API. Returns errors.ErrNotLinked when the page
// has no linked entity.
func (c *Client) EntityID(ctx context.Context, title string) (string, error) {
	if title == "" {
		return "", &errors.ValidationError{
			Field:   "title",
			Message: "article title cannot be empty",
		}
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "pageprops")
	params.Set("titles", title)
	params.Set("format", "json")

	var resp PagePropsResponse
	if err := c.transport.GetJSON(ctx, source, c.baseURL, params, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", resp.Error.toError("page", title)
	}
	if resp.Query == nil {
		return "", errors.NewParseError("json", source, "pageprops response has no query result", nil)
	}

	// The pages map is keyed by page ID and normally holds a single
	// entry. Walk it in key order so title normalization variants
	// resolve the same way every run.
	keys := make([]string, 0, len(resp.Query.Pages))
	for k := range resp.Query.Pages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if id := resp.Query.Pages[k].PageProps[wikibaseItem]; id != "" {
			return id, nil
		}
	}

	return "", fmt.Errorf("page %q: %w", title, errors.ErrNotLinked)
}

// categoryTitle ensures the category name carries a namespace prefix.
// The English prefix is understood by every language edition.
func categoryTitle(category string) string {
	if strings.Contains(category, ":") {
		return category
	}
	return "Category:" + category
}

// toError maps a MediaWiki error envelope to a typed error.
func (e *ErrorPayload) toError(resource, id string) error {
	switch e.Code {
	case "invalidcategory", "invalidtitle", "missingtitle":
		return errors.NewNotFoundError(resource, id)
	}
	return &errors.APIError{
		Source:  source,
		Message: fmt.Sprintf("%s: %s", e.Code, e.Info),
	}
}
