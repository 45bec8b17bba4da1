// Package wikidata checks entity claims through the Wikidata
// wbgetentities API.
package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/quaverlabs/brainzgap/internal/transport"
	"github.com/quaverlabs/brainzgap/pkg/constants"
	"github.com/quaverlabs/brainzgap/pkg/errors"
)

const source = "wikidata"

// EntitiesResponse represents a wbgetentities response.
type EntitiesResponse struct {
	Entities map[string]Entity `json:"entities,omitempty"`
	Success  int               `json:"success,omitempty"`
	Error    *ErrorPayload     `json:"error,omitempty"`
}

// Entity represents a single entity with its claims. Deleted or unknown
// entities come back with the missing marker instead of claims.
type Entity struct {
	ID      string                     `json:"id"`
	Type    string                     `json:"type,omitempty"`
	Missing *string                    `json:"missing,omitempty"`
	Claims  map[string]json.RawMessage `json:"claims,omitempty"`
}

// ErrorPayload represents a Wikidata API error envelope.
type ErrorPayload struct {
	Code string `json:"code"`
	Info string `json:"info"`
	ID   string `json:"id,omitempty"`
}

// Client checks entities against one property of interest.
type Client struct {
	transport *transport.Client
	baseURL   string
	property  string
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

// WithProperty sets the property whose presence HasClaim reports, e.g.
// "P434" for the MusicBrainz artist ID.
func WithProperty(property string) Option {
	return func(c *Client) {
		if property != "" {
			c.property = property
		}
	}
}

// New creates a client checking for the MusicBrainz artist ID property
// unless WithProperty overrides it.
func New(opts ...Option) *Client {
	c := &Client{
		transport: transport.New(),
		baseURL:   constants.WikidataAPIURL,
		property:  constants.MusicBrainzArtistProperty,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Property returns the property this client checks for.
func (c *Client) Property() string {
	return c.property
}

// HasClaim reports whether the entity carries the configured property.
// Deleted or unknown entities carry no claims and report false.
func (c *Client) HasClaim(ctx context.Context, entityID string) (bool, error) {
	if entityID == "" {
		return false, &errors.ValidationError{
			Field:   "entityID",
			Message: "entity ID cannot be empty",
		}
	}

	params := url.Values{}
	params.Set("action", "wbgetentities")
	params.Set("ids", entityID)
	params.Set("props", "claims")
	params.Set("format", "json")

	var resp EntitiesResponse
	if err := c.transport.GetJSON(ctx, source, c.baseURL, params, &resp); err != nil {
		return false, err
	}
	if resp.Error != nil {
		return false, resp.Error.toError(entityID)
	}

	entity, ok := resp.Entities[entityID]
	if !ok || entity.Missing != nil {
		return false, nil
	}

	_, has := entity.Claims[c.property]
	return has, nil
}

// toError maps a Wikidata error envelope to a typed error.
func (e *ErrorPayload) toError(entityID string) error {
	if e.Code == "no-such-entity" {
		return errors.NewNotFoundError("entity", entityID)
	}
	return &errors.APIError{
		Source:  source,
		Message: fmt.Sprintf("%s: %s", e.Code, e.Info),
	}
}
