// Package scan defines the data model and pipeline for checking the
// members of a Wikipedia category against Wikidata. A scan enumerates
// the category, resolves each article's Wikidata entity, and collects
// the articles whose entity lacks the MusicBrainz artist property.
package scan

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"
)

// Member is one article found in the scanned category.
type Member struct {
	Title  string `json:"title" yaml:"title"`     // Article title as returned by the API
	PageID int64  `json:"page_id" yaml:"page_id"` // MediaWiki page ID
}

// EntityState classifies an article's Wikidata linkage.
type EntityState string

// String returns the string representation of an EntityState.
func (s EntityState) String() string {
	return string(s)
}

// Entity states for a scanned article.
const (
	EntityLinked   EntityState = "linked"   // Article has a Wikidata entity
	EntityUnlinked EntityState = "unlinked" // Article has no Wikidata entity
	EntityError    EntityState = "error"    // Lookup failed
)

// EntityLink is the outcome of resolving an article's Wikidata entity.
// Exactly one of the optional fields is meaningful, selected by State:
// ID when linked, Err and Reason when the lookup failed, neither when
// the article has no entity at all.
type EntityLink struct {
	State EntityState `json:"state" yaml:"state"`
	ID    string      `json:"id,omitempty" yaml:"id,omitempty"`

	// Err holds the failure when State is EntityError. It is not
	// serialized; Reason carries the message instead.
	Err    error  `json:"-" yaml:"-"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// LinkedEntity returns an EntityLink for an article linked to the
// given Wikidata entity.
func LinkedEntity(id string) EntityLink {
	return EntityLink{State: EntityLinked, ID: id}
}

// UnlinkedEntity returns an EntityLink for an article without a
// Wikidata entity.
func UnlinkedEntity() EntityLink {
	return EntityLink{State: EntityUnlinked}
}

// FailedEntity returns an EntityLink for an article whose lookup failed.
func FailedEntity(err error) EntityLink {
	link := EntityLink{State: EntityError, Err: err}
	if err != nil {
		link.Reason = err.Error()
	}
	return link
}

// Linked reports whether the article has a Wikidata entity.
func (l EntityLink) Linked() bool {
	return l.State == EntityLinked
}

// Unlinked reports whether the article has no Wikidata entity.
func (l EntityLink) Unlinked() bool {
	return l.State == EntityUnlinked
}

// Failed reports whether the lookup failed.
func (l EntityLink) Failed() bool {
	return l.State == EntityError
}

// Artist is one category member that lacks the MusicBrainz artist
// property, together with its resolved Wikidata linkage.
type Artist struct {
	Title  string     `json:"title" yaml:"title"`
	PageID int64      `json:"page_id" yaml:"page_id"`
	Entity EntityLink `json:"entity" yaml:"entity"`
}

// Stats summarizes how the scanned members were classified.
type Stats struct {
	Members   int `json:"members" yaml:"members"`       // Articles enumerated in the category
	Missing   int `json:"missing" yaml:"missing"`       // Articles lacking the MusicBrainz property
	Unlinked  int `json:"unlinked" yaml:"unlinked"`     // Articles with no Wikidata entity
	Errors    int `json:"errors" yaml:"errors"`         // Articles whose lookup failed
	WithClaim int `json:"with_claim" yaml:"with_claim"` // Articles already carrying the property
}

// Result is the complete outcome of a category scan.
type Result struct {
	Category string `json:"category" yaml:"category"` // Category name without namespace prefix
	Language string `json:"language" yaml:"language"` // Wikipedia language edition
	Property string `json:"property" yaml:"property"` // Wikidata property that was checked

	// Artists lists the members missing the property, sorted by title.
	Artists []Artist `json:"artists" yaml:"artists"`

	Stats Stats `json:"stats" yaml:"stats"`

	// Execution metadata
	ExecutedAt utc.Time      `json:"executed_at" yaml:"executed_at"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// Summary returns a human-readable summary of the scan result.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d of %d members missing %s (%d unlinked, %d errors, took %v)",
		r.Stats.Missing, r.Stats.Members, r.Property, r.Stats.Unlinked, r.Stats.Errors, r.Duration)
}
