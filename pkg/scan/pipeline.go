package scan

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quaverlabs/brainzgap/pkg/constants"
	"github.com/quaverlabs/brainzgap/pkg/errors"
	"github.com/quaverlabs/brainzgap/pkg/logging"
	"github.com/quaverlabs/brainzgap/pkg/throttle"
)

// EntityResolver resolves a Wikipedia article title to its Wikidata
// entity ID. Implementations return errors.ErrNotLinked (possibly
// wrapped) when the article has no entity.
type EntityResolver interface {
	EntityID(ctx context.Context, title string) (string, error)
}

// ClaimChecker reports whether a Wikidata entity carries the property
// being scanned for.
type ClaimChecker interface {
	HasClaim(ctx context.Context, entityID string) (bool, error)
}

// ProgressFunc is called as the pipeline advances. done is the number
// of members processed so far out of total.
type ProgressFunc func(done, total int)

// Pipeline checks category members against Wikidata one at a time,
// pacing upstream calls through a throttle gate. A lookup failure
// marks that member as errored and the scan continues; only context
// cancellation aborts the run.
type Pipeline struct {
	resolver EntityResolver
	checker  ClaimChecker
	gate     throttle.Gate
	progress ProgressFunc
	step     int
	logger   *zerolog.Logger
}

// NewPipeline creates a pipeline with the default pacing gate and
// progress cadence.
func NewPipeline(resolver EntityResolver, checker ClaimChecker) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		checker:  checker,
		gate:     throttle.NewMinInterval(constants.DefaultPause),
		step:     constants.ProgressStep,
		logger:   logging.Default(),
	}
}

// WithGate sets the pacing gate for upstream calls.
func (p *Pipeline) WithGate(gate throttle.Gate) *Pipeline {
	if gate != nil {
		p.gate = gate
	}
	return p
}

// WithProgress sets a progress callback.
func (p *Pipeline) WithProgress(fn ProgressFunc) *Pipeline {
	p.progress = fn
	return p
}

// WithProgressStep sets how many members are processed between
// progress callbacks.
func (p *Pipeline) WithProgressStep(step int) *Pipeline {
	if step > 0 {
		p.step = step
	}
	return p
}

// WithLogger sets a custom logger for the pipeline.
func (p *Pipeline) WithLogger(logger *zerolog.Logger) *Pipeline {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// Run checks every member and returns the ones missing the property,
// in input order, along with classification counts. The returned
// error is non-nil only when the run was aborted; in that case the
// artists and stats collected so far are still returned.
func (p *Pipeline) Run(ctx context.Context, members []Member) ([]Artist, Stats, error) {
	total := len(members)
	stats := Stats{Members: total}
	artists := make([]Artist, 0, total)

	p.logger.Info().Int("members", total).Msg("Checking members against Wikidata")

	for i, m := range members {
		if err := p.gate.Wait(ctx); err != nil {
			return artists, stats, err
		}

		link, hasClaim, err := p.lookup(ctx, m)
		if err != nil {
			return artists, stats, err
		}

		if hasClaim {
			stats.WithClaim++
		} else {
			artists = append(artists, Artist{Title: m.Title, PageID: m.PageID, Entity: link})
			stats.Missing++
			switch link.State {
			case EntityUnlinked:
				stats.Unlinked++
			case EntityError:
				stats.Errors++
			}
		}

		p.advance(i+1, total)
	}

	p.logger.Info().
		Int("missing", stats.Missing).
		Int("with_claim", stats.WithClaim).
		Int("unlinked", stats.Unlinked).
		Int("errors", stats.Errors).
		Msg("Member check complete")

	return artists, stats, nil
}

// lookup resolves one member. The returned error is non-nil only when
// the scan should abort; per-member failures are folded into the
// EntityLink instead.
func (p *Pipeline) lookup(ctx context.Context, m Member) (EntityLink, bool, error) {
	id, err := p.resolver.EntityID(ctx, m.Title)
	switch {
	case err == nil:
	case errors.IsNotLinked(err):
		p.logger.Debug().Str("title", m.Title).Msg("No Wikidata entity")
		return UnlinkedEntity(), false, nil
	case ctx.Err() != nil:
		return EntityLink{}, false, ctx.Err()
	default:
		p.logger.Warn().Err(err).Str("title", m.Title).Msg("Entity lookup failed")
		return FailedEntity(err), false, nil
	}

	hasClaim, err := p.checker.HasClaim(ctx, id)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		return EntityLink{}, false, ctx.Err()
	default:
		p.logger.Warn().Err(err).Str("title", m.Title).Str("entity_id", id).Msg("Claim check failed")
		return FailedEntity(err), false, nil
	}

	return LinkedEntity(id), hasClaim, nil
}

// advance reports progress every step members and at the end.
func (p *Pipeline) advance(done, total int) {
	if p.progress == nil {
		return
	}
	if done%p.step == 0 || done == total {
		p.progress(done, total)
	}
}
