package verify

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/Verifier/internal/checks"
	"github.com/Alias1177/Verifier/models"
)

// Engine runs the full verification battery against one market snapshot.
// The clock and the request identifier generator are injected so results
// are fully deterministic under test.
type Engine struct {
	clock  func() time.Time
	newID  func() string
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithIDGenerator replaces the request identifier source.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// New creates an engine with production defaults: wall clock and UUID
// request identifiers.
func New(opts ...Option) *Engine {
	e := &Engine{
		clock:  time.Now,
		newID:  uuid.NewString,
		logger: log.With().Str("component", "verify_engine").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Verify fans the six checks out concurrently, aggregates their verdicts and
// composes the summary. It is total: it never returns an error for any
// structurally present market, and a fault inside a single check only
// degrades that check.
func (e *Engine) Verify(market models.Market, articles []models.NewsArticle) models.VerificationResult {
	now := e.clock()

	results := checks.RunAll(market, articles, now)
	status, confidence := Aggregate(results)
	summary := Summarize(results, status)

	e.logger.Info().
		Str("market_id", market.ID).
		Str("status", status).
		Int("confidence", confidence).
		Msg("Verification completed")

	return models.VerificationResult{
		OverallStatus:     status,
		OverallConfidence: confidence,
		Checks:            results,
		VerifiedAt:        now,
		RequestID:         e.newID(),
		Summary:           summary,
	}
}
