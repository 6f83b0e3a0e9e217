package checks

import (
	"sync"
	"time"

	"github.com/Alias1177/Verifier/models"
	"github.com/rs/zerolog/log"
)

// RunAll executes every registered check concurrently against the same
// immutable inputs, waits for the full set and returns the results in
// registry order. The runner itself never fails: a fault inside a single
// check degrades that check only and never aborts the batch.
func RunAll(market models.Market, articles []models.NewsArticle, now time.Time) []models.VerificationCheck {
	return runAll(registry, market, articles, now)
}

func runAll(defs []checkDef, market models.Market, articles []models.NewsArticle, now time.Time) []models.VerificationCheck {
	results := make([]models.VerificationCheck, len(defs))

	// Каждая проверка пишет только в свой слот, блокировки не нужны
	var wg sync.WaitGroup
	for i := range defs {
		wg.Add(1)
		go func(slot int, def checkDef) {
			defer wg.Done()
			results[slot] = safeRun(def, market, articles, now)
		}(i, defs[i])
	}
	wg.Wait()

	return results
}

// safeRun converts a panicking evaluator into a degraded unverified record.
func safeRun(def checkDef, market models.Market, articles []models.NewsArticle, now time.Time) (check models.VerificationCheck) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("check", def.ID).Interface("panic", r).Msg("Check failed internally")
			check = def.record(models.StatusUnverified, 0, "Check failed internally", now)
		}
	}()

	status, confidence, details := def.eval(market, articles, now)
	return def.record(status, confidence, details, now)
}
