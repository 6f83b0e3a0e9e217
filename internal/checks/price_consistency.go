package checks

import (
	"fmt"
	"math"
	"time"

	"github.com/Alias1177/Verifier/models"
)

// evalPriceConsistency measures how far the two primary outcome prices drift
// from summing to one. A missing outcome is treated as price 0.
func evalPriceConsistency(market models.Market, _ []models.NewsArticle, _ time.Time) (string, int, string) {
	var yesPrice, noPrice float64
	if len(market.Outcomes) > 0 {
		yesPrice = market.Outcomes[0].Price
	}
	if len(market.Outcomes) > 1 {
		noPrice = market.Outcomes[1].Price
	}

	sum := yesPrice + noPrice
	deviation := math.Abs(sum - 1.0)
	details := fmt.Sprintf("Prices sum to %.1f%% (deviation %.1f%%)", sum*100, deviation*100)

	if deviation < 0.02 {
		return models.StatusVerified, 98, details
	}
	if deviation < 0.05 {
		return models.StatusPartiallyVerified, 75, details
	}
	return models.StatusUnverified, 30, details
}
