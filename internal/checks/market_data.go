package checks

import (
	"fmt"
	"math"
	"time"

	"github.com/Alias1177/Verifier/models"
)

// evalMarketData validates the structural integrity of the market record:
// identifier, question length, outcome count and price bounds, and whether
// the outcome prices sum to roughly one.
func evalMarketData(market models.Market, _ []models.NewsArticle, _ time.Time) (string, int, string) {
	idValid := market.ID != ""
	questionValid := len(market.Question) > 10

	outcomesValid := len(market.Outcomes) >= 2
	priceSum := 0.0
	for _, outcome := range market.Outcomes {
		if outcome.Price < 0 || outcome.Price > 1 {
			outcomesValid = false
		}
		priceSum += outcome.Price
	}
	if math.Abs(priceSum-1.0) > 0.1 {
		outcomesValid = false
	}

	details := fmt.Sprintf("%d outcomes, prices sum to %.3f", len(market.Outcomes), priceSum)

	if idValid && questionValid && outcomesValid {
		return models.StatusVerified, 95, details
	}
	if idValid && questionValid {
		return models.StatusPartiallyVerified, 60, details
	}
	return models.StatusUnverified, 20, details
}
