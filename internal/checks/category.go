package checks

import (
	"fmt"
	"strings"
	"time"

	"github.com/Alias1177/Verifier/models"
)

// categoryKeywords maps a category label to the terms expected in its
// questions. Unknown categories resolve to an empty set.
var categoryKeywords = map[string][]string{
	"crypto":    {"bitcoin", "ethereum", "btc", "eth", "crypto", "token", "blockchain"},
	"politics":  {"election", "president", "senate", "congress", "vote", "governor"},
	"sports":    {"championship", "league", "team", "game", "finals", "cup"},
	"economics": {"fed", "inflation", "rate", "gdp", "recession", "unemployment"},
	"science":   {"launch", "vaccine", "ai", "climate", "space", "quantum"},
}

// evalCategory counts category keywords appearing in the lower-cased question.
// Zero matches still scores partially_verified: an unrecognized category says
// nothing about the market data itself.
func evalCategory(market models.Market, _ []models.NewsArticle, _ time.Time) (string, int, string) {
	question := strings.ToLower(market.Question)
	keywords := categoryKeywords[strings.ToLower(market.Category)]

	matchCount := 0
	for _, keyword := range keywords {
		if strings.Contains(question, keyword) {
			matchCount++
		}
	}

	details := fmt.Sprintf("%d keyword matches for category %q", matchCount, market.Category)

	switch {
	case matchCount >= 2:
		return models.StatusVerified, 90, details
	case matchCount == 1:
		return models.StatusPartiallyVerified, 65, details
	default:
		return models.StatusPartiallyVerified, 50, details
	}
}
