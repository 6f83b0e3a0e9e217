package checks

import (
	"time"

	"github.com/Alias1177/Verifier/models"
)

// evalFunc computes one signal over the immutable inputs and returns
// (status, confidence, details). Evaluators never see each other's output.
type evalFunc func(market models.Market, articles []models.NewsArticle, now time.Time) (string, int, string)

// checkDef binds a stable check identity to its evaluator.
type checkDef struct {
	ID          string
	Name        string
	Description string
	Source      string
	eval        evalFunc
}

// registry fixes the declaration order; RunAll always returns results in this
// order regardless of which goroutine finishes first.
var registry = []checkDef{
	{
		ID:          "market_data",
		Name:        "Market Data Integrity",
		Description: "Validates market identifier, question and outcome price bounds",
		Source:      "Polymarket API",
		eval:        evalMarketData,
	},
	{
		ID:          "price_consistency",
		Name:        "Price Consistency",
		Description: "Checks that binary outcome prices sum to 100%",
		Source:      "Polymarket API",
		eval:        evalPriceConsistency,
	},
	{
		ID:          "resolution_date",
		Name:        "Resolution Date",
		Description: "Checks that the market resolves in a plausible window",
		Source:      "Polymarket API",
		eval:        evalResolutionDate,
	},
	{
		ID:          "liquidity",
		Name:        "Liquidity & Volume",
		Description: "Checks trading activity behind the quoted prices",
		Source:      "Polymarket API",
		eval:        evalLiquidity,
	},
	{
		ID:          "news_sources",
		Name:        "News Source Coverage",
		Description: "Checks breadth and agreement of related news coverage",
		Source:      "NewsAPI",
		eval:        evalNewsSources,
	},
	{
		ID:          "category_match",
		Name:        "Category Classification",
		Description: "Checks that the question matches its declared category",
		Source:      "Internal Classifier",
		eval:        evalCategory,
	},
}

// record assembles the immutable check result for this definition.
func (d checkDef) record(status string, confidence int, details string, now time.Time) models.VerificationCheck {
	return models.VerificationCheck{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Status:      status,
		Confidence:  confidence,
		Source:      d.Source,
		Timestamp:   now,
		Details:     details,
	}
}
