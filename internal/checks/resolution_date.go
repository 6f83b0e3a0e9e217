package checks

import (
	"fmt"
	"time"

	"github.com/Alias1177/Verifier/models"
)

// Markets resolving more than five years out are suspicious but not invalid
const maxReasonableDays = 1825

// evalResolutionDate checks that the market resolves in the future and inside
// a plausible window. An unparsable end date degrades the check instead of
// propagating an error.
func evalResolutionDate(market models.Market, _ []models.NewsArticle, now time.Time) (string, int, string) {
	endDate, err := time.Parse(time.RFC3339, market.EndDate)
	if err != nil {
		return models.StatusUnverified, 0, "Resolution date could not be parsed"
	}

	days := endDate.Sub(now).Hours() / 24
	details := fmt.Sprintf("%.0f days until resolution", days)

	switch {
	case days > 0 && days < maxReasonableDays:
		return models.StatusVerified, 95, details
	case days >= maxReasonableDays:
		return models.StatusPartiallyVerified, 70, details
	default:
		return models.StatusUnverified, 20, details
	}
}
