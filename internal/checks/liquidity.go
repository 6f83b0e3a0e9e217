package checks

import (
	"fmt"
	"time"

	"github.com/Alias1177/Verifier/models"
)

// evalLiquidity scores the trading activity behind the quoted prices.
// Thin markets can carry arbitrary prices, so both volume and liquidity
// have to clear their bars for a full pass.
func evalLiquidity(market models.Market, _ []models.NewsArticle, _ time.Time) (string, int, string) {
	details := fmt.Sprintf("Volume $%.0f, liquidity $%.0f", market.Volume, market.Liquidity)

	if market.Volume > 100000 && market.Liquidity > 10000 {
		return models.StatusVerified, 95, details
	}
	if market.Volume > 10000 || market.Liquidity > 1000 {
		return models.StatusPartiallyVerified, 70, details
	}
	return models.StatusUnverified, 40, details
}
