package checks

import (
	"fmt"
	"time"

	"github.com/Alias1177/Verifier/models"
)

// evalNewsSources measures breadth and agreement of related coverage:
// distinct source names plus the fraction of articles sharing the first
// article's sentiment.
func evalNewsSources(_ models.Market, articles []models.NewsArticle, _ time.Time) (string, int, string) {
	sources := make(map[string]struct{}, len(articles))
	for _, article := range articles {
		sources[article.Source] = struct{}{}
	}
	uniqueSources := len(sources)

	sentimentConsistency := 0.0
	if len(articles) > 0 {
		matching := 0
		for _, article := range articles {
			if article.Sentiment == articles[0].Sentiment {
				matching++
			}
		}
		sentimentConsistency = float64(matching) / float64(len(articles))
	}

	details := fmt.Sprintf("%d unique sources, %.0f%% sentiment consistency",
		uniqueSources, sentimentConsistency*100)

	switch {
	case uniqueSources >= 3 && sentimentConsistency > 0.6:
		return models.StatusVerified, 85, details
	case uniqueSources >= 2:
		return models.StatusPartiallyVerified, 60, details
	case uniqueSources == 1:
		return models.StatusPartiallyVerified, 40, details
	default:
		return models.StatusUnverified, 20, details
	}
}
