package models

import (
	"time"
)

// Verification status values, ordered roughly by decreasing trust.
const (
	StatusVerified          = "verified"
	StatusPartiallyVerified = "partially_verified"
	StatusUnverified        = "unverified"
	StatusPending           = "pending"
)

// News sentiment classification values
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Outcome is one resolvable answer to a market question
type Outcome struct {
	Name           string   `json:"name"`
	Price          float64  `json:"price"` // probability-like, 0..1
	PriceChange24h *float64 `json:"price_change_24h,omitempty"`
}

// Market represents a prediction market snapshot as supplied by the caller
type Market struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Category  string    `json:"category"`
	Outcomes  []Outcome `json:"outcomes"`
	Volume    float64   `json:"volume"`
	Liquidity float64   `json:"liquidity"`
	EndDate   string    `json:"end_date"` // RFC 3339, parsed by the resolution date check
}

// NewsArticle is a related news item; only Source and Sentiment are read here
type NewsArticle struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Sentiment   string `json:"sentiment"` // positive, neutral, negative
	PublishedAt string `json:"published_at,omitempty"`
}

// NewsSearchResult is what a news collaborator returns for one market
type NewsSearchResult struct {
	Articles     []NewsArticle `json:"articles"`
	TotalResults int           `json:"total_results"`
	SearchQuery  string        `json:"search_query"`
}

// VerificationCheck is the immutable outcome of a single check
type VerificationCheck struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Confidence  int       `json:"confidence"` // 0-100
	Source      string    `json:"source"`
	Timestamp   time.Time `json:"timestamp"`
	Details     string    `json:"details,omitempty"`
}

// VerificationResult is the aggregated verdict over the full check battery.
// Checks keeps the fixed declaration order, never completion order.
type VerificationResult struct {
	OverallStatus     string              `json:"overall_status"`
	OverallConfidence int                 `json:"overall_confidence"` // 0-100, rounded mean
	Checks            []VerificationCheck `json:"checks"`
	VerifiedAt        time.Time           `json:"verified_at"`
	RequestID         string              `json:"request_id"`
	Summary           string              `json:"summary"`
}
