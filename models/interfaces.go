package models

import "context"

// MarketSource supplies market snapshots. A nil market means not found;
// callers must not hand an absent market to the verification engine.
type MarketSource interface {
	FetchMarketDetail(ctx context.Context, id string) (*Market, error)
}

// NewsSource supplies news related to a market. An empty article list is valid.
type NewsSource interface {
	SearchNews(ctx context.Context, market Market) (NewsSearchResult, error)
}
