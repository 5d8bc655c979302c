// Package model provides data transfer objects for the statistics module.
package model

// MarketplaceStatistics represents aggregate counts over the staffing marketplace.
type MarketplaceStatistics struct {
	TotalRequests      int     `json:"total_requests"`
	IncompleteRequests int     `json:"incomplete_requests"`
	CompleteRequests   int     `json:"complete_requests"`
	TotalSlots         int     `json:"total_slots"`
	FilledSlots        int     `json:"filled_slots"`
	OpenSlots          int     `json:"open_slots"`
	ActiveOffers       int     `json:"active_offers"`
	FillRate           float64 `json:"fill_rate"`
}

// MarketplaceStatisticsResponse represents the statistics endpoint response.
type MarketplaceStatisticsResponse struct {
	Statistics MarketplaceStatistics `json:"statistics"`
}
