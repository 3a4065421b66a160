package domain

// DefaultAssetID is the CoinGecko id queried when the caller does not name one.
const DefaultAssetID = "hyperliquid"

// Quote is the reshaped market row for a single asset. Every field is a
// pointer so upstream nulls survive the round trip.
type Quote struct {
	ID          *string  `json:"id"`
	Symbol      *string  `json:"symbol"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Change24h   *float64 `json:"change_24h"`
	Volume24h   *float64 `json:"volume_24h"`
	MarketCap   *float64 `json:"market_cap"`
	LastUpdated *string  `json:"last_updated"`
}
