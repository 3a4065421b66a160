package domain

// WhaleTrade is a synthetic large trade.
type WhaleTrade struct {
	TxHash  string  `json:"tx_hash"`
	Pair    string  `json:"pair"`
	Side    string  `json:"side"`
	SizeUSD float64 `json:"size_usd"`
	Time    string  `json:"time"`
}

type WhaleReport struct {
	Whales           []WhaleTrade `json:"whales"`
	TotalWhaleVolume float64      `json:"total_whale_volume"`
	FetchedAt        string       `json:"fetched_at"`
}

// OiPoint is one hourly open-interest sample.
type OiPoint struct {
	Ts             int64   `json:"ts"`
	Longs          int64   `json:"longs"`
	Shorts         int64   `json:"shorts"`
	OI             int64   `json:"oi"`
	LongShortRatio float64 `json:"long_short_ratio"`
}

type OpenInterestReport struct {
	Series    []OiPoint `json:"series"`
	Latest    OiPoint   `json:"latest"`
	FetchedAt string    `json:"fetched_at"`
}

type Vote struct {
	Validator string `json:"validator"`
	Stake     int64  `json:"stake"`
}

// GovernanceProposal is a HIP with its raw vote lists. Tallying is left to
// the client.
type GovernanceProposal struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Proposer string `json:"proposer"`
	Aye      []Vote `json:"aye"`
	Nay      []Vote `json:"nay"`
}

type GovernanceReport struct {
	Proposals []GovernanceProposal `json:"hips"`
	FetchedAt string               `json:"fetched_at"`
}
