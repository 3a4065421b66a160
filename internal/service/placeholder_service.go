package service

import (
	"context"
	"time"

	"hyperhub/internal/domain"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
)

// The whale, open-interest and governance feeds are synthetic until a real
// chain data source is wired in. Their shapes are what the dashboard reads.

const oiPoints = 12

type whaleTemplate struct {
	hash, pair, side string
	sizeUSD          int64
}

var whaleTemplates = []whaleTemplate{
	{"0xabc123", "HYPE/USDC", "long", 250000},
	{"0xdef456", "HYPE/ETH", "short", 180000},
	{"0xghi789", "BTC/USDC", "long", 500000},
}

var proposalTemplates = []domain.GovernanceProposal{
	{
		ID: "HIP-1", Title: "Increase beHYPE staking rewards", Status: "active", Proposer: "0xabc",
		Aye: []domain.Vote{{Validator: "val1", Stake: 12000}, {Validator: "val2", Stake: 8000}},
		Nay: []domain.Vote{{Validator: "val3", Stake: 2000}},
	},
	{
		ID: "HIP-2", Title: "Adjust fee structure", Status: "closed", Proposer: "0xdef",
		Aye: []domain.Vote{{Validator: "val2", Stake: 5000}},
		Nay: []domain.Vote{{Validator: "val1", Stake: 3000}, {Validator: "val4", Stake: 1000}},
	},
}

type PlaceholderService struct {
	tracer trace.Tracer
	now    func() time.Time
}

func NewPlaceholderService(tracer trace.Tracer) *PlaceholderService {
	return &PlaceholderService{tracer: tracer, now: time.Now}
}

func (s *PlaceholderService) Whales(ctx context.Context) (*domain.WhaleReport, error) {
	_, span := s.tracer.Start(ctx, "placeholder.whales")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ts := domain.Timestamp(s.now())
	whales := make([]domain.WhaleTrade, 0, len(whaleTemplates))
	total := decimal.Zero
	for _, w := range whaleTemplates {
		size := decimal.NewFromInt(w.sizeUSD)
		total = total.Add(size)
		whales = append(whales, domain.WhaleTrade{
			TxHash:  w.hash,
			Pair:    w.pair,
			Side:    w.side,
			SizeUSD: size.InexactFloat64(),
			Time:    ts,
		})
	}

	return &domain.WhaleReport{
		Whales:           whales,
		TotalWhaleVolume: total.InexactFloat64(),
		FetchedAt:        ts,
	}, nil
}

// OpenInterest returns twelve hourly points ending now.
func (s *PlaceholderService) OpenInterest(ctx context.Context) (*domain.OpenInterestReport, error) {
	_, span := s.tracer.Start(ctx, "placeholder.open-interest")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.now()
	series := make([]domain.OiPoint, 0, oiPoints)
	for i := 0; i < oiPoints; i++ {
		series = append(series, oiPoint(now.Unix(), i))
	}

	return &domain.OpenInterestReport{
		Series:    series,
		Latest:    series[len(series)-1],
		FetchedAt: domain.Timestamp(now),
	}, nil
}

func oiPoint(nowUnix int64, i int) domain.OiPoint {
	n := int64(i)
	longs := 1000000 + n*20000 + (n%3)*50000
	shorts := 800000 + n*15000 + ((n+1)%4)*30000
	return domain.OiPoint{
		Ts:             nowUnix - int64(oiPoints-1-i)*3600,
		Longs:          longs,
		Shorts:         shorts,
		OI:             longs + shorts,
		LongShortRatio: LongShortRatio(longs, shorts),
	}
}

// LongShortRatio is longs/shorts rounded to three decimals, with shorts
// floored at 1.
func LongShortRatio(longs, shorts int64) float64 {
	if shorts < 1 {
		shorts = 1
	}
	return decimal.NewFromInt(longs).DivRound(decimal.NewFromInt(shorts), 3).InexactFloat64()
}

func (s *PlaceholderService) Governance(ctx context.Context) (*domain.GovernanceReport, error) {
	_, span := s.tracer.Start(ctx, "placeholder.governance")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	proposals := make([]domain.GovernanceProposal, 0, len(proposalTemplates))
	for _, p := range proposalTemplates {
		p.Aye = append([]domain.Vote(nil), p.Aye...)
		p.Nay = append([]domain.Vote(nil), p.Nay...)
		proposals = append(proposals, p)
	}
	return &domain.GovernanceReport{
		Proposals: proposals,
		FetchedAt: domain.Timestamp(s.now()),
	}, nil
}
