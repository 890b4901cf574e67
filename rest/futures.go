package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Future describes one futures or perpetual market.
type Future struct {
	Ask                 *decimal.Decimal `json:"ask"`
	Bid                 *decimal.Decimal `json:"bid"`
	Change1h            *decimal.Decimal `json:"change1h"`
	Change24h           *decimal.Decimal `json:"change24h"`
	ChangeBod           *decimal.Decimal `json:"changeBod"`
	VolumeUsd24h        *decimal.Decimal `json:"volumeUsd24h"`
	Volume              *decimal.Decimal `json:"volume"`
	Description         string           `json:"description"`
	Enabled             bool             `json:"enabled"`
	Expired             bool             `json:"expired"`
	Expiry              *time.Time       `json:"expiry"`
	Index               *decimal.Decimal `json:"index"`
	ImfFactor           decimal.Decimal  `json:"imfFactor"`
	Last                *decimal.Decimal `json:"last"`
	LowerBound          decimal.Decimal  `json:"lowerBound"`
	Mark                *decimal.Decimal `json:"mark"`
	Name                Symbol           `json:"name"`
	Perpetual           bool             `json:"perpetual"`
	PositionLimitWeight decimal.Decimal  `json:"positionLimitWeight"`
	PostOnly            bool             `json:"postOnly"`
	PriceIncrement      decimal.Decimal  `json:"priceIncrement"`
	SizeIncrement       decimal.Decimal  `json:"sizeIncrement"`
	Underlying          Symbol           `json:"underlying"`
	UpperBound          decimal.Decimal  `json:"upperBound"`
	Type                FutureType       `json:"type"`
}

// FutureStats reports the funding and open-interest stats for a future.
type FutureStats struct {
	Volume                   decimal.Decimal `json:"volume"`
	NextFundingRate          decimal.Decimal `json:"nextFundingRate"`
	NextFundingTime          time.Time       `json:"nextFundingTime"`
	ExpirationPrice          decimal.Decimal `json:"expirationPrice"`
	PredictedExpirationPrice decimal.Decimal `json:"predictedExpirationPrice"`
	StrikePrice              decimal.Decimal `json:"strikePrice"`
	OpenInterest             decimal.Decimal `json:"openInterest"`
}

// FundingRate is one historical funding payment rate for a perpetual.
type FundingRate struct {
	Future Symbol          `json:"future"`
	Rate   decimal.Decimal `json:"rate"`
	Time   time.Time       `json:"time"`
}

// GetFutures lists every futures and perpetual market.
type GetFutures struct{}

func (GetFutures) Method() string { return http.MethodGet }
func (GetFutures) Path() string   { return "/futures" }
func (GetFutures) Auth() bool     { return false }

// Do dispatches GetFutures.
func (r GetFutures) Do(ctx context.Context, c *Client) ([]Future, error) {
	return Do[[]Future](ctx, c, r)
}

// GetFuture fetches one future by name.
type GetFuture struct {
	FutureName string `json:"-"`
}

func (GetFuture) Method() string         { return http.MethodGet }
func (GetFuture) Path() string           { return "/futures/{}" }
func (GetFuture) Auth() bool             { return false }
func (r GetFuture) ResolvedPath() string { return "/futures/" + r.FutureName }

// Do dispatches GetFuture.
func (r GetFuture) Do(ctx context.Context, c *Client) (Future, error) { return Do[Future](ctx, c, r) }

// GetFutureStats fetches funding and open-interest stats for one future.
type GetFutureStats struct {
	FutureName string `json:"-"`
}

func (GetFutureStats) Method() string         { return http.MethodGet }
func (GetFutureStats) Path() string           { return "/futures/{}/stats" }
func (GetFutureStats) Auth() bool             { return false }
func (r GetFutureStats) ResolvedPath() string { return "/futures/" + r.FutureName + "/stats" }

// Do dispatches GetFutureStats.
func (r GetFutureStats) Do(ctx context.Context, c *Client) (FutureStats, error) {
	return Do[FutureStats](ctx, c, r)
}

// GetFundingRates fetches historical funding rates, optionally filtered to
// one future and time range.
type GetFundingRates struct {
	Future    *string `json:"future,omitempty"`
	StartTime *int64  `json:"start_time,omitempty"`
	EndTime   *int64  `json:"end_time,omitempty"`
}

func (GetFundingRates) Method() string { return http.MethodGet }
func (GetFundingRates) Path() string   { return "/funding_rates" }
func (GetFundingRates) Auth() bool     { return false }

// NewGetFundingRates builds a GetFundingRates with time.Time convenience
// parameters.
func NewGetFundingRates(future *string, start, end time.Time) GetFundingRates {
	return GetFundingRates{Future: future, StartTime: timeMillis(start), EndTime: timeMillis(end)}
}

// Do dispatches GetFundingRates.
func (r GetFundingRates) Do(ctx context.Context, c *Client) ([]FundingRate, error) {
	return Do[[]FundingRate](ctx, c, r)
}

// GetExpiredFutures lists futures that have already settled.
type GetExpiredFutures struct{}

func (GetExpiredFutures) Method() string { return http.MethodGet }
func (GetExpiredFutures) Path() string   { return "/expired_futures" }
func (GetExpiredFutures) Auth() bool     { return false }

// Do dispatches GetExpiredFutures.
func (r GetExpiredFutures) Do(ctx context.Context, c *Client) ([]Future, error) {
	return Do[[]Future](ctx, c, r)
}

// GetIndexWeights fetches the constituent weighting of an index.
type GetIndexWeights struct {
	Index string `json:"-"`
}

func (GetIndexWeights) Method() string         { return http.MethodGet }
func (GetIndexWeights) Path() string           { return "/indexes/{}/weights" }
func (GetIndexWeights) Auth() bool             { return false }
func (r GetIndexWeights) ResolvedPath() string { return "/indexes/" + r.Index + "/weights" }

// Do dispatches GetIndexWeights.
func (r GetIndexWeights) Do(ctx context.Context, c *Client) (map[string]decimal.Decimal, error) {
	return Do[map[string]decimal.Decimal](ctx, c, r)
}

// HistoricalCandle is one OHLCV bucket of an index's historical price.
type HistoricalCandle struct {
	Open      decimal.Decimal  `json:"open"`
	High      decimal.Decimal  `json:"high"`
	Low       decimal.Decimal  `json:"low"`
	Close     decimal.Decimal  `json:"close"`
	StartTime time.Time        `json:"startTime"`
	Volume    *decimal.Decimal `json:"volume"`
}

// GetHistoricalIndex fetches historical candles for an index.
type GetHistoricalIndex struct {
	MarketName string `json:"-"`
	Resolution uint32 `json:"resolution"`
	StartTime  *int64 `json:"start_time,omitempty"`
	EndTime    *int64 `json:"end_time,omitempty"`
}

func (GetHistoricalIndex) Method() string { return http.MethodGet }
func (GetHistoricalIndex) Path() string   { return "/indexes/{}/candles" }
func (GetHistoricalIndex) Auth() bool     { return false }
func (r GetHistoricalIndex) ResolvedPath() string {
	return "/indexes/" + r.MarketName + "/candles"
}

// NewGetHistoricalIndex builds a GetHistoricalIndex with time.Time
// convenience parameters.
func NewGetHistoricalIndex(market string, resolutionSeconds uint32, start, end time.Time) GetHistoricalIndex {
	return GetHistoricalIndex{MarketName: market, Resolution: resolutionSeconds, StartTime: timeMillis(start), EndTime: timeMillis(end)}
}

// Do dispatches GetHistoricalIndex.
func (r GetHistoricalIndex) Do(ctx context.Context, c *Client) ([]HistoricalCandle, error) {
	return Do[[]HistoricalCandle](ctx, c, r)
}
