package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Market describes one tradeable market (spot or future).
type Market struct {
	Name             Symbol          `json:"name"`
	Type             MarketType      `json:"type"`
	Underlying       *Coin           `json:"underlying"`
	BaseCurrency     *Coin           `json:"baseCurrency"`
	QuoteCurrency    *Coin           `json:"quoteCurrency"`
	Enabled          bool            `json:"enabled"`
	Ask              decimal.Decimal `json:"ask"`
	Bid              decimal.Decimal `json:"bid"`
	Last             decimal.Decimal `json:"last"`
	PostOnly         bool            `json:"postOnly"`
	PriceIncrement   decimal.Decimal `json:"priceIncrement"`
	SizeIncrement    decimal.Decimal `json:"sizeIncrement"`
	Restricted       bool            `json:"restricted"`
	MinProvideSize   decimal.Decimal `json:"minProvideSize"`
	Price            decimal.Decimal `json:"price"`
	Change1h         decimal.Decimal `json:"change1h"`
	Change24h        decimal.Decimal `json:"change24h"`
	ChangeBod        decimal.Decimal `json:"changeBod"`
	QuoteVolume24h   decimal.Decimal `json:"quoteVolume24h"`
	VolumeUsd24h     decimal.Decimal `json:"volumeUsd24h"`
}

// priceLevelPair is the [price, size] tuple shape the exchange returns for
// order book levels.
type priceLevelPair PriceLevel

func (p *priceLevelPair) UnmarshalJSON(data []byte) error {
	var raw [2]decimal.Decimal
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode price level: %w", err)
	}
	p.Price, p.Size = raw[0], raw[1]
	return nil
}

// Orderbook is a REST snapshot of one market's top-of-book levels.
type Orderbook struct {
	Bids []priceLevelPair `json:"bids"`
	Asks []priceLevelPair `json:"asks"`
}

// Trade is a single public trade print.
type Trade struct {
	Id          Id              `json:"id"`
	Liquidation bool            `json:"liquidation"`
	Price       decimal.Decimal `json:"price"`
	Side        Side            `json:"side"`
	Size        decimal.Decimal `json:"size"`
	Time        time.Time       `json:"time"`
}

// Candle is a historical OHLCV price bucket.
type Candle struct {
	Close     decimal.Decimal `json:"close"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Open      decimal.Decimal `json:"open"`
	Volume    decimal.Decimal `json:"volume"`
	StartTime time.Time       `json:"startTime"`
}

// GetMarkets lists every tradeable market.
type GetMarkets struct{}

func (GetMarkets) Method() string { return http.MethodGet }
func (GetMarkets) Path() string   { return "/markets" }
func (GetMarkets) Auth() bool     { return false }

// Do dispatches GetMarkets.
func (r GetMarkets) Do(ctx context.Context, c *Client) ([]Market, error) { return Do[[]Market](ctx, c, r) }

// GetMarket fetches one market by name.
type GetMarket struct {
	MarketName string `json:"-"`
}

func (GetMarket) Method() string { return http.MethodGet }
func (GetMarket) Path() string   { return "/markets/{}" }
func (GetMarket) Auth() bool     { return false }
func (r GetMarket) ResolvedPath() string { return "/markets/" + r.MarketName }

// Do dispatches GetMarket.
func (r GetMarket) Do(ctx context.Context, c *Client) (Market, error) { return Do[Market](ctx, c, r) }

// GetOrderbook fetches the order book for a market, optionally bounding
// depth (exchange default / max is enforced server-side).
type GetOrderbook struct {
	MarketName string `json:"-"`
	Depth      *uint32 `json:"depth,omitempty"`
}

func (GetOrderbook) Method() string         { return http.MethodGet }
func (GetOrderbook) Path() string           { return "/markets/{}/orderbook" }
func (GetOrderbook) Auth() bool             { return false }
func (r GetOrderbook) ResolvedPath() string { return "/markets/" + r.MarketName + "/orderbook" }

// Do dispatches GetOrderbook.
func (r GetOrderbook) Do(ctx context.Context, c *Client) (Orderbook, error) {
	return Do[Orderbook](ctx, c, r)
}

// GetTrades fetches recent public trades for a market.
type GetTrades struct {
	MarketName string `json:"-"`
	Limit      *uint32 `json:"limit,omitempty"`
	StartTime  *int64  `json:"start_time,omitempty"`
	EndTime    *int64  `json:"end_time,omitempty"`
}

func (GetTrades) Method() string         { return http.MethodGet }
func (GetTrades) Path() string           { return "/markets/{}/trades" }
func (GetTrades) Auth() bool             { return false }
func (r GetTrades) ResolvedPath() string { return "/markets/" + r.MarketName + "/trades" }

// NewGetTrades builds a GetTrades request with time.Time convenience
// parameters, converting to the millisecond-epoch wire format.
func NewGetTrades(market string, limit *uint32, start, end time.Time) GetTrades {
	return GetTrades{MarketName: market, Limit: limit, StartTime: timeMillis(start), EndTime: timeMillis(end)}
}

// Do dispatches GetTrades.
func (r GetTrades) Do(ctx context.Context, c *Client) ([]Trade, error) { return Do[[]Trade](ctx, c, r) }

// GetHistoricalPrices fetches OHLCV candles for a market.
type GetHistoricalPrices struct {
	MarketName string  `json:"-"`
	Resolution uint32  `json:"resolution"`
	Limit      *uint32 `json:"limit,omitempty"`
	StartTime  *int64  `json:"start_time,omitempty"`
	EndTime    *int64  `json:"end_time,omitempty"`
}

func (GetHistoricalPrices) Method() string { return http.MethodGet }
func (GetHistoricalPrices) Path() string   { return "/markets/{}/candles" }
func (GetHistoricalPrices) Auth() bool     { return false }
func (r GetHistoricalPrices) ResolvedPath() string {
	return "/markets/" + r.MarketName + "/candles"
}

// Do dispatches GetHistoricalPrices.
func (r GetHistoricalPrices) Do(ctx context.Context, c *Client) ([]Candle, error) {
	return Do[[]Candle](ctx, c, r)
}
