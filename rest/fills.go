package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Fill is one executed trade against the authenticated account.
type Fill struct {
	Id            Id              `json:"id"`
	Market        Symbol          `json:"market"`
	Future        *Symbol         `json:"future"`
	BaseCurrency  *Coin           `json:"baseCurrency"`
	QuoteCurrency *Coin           `json:"quoteCurrency"`
	Type          string          `json:"type"`
	Side          Side            `json:"side"`
	Price         decimal.Decimal `json:"price"`
	Size          decimal.Decimal `json:"size"`
	OrderId       *Id             `json:"orderId"`
	TradeId       Id              `json:"tradeId"`
	Time          time.Time       `json:"time"`
	Fee           decimal.Decimal `json:"fee"`
	FeeRate       decimal.Decimal `json:"feeRate"`
	FeeCurrency   Coin            `json:"feeCurrency"`
	Liquidity     string          `json:"liquidity"`
}

// GetFills lists fills for one market, optionally filtered by order and
// time range.
type GetFills struct {
	MarketName string  `json:"market"`
	OrderId    *Id     `json:"order_id,omitempty"`
	StartTime  *int64  `json:"start_time,omitempty"`
	EndTime    *int64  `json:"end_time,omitempty"`
}

func (GetFills) Method() string { return http.MethodGet }
func (GetFills) Path() string   { return "/fills" }
func (GetFills) Auth() bool     { return true }

// NewGetFills builds a GetFills with time.Time convenience parameters.
func NewGetFills(market string, orderId *Id, start, end time.Time) GetFills {
	return GetFills{MarketName: market, OrderId: orderId, StartTime: timeMillis(start), EndTime: timeMillis(end)}
}

// Do dispatches GetFills.
func (r GetFills) Do(ctx context.Context, c *Client) ([]Fill, error) { return Do[[]Fill](ctx, c, r) }
