package rest

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Id, Coin and Symbol are the exchange's primitive identifier types.
type (
	Id     = uint64
	Coin   = string
	Symbol = string
)

// OrderType enumerates the order types the exchange accepts.
type OrderType string

const (
	OrderTypeMarket       OrderType = "market"
	OrderTypeLimit        OrderType = "limit"
	OrderTypeStop         OrderType = "stop"
	OrderTypeTrailingStop OrderType = "trailingStop"
	OrderTypeTakeProfit   OrderType = "takeProfit"
)

// OrderStatus is reported differently by REST and WebSocket at different
// points of an order's lifecycle.
//
//   - New:    Rest — accepted into the queue, not yet processed.
//             Ws   — processed and confirmed still active.
//   - Open:   Rest only — resting on the book.
//   - Closed: Rest — filled or cancelled.
//             Ws   — filled, rejected, or cancelled.
type OrderStatus string

const (
	OrderStatusNew    OrderStatus = "new"
	OrderStatusOpen   OrderStatus = "open"
	OrderStatusClosed OrderStatus = "closed"
)

// Side is the direction of an order or fill.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// FutureType enumerates the kinds of futures markets.
type FutureType string

const (
	FutureTypeFuture     FutureType = "future"
	FutureTypePerpetual  FutureType = "perpetual"
	FutureTypePrediction FutureType = "prediction"
	FutureTypeMove       FutureType = "move"
)

// MarketType distinguishes spot markets from futures markets.
type MarketType string

const (
	MarketTypeFuture MarketType = "future"
	MarketTypeSpot   MarketType = "spot"
)

// DepositStatus enumerates the lifecycle of a wallet deposit.
type DepositStatus string

const (
	DepositConfirmed   DepositStatus = "confirmed"
	DepositUnconfirmed DepositStatus = "unconfirmed"
	DepositCancelled   DepositStatus = "cancelled"
	DepositComplete    DepositStatus = "complete"
)

// WithdrawStatus enumerates the lifecycle of a wallet withdrawal.
type WithdrawStatus string

const (
	WithdrawRequested  WithdrawStatus = "requested"
	WithdrawProcessing WithdrawStatus = "processing"
	WithdrawComplete   WithdrawStatus = "complete"
	WithdrawCancelled  WithdrawStatus = "cancelled"
)

// timeMillis formats a time as a Unix millisecond pointer, or nil when t is
// the zero value — used by requests that accept an optional start/end time.
func timeMillis(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// PriceLevel is a single price/size pair, used for orderbook snapshots.
type PriceLevel struct {
	Price decimal.Decimal
	Size  decimal.Decimal
}

// idString formats an Id for interpolation into a URL path.
func idString(id Id) string {
	return strconv.FormatUint(id, 10)
}
