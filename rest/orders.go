package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// OrderInfo describes an order as the exchange reports it, whether newly
// placed, modified, or fetched by id.
type OrderInfo struct {
	Id               Id               `json:"id"`
	Market           Symbol           `json:"market"`
	Future           *Symbol          `json:"future"`
	Type             OrderType        `json:"type"`
	Side             Side             `json:"side"`
	Price            *decimal.Decimal `json:"price"`
	Size             decimal.Decimal  `json:"size"`
	ReduceOnly       bool             `json:"reduceOnly"`
	Ioc              bool             `json:"ioc"`
	PostOnly         bool             `json:"postOnly"`
	Status           OrderStatus      `json:"status"`
	FilledSize       decimal.Decimal  `json:"filledSize"`
	RemainingSize    decimal.Decimal  `json:"remainingSize"`
	AvgFillPrice     *decimal.Decimal `json:"avgFillPrice"`
	Liquidation      *bool            `json:"liquidation"`
	CreatedAt        time.Time        `json:"createdAt"`
	ClientId         *string          `json:"clientId"`
	RetryUntilFilled *bool            `json:"retryUntilFilled"`
	TriggerPrice     *decimal.Decimal `json:"triggerPrice"`
	OrderPrice       *decimal.Decimal `json:"orderPrice"`
	TriggeredAt      *time.Time       `json:"triggeredAt"`
	Error            *string          `json:"error"`
}

// GetOpenOrders lists resting orders, optionally filtered to one market.
type GetOpenOrders struct {
	Market *string `json:"market,omitempty"`
}

func (GetOpenOrders) Method() string { return http.MethodGet }
func (GetOpenOrders) Path() string   { return "/orders" }
func (GetOpenOrders) Auth() bool     { return true }

// Do dispatches GetOpenOrders.
func (r GetOpenOrders) Do(ctx context.Context, c *Client) ([]OrderInfo, error) {
	return Do[[]OrderInfo](ctx, c, r)
}

// PlaceOrder places a new order. Price must be non-nil for limit orders.
// NewPlaceOrder rejects a limit order without a price before any wire call;
// Do performs no such check, so a PlaceOrder built directly is sent as is.
//
// Price has no `omitempty`: a market order serializes its price field as
// JSON null rather than omitting it, matching the wire contract the
// exchange expects.
type PlaceOrder struct {
	Market            Symbol           `json:"market"`
	Side              Side             `json:"side"`
	Price             *decimal.Decimal `json:"price"`
	Type              OrderType        `json:"type"`
	Size              decimal.Decimal  `json:"size"`
	ReduceOnly        bool             `json:"reduceOnly,omitempty"`
	Ioc               bool             `json:"ioc,omitempty"`
	PostOnly          bool             `json:"postOnly,omitempty"`
	ClientId          *string          `json:"clientId,omitempty"`
	RejectOnPriceBand bool             `json:"rejectOnPriceBand,omitempty"`
}

func (PlaceOrder) Method() string { return http.MethodPost }
func (PlaceOrder) Path() string   { return "/orders" }
func (PlaceOrder) Auth() bool     { return true }

// NewPlaceOrder builds a PlaceOrder, enforcing that limit orders carry a
// price before any wire call is attempted.
func NewPlaceOrder(market Symbol, side Side, orderType OrderType, size decimal.Decimal, price *decimal.Decimal) (PlaceOrder, error) {
	if orderType == OrderTypeLimit && price == nil {
		return PlaceOrder{}, ErrPlacingLimitOrderRequiresPrice
	}
	return PlaceOrder{Market: market, Side: side, Price: price, Type: orderType, Size: size}, nil
}

// Do dispatches PlaceOrder.
func (r PlaceOrder) Do(ctx context.Context, c *Client) (OrderInfo, error) {
	return Do[OrderInfo](ctx, c, r)
}

// ModifyOrder changes the price, size, or client id of a resting order.
// Exactly the non-nil fields are sent; the exchange treats this as
// cancel-and-replace, assigning a new order id.
type ModifyOrder struct {
	Id       Id               `json:"-"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Size     *decimal.Decimal `json:"size,omitempty"`
	ClientId *string          `json:"clientId,omitempty"`
}

func (ModifyOrder) Method() string         { return http.MethodPost }
func (ModifyOrder) Path() string           { return "/orders/{}/modify" }
func (ModifyOrder) Auth() bool             { return true }
func (r ModifyOrder) ResolvedPath() string { return "/orders/" + idString(r.Id) + "/modify" }

// Do dispatches ModifyOrder.
func (r ModifyOrder) Do(ctx context.Context, c *Client) (OrderInfo, error) {
	return Do[OrderInfo](ctx, c, r)
}

// GetOrder fetches one order by exchange-assigned id.
type GetOrder struct {
	Id Id `json:"-"`
}

func (GetOrder) Method() string         { return http.MethodGet }
func (GetOrder) Path() string           { return "/orders/{}" }
func (GetOrder) Auth() bool             { return true }
func (r GetOrder) ResolvedPath() string { return "/orders/" + idString(r.Id) }

// Do dispatches GetOrder.
func (r GetOrder) Do(ctx context.Context, c *Client) (OrderInfo, error) {
	return Do[OrderInfo](ctx, c, r)
}

// CancelOrder cancels one resting order by id.
type CancelOrder struct {
	Id Id `json:"-"`
}

func (CancelOrder) Method() string         { return http.MethodDelete }
func (CancelOrder) Path() string           { return "/orders/{}" }
func (CancelOrder) Auth() bool             { return true }
func (r CancelOrder) ResolvedPath() string { return "/orders/" + idString(r.Id) }

// Do dispatches CancelOrder.
func (r CancelOrder) Do(ctx context.Context, c *Client) (string, error) {
	return Do[string](ctx, c, r)
}

// CancelAllOrder cancels every order matching the given filters. An empty
// CancelAllOrder cancels everything on every market.
type CancelAllOrder struct {
	Market             *string `json:"market,omitempty"`
	Side               *Side   `json:"side,omitempty"`
	ConditionalOrdersOnly *bool `json:"conditionalOrdersOnly,omitempty"`
	LimitOrdersOnly    *bool   `json:"limitOrdersOnly,omitempty"`
}

func (CancelAllOrder) Method() string { return http.MethodDelete }
func (CancelAllOrder) Path() string   { return "/orders" }
func (CancelAllOrder) Auth() bool     { return true }

// Do dispatches CancelAllOrder.
func (r CancelAllOrder) Do(ctx context.Context, c *Client) (string, error) {
	return Do[string](ctx, c, r)
}

// CancelOrderByClientId cancels an order addressed by the client-assigned
// id supplied at placement time.
type CancelOrderByClientId struct {
	ClientId string `json:"-"`
}

func (CancelOrderByClientId) Method() string { return http.MethodDelete }
func (CancelOrderByClientId) Path() string   { return "/orders/by_client_id/{}" }
func (CancelOrderByClientId) Auth() bool     { return true }
func (r CancelOrderByClientId) ResolvedPath() string {
	return "/orders/by_client_id/" + r.ClientId
}

// Do dispatches CancelOrderByClientId.
func (r CancelOrderByClientId) Do(ctx context.Context, c *Client) (string, error) {
	return Do[string](ctx, c, r)
}

// GetOrderByClientId fetches an order by its client-assigned id.
type GetOrderByClientId struct {
	ClientId string `json:"-"`
}

func (GetOrderByClientId) Method() string { return http.MethodGet }
func (GetOrderByClientId) Path() string   { return "/orders/by_client_id/{}" }
func (GetOrderByClientId) Auth() bool     { return true }
func (r GetOrderByClientId) ResolvedPath() string {
	return "/orders/by_client_id/" + r.ClientId
}

// Do dispatches GetOrderByClientId.
func (r GetOrderByClientId) Do(ctx context.Context, c *Client) (OrderInfo, error) {
	return Do[OrderInfo](ctx, c, r)
}

// ModifyOrderByClientId changes the price and/or size of an order
// addressed by its client-assigned id.
type ModifyOrderByClientId struct {
	ClientId string           `json:"-"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Size     *decimal.Decimal `json:"size,omitempty"`
}

func (ModifyOrderByClientId) Method() string { return http.MethodPost }
func (ModifyOrderByClientId) Path() string   { return "/orders/by_client_id/{}/modify" }
func (ModifyOrderByClientId) Auth() bool     { return true }
func (r ModifyOrderByClientId) ResolvedPath() string {
	return "/orders/by_client_id/" + r.ClientId + "/modify"
}

// Do dispatches ModifyOrderByClientId.
func (r ModifyOrderByClientId) Do(ctx context.Context, c *Client) (OrderInfo, error) {
	return Do[OrderInfo](ctx, c, r)
}

// GetOrderHistory lists historical (no longer resting) orders.
type GetOrderHistory struct {
	Market    *string `json:"market,omitempty"`
	Side      *Side   `json:"side,omitempty"`
	Limit     *uint32 `json:"limit,omitempty"`
	StartTime *int64  `json:"start_time,omitempty"`
	EndTime   *int64  `json:"end_time,omitempty"`
}

func (GetOrderHistory) Method() string { return http.MethodGet }
func (GetOrderHistory) Path() string   { return "/orders/history" }
func (GetOrderHistory) Auth() bool     { return true }

// NewGetOrderHistory builds a GetOrderHistory with time.Time convenience
// parameters.
func NewGetOrderHistory(market *string, side *Side, limit *uint32, start, end time.Time) GetOrderHistory {
	return GetOrderHistory{Market: market, Side: side, Limit: limit, StartTime: timeMillis(start), EndTime: timeMillis(end)}
}

// Do dispatches GetOrderHistory.
func (r GetOrderHistory) Do(ctx context.Context, c *Client) ([]OrderInfo, error) {
	return Do[[]OrderInfo](ctx, c, r)
}

// PlaceTriggerOrder places a stop, trailing-stop, or take-profit order.
type PlaceTriggerOrder struct {
	Market           Symbol           `json:"market"`
	Side             Side             `json:"side"`
	Size             decimal.Decimal  `json:"size"`
	Type             OrderType        `json:"type"`
	TriggerPrice     *decimal.Decimal `json:"triggerPrice,omitempty"`
	ReduceOnly       bool             `json:"reduceOnly,omitempty"`
	RetryUntilFilled bool             `json:"retryUntilFilled,omitempty"`
	OrderPrice       *decimal.Decimal `json:"orderPrice,omitempty"`
	TrailValue       *decimal.Decimal `json:"trailValue,omitempty"`
}

func (PlaceTriggerOrder) Method() string { return http.MethodPost }
func (PlaceTriggerOrder) Path() string   { return "/conditional_orders" }
func (PlaceTriggerOrder) Auth() bool     { return true }

// Do dispatches PlaceTriggerOrder.
func (r PlaceTriggerOrder) Do(ctx context.Context, c *Client) (OrderInfo, error) {
	return Do[OrderInfo](ctx, c, r)
}
