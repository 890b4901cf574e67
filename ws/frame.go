package ws

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopspring-labs/ftx/orderbook"
	"github.com/shopspring-labs/ftx/rest"
)

// ChannelName identifies one of the exchange's subscribable streams.
type ChannelName string

const (
	ChannelOrderbook ChannelName = "orderbook"
	ChannelTrades    ChannelName = "trades"
	ChannelTicker    ChannelName = "ticker"
	ChannelFills     ChannelName = "fills"
	ChannelOrders    ChannelName = "orders"
)

// private reports whether subscribing to name requires an authenticated
// session. Fills and Orders carry account data; everything else is public.
func (n ChannelName) private() bool {
	return n == ChannelFills || n == ChannelOrders
}

// Channel is one subscribable stream: a public channel is scoped to a
// market, a private channel (Fills, Orders) is account-wide and carries
// no market.
type Channel struct {
	Name   ChannelName
	Market string
}

// Orderbook returns the public order-book-delta channel for market.
func Orderbook(market string) Channel { return Channel{Name: ChannelOrderbook, Market: market} }

// Trades returns the public trades channel for market.
func Trades(market string) Channel { return Channel{Name: ChannelTrades, Market: market} }

// Ticker returns the public ticker channel for market.
func Ticker(market string) Channel { return Channel{Name: ChannelTicker, Market: market} }

// Fills is the private fills channel; it carries no market.
var Fills = Channel{Name: ChannelFills}

// Orders is the private order-lifecycle channel; it carries no market.
var Orders = Channel{Name: ChannelOrders}

func (c Channel) key() string { return string(c.Name) + ":" + c.Market }

// loginFrame is the client->server login op. Sign is computed by the
// session from internal/signing before this is marshaled.
type loginFrame struct {
	Op   string        `json:"op"`
	Args loginFrameArg `json:"args"`
}

type loginFrameArg struct {
	Key        string `json:"key"`
	Sign       string `json:"sign"`
	Time       int64  `json:"time"`
	Subaccount string `json:"subaccount,omitempty"`
}

type subscribeFrame struct {
	Op      string `json:"op"`
	Channel string `json:"channel"`
	Market  string `json:"market,omitempty"`
}

type pingFrame struct {
	Op string `json:"op"`
}

// inboundEnvelope is the server->client frame shape: a control or data
// message tagged by Type, optionally scoped to Market, carrying a raw
// Data payload whose shape depends on Type and the subscribed channel.
type inboundEnvelope struct {
	Market  string          `json:"market"`
	Channel string          `json:"channel"`
	Type    string          `json:"type"`
	Code    int             `json:"code"`
	Msg     string          `json:"msg"`
	Data    json.RawMessage `json:"data"`
}

const (
	typeSubscribed   = "subscribed"
	typeUnsubscribed = "unsubscribed"
	typePartial      = "partial"
	typeUpdate       = "update"
	typeError        = "error"
	typePong         = "pong"
	typeInfo         = "info"
)

// Ticker is the best bid/ask snapshot delivered on the ticker channel.
type Ticker struct {
	Bid     decimal.Decimal `json:"bid"`
	Ask     decimal.Decimal `json:"ask"`
	BidSize decimal.Decimal `json:"bidSize"`
	AskSize decimal.Decimal `json:"askSize"`
	Last    decimal.Decimal `json:"last"`
	Time    time.Time       `json:"time"`
}

// orderbookPayload mirrors the wire shape of an orderbook data frame;
// it is translated into an orderbook.Frame before being handed to the
// caller, so the caller never sees the wire's [price,size] pairs.
type orderbookPayload struct {
	Action   orderbook.Action    `json:"action"`
	Bids     [][2]decimal.Decimal `json:"bids"`
	Asks     [][2]decimal.Decimal `json:"asks"`
	Checksum uint32              `json:"checksum"`
	Time     float64             `json:"time"`
}

func (p orderbookPayload) toFrame() orderbook.Frame {
	return orderbook.Frame{
		Action:   p.Action,
		Bids:     toLevels(p.Bids),
		Asks:     toLevels(p.Asks),
		Checksum: p.Checksum,
	}
}

func toLevels(pairs [][2]decimal.Decimal) []orderbook.Level {
	levels := make([]orderbook.Level, len(pairs))
	for i, pair := range pairs {
		levels[i] = orderbook.Level{Price: pair[0], Size: pair[1]}
	}
	return levels
}

// ItemKind discriminates the payload carried by an Item.
type ItemKind int

const (
	ItemOrderbook ItemKind = iota
	ItemTrade
	ItemTicker
	ItemFill
	ItemOrder
)

// Item is one unit handed to the consumer by Next: exactly one of the
// typed fields matching Kind is populated. A trades frame carrying N
// trades is demultiplexed into N Items, each with Kind == ItemTrade.
type Item struct {
	Kind      ItemKind
	Market    string
	Orderbook orderbook.Frame
	Trade     rest.Trade
	Ticker    Ticker
	Fill      rest.Fill
	Order     rest.OrderInfo
}
