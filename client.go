package ftx

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring-labs/ftx/orderbook"
	"github.com/shopspring-labs/ftx/rest"
	"github.com/shopspring-labs/ftx/ws"
)

// Client is the façade over the signed REST dispatcher and a client-side
// market store. It owns the REST client by value and keeps an indexed
// store of order book replicas keyed by symbol; Book hands out the stored
// replica itself, which callers update with Apply. Nothing in the store
// holds a pointer back to the Client.
type Client struct {
	rest *rest.Client
	opts Options

	booksMu sync.RWMutex
	books   map[string]*orderbook.Book
}

// New builds a Client for the given Options. It does not dial a
// WebSocket session; call Stream to open one.
func New(opts Options) *Client {
	endpoint := opts.Endpoint
	restClient := rest.NewClient(rest.Config{
		BaseURL:          endpoint.RESTBaseURL(),
		KeyHeader:        endpoint.KeyHeader(),
		TimestampHeader:  endpoint.TimestampHeader(),
		SignHeader:       endpoint.SignHeader(),
		SubaccountHeader: endpoint.SubaccountHeader(),
		Key:              opts.Credentials.Key,
		Secret:           opts.Credentials.Secret,
		Subaccount:       opts.Credentials.Subaccount,
	})
	return &Client{
		rest:  restClient,
		opts:  opts,
		books: make(map[string]*orderbook.Book),
	}
}

// Rest returns the underlying signed REST dispatcher for callers who need
// direct access to the request catalog (rest.GetMarkets{}.Do(ctx, c), etc.).
func (c *Client) Rest() *rest.Client { return c.rest }

// Stream opens a new WebSocket session against this Client's endpoint,
// authenticated with the same credentials as the REST client. The
// returned session is single-consumer and owned entirely by the caller;
// the Client keeps no reference to it.
func (c *Client) Stream(ctx context.Context, logger *slog.Logger) (*ws.Session, error) {
	session, err := ws.Connect(ctx, ws.Config{
		URL:        c.opts.Endpoint.WebsocketURL(),
		Key:        c.opts.Credentials.Key,
		Secret:     c.opts.Credentials.Secret,
		Subaccount: c.opts.Credentials.Subaccount,
		Logger:     logger,
	})
	if err != nil {
		return nil, wsErr(err)
	}
	return session, nil
}

// Book returns the client-side order book replica for symbol, creating an
// uninitialized one on first access. The replica is owned by the store,
// not by any session; callers apply ws.Item Orderbook frames to it via
// Apply themselves.
func (c *Client) Book(symbol string) *orderbook.Book {
	c.booksMu.RLock()
	b, ok := c.books[symbol]
	c.booksMu.RUnlock()
	if ok {
		return b
	}

	c.booksMu.Lock()
	defer c.booksMu.Unlock()
	if b, ok := c.books[symbol]; ok {
		return b
	}
	b = orderbook.New(symbol)
	c.books[symbol] = b
	return b
}

// DropBook discards the replica for symbol, e.g. after unsubscribing from
// its orderbook channel.
func (c *Client) DropBook(symbol string) {
	c.booksMu.Lock()
	defer c.booksMu.Unlock()
	delete(c.books, symbol)
}

// Markets fetches the full market list over REST.
func (c *Client) Markets(ctx context.Context) ([]rest.Market, error) {
	markets, err := rest.GetMarkets{}.Do(ctx, c.rest)
	if err != nil {
		return nil, restErr(err)
	}
	return markets, nil
}

// Market fetches one market by name over REST.
func (c *Client) Market(ctx context.Context, symbol string) (rest.Market, error) {
	market, err := rest.GetMarket{MarketName: symbol}.Do(ctx, c.rest)
	if err != nil {
		return rest.Market{}, restErr(err)
	}
	return market, nil
}

// Dial is a convenience constructor combining New and OptionsFromEnv,
// intended for example programs.
func Dial() (*Client, error) {
	opts, err := OptionsFromEnv()
	if err != nil {
		return nil, fmt.Errorf("ftx: %w", err)
	}
	return New(opts), nil
}
