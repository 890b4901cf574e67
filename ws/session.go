// Package ws implements the authenticated WebSocket session: login,
// bounded-lookahead subscribe/unsubscribe, a 15s heartbeat, and a
// single-consumer pump that demultiplexes inbound frames into a FIFO of
// typed Items.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shopspring-labs/ftx/internal/signing"
	"github.com/shopspring-labs/ftx/rest"
)

// subscriptionLookahead bounds how many frames Subscribe/Unsubscribe will
// read while waiting for their ack before giving up.
const subscriptionLookahead = 100

const defaultHeartbeatInterval = 15 * time.Second

const writeTimeout = 10 * time.Second

// State is the session's position in its Connecting -> Open -> Closed/Failed
// lifecycle.
type State int

const (
	StateConnecting State = iota
	StateOpen
	StateClosed
	StateFailed
)

// Config addresses and authenticates one session.
type Config struct {
	URL               string
	Key               string
	Secret            string
	Subaccount        string
	HeartbeatInterval time.Duration
	Logger            *slog.Logger
}

// Session is a single-consumer authenticated WebSocket connection. Every
// exported method must be called from one logical goroutine; Session does
// not synchronize concurrent callers beyond guarding the write path.
type Session struct {
	conn   *websocket.Conn
	connMu sync.Mutex

	state         State
	authenticated bool
	failErr       error

	activeChannels map[string]Channel
	inbound        []Item

	heartbeatInterval time.Duration
	nextPing         time.Time
	clock            func() time.Time

	logger *slog.Logger
}

// Connect dials url and, if key and secret are configured, immediately
// sends the login frame. No login acknowledgement is awaited; a bad
// credential surfaces later as a rejected private-channel subscription.
func Connect(ctx context.Context, cfg Config) (*Session, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	heartbeat := cfg.HeartbeatInterval
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeatInterval
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("ws: dial %s: %w", cfg.URL, err)
	}

	s := &Session{
		conn:              conn,
		state:             StateConnecting,
		activeChannels:    make(map[string]Channel),
		heartbeatInterval: heartbeat,
		clock:             time.Now,
		logger:            logger.With("component", "ftx.ws"),
	}
	s.nextPing = s.clock().Add(s.heartbeatInterval)

	if cfg.Key != "" && cfg.Secret != "" {
		timestamp := s.clock().UnixMilli()
		payload := signing.WebsocketLoginPayload(timestamp)
		frame := loginFrame{
			Op: "login",
			Args: loginFrameArg{
				Key:        cfg.Key,
				Sign:       signing.Sign(cfg.Secret, payload),
				Time:       timestamp,
				Subaccount: cfg.Subaccount,
			},
		}
		if err := s.writeJSON(frame); err != nil {
			conn.Close()
			return nil, fmt.Errorf("ws: send login frame: %w", err)
		}
		s.authenticated = true
	}

	s.state = StateOpen
	s.logger.Info("session open", "authenticated", s.authenticated)
	return s, nil
}

// State reports the session's current lifecycle position.
func (s *Session) State() State { return s.state }

// IsAuthenticated reports whether the login frame was sent at connect time.
func (s *Session) IsAuthenticated() bool { return s.authenticated }

// ActiveChannels returns the channels currently subscribed.
func (s *Session) ActiveChannels() []Channel {
	out := make([]Channel, 0, len(s.activeChannels))
	for _, c := range s.activeChannels {
		out = append(out, c)
	}
	return out
}

// Close discards the session. The wire contract tolerates a bare TCP
// close, so this is a convenience, not a required handshake.
func (s *Session) Close() error {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	s.state = StateClosed
	return s.conn.Close()
}

func (s *Session) writeJSON(v any) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	s.conn.SetWriteDeadline(s.clock().Add(writeTimeout))
	return s.conn.WriteJSON(v)
}

func (s *Session) fail(err error) error {
	s.state = StateFailed
	s.failErr = &ErrSessionFailed{Cause: err}
	s.logger.Error("session failed", "error", err)
	return s.failErr
}

// checkUsable returns the session's terminal error if it is not Open.
func (s *Session) checkUsable() error {
	switch s.state {
	case StateFailed:
		return s.failErr
	case StateClosed:
		return ErrSessionClosed
	}
	return nil
}

// Subscribe adds channel to the session. Private channels require an
// authenticated session; on any failure active_channels is left
// unchanged.
func (s *Session) Subscribe(ctx context.Context, channel Channel) error {
	if err := s.checkUsable(); err != nil {
		return err
	}
	if channel.Name.private() && !s.authenticated {
		return ErrSocketNotAuthenticated
	}

	frame := subscribeFrame{Op: "subscribe", Channel: string(channel.Name), Market: channel.Market}
	if err := s.writeJSON(frame); err != nil {
		return s.fail(err)
	}

	for i := 0; i < subscriptionLookahead; i++ {
		env, err := s.nextFrame(ctx)
		if err != nil {
			return s.fail(err)
		}
		if env.Type == typeSubscribed && env.Channel == string(channel.Name) && env.Market == channel.Market {
			s.activeChannels[channel.key()] = channel
			return nil
		}
		s.bufferData(env)
	}
	return ErrMissingSubscriptionConfirmation
}

// Unsubscribe removes channel from the session. It fails if channel is
// not currently active.
func (s *Session) Unsubscribe(ctx context.Context, channel Channel) error {
	if err := s.checkUsable(); err != nil {
		return err
	}
	if _, ok := s.activeChannels[channel.key()]; !ok {
		return ErrNotSubscribedToThisChannel
	}

	frame := subscribeFrame{Op: "unsubscribe", Channel: string(channel.Name), Market: channel.Market}
	if err := s.writeJSON(frame); err != nil {
		return s.fail(err)
	}

	for i := 0; i < subscriptionLookahead; i++ {
		env, err := s.nextFrame(ctx)
		if err != nil {
			return s.fail(err)
		}
		if env.Type == typeUnsubscribed && env.Channel == string(channel.Name) && env.Market == channel.Market {
			delete(s.activeChannels, channel.key())
			return nil
		}
		s.bufferData(env)
	}
	return ErrMissingUnsubscriptionConfirmation
}

// Next returns the head of the inbound buffer if non-empty, else drives
// the pump (heartbeat ticks and frame reads) until one Item is produced
// or a fatal error occurs.
func (s *Session) Next(ctx context.Context) (Item, error) {
	if err := s.checkUsable(); err != nil {
		return Item{}, err
	}
	if len(s.inbound) > 0 {
		item := s.inbound[0]
		s.inbound = s.inbound[1:]
		return item, nil
	}

	for {
		env, err := s.nextFrame(ctx)
		if err != nil {
			return Item{}, s.fail(err)
		}
		items := classify(env)
		if len(items) == 0 {
			continue
		}
		s.inbound = append(s.inbound, items[1:]...)
		return items[0], nil
	}
}

// bufferData classifies env and appends any resulting Items to the
// inbound buffer, used when a data frame arrives while Subscribe or
// Unsubscribe is awaiting its ack.
func (s *Session) bufferData(env *inboundEnvelope) {
	s.inbound = append(s.inbound, classify(env)...)
}

// nextFrame reads the next frame, cooperatively alternating with the
// heartbeat: the read deadline is the next heartbeat tick, and a read
// timeout sends a ping and retries rather than failing. Pong frames are
// consumed silently and never returned.
func (s *Session) nextFrame(ctx context.Context) (*inboundEnvelope, error) {
	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		deadline := s.nextPing
		if deadline.Before(s.clock()) {
			deadline = s.clock().Add(time.Millisecond)
		}
		s.conn.SetReadDeadline(deadline)

		_, data, err := s.conn.ReadMessage()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				if err := s.sendPing(); err != nil {
					return nil, err
				}
				continue
			}
			return nil, err
		}

		var env inboundEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("ws: decode frame: %w", err)
		}
		if env.Type == typePong {
			continue
		}
		return &env, nil
	}
}

func (s *Session) sendPing() error {
	s.nextPing = s.clock().Add(s.heartbeatInterval)
	return s.writeJSON(pingFrame{Op: "ping"})
}

// classify decodes env.Data according to env.Channel and returns the
// Items it represents. A trades frame carrying N trades yields N Items,
// preserving order. Unknown or empty data yields no Items.
func classify(env *inboundEnvelope) []Item {
	if len(env.Data) == 0 {
		return nil
	}

	switch ChannelName(env.Channel) {
	case ChannelTicker:
		var t Ticker
		if json.Unmarshal(env.Data, &t) != nil {
			return nil
		}
		return []Item{{Kind: ItemTicker, Market: env.Market, Ticker: t}}

	case ChannelTrades:
		var trades []rest.Trade
		if json.Unmarshal(env.Data, &trades) != nil {
			return nil
		}
		items := make([]Item, len(trades))
		for i, tr := range trades {
			items[i] = Item{Kind: ItemTrade, Market: env.Market, Trade: tr}
		}
		return items

	case ChannelOrderbook:
		var p orderbookPayload
		if json.Unmarshal(env.Data, &p) != nil {
			return nil
		}
		return []Item{{Kind: ItemOrderbook, Market: env.Market, Orderbook: p.toFrame()}}

	case ChannelFills:
		var f rest.Fill
		if json.Unmarshal(env.Data, &f) != nil {
			return nil
		}
		return []Item{{Kind: ItemFill, Market: env.Market, Fill: f}}

	case ChannelOrders:
		var o rest.OrderInfo
		if json.Unmarshal(env.Data, &o) != nil {
			return nil
		}
		return []Item{{Kind: ItemOrder, Market: env.Market, Order: o}}

	default:
		return nil
	}
}
