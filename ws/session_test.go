package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{}

// newTestSession starts an httptest server that upgrades to a WebSocket
// and hands the server-side connection to handle, then dials a Session
// against it.
func newTestSession(t *testing.T, cfg Config, handle func(*websocket.Conn)) *Session {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		go func() {
			defer conn.Close()
			handle(conn)
		}()
	}))
	t.Cleanup(srv.Close)

	cfg.URL = "ws" + strings.TrimPrefix(srv.URL, "http")
	s, err := Connect(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestConnectSendsLoginFrame(t *testing.T) {
	t.Parallel()

	received := make(chan loginFrame, 1)
	s := newTestSession(t, Config{Key: "k", Secret: "s"}, func(conn *websocket.Conn) {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var got loginFrame
		json.Unmarshal(data, &got)
		received <- got
	})

	if !s.IsAuthenticated() {
		t.Error("IsAuthenticated() = false, want true")
	}

	select {
	case got := <-received:
		if got.Op != "login" || got.Args.Key != "k" {
			t.Errorf("server observed login frame = %+v", got)
		}
		if got.Args.Sign == "" {
			t.Error("login frame sign is empty")
		}
	case <-time.After(time.Second):
		t.Fatal("server never observed a login frame")
	}
}

func TestConnectWithoutCredentialsSkipsLogin(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, Config{}, func(conn *websocket.Conn) {
		conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
		conn.ReadMessage()
	})

	if s.IsAuthenticated() {
		t.Error("IsAuthenticated() = true, want false with no credentials")
	}
}

func TestSubscribePublicChannelSucceeds(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, Config{}, func(conn *websocket.Conn) {
		_, _, err := conn.ReadMessage()
		if err != nil {
			return
		}
		conn.WriteJSON(map[string]string{"channel": "trades", "market": "BTC-PERP", "type": "subscribed"})
		conn.SetReadDeadline(time.Now().Add(time.Second))
		conn.ReadMessage()
	})

	if err := s.Subscribe(context.Background(), Trades("BTC-PERP")); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	active := s.ActiveChannels()
	if len(active) != 1 || active[0] != Trades("BTC-PERP") {
		t.Errorf("ActiveChannels() = %+v, want [Trades(BTC-PERP)]", active)
	}
}

func TestSubscribePrivateWithoutAuthFails(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, Config{}, func(conn *websocket.Conn) {
		conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
		conn.ReadMessage()
	})

	err := s.Subscribe(context.Background(), Fills)
	if err != ErrSocketNotAuthenticated {
		t.Errorf("Subscribe() error = %v, want ErrSocketNotAuthenticated", err)
	}
	if len(s.ActiveChannels()) != 0 {
		t.Error("ActiveChannels() is non-empty after a rejected subscribe")
	}
}

func TestUnsubscribeNotActiveFails(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, Config{}, func(conn *websocket.Conn) {
		conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
		conn.ReadMessage()
	})

	err := s.Unsubscribe(context.Background(), Ticker("BTC-PERP"))
	if err != ErrNotSubscribedToThisChannel {
		t.Errorf("Unsubscribe() error = %v, want ErrNotSubscribedToThisChannel", err)
	}
}

func TestSubscribeMissingConfirmationFails(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, Config{}, func(conn *websocket.Conn) {
		_, _, err := conn.ReadMessage()
		if err != nil {
			return
		}
		for i := 0; i < subscriptionLookahead; i++ {
			conn.WriteJSON(map[string]string{"channel": "ticker", "market": "ETH-PERP", "type": "update"})
		}
		conn.SetReadDeadline(time.Now().Add(time.Second))
		conn.ReadMessage()
	})

	err := s.Subscribe(context.Background(), Orderbook("BTC-PERP"))
	if err != ErrMissingSubscriptionConfirmation {
		t.Errorf("Subscribe() error = %v, want ErrMissingSubscriptionConfirmation", err)
	}
}

func TestNextDemultiplexesTradesFrame(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, Config{}, func(conn *websocket.Conn) {
		conn.WriteJSON(map[string]any{
			"channel": "trades",
			"market":  "BTC-PERP",
			"type":    "update",
			"data": []map[string]any{
				{"id": 1, "price": "100", "size": "1", "side": "buy", "liquidation": false, "time": "2020-05-04T08:10:00+00:00"},
				{"id": 2, "price": "101", "size": "2", "side": "sell", "liquidation": false, "time": "2020-05-04T08:10:01+00:00"},
			},
		})
		conn.SetReadDeadline(time.Now().Add(time.Second))
		conn.ReadMessage()
	})

	first, err := s.Next(context.Background())
	if err != nil {
		t.Fatalf("Next() #1 error = %v", err)
	}
	second, err := s.Next(context.Background())
	if err != nil {
		t.Fatalf("Next() #2 error = %v", err)
	}

	if first.Kind != ItemTrade || first.Trade.Id != 1 {
		t.Errorf("first item = %+v, want trade id 1", first)
	}
	if second.Kind != ItemTrade || second.Trade.Id != 2 {
		t.Errorf("second item = %+v, want trade id 2", second)
	}
}

func TestNextDropsPongBeforeData(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, Config{}, func(conn *websocket.Conn) {
		conn.WriteJSON(map[string]string{"type": "pong"})
		conn.WriteJSON(map[string]any{
			"channel": "ticker",
			"market":  "BTC-PERP",
			"type":    "update",
			"data":    map[string]string{"bid": "1", "ask": "2", "bidSize": "1", "askSize": "1", "last": "1.5"},
		})
		conn.SetReadDeadline(time.Now().Add(time.Second))
		conn.ReadMessage()
	})

	item, err := s.Next(context.Background())
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if item.Kind != ItemTicker || item.Market != "BTC-PERP" {
		t.Errorf("Next() = %+v, want a ticker item for BTC-PERP", item)
	}
}
