package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal.NewFromString(%q) error = %v", s, err)
	}
	return d
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	c := NewClient(Config{
		BaseURL:          srv.URL,
		KeyHeader:        "FTX-KEY",
		TimestampHeader:  "FTX-TS",
		SignHeader:       "FTX-SIGN",
		SubaccountHeader: "FTX-SUBACCOUNT",
		Key:              "test-key",
		Secret:           "test-secret",
	})
	c.clock = func() time.Time { return time.UnixMilli(1588591856950) }
	return c, srv
}

func TestDoGetSuccess(t *testing.T) {
	t.Parallel()
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/markets" {
			t.Errorf("path = %q, want /markets", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"result":[{"name":"BTC-PERP"}]}`))
	})
	defer srv.Close()

	got, err := Do[[]Market](context.Background(), c, GetMarkets{})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "BTC-PERP" {
		t.Errorf("Do() = %+v, want one market BTC-PERP", got)
	}
}

func TestDoAPIError(t *testing.T) {
	t.Parallel()
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"Invalid market"}`))
	})
	defer srv.Close()

	_, err := Do[[]Market](context.Background(), c, GetMarkets{})
	if err == nil {
		t.Fatal("Do() error = nil, want an API error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Do() error = %v, want *APIError", err)
	}
	if apiErr.Message != "Invalid market" {
		t.Errorf("apiErr.Message = %q, want %q", apiErr.Message, "Invalid market")
	}
}

func TestDoAuthRequiresSecret(t *testing.T) {
	t.Parallel()
	c := NewClient(Config{
		BaseURL:         "http://example.invalid",
		KeyHeader:       "FTX-KEY",
		TimestampHeader: "FTX-TS",
		SignHeader:      "FTX-SIGN",
	})
	_, err := Do[[]OrderInfo](context.Background(), c, GetOpenOrders{})
	if err != ErrNoSecretConfigured {
		t.Errorf("Do() error = %v, want ErrNoSecretConfigured", err)
	}
}

func TestDoSignsAuthenticatedRequests(t *testing.T) {
	t.Parallel()
	var gotSign, gotTs string
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotSign = r.Header.Get("FTX-SIGN")
		gotTs = r.Header.Get("FTX-TS")
		w.Write([]byte(`{"success":true,"result":[]}`))
	})
	defer srv.Close()

	_, err := Do[[]OrderInfo](context.Background(), c, GetOpenOrders{})
	if err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if gotSign == "" {
		t.Error("FTX-SIGN header was not set for an authenticated request")
	}
	if gotTs != "1588591856950" {
		t.Errorf("FTX-TS = %q, want %q", gotTs, "1588591856950")
	}
}

func TestDoPlaceOrderSerializesNullPriceForMarketOrders(t *testing.T) {
	t.Parallel()
	var body map[string]any
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request body: %v", err)
		}
		w.Write([]byte(`{"success":true,"result":{"id":1}}`))
	})
	defer srv.Close()

	req, err := NewPlaceOrder("BTC-PERP", Buy, OrderTypeMarket, mustDecimal(t, "1"), nil)
	if err != nil {
		t.Fatalf("NewPlaceOrder() error = %v", err)
	}
	if _, err := Do[OrderInfo](context.Background(), c, req); err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	priceVal, ok := body["price"]
	if !ok {
		t.Fatal(`body missing "price" key; market orders must send price: null`)
	}
	if priceVal != nil {
		t.Errorf(`body["price"] = %v, want nil`, priceVal)
	}
}

func TestNewPlaceOrderRejectsLimitWithoutPrice(t *testing.T) {
	t.Parallel()
	_, err := NewPlaceOrder("BTC-PERP", Buy, OrderTypeLimit, mustDecimal(t, "1"), nil)
	if err != ErrPlacingLimitOrderRequiresPrice {
		t.Errorf("NewPlaceOrder() error = %v, want ErrPlacingLimitOrderRequiresPrice", err)
	}
}

func TestDoCancelAllSendsEmptyFilterBody(t *testing.T) {
	t.Parallel()
	var gotBody string
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 1024)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		w.Write([]byte(`{"success":true,"result":"Orders queued for cancelation"}`))
	})
	defer srv.Close()

	if _, err := Do[string](context.Background(), c, CancelAllOrder{}); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if gotBody != "{}" {
		t.Errorf("body = %q, want %q for a no-filter CancelAllOrder", gotBody, "{}")
	}
}

func TestDoNoPayloadRequestSendsEmptyBody(t *testing.T) {
	t.Parallel()
	var gotBody string
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 1024)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		w.Write([]byte(`{"success":true,"result":{}}`))
	})
	defer srv.Close()

	if _, err := Do[struct{}](context.Background(), c, noPayloadRequest{}); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if gotBody != "" {
		t.Errorf("body = %q, want empty body for a request with no payload fields", gotBody)
	}
}

// noPayloadRequest is a zero-field POST descriptor used only to exercise
// marshalBody's empty-payload branch.
type noPayloadRequest struct{}

func (noPayloadRequest) Method() string { return http.MethodPost }
func (noPayloadRequest) Path() string   { return "/orders/lock" }
func (noPayloadRequest) Auth() bool     { return true }
