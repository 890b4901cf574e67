// Package rest implements the signed HTTP request/response layer: the
// envelope parser, the request dispatcher, and the typed request catalog
// covering markets, accounts, orders, wallet, subaccounts, futures and
// spot-margin lending.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/shopspring-labs/ftx/internal/signing"
)

// Clock returns the current time. It exists so tests can substitute a fixed
// time without touching the system clock; production code always uses
// time.Now via NewClient's default.
type Clock func() time.Time

// Client is the signed REST dispatcher. It holds the endpoint base URL,
// the header-name prefix, and credentials; it is safe to share across
// goroutines because it carries no per-call mutable state beyond the
// pooled resty client.
type Client struct {
	http       *resty.Client
	baseURL    string
	keyHeader  string
	tsHeader   string
	signHeader string
	subHeader  string
	key        string
	secret     string
	subaccount string
	clock      Clock
	logger     *slog.Logger
}

// Config carries everything NewClient needs to address and authenticate
// against one exchange deployment.
type Config struct {
	BaseURL          string
	KeyHeader        string
	TimestampHeader  string
	SignHeader       string
	SubaccountHeader string
	Key              string
	Secret           string
	Subaccount       string
	Logger           *slog.Logger
}

// NewClient builds a Client. The <prefix>-KEY header, when a key is
// configured, is installed as a default header at construction time — this
// mirrors the wire contract rather than being an optimization.
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	if cfg.Key != "" {
		httpClient.SetHeader(cfg.KeyHeader, cfg.Key)
	}
	if cfg.Subaccount != "" {
		httpClient.SetHeader(cfg.SubaccountHeader, url.QueryEscape(cfg.Subaccount))
	}

	return &Client{
		http:       httpClient,
		baseURL:    cfg.BaseURL,
		keyHeader:  cfg.KeyHeader,
		tsHeader:   cfg.TimestampHeader,
		signHeader: cfg.SignHeader,
		subHeader:  cfg.SubaccountHeader,
		key:        cfg.Key,
		secret:     cfg.Secret,
		subaccount: cfg.Subaccount,
		clock:      time.Now,
		logger:     logger.With("component", "ftx.rest"),
	}
}

// Do dispatches req and decodes its response into T: it computes the
// timestamp and wire path, serializes the body or query, signs the request
// when Auth() requires it, executes it, and decodes the envelope.
func Do[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var zero T

	timestamp := c.clock().UnixMilli()
	path := resolvePath(req)

	var query, body string
	if req.Method() == http.MethodGet {
		query = encodeQuery(req)
	} else {
		raw, err := marshalBody(req)
		if err != nil {
			return zero, fmt.Errorf("ftx: marshal request body: %w", err)
		}
		body = raw
	}

	wirePath := path
	if query != "" {
		wirePath = path + "?" + query
	}

	r := c.http.R().SetContext(ctx)

	if req.Auth() {
		if c.secret == "" {
			return zero, ErrNoSecretConfigured
		}
		payload := signing.RESTPayload(timestamp, req.Method(), wirePath, body)
		sign := signing.Sign(c.secret, payload)
		r.SetHeader(c.signHeader, sign)
	}

	r.SetHeader(c.tsHeader, fmt.Sprintf("%d", timestamp))
	if body != "" {
		r.SetBody(body)
	}

	c.logger.Debug("dispatching request", "method", req.Method(), "path", path, "auth", req.Auth())

	var resp *resty.Response
	var err error
	switch req.Method() {
	case http.MethodGet:
		r.SetQueryString(query)
		resp, err = r.Execute(http.MethodGet, path)
	default:
		resp, err = r.Execute(req.Method(), path)
	}
	if err != nil {
		return zero, fmt.Errorf("ftx: %s %s: %w", req.Method(), path, err)
	}

	return parseEnvelope[T](resp.Body())
}

// marshalBody serializes req to JSON. A descriptor with no exported
// payload fields (e.g. CancelOrder, whose only field is `json:"-"`)
// serializes to the empty string rather than "{}", so no-payload requests
// send a genuinely empty body.
func marshalBody(req Request) (string, error) {
	if isEmptyPayload(req) {
		return "", nil
	}
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func isEmptyPayload(req Request) bool {
	v := reflect.ValueOf(req)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return true
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return true
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath == "" && field.Tag.Get("json") != "-" {
			return false
		}
	}
	return true
}
