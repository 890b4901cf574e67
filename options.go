// Package ftx is a client library for an FTX-style centralized derivatives
// exchange. It exposes a signed REST client (ftx/rest), a live WebSocket
// subscription engine (ftx/ws), and a client-side order book replica
// (ftx/orderbook), wired together by the Client facade in this package.
package ftx

import (
	"fmt"
	"os"
)

// Endpoint selects which exchange deployment a Client talks to. It derives
// the REST base URL, the WebSocket URL, and the header-name prefix used for
// signed requests — nothing else about a Client depends on the variant.
type Endpoint int

const (
	// Com is the flagship ftx.com deployment.
	Com Endpoint = iota
	// Us is the US-regulated ftx.us deployment.
	Us
)

// String renders the endpoint name for logging.
func (e Endpoint) String() string {
	switch e {
	case Us:
		return "us"
	default:
		return "com"
	}
}

// RESTBaseURL returns the signed-REST API base for this endpoint.
func (e Endpoint) RESTBaseURL() string {
	switch e {
	case Us:
		return "https://ftx.us/api"
	default:
		return "https://ftx.com/api"
	}
}

// WebsocketURL returns the streaming endpoint for this variant.
func (e Endpoint) WebsocketURL() string {
	switch e {
	case Us:
		return "wss://ftx.us/ws"
	default:
		return "wss://ftx.com/ws"
	}
}

// HeaderPrefix returns the header-name prefix ("FTX" or "FTXUS") that the
// signing and subaccount headers are built from.
func (e Endpoint) HeaderPrefix() string {
	switch e {
	case Us:
		return "FTXUS"
	default:
		return "FTX"
	}
}

// KeyHeader, TimestampHeader, SignHeader and SubaccountHeader return the
// concrete wire header names for this endpoint, e.g. "FTX-KEY" / "FTXUS-KEY".
func (e Endpoint) KeyHeader() string        { return e.HeaderPrefix() + "-KEY" }
func (e Endpoint) TimestampHeader() string  { return e.HeaderPrefix() + "-TS" }
func (e Endpoint) SignHeader() string       { return e.HeaderPrefix() + "-SIGN" }
func (e Endpoint) SubaccountHeader() string { return e.HeaderPrefix() + "-SUBACCOUNT" }

// Credentials holds the API key triplet used to sign authenticated
// requests. All fields are optional: a Client with no Secret can still
// perform unauthenticated requests, but any AUTH-required request fails
// with ErrNoSecretConfigured rather than being sent unsigned.
type Credentials struct {
	Key        string
	Secret     string
	Subaccount string
}

// HasSecret reports whether authenticated requests can be signed.
func (c Credentials) HasSecret() bool { return c.Secret != "" }

// Options configures a Client. Endpoint and Credentials are immutable for
// the lifetime of the Client built from them.
type Options struct {
	Endpoint    Endpoint
	Credentials Credentials
}

// Default returns Options for the ftx.com endpoint with no credentials —
// suitable for public-market-data-only use.
func Default() Options {
	return Options{Endpoint: Com}
}

// DefaultUS is Default but targeting ftx.us.
func DefaultUS() Options {
	return Options{Endpoint: Us}
}

// WithCredentials returns a copy of o authenticated with the given key/secret.
func (o Options) WithCredentials(key, secret string) Options {
	o.Credentials.Key = key
	o.Credentials.Secret = secret
	return o
}

// WithSubaccount returns a copy of o scoped to the named subaccount.
func (o Options) WithSubaccount(subaccount string) Options {
	o.Credentials.Subaccount = subaccount
	return o
}

// OptionsFromEnv builds Options from API_KEY, API_SECRET and SUBACCOUNT
// environment variables. It is intended for example programs and is not
// used by the library core itself.
func OptionsFromEnv() (Options, error) {
	key := os.Getenv("API_KEY")
	secret := os.Getenv("API_SECRET")
	if key == "" || secret == "" {
		return Options{}, fmt.Errorf("ftx: API_KEY and API_SECRET must be set")
	}
	return Default().WithCredentials(key, secret).WithSubaccount(os.Getenv("SUBACCOUNT")), nil
}

// OptionsFromEnvUS is OptionsFromEnv targeting ftx.us.
func OptionsFromEnvUS() (Options, error) {
	opts, err := OptionsFromEnv()
	if err != nil {
		return Options{}, err
	}
	opts.Endpoint = Us
	return opts, nil
}
