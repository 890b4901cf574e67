package rest

import "errors"

// ErrNoSecretConfigured is returned when an AUTH-required request is
// dispatched on a Client with no secret configured. The request is never
// sent: no silent unsigned fallback exists.
var ErrNoSecretConfigured = errors.New("ftx: no secret configured for authenticated request")

// ErrPlacingLimitOrderRequiresPrice is returned before any wire call when a
// limit order is placed with no price.
var ErrPlacingLimitOrderRequiresPrice = errors.New("ftx: placing a limit order requires a price")
