// Package signing implements the HMAC-SHA256 request-signing primitive
// shared by the REST dispatcher and the WebSocket login step.
package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Sign computes HMAC-SHA256 over payload keyed by secret and returns the
// lowercase hex digest. It is a pure function: no clock access, no I/O.
func Sign(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// RESTPayload builds the canonical REST signing payload:
// "<ms_ts><METHOD>/api<path_including_query><body>", concatenated with no
// separators. path must be byte-identical to what is sent on the wire,
// including query encoding.
func RESTPayload(timestampMs int64, method, path, body string) string {
	return strconv.FormatInt(timestampMs, 10) + method + "/api" + path + body
}

// WebsocketLoginPayload builds the canonical payload for the WebSocket
// login frame: "<ms_ts>websocket_login".
func WebsocketLoginPayload(timestampMs int64) string {
	return strconv.FormatInt(timestampMs, 10) + "websocket_login"
}
