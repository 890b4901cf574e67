package signing

import "testing"

func TestSign(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secret  string
		payload string
		want    string
	}{
		// Computed independently via RFC 2104 HMAC-SHA256 reference vectors.
		{"empty payload", "secret", "", "f9e66e179b6747ae54108f82f8ade8b3c25d76fd30afde6c395822c530196169"},
		{"known payload", "key", "The quick brown fox jumps over the lazy dog", "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Sign(tt.secret, tt.payload)
			if got != tt.want {
				t.Errorf("Sign(%q, %q) = %q, want %q", tt.secret, tt.payload, got, tt.want)
			}
			if len(got) != 64 {
				t.Errorf("Sign() length = %d, want 64", len(got))
			}
		})
	}
}

func TestRESTPayload(t *testing.T) {
	t.Parallel()

	got := RESTPayload(1588591856950, "GET", "/orders?market=BTC-PERP", "")
	want := "1588591856950GET/api/orders?market=BTC-PERP"
	if got != want {
		t.Errorf("RESTPayload() = %q, want %q", got, want)
	}
}

func TestRESTPayloadWithBody(t *testing.T) {
	t.Parallel()

	got := RESTPayload(1588591856950, "POST", "/orders", `{"market":"BTC-PERP"}`)
	want := `1588591856950POST/api/orders{"market":"BTC-PERP"}`
	if got != want {
		t.Errorf("RESTPayload() = %q, want %q", got, want)
	}
}

func TestWebsocketLoginPayload(t *testing.T) {
	t.Parallel()

	got := WebsocketLoginPayload(1557246346499)
	want := "1557246346499websocket_login"
	if got != want {
		t.Errorf("WebsocketLoginPayload() = %q, want %q", got, want)
	}
}
