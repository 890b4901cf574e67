package orderbook

import (
	"hash/crc32"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shopspring-labs/ftx/rest"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestChecksumFormatting(t *testing.T) {
	t.Parallel()
	b := New("BTC/USD")
	bids := []Level{{Price: d("0.1"), Size: d("5")}}
	asks := []Level{{Price: d("0.000075"), Size: d("2")}}

	want := crc32.ChecksumIEEE([]byte("0.1:5.0:7.5e-05:2.0"))
	err := b.Apply(Frame{Action: Partial, Bids: bids, Asks: asks, Checksum: want})
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
}

func TestQuoteWalk(t *testing.T) {
	t.Parallel()
	b := New("BTC-PERP")
	seedBook(t, b, nil, map[string]string{"5": "20", "6": "30", "7": "40"})

	cases := []struct {
		size string
		want string
		ok   bool
	}{
		{"25", "5.2", true},
		{"50", "5.6", true},
		{"70", "6", true},
		{"100", "", false},
	}
	for _, tc := range cases {
		got, ok := b.Quote(rest.Buy, d(tc.size))
		if ok != tc.ok {
			t.Errorf("Quote(Buy, %s) ok = %v, want %v", tc.size, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(d(tc.want)) {
			t.Errorf("Quote(Buy, %s) = %s, want %s", tc.size, got, tc.want)
		}
	}
}

func TestBestBidAskAndMid(t *testing.T) {
	t.Parallel()
	b := New("BTC-PERP")
	seedBook(t, b,
		map[string]string{"4": "5", "3": "10", "2": "15"},
		map[string]string{"5": "20", "6": "30"},
	)

	bidPrice, ok := b.BidPrice()
	if !ok || !bidPrice.Equal(d("4")) {
		t.Errorf("BidPrice() = %v, %v, want 4, true", bidPrice, ok)
	}
	askPrice, ok := b.AskPrice()
	if !ok || !askPrice.Equal(d("5")) {
		t.Errorf("AskPrice() = %v, %v, want 5, true", askPrice, ok)
	}
	mid, ok := b.MidPrice()
	if !ok || !mid.Equal(d("4.5")) {
		t.Errorf("MidPrice() = %v, %v, want 4.5, true", mid, ok)
	}
	bestBid, ok := b.BestBid()
	if !ok || !bestBid.Price.Equal(d("4")) || !bestBid.Size.Equal(d("5")) {
		t.Errorf("BestBid() = %+v, %v, want (4,5), true", bestBid, ok)
	}
	bestAsk, ok := b.BestAsk()
	if !ok || !bestAsk.Price.Equal(d("5")) || !bestAsk.Size.Equal(d("20")) {
		t.Errorf("BestAsk() = %+v, %v, want (5,20), true", bestAsk, ok)
	}
}

func TestUpdateBeforePartialFails(t *testing.T) {
	t.Parallel()
	b := New("BTC-PERP")
	err := b.Apply(Frame{Action: Update, Bids: []Level{{Price: d("1"), Size: d("1")}}})
	if err != ErrMissingPartial {
		t.Errorf("Apply() error = %v, want ErrMissingPartial", err)
	}
}

func TestIncorrectChecksumSurfaces(t *testing.T) {
	t.Parallel()
	b := New("BTC-PERP")
	err := b.Apply(Frame{
		Action:   Partial,
		Bids:     []Level{{Price: d("1"), Size: d("1")}},
		Checksum: 0xdeadbeef,
	})
	if err != ErrIncorrectChecksum {
		t.Errorf("Apply() error = %v, want ErrIncorrectChecksum", err)
	}
}

func TestApplySamePartialTwiceIsIdempotent(t *testing.T) {
	t.Parallel()
	b := New("BTC-PERP")
	bids := []Level{{Price: d("1"), Size: d("1")}}
	checksum := crc32.ChecksumIEEE([]byte("1.0:1.0"))

	for i := 0; i < 2; i++ {
		if err := b.Apply(Frame{Action: Partial, Bids: bids, Checksum: checksum}); err != nil {
			t.Fatalf("Apply() #%d error = %v", i, err)
		}
	}
	if got := b.Checksum(); got != checksum {
		t.Errorf("Checksum() = %d, want %d", got, checksum)
	}
}

func TestZeroSizeDeltaRemovesLevel(t *testing.T) {
	t.Parallel()
	b := New("BTC-PERP")
	seeded := crc32.ChecksumIEEE([]byte("1.0:1.0"))
	if err := b.Apply(Frame{Action: Partial, Bids: []Level{{Price: d("1"), Size: d("1")}}, Checksum: seeded}); err != nil {
		t.Fatalf("seed Apply() error = %v", err)
	}

	empty := crc32.ChecksumIEEE([]byte(""))
	if err := b.Apply(Frame{Action: Update, Bids: []Level{{Price: d("1"), Size: d("0")}}, Checksum: empty}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, ok := b.BidPrice(); ok {
		t.Error("BidPrice() ok = true after zero-size delta, want false")
	}
}

func TestZeroSizeDeltaForAbsentPriceIsNoop(t *testing.T) {
	t.Parallel()
	b := New("BTC-PERP")
	seeded := crc32.ChecksumIEEE([]byte("1.0:1.0"))
	if err := b.Apply(Frame{Action: Partial, Bids: []Level{{Price: d("1"), Size: d("1")}}, Checksum: seeded}); err != nil {
		t.Fatalf("seed Apply() error = %v", err)
	}

	if err := b.Apply(Frame{Action: Update, Bids: []Level{{Price: d("9"), Size: d("0")}}, Checksum: seeded}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
}

func seedBook(t *testing.T, b *Book, bids, asks map[string]string) {
	t.Helper()
	bidLevels := toLevels(bids)
	askLevels := toLevels(asks)

	shadow := New(b.market)
	if err := shadow.Apply(Frame{Action: Partial, Bids: bidLevels, Asks: askLevels, Checksum: 0}); err != ErrIncorrectChecksum {
		t.Fatalf("shadow seed Apply() error = %v, want ErrIncorrectChecksum", err)
	}
	checksum := shadow.Checksum()

	if err := b.Apply(Frame{Action: Partial, Bids: bidLevels, Asks: askLevels, Checksum: checksum}); err != nil {
		t.Fatalf("seed Apply() error = %v", err)
	}
}

func toLevels(m map[string]string) []Level {
	out := make([]Level, 0, len(m))
	for price, size := range m {
		out = append(out, Level{Price: d(price), Size: d(size)})
	}
	return out
}
