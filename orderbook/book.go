// Package orderbook maintains a client-side replica of one market's order
// book from a stream of snapshot and delta frames, verified against the
// exchange's CRC32 checksum on every apply.
package orderbook

import (
	"hash/crc32"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/shopspring-labs/ftx/rest"
)

// Action distinguishes a full snapshot from an incremental delta.
type Action string

const (
	Partial Action = "partial"
	Update  Action = "update"
)

// Level is one price/size pair within a Frame.
type Level struct {
	Price decimal.Decimal
	Size  decimal.Decimal
}

// Frame is one inbound order book message: a full snapshot (Partial) or an
// incremental delta (Update), carrying the exchange's checksum of its
// resulting book state.
type Frame struct {
	Action   Action
	Bids     []Level
	Asks     []Level
	Checksum uint32
}

// Book is a single market's replica. The zero value is not usable; use New.
type Book struct {
	mu          sync.RWMutex
	market      string
	initialized bool
	bids        map[string]decimal.Decimal
	asks        map[string]decimal.Decimal
}

// New returns an uninitialized replica for market. Apply must be called
// with a Partial frame before any derived query is meaningful.
func New(market string) *Book {
	return &Book{
		market: market,
		bids:   make(map[string]decimal.Decimal),
		asks:   make(map[string]decimal.Decimal),
	}
}

// Market returns the symbol this replica tracks.
func (b *Book) Market() string { return b.market }

// Apply applies frame to the book and verifies the resulting state against
// frame.Checksum. On checksum mismatch the book is left in the post-apply
// state (tainted) and ErrIncorrectChecksum is returned; callers should
// discard the replica rather than continue applying deltas to it.
func (b *Book) Apply(frame Frame) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case frame.Action == Partial:
		b.bids = make(map[string]decimal.Decimal)
		b.asks = make(map[string]decimal.Decimal)
		b.initialized = true
	case !b.initialized:
		return ErrMissingPartial
	}

	applySide(b.bids, frame.Bids)
	applySide(b.asks, frame.Asks)

	if b.checksumLocked() != frame.Checksum {
		return ErrIncorrectChecksum
	}
	return nil
}

func applySide(levels map[string]decimal.Decimal, updates []Level) {
	for _, u := range updates {
		key := normalizeKey(u.Price)
		if u.Size.IsZero() {
			delete(levels, key)
			continue
		}
		levels[key] = u.Size
	}
}

func normalizeKey(d decimal.Decimal) string {
	s := canonicalDecimalString(d)
	if s == "" || s == "-" {
		return "0"
	}
	return s
}

type level struct {
	price decimal.Decimal
	size  decimal.Decimal
}

func sortedLevels(levels map[string]decimal.Decimal, descending bool) []level {
	out := make([]level, 0, len(levels))
	for k, size := range levels {
		out = append(out, level{price: decimal.RequireFromString(k), size: size})
	}
	sort.Slice(out, func(i, j int) bool {
		if descending {
			return out[i].price.GreaterThan(out[j].price)
		}
		return out[i].price.LessThan(out[j].price)
	})
	return out
}

// checksumLocked computes the CRC32-IEEE checksum over the formatted top
// 100 bid/ask levels. Callers must hold b.mu.
func (b *Book) checksumLocked() uint32 {
	bids := sortedLevels(b.bids, true)
	asks := sortedLevels(b.asks, false)
	if len(bids) > 100 {
		bids = bids[:100]
	}
	if len(asks) > 100 {
		asks = asks[:100]
	}

	n := len(bids)
	if len(asks) > n {
		n = len(asks)
	}

	var tokens []string
	for i := 0; i < n; i++ {
		if i < len(bids) {
			tokens = append(tokens, formatToken(bids[i].price), formatToken(bids[i].size))
		}
		if i < len(asks) {
			tokens = append(tokens, formatToken(asks[i].price), formatToken(asks[i].size))
		}
	}
	return crc32.ChecksumIEEE([]byte(strings.Join(tokens, ":")))
}

// Checksum returns the checksum of the book's current state, as it would
// be computed for an incoming frame.
func (b *Book) Checksum() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.checksumLocked()
}

// BidPrice returns the highest bid price, or false if the book has no bids.
func (b *Book) BidPrice() (decimal.Decimal, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	levels := sortedLevels(b.bids, true)
	if len(levels) == 0 {
		return decimal.Decimal{}, false
	}
	return levels[0].price, true
}

// AskPrice returns the lowest ask price, or false if the book has no asks.
func (b *Book) AskPrice() (decimal.Decimal, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	levels := sortedLevels(b.asks, false)
	if len(levels) == 0 {
		return decimal.Decimal{}, false
	}
	return levels[0].price, true
}

// MidPrice returns the average of BidPrice and AskPrice, or false if
// either side is empty.
func (b *Book) MidPrice() (decimal.Decimal, bool) {
	bid, ok := b.BidPrice()
	if !ok {
		return decimal.Decimal{}, false
	}
	ask, ok := b.AskPrice()
	if !ok {
		return decimal.Decimal{}, false
	}
	return bid.Add(ask).Div(decimal.NewFromInt(2)), true
}

// BestBid returns the top-of-book bid price and size.
func (b *Book) BestBid() (Level, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	levels := sortedLevels(b.bids, true)
	if len(levels) == 0 {
		return Level{}, false
	}
	return Level{Price: levels[0].price, Size: levels[0].size}, true
}

// BestAsk returns the top-of-book ask price and size.
func (b *Book) BestAsk() (Level, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	levels := sortedLevels(b.asks, false)
	if len(levels) == 0 {
		return Level{}, false
	}
	return Level{Price: levels[0].price, Size: levels[0].size}, true
}

// Quote walks the opposite side of the book from the top, accumulating
// fills up to size, and returns the size-weighted average fill price. It
// returns false if the book cannot fill the full size.
func (b *Book) Quote(side rest.Side, size decimal.Decimal) (decimal.Decimal, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var levels []level
	if side == rest.Buy {
		levels = sortedLevels(b.asks, false)
	} else {
		levels = sortedLevels(b.bids, true)
	}

	remaining := size
	cost := decimal.Zero
	for _, lvl := range levels {
		if remaining.LessThanOrEqual(lvl.size) {
			cost = cost.Add(lvl.price.Mul(remaining))
			remaining = decimal.Zero
			break
		}
		cost = cost.Add(lvl.price.Mul(lvl.size))
		remaining = remaining.Sub(lvl.size)
	}
	if !remaining.IsZero() {
		return decimal.Decimal{}, false
	}
	return cost.Div(size), true
}
