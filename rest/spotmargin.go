package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// LendingInfo reports one coin's spot-margin lending capacity for the
// authenticated account.
type LendingInfo struct {
	Coin     Coin             `json:"coin"`
	Lendable decimal.Decimal  `json:"lendable"`
	Locked   decimal.Decimal  `json:"locked"`
	MinRate  *decimal.Decimal `json:"minRate"`
	Offered  decimal.Decimal  `json:"offered"`
}

// LendingRate is the market-wide estimated rate for lending one coin.
type LendingRate struct {
	Coin     Coin            `json:"coin"`
	Estimate decimal.Decimal `json:"estimate"`
	Previous decimal.Decimal `json:"previous"`
}

// LendingHistoryEntry records one historical lending payout.
type LendingHistoryEntry struct {
	Coin Coin            `json:"coin"`
	Proceeds decimal.Decimal `json:"proceeds"`
	Rate decimal.Decimal `json:"rate"`
	Size decimal.Decimal `json:"size"`
	Time time.Time       `json:"time"`
}

// LendingOffer is one of the authenticated account's active lending
// offers.
type LendingOffer struct {
	Coin Coin            `json:"coin"`
	Rate decimal.Decimal `json:"rate"`
	Size decimal.Decimal `json:"size"`
}

// GetLendingInfo fetches the authenticated account's lending capacity for
// every coin.
type GetLendingInfo struct{}

func (GetLendingInfo) Method() string { return http.MethodGet }
func (GetLendingInfo) Path() string   { return "/spot_margin/lending_info" }
func (GetLendingInfo) Auth() bool     { return true }

// Do dispatches GetLendingInfo.
func (r GetLendingInfo) Do(ctx context.Context, c *Client) ([]LendingInfo, error) {
	return Do[[]LendingInfo](ctx, c, r)
}

// GetLendingRates fetches the market-wide estimated lending rates.
type GetLendingRates struct{}

func (GetLendingRates) Method() string { return http.MethodGet }
func (GetLendingRates) Path() string   { return "/spot_margin/lending_rates" }
func (GetLendingRates) Auth() bool     { return false }

// Do dispatches GetLendingRates.
func (r GetLendingRates) Do(ctx context.Context, c *Client) ([]LendingRate, error) {
	return Do[[]LendingRate](ctx, c, r)
}

// GetLendingHistory fetches the authenticated account's historical
// lending payouts.
type GetLendingHistory struct {
	StartTime *int64 `json:"start_time,omitempty"`
	EndTime   *int64 `json:"end_time,omitempty"`
}

func (GetLendingHistory) Method() string { return http.MethodGet }
func (GetLendingHistory) Path() string   { return "/spot_margin/lending_history" }
func (GetLendingHistory) Auth() bool     { return true }

// NewGetLendingHistory builds a GetLendingHistory with time.Time
// convenience parameters.
func NewGetLendingHistory(start, end time.Time) GetLendingHistory {
	return GetLendingHistory{StartTime: timeMillis(start), EndTime: timeMillis(end)}
}

// Do dispatches GetLendingHistory.
func (r GetLendingHistory) Do(ctx context.Context, c *Client) ([]LendingHistoryEntry, error) {
	return Do[[]LendingHistoryEntry](ctx, c, r)
}

// GetLendingOffers lists the authenticated account's active lending
// offers.
type GetLendingOffers struct{}

func (GetLendingOffers) Method() string { return http.MethodGet }
func (GetLendingOffers) Path() string   { return "/spot_margin/offers" }
func (GetLendingOffers) Auth() bool     { return true }

// Do dispatches GetLendingOffers.
func (r GetLendingOffers) Do(ctx context.Context, c *Client) ([]LendingOffer, error) {
	return Do[[]LendingOffer](ctx, c, r)
}

// SubmitLendingOffer offers a coin balance for spot-margin lending at a
// minimum rate.
type SubmitLendingOffer struct {
	Coin Coin            `json:"coin"`
	Size decimal.Decimal `json:"size"`
	Rate decimal.Decimal `json:"rate"`
}

func (SubmitLendingOffer) Method() string { return http.MethodPost }
func (SubmitLendingOffer) Path() string   { return "/spot_margin/offers" }
func (SubmitLendingOffer) Auth() bool     { return true }

// Do dispatches SubmitLendingOffer.
func (r SubmitLendingOffer) Do(ctx context.Context, c *Client) (struct{}, error) {
	return Do[struct{}](ctx, c, r)
}
