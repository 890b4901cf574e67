package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// FundingPayment records one perpetual-future funding settlement.
type FundingPayment struct {
	Id      Id              `json:"id"`
	Future  string          `json:"future"`
	Payment decimal.Decimal `json:"payment"`
	Time    time.Time       `json:"time"`
}

// GetFundingPayments lists historical funding payments, optionally
// filtered to one future and time range.
type GetFundingPayments struct {
	Future    *string `json:"future,omitempty"`
	StartTime *int64  `json:"start_time,omitempty"`
	EndTime   *int64  `json:"end_time,omitempty"`
}

func (GetFundingPayments) Method() string { return http.MethodGet }
func (GetFundingPayments) Path() string   { return "/funding_payments" }
func (GetFundingPayments) Auth() bool     { return true }

// NewGetFundingPayments builds a GetFundingPayments with time.Time
// convenience parameters.
func NewGetFundingPayments(future *string, start, end time.Time) GetFundingPayments {
	return GetFundingPayments{Future: future, StartTime: timeMillis(start), EndTime: timeMillis(end)}
}

// Do dispatches GetFundingPayments.
func (r GetFundingPayments) Do(ctx context.Context, c *Client) ([]FundingPayment, error) {
	return Do[[]FundingPayment](ctx, c, r)
}
