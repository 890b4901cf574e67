package rest

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// Position describes one open futures position.
type Position struct {
	Cost                         decimal.Decimal `json:"cost"`
	EntryPrice                   *decimal.Decimal `json:"entryPrice"`
	EstimatedLiquidationPrice    *decimal.Decimal `json:"estimatedLiquidationPrice"`
	Future                       string           `json:"future"`
	InitialMarginRequirement     decimal.Decimal `json:"initialMarginRequirement"`
	LongOrderSize                decimal.Decimal `json:"longOrderSize"`
	MaintenanceMarginRequirement decimal.Decimal `json:"maintenanceMarginRequirement"`
	NetSize                      decimal.Decimal `json:"netSize"`
	OpenSize                     decimal.Decimal `json:"openSize"`
	RealizedPnl                  decimal.Decimal `json:"realizedPnl"`
	ShortOrderSize                decimal.Decimal `json:"shortOrderSize"`
	Side                         Side             `json:"side"`
	Size                         decimal.Decimal `json:"size"`
	UnrealizedPnl                decimal.Decimal `json:"unrealizedPnl"`
	CollateralUsed               decimal.Decimal `json:"collateralUsed"`
}

// Account reports margin, collateral, and position state for the
// authenticated (sub)account.
type Account struct {
	BackstopProvider              bool             `json:"backstopProvider"`
	ChargeInterestOnNegativeUsd   bool             `json:"chargeInterestOnNegativeUsd"`
	Collateral                    decimal.Decimal  `json:"collateral"`
	FreeCollateral                decimal.Decimal  `json:"freeCollateral"`
	InitialMarginRequirement      decimal.Decimal  `json:"initialMarginRequirement"`
	Liquidating                   bool             `json:"liquidating"`
	MaintenanceMarginRequirement  decimal.Decimal  `json:"maintenanceMarginRequirement"`
	MakerFee                      decimal.Decimal  `json:"makerFee"`
	MarginFraction                *decimal.Decimal `json:"marginFraction"`
	OpenMarginFraction             *decimal.Decimal `json:"openMarginFraction"`
	PositionLimit                 *decimal.Decimal `json:"positionLimit"`
	PositionLimitUsed             *decimal.Decimal `json:"positionLimitUsed"`
	TakerFee                      decimal.Decimal  `json:"takerFee"`
	TotalAccountValue              decimal.Decimal  `json:"totalAccountValue"`
	TotalPositionSize              decimal.Decimal  `json:"totalPositionSize"`
	UseFttCollateral               bool             `json:"useFttCollateral"`
	Username                       string           `json:"username"`
	Leverage                       decimal.Decimal  `json:"leverage"`
	Positions                     []Position       `json:"positions"`
	SpotLendingEnabled             bool             `json:"spotLendingEnabled"`
	SpotMarginEnabled              bool             `json:"spotMarginEnabled"`
}

// GetAccount fetches the authenticated account's margin and position state.
type GetAccount struct{}

func (GetAccount) Method() string { return http.MethodGet }
func (GetAccount) Path() string   { return "/account" }
func (GetAccount) Auth() bool     { return true }

// Do dispatches GetAccount.
func (r GetAccount) Do(ctx context.Context, c *Client) (Account, error) { return Do[Account](ctx, c, r) }

// ChangeAccountLeverage sets the account-wide leverage cap.
type ChangeAccountLeverage struct {
	Leverage decimal.Decimal `json:"leverage"`
}

func (ChangeAccountLeverage) Method() string { return http.MethodPost }
func (ChangeAccountLeverage) Path() string   { return "/account/leverage" }
func (ChangeAccountLeverage) Auth() bool     { return true }

// Do dispatches ChangeAccountLeverage.
func (r ChangeAccountLeverage) Do(ctx context.Context, c *Client) (struct{}, error) {
	return Do[struct{}](ctx, c, r)
}

// GetPositions lists the authenticated account's open positions.
type GetPositions struct{}

func (GetPositions) Method() string { return http.MethodGet }
func (GetPositions) Path() string   { return "/positions" }
func (GetPositions) Auth() bool     { return true }

// Do dispatches GetPositions.
func (r GetPositions) Do(ctx context.Context, c *Client) ([]Position, error) {
	return Do[[]Position](ctx, c, r)
}
