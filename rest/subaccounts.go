package rest

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// Subaccount describes one subaccount under the master account.
type Subaccount struct {
	Nickname    string `json:"nickname"`
	Deletable   bool   `json:"deletable"`
	Editable    bool   `json:"editable"`
	Competition bool   `json:"competition"`
}

// SubaccountBalance is one coin balance within a subaccount.
type SubaccountBalance struct {
	Coin                    Coin            `json:"coin"`
	Free                    decimal.Decimal `json:"free"`
	Total                   decimal.Decimal `json:"total"`
	SpotBorrow              decimal.Decimal `json:"spotBorrow"`
	AvailableWithoutBorrow  decimal.Decimal `json:"availableWithoutBorrow"`
}

// SubaccountTransfer records a completed transfer between subaccounts.
type SubaccountTransfer struct {
	Id    Id              `json:"id"`
	Coin  Coin            `json:"coin"`
	Size  decimal.Decimal `json:"size"`
	Time  time.Time       `json:"time"`
	Notes string          `json:"notes"`
}

// GetSubaccounts lists every subaccount.
type GetSubaccounts struct{}

func (GetSubaccounts) Method() string { return http.MethodGet }
func (GetSubaccounts) Path() string   { return "/subaccounts" }
func (GetSubaccounts) Auth() bool     { return true }

// Do dispatches GetSubaccounts.
func (r GetSubaccounts) Do(ctx context.Context, c *Client) ([]Subaccount, error) {
	return Do[[]Subaccount](ctx, c, r)
}

// CreateSubaccount creates a new subaccount with the given nickname.
type CreateSubaccount struct {
	Nickname string `json:"nickname"`
}

func (CreateSubaccount) Method() string { return http.MethodPost }
func (CreateSubaccount) Path() string   { return "/subaccounts" }
func (CreateSubaccount) Auth() bool     { return true }

// Do dispatches CreateSubaccount.
func (r CreateSubaccount) Do(ctx context.Context, c *Client) (Subaccount, error) {
	return Do[Subaccount](ctx, c, r)
}

// ChangeSubaccountName renames an existing subaccount.
type ChangeSubaccountName struct {
	Nickname    string `json:"nickname"`
	NewNickname string `json:"newNickname"`
}

func (ChangeSubaccountName) Method() string { return http.MethodPost }
func (ChangeSubaccountName) Path() string   { return "/subaccounts/update_name" }
func (ChangeSubaccountName) Auth() bool     { return true }

// Do dispatches ChangeSubaccountName.
func (r ChangeSubaccountName) Do(ctx context.Context, c *Client) (struct{}, error) {
	return Do[struct{}](ctx, c, r)
}

// DeleteSubaccount deletes an existing, empty subaccount.
type DeleteSubaccount struct {
	Nickname string `json:"nickname"`
}

func (DeleteSubaccount) Method() string { return http.MethodDelete }
func (DeleteSubaccount) Path() string   { return "/subaccounts" }
func (DeleteSubaccount) Auth() bool     { return true }

// Do dispatches DeleteSubaccount.
func (r DeleteSubaccount) Do(ctx context.Context, c *Client) (struct{}, error) {
	return Do[struct{}](ctx, c, r)
}

// GetSubaccountBalances lists one subaccount's coin balances. Nickname is
// URL-escaped into the path since subaccount names are free-form text.
type GetSubaccountBalances struct {
	Nickname string `json:"-"`
}

func (GetSubaccountBalances) Method() string { return http.MethodGet }
func (GetSubaccountBalances) Path() string   { return "/subaccounts/{}/balances" }
func (GetSubaccountBalances) Auth() bool     { return true }
func (r GetSubaccountBalances) ResolvedPath() string {
	return "/subaccounts/" + url.PathEscape(r.Nickname) + "/balances"
}

// Do dispatches GetSubaccountBalances.
func (r GetSubaccountBalances) Do(ctx context.Context, c *Client) ([]SubaccountBalance, error) {
	return Do[[]SubaccountBalance](ctx, c, r)
}

// TransferBetweenSubaccounts moves a coin balance from one subaccount (or
// the master account, nicknamed "main") to another.
type TransferBetweenSubaccounts struct {
	Coin        Coin            `json:"coin"`
	Size        decimal.Decimal `json:"size"`
	Source      string          `json:"source"`
	Destination string          `json:"destination"`
}

func (TransferBetweenSubaccounts) Method() string { return http.MethodPost }
func (TransferBetweenSubaccounts) Path() string   { return "/subaccounts/transfer" }
func (TransferBetweenSubaccounts) Auth() bool     { return true }

// Do dispatches TransferBetweenSubaccounts.
func (r TransferBetweenSubaccounts) Do(ctx context.Context, c *Client) (SubaccountTransfer, error) {
	return Do[SubaccountTransfer](ctx, c, r)
}
