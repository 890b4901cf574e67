package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// CoinInfo describes one coin's deposit/withdraw/collateral configuration.
type CoinInfo struct {
	Id                Coin            `json:"id"`
	Name              string          `json:"name"`
	Collateral        bool            `json:"collateral"`
	UsdFungible       bool            `json:"usdFungible"`
	CanDeposit        bool            `json:"canDeposit"`
	CanWithdraw       bool            `json:"canWithdraw"`
	CanConvert        bool            `json:"canConvert"`
	HasTag            bool            `json:"hasTag"`
	CollateralWeight  decimal.Decimal `json:"collateralWeight"`
	Fiat              bool            `json:"fiat"`
	Methods           []string        `json:"methods"`
	Erc20Contract     *string         `json:"erc20Contract"`
	Bep2Asset         *string         `json:"bep2Asset"`
	Trc20Contract     *string         `json:"trc20Contract"`
	SplMint           *string         `json:"splMint"`
	CreditTo          *string         `json:"creditTo"`
	SpotMargin        bool            `json:"spotMargin"`
	IndexPrice        decimal.Decimal `json:"indexPrice"`
}

// WalletDepositAddress is the address (and optional memo/tag) to send a
// coin to for crediting the account.
type WalletDepositAddress struct {
	Address string  `json:"address"`
	Tag     *string `json:"tag"`
}

// WalletBalance is one coin's free/total balance in the trading wallet.
type WalletBalance struct {
	Coin                   Coin             `json:"coin"`
	Free                   decimal.Decimal  `json:"free"`
	Total                  decimal.Decimal  `json:"total"`
	SpotBorrow             decimal.Decimal  `json:"spotBorrow"`
	AvailableWithoutBorrow decimal.Decimal  `json:"availableWithoutBorrow"`
	UsdValue               *decimal.Decimal `json:"usdValue"`
}

// WalletDeposit records one historical deposit.
type WalletDeposit struct {
	Id            Id              `json:"id"`
	Coin          Coin            `json:"coin"`
	Size          decimal.Decimal `json:"size"`
	Time          string          `json:"time"`
	Status        DepositStatus   `json:"status"`
	Confirmations *int            `json:"confirmations"`
	ConfirmedTime *string         `json:"confirmedTime"`
	Fee           *decimal.Decimal `json:"fee"`
	Txid          *string         `json:"txid"`
	Notes         *string         `json:"notes"`
}

// WalletWithdrawal records one historical withdrawal.
type WalletWithdrawal struct {
	Id     Id              `json:"id"`
	Coin   Coin            `json:"coin"`
	Size   decimal.Decimal `json:"size"`
	Time   string          `json:"time"`
	Address string         `json:"address"`
	Status WithdrawStatus  `json:"status"`
	Fee    *decimal.Decimal `json:"fee"`
	Txid   *string         `json:"txid"`
	Tag    *string         `json:"tag"`
	Notes  *string         `json:"notes"`
}

// GetCoins lists every coin the exchange supports.
type GetCoins struct{}

func (GetCoins) Method() string { return http.MethodGet }
func (GetCoins) Path() string   { return "/wallet/coins" }
func (GetCoins) Auth() bool     { return true }

// Do dispatches GetCoins.
func (r GetCoins) Do(ctx context.Context, c *Client) ([]CoinInfo, error) { return Do[[]CoinInfo](ctx, c, r) }

// GetBalances lists every coin balance in the trading wallet.
type GetBalances struct{}

func (GetBalances) Method() string { return http.MethodGet }
func (GetBalances) Path() string   { return "/wallet/balances" }
func (GetBalances) Auth() bool     { return true }

// Do dispatches GetBalances.
func (r GetBalances) Do(ctx context.Context, c *Client) ([]WalletBalance, error) {
	return Do[[]WalletBalance](ctx, c, r)
}

// GetDepositHistory lists historical deposits.
type GetDepositHistory struct {
	Limit     *uint32 `json:"limit,omitempty"`
	StartTime *int64  `json:"start_time,omitempty"`
	EndTime   *int64  `json:"end_time,omitempty"`
}

func (GetDepositHistory) Method() string { return http.MethodGet }
func (GetDepositHistory) Path() string   { return "/wallet/deposits" }
func (GetDepositHistory) Auth() bool     { return true }

// NewGetDepositHistory builds a GetDepositHistory with time.Time
// convenience parameters.
func NewGetDepositHistory(limit *uint32, start, end time.Time) GetDepositHistory {
	return GetDepositHistory{Limit: limit, StartTime: timeMillis(start), EndTime: timeMillis(end)}
}

// Do dispatches GetDepositHistory.
func (r GetDepositHistory) Do(ctx context.Context, c *Client) ([]WalletDeposit, error) {
	return Do[[]WalletDeposit](ctx, c, r)
}

// GetWithdrawalHistory lists historical withdrawals.
type GetWithdrawalHistory struct {
	Limit     *uint32 `json:"limit,omitempty"`
	StartTime *int64  `json:"start_time,omitempty"`
	EndTime   *int64  `json:"end_time,omitempty"`
}

func (GetWithdrawalHistory) Method() string { return http.MethodGet }
func (GetWithdrawalHistory) Path() string   { return "/wallet/withdrawals" }
func (GetWithdrawalHistory) Auth() bool     { return true }

// Do dispatches GetWithdrawalHistory.
func (r GetWithdrawalHistory) Do(ctx context.Context, c *Client) ([]WalletWithdrawal, error) {
	return Do[[]WalletWithdrawal](ctx, c, r)
}

// GetDepositAddress fetches the deposit address for a coin, optionally
// specifying a network (e.g. "erc20", "trx", "sol").
type GetDepositAddress struct {
	Coin   string  `json:"coin"`
	Method *string `json:"method,omitempty"`
}

func (GetDepositAddress) Method() string { return http.MethodGet }
func (GetDepositAddress) Path() string   { return "/wallet/deposit_address/{}" }
func (GetDepositAddress) Auth() bool     { return true }
func (r GetDepositAddress) ResolvedPath() string {
	return "/wallet/deposit_address/" + r.Coin
}

// Do dispatches GetDepositAddress.
func (r GetDepositAddress) Do(ctx context.Context, c *Client) (WalletDepositAddress, error) {
	return Do[WalletDepositAddress](ctx, c, r)
}

// RequestWithdrawal requests a withdrawal to a previously-saved or
// explicit address. Password/Code are two-factor fields the exchange may
// require depending on account settings.
type RequestWithdrawal struct {
	Coin     string          `json:"coin"`
	Size     decimal.Decimal `json:"size"`
	Address  string          `json:"address"`
	Tag      *string         `json:"tag,omitempty"`
	Password *string         `json:"password,omitempty"`
	Code     *string         `json:"code,omitempty"`
}

func (RequestWithdrawal) Method() string { return http.MethodPost }
func (RequestWithdrawal) Path() string   { return "/wallet/withdrawals" }
func (RequestWithdrawal) Auth() bool     { return true }

// Do dispatches RequestWithdrawal.
func (r RequestWithdrawal) Do(ctx context.Context, c *Client) (WalletWithdrawal, error) {
	return Do[WalletWithdrawal](ctx, c, r)
}

// SavedAddress is one whitelisted withdrawal destination.
type SavedAddress struct {
	Id      Id      `json:"id"`
	Coin    Coin    `json:"coin"`
	Address string  `json:"address"`
	Tag     *string `json:"tag"`
	Name    string  `json:"name"`
	IsPrimetrust bool `json:"isPrimetrust"`
}

// GetSavedAddresses lists whitelisted withdrawal destinations, optionally
// filtered to one coin.
type GetSavedAddresses struct {
	Coin *string `json:"coin,omitempty"`
}

func (GetSavedAddresses) Method() string { return http.MethodGet }
func (GetSavedAddresses) Path() string   { return "/wallet/saved_addresses" }
func (GetSavedAddresses) Auth() bool     { return true }

// Do dispatches GetSavedAddresses.
func (r GetSavedAddresses) Do(ctx context.Context, c *Client) ([]SavedAddress, error) {
	return Do[[]SavedAddress](ctx, c, r)
}

// CreateSavedAddress whitelists a new withdrawal destination.
type CreateSavedAddress struct {
	Coin    string  `json:"coin"`
	Address string  `json:"address"`
	Tag     *string `json:"tag,omitempty"`
	Name    string  `json:"name"`
}

func (CreateSavedAddress) Method() string { return http.MethodPost }
func (CreateSavedAddress) Path() string   { return "/wallet/saved_addresses" }
func (CreateSavedAddress) Auth() bool     { return true }

// Do dispatches CreateSavedAddress.
func (r CreateSavedAddress) Do(ctx context.Context, c *Client) (SavedAddress, error) {
	return Do[SavedAddress](ctx, c, r)
}

// DeleteSavedAddress removes a whitelisted withdrawal destination by id.
type DeleteSavedAddress struct {
	Id Id `json:"-"`
}

func (DeleteSavedAddress) Method() string { return http.MethodDelete }
func (DeleteSavedAddress) Path() string   { return "/wallet/saved_addresses/{}" }
func (DeleteSavedAddress) Auth() bool     { return true }
func (r DeleteSavedAddress) ResolvedPath() string {
	return "/wallet/saved_addresses/" + idString(r.Id)
}

// Do dispatches DeleteSavedAddress.
func (r DeleteSavedAddress) Do(ctx context.Context, c *Client) (struct{}, error) {
	return Do[struct{}](ctx, c, r)
}
