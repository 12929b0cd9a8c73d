package dto

import (
	"github.com/fundledger/fundledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the payload for opening an account. The
// balance is never caller-supplied; new accounts always start at zero.
type CreateAccountRequest struct {
	UserID int64 `json:"user_id" binding:"required,gt=0"`
}

// AccountResponse defines the data returned for a created account.
type AccountResponse struct {
	AccountID int64           `json:"account_id"`
	UserID    int64           `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// AccountBalanceRequest identifies the account whose balance is requested.
type AccountBalanceRequest struct {
	AccountID int64 `json:"account_id" binding:"required,gt=0"`
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountID int64           `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: acc.AccountID,
		UserID:    acc.UserID,
		Balance:   acc.Balance,
	}
}

// ToAccountBalanceResponse shapes a domain.Account into a balance reply.
func ToAccountBalanceResponse(acc *domain.Account) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID: acc.AccountID,
		Balance:   acc.Balance,
	}
}
