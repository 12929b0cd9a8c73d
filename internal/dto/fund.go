package dto

import (
	"github.com/fundledger/fundledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IncomingFundRequest defines the payload for recording a deposit. The
// amount is deliberately unconstrained in sign and magnitude.
type IncomingFundRequest struct {
	AccountID int64           `json:"account_id" binding:"required,gt=0"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomingFundResponse is the receipt returned for a processed deposit.
type IncomingFundResponse struct {
	FundID    int64           `json:"fund_id"`
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
}

// GetFundRequest identifies the fund record to retrieve.
type GetFundRequest struct {
	FundID int64 `json:"fund_id" binding:"required,gt=0"`
}

// FundResponse defines the data returned for a single fund record.
type FundResponse struct {
	FundID    int64           `json:"fund_id"`
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// ToIncomingFundResponse converts a deposit receipt to its wire shape.
func ToIncomingFundResponse(receipt *domain.FundReceipt) IncomingFundResponse {
	return IncomingFundResponse{
		FundID:    receipt.FundID,
		AccountID: receipt.AccountID,
		Amount:    receipt.Amount,
		Balance:   receipt.Balance,
	}
}

// ToFundResponse converts a domain.FundRecord to FundResponse.
func ToFundResponse(record *domain.FundRecord) FundResponse {
	return FundResponse{
		FundID:    record.FundID,
		AccountID: record.AccountID,
		Amount:    record.Amount,
	}
}
