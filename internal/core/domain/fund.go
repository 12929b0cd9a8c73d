package domain

import (
	"github.com/shopspring/decimal"
)

// FundRecord is an immutable deposit event attributed to one account.
// Records are only ever inserted; there is no update or delete path.
type FundRecord struct {
	FundID    int64           `json:"fund_id"`
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// FundReceipt is what a successful deposit returns to the caller.
//
// FundID here is a sequence number derived from the count of records that
// existed before the insert, plus one. It is kept for wire compatibility with
// the upstream behavior and may diverge from the key the store assigned.
type FundReceipt struct {
	FundID    int64           `json:"fund_id"`
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
}
