package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a ledger entity owned by one user. Its balance is a derived
// value: at rest it must equal the sum of all fund record amounts for the
// account.
type Account struct {
	AccountID int64           `json:"account_id"`
	UserID    int64           `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
}
