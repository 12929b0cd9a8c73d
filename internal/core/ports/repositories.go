package ports

import (
	"context"

	"github.com/fundledger/fundledger-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository defines the persistence operations for Accounts.
// Implementations must honor an enclosing transaction scope established by a
// TxManager: methods called with a transactional context operate on that
// transaction's connection.
type AccountRepository interface {
	// SaveAccount inserts a new account and returns it with the generated ID.
	SaveAccount(ctx context.Context, account domain.Account) (domain.Account, error)
	// FindAccountByID returns apperrors.ErrNotFound when no row matches.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	// FindAccountByIDForUpdate reads the account with a row lock. Only valid
	// inside a transaction scope.
	FindAccountByIDForUpdate(ctx context.Context, accountID int64) (*domain.Account, error)
	// UpdateAccountBalance persists a recomputed balance onto the account row.
	UpdateAccountBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error
}

// FundRepository defines the persistence operations for fund records.
// Fund records are append-only: there is deliberately no update or delete.
type FundRepository interface {
	// CreateFund inserts a deposit record and returns it with the generated ID.
	CreateFund(ctx context.Context, accountID int64, amount decimal.Decimal) (domain.FundRecord, error)
	// ListFundsByAccount returns every record for the account, ordered by fund ID.
	ListFundsByAccount(ctx context.Context, accountID int64) ([]domain.FundRecord, error)
	// FindFundByID returns apperrors.ErrNotFound when no row matches.
	FindFundByID(ctx context.Context, fundID int64) (*domain.FundRecord, error)
}

// UserRepository defines persistence operations for Users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) (domain.User, error)
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	DeleteUser(ctx context.Context, userID int64) error
}

// TxManager provides atomic, all-or-nothing execution of a unit of work.
// The callback receives a context carrying the transaction; any error (or
// panic) rolls the whole unit back, a nil return commits it.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserDirectory resolves a user identity to confirm existence. The ledger
// consumes only this narrow view of the user module.
type UserDirectory interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}
