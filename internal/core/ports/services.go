package ports

import (
	"context"

	"github.com/fundledger/fundledger-backend/internal/core/domain"
	"github.com/fundledger/fundledger-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the service surface the HTTP layer depends on for
// account and fund operations.
type LedgerSvcFacade interface {
	CreateAccount(ctx context.Context, userID int64) (*domain.Account, error)
	GetAccountBalance(ctx context.Context, accountID int64) (*domain.Account, error)
	IncomingFund(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.FundReceipt, error)
	GetFund(ctx context.Context, fundID int64) (*domain.FundRecord, error)
}

// UserSvcFacade is the service surface the HTTP layer depends on for user
// management.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID int64, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}
