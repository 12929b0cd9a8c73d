package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fundledger/fundledger-backend/internal/apperrors"
	"github.com/fundledger/fundledger-backend/internal/core/domain"
	portsrepo "github.com/fundledger/fundledger-backend/internal/core/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxAccountRepository persists accounts in the `account` table.
type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account row and returns it with the generated ID.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (domain.Account, error) {
	query := `
		INSERT INTO account (user_id, balance)
		VALUES ($1, $2)
		RETURNING account_id;
	`
	err := querierFromCtx(ctx, r.pool).QueryRow(ctx, query, account.UserID, account.Balance).Scan(&account.AccountID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // FK violation on user_id
			return domain.Account{}, apperrors.NewNotFound("user", account.UserID)
		}
		return domain.Account{}, apperrors.NewPersistence(fmt.Sprintf("save account for user %d", account.UserID), err)
	}
	return account, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return r.findAccount(ctx, accountID, false)
}

// FindAccountByIDForUpdate retrieves an account and locks the row until the
// enclosing transaction ends. Must be called within a transaction scope.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, accountID int64) (*domain.Account, error) {
	return r.findAccount(ctx, accountID, true)
}

func (r *PgxAccountRepository) findAccount(ctx context.Context, accountID int64, forUpdate bool) (*domain.Account, error) {
	query := `
		SELECT account_id, user_id, balance
		FROM account
		WHERE account_id = $1`
	if forUpdate {
		query += `
		FOR UPDATE`
	}
	query += `;`

	var acc domain.Account
	var balance decimal.Decimal
	err := querierFromCtx(ctx, r.pool).QueryRow(ctx, query, accountID).Scan(
		&acc.AccountID,
		&acc.UserID,
		&balance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("account", accountID)
		}
		return nil, apperrors.NewPersistence(fmt.Sprintf("find account %d", accountID), err)
	}
	acc.Balance = balance
	return &acc, nil
}

// UpdateAccountBalance writes a recomputed balance onto the account row.
func (r *PgxAccountRepository) UpdateAccountBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error {
	query := `
		UPDATE account
		SET balance = $2
		WHERE account_id = $1;
	`
	cmdTag, err := querierFromCtx(ctx, r.pool).Exec(ctx, query, accountID, balance)
	if err != nil {
		return apperrors.NewPersistence(fmt.Sprintf("update balance for account %d", accountID), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("account", accountID)
	}
	return nil
}
