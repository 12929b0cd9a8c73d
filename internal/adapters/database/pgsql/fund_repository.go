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

// PgxFundRepository persists deposit events in the `incoming_fund` table.
// The table is append-only; no update or delete statements exist here.
type PgxFundRepository struct {
	pool *pgxpool.Pool
}

// NewFundRepository creates a new repository for fund record data.
func NewFundRepository(pool *pgxpool.Pool) *PgxFundRepository {
	return &PgxFundRepository{pool: pool}
}

var _ portsrepo.FundRepository = (*PgxFundRepository)(nil)

// CreateFund inserts a new deposit record and returns it with the generated ID.
func (r *PgxFundRepository) CreateFund(ctx context.Context, accountID int64, amount decimal.Decimal) (domain.FundRecord, error) {
	query := `
		INSERT INTO incoming_fund (account_id, amount)
		VALUES ($1, $2)
		RETURNING fund_id;
	`
	record := domain.FundRecord{AccountID: accountID, Amount: amount}
	err := querierFromCtx(ctx, r.pool).QueryRow(ctx, query, accountID, amount).Scan(&record.FundID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // FK violation on account_id
			return domain.FundRecord{}, apperrors.NewNotFound("account", accountID)
		}
		return domain.FundRecord{}, apperrors.NewPersistence(fmt.Sprintf("create fund for account %d", accountID), err)
	}
	return record, nil
}

// ListFundsByAccount retrieves every fund record for the account, ordered by
// fund ID for deterministic iteration.
func (r *PgxFundRepository) ListFundsByAccount(ctx context.Context, accountID int64) ([]domain.FundRecord, error) {
	query := `
		SELECT fund_id, account_id, amount
		FROM incoming_fund
		WHERE account_id = $1
		ORDER BY fund_id;
	`
	rows, err := querierFromCtx(ctx, r.pool).Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.NewPersistence(fmt.Sprintf("query funds for account %d", accountID), err)
	}
	defer rows.Close()

	funds := []domain.FundRecord{}
	for rows.Next() {
		var record domain.FundRecord
		var amount decimal.Decimal
		if err := rows.Scan(&record.FundID, &record.AccountID, &amount); err != nil {
			return nil, apperrors.NewPersistence(fmt.Sprintf("scan fund row for account %d", accountID), err)
		}
		record.Amount = amount
		funds = append(funds, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewPersistence(fmt.Sprintf("iterate fund rows for account %d", accountID), err)
	}

	return funds, nil
}

// FindFundByID retrieves a single fund record by its store-assigned ID.
func (r *PgxFundRepository) FindFundByID(ctx context.Context, fundID int64) (*domain.FundRecord, error) {
	query := `
		SELECT fund_id, account_id, amount
		FROM incoming_fund
		WHERE fund_id = $1;
	`
	var record domain.FundRecord
	var amount decimal.Decimal
	err := querierFromCtx(ctx, r.pool).QueryRow(ctx, query, fundID).Scan(
		&record.FundID,
		&record.AccountID,
		&amount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("fund", fundID)
		}
		return nil, apperrors.NewPersistence(fmt.Sprintf("find fund %d", fundID), err)
	}
	record.Amount = amount
	return &record, nil
}
