package services_test

import (
	"context"
	"testing"

	"github.com/fundledger/fundledger-backend/internal/apperrors"
	"github.com/fundledger/fundledger-backend/internal/core/domain"
	"github.com/fundledger/fundledger-backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// memLedger is an in-memory implementation of the account and fund stores,
// used to exercise the service end to end across a sequence of operations.
type memLedger struct {
	accounts   map[int64]domain.Account
	funds      map[int64]domain.FundRecord
	nextAccID  int64
	nextFundID int64
}

func newMemLedger() *memLedger {
	return &memLedger{
		accounts:   map[int64]domain.Account{},
		funds:      map[int64]domain.FundRecord{},
		nextAccID:  1,
		nextFundID: 1,
	}
}

func (m *memLedger) SaveAccount(ctx context.Context, account domain.Account) (domain.Account, error) {
	account.AccountID = m.nextAccID
	m.nextAccID++
	m.accounts[account.AccountID] = account
	return account, nil
}

func (m *memLedger) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	acc, ok := m.accounts[accountID]
	if !ok {
		return nil, apperrors.NewNotFound("account", accountID)
	}
	return &acc, nil
}

func (m *memLedger) FindAccountByIDForUpdate(ctx context.Context, accountID int64) (*domain.Account, error) {
	return m.FindAccountByID(ctx, accountID)
}

func (m *memLedger) UpdateAccountBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error {
	acc, ok := m.accounts[accountID]
	if !ok {
		return apperrors.NewNotFound("account", accountID)
	}
	acc.Balance = balance
	m.accounts[accountID] = acc
	return nil
}

func (m *memLedger) CreateFund(ctx context.Context, accountID int64, amount decimal.Decimal) (domain.FundRecord, error) {
	record := domain.FundRecord{FundID: m.nextFundID, AccountID: accountID, Amount: amount}
	m.nextFundID++
	m.funds[record.FundID] = record
	return record, nil
}

func (m *memLedger) ListFundsByAccount(ctx context.Context, accountID int64) ([]domain.FundRecord, error) {
	records := []domain.FundRecord{}
	for id := int64(1); id < m.nextFundID; id++ {
		if record, ok := m.funds[id]; ok && record.AccountID == accountID {
			records = append(records, record)
		}
	}
	return records, nil
}

func (m *memLedger) FindFundByID(ctx context.Context, fundID int64) (*domain.FundRecord, error) {
	record, ok := m.funds[fundID]
	if !ok {
		return nil, apperrors.NewNotFound("fund", fundID)
	}
	return &record, nil
}

type staticUserDirectory map[int64]domain.User

func (d staticUserDirectory) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, ok := d[userID]
	if !ok {
		return nil, apperrors.NewNotFound("user", userID)
	}
	return &user, nil
}

type inlineTxManager struct{}

func (inlineTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// TestLedgerSequence walks the full lifecycle: open an account, record a
// series of deposits, and verify at each step that the balance equals the
// sum of recorded deposits and that receipts carry sequential fund ids.
func TestLedgerSequence(t *testing.T) {
	ctx := context.Background()
	store := newMemLedger()
	users := staticUserDirectory{1: {UserID: 1, Name: "Alice"}}
	service := services.NewLedgerService(store, store, users, inlineTxManager{})

	account, err := service.CreateAccount(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), account.AccountID)
	require.Equal(t, int64(1), account.UserID)
	require.True(t, account.Balance.IsZero())

	deposits := []int64{1000, 500, 250}
	runningTotal := decimal.Zero
	for i, amount := range deposits {
		receipt, err := service.IncomingFund(ctx, account.AccountID, decimal.NewFromInt(amount))
		require.NoError(t, err)
		runningTotal = runningTotal.Add(decimal.NewFromInt(amount))

		require.Equal(t, int64(i+1), receipt.FundID)
		require.True(t, receipt.Balance.Equal(runningTotal), "balance after deposit %d", i+1)
	}

	// The stored balance equals the sum of all recorded deposits.
	balance, err := service.GetAccountBalance(ctx, account.AccountID)
	require.NoError(t, err)
	require.True(t, balance.Balance.Equal(decimal.NewFromInt(1750)))

	// Reads do not mutate anything.
	for i := 0; i < 3; i++ {
		again, err := service.GetAccountBalance(ctx, account.AccountID)
		require.NoError(t, err)
		require.True(t, again.Balance.Equal(balance.Balance))
	}
	records, err := store.ListFundsByAccount(ctx, account.AccountID)
	require.NoError(t, err)
	require.Len(t, records, len(deposits))

	// Individual fund lookup returns the recorded deposit.
	fund, err := service.GetFund(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, int64(2), fund.FundID)
	require.Equal(t, account.AccountID, fund.AccountID)
	require.True(t, fund.Amount.Equal(decimal.NewFromInt(500)))

	// A deposit against an unknown account fails and records nothing.
	_, err = service.IncomingFund(ctx, 999, decimal.NewFromInt(100))
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	records, err = store.ListFundsByAccount(ctx, 999)
	require.NoError(t, err)
	require.Empty(t, records)
}
