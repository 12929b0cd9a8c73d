package services

import (
	"context"

	"github.com/fundledger/fundledger-backend/internal/core/domain"
	"github.com/fundledger/fundledger-backend/internal/core/ports"
	"github.com/shopspring/decimal"
)

// LedgerService orchestrates account creation, balance queries, deposit
// processing, and fund lookup. It is the sole writer of accounts and fund
// records, and the only place the balance invariant is enforced: an account's
// balance must equal the sum of its fund records' amounts between
// transactions.
type LedgerService struct {
	accountRepo ports.AccountRepository
	fundRepo    ports.FundRepository
	users       ports.UserDirectory
	txm         ports.TxManager
}

// NewLedgerService creates a new LedgerService with explicit dependencies.
func NewLedgerService(
	accountRepo ports.AccountRepository,
	fundRepo ports.FundRepository,
	users ports.UserDirectory,
	txm ports.TxManager,
) *LedgerService {
	return &LedgerService{
		accountRepo: accountRepo,
		fundRepo:    fundRepo,
		users:       users,
		txm:         txm,
	}
}

var _ ports.LedgerSvcFacade = (*LedgerService)(nil)

// CreateAccount opens an account for an existing user with a zero balance.
// The user lookup and the insert run inside one atomic unit, so a missing
// user leaves nothing behind.
func (s *LedgerService) CreateAccount(ctx context.Context, userID int64) (*domain.Account, error) {
	var created domain.Account
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetUserByID(ctx, userID); err != nil {
			return err
		}

		account, err := s.accountRepo.SaveAccount(ctx, domain.Account{
			UserID:  userID,
			Balance: decimal.Zero,
		})
		if err != nil {
			return err
		}
		created = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetAccountBalance reads the account's current balance. Read-only, so no
// transaction scope is opened.
func (s *LedgerService) GetAccountBalance(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// IncomingFund records a deposit against an account and returns a receipt.
//
// The new balance is not incremented in place: it is recomputed from the full
// append-only deposit log, then written onto the account, and only then is
// the new record appended. Recomputing from the log guards against balance
// drift if records are ever corrected independently of the account row, at
// the cost of a full scan per deposit. The account row is locked for the
// duration of the transaction so concurrent deposits on the same account
// serialize instead of losing updates.
//
// The receipt's FundID is the count of records observed before the insert
// plus one, not the key the store assigned to the new record.
func (s *LedgerService) IncomingFund(ctx context.Context, accountID int64, amount decimal.Decimal) (*domain.FundReceipt, error) {
	var receipt domain.FundReceipt
	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		funds, err := s.fundRepo.ListFundsByAccount(ctx, account.AccountID)
		if err != nil {
			return err
		}

		total := decimal.Zero
		for _, fund := range funds {
			total = total.Add(fund.Amount)
		}
		newBalance := total.Add(amount)

		if err := s.accountRepo.UpdateAccountBalance(ctx, account.AccountID, newBalance); err != nil {
			return err
		}
		if _, err := s.fundRepo.CreateFund(ctx, account.AccountID, amount); err != nil {
			return err
		}

		receipt = domain.FundReceipt{
			FundID:    int64(len(funds)) + 1,
			AccountID: account.AccountID,
			Amount:    amount,
			Balance:   newBalance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// GetFund reads a single fund record by its store-assigned identifier.
// Read-only, no transaction.
func (s *LedgerService) GetFund(ctx context.Context, fundID int64) (*domain.FundRecord, error) {
	return s.fundRepo.FindFundByID(ctx, fundID)
}
