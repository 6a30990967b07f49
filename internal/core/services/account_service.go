package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openbooks/bookkeeping_app/internal/apperrors"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/dto"
	"github.com/openbooks/bookkeeping_app/internal/utils/accounting"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
	entryRepo   portsrepo.EntryReader
}

var _ portssvc.AccountService = (*accountService)(nil)

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository, entryRepo portsrepo.EntryReader) portssvc.AccountService {
	return &accountService{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
	}
}

// CreateAccount registers a new account in the chart of accounts. The
// account starts active.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actorUserID string, capability domain.Capability) (*domain.Account, error) {
	logger := s.GetLogger(ctx)

	if err := s.RequireManage(ctx, capability, actorUserID, "create account"); err != nil {
		return nil, err
	}
	if !req.AccountType.IsValid() {
		return nil, apperrors.NewValidationError("accountType", "unknown account type")
	}
	if req.Code == "" {
		return nil, apperrors.NewValidationError("code", "code is required")
	}
	if req.Name == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		AccountType: req.AccountType,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", "account_code", req.Code)
		return nil, err
	}

	logger.Info("Account created",
		"account_id", account.AccountID,
		"account_code", account.Code,
		"account_type", string(account.AccountType))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", "account_id", accountID)
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

// SetAccountActive toggles the account's active flag. Deactivated
// accounts keep their history; they only disappear from statement
// listings.
func (s *accountService) SetAccountActive(ctx context.Context, accountID string, isActive bool, actorUserID string, capability domain.Capability) (*domain.Account, error) {
	if err := s.RequireManage(ctx, capability, actorUserID, "set account active"); err != nil {
		return nil, err
	}

	if err := s.accountRepo.SetAccountActive(ctx, accountID, isActive, actorUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update account active flag", "account_id", accountID)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account active flag updated", "account_id", accountID, "is_active", isActive)
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// GetAccountBalance computes the account's signed balance from the
// current snapshot. Unknown accounts yield zero rather than an error,
// mirroring the balance engine.
func (s *accountService) GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot accounts for balance", "account_id", accountID)
		return decimal.Zero, err
	}
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot entries for balance", "account_id", accountID)
		return decimal.Zero, err
	}
	return accounting.AccountBalance(accountID, accounts, entries), nil
}

// GetAccountLedger computes the account's general ledger with running
// balances from the current snapshot.
func (s *accountService) GetAccountLedger(ctx context.Context, accountID string) ([]domain.LedgerEntry, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot accounts for ledger", "account_id", accountID)
		return nil, err
	}
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot entries for ledger", "account_id", accountID)
		return nil, err
	}
	return accounting.AccountLedger(accountID, accounts, entries), nil
}
