package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/openbooks/bookkeeping_app/internal/dto"
)

// AccountService manages the chart of accounts and the per-account
// derived views. Mutations require the manage capability; reads do not.
type AccountService interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actorUserID string, capability domain.Capability) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	SetAccountActive(ctx context.Context, accountID string, isActive bool, actorUserID string, capability domain.Capability) (*domain.Account, error)
	// GetAccountBalance computes the signed balance; an unknown account
	// yields zero, matching the balance engine.
	GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
	// GetAccountLedger computes the account's general ledger; an
	// unknown account yields an empty ledger.
	GetAccountLedger(ctx context.Context, accountID string) ([]domain.LedgerEntry, error)
}
