package repositories

import (
	"context"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// AccountReader provides read access to the chart of accounts. Every
// method returns copies: callers receive a snapshot that later
// mutations of the registry cannot touch.
type AccountReader interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// ListAccounts returns the full chart of accounts snapshot.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter mutates the chart of accounts.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	// SetAccountActive toggles the only mutable account field.
	SetAccountActive(ctx context.Context, accountID string, isActive bool, updatedBy string) error
}

// AccountRepository is the Registry contract: it exclusively owns
// Account records.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
