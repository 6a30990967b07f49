package memory

import (
	"context"
	"sync"
	"time"

	"github.com/openbooks/bookkeeping_app/internal/apperrors"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
)

// AccountRepository is the in-memory Registry adapter. It preserves
// insertion order for listings.
type AccountRepository struct {
	mu       sync.RWMutex
	byID     map[string]domain.Account
	ordering []string
}

var _ portsrepo.AccountRepository = (*AccountRepository)(nil)

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{byID: make(map[string]domain.Account)}
}

func (r *AccountRepository) SaveAccount(_ context.Context, account domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[account.AccountID]; !exists {
		r.ordering = append(r.ordering, account.AccountID)
	}
	r.byID[account.AccountID] = account
	return nil
}

func (r *AccountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byID[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &account, nil
}

func (r *AccountRepository) ListAccounts(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(r.ordering))
	for _, id := range r.ordering {
		accounts = append(accounts, r.byID[id])
	}
	return accounts, nil
}

func (r *AccountRepository) SetAccountActive(_ context.Context, accountID string, isActive bool, updatedBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byID[accountID]
	if !ok {
		return apperrors.ErrNotFound
	}
	account.IsActive = isActive
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = updatedBy
	r.byID[accountID] = account
	return nil
}
