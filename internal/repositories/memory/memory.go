// Package memory provides in-memory repository adapters. They back the
// service when no database is configured and the end-to-end tests.
// All adapters are safe for concurrent use and hand out copies, never
// internal state.
package memory

import (
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
)

// Repositories bundles the three in-memory adapters.
type Repositories struct {
	Accounts *AccountRepository
	Entries  *EntryRepository
	Users    *UserRepository
}

// NewRepositories creates the full in-memory adapter set.
func NewRepositories() *Repositories {
	return &Repositories{
		Accounts: NewAccountRepository(),
		Entries:  NewEntryRepository(),
		Users:    NewUserRepository(),
	}
}

// Provider exposes the adapter set through the repository ports.
func (r *Repositories) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: r.Accounts,
		EntryRepo:   r.Entries,
		UserRepo:    r.Users,
	}
}

func copyEntry(e domain.JournalEntry) domain.JournalEntry {
	out := e
	if e.ApprovedAt != nil {
		t := *e.ApprovedAt
		out.ApprovedAt = &t
	}
	return out
}
