package repositories

import (
	"context"
	"time"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// EntryReader provides read access to the journal entry store. Reads
// return copies so reporting always works on a consistent snapshot.
type EntryReader interface {
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	// ListEntries returns the full entry snapshot in insertion order.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
	// ListEntriesPage returns a keyset page ordered by (date, createdAt),
	// plus the token for the next page when more rows remain.
	ListEntriesPage(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
	// CountPending returns the number of entries awaiting approval.
	CountPending(ctx context.Context) (int, error)
}

// EntryWriter mutates the journal entry store.
type EntryWriter interface {
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
	// MarkApproved flips an entry to approved exactly once. It must be
	// a compare-and-set: a second approval attempt fails with
	// apperrors.ErrDuplicate, an unknown entry with apperrors.ErrNotFound.
	MarkApproved(ctx context.Context, entryID string, approvedBy string, approvedAt time.Time) error
	// DeleteEntry removes an entry permanently.
	DeleteEntry(ctx context.Context, entryID string) error
}

// EntryRepository is the Store contract: it exclusively owns
// JournalEntry records.
type EntryRepository interface {
	EntryReader
	EntryWriter
}
