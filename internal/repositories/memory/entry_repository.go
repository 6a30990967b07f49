package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/openbooks/bookkeeping_app/internal/apperrors"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	"github.com/openbooks/bookkeeping_app/internal/utils/pagination"
)

// EntryRepository is the in-memory Store adapter. ListEntries preserves
// insertion order; ListEntriesPage serves keyset pages ordered by
// (date, createdAt).
type EntryRepository struct {
	mu       sync.RWMutex
	byID     map[string]domain.JournalEntry
	ordering []string
}

var _ portsrepo.EntryRepository = (*EntryRepository)(nil)

// NewEntryRepository creates an empty in-memory entry repository.
func NewEntryRepository() *EntryRepository {
	return &EntryRepository{byID: make(map[string]domain.JournalEntry)}
}

func (r *EntryRepository) SaveEntry(_ context.Context, entry domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[entry.EntryID]; !exists {
		r.ordering = append(r.ordering, entry.EntryID)
	}
	r.byID[entry.EntryID] = copyEntry(entry)
	return nil
}

func (r *EntryRepository) FindEntryByID(_ context.Context, entryID string) (*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byID[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := copyEntry(entry)
	return &out, nil
}

func (r *EntryRepository) ListEntries(_ context.Context) ([]domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]domain.JournalEntry, 0, len(r.ordering))
	for _, id := range r.ordering {
		entries = append(entries, copyEntry(r.byID[id]))
	}
	return entries, nil
}

func (r *EntryRepository) ListEntriesPage(_ context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	r.mu.RLock()
	sorted := make([]domain.JournalEntry, 0, len(r.ordering))
	for _, id := range r.ordering {
		sorted = append(sorted, copyEntry(r.byID[id]))
	}
	r.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	start := 0
	if nextToken != nil && *nextToken != "" {
		afterDate, afterCreated, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("nextToken", "invalid pagination token")
		}
		for start < len(sorted) {
			e := sorted[start]
			if e.Date.After(afterDate) || (e.Date.Equal(afterDate) && e.CreatedAt.After(afterCreated)) {
				break
			}
			start++
		}
	}

	end := start + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	page := sorted[start:end]

	var token *string
	if end < len(sorted) && len(page) > 0 {
		last := page[len(page)-1]
		t := pagination.EncodeToken(last.Date, last.CreatedAt)
		token = &t
	}
	return page, token, nil
}

func (r *EntryRepository) CountPending(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, entry := range r.byID {
		if !entry.Approved {
			count++
		}
	}
	return count, nil
}

func (r *EntryRepository) MarkApproved(_ context.Context, entryID string, approvedBy string, approvedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.byID[entryID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if entry.Approved {
		return apperrors.ErrDuplicate
	}
	entry.Approved = true
	entry.ApprovedBy = approvedBy
	at := approvedAt
	entry.ApprovedAt = &at
	entry.LastUpdatedAt = approvedAt
	entry.LastUpdatedBy = approvedBy
	r.byID[entryID] = entry
	return nil
}

func (r *EntryRepository) DeleteEntry(_ context.Context, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[entryID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.byID, entryID)
	for i, id := range r.ordering {
		if id == entryID {
			r.ordering = append(r.ordering[:i], r.ordering[i+1:]...)
			break
		}
	}
	return nil
}
