package services

import (
	"context"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/openbooks/bookkeeping_app/internal/dto"
)

// EntryService owns the journal entry lifecycle: creation (pre-approved
// when the creator holds the manage capability), single-shot approval,
// and hard deletion.
type EntryService interface {
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, actorUserID string, capability domain.Capability) (*domain.JournalEntry, error)
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
	PendingCount(ctx context.Context) (int, error)
	ApproveEntry(ctx context.Context, entryID string, actorUserID string, capability domain.Capability) (*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, entryID string, actorUserID string, capability domain.Capability) error
}
