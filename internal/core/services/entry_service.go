package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks/bookkeeping_app/internal/apperrors"
	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/dto"
)

const (
	defaultEntryPageLimit = 20
	maxEntryPageLimit     = 100
)

type entryService struct {
	BaseService
	entryRepo   portsrepo.EntryRepository
	accountRepo portsrepo.AccountReader
}

var _ portssvc.EntryService = (*entryService)(nil)

// NewEntryService creates a new journal entry service.
func NewEntryService(entryRepo portsrepo.EntryRepository, accountRepo portsrepo.AccountReader) portssvc.EntryService {
	return &entryService{
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
	}
}

// referencedAccount resolves one side of the entry and rejects unknown
// or inactive accounts with an error naming the offending field.
func (s *entryService) referencedAccount(ctx context.Context, field, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(field, fmt.Sprintf("account %s does not exist", accountID))
		}
		return nil, err
	}
	if !account.IsActive {
		return nil, apperrors.NewValidationError(field, fmt.Sprintf("account %s is inactive", accountID))
	}
	return account, nil
}

// CreateEntry validates and stores a journal entry. Entries created by
// a holder of the manage capability are approved on the spot; everyone
// else's entries start pending.
func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, actorUserID string, capability domain.Capability) (*domain.JournalEntry, error) {
	logger := s.GetLogger(ctx)

	if req.Date.IsZero() {
		return nil, apperrors.NewValidationError("date", "date is required")
	}
	if req.Description == "" {
		return nil, apperrors.NewValidationError("description", "description is required")
	}
	if req.Reference == "" {
		return nil, apperrors.NewValidationError("reference", "reference is required")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount", "amount must be strictly positive")
	}
	if req.DebitAccountID == req.CreditAccountID {
		return nil, apperrors.NewValidationError("creditAccountID", "credit account must differ from debit account")
	}
	if _, err := s.referencedAccount(ctx, "debitAccountID", req.DebitAccountID); err != nil {
		return nil, err
	}
	if _, err := s.referencedAccount(ctx, "creditAccountID", req.CreditAccountID); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		Date:            req.Date,
		Description:     req.Description,
		Reference:       req.Reference,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		Amount:          req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	if capability.Manage {
		entry.Approved = true
		entry.ApprovedBy = actorUserID
		approvedAt := now
		entry.ApprovedAt = &approvedAt
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", "reference", req.Reference)
		return nil, err
	}

	logger.Info("Journal entry created",
		"entry_id", entry.EntryID,
		"reference", entry.Reference,
		"approved", entry.Approved)
	return &entry, nil
}

func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", "entry_id", entryID)
		}
		return nil, err
	}
	return entry, nil
}

// ListEntries returns one keyset page of entries plus the token for the
// next page. Limits outside [1, 100] are clamped.
func (s *entryService) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = defaultEntryPageLimit
	}
	if limit > maxEntryPageLimit {
		limit = maxEntryPageLimit
	}

	entries, token, err := s.entryRepo.ListEntriesPage(ctx, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, nil, err
	}
	return entries, token, nil
}

func (s *entryService) PendingCount(ctx context.Context) (int, error) {
	count, err := s.entryRepo.CountPending(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count pending entries")
		return 0, err
	}
	return count, nil
}

// ApproveEntry transitions a pending entry to approved exactly once.
// A second attempt fails with apperrors.ErrDuplicate; approval is
// never rescinded.
func (s *entryService) ApproveEntry(ctx context.Context, entryID string, actorUserID string, capability domain.Capability) (*domain.JournalEntry, error) {
	if err := s.RequireManage(ctx, capability, actorUserID, "approve entry"); err != nil {
		return nil, err
	}

	if err := s.entryRepo.MarkApproved(ctx, entryID, actorUserID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to approve journal entry", "entry_id", entryID)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry approved", "entry_id", entryID, "approved_by", actorUserID)
	return s.entryRepo.FindEntryByID(ctx, entryID)
}

// DeleteEntry removes an entry permanently. Deletion is a hard delete:
// the entry stops contributing to every derived report.
func (s *entryService) DeleteEntry(ctx context.Context, entryID string, actorUserID string, capability domain.Capability) error {
	if err := s.RequireManage(ctx, capability, actorUserID, "delete entry"); err != nil {
		return err
	}

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete journal entry", "entry_id", entryID)
		}
		return err
	}

	s.LogInfo(ctx, "Journal entry deleted", "entry_id", entryID, "deleted_by", actorUserID)
	return nil
}
