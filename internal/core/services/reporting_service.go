package services

import (
	"context"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/utils/accounting"
)

type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	entryRepo   portsrepo.EntryReader
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountReader, entryRepo portsrepo.EntryReader) portssvc.ReportingService {
	return &reportingService{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
	}
}

// snapshot fetches the consistent (accounts, entries) pair every
// derived report is computed from.
func (s *reportingService) snapshot(ctx context.Context) ([]domain.Account, []domain.JournalEntry, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot accounts for reporting")
		return nil, nil, err
	}
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot entries for reporting")
		return nil, nil, err
	}
	return accounts, entries, nil
}

// JournalReport derives the general journal: two lines per approved
// entry, debit line first, in chronological order.
func (s *reportingService) JournalReport(ctx context.Context) ([]domain.JournalLine, error) {
	accounts, entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	lines := accounting.JournalLines(accounts, entries)
	s.LogDebug(ctx, "Journal report computed", "line_count", len(lines))
	return lines, nil
}

// BalanceSheet derives the balance sheet with current-period net income
// folded into equity.
func (s *reportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error) {
	accounts, entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	report := accounting.BalanceSheet(accounts, entries)
	if !report.IsBalanced {
		s.GetLogger(ctx).Warn("Balance sheet does not balance",
			"discrepancy", report.Discrepancy.String())
	}
	return report, nil
}

// TrialBalance derives the trial balance with every balance on its
// natural side.
func (s *reportingService) TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error) {
	accounts, entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	rows := accounting.TrialBalance(accounts, entries)
	s.LogDebug(ctx, "Trial balance computed", "row_count", len(rows))
	return rows, nil
}
