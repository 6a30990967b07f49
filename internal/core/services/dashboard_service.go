package services

import (
	"context"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/openbooks/bookkeeping_app/internal/utils/accounting"
)

// recentActivityLimit caps the dashboard's recent entries list.
const recentActivityLimit = 5

type dashboardService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	entryRepo   portsrepo.EntryReader
	cashCode    string
}

var _ portssvc.DashboardService = (*dashboardService)(nil)

// NewDashboardService creates a new dashboard service. cashAccountCode
// identifies the account treated as cash for the cash flow series and
// the summary metrics; when empty the conventional default is used.
func NewDashboardService(accountRepo portsrepo.AccountReader, entryRepo portsrepo.EntryReader, cashAccountCode string) portssvc.DashboardService {
	if cashAccountCode == "" {
		cashAccountCode = accounting.DefaultCashAccountCode
	}
	return &dashboardService{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		cashCode:    cashAccountCode,
	}
}

// Overview computes the full dashboard from one snapshot: the monthly
// cash flow series, expense totals by category, the revenue timeline,
// the headline metrics and the most recently recorded entries.
func (s *dashboardService) Overview(ctx context.Context) (*domain.DashboardReport, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot accounts for dashboard")
		return nil, err
	}
	entries, err := s.entryRepo.ListEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot entries for dashboard")
		return nil, err
	}

	report := &domain.DashboardReport{
		CashFlow:       accounting.CashFlowByMonth(accounts, entries, s.cashCode),
		Expenses:       accounting.ExpensesByCategory(accounts, entries),
		Revenue:        accounting.RevenueByDate(accounts, entries),
		Metrics:        accounting.Summary(accounts, entries, s.cashCode),
		RecentActivity: recentEntries(entries, recentActivityLimit),
	}

	s.LogDebug(ctx, "Dashboard computed",
		"cash_flow_months", len(report.CashFlow),
		"expense_categories", len(report.Expenses),
		"revenue_points", len(report.Revenue))
	return report, nil
}

// recentEntries returns the tail of the entry snapshot, newest first.
func recentEntries(entries []domain.JournalEntry, limit int) []domain.JournalEntry {
	start := len(entries) - limit
	if start < 0 {
		start = 0
	}
	tail := entries[start:]

	recent := make([]domain.JournalEntry, len(tail))
	for i := range tail {
		recent[i] = tail[len(tail)-1-i]
	}
	return recent
}
