package services

import (
	"context"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// ReportingService derives the book-wide financial statements from the
// current registry/store snapshot.
type ReportingService interface {
	JournalReport(ctx context.Context) ([]domain.JournalLine, error)
	BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error)
	TrialBalance(ctx context.Context) ([]domain.TrialBalanceRow, error)
}

// DashboardService derives the time-bucketed dashboard series.
type DashboardService interface {
	Overview(ctx context.Context) (*domain.DashboardReport, error)
}
