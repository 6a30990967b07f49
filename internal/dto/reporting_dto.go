package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// JournalReportResponse is the general journal: the chronological,
// approved-only record in debit/credit pair form.
type JournalReportResponse struct {
	Lines []domain.JournalLine `json:"lines"`
}

// BalanceSheetResponse is the balance sheet report.
type BalanceSheetResponse struct {
	AsOf        string                 `json:"asOf"`
	Assets      []domain.AccountAmount `json:"assets"`
	Liabilities []domain.AccountAmount `json:"liabilities"`
	Equity      []domain.AccountAmount `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
		NetIncome        decimal.Decimal `json:"netIncome"`
		Discrepancy      decimal.Decimal `json:"discrepancy"`
		IsBalanced       bool            `json:"isBalanced"`
	} `json:"summary"`
}

// ToBalanceSheetResponse converts the domain report to its DTO.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, asOf time.Time) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOf:        asOf.Format("2006-01-02"),
		Assets:      report.Assets,
		Liabilities: report.Liabilities,
		Equity:      report.Equity,
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	response.Summary.NetIncome = report.NetIncome
	response.Summary.Discrepancy = report.Discrepancy
	response.Summary.IsBalanced = report.IsBalanced
	return response
}

// TrialBalanceResponse is the trial balance report.
type TrialBalanceResponse struct {
	AsOf   string                   `json:"asOf"`
	Rows   []domain.TrialBalanceRow `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// ToTrialBalanceResponse converts trial balance rows to the DTO.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, asOf time.Time) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOf: asOf.Format("2006-01-02"),
		Rows: rows,
	}
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}
	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit
	return response
}

// DashboardResponse is the dashboard feed.
type DashboardResponse struct {
	CashFlow       []domain.CashFlowPoint `json:"cashFlow"`
	Expenses       []domain.CategoryTotal `json:"expenses"`
	Revenue        []domain.RevenuePoint  `json:"revenue"`
	Metrics        domain.SummaryMetrics  `json:"metrics"`
	RecentActivity []EntryResponse        `json:"recentActivity"`
}

// ToDashboardResponse converts the domain dashboard report to its DTO.
func ToDashboardResponse(report *domain.DashboardReport) DashboardResponse {
	recent := make([]EntryResponse, len(report.RecentActivity))
	for i := range report.RecentActivity {
		recent[i] = ToEntryResponse(&report.RecentActivity[i])
	}
	return DashboardResponse{
		CashFlow:       report.CashFlow,
		Expenses:       report.Expenses,
		Revenue:        report.Revenue,
		Metrics:        report.Metrics,
		RecentActivity: recent,
	}
}
