package domain

import "github.com/shopspring/decimal"

// CashFlowPoint is one month's cash movement. Month is keyed as
// "YYYY-MM"; rendering (locale month names and so on) is presentation
// work.
type CashFlowPoint struct {
	Month   string          `json:"month"`
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
}

// CategoryTotal is a per-expense-category aggregate keyed by the debit
// account's name.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// RevenuePoint is one calendar day's revenue, keyed as "YYYY-MM-DD".
type RevenuePoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// SummaryMetrics are the headline dashboard figures.
type SummaryMetrics struct {
	TotalCash     decimal.Decimal `json:"totalCash"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetIncome     decimal.Decimal `json:"netIncome"`
}

// DashboardReport bundles the derived dashboard series.
type DashboardReport struct {
	CashFlow       []CashFlowPoint `json:"cashFlow"`
	Expenses       []CategoryTotal `json:"expenses"`
	Revenue        []RevenuePoint  `json:"revenue"`
	Metrics        SummaryMetrics  `json:"metrics"`
	RecentActivity []JournalEntry  `json:"recentActivity"` // Newest first, capped
}
