package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// DefaultCashAccountCode designates the cash account used by the
// cash-flow and summary aggregations. Configurable; this is only the
// fallback.
const DefaultCashAccountCode = "1010"

const (
	monthKeyFormat = "2006-01"
	dateKeyFormat  = "2006-01-02"
)

// CashFlowByMonth buckets approved entries by the year and month of
// their business date, in first-seen order. Inflow accumulates amounts
// debited to the designated cash account (matched by code); outflow
// accumulates amounts debited to expense accounts. Entries whose debit
// account is missing from the snapshot are skipped.
func CashFlowByMonth(accounts []domain.Account, entries []domain.JournalEntry, cashCode string) []domain.CashFlowPoint {
	idx := AccountIndex(accounts)

	points := make([]domain.CashFlowPoint, 0)
	position := make(map[string]int)
	for _, entry := range entries {
		if !entry.Approved {
			continue
		}
		debit, ok := idx[entry.DebitAccountID]
		if !ok {
			continue
		}

		key := entry.Date.Format(monthKeyFormat)
		i, seen := position[key]
		if !seen {
			i = len(points)
			position[key] = i
			points = append(points, domain.CashFlowPoint{
				Month:   key,
				Inflow:  decimal.Zero,
				Outflow: decimal.Zero,
			})
		}

		if debit.Code == cashCode {
			points[i].Inflow = points[i].Inflow.Add(entry.Amount)
		} else if debit.AccountType == domain.Expense {
			points[i].Outflow = points[i].Outflow.Add(entry.Amount)
		}
	}
	return points
}

// ExpensesByCategory sums approved amounts debited to expense accounts,
// bucketed by the debit account's name in first-seen order.
func ExpensesByCategory(accounts []domain.Account, entries []domain.JournalEntry) []domain.CategoryTotal {
	idx := AccountIndex(accounts)

	totals := make([]domain.CategoryTotal, 0)
	position := make(map[string]int)
	for _, entry := range entries {
		if !entry.Approved {
			continue
		}
		debit, ok := idx[entry.DebitAccountID]
		if !ok || debit.AccountType != domain.Expense {
			continue
		}

		i, seen := position[debit.Name]
		if !seen {
			i = len(totals)
			position[debit.Name] = i
			totals = append(totals, domain.CategoryTotal{Name: debit.Name, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(entry.Amount)
	}
	return totals
}

// RevenueByDate sums approved amounts credited to revenue accounts,
// bucketed by calendar date in first-seen order.
func RevenueByDate(accounts []domain.Account, entries []domain.JournalEntry) []domain.RevenuePoint {
	idx := AccountIndex(accounts)

	points := make([]domain.RevenuePoint, 0)
	position := make(map[string]int)
	for _, entry := range entries {
		if !entry.Approved {
			continue
		}
		credit, ok := idx[entry.CreditAccountID]
		if !ok || credit.AccountType != domain.Revenue {
			continue
		}

		key := entry.Date.Format(dateKeyFormat)
		i, seen := position[key]
		if !seen {
			i = len(points)
			position[key] = i
			points = append(points, domain.RevenuePoint{Date: key, Total: decimal.Zero})
		}
		points[i].Total = points[i].Total.Add(entry.Amount)
	}
	return points
}

// Summary computes the headline figures: the cash account's net
// movement, total revenue, total expenses and the resulting net income.
// Unknown account references contribute nothing.
func Summary(accounts []domain.Account, entries []domain.JournalEntry, cashCode string) domain.SummaryMetrics {
	idx := AccountIndex(accounts)

	metrics := domain.SummaryMetrics{
		TotalCash:     decimal.Zero,
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		NetIncome:     decimal.Zero,
	}
	for _, entry := range entries {
		if !entry.Approved {
			continue
		}
		if debit, ok := idx[entry.DebitAccountID]; ok {
			if debit.Code == cashCode {
				metrics.TotalCash = metrics.TotalCash.Add(entry.Amount)
			}
			if debit.AccountType == domain.Expense {
				metrics.TotalExpenses = metrics.TotalExpenses.Add(entry.Amount)
			}
		}
		if credit, ok := idx[entry.CreditAccountID]; ok {
			if credit.Code == cashCode {
				metrics.TotalCash = metrics.TotalCash.Sub(entry.Amount)
			}
			if credit.AccountType == domain.Revenue {
				metrics.TotalRevenue = metrics.TotalRevenue.Add(entry.Amount)
			}
		}
	}
	metrics.NetIncome = metrics.TotalRevenue.Sub(metrics.TotalExpenses)
	return metrics
}
