package accounting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/openbooks/bookkeeping_app/internal/utils/accounting"
)

func TestCashFlowByMonth(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	points := accounting.CashFlowByMonth(accounts, entries, accounting.DefaultCashAccountCode)
	require.Len(t, points, 2)

	assert.Equal(t, "2025-10", points[0].Month)
	assert.True(t, d(62700).Equal(points[0].Inflow))  // capital + sales + services into cash
	assert.True(t, d(8800).Equal(points[0].Outflow)) // rent + salaries + utilities

	assert.Equal(t, "2025-11", points[1].Month)
	assert.True(t, d(12000).Equal(points[1].Inflow))
	assert.True(t, d(3500).Equal(points[1].Outflow)) // cost of goods sold
}

func TestCashFlowByMonth_ConfigurableCashCode(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	// Designating inventory as the cash account reclassifies inflow.
	points := accounting.CashFlowByMonth(accounts, entries, "1030")
	require.Len(t, points, 2)
	assert.True(t, d(5000).Equal(points[0].Inflow)) // inventory purchase debits 1030
	assert.True(t, points[1].Inflow.IsZero())
}

func TestExpensesByCategory_FirstSeenOrder(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	totals := accounting.ExpensesByCategory(accounts, entries)
	require.Len(t, totals, 4)

	assert.Equal(t, "Rent Expense", totals[0].Name)
	assert.True(t, d(2000).Equal(totals[0].Total)) // November rent is still pending
	assert.Equal(t, "Salaries Expense", totals[1].Name)
	assert.True(t, d(6000).Equal(totals[1].Total))
	assert.Equal(t, "Utilities Expense", totals[2].Name)
	assert.True(t, d(800).Equal(totals[2].Total))
	assert.Equal(t, "Cost of Goods Sold", totals[3].Name)
	assert.True(t, d(3500).Equal(totals[3].Total))
}

func TestRevenueByDate(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	points := accounting.RevenueByDate(accounts, entries)
	require.Len(t, points, 3)
	assert.Equal(t, "2025-10-10", points[0].Date)
	assert.True(t, d(8500).Equal(points[0].Total))
	assert.Equal(t, "2025-10-28", points[1].Date)
	assert.True(t, d(4200).Equal(points[1].Total))
	assert.Equal(t, "2025-11-02", points[2].Date)
	assert.True(t, d(12000).Equal(points[2].Total))
}

func TestRevenueByDate_MergesSameDay(t *testing.T) {
	accounts := demoAccounts()
	sameDay := day(2025, time.December, 1)
	entries := []domain.JournalEntry{
		entry("a", sameDay, "R1", "morning sale", "1", "9", 100, true),
		entry("b", sameDay, "R2", "afternoon sale", "1", "10", 250, true),
	}

	points := accounting.RevenueByDate(accounts, entries)
	require.Len(t, points, 1)
	assert.True(t, d(350).Equal(points[0].Total))
}

func TestSummary(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	metrics := accounting.Summary(accounts, entries, accounting.DefaultCashAccountCode)
	assert.True(t, d(50900).Equal(metrics.TotalCash))
	assert.True(t, d(24700).Equal(metrics.TotalRevenue))
	assert.True(t, d(12300).Equal(metrics.TotalExpenses))
	assert.True(t, d(12400).Equal(metrics.NetIncome))
}

func TestAggregations_SkipUnknownAccountsAndPending(t *testing.T) {
	accounts := demoAccounts()
	entries := append(demoEntries(),
		entry("x1", day(2025, time.November, 20), "JE-098", "orphan debit", "missing", "1", 9999, true),
		entry("x2", day(2025, time.November, 21), "JE-099", "pending sale", "1", "9", 9999, false),
	)

	baseline := demoEntries()
	assert.Equal(t, accounting.ExpensesByCategory(accounts, baseline), accounting.ExpensesByCategory(accounts, entries))
	assert.Equal(t, accounting.RevenueByDate(accounts, baseline), accounting.RevenueByDate(accounts, entries))

	metrics := accounting.Summary(accounts, entries, accounting.DefaultCashAccountCode)
	// The orphan debit still credits cash; the pending sale moves nothing.
	assert.True(t, d(50900-9999).Equal(metrics.TotalCash))
	assert.True(t, d(24700).Equal(metrics.TotalRevenue))
}
