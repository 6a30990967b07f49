package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/openbooks/bookkeeping_app/internal/utils/accounting"
)

func TestBalanceSheet_SeedScenario(t *testing.T) {
	accounts := []domain.Account{
		account("1", "1010", "Cash", domain.Asset),
		account("7", "3010", "Common Stock", domain.Equity),
		account("9", "4010", "Sales Revenue", domain.Revenue),
	}
	entries := []domain.JournalEntry{
		entry("e1", day(2025, time.October, 1), "JE-001", "Capital", "1", "7", 50000, true),
		entry("e2", day(2025, time.October, 10), "JE-003", "Sales", "1", "9", 8500, true),
	}

	report := accounting.BalanceSheet(accounts, entries)
	assert.True(t, d(58500).Equal(report.TotalAssets))
	assert.True(t, report.TotalLiabilities.IsZero())
	assert.True(t, d(58500).Equal(report.TotalEquity)) // 50000 stock + 8500 net income
	assert.True(t, d(8500).Equal(report.NetIncome))
	assert.True(t, report.IsBalanced)
	assert.True(t, report.Discrepancy.IsZero())
}

func TestBalanceSheet_DemoBook(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	report := accounting.BalanceSheet(accounts, entries)
	assert.True(t, d(67400).Equal(report.TotalAssets))
	assert.True(t, d(5000).Equal(report.TotalLiabilities))
	assert.True(t, d(62400).Equal(report.TotalEquity))
	assert.True(t, d(12400).Equal(report.NetIncome))
	assert.True(t, report.IsBalanced)

	// Itemized lists carry only non-zero active accounts: Accounts
	// Receivable, Notes Payable and Retained Earnings never moved.
	assert.Len(t, report.Assets, 3)
	assert.Len(t, report.Liabilities, 1)
	assert.Len(t, report.Equity, 1)
	for _, item := range report.Assets {
		assert.False(t, item.Balance.IsZero())
	}
}

func TestBalanceSheet_UnapprovedEntriesInvisible(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	before := accounting.BalanceSheet(accounts, entries)
	approvedOnly := accounting.BalanceSheet(accounts, entries[:10])
	assert.Equal(t, approvedOnly, before)

	// Approval shifts the statement.
	entries[10].Approved = true // rent paid from cash
	after := accounting.BalanceSheet(accounts, entries)
	assert.True(t, d(65400).Equal(after.TotalAssets))
	assert.True(t, d(10400).Equal(after.NetIncome))
	assert.True(t, after.IsBalanced)
}

func TestBalanceSheet_IdentityHoldsOnEntrySubsets(t *testing.T) {
	accounts := demoAccounts()
	all := demoEntries()[:10]

	// Every prefix of the approved entry set is itself a balanced book:
	// each entry carries one debit and one equal credit.
	for n := 0; n <= len(all); n++ {
		report := accounting.BalanceSheet(accounts, all[:n])
		assert.True(t, report.IsBalanced, "prefix of %d entries: discrepancy %s", n, report.Discrepancy)
	}

	// So is an every-other-entry subset.
	alternating := make([]domain.JournalEntry, 0, len(all)/2)
	for i := 0; i < len(all); i += 2 {
		alternating = append(alternating, all[i])
	}
	assert.True(t, accounting.BalanceSheet(accounts, alternating).IsBalanced)
}

func TestBalanceSheet_InactiveAccountsExcluded(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	// Deactivating the equipment account removes its balance from the
	// asset side. The resulting imbalance is reported, not raised.
	for i := range accounts {
		if accounts[i].AccountID == "4" {
			accounts[i].IsActive = false
		}
	}

	report := accounting.BalanceSheet(accounts, entries)
	assert.True(t, d(52400).Equal(report.TotalAssets))
	assert.False(t, report.IsBalanced)
	assert.True(t, d(-15000).Equal(report.Discrepancy))
	for _, item := range report.Assets {
		assert.NotEqual(t, "4", item.AccountID)
	}
}

func TestBalanceSheet_DoesNotMutateInputs(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()
	accountsCopy := demoAccounts()
	entriesCopy := demoEntries()

	_ = accounting.BalanceSheet(accounts, entries)
	assert.Equal(t, accountsCopy, accounts)
	assert.Equal(t, entriesCopy, entries)
}

func TestTrialBalance_DebitsEqualCredits(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	rows := accounting.TrialBalance(accounts, entries)
	require.NotEmpty(t, rows)

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range rows {
		assert.False(t, row.Debit.IsZero() && row.Credit.IsZero(), "zero row for %s", row.AccountName)
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}
	assert.True(t, totalDebit.Equal(totalCredit), "debits %s, credits %s", totalDebit, totalCredit)
}

func TestTrialBalance_NaturalSides(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	rows := accounting.TrialBalance(accounts, entries)
	byID := make(map[string]domain.TrialBalanceRow, len(rows))
	for _, row := range rows {
		byID[row.AccountID] = row
	}

	cash := byID["1"]
	assert.True(t, d(50900).Equal(cash.Debit))
	assert.True(t, cash.Credit.IsZero())

	payable := byID["5"]
	assert.True(t, payable.Debit.IsZero())
	assert.True(t, d(5000).Equal(payable.Credit))
}
