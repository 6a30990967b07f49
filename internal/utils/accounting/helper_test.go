package accounting_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func account(id, code, name string, accountType domain.AccountType) domain.Account {
	return domain.Account{
		AccountID:   id,
		Code:        code,
		Name:        name,
		AccountType: accountType,
		IsActive:    true,
	}
}

func entry(id string, date time.Time, ref, desc, debitID, creditID string, amount int64, approved bool) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:         id,
		Date:            date,
		Reference:       ref,
		Description:     desc,
		DebitAccountID:  debitID,
		CreditAccountID: creditID,
		Amount:          d(amount),
		Approved:        approved,
	}
}

// demoAccounts is the chart of accounts the demo book opens with.
func demoAccounts() []domain.Account {
	return []domain.Account{
		account("1", "1010", "Cash", domain.Asset),
		account("2", "1020", "Accounts Receivable", domain.Asset),
		account("3", "1030", "Inventory", domain.Asset),
		account("4", "1500", "Equipment", domain.Asset),
		account("5", "2010", "Accounts Payable", domain.Liability),
		account("6", "2020", "Notes Payable", domain.Liability),
		account("7", "3010", "Common Stock", domain.Equity),
		account("8", "3020", "Retained Earnings", domain.Equity),
		account("9", "4010", "Sales Revenue", domain.Revenue),
		account("10", "4020", "Service Revenue", domain.Revenue),
		account("11", "5010", "Cost of Goods Sold", domain.Expense),
		account("12", "5020", "Rent Expense", domain.Expense),
		account("13", "5030", "Salaries Expense", domain.Expense),
		account("14", "5040", "Utilities Expense", domain.Expense),
	}
}

// demoEntries is two months of bookkeeping, the last two entries still
// pending approval.
func demoEntries() []domain.JournalEntry {
	return []domain.JournalEntry{
		entry("1", day(2025, time.October, 1), "JE-001", "Initial capital investment", "1", "7", 50000, true),
		entry("2", day(2025, time.October, 5), "JE-002", "Purchase of equipment", "4", "1", 15000, true),
		entry("3", day(2025, time.October, 10), "JE-003", "Sales revenue for October", "1", "9", 8500, true),
		entry("4", day(2025, time.October, 15), "JE-004", "Purchase inventory on account", "3", "5", 5000, true),
		entry("5", day(2025, time.October, 20), "JE-005", "Payment of rent", "12", "1", 2000, true),
		entry("6", day(2025, time.October, 25), "JE-006", "Salaries payment", "13", "1", 6000, true),
		entry("7", day(2025, time.October, 28), "JE-007", "Service revenue", "1", "10", 4200, true),
		entry("8", day(2025, time.October, 30), "JE-008", "Utilities payment", "14", "1", 800, true),
		entry("9", day(2025, time.November, 2), "JE-009", "Sales revenue", "1", "9", 12000, true),
		entry("10", day(2025, time.November, 5), "JE-010", "Cost of goods sold", "11", "3", 3500, true),
		entry("11", day(2025, time.November, 8), "JE-011", "Rent payment for November", "12", "1", 2000, false),
		entry("12", day(2025, time.November, 10), "JE-012", "Service revenue", "1", "10", 5500, false),
	}
}
