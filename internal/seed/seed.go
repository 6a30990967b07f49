// Package seed loads a small demonstration book into an empty store:
// a fourteen-account chart and a couple of months of entries, two of
// them left pending for the approval workflow.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/openbooks/bookkeeping_app/internal/core/ports/repositories"
)

const seedUser = "seed"

type seedAccount struct {
	code        string
	name        string
	accountType domain.AccountType
}

type seedEntry struct {
	date        time.Time
	description string
	reference   string
	debitCode   string
	creditCode  string
	amount      int64
	approved    bool
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var demoAccounts = []seedAccount{
	{"1010", "Cash", domain.Asset},
	{"1020", "Accounts Receivable", domain.Asset},
	{"1030", "Inventory", domain.Asset},
	{"1500", "Equipment", domain.Asset},
	{"2010", "Accounts Payable", domain.Liability},
	{"2020", "Notes Payable", domain.Liability},
	{"3010", "Owner's Capital", domain.Equity},
	{"3020", "Retained Earnings", domain.Equity},
	{"4010", "Sales Revenue", domain.Revenue},
	{"4020", "Service Revenue", domain.Revenue},
	{"5010", "Cost of Goods Sold", domain.Expense},
	{"5020", "Rent Expense", domain.Expense},
	{"5030", "Salaries Expense", domain.Expense},
	{"5040", "Utilities Expense", domain.Expense},
}

var demoEntries = []seedEntry{
	{day(2025, time.October, 1), "Owner investment", "JE-001", "1010", "3010", 50000, true},
	{day(2025, time.October, 3), "Purchased equipment", "JE-002", "1500", "1010", 15000, true},
	{day(2025, time.October, 5), "Cash sales", "JE-003", "1010", "4010", 8500, true},
	{day(2025, time.October, 8), "Inventory purchase on credit", "JE-004", "1030", "2010", 5000, true},
	{day(2025, time.October, 12), "Paid office rent", "JE-005", "5020", "1010", 2000, true},
	{day(2025, time.October, 15), "Paid salaries", "JE-006", "5030", "1010", 6000, true},
	{day(2025, time.October, 18), "Consulting services billed", "JE-007", "1010", "4020", 4200, true},
	{day(2025, time.October, 22), "Paid utility bill", "JE-008", "5040", "1010", 800, true},
	{day(2025, time.October, 25), "Credit sales", "JE-009", "1020", "4010", 12000, true},
	{day(2025, time.October, 28), "Cost of goods sold", "JE-010", "5010", "1030", 3500, true},
	{day(2025, time.November, 2), "Partial rent prepayment", "JE-011", "5020", "1010", 2000, false},
	{day(2025, time.November, 10), "Consulting retainer received", "JE-012", "1010", "4020", 5500, false},
}

// Load inserts the demo book. It is a no-op when the registry already
// holds accounts.
func Load(ctx context.Context, accountRepo portsrepo.AccountRepository, entryRepo portsrepo.EntryWriter) error {
	existing, err := accountRepo.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to check registry before seeding: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     seedUser,
		LastUpdatedAt: now,
		LastUpdatedBy: seedUser,
	}

	idsByCode := make(map[string]string, len(demoAccounts))
	for _, sa := range demoAccounts {
		account := domain.Account{
			AccountID:   uuid.NewString(),
			Code:        sa.code,
			Name:        sa.name,
			AccountType: sa.accountType,
			IsActive:    true,
			AuditFields: audit,
		}
		if err := accountRepo.SaveAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", sa.code, err)
		}
		idsByCode[sa.code] = account.AccountID
	}

	for _, se := range demoEntries {
		entry := domain.JournalEntry{
			EntryID:         uuid.NewString(),
			Date:            se.date,
			Description:     se.description,
			Reference:       se.reference,
			DebitAccountID:  idsByCode[se.debitCode],
			CreditAccountID: idsByCode[se.creditCode],
			Amount:          decimal.NewFromInt(se.amount),
			Approved:        se.approved,
			AuditFields:     audit,
		}
		if se.approved {
			entry.ApprovedBy = seedUser
			at := se.date
			entry.ApprovedAt = &at
		}
		if err := entryRepo.SaveEntry(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed entry %s: %w", se.reference, err)
		}
	}
	return nil
}
