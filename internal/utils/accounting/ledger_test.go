package accounting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
	"github.com/openbooks/bookkeeping_app/internal/utils/accounting"
)

func TestAccountLedger_RunningBalance(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	ledger := accounting.AccountLedger("1", accounts, entries)
	require.Len(t, ledger, 8) // pending entries are invisible

	wantBalances := []int64{50000, 35000, 43500, 41500, 35500, 39700, 38900, 50900}
	for i, want := range wantBalances {
		assert.True(t, d(want).Equal(ledger[i].Balance), "row %d: got %s", i, ledger[i].Balance)
	}

	// Debit and credit columns are mutually exclusive per row.
	for _, row := range ledger {
		assert.True(t, row.Debit.IsZero() != row.Credit.IsZero())
	}
}

func TestAccountLedger_FinalBalanceMatchesBalanceEngine(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	for _, acc := range accounts {
		ledger := accounting.AccountLedger(acc.AccountID, accounts, entries)
		standalone := accounting.AccountBalance(acc.AccountID, accounts, entries)
		if len(ledger) == 0 {
			assert.True(t, standalone.IsZero(), "account %s", acc.AccountID)
			continue
		}
		assert.True(t, ledger[len(ledger)-1].Balance.Equal(standalone), "account %s", acc.AccountID)
	}
}

func TestAccountLedger_StableTieBreak(t *testing.T) {
	accounts := []domain.Account{
		account("cash", "1010", "Cash", domain.Asset),
		account("rev", "4010", "Sales Revenue", domain.Revenue),
	}
	sameDay := day(2025, time.March, 3)
	entries := []domain.JournalEntry{
		entry("first", sameDay, "R1", "first of the day", "cash", "rev", 100, true),
		entry("second", sameDay, "R2", "second of the day", "cash", "rev", 40, true),
	}

	ledger := accounting.AccountLedger("cash", accounts, entries)
	require.Len(t, ledger, 2)
	assert.Equal(t, "R1", ledger[0].Reference)
	assert.True(t, d(100).Equal(ledger[0].Balance))
	assert.Equal(t, "R2", ledger[1].Reference)
	assert.True(t, d(140).Equal(ledger[1].Balance))
}

func TestAccountLedger_SortsByBusinessDate(t *testing.T) {
	accounts := []domain.Account{
		account("cash", "1010", "Cash", domain.Asset),
		account("rev", "4010", "Sales Revenue", domain.Revenue),
	}
	// Inserted out of date order on purpose.
	entries := []domain.JournalEntry{
		entry("late", day(2025, time.June, 20), "R2", "later", "cash", "rev", 5, true),
		entry("early", day(2025, time.June, 1), "R1", "earlier", "cash", "rev", 10, true),
	}

	ledger := accounting.AccountLedger("cash", accounts, entries)
	require.Len(t, ledger, 2)
	assert.Equal(t, "R1", ledger[0].Reference)
	assert.Equal(t, "R2", ledger[1].Reference)
}

func TestAccountLedger_UnknownAccountIsEmpty(t *testing.T) {
	ledger := accounting.AccountLedger("ghost", demoAccounts(), demoEntries())
	assert.Empty(t, ledger)
}

func TestAccountLedger_Idempotent(t *testing.T) {
	accounts := demoAccounts()
	entries := demoEntries()

	first := accounting.AccountLedger("1", accounts, entries)
	second := accounting.AccountLedger("1", accounts, entries)
	assert.Equal(t, first, second)
}
