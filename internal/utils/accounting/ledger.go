package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// AccountLedger produces the general ledger for one account: its
// approved postings ordered by business date, each row carrying the
// cumulative balance after applying it. The sort is stable; entries
// sharing a date keep their original relative order, which matters
// because the running balance depends on it. An unknown account yields
// an empty ledger, not an error. The final row's balance equals
// AccountBalance for the same snapshot.
func AccountLedger(accountID string, accounts []domain.Account, entries []domain.JournalEntry) []domain.LedgerEntry {
	account, ok := AccountIndex(accounts)[accountID]
	if !ok {
		return []domain.LedgerEntry{}
	}

	touching := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.Approved {
			continue
		}
		if entry.DebitAccountID == accountID || entry.CreditAccountID == accountID {
			touching = append(touching, entry)
		}
	}

	sort.SliceStable(touching, func(i, j int) bool {
		return touching[i].Date.Before(touching[j].Date)
	})

	ledger := make([]domain.LedgerEntry, 0, len(touching))
	balance := decimal.Zero
	for _, entry := range touching {
		isDebit := entry.DebitAccountID == accountID
		debit := decimal.Zero
		credit := decimal.Zero
		if isDebit {
			debit = entry.Amount
		} else {
			credit = entry.Amount
		}
		balance = balance.Add(signedContribution(entry.Amount, account.AccountType, isDebit))
		ledger = append(ledger, domain.LedgerEntry{
			Date:        entry.Date,
			Description: entry.Description,
			Reference:   entry.Reference,
			Debit:       debit,
			Credit:      credit,
			Balance:     balance,
		})
	}
	return ledger
}
