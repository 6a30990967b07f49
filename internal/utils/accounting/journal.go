package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// UnknownAccountLabel is the sentinel label used when a journal line
// references an account that is missing from the snapshot.
const UnknownAccountLabel = "Unknown"

func accountLabel(idx map[string]domain.Account, accountID string) string {
	if acc, ok := idx[accountID]; ok {
		return acc.Code + " - " + acc.Name
	}
	return UnknownAccountLabel
}

// JournalLines renders the general journal: the approved entries in
// chronological order (stable on ties), each expanded into a debit line
// followed by a credit line sharing the entry's date, reference and
// description. Unknown account references render as a sentinel label
// rather than failing.
func JournalLines(accounts []domain.Account, entries []domain.JournalEntry) []domain.JournalLine {
	idx := AccountIndex(accounts)

	approved := make([]domain.JournalEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Approved {
			approved = append(approved, entry)
		}
	}
	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].Date.Before(approved[j].Date)
	})

	lines := make([]domain.JournalLine, 0, len(approved)*2)
	for _, entry := range approved {
		lines = append(lines, domain.JournalLine{
			EntryID:      entry.EntryID,
			Date:         entry.Date,
			Reference:    entry.Reference,
			Description:  entry.Description,
			AccountLabel: accountLabel(idx, entry.DebitAccountID),
			Debit:        entry.Amount,
			Credit:       decimal.Zero,
		})
		lines = append(lines, domain.JournalLine{
			EntryID:      entry.EntryID,
			Date:         entry.Date,
			Reference:    entry.Reference,
			Description:  entry.Description,
			AccountLabel: accountLabel(idx, entry.CreditAccountID),
			Debit:        decimal.Zero,
			Credit:       entry.Amount,
		})
	}
	return lines
}
