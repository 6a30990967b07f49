// Package accounting is the pure computation core of the ledger: every
// function here is a deterministic, side-effect-free function of an
// accounts/entries snapshot. Callers pass immutable snapshots in and
// get freshly allocated results back; nothing in this package holds
// state or mutates its inputs.
package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// AccountIndex builds a lookup of accounts by ID.
func AccountIndex(accounts []domain.Account) map[string]domain.Account {
	idx := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		idx[acc.AccountID] = acc
	}
	return idx
}

// signedContribution returns the effect of a single posting side on an
// account's balance, honoring normal-balance polarity.
// DEBIT to ASSET/EXPENSE -> +amount, CREDIT -> -amount.
// DEBIT to LIABILITY/EQUITY/REVENUE -> -amount, CREDIT -> +amount.
func signedContribution(amount decimal.Decimal, accountType domain.AccountType, isDebit bool) decimal.Decimal {
	if accountType.IsDebitNormal() == isDebit {
		return amount
	}
	return amount.Neg()
}

// AccountBalance computes the signed balance of a single account from
// the approved entries in the snapshot. An account ID that does not
// resolve yields zero, as does an account no entry references.
// Summation is commutative, so the result is independent of entry
// order.
func AccountBalance(accountID string, accounts []domain.Account, entries []domain.JournalEntry) decimal.Decimal {
	account, ok := AccountIndex(accounts)[accountID]
	if !ok {
		return decimal.Zero
	}

	balance := decimal.Zero
	for _, entry := range entries {
		if !entry.Approved {
			continue
		}
		if entry.DebitAccountID == account.AccountID {
			balance = balance.Add(signedContribution(entry.Amount, account.AccountType, true))
		}
		if entry.CreditAccountID == account.AccountID {
			balance = balance.Add(signedContribution(entry.Amount, account.AccountType, false))
		}
	}
	return balance
}

// Balances computes the signed balance of every account in the snapshot
// in a single pass over the approved entries. Entries referencing
// unknown accounts contribute nothing.
func Balances(accounts []domain.Account, entries []domain.JournalEntry) map[string]decimal.Decimal {
	idx := AccountIndex(accounts)
	balances := make(map[string]decimal.Decimal, len(accounts))
	for _, acc := range accounts {
		balances[acc.AccountID] = decimal.Zero
	}
	for _, entry := range entries {
		if !entry.Approved {
			continue
		}
		if debit, ok := idx[entry.DebitAccountID]; ok {
			balances[debit.AccountID] = balances[debit.AccountID].Add(signedContribution(entry.Amount, debit.AccountType, true))
		}
		if credit, ok := idx[entry.CreditAccountID]; ok {
			balances[credit.AccountID] = balances[credit.AccountID].Add(signedContribution(entry.Amount, credit.AccountType, false))
		}
	}
	return balances
}
