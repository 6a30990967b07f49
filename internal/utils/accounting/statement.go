package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/openbooks/bookkeeping_app/internal/core/domain"
)

// activeAmountsByType returns the line items for every active account
// of the given type, dropping exact-zero balances from the listing.
// The returned total sums all active accounts of the type; the dropped
// accounts contribute zero to it either way.
func activeAmountsByType(accounts []domain.Account, balances map[string]decimal.Decimal, accountType domain.AccountType) ([]domain.AccountAmount, decimal.Decimal) {
	items := make([]domain.AccountAmount, 0)
	total := decimal.Zero
	for _, acc := range accounts {
		if acc.AccountType != accountType || !acc.IsActive {
			continue
		}
		balance := balances[acc.AccountID]
		total = total.Add(balance)
		if balance.IsZero() {
			continue
		}
		items = append(items, domain.AccountAmount{
			AccountID: acc.AccountID,
			Code:      acc.Code,
			Name:      acc.Name,
			Balance:   balance,
		})
	}
	return items, total
}

// BalanceSheet composes the balance sheet from the snapshot: itemized
// assets, liabilities and equity of active accounts, net income
// (revenue minus expenses) folded into total equity, and the
// fundamental identity check. Amounts are exact decimals, so the
// identity holds without a tolerance; a non-zero discrepancy is
// reported, not raised.
func BalanceSheet(accounts []domain.Account, entries []domain.JournalEntry) *domain.BalanceSheetReport {
	balances := Balances(accounts, entries)

	assets, totalAssets := activeAmountsByType(accounts, balances, domain.Asset)
	liabilities, totalLiabilities := activeAmountsByType(accounts, balances, domain.Liability)
	equity, equitySubtotal := activeAmountsByType(accounts, balances, domain.Equity)
	_, totalRevenue := activeAmountsByType(accounts, balances, domain.Revenue)
	_, totalExpenses := activeAmountsByType(accounts, balances, domain.Expense)

	netIncome := totalRevenue.Sub(totalExpenses)
	totalEquity := equitySubtotal.Add(netIncome)
	discrepancy := totalAssets.Sub(totalLiabilities.Add(totalEquity))

	return &domain.BalanceSheetReport{
		Assets:           assets,
		Liabilities:      liabilities,
		Equity:           equity,
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		TotalEquity:      totalEquity,
		NetIncome:        netIncome,
		Discrepancy:      discrepancy,
		IsBalanced:       discrepancy.IsZero(),
	}
}

// TrialBalance lists every active account with a non-zero balance,
// presented on its natural side: a positive balance lands in the
// account's normal-balance column, a negative one in the opposing
// column.
func TrialBalance(accounts []domain.Account, entries []domain.JournalEntry) []domain.TrialBalanceRow {
	balances := Balances(accounts, entries)

	rows := make([]domain.TrialBalanceRow, 0, len(accounts))
	for _, acc := range accounts {
		if !acc.IsActive {
			continue
		}
		balance := balances[acc.AccountID]
		if balance.IsZero() {
			continue
		}

		row := domain.TrialBalanceRow{
			AccountID:   acc.AccountID,
			Code:        acc.Code,
			AccountName: acc.Name,
			AccountType: acc.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		onNormalSide := balance.IsPositive()
		if acc.AccountType.IsDebitNormal() == onNormalSide {
			row.Debit = balance.Abs()
		} else {
			row.Credit = balance.Abs()
		}
		rows = append(rows, row)
	}
	return rows
}
