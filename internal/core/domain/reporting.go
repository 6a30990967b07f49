package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one row of an account's general ledger: a single
// posting with the cumulative signed balance after applying it. Purely
// derived; never stored.
type LedgerEntry struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Reference   string          `json:"reference"`
	Debit       decimal.Decimal `json:"debit"`  // Zero when the account was credited
	Credit      decimal.Decimal `json:"credit"` // Zero when the account was debited
	Balance     decimal.Decimal `json:"balance"`
}

// JournalLine is one half of a journal entry as rendered in the general
// journal: the debit line and the credit line of an entry share the
// entry's date, reference and description.
type JournalLine struct {
	EntryID      string          `json:"entryID"`
	Date         time.Time       `json:"date"`
	Reference    string          `json:"reference"`
	Description  string          `json:"description"`
	AccountLabel string          `json:"accountLabel"` // "<code> - <name>", or "Unknown"
	Debit        decimal.Decimal `json:"debit"`
	Credit       decimal.Decimal `json:"credit"`
}

// AccountAmount pairs an account with its net balance for statement
// line items.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

// BalanceSheetReport is a point-in-time statement of assets,
// liabilities and equity. Zero-balance accounts are dropped from the
// itemized lists. A non-zero Discrepancy is a reportable condition for
// the caller, not an error.
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"` // Includes NetIncome
	NetIncome        decimal.Decimal `json:"netIncome"`   // Revenue minus expenses, folded into equity
	Discrepancy      decimal.Decimal `json:"discrepancy"` // TotalAssets - (TotalLiabilities + TotalEquity)
	IsBalanced       bool            `json:"isBalanced"`
}

// TrialBalanceRow presents one account's balance on its natural side.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}
