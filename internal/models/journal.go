package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database row shape for a journal entry.
// ApprovedBy/ApprovedAt are NULL until the entry is approved.
type JournalEntry struct {
	EntryID         string          `db:"entry_id"`
	EntryDate       time.Time       `db:"entry_date"`
	Description     string          `db:"description"`
	Reference       string          `db:"reference"`
	DebitAccountID  string          `db:"debit_account_id"`
	CreditAccountID string          `db:"credit_account_id"`
	Amount          decimal.Decimal `db:"amount"`
	Approved        bool            `db:"approved"`
	ApprovedBy      *string         `db:"approved_by"`
	ApprovedAt      *time.Time      `db:"approved_at"`
	AuditFields
}
