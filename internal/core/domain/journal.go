package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a single posted transaction: one debit and one equal
// credit against two different accounts. The amount is not split; it
// serves both sides of the pair.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`     // Primary key (UUID)
	Date            time.Time       `json:"date"`        // Business date of the transaction, distinct from CreatedAt
	Description     string          `json:"description"` // Free text
	Reference       string          `json:"reference"`   // Transaction code, e.g. "JE-001"
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"` // Must differ from DebitAccountID
	Amount          decimal.Decimal `json:"amount"`          // Strictly positive
	Approved        bool            `json:"approved"`        // Gates inclusion in every derived report
	ApprovedBy      string          `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty"`
	AuditFields
}
