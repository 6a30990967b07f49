package domain

// AccountType defines the fundamental accounting type of an account.
// The set is closed: every account belongs to exactly one of the five
// types and the type never changes after creation.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether accounts of this type increase with debits.
// Assets and expenses are debit-normal; liabilities, equity and revenue
// increase with credits.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// Account represents a financial account in the chart of accounts.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary key (UUID)
	Code        string      `json:"code"`        // Human-assigned short code, unique by convention only
	Name        string      `json:"name"`        // User-defined display name
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE
	IsActive    bool        `json:"isActive"`    // The only mutable field after creation
	AuditFields
}
