package domain

// UserRole is the coarse role a user holds. It exists only at the
// boundary; the ledger core sees the derived Capability, never the role.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Capability is the explicit mutation right passed into every mutating
// service call. It replaces ambient role checks: callers derive it once
// (typically from the authenticated user's role) and hand it down.
type Capability struct {
	// Manage grants entry approval and deletion, account creation and
	// activation toggling, and pre-approval of the holder's own entries.
	Manage bool
}

// Capability derives the mutation capability carried by a role.
func (r UserRole) Capability() Capability {
	return Capability{Manage: r == RoleAdmin}
}

// User is an authenticated principal able to submit journal entries.
type User struct {
	UserID       string   `json:"userID"` // Primary key (UUID)
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields
}
