package models

// Role identifies which of the three dashboards an account may reach.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// AccountStatus represents the account lifecycle state.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
)

// Account represents a login-capable record in one of the three role tables.
// Passwords are stored and compared in plaintext: the credential tables are
// demo fixtures, not real identities.
type Account struct {
	ID       string        `json:"id"`
	Username string        `json:"username"`
	Password string        `json:"-"`
	Name     string        `json:"name"`
	Role     Role          `json:"role"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Status   AccountStatus `json:"status"`
}

// AccountFilter captures filtering criteria for listing accounts.
type AccountFilter struct {
	Role   Role
	Status AccountStatus
	Search string
}

// Session is the persisted logged-in-user record. It is the only durable
// entity in the system; everything else resets with the process.
type Session struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	ID       string `json:"id"`
}

// Valid reports whether the record identifies a logged-in user. A session
// with an absent or empty role never grants anything.
func (s *Session) Valid() bool {
	return s != nil && s.Role != ""
}
