package types

import "time"

// LoginRecord is one entry of the login audit trail. Records are
// append-only: created exactly once per successful login, never
// mutated or deleted.
type LoginRecord struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"userId" db:"user_id"`
	IPAddress string    `json:"ipAddress" db:"ip_address"`
	LoginTime time.Time `json:"loginTime" db:"login_time"`

	// Username is populated by queries joining the user row.
	Username string `json:"username,omitempty" db:"-"`
}

// LoginCount is an aggregated (user, count) pair produced by the
// weekly ranking query.
type LoginCount struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	LoginCount int    `json:"loginCount"`
}
