package domain

import "time"

const (
	RoleAdmin    = "ROLE_ADMIN"
	RoleEmployer = "ROLE_EMPLOYER"
	RoleCustomer = "ROLE_CUSTOMER"
)

// Session is the persisted record of an authenticated administrator. It is
// written once at login, read by every guarded screen, and deleted at logout
// or when the token stops verifying.
type Session struct {
	Token       string    `json:"token"`
	PrincipalID string    `json:"principalId"`
	Role        string    `json:"role"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// IsAdmin reports whether the session carries the elevated-privilege claim.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
