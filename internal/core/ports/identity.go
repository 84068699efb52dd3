package ports

import (
	"context"

	"github.com/jobportal/admin-console/internal/core/domain"
)

// RegisterInput carries the fields for creating an administrator account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Avatar    string
}

// LoginResult is returned after a successful login: the signed token plus the
// profile fields the dashboard persists alongside it.
type LoginResult struct {
	Token   string
	Account *domain.Account
}

// IdentityService defines the login/verify/logout surface the dashboard
// depends on.
type IdentityService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// CheckRole parses and verifies the token and returns its role claim.
	CheckRole(ctx context.Context, token string) (string, error)
	// Profile resolves the session's own account record.
	Profile(ctx context.Context, token string) (*domain.Account, error)
	Logout(ctx context.Context, token string) error
}

// AccountRepository defines persistence for administrator accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
}

// SessionStore is the process-wide persisted key-value store holding active
// sessions. Written at login, read by every guard, cleared at logout.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
