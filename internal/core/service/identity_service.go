package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobportal/admin-console/internal/core/domain"
	"github.com/jobportal/admin-console/internal/core/ports"
)

// IdentityService implements registration, login, role verification and
// logout for administrator accounts. Sessions live in the persisted store for
// the lifetime of the token.
type IdentityService struct {
	accounts  ports.AccountRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewIdentityService(accounts ports.AccountRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *IdentityService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &IdentityService{
		accounts:  accounts,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *IdentityService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Avatar:       input.Avatar,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.accounts.Create(ctx, account)
}

func (s *IdentityService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token, err := s.generateToken(account, now)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		Token:       token,
		PrincipalID: account.ID,
		Role:        account.Role,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		Email:       account.Email,
		Avatar:      account.Avatar,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.tokenTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info().Str("email", account.Email).Msg("administrator logged in")
	return &ports.LoginResult{Token: token, Account: account}, nil
}

// CheckRole verifies the token signature and expiry, confirms the session is
// still present in the store (logout invalidates it), and returns the stored
// session's role.
func (s *IdentityService) CheckRole(ctx context.Context, token string) (string, error) {
	session, err := s.verifiedSession(ctx, token)
	if err != nil {
		return "", err
	}
	return session.Role, nil
}

// VerifyAdmin satisfies the table controller's role-verifier port.
func (s *IdentityService) VerifyAdmin(ctx context.Context, token string) (bool, error) {
	session, err := s.verifiedSession(ctx, token)
	if err != nil {
		return false, err
	}
	return session.IsAdmin(), nil
}

// verifiedSession checks the token cryptographically, then resolves it against
// the session store. The stored record, not the claim set, is the source of
// truth for the role.
func (s *IdentityService) verifiedSession(ctx context.Context, token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	session, err := s.sessions.Find(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// Profile returns the account record behind the session, looked up by the
// principal id the token was issued for.
func (s *IdentityService) Profile(ctx context.Context, token string) (*domain.Account, error) {
	session, err := s.verifiedSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.accounts.FindByID(ctx, session.PrincipalID)
}

func (s *IdentityService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *IdentityService) generateToken(account *domain.Account, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   account.ID,
		"email": account.Email,
		"role":  account.Role,
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
