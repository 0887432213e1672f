package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/openmarket/marketplace-api/internal/api/metrics"
	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/password"
	"github.com/openmarket/marketplace-api/internal/core/ports"
	"github.com/openmarket/marketplace-api/internal/core/token"
)

// AuthService implements registration, login, and profile lookup.
type AuthService struct {
	accounts ports.AccountRepository
	tokens   *token.Manager
	logger   zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, tokens *token.Manager, logger zerolog.Logger) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens, logger: logger}
}

// Register creates a new account. Self-registration is limited to the user
// and vendor roles; admin accounts come from the seed or another admin.
func (s *AuthService) Register(ctx context.Context, name, email, pass, role string) (*domain.Account, error) {
	if name == "" || email == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role != domain.RoleUser && role != domain.RoleVendor {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("account_id", created.ID).Str("role", created.Role).Msg("account registered")
	return created, nil
}

// Login verifies credentials and returns a signed token plus the account.
func (s *AuthService) Login(ctx context.Context, email, pass string) (string, *domain.Account, error) {
	if email == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		return "", nil, err
	}

	if !password.Verify(pass, account.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if !account.IsActive {
		metrics.LoginsTotal.WithLabelValues("blocked").Inc()
		return "", nil, domain.ErrForbidden
	}

	tkn, err := s.tokens.Issue(account.ID, account.Email, account.Role)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("account_id", account.ID).Str("role", account.Role).Msg("login")
	return tkn, account, nil
}

// Profile returns the account for the given id.
func (s *AuthService) Profile(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, accountID)
}
