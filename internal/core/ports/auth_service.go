package ports

import (
	"context"

	"github.com/openmarket/marketplace-api/internal/core/domain"
)

// AuthService handles registration, login, and profile lookup.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	Profile(ctx context.Context, accountID string) (*domain.Account, error)
}
