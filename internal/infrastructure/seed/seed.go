// Package seed bootstraps the initial administrator account.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/password"
	"github.com/openmarket/marketplace-api/internal/core/ports"
)

// EnsureAdmin creates an admin account with the given credentials when no
// admin exists yet. Idempotent across restarts.
func EnsureAdmin(ctx context.Context, accounts ports.AccountRepository, email, pass string, log zerolog.Logger) error {
	n, err := accounts.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("seed: count admins: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	admin := &domain.Account{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsVerified:   true,
		IsActive:     true,
	}

	created, err := accounts.Create(ctx, admin)
	if err != nil {
		// Another instance may have seeded first.
		if err == domain.ErrUserExists {
			return nil
		}
		return fmt.Errorf("seed: create admin: %w", err)
	}

	log.Warn().
		Str("account_id", created.ID).
		Str("email", email).
		Msg("seeded default admin account; rotate this credential")
	return nil
}
