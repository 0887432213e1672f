package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/openmarket/marketplace-api/internal/core/domain"
	"github.com/openmarket/marketplace-api/internal/core/password"
	"github.com/openmarket/marketplace-api/internal/core/ports"
	"github.com/openmarket/marketplace-api/internal/core/token"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
	nextID   int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, exists := r.accounts[account.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneAccount(account)
	created.ID = "acc_" + strconv.Itoa(r.nextID)
	created.CreatedAt = time.Now().UTC()
	r.accounts[created.Email] = cloneAccount(created)
	return created, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	a, ok := r.accounts[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAccountRepo) List(_ context.Context, _ ports.AccountFilter) ([]domain.Account, int64, error) {
	var out []domain.Account
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *stubAccountRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, a := range r.accounts {
		if a.Role == role {
			n++
		}
	}
	return n, nil
}

func newAuthService(repo ports.AccountRepository) *AuthService {
	return NewAuthService(repo, token.NewManager("secret", time.Hour), zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	account, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass1234", domain.RoleUser)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if account.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if !password.Verify("pass1234", account.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if account.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", account.Role)
	}
	if !account.IsActive {
		t.Fatalf("new accounts must start active")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubAccountRepo())

	if _, err := svc.Register(context.Background(), "", "a@example.com", "pass", domain.RoleUser); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	// Admin role is not self-assignable.
	if _, err := svc.Register(context.Background(), "Eve", "eve@example.com", "pass", domain.RoleAdmin); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for admin role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthService(newStubAccountRepo())

	_, _ = svc.Register(context.Background(), "Bob", "bob@example.com", "pass1234", domain.RoleVendor)
	if _, err := svc.Register(context.Background(), "Bob Again", "bob@example.com", "pass5678", domain.RoleVendor); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret123", domain.RoleVendor); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	raw, account, err := svc.Login(context.Background(), "carol@example.com", "s3cret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected token, got empty")
	}
	if account == nil || account.Name != "Carol" {
		t.Fatalf("unexpected account: %+v", account)
	}

	claims, status := token.NewManager("secret", time.Hour).Verify(raw)
	if status != token.StatusValid {
		t.Fatalf("issued token does not verify")
	}
	if claims.Subject != account.ID || claims.Email != "carol@example.com" || claims.Role != domain.RoleVendor {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newAuthService(newStubAccountRepo())

	_, _ = svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass1", domain.RoleUser)
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newAuthService(newStubAccountRepo())

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_BlockedAccount(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newAuthService(repo)

	_, _ = svc.Register(context.Background(), "Frank", "frank@example.com", "pass1234", domain.RoleUser)
	repo.accounts["frank@example.com"].IsActive = false

	if _, _, err := svc.Login(context.Background(), "frank@example.com", "pass1234"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
