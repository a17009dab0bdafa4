// Package accounts constructs valid account records, enforcing the
// email-centric identity rules of the application.
package accounts

import (
	"context"
	"strings"

	"fireside/internal/models"
	"fireside/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Manager is the factory for account records. All account creation goes
// through it so the password is always stored as a bcrypt hash.
type Manager struct {
	repo repository.AccountRepository
}

// NewManager returns a Manager bound to the given repository.
func NewManager(repo repository.AccountRepository) *Manager {
	return &Manager{repo: repo}
}

// NormalizeEmail canonicalizes an email address: surrounding whitespace is
// trimmed and the domain part is lowercased. The local part is preserved
// as given.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// CreateAccount normalizes the email, hashes the password and persists a new
// account in a single write. An empty email is rejected before any write.
// Uniqueness is not pre-checked here: a duplicate email fails at the storage
// boundary with a constraint violation.
func (m *Manager) CreateAccount(ctx context.Context, email, password string) (*models.Account, error) {
	if strings.TrimSpace(email) == "" {
		return nil, models.NewValidationError("Email is required", "email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	account := &models.Account{
		Email:    NormalizeEmail(email),
		Password: string(hashed),
		IsActive: true,
	}

	if err := m.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// CreateSuperuser creates a regular account and then grants it staff and
// superuser privileges with a second write. If the second write fails the
// account remains in its non-privileged form; callers must resubmit.
func (m *Manager) CreateSuperuser(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := m.CreateAccount(ctx, email, password)
	if err != nil {
		return nil, err
	}

	account.IsStaff = true
	account.IsSuperuser = true
	if err := m.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// CheckPassword compares a plaintext password against the stored hash.
func CheckPassword(account *models.Account, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) == nil
}
