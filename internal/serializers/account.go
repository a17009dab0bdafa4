package serializers

import (
	"context"

	"fireside/internal/accounts"
	"fireside/internal/models"
)

// AccountIn is the inbound account representation. The password is
// write-only: it is hashed by the account factory and never echoed back.
type AccountIn struct {
	Email    string `json:"email" validate:"required,email,max=50"`
	Password string `json:"password" validate:"required"`
}

// AccountRep is the outbound account representation.
type AccountRep struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// AccountSerializer maps accounts to and from their external representation.
// Inbound construction always delegates to the account factory so password
// hashing cannot be bypassed.
type AccountSerializer struct {
	manager *accounts.Manager
}

// NewAccountSerializer returns a serializer backed by the given factory.
func NewAccountSerializer(manager *accounts.Manager) *AccountSerializer {
	return &AccountSerializer{manager: manager}
}

// Inbound validates and persists a new account from its representation.
func (s *AccountSerializer) Inbound(ctx context.Context, in AccountIn) (*models.Account, error) {
	if err := validateInbound(in); err != nil {
		return nil, err
	}
	return s.manager.CreateAccount(ctx, in.Email, in.Password)
}

// Outbound derives the external representation of a stored account.
func (s *AccountSerializer) Outbound(account *models.Account) AccountRep {
	return AccountRep{
		ID:    account.ID,
		Email: account.Email,
	}
}
