package usecasecontract

import (
	"context"

	"github.com/bereketsol/inkwell/internal/domain/entity"
)

// LoginResult bundles the authenticated user with issued tokens.
type LoginResult struct {
	User         entity.User
	AccessToken  string
	RefreshToken string
}

// IUserUseCase defines user account business logic.
type IUserUseCase interface {
	Register(ctx context.Context, name, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// LoginWithOAuth finds or creates a verified account for an identity
	// asserted by the OAuth provider and issues tokens for it.
	LoginWithOAuth(ctx context.Context, name, email string) (*LoginResult, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
}
