package contract

import (
	"context"

	"github.com/bereketsol/inkwell/internal/domain/entity"
)

// IUserRepository represents the contract of the user repository.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUsersByIDs returns the users for the given ids, keyed by id.
	GetUsersByIDs(ctx context.Context, userIDs []string) (map[string]*entity.User, error)
	UpdateUser(ctx context.Context, userID string, updates map[string]interface{}) error
}
