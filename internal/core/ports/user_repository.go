package ports

import (
	"context"

	"github.com/app2/products-catalog/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// FindByLogin returns the account for login, or domain.ErrUserNotFound.
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	// Create persists a new account. A duplicate login yields
	// domain.ErrUserExists (backed by a unique index, so concurrent
	// registrations of the same login cannot both succeed).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindLoginsByIDs resolves account ids to logins for display purposes.
	// Unknown ids are simply absent from the result.
	FindLoginsByIDs(ctx context.Context, ids []string) (map[string]string, error)
}
