package ports

import (
	"context"

	"github.com/blogsite/blog-platform/internal/core/domain"
)

// UserRepository persists registered accounts. The store must enforce
// uniqueness of username and email so that concurrent registrations resolve
// to exactly one winner.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
