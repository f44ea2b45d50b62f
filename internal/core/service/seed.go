package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/blogsite/blog-platform/internal/core/domain"
	"github.com/blogsite/blog-platform/internal/core/ports"
)

// SeedUser describes a bootstrap account created at startup when absent.
type SeedUser struct {
	Username string
	Email    string
	Password string
	Admin    bool
}

// SeedUsers idempotently creates the bootstrap accounts. Existing emails are
// skipped; a lost race against a concurrent boot is treated as already seeded.
func SeedUsers(ctx context.Context, auth *AuthService, users ports.UserRepository, seeds []SeedUser, log zerolog.Logger) error {
	for _, seed := range seeds {
		exists, err := users.ExistsByEmail(ctx, seed.Email)
		if err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		if exists {
			continue
		}
		if _, err := auth.Register(ctx, seed.Username, seed.Email, seed.Password, seed.Admin); err != nil {
			if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrUsernameTaken) {
				continue
			}
			return fmt.Errorf("seed users: %w", err)
		}
		log.Info().Str("username", seed.Username).Bool("admin", seed.Admin).Msg("seeded user")
	}
	return nil
}

// SeedCategories idempotently creates the default category list.
func SeedCategories(ctx context.Context, categories ports.CategoryRepository, names []string, log zerolog.Logger) error {
	for _, name := range names {
		if _, err := categories.FindByName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrCategoryNotFound) {
			return fmt.Errorf("seed categories: %w", err)
		}
		if _, err := categories.Create(ctx, &domain.Category{Name: name}); err != nil {
			if errors.Is(err, domain.ErrCategoryExists) {
				continue
			}
			return fmt.Errorf("seed categories: %w", err)
		}
		log.Info().Str("category", name).Msg("seeded category")
	}
	return nil
}
