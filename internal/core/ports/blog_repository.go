package ports

import (
	"context"
	"time"

	"github.com/blogsite/blog-platform/internal/core/domain"
)

// BlogRepository persists published blogs.
type BlogRepository interface {
	Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	Update(ctx context.Context, blog *domain.Blog) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	FindByName(ctx context.Context, blogName string) (*domain.Blog, error)
	FindByAuthorAndName(ctx context.Context, authorID, blogName string) (*domain.Blog, error)
	FindByAuthor(ctx context.Context, authorID string) ([]domain.Blog, error)
	FindAll(ctx context.Context) ([]domain.Blog, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Blog, error)
	FindByCategoryBetween(ctx context.Context, category string, from, to time.Time) ([]domain.Blog, error)
}

// CategoryRepository persists the curated category list.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
}
