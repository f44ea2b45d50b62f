package ports

import (
	"context"
	"time"

	"github.com/blogsite/blog-platform/internal/core/domain"
)

// BlogUpdate carries the optional fields of a blog update; empty fields are
// left unchanged.
type BlogUpdate struct {
	BlogName string
	Category string
	Article  string
}

// BlogSummary is the response shape for duration queries.
type BlogSummary struct {
	Category string        `json:"category"`
	From     time.Time     `json:"from"`
	To       time.Time     `json:"to"`
	Count    int           `json:"count"`
	Blogs    []domain.Blog `json:"blogs"`
}

// BlogService implements the blog and category operations. The caller
// identity always arrives as an explicit argument.
type BlogService interface {
	AddBlog(ctx context.Context, caller *domain.Identity, blogName, category, article string) (*domain.Blog, error)
	UpdateBlog(ctx context.Context, caller *domain.Identity, blogID string, update BlogUpdate) (*domain.Blog, error)
	DeleteBlog(ctx context.Context, caller *domain.Identity, blogName string) error
	BlogsForAuthor(ctx context.Context, authorID string) ([]domain.Blog, error)
	AllBlogs(ctx context.Context) ([]domain.Blog, error)
	BlogByID(ctx context.Context, id string) (*domain.Blog, error)
	BlogsByCategory(ctx context.Context, category string) ([]domain.Blog, error)
	BlogsByCategoryBetween(ctx context.Context, category string, from, to time.Time) (*BlogSummary, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	AllCategories(ctx context.Context) ([]domain.Category, error)
}
