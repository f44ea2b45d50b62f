package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blogsite/blog-platform/internal/core/domain"
	"github.com/blogsite/blog-platform/internal/core/ports"
)

const (
	minBlogNameLen     = 20
	minCategoryNameLen = 3
	minArticleWords    = 1000
)

// BlogService implements blog and category operations. Authorization
// decisions use the explicit caller identity forwarded by the gateway.
type BlogService struct {
	blogs      ports.BlogRepository
	categories ports.CategoryRepository
}

func NewBlogService(blogs ports.BlogRepository, categories ports.CategoryRepository) *BlogService {
	return &BlogService{blogs: blogs, categories: categories}
}

// AddBlog publishes a blog under an existing category. Blog names and
// category references must be at least 20 characters and the article at
// least 1000 words.
func (s *BlogService) AddBlog(ctx context.Context, caller *domain.Identity, blogName, category, article string) (*domain.Blog, error) {
	if len(blogName) < minBlogNameLen {
		return nil, fmt.Errorf("%w: blog name must be at least %d characters", domain.ErrValidation, minBlogNameLen)
	}
	if len(category) < minBlogNameLen {
		return nil, fmt.Errorf("%w: category must be at least %d characters", domain.ErrValidation, minBlogNameLen)
	}
	if wordCount(article) < minArticleWords {
		return nil, fmt.Errorf("%w: article must be at least %d words", domain.ErrValidation, minArticleWords)
	}

	if _, err := s.categories.FindByName(ctx, category); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	blog := &domain.Blog{
		BlogName:   blogName,
		AuthorID:   caller.ID,
		AuthorName: caller.Username,
		Category:   category,
		Article:    article,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.blogs.Create(ctx, blog)
}

// UpdateBlog applies the non-empty fields of the update to the caller's own
// blog. Only the author may update; admins delete, they do not edit.
func (s *BlogService) UpdateBlog(ctx context.Context, caller *domain.Identity, blogID string, update ports.BlogUpdate) (*domain.Blog, error) {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog.AuthorID != caller.ID {
		return nil, domain.ErrNotBlogAuthor
	}

	if name := strings.TrimSpace(update.BlogName); name != "" {
		if len(name) < minBlogNameLen {
			return nil, fmt.Errorf("%w: blog name must be at least %d characters", domain.ErrValidation, minBlogNameLen)
		}
		blog.BlogName = name
	}
	if category := strings.TrimSpace(update.Category); category != "" {
		if _, err := s.categories.FindByName(ctx, category); err != nil {
			return nil, err
		}
		blog.Category = category
	}
	if article := strings.TrimSpace(update.Article); article != "" {
		blog.Article = update.Article
	}

	blog.UpdatedAt = time.Now().UTC()
	if err := s.blogs.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// DeleteBlog removes a blog by name. Admins may delete any blog; everyone
// else only their own.
func (s *BlogService) DeleteBlog(ctx context.Context, caller *domain.Identity, blogName string) error {
	var blog *domain.Blog
	var err error
	if caller.HasRole(domain.RoleAdmin) {
		blog, err = s.blogs.FindByName(ctx, blogName)
	} else {
		blog, err = s.blogs.FindByAuthorAndName(ctx, caller.ID, blogName)
	}
	if err != nil {
		return err
	}
	return s.blogs.Delete(ctx, blog.ID)
}

func (s *BlogService) BlogsForAuthor(ctx context.Context, authorID string) ([]domain.Blog, error) {
	return s.blogs.FindByAuthor(ctx, authorID)
}

func (s *BlogService) AllBlogs(ctx context.Context) ([]domain.Blog, error) {
	return s.blogs.FindAll(ctx)
}

func (s *BlogService) BlogByID(ctx context.Context, id string) (*domain.Blog, error) {
	return s.blogs.FindByID(ctx, id)
}

func (s *BlogService) BlogsByCategory(ctx context.Context, category string) ([]domain.Blog, error) {
	return s.blogs.FindByCategory(ctx, category)
}

// BlogsByCategoryBetween returns the blogs published under a category within
// the inclusive [from, to] date range.
func (s *BlogService) BlogsByCategoryBetween(ctx context.Context, category string, from, to time.Time) (*ports.BlogSummary, error) {
	// Widen "to" to the end of its day so date-only inputs behave inclusively.
	end := to.AddDate(0, 0, 1).Add(-time.Second)
	blogs, err := s.blogs.FindByCategoryBetween(ctx, category, from, end)
	if err != nil {
		return nil, err
	}
	return &ports.BlogSummary{
		Category: category,
		From:     from,
		To:       end,
		Count:    len(blogs),
		Blogs:    blogs,
	}, nil
}

// CreateCategory adds a curated category. The gateway only routes admins
// here; the service re-checks nothing beyond the name rules.
func (s *BlogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if len(name) < minCategoryNameLen {
		return nil, fmt.Errorf("%w: category name must be at least %d characters", domain.ErrValidation, minCategoryNameLen)
	}
	if _, err := s.categories.FindByName(ctx, name); err == nil {
		return nil, domain.ErrCategoryExists
	} else if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}
	return s.categories.Create(ctx, &domain.Category{Name: name})
}

func (s *BlogService) AllCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.FindAll(ctx)
}

func wordCount(article string) int {
	return len(strings.Fields(article))
}
