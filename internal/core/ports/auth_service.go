package ports

import (
	"context"

	"github.com/blogsite/blog-platform/internal/core/domain"
)

// LoginResult carries the freshly issued token pair plus the identity summary
// returned to the client. The refresh token travels only in an HTTP-only
// cookie; the transport layer is responsible for keeping it out of the body.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

// TokenPair is the result of a refresh-token rotation.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	Username     string
}

// AuthService orchestrates registration, login and refresh-token rotation.
type AuthService interface {
	Register(ctx context.Context, username, email, password string, admin bool) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string)
	VerifyUser(ctx context.Context, id string) (*domain.User, error)
}
