package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/blogsite/blog-platform/internal/api/metrics"
	"github.com/blogsite/blog-platform/internal/core/domain"
	"github.com/blogsite/blog-platform/internal/core/ports"
	"github.com/blogsite/blog-platform/internal/token"
)

// AuthService implements registration, login and refresh-token rotation.
type AuthService struct {
	users      ports.UserRepository
	revoked    ports.RevocationList
	codec      *token.Codec
	bcryptCost int
}

func NewAuthService(users ports.UserRepository, revoked ports.RevocationList, codec *token.Codec, bcryptCost int) *AuthService {
	if bcryptCost <= 0 {
		bcryptCost = token.DefaultBcryptCost
	}
	return &AuthService{users: users, revoked: revoked, codec: codec, bcryptCost: bcryptCost}
}

// Register creates an account with exactly one role. Duplicate checks run
// before the insert; the store's unique indexes settle concurrent races.
func (s *AuthService) Register(ctx context.Context, username, email, password string, admin bool) (*domain.User, error) {
	username = strings.TrimSpace(username)

	if taken, err := s.users.ExistsByEmail(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrEmailTaken
	}
	if taken, err := s.users.ExistsByUsername(ctx, username); err != nil {
		return nil, err
	} else if taken {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := token.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if admin {
		role = domain.RoleAdmin
	}
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        []string{role},
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	metrics.UsersRegisteredTotal.Inc()
	return created, nil
}

// Login verifies the credentials and issues an access/refresh token pair.
// The bcrypt comparison runs whether or not the username resolved, and both
// miss cases report the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	storedHash := ""
	if user != nil {
		storedHash = user.PasswordHash
	}
	if !token.VerifyPassword(password, storedHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	access, err := s.codec.Issue(user.ID, user.Username, user.Roles, token.KindAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := s.codec.Issue(user.ID, user.Username, user.Roles, token.KindRefresh)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.LoginResult{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

// Refresh rotates a refresh token: the presented token must parse, be of the
// refresh kind, not be revoked, and its subject must still exist. The old
// token is revoked for the remainder of its lifetime and a brand-new pair is
// issued. All rejection causes collapse to ErrInvalidRefreshToken.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.codec.Parse(refreshToken)
	if err != nil || !claims.IsKind(token.KindRefresh) {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidRefreshToken
	}

	if revoked, err := s.revoked.IsRevoked(ctx, claims.ID); err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("error").Inc()
		return nil, err
	} else if revoked {
		metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.TokenRefreshesTotal.WithLabelValues("rejected").Inc()
			return nil, domain.ErrInvalidRefreshToken
		}
		metrics.TokenRefreshesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	// Close the replay window before handing out the replacement pair.
	if err := s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	access, err := s.codec.Issue(user.ID, user.Username, user.Roles, token.KindAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := s.codec.Issue(user.ID, user.Username, user.Roles, token.KindRefresh)
	if err != nil {
		return nil, err
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh, Username: user.Username}, nil
}

// Logout revokes the presented refresh token on a best-effort basis. The
// access token already held by the client stays valid until its short natural
// expiry; clearing the cookie is the transport layer's job.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) {
	if refreshToken == "" {
		return
	}
	claims, err := s.codec.Parse(refreshToken)
	if err != nil || !claims.IsKind(token.KindRefresh) {
		return
	}
	_ = s.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

// VerifyUser re-resolves a subject id, for east-west existence checks.
func (s *AuthService) VerifyUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}
