package service

import (
	"context"
	"testing"
	"time"

	"github.com/blogsite/blog-platform/internal/core/domain"
	"github.com/blogsite/blog-platform/internal/token"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

type stubUserRepo struct {
	byUsername map[string]*domain.User
	nextID     int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byUsername: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.byUsername {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	if _, exists := r.byUsername[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = created.Username + "-id"
	r.byUsername[created.Username] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.byUsername[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.byUsername {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.byUsername[username]
	return ok, nil
}

type stubRevocations struct {
	revoked map[string]time.Time
}

func newStubRevocations() *stubRevocations {
	return &stubRevocations{revoked: make(map[string]time.Time)}
}

func (r *stubRevocations) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	r.revoked[tokenID] = expiresAt
	return nil
}

func (r *stubRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.revoked[tokenID]
	return ok, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *stubUserRepo, *stubRevocations) {
	t.Helper()
	repo := newStubUserRepo()
	revoked := newStubRevocations()
	// Minimal cost keeps the suite fast; production cost comes from config.
	return NewAuthService(repo, revoked, token.NewCodec(testKey), 4), repo, revoked
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "admin", "admin@blogsite.com", "Admin1234", true)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "Admin1234" {
		t.Fatalf("password stored in the clear")
	}
	if len(user.Roles) != 1 || user.Roles[0] != domain.RoleAdmin {
		t.Fatalf("unexpected roles: %v", user.Roles)
	}

	result, err := svc.Login(ctx, "admin", "Admin1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatalf("expected a full token pair")
	}

	claims, err := token.NewCodec(testKey).Parse(result.AccessToken)
	if err != nil {
		t.Fatalf("parse issued access token: %v", err)
	}
	if !claims.IsKind(token.KindAccess) || claims.Username != "admin" || claims.Roles != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Register_TrimsUsername(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	user, err := svc.Register(context.Background(), "  alice  ", "alice@blogsite.com", "Pass1234", false)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("username = %q, want alice", user.Username)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "alice@blogsite.com", "Pass1234", false); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, "alice2", "alice@blogsite.com", "Pass1234", false); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.byUsername) != 1 {
		t.Fatalf("store grew on rejected registration: %d users", len(repo.byUsername))
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "bob", "bob@blogsite.com", "Pass1234", false); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, "bob", "bob2@blogsite.com", "Pass1234", false); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "carol", "carol@blogsite.com", "Right123", false); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, unknownErr := svc.Login(ctx, "nobody", "Right123")
	_, wrongErr := svc.Login(ctx, "carol", "Wrong123")

	if unknownErr != domain.ErrInvalidCredentials {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if wrongErr != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
}

func TestAuthService_Refresh_RotatesAndRevokes(t *testing.T) {
	svc, _, revoked := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "dave", "dave@blogsite.com", "Pass1234", false); err != nil {
		t.Fatalf("register: %v", err)
	}
	result, err := svc.Login(ctx, "dave", "Pass1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	pair, err := svc.Refresh(ctx, result.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected a new token pair")
	}
	if pair.RefreshToken == result.RefreshToken {
		t.Fatalf("refresh token was not rotated")
	}

	oldClaims, _ := token.NewCodec(testKey).Parse(result.RefreshToken)
	if ok, _ := revoked.IsRevoked(ctx, oldClaims.ID); !ok {
		t.Fatalf("superseded refresh token not revoked")
	}

	// Replaying the superseded token must now fail.
	if _, err := svc.Refresh(ctx, result.RefreshToken); err != domain.ErrInvalidRefreshToken {
		t.Fatalf("replay: expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "erin", "erin@blogsite.com", "Pass1234", false); err != nil {
		t.Fatalf("register: %v", err)
	}
	result, err := svc.Login(ctx, "erin", "Pass1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := svc.Refresh(ctx, result.AccessToken); err != domain.ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken for access token, got %v", err)
	}
}

func TestAuthService_Refresh_RejectsGarbage(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	if _, err := svc.Refresh(context.Background(), "not-a-token"); err != domain.ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthService_Refresh_DeletedSubjectCannotRefresh(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "frank", "frank@blogsite.com", "Pass1234", false); err != nil {
		t.Fatalf("register: %v", err)
	}
	result, err := svc.Login(ctx, "frank", "Pass1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	delete(repo.byUsername, "frank")

	if _, err := svc.Refresh(ctx, result.RefreshToken); err != domain.ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken for deleted subject, got %v", err)
	}
}

func TestAuthService_Logout_RevokesRefreshToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "grace", "grace@blogsite.com", "Pass1234", false); err != nil {
		t.Fatalf("register: %v", err)
	}
	result, err := svc.Login(ctx, "grace", "Pass1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	svc.Logout(ctx, result.RefreshToken)

	if _, err := svc.Refresh(ctx, result.RefreshToken); err != domain.ErrInvalidRefreshToken {
		t.Fatalf("refresh after logout: expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuthService_Logout_IgnoresGarbage(t *testing.T) {
	svc, _, revoked := newTestAuthService(t)
	svc.Logout(context.Background(), "garbage")
	if len(revoked.revoked) != 0 {
		t.Fatalf("garbage logout added revocations")
	}
}
