package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/blogsite/blog-platform/internal/core/domain"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestCodec_IssueParseRoundTrip(t *testing.T) {
	cd := NewCodec(testKey)

	signed, err := cd.Issue("42", "alice", []string{"USER", "ADMIN"}, KindAccess)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := cd.Parse(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "42" {
		t.Fatalf("subject = %q, want 42", claims.Subject)
	}
	if claims.Username != "alice" {
		t.Fatalf("username = %q, want alice", claims.Username)
	}
	if !claims.IsKind(KindAccess) {
		t.Fatalf("kind = %q, want access", claims.Kind)
	}
	roles := claims.RoleList()
	if len(roles) != 2 || roles[0] != "USER" || roles[1] != "ADMIN" {
		t.Fatalf("unexpected roles: %v", roles)
	}
	if claims.ID == "" {
		t.Fatalf("expected non-empty jti")
	}
	if !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Fatalf("expiry %v not after issued-at %v", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestCodec_RefreshTTLLongerThanAccess(t *testing.T) {
	cd := NewCodec(testKey)

	access, err := cd.Issue("1", "bob", []string{"USER"}, KindAccess)
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	refresh, err := cd.Issue("1", "bob", []string{"USER"}, KindRefresh)
	if err != nil {
		t.Fatalf("issue refresh: %v", err)
	}

	ac, err := cd.Parse(access)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	rc, err := cd.Parse(refresh)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
	if !rc.ExpiresAt.After(ac.ExpiresAt.Time) {
		t.Fatalf("refresh expiry %v not after access expiry %v", rc.ExpiresAt, ac.ExpiresAt)
	}
}

func TestCodec_ExpiredTokenFailsParse(t *testing.T) {
	cd := NewCodec(testKey)

	// Signed with the right key but already expired.
	claims := &Claims{
		Username: "alice",
		Roles:    "USER",
		Kind:     KindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := cd.Parse(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_WrongKeyFailsParse(t *testing.T) {
	signed, err := NewCodec([]byte("another-key-entirely-0123456789x")).Issue("42", "alice", []string{"USER"}, KindAccess)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewCodec(testKey).Parse(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_GarbageFailsParse(t *testing.T) {
	cd := NewCodec(testKey)
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := cd.Parse(bad); err != domain.ErrInvalidToken {
			t.Fatalf("Parse(%q): expected ErrInvalidToken, got %v", bad, err)
		}
	}
}

func TestClaims_KindIsolation(t *testing.T) {
	cd := NewCodec(testKey)

	access, _ := cd.Issue("1", "alice", []string{"USER"}, KindAccess)
	refresh, _ := cd.Issue("1", "alice", []string{"USER"}, KindRefresh)

	ac, err := cd.Parse(access)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	rc, err := cd.Parse(refresh)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}

	if ac.IsKind(KindRefresh) {
		t.Fatalf("access token satisfied refresh check")
	}
	if rc.IsKind(KindAccess) {
		t.Fatalf("refresh token satisfied access check")
	}
}

func TestCodec_UnknownKindFailsIssue(t *testing.T) {
	cd := NewCodec(testKey)

	for _, bad := range []string{"", "session", "Access"} {
		if signed, err := cd.Issue("1", "alice", []string{"USER"}, bad); err == nil {
			t.Fatalf("Issue(kind=%q) succeeded with token %q, want error", bad, signed)
		}
	}
}

func TestCodec_UniqueTokenIDs(t *testing.T) {
	cd := NewCodec(testKey)

	a, _ := cd.Issue("1", "alice", []string{"USER"}, KindRefresh)
	b, _ := cd.Issue("1", "alice", []string{"USER"}, KindRefresh)

	ca, _ := cd.Parse(a)
	cb, _ := cd.Parse(b)
	if ca.ID == cb.ID {
		t.Fatalf("two issued tokens share jti %q", ca.ID)
	}
}
