package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/blogsite/blog-platform/internal/core/domain"
)

func runTrustedIdentity(t *testing.T, headers map[string]string) (*domain.Identity, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var identity *domain.Identity
	var ok bool
	handler := TrustedIdentity()(func(c echo.Context) error {
		identity, ok = IdentityFromContext(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return identity, ok
}

func TestTrustedIdentity_BuildsIdentityFromHeaders(t *testing.T) {
	identity, ok := runTrustedIdentity(t, map[string]string{
		HeaderUserID:    "42",
		HeaderUserName:  "alice",
		HeaderUserRoles: "USER,ADMIN",
	})
	if !ok {
		t.Fatalf("expected authenticated identity")
	}
	if identity.ID != "42" || identity.Username != "alice" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if len(identity.Roles) != 2 || identity.Roles[0] != "USER" || identity.Roles[1] != "ADMIN" {
		t.Fatalf("unexpected roles: %v", identity.Roles)
	}
}

func TestTrustedIdentity_ParsesMessyRoleList(t *testing.T) {
	identity, ok := runTrustedIdentity(t, map[string]string{
		HeaderUserID:    "42",
		HeaderUserRoles: " USER , ,ADMIN,, ",
	})
	if !ok {
		t.Fatalf("expected authenticated identity")
	}
	if len(identity.Roles) != 2 || identity.Roles[0] != "USER" || identity.Roles[1] != "ADMIN" {
		t.Fatalf("roles not trimmed/filtered: %v", identity.Roles)
	}
}

func TestTrustedIdentity_AbsentHeaderMeansAnonymous(t *testing.T) {
	if _, ok := runTrustedIdentity(t, nil); ok {
		t.Fatalf("expected anonymous request")
	}
}

func TestTrustedIdentity_EmptyUserIDMeansAnonymous(t *testing.T) {
	if _, ok := runTrustedIdentity(t, map[string]string{HeaderUserID: "", HeaderUserRoles: "ADMIN"}); ok {
		t.Fatalf("expected anonymous request for empty user id")
	}
}

func TestTrustedIdentity_NoCryptoNeeded(t *testing.T) {
	// The filter trusts the headers as-is: whatever the gateway forwarded is
	// the request identity, with no signature to verify.
	identity, ok := runTrustedIdentity(t, map[string]string{HeaderUserID: "any-opaque-id"})
	if !ok || identity.ID != "any-opaque-id" {
		t.Fatalf("identity not established from bare header: %+v", identity)
	}
}
