package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/blogsite/blog-platform/internal/core/domain"
)

func contextWithIdentity(e *echo.Echo, identity *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(identityContextKey, identity)
	}
	return c, rec
}

func TestRequireRoles_Allows(t *testing.T) {
	e := echo.New()
	c, rec := contextWithIdentity(e, &domain.Identity{ID: "1", Roles: []string{domain.RoleAdmin}})

	called := false
	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoles_ForbidsWrongRole(t *testing.T) {
	e := echo.New()
	c, _ := contextWithIdentity(e, &domain.Identity{ID: "1", Roles: []string{domain.RoleUser}})

	handler := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	err := handler(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRequireRoles_UnauthenticatedIs401(t *testing.T) {
	e := echo.New()
	c, _ := contextWithIdentity(e, nil)

	err := RequireRoles(domain.RoleAdmin)(func(c echo.Context) error { return nil })(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireAuthenticated(t *testing.T) {
	e := echo.New()

	c, _ := contextWithIdentity(e, &domain.Identity{ID: "1"})
	if err := RequireAuthenticated()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c); err != nil {
		t.Fatalf("authenticated request rejected: %v", err)
	}

	c, _ = contextWithIdentity(e, nil)
	err := RequireAuthenticated()(func(c echo.Context) error { return nil })(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
