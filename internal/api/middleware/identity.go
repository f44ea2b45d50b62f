package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/blogsite/blog-platform/internal/core/domain"
)

// Identity header names set by the gateway after validating the access token.
// They are the sole trust signal inside the platform and must never be
// honored on traffic that did not pass through the gateway.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserName  = "X-User-Name"
	HeaderUserRoles = "X-User-Roles"
)

const identityContextKey = "caller_identity"

// TrustedIdentity reads the identity headers forwarded by the gateway and,
// when X-User-Id is present, stores the caller identity on the request
// context. No cryptographic verification happens here: the gateway already
// validated the token, and network segmentation keeps clients from reaching
// this service directly. Requests without the header proceed anonymous.
func TrustedIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header
			if userID := h.Get(HeaderUserID); userID != "" {
				c.Set(identityContextKey, &domain.Identity{
					ID:       userID,
					Username: h.Get(HeaderUserName),
					Roles:    domain.ParseRolesHeader(h.Get(HeaderUserRoles)),
				})
			}
			return next(c)
		}
	}
}

// IdentityFromContext retrieves the caller identity established by
// TrustedIdentity. ok is false for anonymous requests.
func IdentityFromContext(c echo.Context) (*domain.Identity, bool) {
	id, ok := c.Get(identityContextKey).(*domain.Identity)
	return id, ok
}
