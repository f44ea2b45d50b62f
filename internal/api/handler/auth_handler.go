package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/blogsite/blog-platform/internal/core/ports"
	"github.com/blogsite/blog-platform/internal/token"
)

const refreshCookieName = "refreshToken"

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,alphanumpass"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string   `json:"accessToken"`
	Username    string   `json:"username"`
	Roles       []string `json:"roles"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
}

// Register creates a new user account with the USER role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/v1.0/blogsite/user/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password, false)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, registerResponse{ID: user.ID, Username: user.Username, Email: user.Email})
}

// Login verifies credentials and returns an access token; the refresh token
// travels only in an HTTP-only cookie, never in the JSON body.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]any
// @Router       /api/v1.0/blogsite/user/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(refreshCookie(result.RefreshToken))
	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		Username:    result.User.Username,
		Roles:       result.User.Roles,
	})
}

// Refresh rotates the refresh token presented in the cookie and returns a
// fresh access token.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  refreshResponse
// @Failure      401  {object}  map[string]any
// @Router       /api/v1.0/blogsite/user/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Refresh token required")
	}

	pair, err := h.authService.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return err
	}

	c.SetCookie(refreshCookie(pair.RefreshToken))
	return c.JSON(http.StatusOK, refreshResponse{AccessToken: pair.AccessToken, Username: pair.Username})
}

// Logout revokes the presented refresh token and clears the cookie. The
// access token already issued stays valid until its natural expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1.0/blogsite/user/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(refreshCookieName); err == nil {
		h.authService.Logout(c.Request().Context(), cookie.Value)
	}

	c.SetCookie(clearedRefreshCookie())
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// VerifyUser confirms a subject still exists. East-west endpoint for other
// services; the gateway never exposes it publicly.
//
// @Summary      Verify a user id
// @Tags         auth
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  map[string]any
// @Router       /api/v1.0/blogsite/user/verify/{userId} [get]
func (h *AuthHandler) VerifyUser(c echo.Context) error {
	user, err := h.authService.VerifyUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{
		"id":       user.ID,
		"username": user.Username,
		"roles":    strings.Join(user.Roles, ","),
	})
}

func refreshCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(token.RefreshTokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// clearedRefreshCookie expires the cookie immediately (Max-Age=0).
func clearedRefreshCookie() *http.Cookie {
	return &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
