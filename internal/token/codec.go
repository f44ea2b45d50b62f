package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/blogsite/blog-platform/internal/core/domain"
)

// Token kinds. Every consumer must check the kind before trusting a token: an
// access token never satisfies a refresh gate and vice versa.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims is the signed payload of every token issued by the platform.
type Claims struct {
	Username string `json:"username"`
	Roles    string `json:"roles"`
	Kind     string `json:"type"`
	jwt.RegisteredClaims
}

// IsKind reports whether the token was issued for the expected purpose.
func (c *Claims) IsKind(expected string) bool {
	return c.Kind == expected
}

// RoleList splits the comma-joined role claim.
func (c *Claims) RoleList() []string {
	return domain.ParseRolesHeader(c.Roles)
}

// Codec issues and parses HS256-signed tokens with the process-wide key.
type Codec struct {
	key []byte
}

func NewCodec(key []byte) *Codec {
	return &Codec{key: key}
}

// Issue signs a token of the given kind for the subject. TTL is fixed per
// kind: 15 minutes for access, 7 days for refresh; any other kind is an
// error. Each token carries a fresh jti so that refresh tokens can be
// revoked individually.
func (cd *Codec) Issue(subjectID, username string, roles []string, kind string) (string, error) {
	var ttl time.Duration
	switch kind {
	case KindAccess:
		ttl = AccessTokenTTL
	case KindRefresh:
		ttl = RefreshTokenTTL
	default:
		return "", fmt.Errorf("token: unknown token kind %q", kind)
	}

	now := time.Now()

	claims := &Claims{
		Username: username,
		Roles:    strings.Join(roles, ","),
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cd.key)
}

// Parse verifies the signature and expiry and returns the claims. Every
// failure mode collapses to domain.ErrInvalidToken so callers cannot be used
// as an oracle for which check rejected the token.
func (cd *Codec) Parse(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return cd.key, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Kind == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
