package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/blogsite/blog-platform/internal/core/ports"
)

const revokedKeyPrefix = "revoked:"

// RevocationList blocks rotated or logged-out refresh tokens by their id.
// Each entry carries a TTL matching the remaining lifetime of the token it
// blocks, so the list never outgrows the set of still-valid tokens.
type RevocationList struct {
	client *redis.Client
}

var _ ports.RevocationList = (*RevocationList)(nil)

func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

func (r *RevocationList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// The token is already past its natural expiry; the verifier
		// rejects it on the exp claim alone.
		return nil
	}
	if err := r.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (r *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}
