package ports

import (
	"context"
	"time"
)

// RevocationList records refresh-token ids that may no longer be redeemed.
// Rotating a refresh token revokes the superseded one for the remainder of
// its natural lifetime; entries expire with the token they block.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
