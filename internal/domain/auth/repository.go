package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository stores hashes of issued refresh tokens so they can be revoked.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq SessionTrackingRequest) error
	// IsRefreshTokenRevoked returns the owning user and whether the token is revoked or expired.
	IsRefreshTokenRevoked(ctx context.Context, token string, now time.Time) (userID string, revoked bool, err error)
	RevokeRefreshToken(ctx context.Context, token string) error
}
