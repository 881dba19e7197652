package sqlite

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"gorm.io/gorm"
)

type jwtRepositoryImpl struct {
	db *gorm.DB
}

// NewJWTRepository creates a new refresh token store.
func NewJWTRepository(db *gorm.DB) auth.RefreshTokenRepository {
	return &jwtRepositoryImpl{db: db}
}

func hashToken(input string) string {
	hash := sha256.Sum256([]byte(input))
	return base64.StdEncoding.EncodeToString(hash[:])
}

func (j *jwtRepositoryImpl) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, sessionReq auth.SessionTrackingRequest) error {
	row := refreshTokenRow{
		UserID:    userID,
		TokenHash: hashToken(token),
		ExpiresAt: time.Unix(expiresAt, 0).UTC(),
		UserAgent: sessionReq.UserAgent,
		IPAddress: sessionReq.IPAddress,
	}
	return conn(ctx, j.db).Create(&row).Error
}

func (j *jwtRepositoryImpl) IsRefreshTokenRevoked(ctx context.Context, token string, now time.Time) (string, bool, error) {
	var row refreshTokenRow
	err := conn(ctx, j.db).
		Where("token_hash = ?", hashToken(token)).
		Order("expires_at DESC").
		First(&row).Error
	if err != nil {
		return "", false, err
	}

	if row.RevokedAt != nil || !row.ExpiresAt.After(now) {
		return row.UserID, true, nil
	}
	return row.UserID, false, nil
}

func (j *jwtRepositoryImpl) RevokeRefreshToken(ctx context.Context, token string) error {
	return conn(ctx, j.db).
		Model(&refreshTokenRow{}).
		Where("token_hash = ? AND revoked_at IS NULL", hashToken(token)).
		Update("revoked_at", time.Now().UTC()).Error
}
