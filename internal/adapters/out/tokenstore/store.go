// Package tokenstore implements the TokenIssuer port with random opaque
// tokens persisted in PostgreSQL. Keeping tokens server-side lets a
// deployment revoke a session by deleting its row.
package tokenstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"haulix/internal/core/domain/model/account"
	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/pkg/errs"

	"gorm.io/gorm"
)

const tokenBytes = 32

// GormTokenStore issues and resolves bearer tokens backed by a tokens
// table.
type GormTokenStore struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewGormTokenStore creates a token store. ttl bounds how long an issued
// token stays valid.
func NewGormTokenStore(db *gorm.DB, ttl time.Duration) *GormTokenStore {
	return &GormTokenStore{db: db, ttl: ttl}
}

// Issue creates and persists a fresh token for the account.
func (s *GormTokenStore) Issue(ctx context.Context, accountID kernel.UUID, role account.Role) (string, error) {
	if err := accountID.Validate(); err != nil {
		return "", err
	}
	if err := role.Validate(); err != nil {
		return "", err
	}

	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(raw)

	now := time.Now().UTC()
	dto := TokenDTO{
		Token:     token,
		AccountID: accountID.Bytes(),
		Role:      role.String(),
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return "", fmt.Errorf("failed to store token: %w", err)
	}
	return token, nil
}

// Resolve maps a presented token back to its principal. Expired rows are
// removed on sight.
func (s *GormTokenStore) Resolve(ctx context.Context, token string) (kernel.UUID, account.Role, error) {
	if token == "" {
		return kernel.UUID{}, account.RoleUnknown, errs.NewUnauthorizedError("missing token")
	}

	var dto TokenDTO
	if err := s.db.WithContext(ctx).First(&dto, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, account.RoleUnknown, errs.NewUnauthorizedError("invalid token")
		}
		return kernel.UUID{}, account.RoleUnknown, fmt.Errorf("failed to resolve token: %w", err)
	}

	if time.Now().UTC().After(dto.ExpiresAt) {
		s.db.WithContext(ctx).Delete(&TokenDTO{}, "token = ?", token)
		return kernel.UUID{}, account.RoleUnknown, errs.NewUnauthorizedError("expired token")
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return kernel.UUID{}, account.RoleUnknown, err
	}
	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return kernel.UUID{}, account.RoleUnknown, err
	}

	return accountID, role, nil
}

// PurgeExpired deletes every token past its expiry and reports how many
// rows were removed.
func (s *GormTokenStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&TokenDTO{}, "expires_at < ?", now)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
