package tokenstore

import (
	"time"

	"github.com/google/uuid"
)

// TokenDTO represents a bearer token row. The token value itself is the
// primary key; it is random enough that no separate surrogate id is
// needed.
type TokenDTO struct {
	Token     string    `gorm:"primaryKey;size:64"`
	AccountID uuid.UUID `gorm:"type:uuid;index;not null"`
	Role      string    `gorm:"size:16;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
}

// TableName returns the table name for GORM.
func (TokenDTO) TableName() string {
	return "tokens"
}
