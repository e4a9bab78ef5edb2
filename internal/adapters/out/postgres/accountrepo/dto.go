// Package accountrepo provides data transfer objects and mapping
// functions for account persistence. The optional one-time code is
// flattened into three nullable columns that are cleared together.
package accountrepo

import (
	"time"

	"haulix/internal/core/domain/model/account"
	"haulix/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account
// aggregates. The email carries a unique index and is always lowercased
// by the aggregate before it gets here.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;size:320"`
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Role         string
	Verified     bool `gorm:"index"`

	CodeValue     *string
	CodePurpose   *string
	CodeExpiresAt *time.Time `gorm:"index"`

	CreatedAt time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	dto := AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		Phone:        aggregate.Phone(),
		Role:         aggregate.Role().String(),
		Verified:     aggregate.IsVerified(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}

	if code := aggregate.Code(); code != nil {
		value := code.Value()
		purpose := code.Purpose().String()
		expiresAt := code.ExpiresAt()
		dto.CodeValue = &value
		dto.CodePurpose = &purpose
		dto.CodeExpiresAt = &expiresAt
	}

	return dto
}

// toDomain converts a database DTO back into an account aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	var code *account.OneTimeCode
	if dto.CodeValue != nil && dto.CodePurpose != nil && dto.CodeExpiresAt != nil {
		purpose, purposeErr := account.CodePurposeFromString(*dto.CodePurpose)
		if purposeErr != nil {
			return nil, purposeErr
		}
		c, codeErr := account.NewOneTimeCode(*dto.CodeValue, purpose, *dto.CodeExpiresAt)
		if codeErr != nil {
			return nil, codeErr
		}
		code = &c
	}

	return account.RestoreAccount(
		id, dto.Email, dto.PasswordHash, dto.FirstName, dto.LastName, dto.Phone,
		role, dto.Verified, code, dto.CreatedAt, dto.UpdatedAt,
	)
}
