package account

import (
	"time"

	"haulix/internal/pkg/errs"
)

// CodePurpose says what a one-time code unlocks.
type CodePurpose int

const (
	PurposeUnknown CodePurpose = iota
	// PurposeVerification codes confirm ownership of the registration email.
	PurposeVerification
	// PurposeReset codes authorize a password reset.
	PurposeReset
)

func getCodePurposeStrings() map[CodePurpose]string {
	return map[CodePurpose]string{
		PurposeUnknown:      "unknown",
		PurposeVerification: "verification",
		PurposeReset:        "reset",
	}
}

func getValidCodePurposeStrings() map[CodePurpose]string {
	return map[CodePurpose]string{
		PurposeVerification: "verification",
		PurposeReset:        "reset",
	}
}

// CodePurposeFromString parses the wire representation of a code purpose.
func CodePurposeFromString(s string) (CodePurpose, error) {
	for purpose, str := range getValidCodePurposeStrings() {
		if s == str {
			return purpose, nil
		}
	}
	return PurposeUnknown, errs.NewValueIsInvalidError("codePurpose")
}

// Validate checks that the purpose is a member of the valid set.
func (p CodePurpose) Validate() error {
	if _, ok := getValidCodePurposeStrings()[p]; !ok {
		return errs.NewValueIsInvalidError("codePurpose")
	}
	return nil
}

// String returns the wire representation of the purpose.
func (p CodePurpose) String() string {
	if s, ok := getCodePurposeStrings()[p]; ok {
		return s
	}
	return getCodePurposeStrings()[PurposeUnknown]
}

// OneTimeCode is a short-lived numeric code bound to a single purpose.
// An account holds at most one pending code at a time; issuing a new one
// replaces whatever was pending before.
type OneTimeCode struct {
	value     string
	purpose   CodePurpose
	expiresAt time.Time

	isConstructed bool
}

// NewOneTimeCode creates a pending code expiring at the given instant.
func NewOneTimeCode(value string, purpose CodePurpose, expiresAt time.Time) (OneTimeCode, error) {
	if value == "" {
		return OneTimeCode{}, errs.NewValueIsRequiredError("code")
	}
	if err := purpose.Validate(); err != nil {
		return OneTimeCode{}, err
	}
	if expiresAt.IsZero() {
		return OneTimeCode{}, errs.NewValueIsRequiredError("expiresAt")
	}
	return OneTimeCode{
		value:         value,
		purpose:       purpose,
		expiresAt:     expiresAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the code was built through the constructor.
func (c OneTimeCode) Validate() error {
	if !c.isConstructed {
		return errs.NewValueIsRequiredError("oneTimeCode")
	}
	return nil
}

// Value returns the code digits.
func (c OneTimeCode) Value() string { return c.value }

// Purpose returns what the code unlocks.
func (c OneTimeCode) Purpose() CodePurpose { return c.purpose }

// ExpiresAt returns the expiry instant.
func (c OneTimeCode) ExpiresAt() time.Time { return c.expiresAt }

// IsExpired reports whether the code is no longer usable at the given instant.
func (c OneTimeCode) IsExpired(now time.Time) bool {
	return now.After(c.expiresAt)
}

// Matches reports whether the presented value and purpose can redeem this
// code at the given instant.
func (c OneTimeCode) Matches(value string, purpose CodePurpose, now time.Time) bool {
	return c.isConstructed && c.purpose == purpose && c.value == value && !c.IsExpired(now)
}
