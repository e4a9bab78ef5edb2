package account

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"haulix/internal/core/domain/model/kernel"
	"haulix/internal/pkg/errs"
)

const (
	// VerificationCodeTTL bounds how long an emailed verification code
	// stays redeemable.
	VerificationCodeTTL = 10 * time.Minute

	// ResetCodeTTL bounds how long a password reset code stays redeemable.
	ResetCodeTTL = 15 * time.Minute
)

var (
	// ErrAccountIsNotConstructed is returned when an Account was created
	// with a default constructor instead of NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("account is not constructed, use NewAccount or RestoreAccount")

	// ErrCodeIsInvalid covers a missing, mismatched or expired one-time
	// code. The cases are deliberately not distinguished so callers leak
	// nothing about which part failed.
	ErrCodeIsInvalid = errs.NewValueIsInvalidError("code")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s()-]{10,}$`)
)

// Account is the aggregate behind registration, login and password reset.
// Emails are stored lowercased and act as the natural key alongside the id.
type Account struct {
	id           kernel.UUID
	email        string
	passwordHash string
	firstName    string
	lastName     string
	phone        string
	role         Role
	verified     bool
	code         *OneTimeCode
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewAccount creates an unverified account. The password must already be
// hashed; the aggregate never sees plaintext credentials.
func NewAccount(
	id kernel.UUID,
	email, passwordHash, firstName, lastName, phone string,
	role Role,
	now time.Time,
) (*Account, error) {
	a := &Account{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
		a.setName(firstName, lastName),
		a.setPhone(phone),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	a.createdAt = now
	a.updatedAt = now

	return a, nil
}

// RestoreAccount reconstructs an Account from persistence.
func RestoreAccount(
	id kernel.UUID,
	email, passwordHash, firstName, lastName, phone string,
	role Role,
	verified bool,
	code *OneTimeCode,
	createdAt, updatedAt time.Time,
) (*Account, error) {
	a := &Account{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
		a.setName(firstName, lastName),
		a.setPhone(phone),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	if code != nil {
		if err := code.Validate(); err != nil {
			return nil, err
		}
		c := *code
		a.code = &c
	}
	a.verified = verified
	a.createdAt = createdAt
	a.updatedAt = updatedAt

	return a, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account identity.
func (a *Account) ID() kernel.UUID { return a.id }

// Email returns the lowercased email address.
func (a *Account) Email() string { return a.email }

// PasswordHash returns the stored credential hash.
func (a *Account) PasswordHash() string { return a.passwordHash }

// FirstName returns the account holder's first name.
func (a *Account) FirstName() string { return a.firstName }

// LastName returns the account holder's last name.
func (a *Account) LastName() string { return a.lastName }

// FullName returns the display name used in notifications.
func (a *Account) FullName() string { return a.firstName + " " + a.lastName }

// Phone returns the contact phone number.
func (a *Account) Phone() string { return a.phone }

// Role returns the account role.
func (a *Account) Role() Role { return a.role }

// IsVerified reports whether the registration email was confirmed.
func (a *Account) IsVerified() bool { return a.verified }

// Code returns the pending one-time code, or nil when none is pending.
func (a *Account) Code() *OneTimeCode {
	if a.code == nil {
		return nil
	}
	c := *a.code
	return &c
}

// CreatedAt returns the registration time.
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns the last modification time.
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

// IssueVerificationCode arms a fresh verification code, replacing any
// pending code. Verified accounts have nothing left to verify.
func (a *Account) IssueVerificationCode(value string, now time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.verified {
		return errs.NewConflictError("account is already verified")
	}

	code, err := NewOneTimeCode(value, PurposeVerification, now.Add(VerificationCodeTTL))
	if err != nil {
		return err
	}
	a.code = &code
	a.updatedAt = now
	return nil
}

// Verify redeems a verification code, marking the account verified and
// clearing the code so it cannot be replayed.
func (a *Account) Verify(value string, now time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.verified {
		return errs.NewConflictError("account is already verified")
	}
	if a.code == nil || !a.code.Matches(value, PurposeVerification, now) {
		return ErrCodeIsInvalid
	}

	a.verified = true
	a.code = nil
	a.updatedAt = now
	return nil
}

// IssueResetCode arms a fresh password reset code. Only verified accounts
// can reset a password; unverified ones re-register instead.
func (a *Account) IssueResetCode(value string, now time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.verified {
		return errs.NewUnauthorizedError("account is not verified")
	}

	code, err := NewOneTimeCode(value, PurposeReset, now.Add(ResetCodeTTL))
	if err != nil {
		return err
	}
	a.code = &code
	a.updatedAt = now
	return nil
}

// ResetPassword redeems a reset code and installs the new password hash.
func (a *Account) ResetPassword(value, newPasswordHash string, now time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.code == nil || !a.code.Matches(value, PurposeReset, now) {
		return ErrCodeIsInvalid
	}
	if err := a.setPasswordHash(newPasswordHash); err != nil {
		return err
	}

	a.code = nil
	a.updatedAt = now
	return nil
}

// CheckResetCode reports whether the presented value could redeem the
// pending reset code right now. It does not consume the code.
func (a *Account) CheckResetCode(value string, now time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.code == nil || !a.code.Matches(value, PurposeReset, now) {
		return ErrCodeIsInvalid
	}
	return nil
}

// ClearCode drops any pending one-time code without redeeming it.
func (a *Account) ClearCode(now time.Time) {
	a.code = nil
	a.updatedAt = now
}

// HasExpiredCode reports whether a pending code has passed its expiry.
func (a *Account) HasExpiredCode(now time.Time) bool {
	return a.code != nil && a.code.IsExpired(now)
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidError("email")
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	a.firstName = firstName
	a.lastName = lastName
	return nil
}

func (a *Account) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidError("phone")
	}
	a.phone = phone
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
