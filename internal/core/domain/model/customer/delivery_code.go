package customer

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Verification errors for the proof-of-delivery code.
var (
	// ErrInvalidCode is returned when the submitted code does not match the stored one.
	ErrInvalidCode = errors.New("delivery code is invalid")
	// ErrCodeExpired is returned when the stored code exists but its validity window has passed.
	ErrCodeExpired = errors.New("delivery code has expired")
	// ErrDeliveryCodeIsNotConstructed is returned when using an improperly initialized DeliveryCode.
	ErrDeliveryCodeIsNotConstructed = errors.New("DeliveryCode must be created via NewDeliveryCode constructor")
	// ErrCodeIsRequired is returned when creating a delivery code with an empty code value.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
)

// DeliveryCode is the short-lived numeric proof-of-delivery token handed to a
// customer. It is an immutable value object; issuing a new code replaces the
// old one wholesale.
//
// A verification failure (mismatch or expiry) never consumes the code, so the
// courier can retry within the validity window.
type DeliveryCode struct {
	code      string
	expiresAt time.Time
	guard     guard.ConstructorGuard
}

// NewDeliveryCode creates a delivery code valid until expiresAt.
func NewDeliveryCode(code string, expiresAt time.Time) (DeliveryCode, error) {
	if code == "" {
		return DeliveryCode{}, ErrCodeIsRequired
	}
	if expiresAt.IsZero() {
		return DeliveryCode{}, errs.NewValueIsRequiredError("expiresAt")
	}

	return DeliveryCode{
		code:      code,
		expiresAt: expiresAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the DeliveryCode was properly constructed.
func (d DeliveryCode) Validate() error {
	return d.guard.Validate(ErrDeliveryCodeIsNotConstructed)
}

// Code returns the numeric code value.
func (d DeliveryCode) Code() string {
	return d.code
}

// ExpiresAt returns the end of the validity window.
func (d DeliveryCode) ExpiresAt() time.Time {
	return d.expiresAt
}

// Matches checks a submitted code against this one at the given instant.
// Returns ErrInvalidCode on mismatch and ErrCodeExpired past the window.
// The expiry check runs only for a matching code, so a wrong guess never
// reveals whether a live code exists.
func (d DeliveryCode) Matches(submitted string, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.code != submitted {
		return ErrInvalidCode
	}
	if now.After(d.expiresAt) {
		return ErrCodeExpired
	}
	return nil
}
