package customer

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for customer operations.
var (
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrNameIsRequired is returned when attempting to create a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a customer without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
)

// Customer represents the person who placed an order. Besides identity and
// contact details it carries the ephemeral proof-of-delivery code: the code
// verifies the human receiving the goods, not the delivery job, so it lives
// here rather than on the Assignment.
type Customer struct {
	id     kernel.UUID
	name   string
	email  string
	mobile string

	// deliveryCode is the pending proof-of-delivery token, nil when none is outstanding
	deliveryCode *DeliveryCode

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with no outstanding delivery code.
func NewCustomer(id kernel.UUID, name, email, mobile string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	c.mobile = mobile
	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage, including
// any outstanding delivery code.
func RestoreCustomer(
	id kernel.UUID,
	name, email, mobile string,
	deliveryCode *DeliveryCode,
) (*Customer, error) {
	c, err := NewCustomer(id, name, email, mobile)
	if err != nil {
		return nil, err
	}

	if deliveryCode != nil {
		if err := deliveryCode.Validate(); err != nil {
			return nil, err
		}
		c.deliveryCode = deliveryCode
	}

	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's full name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c *Customer) Email() string {
	return c.email
}

// Mobile returns the customer's contact phone number.
func (c *Customer) Mobile() string {
	return c.mobile
}

// DeliveryCode returns the outstanding proof-of-delivery code, or nil.
func (c *Customer) DeliveryCode() *DeliveryCode {
	return c.deliveryCode
}

// IssueDeliveryCode attaches a new proof-of-delivery code, overwriting any
// prior unconsumed code. Requesting completion twice simply re-issues.
func (c *Customer) IssueDeliveryCode(code string, expiresAt time.Time) error {
	deliveryCode, err := NewDeliveryCode(code, expiresAt)
	if err != nil {
		return err
	}

	c.deliveryCode = &deliveryCode
	return nil
}

// VerifyDeliveryCode checks a submitted code at the given instant.
// Returns ErrInvalidCode when no code is outstanding or the code differs, and
// ErrCodeExpired past the validity window. Failures never consume the code.
func (c *Customer) VerifyDeliveryCode(submitted string, now time.Time) error {
	if c.deliveryCode == nil {
		return ErrInvalidCode
	}
	return c.deliveryCode.Matches(submitted, now)
}

// ClearDeliveryCode consumes the outstanding code after successful
// verification (or during expiry sweeps). Idempotent.
func (c *Customer) ClearDeliveryCode() {
	c.deliveryCode = nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}
