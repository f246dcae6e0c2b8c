package courier

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a courier without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierIsDeactivated is returned when a deactivated courier reports a location.
	ErrCourierIsDeactivated = errors.New("courier is deactivated")
)

// Courier represents a delivery-capable actor who can be offered and accept
// delivery jobs. It is an aggregate root that manages courier identity,
// contact details and the last reported position.
//
// Couriers are never deleted, only deactivated. Availability for new offers is
// NOT stored here: it is derived at selection time from the set of active
// assignments (the busy predicate), so the aggregate carries no lock.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name and email
//   - Location is updated only through the courier's own reports (MoveTo)
//   - A deactivated courier can no longer report locations
//
// Example usage:
//
//	position, _ := kernel.NewGeoPoint(12.93, 77.61)
//	c, err := NewCourier(kernel.NewUUID(), "Asha", "asha@example.com", "+91900000001", position)
//	if err != nil {
//	    // handle construction error
//	}
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// email is the courier's contact email, used by the notification dispatcher
	email string
	// mobile is the courier's contact phone number
	mobile string
	// location is the last position the courier reported
	location kernel.GeoPoint
	// active is false once the courier has been deactivated
	active bool
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new active Courier with the specified parameters.
// This is the only way to create a valid Courier instance; all parameters are
// validated and errors are aggregated.
func NewCourier(id kernel.UUID, name, email, mobile string, location kernel.GeoPoint) (*Courier, error) {
	c := &Courier{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setLocation(location),
	); err != nil {
		return nil, err
	}

	c.mobile = mobile
	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage,
// including its active flag. The restored courier behaves identically to one
// created through normal domain operations.
func RestoreCourier(
	id kernel.UUID,
	name, email, mobile string,
	location kernel.GeoPoint,
	active bool,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setLocation(location),
	); err != nil {
		return nil, err
	}

	c.mobile = mobile
	c.active = active
	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's human-readable name.
func (c *Courier) Name() string {
	return c.name
}

// Email returns the courier's contact email.
func (c *Courier) Email() string {
	return c.email
}

// Mobile returns the courier's contact phone number.
func (c *Courier) Mobile() string {
	return c.mobile
}

// Location returns the last position the courier reported.
func (c *Courier) Location() kernel.GeoPoint {
	return c.location
}

// IsActive reports whether the courier can still take part in dispatch.
func (c *Courier) IsActive() bool {
	return c.active
}

// MoveTo records a location report from the courier's own device.
// Returns ErrCourierIsDeactivated for deactivated couriers; their stale
// positions must not re-enter the location index.
func (c *Courier) MoveTo(location kernel.GeoPoint) error {
	if !c.active {
		return ErrCourierIsDeactivated
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

// Deactivate removes the courier from dispatch without deleting the record.
// Deactivation is idempotent.
func (c *Courier) Deactivate() {
	c.active = false
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *Courier) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
