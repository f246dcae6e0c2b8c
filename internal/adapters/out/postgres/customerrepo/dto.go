// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence, including the outstanding delivery code.
package customerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer
// aggregates. The delivery code columns are both NULL when no code is
// outstanding; the sweep job clears them in bulk once the window passes.
type CustomerDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name                  string     `gorm:"type:varchar(255);not null"`
	Email                 string     `gorm:"type:varchar(255);not null"`
	Mobile                string     `gorm:"type:varchar(32)"`
	DeliveryCode          *string    `gorm:"type:varchar(8)"`
	DeliveryCodeExpiresAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Email:  aggregate.Email(),
		Mobile: aggregate.Mobile(),
	}

	if dc := aggregate.DeliveryCode(); dc != nil {
		code := dc.Code()
		expiresAt := dc.ExpiresAt()
		dto.DeliveryCode = &code
		dto.DeliveryCodeExpiresAt = &expiresAt
	}

	return dto
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var deliveryCode *customer.DeliveryCode
	if dto.DeliveryCode != nil && dto.DeliveryCodeExpiresAt != nil {
		dc, dcErr := customer.NewDeliveryCode(*dto.DeliveryCode, *dto.DeliveryCodeExpiresAt)
		if dcErr != nil {
			return nil, dcErr
		}
		deliveryCode = &dc
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Mobile, deliveryCode)
}
