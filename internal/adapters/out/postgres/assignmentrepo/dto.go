// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment persistence. The live candidate list and the frozen broadcast
// audit are stored as Postgres text arrays so membership checks run in SQL.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AssignmentDTO represents the database structure for persisting assignment
// aggregates. Status is stored in its text form; the conditional updates in
// the repository filter on it directly.
type AssignmentDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	ShopOrderID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	ShopID         uuid.UUID      `gorm:"type:uuid;not null;index"`
	BroadcastedTo  pq.StringArray `gorm:"type:text[]"`
	BroadcastAudit pq.StringArray `gorm:"type:text[]"`
	Status         string         `gorm:"type:varchar(32);not null;index"`
	AcceptedBy     *uuid.UUID     `gorm:"type:uuid;index"`
	LastAcceptedBy *uuid.UUID     `gorm:"type:uuid"`
	BroadcastAt    time.Time      `gorm:"not null"`
	AcceptedAt     *time.Time
	CompletedAt    *time.Time
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	var acceptedBy, lastAcceptedBy *uuid.UUID
	if aggregate.AcceptedBy() != nil {
		raw := aggregate.AcceptedBy().Bytes()
		acceptedBy = &raw
	}
	if aggregate.LastAcceptedBy() != nil {
		raw := aggregate.LastAcceptedBy().Bytes()
		lastAcceptedBy = &raw
	}

	return AssignmentDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		ShopOrderID:    aggregate.ShopOrderID().Bytes(),
		ShopID:         aggregate.ShopID().Bytes(),
		BroadcastedTo:  toStringArray(aggregate.BroadcastedTo()),
		BroadcastAudit: toStringArray(aggregate.BroadcastAudit()),
		Status:         aggregate.Status().String(),
		AcceptedBy:     acceptedBy,
		LastAcceptedBy: lastAcceptedBy,
		BroadcastAt:    aggregate.BroadcastAt(),
		AcceptedAt:     aggregate.AcceptedAt(),
		CompletedAt:    aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	shopOrderID, err := kernel.UUIDFromBytes(dto.ShopOrderID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	broadcastedTo, err := fromStringArray(dto.BroadcastedTo)
	if err != nil {
		return nil, err
	}

	broadcastAudit, err := fromStringArray(dto.BroadcastAudit)
	if err != nil {
		return nil, err
	}

	status, err := assignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var acceptedBy, lastAcceptedBy *kernel.UUID
	if dto.AcceptedBy != nil {
		aID, aErr := kernel.UUIDFromBytes((*dto.AcceptedBy)[:])
		if aErr != nil {
			return nil, aErr
		}
		acceptedBy = &aID
	}
	if dto.LastAcceptedBy != nil {
		lID, lErr := kernel.UUIDFromBytes((*dto.LastAcceptedBy)[:])
		if lErr != nil {
			return nil, lErr
		}
		lastAcceptedBy = &lID
	}

	return assignment.RestoreAssignment(
		id,
		orderID,
		shopOrderID,
		shopID,
		broadcastedTo,
		broadcastAudit,
		status,
		acceptedBy,
		lastAcceptedBy,
		dto.BroadcastAt,
		dto.AcceptedAt,
		dto.CompletedAt,
	)
}

func toStringArray(ids []kernel.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func fromStringArray(values pq.StringArray) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(values))
	for _, value := range values {
		id, err := kernel.UUIDFromString(value)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
