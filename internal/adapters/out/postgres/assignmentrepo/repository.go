package assignmentrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
//
// Accept, Complete and Cancel are single conditional UPDATE statements.
// When two transactions race on the same offer, the row-level lock taken by
// the first UPDATE serializes them and the status filter rejects the loser,
// so exactly one courier wins without any application-level locking.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewUnavailableError("assignment add", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assignment by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, errs.NewUnavailableError("assignment get", err)
	}

	return toDomain(dto)
}

// Accept atomically makes courierID the sole holder of the assignment.
// The update applies only while the assignment is still Broadcasted and the
// courier is on the live offer list. Losing the conditional update is
// classified from the stored state: a courier who was never part of the
// broadcast gets ErrNotEligible, a courier who lost the race gets
// ErrAlreadyAssigned.
func (r *GormAssignmentRepository) Accept(
	ctx context.Context,
	id, courierID kernel.UUID,
	at time.Time,
) (*assignment.Assignment, error) {
	if err := errors.Join(id.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE assignments
		SET status = ?,
			accepted_by = ?,
			last_accepted_by = ?,
			accepted_at = ?,
			broadcasted_to = '{}'
		WHERE id = ?
			AND status = ?
			AND ? = ANY(broadcasted_to)
	`,
		assignment.StatusAssigned.String(),
		courierID.Bytes(),
		courierID.Bytes(),
		at,
		id.Bytes(),
		assignment.StatusBroadcasted.String(),
		courierID.String(),
	)
	if result.Error != nil {
		return nil, errs.NewUnavailableError("assignment accept", result.Error)
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if result.RowsAffected == 0 {
		if !current.WasOffered(courierID) {
			return nil, assignment.ErrNotEligible
		}
		if current.Status() == assignment.StatusAssigned {
			return nil, assignment.ErrAlreadyAssigned
		}
		return nil, assignment.ErrInvalidState
	}

	r.tracker.TrackAggregate(current.ID(), current)
	return current, nil
}

// Complete atomically closes an Assigned assignment and frees the holder.
func (r *GormAssignmentRepository) Complete(
	ctx context.Context,
	id kernel.UUID,
	at time.Time,
) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE assignments
		SET status = ?,
			accepted_by = NULL,
			completed_at = ?
		WHERE id = ? AND status = ?
	`,
		assignment.StatusCompleted.String(),
		at,
		id.Bytes(),
		assignment.StatusAssigned.String(),
	)
	if result.Error != nil {
		return nil, errs.NewUnavailableError("assignment complete", result.Error)
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if result.RowsAffected == 0 {
		return nil, assignment.ErrInvalidState
	}

	r.tracker.TrackAggregate(current.ID(), current)
	return current, nil
}

// Cancel abandons a Broadcasted or Assigned assignment.
func (r *GormAssignmentRepository) Cancel(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE assignments
		SET status = ?,
			accepted_by = NULL,
			broadcasted_to = '{}'
		WHERE id = ? AND status IN ?
	`,
		assignment.StatusCancelled.String(),
		id.Bytes(),
		[]string{assignment.StatusBroadcasted.String(), assignment.StatusAssigned.String()},
	)
	if result.Error != nil {
		return errs.NewUnavailableError("assignment cancel", result.Error)
	}

	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, id); err != nil {
			return err
		}
		return assignment.ErrInvalidState
	}

	return nil
}

// GetActiveByCourier retrieves the courier's assignment in one of the given
// statuses. At most one exists at a time.
func (r *GormAssignmentRepository) GetActiveByCourier(
	ctx context.Context,
	courierID kernel.UUID,
	statuses []assignment.Status,
) (*assignment.Assignment, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "accepted_by = ? AND status IN ?", courierID.Bytes(), statusStrings(statuses)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", courierID.String())
		}
		return nil, errs.NewUnavailableError("assignment get active by courier", err)
	}

	return toDomain(dto)
}

// GetBroadcastedTo retrieves the open offers whose live candidate list
// contains the courier, newest first.
func (r *GormAssignmentRepository) GetBroadcastedTo(
	ctx context.Context,
	courierID kernel.UUID,
) ([]*assignment.Assignment, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND ? = ANY(broadcasted_to)", assignment.StatusBroadcasted.String(), courierID.String()).
		Order("broadcast_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewUnavailableError("assignment get broadcasted to", err)
	}

	assignments := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// GetBusyCourierIDs returns the couriers holding an assignment in one of the
// given statuses.
func (r *GormAssignmentRepository) GetBusyCourierIDs(
	ctx context.Context,
	statuses []assignment.Status,
) ([]kernel.UUID, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Select("accepted_by").
		Where("accepted_by IS NOT NULL AND status IN ?", statusStrings(statuses)).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewUnavailableError("assignment get busy couriers", err)
	}

	ids := make([]kernel.UUID, 0, len(dtos))
	for _, dto := range dtos {
		if dto.AcceptedBy == nil {
			continue
		}
		id, err := kernel.UUIDFromBytes((*dto.AcceptedBy)[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func statusStrings(statuses []assignment.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, status.String())
	}
	return out
}
