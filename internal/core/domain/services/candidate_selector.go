package services

import (
	"context"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Search radii for candidate discovery. The escalated radius is used exactly
// once, only when the initial radius finds nobody.
const (
	DefaultInitialRadiusMeters   = 5000.0
	DefaultEscalatedRadiusMeters = 20000.0
)

// BusyStatuses returns the assignment statuses that make a courier busy for
// dispatch purposes. Only an accepted, in-flight job blocks a courier; being
// merely offered other work does not.
func BusyStatuses() []assignment.Status {
	return []assignment.Status{assignment.StatusAssigned}
}

// CourierLocator finds delivery-capable couriers near a point,
// proximity-first.
type CourierLocator interface {
	Search(ctx context.Context, center kernel.GeoPoint, radiusMeters float64) ([]kernel.UUID, error)
}

// BusyCourierSource reports couriers currently holding an assignment in one
// of the given statuses.
type BusyCourierSource interface {
	GetBusyCourierIDs(ctx context.Context, statuses []assignment.Status) ([]kernel.UUID, error)
}

// FilterAvailable removes busy couriers from the candidate list, preserving
// order. Pure function over its inputs.
func FilterAvailable(candidates, busy []kernel.UUID) []kernel.UUID {
	if len(busy) == 0 {
		return candidates
	}

	busySet := make(map[kernel.UUID]struct{}, len(busy))
	for _, id := range busy {
		busySet[id] = struct{}{}
	}

	available := make([]kernel.UUID, 0, len(candidates))
	for _, id := range candidates {
		if _, ok := busySet[id]; !ok {
			available = append(available, id)
		}
	}
	return available
}

// CandidateSelector is a domain service that discovers which couriers a
// dispatch cycle should be broadcast to.
//
// Selection algorithm:
//   - GEO search around the delivery destination within the initial radius
//   - escalate once to the wider radius when the initial search is empty
//   - drop couriers holding an in-flight assignment
//
// An empty result is a valid outcome, not an error: the dispatch cycle is
// still created and nobody can win it.
type CandidateSelector struct {
	locator               CourierLocator
	busySource            BusyCourierSource
	initialRadiusMeters   float64
	escalatedRadiusMeters float64
}

// NewCandidateSelector creates a CandidateSelector.
// Radii must be positive and the escalated radius must not be smaller than
// the initial one.
func NewCandidateSelector(
	locator CourierLocator,
	busySource BusyCourierSource,
	initialRadiusMeters, escalatedRadiusMeters float64,
) (CandidateSelector, error) {
	if locator == nil {
		return CandidateSelector{}, errs.NewValueIsRequiredError("locator")
	}
	if busySource == nil {
		return CandidateSelector{}, errs.NewValueIsRequiredError("busySource")
	}
	if initialRadiusMeters <= 0 {
		return CandidateSelector{}, errs.NewValueIsOutOfRangeError(
			"initialRadiusMeters", initialRadiusMeters, 0, escalatedRadiusMeters)
	}
	if escalatedRadiusMeters < initialRadiusMeters {
		return CandidateSelector{}, errs.NewValueIsOutOfRangeError(
			"escalatedRadiusMeters", escalatedRadiusMeters, initialRadiusMeters, escalatedRadiusMeters)
	}

	return CandidateSelector{
		locator:               locator,
		busySource:            busySource,
		initialRadiusMeters:   initialRadiusMeters,
		escalatedRadiusMeters: escalatedRadiusMeters,
	}, nil
}

// SelectCandidates returns the available couriers near the destination,
// proximity-first. The returned list may be empty.
func (s CandidateSelector) SelectCandidates(ctx context.Context, destination kernel.GeoPoint) ([]kernel.UUID, error) {
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	nearby, err := s.locator.Search(ctx, destination, s.initialRadiusMeters)
	if err != nil {
		return nil, err
	}

	if len(nearby) == 0 {
		nearby, err = s.locator.Search(ctx, destination, s.escalatedRadiusMeters)
		if err != nil {
			return nil, err
		}
	}

	if len(nearby) == 0 {
		return nil, nil
	}

	busy, err := s.busySource.GetBusyCourierIDs(ctx, BusyStatuses())
	if err != nil {
		return nil, err
	}

	return FilterAvailable(nearby, busy), nil
}
