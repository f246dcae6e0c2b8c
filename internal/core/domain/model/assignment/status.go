package assignment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an assignment.
//
// State transitions:
//
//	Broadcasted ──> Assigned ──> Completed
//	     │              │
//	     └──────────────┴──> Cancelled
//
// There are no backward transitions: once the status leaves Broadcasted no
// later accept can ever succeed. Status is a value object that validates
// state transitions and provides string representations for persistence and
// display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusBroadcasted means the offer is open to the frozen candidate list.
	StatusBroadcasted

	// StatusAssigned means exactly one courier has accepted and holds the job.
	StatusAssigned

	// StatusCompleted means the delivery was verified. Terminal.
	StatusCompleted

	// StatusCancelled means the dispatch cycle was abandoned. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "Unknown",
		StatusBroadcasted: "Broadcasted",
		StatusAssigned:    "Assigned",
		StatusCompleted:   "Completed",
		StatusCancelled:   "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusBroadcasted: "Broadcasted",
		StatusAssigned:    "Assigned",
		StatusCompleted:   "Completed",
		StatusCancelled:   "Cancelled",
	}
}

// StatusFromString parses a status name as stored or received over the wire.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", value),
	)
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to Assigned.
// The only valid source is Broadcasted.
func (s Status) Accept() (Status, error) {
	if s != StatusBroadcasted {
		return 0, fmt.Errorf("%w: %s is not acceptable", ErrInvalidState, s)
	}
	return StatusAssigned, nil
}

// Complete transitions the status to Completed.
// The only valid source is Assigned.
func (s Status) Complete() (Status, error) {
	if s != StatusAssigned {
		return 0, fmt.Errorf("%w: %s is not completable", ErrInvalidState, s)
	}
	return StatusCompleted, nil
}

// Cancel transitions the status to Cancelled.
// Valid sources are Broadcasted and Assigned.
func (s Status) Cancel() (Status, error) {
	if s != StatusBroadcasted && s != StatusAssigned {
		return 0, fmt.Errorf("%w: %s is not cancellable", ErrInvalidState, s)
	}
	return StatusCancelled, nil
}
