package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrInvalidStageTransition is returned when a requested stage change is not
// an allowed edge of the fulfillment state machine.
var ErrInvalidStageTransition = errors.New("stage transition is not allowed")

// Stage represents the fulfillment state of a single shop order.
//
// State transitions:
//
//	Pending ──> Preparing ──> OutForDelivery ──> Delivered
//	   │            │               │
//	   └────────────┴───────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Stage is a value object that
// validates transitions and provides string representations for persistence
// and display.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	StageUnknown Stage = iota

	// StagePending is the initial stage after the order is placed.
	StagePending

	// StagePreparing indicates the merchant has started preparing the order.
	StagePreparing

	// StageOutForDelivery indicates the order has left the shop and a courier
	// dispatch cycle has started.
	StageOutForDelivery

	// StageDelivered indicates the order reached the customer. Terminal.
	StageDelivered

	// StageCancelled indicates the order was abandoned before delivery. Terminal.
	StageCancelled
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:        "Unknown",
		StagePending:        "Pending",
		StagePreparing:      "Preparing",
		StageOutForDelivery: "OutForDelivery",
		StageDelivered:      "Delivered",
		StageCancelled:      "Cancelled",
	}
}

func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // StageUnknown is intentionally excluded as it's invalid
	return map[Stage]string{
		StagePending:        "Pending",
		StagePreparing:      "Preparing",
		StageOutForDelivery: "OutForDelivery",
		StageDelivered:      "Delivered",
		StageCancelled:      "Cancelled",
	}
}

// allowed transition edges; terminal stages have no entries.
func getStageTransitions() map[Stage][]Stage {
	return map[Stage][]Stage{
		StagePending:        {StagePreparing, StageCancelled},
		StagePreparing:      {StageOutForDelivery, StageCancelled},
		StageOutForDelivery: {StageDelivered, StageCancelled},
	}
}

// StageFromString parses a stage name as stored or received over the wire.
func StageFromString(value string) (Stage, error) {
	for stage, str := range getValidStageStrings() {
		if str == value {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause(
		"stage is invalid",
		fmt.Errorf("%q is not a valid stage", value),
	)
}

// Validate checks if the Stage value is valid.
// StageUnknown (0) and out-of-range values are invalid.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Stage) IsTerminal() bool {
	return s == StageDelivered || s == StageCancelled
}

// TransitionTo validates the edge from the current stage to next and returns
// the new stage.
//
// Returns ErrInvalidStageTransition (wrapped with both stage names) when the
// edge is not part of the state machine, including any transition out of a
// terminal stage.
func (s Stage) TransitionTo(next Stage) (Stage, error) {
	if err := next.Validate(); err != nil {
		return StageUnknown, err
	}

	for _, allowed := range getStageTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}

	return StageUnknown, fmt.Errorf("%w: %s -> %s", ErrInvalidStageTransition, s, next)
}
