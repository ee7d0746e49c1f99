package queueitem

import (
	"errors"
	"fmt"

	"shopqueue/internal/pkg/errs"
)

// ErrInvalidStatusTransition classifies every rejected status transition.
// Use errors.As with *StatusTransitionError to read the offending statuses.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of a queue item.
//
// State transitions:
//
//	Waiting ──> InDiagnosis ──> Waiting ──> InRepair ──> Done
//	                        (awaiting repair approval)
//
// Waiting is both the initial state and the re-entry point after diagnosis.
// Done is terminal; removal from the queue is a separate operation available
// from any state, not a transition.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusWaiting is the initial state, and the state a diagnosed item
	// returns to while it awaits repair approval.
	StatusWaiting

	// StatusInDiagnosis indicates a mechanic is diagnosing the vehicle.
	StatusInDiagnosis

	// StatusInRepair indicates the approved repair is in progress.
	StatusInRepair

	// StatusDone is the terminal state after repair completion.
	StatusDone
)

// statusNames holds the literal string values persisted to storage and
// exposed on the wire. Renaming one is a breaking change for both.
func statusNames() map[Status]string {
	return map[Status]string{
		StatusWaiting:     "WAITING",
		StatusInDiagnosis: "IN_DIAGNOSIS",
		StatusInRepair:    "IN_REPAIR",
		StatusDone:        "DONE",
	}
}

// ParseStatus converts a persisted or wire status string into a Status.
func ParseStatus(value string) (Status, error) {
	for status, name := range statusNames() {
		if name == value {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", value))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the literal status name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// StatusTransitionError reports an operation attempted against an item whose
// current status does not allow it. It carries both the actual status and the
// status the operation requires.
type StatusTransitionError struct {
	Actual   Status
	Required Status
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: status is %s, must be %s", e.Actual, e.Required)
}

func (e *StatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// require returns a StatusTransitionError unless s equals required.
func (s Status) require(required Status) error {
	if s != required {
		return &StatusTransitionError{Actual: s, Required: required}
	}
	return nil
}

// StartDiagnosis transitions Waiting -> InDiagnosis.
func (s Status) StartDiagnosis() (Status, error) {
	if err := s.require(StatusWaiting); err != nil {
		return StatusUnknown, err
	}
	return StatusInDiagnosis, nil
}

// CompleteDiagnosis transitions InDiagnosis -> Waiting. The item re-enters
// the queue to await repair approval rather than moving to repair directly.
func (s Status) CompleteDiagnosis() (Status, error) {
	if err := s.require(StatusInDiagnosis); err != nil {
		return StatusUnknown, err
	}
	return StatusWaiting, nil
}

// StartRepair transitions Waiting -> InRepair.
func (s Status) StartRepair() (Status, error) {
	if err := s.require(StatusWaiting); err != nil {
		return StatusUnknown, err
	}
	return StatusInRepair, nil
}

// CompleteRepair transitions InRepair -> Done.
func (s Status) CompleteRepair() (Status, error) {
	if err := s.require(StatusInRepair); err != nil {
		return StatusUnknown, err
	}
	return StatusDone, nil
}
