package queueitem

import (
	"errors"
	"fmt"
	"time"

	"shopqueue/internal/pkg/errs"
)

var (
	// ErrQueueItemIsNotConstructed is returned when a QueueItem instance was
	// not created through NewQueueItem or RestoreQueueItem.
	ErrQueueItemIsNotConstructed = errors.New("QueueItem must be created via NewQueueItem or RestoreQueueItem")
)

// QueueItem is the aggregate root tracking a single service order's position
// and state in the shop's execution pipeline.
//
// Invariants:
//   - serviceOrderID is positive and unique across all items (uniqueness is
//     enforced by the storage layer)
//   - status transitions follow the lifecycle state machine in Status
//   - each of the four transition timestamps is set exactly once, at its
//     transition, and never overwritten
//   - the storage layer is the sole writer of id, createdAt and updatedAt
type QueueItem struct {
	// id is the storage-assigned identifier, empty before the first save.
	id string

	// serviceOrderID references the externally owned service order.
	serviceOrderID int64

	status   Status
	priority Priority

	// assignedMechanicID is set when diagnosis or repair starts.
	assignedMechanicID *int64

	diagnosisNotes *string
	repairNotes    *string

	diagnosisStartedAt  *time.Time
	diagnosisFinishedAt *time.Time
	repairStartedAt     *time.Time
	repairFinishedAt    *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewQueueItem creates a queue item for a service order in Waiting status.
// The id and audit timestamps stay zero until the item is saved.
func NewQueueItem(serviceOrderID int64, priority Priority) (*QueueItem, error) {
	item := &QueueItem{
		status:        StatusWaiting,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setServiceOrderID(serviceOrderID),
		item.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreQueueItem reconstructs a queue item from persisted state. It is
// intended for storage adapters only; it validates the enum values but trusts
// the stored field combination.
func RestoreQueueItem(
	id string,
	serviceOrderID int64,
	status Status,
	priority Priority,
	assignedMechanicID *int64,
	diagnosisNotes *string,
	repairNotes *string,
	diagnosisStartedAt *time.Time,
	diagnosisFinishedAt *time.Time,
	repairStartedAt *time.Time,
	repairFinishedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*QueueItem, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	item := &QueueItem{
		id:                  id,
		status:              status,
		assignedMechanicID:  assignedMechanicID,
		diagnosisNotes:      diagnosisNotes,
		repairNotes:         repairNotes,
		diagnosisStartedAt:  diagnosisStartedAt,
		diagnosisFinishedAt: diagnosisFinishedAt,
		repairStartedAt:     repairStartedAt,
		repairFinishedAt:    repairFinishedAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		item.setServiceOrderID(serviceOrderID),
		item.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the QueueItem was created through a constructor.
func (q *QueueItem) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQueueItemIsNotConstructed
	}
	return nil
}

// ID returns the storage-assigned identifier, empty before the first save.
func (q *QueueItem) ID() string {
	return q.id
}

// ServiceOrderID returns the referenced service order's identifier.
func (q *QueueItem) ServiceOrderID() int64 {
	return q.serviceOrderID
}

// Status returns the item's current lifecycle state.
func (q *QueueItem) Status() Status {
	return q.status
}

// Priority returns the item's current priority.
func (q *QueueItem) Priority() Priority {
	return q.priority
}

// AssignedMechanicID returns the responsible mechanic, nil when unassigned.
func (q *QueueItem) AssignedMechanicID() *int64 {
	return q.assignedMechanicID
}

// DiagnosisNotes returns the diagnosis outcome, nil before completion.
func (q *QueueItem) DiagnosisNotes() *string {
	return q.diagnosisNotes
}

// RepairNotes returns the repair outcome, nil before completion.
func (q *QueueItem) RepairNotes() *string {
	return q.repairNotes
}

// DiagnosisStartedAt returns when diagnosis started, nil before it did.
func (q *QueueItem) DiagnosisStartedAt() *time.Time {
	return q.diagnosisStartedAt
}

// DiagnosisFinishedAt returns when diagnosis finished, nil before it did.
func (q *QueueItem) DiagnosisFinishedAt() *time.Time {
	return q.diagnosisFinishedAt
}

// RepairStartedAt returns when repair started, nil before it did.
func (q *QueueItem) RepairStartedAt() *time.Time {
	return q.repairStartedAt
}

// RepairFinishedAt returns when repair finished, nil before it did.
func (q *QueueItem) RepairFinishedAt() *time.Time {
	return q.repairFinishedAt
}

// CreatedAt returns the storage-assigned creation time.
func (q *QueueItem) CreatedAt() time.Time {
	return q.createdAt
}

// UpdatedAt returns the storage-assigned last-mutation time.
func (q *QueueItem) UpdatedAt() time.Time {
	return q.updatedAt
}

// StartDiagnosis moves a waiting item into diagnosis, assigning the
// responsible mechanic and stamping the diagnosis start time.
func (q *QueueItem) StartDiagnosis(mechanicID int64) error {
	if mechanicID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("mechanicID",
			fmt.Errorf("%d is not a valid mechanic id", mechanicID))
	}

	newStatus, err := q.status.StartDiagnosis()
	if err != nil {
		return err
	}

	q.status = newStatus
	q.assignedMechanicID = &mechanicID
	q.stampOnce(&q.diagnosisStartedAt)
	return nil
}

// CompleteDiagnosis records the diagnosis outcome and returns the item to
// Waiting, where it sits until the repair is approved.
func (q *QueueItem) CompleteDiagnosis(notes string) error {
	if notes == "" {
		return errs.NewValueIsRequiredError("diagnosisNotes")
	}

	newStatus, err := q.status.CompleteDiagnosis()
	if err != nil {
		return err
	}

	q.status = newStatus
	q.diagnosisNotes = &notes
	q.stampOnce(&q.diagnosisFinishedAt)
	return nil
}

// StartRepair moves a waiting item into repair. A mechanic id may be
// supplied to reassign the item; nil keeps the current assignment.
func (q *QueueItem) StartRepair(mechanicID *int64) error {
	if mechanicID != nil && *mechanicID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("mechanicID",
			fmt.Errorf("%d is not a valid mechanic id", *mechanicID))
	}

	newStatus, err := q.status.StartRepair()
	if err != nil {
		return err
	}

	q.status = newStatus
	if mechanicID != nil {
		q.assignedMechanicID = mechanicID
	}
	q.stampOnce(&q.repairStartedAt)
	return nil
}

// CompleteRepair records the repair outcome and moves the item to Done,
// the terminal state.
func (q *QueueItem) CompleteRepair(notes string) error {
	if notes == "" {
		return errs.NewValueIsRequiredError("repairNotes")
	}

	newStatus, err := q.status.CompleteRepair()
	if err != nil {
		return err
	}

	q.status = newStatus
	q.repairNotes = &notes
	q.stampOnce(&q.repairFinishedAt)
	return nil
}

// ChangePriority updates the priority. Allowed in any status and touches no
// transition timestamps.
func (q *QueueItem) ChangePriority(priority Priority) error {
	return q.setPriority(priority)
}

// stampOnce sets the timestamp only if it is still unset. A diagnosed item
// re-enters Waiting, so a second cycle must not overwrite the first stamps.
func (q *QueueItem) stampOnce(ts **time.Time) {
	if *ts == nil {
		now := time.Now().UTC()
		*ts = &now
	}
}

func (q *QueueItem) setServiceOrderID(serviceOrderID int64) error {
	if serviceOrderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("serviceOrderID",
			fmt.Errorf("%d is not a valid service order id", serviceOrderID))
	}
	q.serviceOrderID = serviceOrderID
	return nil
}

func (q *QueueItem) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	q.priority = priority
	return nil
}
