package commands

import (
	"errors"

	"shopqueue/internal/pkg/guard"
)

var ErrStartRepairCommandIsNotConstructed = errors.New(
	"StartRepairCommand must be created via NewStartRepairCommand constructor",
)

// StartRepairCommand represents a request to begin repairing an approved
// queue item. A mechanic id may optionally be supplied to reassign the item.
type StartRepairCommand struct {
	queueItemID string
	mechanicID  *int64

	guard guard.ConstructorGuard
}

// NewStartRepairCommand creates a command to start repair. A nil mechanic id
// keeps the mechanic assigned during diagnosis.
func NewStartRepairCommand(queueItemID string, mechanicID *int64) (StartRepairCommand, error) {
	if queueItemID == "" {
		return StartRepairCommand{}, errQueueItemIDRequired()
	}
	if mechanicID != nil && *mechanicID <= 0 {
		return StartRepairCommand{}, errInvalidMechanicID(*mechanicID)
	}

	return StartRepairCommand{
		queueItemID: queueItemID,
		mechanicID:  mechanicID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRepairCommand) Validate() error {
	return c.guard.Validate(ErrStartRepairCommandIsNotConstructed)
}

// QueueItemID returns the target queue item's id.
func (c StartRepairCommand) QueueItemID() string {
	return c.queueItemID
}

// MechanicID returns the optional replacement mechanic, nil to keep the
// current assignment.
func (c StartRepairCommand) MechanicID() *int64 {
	return c.mechanicID
}
