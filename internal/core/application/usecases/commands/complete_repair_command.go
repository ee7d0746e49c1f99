package commands

import (
	"errors"

	"shopqueue/internal/pkg/errs"
	"shopqueue/internal/pkg/guard"
)

var ErrCompleteRepairCommandIsNotConstructed = errors.New(
	"CompleteRepairCommand must be created via NewCompleteRepairCommand constructor",
)

// CompleteRepairCommand represents a request to finish a queue item's
// repair, recording the work performed.
type CompleteRepairCommand struct {
	queueItemID string
	repairNotes string

	guard guard.ConstructorGuard
}

// NewCompleteRepairCommand creates a command to complete repair. Repair
// notes are mandatory.
func NewCompleteRepairCommand(queueItemID, repairNotes string) (CompleteRepairCommand, error) {
	if queueItemID == "" {
		return CompleteRepairCommand{}, errQueueItemIDRequired()
	}
	if repairNotes == "" {
		return CompleteRepairCommand{}, errs.NewValueIsRequiredError("repairNotes")
	}

	return CompleteRepairCommand{
		queueItemID: queueItemID,
		repairNotes: repairNotes,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRepairCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRepairCommandIsNotConstructed)
}

// QueueItemID returns the target queue item's id.
func (c CompleteRepairCommand) QueueItemID() string {
	return c.queueItemID
}

// RepairNotes returns the recorded repair outcome.
func (c CompleteRepairCommand) RepairNotes() string {
	return c.repairNotes
}
