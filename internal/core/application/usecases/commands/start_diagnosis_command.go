package commands

import (
	"errors"

	"shopqueue/internal/pkg/guard"
)

var ErrStartDiagnosisCommandIsNotConstructed = errors.New(
	"StartDiagnosisCommand must be created via NewStartDiagnosisCommand constructor",
)

// StartDiagnosisCommand represents a request to begin diagnosing a waiting
// queue item, assigning the responsible mechanic.
type StartDiagnosisCommand struct {
	queueItemID string
	mechanicID  int64

	guard guard.ConstructorGuard
}

// NewStartDiagnosisCommand creates a command to start diagnosis on a queue
// item. The mechanic id is mandatory.
func NewStartDiagnosisCommand(queueItemID string, mechanicID int64) (StartDiagnosisCommand, error) {
	if queueItemID == "" {
		return StartDiagnosisCommand{}, errQueueItemIDRequired()
	}
	if mechanicID <= 0 {
		return StartDiagnosisCommand{}, errInvalidMechanicID(mechanicID)
	}

	return StartDiagnosisCommand{
		queueItemID: queueItemID,
		mechanicID:  mechanicID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDiagnosisCommand) Validate() error {
	return c.guard.Validate(ErrStartDiagnosisCommandIsNotConstructed)
}

// QueueItemID returns the target queue item's id.
func (c StartDiagnosisCommand) QueueItemID() string {
	return c.queueItemID
}

// MechanicID returns the mechanic taking over diagnosis.
func (c StartDiagnosisCommand) MechanicID() int64 {
	return c.mechanicID
}
