package commands

import (
	"errors"

	"shopqueue/internal/pkg/errs"
	"shopqueue/internal/pkg/guard"
)

var ErrCompleteDiagnosisCommandIsNotConstructed = errors.New(
	"CompleteDiagnosisCommand must be created via NewCompleteDiagnosisCommand constructor",
)

// CompleteDiagnosisCommand represents a request to finish a queue item's
// diagnosis, recording the findings.
type CompleteDiagnosisCommand struct {
	queueItemID    string
	diagnosisNotes string

	guard guard.ConstructorGuard
}

// NewCompleteDiagnosisCommand creates a command to complete diagnosis.
// Diagnosis notes are mandatory.
func NewCompleteDiagnosisCommand(queueItemID, diagnosisNotes string) (CompleteDiagnosisCommand, error) {
	if queueItemID == "" {
		return CompleteDiagnosisCommand{}, errQueueItemIDRequired()
	}
	if diagnosisNotes == "" {
		return CompleteDiagnosisCommand{}, errs.NewValueIsRequiredError("diagnosisNotes")
	}

	return CompleteDiagnosisCommand{
		queueItemID:    queueItemID,
		diagnosisNotes: diagnosisNotes,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDiagnosisCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDiagnosisCommandIsNotConstructed)
}

// QueueItemID returns the target queue item's id.
func (c CompleteDiagnosisCommand) QueueItemID() string {
	return c.queueItemID
}

// DiagnosisNotes returns the recorded findings.
func (c CompleteDiagnosisCommand) DiagnosisNotes() string {
	return c.diagnosisNotes
}
