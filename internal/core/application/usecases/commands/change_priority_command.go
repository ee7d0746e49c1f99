package commands

import (
	"errors"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/pkg/guard"
)

var ErrChangePriorityCommandIsNotConstructed = errors.New(
	"ChangePriorityCommand must be created via NewChangePriorityCommand constructor",
)

// ChangePriorityCommand represents a request to change a queue item's
// priority. Legal in any lifecycle state.
type ChangePriorityCommand struct {
	queueItemID string
	priority    queueitem.Priority

	guard guard.ConstructorGuard
}

// NewChangePriorityCommand creates a command to change an item's priority.
func NewChangePriorityCommand(queueItemID string, priority queueitem.Priority) (ChangePriorityCommand, error) {
	if queueItemID == "" {
		return ChangePriorityCommand{}, errQueueItemIDRequired()
	}
	if err := priority.Validate(); err != nil {
		return ChangePriorityCommand{}, err
	}

	return ChangePriorityCommand{
		queueItemID: queueItemID,
		priority:    priority,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePriorityCommand) Validate() error {
	return c.guard.Validate(ErrChangePriorityCommandIsNotConstructed)
}

// QueueItemID returns the target queue item's id.
func (c ChangePriorityCommand) QueueItemID() string {
	return c.queueItemID
}

// Priority returns the new priority.
func (c ChangePriorityCommand) Priority() queueitem.Priority {
	return c.priority
}
