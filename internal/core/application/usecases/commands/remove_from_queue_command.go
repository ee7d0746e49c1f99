package commands

import (
	"errors"

	"shopqueue/internal/pkg/guard"
)

var ErrRemoveFromQueueCommandIsNotConstructed = errors.New(
	"RemoveFromQueueCommand must be created via NewRemoveFromQueueCommand constructor",
)

// RemoveFromQueueCommand represents a cancellation: the queue item is
// deleted outright, regardless of its lifecycle state.
type RemoveFromQueueCommand struct {
	queueItemID string

	guard guard.ConstructorGuard
}

// NewRemoveFromQueueCommand creates a command to remove a queue item.
func NewRemoveFromQueueCommand(queueItemID string) (RemoveFromQueueCommand, error) {
	if queueItemID == "" {
		return RemoveFromQueueCommand{}, errQueueItemIDRequired()
	}

	return RemoveFromQueueCommand{
		queueItemID: queueItemID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromQueueCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromQueueCommandIsNotConstructed)
}

// QueueItemID returns the queue item to remove.
func (c RemoveFromQueueCommand) QueueItemID() string {
	return c.queueItemID
}
