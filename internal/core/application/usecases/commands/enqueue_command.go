package commands

import (
	"errors"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/pkg/guard"
)

var ErrEnqueueCommandIsNotConstructed = errors.New(
	"EnqueueCommand must be created via NewEnqueueCommand constructor",
)

// EnqueueCommand represents a request to add a service order to the
// execution queue.
type EnqueueCommand struct {
	serviceOrderID int64
	priority       queueitem.Priority

	guard guard.ConstructorGuard
}

// NewEnqueueCommand creates a command to enqueue a service order with the
// given priority. The service order id must be positive and the priority one
// of the defined levels.
func NewEnqueueCommand(serviceOrderID int64, priority queueitem.Priority) (EnqueueCommand, error) {
	if serviceOrderID <= 0 {
		return EnqueueCommand{}, errInvalidServiceOrderID(serviceOrderID)
	}
	if err := priority.Validate(); err != nil {
		return EnqueueCommand{}, err
	}

	return EnqueueCommand{
		serviceOrderID: serviceOrderID,
		priority:       priority,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EnqueueCommand) Validate() error {
	return c.guard.Validate(ErrEnqueueCommandIsNotConstructed)
}

// ServiceOrderID returns the service order to enqueue.
func (c EnqueueCommand) ServiceOrderID() int64 {
	return c.serviceOrderID
}

// Priority returns the requested queue priority.
func (c EnqueueCommand) Priority() queueitem.Priority {
	return c.priority
}
