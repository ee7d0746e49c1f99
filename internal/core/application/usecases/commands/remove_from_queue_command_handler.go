package commands

import (
	"context"
	"log/slog"

	"shopqueue/internal/core/ports"
)

// RemoveFromQueueCommandHandler cancels a queue item by deleting it.
//
// The existence check makes an unknown id a not-found failure at this level,
// while the storage remove itself stays a silent no-op for absent ids.
type RemoveFromQueueCommandHandler struct {
	repo   ports.QueueItemRepository
	logger *slog.Logger
}

// NewRemoveFromQueueCommandHandler creates a handler for queue removals.
func NewRemoveFromQueueCommandHandler(repo ports.QueueItemRepository, logger *slog.Logger) RemoveFromQueueCommandHandler {
	return RemoveFromQueueCommandHandler{
		repo:   repo,
		logger: logger.With("component", "remove_from_queue_handler"),
	}
}

// Handle verifies the item exists and deletes it.
func (h RemoveFromQueueCommandHandler) Handle(ctx context.Context, cmd RemoveFromQueueCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.repo.Get(ctx, cmd.QueueItemID())
	if err != nil {
		return err
	}

	if err := h.repo.Remove(ctx, cmd.QueueItemID()); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "queue item removed",
		"queue_item_id", cmd.QueueItemID(),
		"service_order_id", item.ServiceOrderID())

	return nil
}
