package commands

import (
	"context"
	"log/slog"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/core/ports"
)

// ChangePriorityCommandHandler reprioritizes a queue item. Priority is not
// part of the lifecycle, so no status sync is sent.
type ChangePriorityCommandHandler struct {
	repo   ports.QueueItemRepository
	logger *slog.Logger
}

// NewChangePriorityCommandHandler creates a handler for priority changes.
func NewChangePriorityCommandHandler(repo ports.QueueItemRepository, logger *slog.Logger) ChangePriorityCommandHandler {
	return ChangePriorityCommandHandler{
		repo:   repo,
		logger: logger.With("component", "change_priority_handler"),
	}
}

// Handle loads the item, changes its priority and persists it.
func (h ChangePriorityCommandHandler) Handle(ctx context.Context, cmd ChangePriorityCommand) (*queueitem.QueueItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := h.repo.Get(ctx, cmd.QueueItemID())
	if err != nil {
		return nil, err
	}

	if err := item.ChangePriority(cmd.Priority()); err != nil {
		return nil, err
	}

	return h.repo.Update(ctx, item)
}
