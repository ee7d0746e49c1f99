package commands

import (
	"context"
	"log/slog"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/core/ports"
)

// CompleteRepairCommandHandler finishes a repair, moving the item to its
// terminal Done state.
type CompleteRepairCommandHandler struct {
	repo     ports.QueueItemRepository
	notifier ports.StatusNotifier
	logger   *slog.Logger
}

// NewCompleteRepairCommandHandler creates a handler for completing repair.
func NewCompleteRepairCommandHandler(
	repo ports.QueueItemRepository,
	notifier ports.StatusNotifier,
	logger *slog.Logger,
) CompleteRepairCommandHandler {
	return CompleteRepairCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "complete_repair_handler"),
	}
}

// Handle loads the item, applies the InRepair -> Done transition, persists
// it and syncs DONE to the order service.
func (h CompleteRepairCommandHandler) Handle(ctx context.Context, cmd CompleteRepairCommand) (*queueitem.QueueItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := h.repo.Get(ctx, cmd.QueueItemID())
	if err != nil {
		return nil, err
	}

	if err := item.CompleteRepair(cmd.RepairNotes()); err != nil {
		return nil, err
	}

	updated, err := h.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	notifyStatusChange(ctx, h.notifier, h.logger,
		updated.ServiceOrderID(), ports.ExternalStatusDone)

	return updated, nil
}
