package commands

import (
	"context"
	"log/slog"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/core/ports"
)

// StartRepairCommandHandler moves an approved waiting item into repair.
type StartRepairCommandHandler struct {
	repo     ports.QueueItemRepository
	notifier ports.StatusNotifier
	logger   *slog.Logger
}

// NewStartRepairCommandHandler creates a handler for starting repair.
func NewStartRepairCommandHandler(
	repo ports.QueueItemRepository,
	notifier ports.StatusNotifier,
	logger *slog.Logger,
) StartRepairCommandHandler {
	return StartRepairCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "start_repair_handler"),
	}
}

// Handle loads the item, applies the Waiting -> InRepair transition,
// persists it and syncs IN_EXECUTION to the order service.
func (h StartRepairCommandHandler) Handle(ctx context.Context, cmd StartRepairCommand) (*queueitem.QueueItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := h.repo.Get(ctx, cmd.QueueItemID())
	if err != nil {
		return nil, err
	}

	if err := item.StartRepair(cmd.MechanicID()); err != nil {
		return nil, err
	}

	updated, err := h.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	notifyStatusChange(ctx, h.notifier, h.logger,
		updated.ServiceOrderID(), ports.ExternalStatusInExecution)

	return updated, nil
}
