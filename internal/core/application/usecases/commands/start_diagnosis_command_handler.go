package commands

import (
	"context"
	"log/slog"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/core/ports"
)

// StartDiagnosisCommandHandler moves a waiting queue item into diagnosis.
type StartDiagnosisCommandHandler struct {
	repo     ports.QueueItemRepository
	notifier ports.StatusNotifier
	logger   *slog.Logger
}

// NewStartDiagnosisCommandHandler creates a handler for starting diagnosis.
func NewStartDiagnosisCommandHandler(
	repo ports.QueueItemRepository,
	notifier ports.StatusNotifier,
	logger *slog.Logger,
) StartDiagnosisCommandHandler {
	return StartDiagnosisCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "start_diagnosis_handler"),
	}
}

// Handle loads the item, applies the Waiting -> InDiagnosis transition,
// persists it and syncs IN_DIAGNOSIS to the order service.
func (h StartDiagnosisCommandHandler) Handle(ctx context.Context, cmd StartDiagnosisCommand) (*queueitem.QueueItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := h.repo.Get(ctx, cmd.QueueItemID())
	if err != nil {
		return nil, err
	}

	if err := item.StartDiagnosis(cmd.MechanicID()); err != nil {
		return nil, err
	}

	updated, err := h.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	notifyStatusChange(ctx, h.notifier, h.logger,
		updated.ServiceOrderID(), ports.ExternalStatusInDiagnosis)

	return updated, nil
}
