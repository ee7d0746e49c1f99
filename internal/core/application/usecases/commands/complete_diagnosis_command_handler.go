package commands

import (
	"context"
	"log/slog"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/core/ports"
)

// CompleteDiagnosisCommandHandler finishes a diagnosis and returns the item
// to the queue to await repair approval.
type CompleteDiagnosisCommandHandler struct {
	repo     ports.QueueItemRepository
	notifier ports.StatusNotifier
	logger   *slog.Logger
}

// NewCompleteDiagnosisCommandHandler creates a handler for completing
// diagnosis.
func NewCompleteDiagnosisCommandHandler(
	repo ports.QueueItemRepository,
	notifier ports.StatusNotifier,
	logger *slog.Logger,
) CompleteDiagnosisCommandHandler {
	return CompleteDiagnosisCommandHandler{
		repo:     repo,
		notifier: notifier,
		logger:   logger.With("component", "complete_diagnosis_handler"),
	}
}

// Handle loads the item, applies the InDiagnosis -> Waiting transition with
// the recorded findings, persists it and syncs AWAITING_APPROVAL to the
// order service.
func (h CompleteDiagnosisCommandHandler) Handle(ctx context.Context, cmd CompleteDiagnosisCommand) (*queueitem.QueueItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := h.repo.Get(ctx, cmd.QueueItemID())
	if err != nil {
		return nil, err
	}

	if err := item.CompleteDiagnosis(cmd.DiagnosisNotes()); err != nil {
		return nil, err
	}

	updated, err := h.repo.Update(ctx, item)
	if err != nil {
		return nil, err
	}

	notifyStatusChange(ctx, h.notifier, h.logger,
		updated.ServiceOrderID(), ports.ExternalStatusAwaitingApproval)

	return updated, nil
}
