package commands

import (
	"context"
	"errors"
	"log/slog"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/core/ports"
	"shopqueue/internal/pkg/errs"
)

// EnqueueCommandHandler adds new service orders to the execution queue.
//
// It performs an existence pre-check before inserting so a duplicate request
// gets a clean domain error instead of a raw index violation. The pre-check
// is not atomic with the insert: under concurrent enqueues the unique index
// on the service order id is the authoritative guard, and both paths surface
// the same ObjectAlreadyExistsError kind.
type EnqueueCommandHandler struct {
	repo   ports.QueueItemRepository
	logger *slog.Logger
}

// NewEnqueueCommandHandler creates a handler for enqueue operations.
func NewEnqueueCommandHandler(repo ports.QueueItemRepository, logger *slog.Logger) EnqueueCommandHandler {
	return EnqueueCommandHandler{
		repo:   repo,
		logger: logger.With("component", "enqueue_handler"),
	}
}

// Handle creates the queue item in Waiting status and returns the persisted
// item with its storage-assigned id.
func (h EnqueueCommandHandler) Handle(ctx context.Context, cmd EnqueueCommand) (*queueitem.QueueItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	_, err := h.repo.GetByServiceOrder(ctx, cmd.ServiceOrderID())
	if err == nil {
		return nil, errs.NewObjectAlreadyExistsError("serviceOrderID", cmd.ServiceOrderID())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	item, err := queueitem.NewQueueItem(cmd.ServiceOrderID(), cmd.Priority())
	if err != nil {
		return nil, err
	}

	saved, err := h.repo.Add(ctx, item)
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "service order enqueued",
		"queue_item_id", saved.ID(),
		"service_order_id", saved.ServiceOrderID(),
		"priority", saved.Priority().String())

	return saved, nil
}
