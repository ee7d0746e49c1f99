package queries

import (
	"context"

	"shopqueue/internal/core/ports"
)

// GetQueueItemByServiceOrderQueryHandler resolves a queue item read model by
// its service order id.
type GetQueueItemByServiceOrderQueryHandler struct {
	repo ports.QueueItemRepository
}

// NewGetQueueItemByServiceOrderQueryHandler creates a handler for
// service-order lookups.
func NewGetQueueItemByServiceOrderQueryHandler(repo ports.QueueItemRepository) GetQueueItemByServiceOrderQueryHandler {
	return GetQueueItemByServiceOrderQueryHandler{repo: repo}
}

// Handle fetches the item holding the service order and maps it to the read
// model. Returns errs.ErrObjectNotFound when the order is not queued.
func (h GetQueueItemByServiceOrderQueryHandler) Handle(
	ctx context.Context,
	query GetQueueItemByServiceOrderQuery,
) (QueueItemResponse, error) {
	if err := query.Validate(); err != nil {
		return QueueItemResponse{}, err
	}

	item, err := h.repo.GetByServiceOrder(ctx, query.ServiceOrderID())
	if err != nil {
		return QueueItemResponse{}, err
	}

	return NewQueueItemResponse(item), nil
}
