package queries

import (
	"context"

	"shopqueue/internal/core/ports"
)

// GetQueueItemQueryHandler resolves a queue item read model by id.
type GetQueueItemQueryHandler struct {
	repo ports.QueueItemRepository
}

// NewGetQueueItemQueryHandler creates a handler for single-item lookups.
func NewGetQueueItemQueryHandler(repo ports.QueueItemRepository) GetQueueItemQueryHandler {
	return GetQueueItemQueryHandler{repo: repo}
}

// Handle fetches the item and maps it to the read model. Returns
// errs.ErrObjectNotFound when no item matches.
func (h GetQueueItemQueryHandler) Handle(
	ctx context.Context,
	query GetQueueItemQuery,
) (QueueItemResponse, error) {
	if err := query.Validate(); err != nil {
		return QueueItemResponse{}, err
	}

	item, err := h.repo.Get(ctx, query.QueueItemID())
	if err != nil {
		return QueueItemResponse{}, err
	}

	return NewQueueItemResponse(item), nil
}
