// Package ports defines the outbound contracts the application core depends
// on: the persistence gateway for queue items and the notifier that syncs
// status changes to the external order service.
package ports

import (
	"context"

	"shopqueue/internal/core/domain/model/queueitem"
)

// QueueItemRepository defines the persistence contract for queue items.
//
// The storage layer is the single source of truth and the only
// synchronization point: the unique index on the service order id is the
// authoritative guard against double-enqueue. Ordered listings always sort by
// priority rank descending, then creation time ascending.
type QueueItemRepository interface {
	// Add inserts a new queue item and returns it with the storage-assigned
	// id and fresh audit timestamps. Returns an ObjectAlreadyExistsError when
	// the service order id is already present.
	Add(ctx context.Context, item *queueitem.QueueItem) (*queueitem.QueueItem, error)

	// Update persists the full state of an existing item, refreshing its
	// updatedAt, and returns the persisted version. The item must carry a
	// storage-assigned id; an unmatched id yields an ObjectNotFoundError.
	Update(ctx context.Context, item *queueitem.QueueItem) (*queueitem.QueueItem, error)

	// Get retrieves an item by its storage-assigned id. Malformed ids are
	// treated as not found, not as a distinct error.
	Get(ctx context.Context, id string) (*queueitem.QueueItem, error)

	// GetByServiceOrder retrieves the item referencing the given service
	// order. At most one can exist, by the uniqueness invariant.
	GetByServiceOrder(ctx context.Context, serviceOrderID int64) (*queueitem.QueueItem, error)

	// ListByStatus returns all items in the given status in queue order.
	// No matches is an empty slice, not an error.
	ListByStatus(ctx context.Context, status queueitem.Status) ([]*queueitem.QueueItem, error)

	// ListAll returns every item in queue order.
	ListAll(ctx context.Context) ([]*queueitem.QueueItem, error)

	// Remove deletes the item with the given id. A missing or malformed id
	// is a no-op, not an error.
	Remove(ctx context.Context, id string) error

	// CountByStatus returns the number of items per status. Statuses with no
	// items are absent from the map.
	CountByStatus(ctx context.Context) (map[queueitem.Status]int64, error)
}
