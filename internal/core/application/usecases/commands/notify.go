package commands

import (
	"context"
	"log/slog"

	"shopqueue/internal/core/ports"
)

// notifyStatusChange fires the status-sync call to the order service after a
// transition has been persisted. Failures are logged and swallowed: the sync
// is best-effort by contract and must never surface as the operation's
// failure.
func notifyStatusChange(
	ctx context.Context,
	notifier ports.StatusNotifier,
	logger *slog.Logger,
	serviceOrderID int64,
	status ports.ExternalStatus,
) {
	if err := notifier.NotifyStatusChange(ctx, serviceOrderID, status); err != nil {
		logger.WarnContext(ctx, "order service status sync failed",
			"service_order_id", serviceOrderID,
			"status", string(status),
			"error", err)
	}
}
