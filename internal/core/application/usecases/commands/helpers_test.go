package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"shopqueue/internal/core/domain/model/queueitem"

	"github.com/stretchr/testify/require"
)

const testItemID = "66b2f0c4a1d2e3f405060708"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// persistedItem builds an item as the repository would return it: with a
// storage-assigned id and audit timestamps.
func persistedItem(t *testing.T, status queueitem.Status) *queueitem.QueueItem {
	t.Helper()

	now := time.Now().UTC()
	item, err := queueitem.RestoreQueueItem(
		testItemID, 42, status, queueitem.PriorityNormal,
		nil, nil, nil, nil, nil, nil, nil,
		now, now,
	)
	require.NoError(t, err)
	return item
}
