package commands_test

import (
	"context"
	"testing"

	"shopqueue/internal/core/application/usecases/commands"
	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangePriorityCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockQueueItemRepository)
	item := persistedItem(t, queueitem.StatusWaiting)

	repo.On("Get", ctx, testItemID).Return(item, nil)
	repo.On("Update", ctx, item).Return(item, nil)

	handler := commands.NewChangePriorityCommandHandler(repo, discardLogger())
	cmd, err := commands.NewChangePriorityCommand(testItemID, queueitem.PriorityUrgent)
	require.NoError(t, err)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, queueitem.PriorityUrgent, updated.Priority())
	repo.AssertExpectations(t)
}

func TestChangePriorityCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockQueueItemRepository)

	repo.On("Get", ctx, testItemID).
		Return(nil, errs.NewObjectNotFoundError("queueItem", testItemID))

	handler := commands.NewChangePriorityCommandHandler(repo, discardLogger())
	cmd, err := commands.NewChangePriorityCommand(testItemID, queueitem.PriorityHigh)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
