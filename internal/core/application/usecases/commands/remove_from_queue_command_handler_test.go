package commands_test

import (
	"context"
	"testing"

	"shopqueue/internal/core/application/usecases/commands"
	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveFromQueueCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockQueueItemRepository)

	repo.On("Get", ctx, testItemID).Return(persistedItem(t, queueitem.StatusWaiting), nil)
	repo.On("Remove", ctx, testItemID).Return(nil)

	handler := commands.NewRemoveFromQueueCommandHandler(repo, discardLogger())
	cmd, err := commands.NewRemoveFromQueueCommand(testItemID)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestRemoveFromQueueCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockQueueItemRepository)

	repo.On("Get", ctx, testItemID).
		Return(nil, errs.NewObjectNotFoundError("queueItem", testItemID))

	handler := commands.NewRemoveFromQueueCommandHandler(repo, discardLogger())
	cmd, err := commands.NewRemoveFromQueueCommand(testItemID)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
