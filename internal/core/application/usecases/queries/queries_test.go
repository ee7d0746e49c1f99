package queries_test

import (
	"context"
	"testing"
	"time"

	"shopqueue/internal/core/application/usecases/queries"
	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQueueItemRepository struct{ mock.Mock }

func (m *MockQueueItemRepository) Add(ctx context.Context, item *queueitem.QueueItem) (*queueitem.QueueItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queueitem.QueueItem), args.Error(1)
}

func (m *MockQueueItemRepository) Update(ctx context.Context, item *queueitem.QueueItem) (*queueitem.QueueItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queueitem.QueueItem), args.Error(1)
}

func (m *MockQueueItemRepository) Get(ctx context.Context, id string) (*queueitem.QueueItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queueitem.QueueItem), args.Error(1)
}

func (m *MockQueueItemRepository) GetByServiceOrder(ctx context.Context, serviceOrderID int64) (*queueitem.QueueItem, error) {
	args := m.Called(ctx, serviceOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queueitem.QueueItem), args.Error(1)
}

func (m *MockQueueItemRepository) ListByStatus(ctx context.Context, status queueitem.Status) ([]*queueitem.QueueItem, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queueitem.QueueItem), args.Error(1)
}

func (m *MockQueueItemRepository) ListAll(ctx context.Context) ([]*queueitem.QueueItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*queueitem.QueueItem), args.Error(1)
}

func (m *MockQueueItemRepository) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQueueItemRepository) CountByStatus(ctx context.Context) (map[queueitem.Status]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[queueitem.Status]int64), args.Error(1)
}

const testItemID = "66b2f0c4a1d2e3f405060708"

func storedItem(t *testing.T, id string, serviceOrderID int64, status queueitem.Status) *queueitem.QueueItem {
	t.Helper()

	now := time.Now().UTC()
	item, err := queueitem.RestoreQueueItem(
		id, serviceOrderID, status, queueitem.PriorityNormal,
		nil, nil, nil, nil, nil, nil, nil,
		now, now,
	)
	require.NoError(t, err)
	return item
}

func TestGetQueueItemQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	repo := new(MockQueueItemRepository)
	item := storedItem(t, testItemID, 42, queueitem.StatusWaiting)

	repo.On("Get", ctx, testItemID).Return(item, nil)

	handler := queries.NewGetQueueItemQueryHandler(repo)
	query, err := queries.NewGetQueueItemQuery(testItemID)
	require.NoError(t, err)

	response, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, testItemID, response.ID)
	assert.Equal(t, int64(42), response.ServiceOrderID)
	assert.Equal(t, "WAITING", response.Status)
	assert.Equal(t, "NORMAL", response.Priority)
	assert.Nil(t, response.AssignedMechanicID)
}

func TestGetQueueItemQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockQueueItemRepository)

	repo.On("Get", ctx, testItemID).
		Return(nil, errs.NewObjectNotFoundError("queueItem", testItemID))

	handler := queries.NewGetQueueItemQueryHandler(repo)
	query, err := queries.NewGetQueueItemQuery(testItemID)
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewGetQueueItemQuery_RequiresID(t *testing.T) {
	_, err := queries.NewGetQueueItemQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetQueueItemByServiceOrderQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	repo := new(MockQueueItemRepository)
	item := storedItem(t, testItemID, 42, queueitem.StatusInRepair)

	repo.On("GetByServiceOrder", ctx, int64(42)).Return(item, nil)

	handler := queries.NewGetQueueItemByServiceOrderQueryHandler(repo)
	query, err := queries.NewGetQueueItemByServiceOrderQuery(42)
	require.NoError(t, err)

	response, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "IN_REPAIR", response.Status)
	assert.Equal(t, int64(42), response.ServiceOrderID)
}

func TestNewGetQueueItemByServiceOrderQuery_RejectsInvalidID(t *testing.T) {
	_, err := queries.NewGetQueueItemByServiceOrderQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestListQueueItemsQueryHandler_Handle_All(t *testing.T) {
	ctx := context.Background()
	repo := new(MockQueueItemRepository)
	items := []*queueitem.QueueItem{
		storedItem(t, "66b2f0c4a1d2e3f405060701", 1, queueitem.StatusWaiting),
		storedItem(t, "66b2f0c4a1d2e3f405060702", 2, queueitem.StatusDone),
	}

	repo.On("ListAll", ctx).Return(items, nil)

	handler := queries.NewListQueueItemsQueryHandler(repo)

	responses, err := handler.Handle(ctx, queries.NewListQueueItemsQuery())

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, int64(1), responses[0].ServiceOrderID)
	assert.Equal(t, int64(2), responses[1].ServiceOrderID)
	repo.AssertNotCalled(t, "ListByStatus", mock.Anything, mock.Anything)
}

func TestListQueueItemsQueryHandler_Handle_ByStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockQueueItemRepository)
	items := []*queueitem.QueueItem{
		storedItem(t, testItemID, 42, queueitem.StatusWaiting),
	}

	repo.On("ListByStatus", ctx, queueitem.StatusWaiting).Return(items, nil)

	handler := queries.NewListQueueItemsQueryHandler(repo)
	query, err := queries.NewListQueueItemsQueryWithStatus(queueitem.StatusWaiting)
	require.NoError(t, err)

	responses, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "WAITING", responses[0].Status)
}

func TestListQueueItemsQueryHandler_Handle_EmptyQueue(t *testing.T) {
	ctx := context.Background()
	repo := new(MockQueueItemRepository)

	repo.On("ListAll", ctx).Return([]*queueitem.QueueItem{}, nil)

	handler := queries.NewListQueueItemsQueryHandler(repo)

	responses, err := handler.Handle(ctx, queries.NewListQueueItemsQuery())

	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestZeroValueQueries_FailValidation(t *testing.T) {
	assert.ErrorIs(t, queries.GetQueueItemQuery{}.Validate(),
		queries.ErrGetQueueItemQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetQueueItemByServiceOrderQuery{}.Validate(),
		queries.ErrGetQueueItemByServiceOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListQueueItemsQuery{}.Validate(),
		queries.ErrListQueueItemsQueryIsNotConstructed)
}
