package commands_test

import (
	"context"

	"shopqueue/internal/core/domain/model/queueitem"
	"shopqueue/internal/core/ports"

	"github.com/stretchr/testify/mock"
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

type MockStatusNotifier struct{ mock.Mock }

func (m *MockStatusNotifier) NotifyStatusChange(ctx context.Context, serviceOrderID int64, status ports.ExternalStatus) error {
	args := m.Called(ctx, serviceOrderID, status)
	return args.Error(0)
}
