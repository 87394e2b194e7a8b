package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"checklist/config"
	otelMocks "checklist/infras/otel/mocks"
	mocks "checklist/internal/domains/todo/mocks"
	"checklist/internal/domains/todo/model"
	"checklist/internal/domains/todo/model/dto"
	"checklist/internal/domains/todo/service"
	"checklist/internal/events"
	"checklist/shared/constant"
	"checklist/shared/failure"
	"checklist/shared/timezone"
)

func newService(t *testing.T) (*mocks.MockTodo, events.Broker, service.TodoList) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockTodo(ctrl)
	broker := events.NewMemory()

	svc := service.New(mockRepo, &config.Config{}, broker, otelMocks.NewOtel())

	return mockRepo, broker, svc
}

func sessionContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestTodoService_CreateList(t *testing.T) {
	mockRepo, _, svc := newService(t)

	req := dto.CreateListRequest{
		ID:        "aa0e1b2c-3d4e-5f60-7182-93a4b5c6d7e8",
		Title:     "Groceries",
		CreatedAt: timezone.NewFlexibleTime(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)),
	}

	mockRepo.EXPECT().
		InsertList(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, list model.List) error {
			assert.Equal(t, req.ID, list.ID)
			assert.Equal(t, "user-1", list.UserID)

			return nil
		})

	res, err := svc.CreateList(sessionContext("user-1"), req)
	require.NoError(t, err)
	assert.Equal(t, "user-1", res.UserID)
	assert.Equal(t, "Groceries", res.Title)
}

func TestTodoService_GetList(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *mocks.MockTodo)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func(repo *mocks.MockTodo) {
				repo.EXPECT().
					FindListByID(gomock.Any(), "L1").
					Return(&model.List{ID: "L1", UserID: "user-1", Title: "Groceries"}, nil)
			},
		},
		{
			name: "absent is not found",
			setupMock: func(repo *mocks.MockTodo) {
				repo.EXPECT().
					FindListByID(gomock.Any(), "L1").
					Return(nil, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func(repo *mocks.MockTodo) {
				repo.EXPECT().
					FindListByID(gomock.Any(), "L1").
					Return(nil, errors.New("backend down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, _, svc := newService(t)
			tt.setupMock(mockRepo)

			res, err := svc.GetList(sessionContext("user-1"), "L1")

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "L1", res.ID)
		})
	}
}

func TestTodoService_PatchList_ReadsThenWrites(t *testing.T) {
	mockRepo, _, svc := newService(t)

	existing := model.List{
		ID:        "L1",
		UserID:    "user-1",
		Title:     "Groceries",
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	title := "Weekly groceries"

	mockRepo.EXPECT().
		FindListByID(gomock.Any(), "L1").
		Return(&existing, nil)
	mockRepo.EXPECT().
		UpdateList(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, list model.List) error {
			assert.Equal(t, "Weekly groceries", list.Title)
			assert.Equal(t, "user-1", list.UserID)
			assert.Equal(t, existing.CreatedAt, list.CreatedAt)

			return nil
		})

	res, err := svc.PatchList(sessionContext("user-1"), "L1", dto.PatchListRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Weekly groceries", res.Title)
}

func TestTodoService_PatchList_AbsentIsNotFound(t *testing.T) {
	mockRepo, _, svc := newService(t)

	mockRepo.EXPECT().
		FindListByID(gomock.Any(), "L1").
		Return(nil, nil)

	_, err := svc.PatchList(sessionContext("user-1"), "L1", dto.PatchListRequest{})
	assert.True(t, failure.IsNotFound(err))
}

func TestTodoService_CreateItem(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *mocks.MockTodo)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(repo *mocks.MockTodo) {
				repo.EXPECT().
					FindListByID(gomock.Any(), "aa0e1b2c-3d4e-5f60-7182-93a4b5c6d7e8").
					Return(&model.List{ID: "aa0e1b2c-3d4e-5f60-7182-93a4b5c6d7e8"}, nil)
				repo.EXPECT().
					InsertItem(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown list is a bad request",
			setupMock: func(repo *mocks.MockTodo) {
				repo.EXPECT().
					FindListByID(gomock.Any(), "aa0e1b2c-3d4e-5f60-7182-93a4b5c6d7e8").
					Return(nil, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "repository error",
			setupMock: func(repo *mocks.MockTodo) {
				repo.EXPECT().
					FindListByID(gomock.Any(), "aa0e1b2c-3d4e-5f60-7182-93a4b5c6d7e8").
					Return(&model.List{ID: "aa0e1b2c-3d4e-5f60-7182-93a4b5c6d7e8"}, nil)
				repo.EXPECT().
					InsertItem(gomock.Any(), gomock.Any()).
					Return(errors.New("backend down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, _, svc := newService(t)
			tt.setupMock(mockRepo)

			req := dto.CreateItemRequest{
				ID:        "3f9d5a1c-0c7e-4f3a-9be2-1f2a3b4c5d6e",
				ListID:    "aa0e1b2c-3d4e-5f60-7182-93a4b5c6d7e8",
				Text:      "Buy milk",
				CreatedAt: timezone.NewFlexibleTime(time.Now()),
			}

			res, err := svc.CreateItem(sessionContext("user-1"), req)

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, req.ID, res.ID)
		})
	}
}

func TestTodoService_PatchItem_PreservesUnpatchedFields(t *testing.T) {
	mockRepo, _, svc := newService(t)

	existing := model.Item{
		ID:          "I1",
		ListID:      "L1",
		Text:        "Buy milk",
		IsCompleted: false,
		CreatedAt:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	completed := true

	mockRepo.EXPECT().
		FindItemByID(gomock.Any(), "I1").
		Return(&existing, nil)
	mockRepo.EXPECT().
		UpdateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item model.Item) error {
			assert.Equal(t, "I1", item.ID)
			assert.Equal(t, "L1", item.ListID)
			assert.Equal(t, "Buy milk", item.Text)
			assert.True(t, item.IsCompleted)

			return nil
		})

	res, err := svc.PatchItem(sessionContext("user-1"), "I1", dto.PatchItemRequest{IsCompleted: &completed})
	require.NoError(t, err)
	assert.True(t, res.IsCompleted)
}

func TestTodoService_GetItems(t *testing.T) {
	mockRepo, _, svc := newService(t)

	mockRepo.EXPECT().
		FindItemsWhere(gomock.Any(), "L1", model.FilterActive, model.SortNewestFirst).
		Return([]model.Item{{ID: "I1", ListID: "L1", Text: "Buy milk"}}, nil)

	res, err := svc.GetItems(sessionContext("user-1"), dto.ItemQuery{
		ListID: "L1",
		Filter: model.FilterActive,
		Sort:   model.SortNewestFirst,
	})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "I1", res[0].ID)
}

func TestTodoService_UserDeletedEventTriggersCascade(t *testing.T) {
	mockRepo, broker, _ := newService(t)

	done := make(chan struct{})
	mockRepo.EXPECT().
		DeleteByUserID(gomock.Any(), "user-1").
		DoAndReturn(func(context.Context, string) error {
			close(done)

			return nil
		})

	broker.Publish(context.Background(), events.Event{Type: events.UserDeleted, UserID: "user-1"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cascade never ran")
	}
}

func TestTodoService_Seed(t *testing.T) {
	mockRepo, _, svc := newService(t)

	mockRepo.EXPECT().InsertList(gomock.Any(), gomock.Any()).Return(nil).Times(5)
	mockRepo.EXPECT().InsertItem(gomock.Any(), gomock.Any()).Return(nil).Times(30)
	mockRepo.EXPECT().
		FindListsWithStats(gomock.Any(), "user-1").
		Return([]model.ListWithStats{}, nil)

	_, err := svc.Seed(sessionContext("user-1"))
	require.NoError(t, err)
}
