package repository

import (
	"context"

	"checklist/config"
	"checklist/infras/mongo"
	"checklist/infras/otel"
	"checklist/internal/domains/todo/model"
	"checklist/shared/constant"
)

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

// Todo is the storage contract for lists and items. Lookups of an absent id
// return (nil, nil); updates of an absent id fail with a not found error;
// deletes of an absent id succeed.
type Todo interface {
	InsertList(ctx context.Context, list model.List) error
	FindListByID(ctx context.Context, id string) (*model.List, error)
	UpdateList(ctx context.Context, list model.List) error
	DeleteListByID(ctx context.Context, id string) error
	FindListsWithStats(ctx context.Context, userID string) ([]model.ListWithStats, error)

	InsertItem(ctx context.Context, item model.Item) error
	FindItemByID(ctx context.Context, id string) (*model.Item, error)
	UpdateItem(ctx context.Context, item model.Item) error
	DeleteItemByID(ctx context.Context, id string) error
	FindItemsWhere(ctx context.Context, listID string, filter model.ItemFilter, order model.ItemSort) ([]model.Item, error)

	// DeleteByUserID removes every list owned by the user and every item in
	// those lists. Not transactional in either backend.
	DeleteByUserID(ctx context.Context, userID string) error
}

// New picks the backend configured for this process.
func New(config *config.Config, db *mongo.Connection, otel otel.Otel) Todo {
	if config.Storage.Backend == constant.StorageBackendDurable {
		return NewMongo(db, otel)
	}

	return NewMemory(otel)
}
