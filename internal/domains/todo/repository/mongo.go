package repository

import (
	"context"
	"errors"

	"checklist/infras/mongo"
	"checklist/infras/otel"
	"checklist/internal/domains/todo/model"
	"checklist/shared/constant"
	"checklist/shared/failure"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodrv "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type mongoImpl struct {
	lists *mongodrv.Collection
	items *mongodrv.Collection
	otel  otel.Otel
}

func NewMongo(db *mongo.Connection, otel otel.Otel) Todo {
	return &mongoImpl{
		lists: db.DB.Collection(model.ListCollectionName),
		items: db.DB.Collection(model.ItemCollectionName),
		otel:  otel,
	}
}

func (r *mongoImpl) InsertList(ctx context.Context, list model.List) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.InsertList")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.ListCollectionName)

	_, err := r.lists.InsertOne(ctx, list)

	return err
}

func (r *mongoImpl) FindListByID(ctx context.Context, id string) (*model.List, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.FindListByID")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.ListCollectionName)

	var list model.List
	err := r.lists.FindOne(ctx, bson.M{"id": id}).Decode(&list)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &list, nil
}

func (r *mongoImpl) UpdateList(ctx context.Context, list model.List) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.UpdateList")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.ListCollectionName)

	result, err := r.lists.UpdateOne(ctx, bson.M{"id": list.ID}, bson.M{"$set": list})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return failure.NotFound(model.ListEntityName)
	}

	return nil
}

// DeleteListByID removes the list and then its items with a second delete.
// The two deletes are not transactional; a failure in between leaves
// orphaned items behind.
func (r *mongoImpl) DeleteListByID(ctx context.Context, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.DeleteListByID")
	defer scope.End()

	if _, err := r.lists.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return err
	}

	_, err := r.items.DeleteMany(ctx, bson.M{"listId": id})

	return err
}

// FindListsWithStats runs one query for the lists and one item query per
// list. The N+1 shape is deliberate; see DESIGN.md.
func (r *mongoImpl) FindListsWithStats(ctx context.Context, userID string) ([]model.ListWithStats, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.FindListsWithStats")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.ListCollectionName)

	cursor, err := r.lists.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	var lists []model.List
	if err = cursor.All(ctx, &lists); err != nil {
		return nil, err
	}

	results := make([]model.ListWithStats, len(lists))
	for i, list := range lists {
		itemCursor, err := r.items.Find(ctx, bson.M{"listId": list.ID})
		if err != nil {
			return nil, err
		}

		var items []model.Item
		if err = itemCursor.All(ctx, &items); err != nil {
			return nil, err
		}

		stats := model.ListStats{}
		for _, item := range items {
			if item.IsCompleted {
				stats.CompletedCount++
			} else {
				stats.ActiveCount++
			}
		}

		results[i] = model.ListWithStats{List: list, ListStats: stats}
	}

	return results, nil
}

func (r *mongoImpl) InsertItem(ctx context.Context, item model.Item) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.InsertItem")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.ItemCollectionName)

	_, err := r.items.InsertOne(ctx, item)

	return err
}

func (r *mongoImpl) FindItemByID(ctx context.Context, id string) (*model.Item, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.FindItemByID")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.ItemCollectionName)

	var item model.Item
	err := r.items.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *mongoImpl) UpdateItem(ctx context.Context, item model.Item) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.UpdateItem")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.ItemCollectionName)

	result, err := r.items.UpdateOne(ctx, bson.M{"id": item.ID}, bson.M{"$set": item})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return failure.NotFound(model.ItemEntityName)
	}

	return nil
}

func (r *mongoImpl) DeleteItemByID(ctx context.Context, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.DeleteItemByID")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.ItemCollectionName)

	_, err := r.items.DeleteOne(ctx, bson.M{"id": id})

	return err
}

func (r *mongoImpl) FindItemsWhere(ctx context.Context, listID string, filter model.ItemFilter, order model.ItemSort) ([]model.Item, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.FindItemsWhere")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.ItemCollectionName)
	scope.SetAttribute(constant.OtelFilterAttributeKey, string(filter))

	query := bson.M{"listId": listID}
	switch filter {
	case model.FilterActive:
		query["isCompleted"] = false
	case model.FilterCompleted:
		query["isCompleted"] = true
	}

	direction := 1
	if order == model.SortNewestFirst {
		direction = -1
	}

	cursor, err := r.items.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: direction}}))
	if err != nil {
		return nil, err
	}

	items := make([]model.Item, 0)
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// DeleteByUserID first resolves the owned list ids, then issues one
// delete-many per collection. Not transactional.
func (r *mongoImpl) DeleteByUserID(ctx context.Context, userID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.DeleteByUserID")
	defer scope.End()

	cursor, err := r.lists.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return err
	}

	var lists []model.List
	if err = cursor.All(ctx, &lists); err != nil {
		return err
	}

	listIDs := make([]string, len(lists))
	for i, list := range lists {
		listIDs[i] = list.ID
	}

	if _, err = r.lists.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return err
	}

	_, err = r.items.DeleteMany(ctx, bson.M{"listId": bson.M{"$in": listIDs}})

	return err
}
