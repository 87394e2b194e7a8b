package repository

import (
	"context"
	"sort"
	"sync"

	"checklist/infras/otel"
	"checklist/internal/domains/todo/model"
	"checklist/shared/constant"
	"checklist/shared/failure"
)

// memoryImpl keeps everything in process memory for the process lifetime.
// The mutex gives per-operation atomicity only; a read-patch-write sequence
// spanning two calls can still lose a concurrent update, same as the durable
// backend.
type memoryImpl struct {
	mu    sync.RWMutex
	lists map[string]model.List
	items map[string]model.Item
	otel  otel.Otel
}

func NewMemory(otel otel.Otel) Todo {
	return &memoryImpl{
		lists: map[string]model.List{},
		items: map[string]model.Item{},
		otel:  otel,
	}
}

func (r *memoryImpl) InsertList(ctx context.Context, list model.List) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.InsertList")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lists[list.ID] = list

	return nil
}

func (r *memoryImpl) FindListByID(ctx context.Context, id string) (*model.List, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.FindListByID")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	list, ok := r.lists[id]
	if !ok {
		return nil, nil
	}

	return &list, nil
}

func (r *memoryImpl) UpdateList(ctx context.Context, list model.List) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.UpdateList")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lists[list.ID]; !ok {
		return failure.NotFound(model.ListEntityName)
	}

	r.lists[list.ID] = list

	return nil
}

func (r *memoryImpl) DeleteListByID(ctx context.Context, id string) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.DeleteListByID")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.lists, id)
	r.deleteItemsOfLocked(id)

	return nil
}

func (r *memoryImpl) FindListsWithStats(ctx context.Context, userID string) ([]model.ListWithStats, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.FindListsWithStats")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := make([]model.List, 0)
	for _, list := range r.lists {
		if list.UserID == userID {
			owned = append(owned, list)
		}
	}

	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	results := make([]model.ListWithStats, len(owned))
	for i, list := range owned {
		stats := model.ListStats{}
		for _, item := range r.items {
			if item.ListID != list.ID {
				continue
			}
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

func (r *memoryImpl) InsertItem(ctx context.Context, item model.Item) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.InsertItem")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item

	return nil
}

func (r *memoryImpl) FindItemByID(ctx context.Context, id string) (*model.Item, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.FindItemByID")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}

	return &item, nil
}

func (r *memoryImpl) UpdateItem(ctx context.Context, item model.Item) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.UpdateItem")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return failure.NotFound(model.ItemEntityName)
	}

	r.items[item.ID] = item

	return nil
}

func (r *memoryImpl) DeleteItemByID(ctx context.Context, id string) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.DeleteItemByID")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)

	return nil
}

func (r *memoryImpl) FindItemsWhere(ctx context.Context, listID string, filter model.ItemFilter, order model.ItemSort) ([]model.Item, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.FindItemsWhere")
	defer scope.End()

	scope.SetAttribute(constant.OtelFilterAttributeKey, string(filter))

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]model.Item, 0)
	for _, item := range r.items {
		if item.ListID == listID && filter.Matches(item) {
			matched = append(matched, item)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return order.Less(matched[i], matched[j])
	})

	return matched, nil
}

func (r *memoryImpl) DeleteByUserID(ctx context.Context, userID string) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".todo.DeleteByUserID")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, list := range r.lists {
		if list.UserID != userID {
			continue
		}

		delete(r.lists, id)
		r.deleteItemsOfLocked(id)
	}

	return nil
}

// caller must hold the write lock
func (r *memoryImpl) deleteItemsOfLocked(listID string) {
	for id, item := range r.items {
		if item.ListID == listID {
			delete(r.items, id)
		}
	}
}
