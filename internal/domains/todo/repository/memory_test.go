package repository_test

import (
	"context"
	"testing"
	"time"

	"checklist/infras/otel/mocks"
	"checklist/internal/domains/todo/model"
	"checklist/internal/domains/todo/repository"
	"checklist/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(id, userID, title string, createdAt time.Time) model.List {
	return model.List{ID: id, UserID: userID, Title: title, CreatedAt: createdAt}
}

func newItem(id, listID, text string, completed bool, createdAt time.Time) model.Item {
	return model.Item{ID: id, ListID: listID, Text: text, IsCompleted: completed, CreatedAt: createdAt}
}

func TestMemoryRepo_FindAbsentReturnsNil(t *testing.T) {
	repo := repository.NewMemory(mocks.NewOtel())
	ctx := context.Background()

	list, err := repo.FindListByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, list)

	item, err := repo.FindItemByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestMemoryRepo_InsertAndFind(t *testing.T) {
	repo := repository.NewMemory(mocks.NewOtel())
	ctx := context.Background()
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.InsertList(ctx, newList("L1", "U1", "Groceries", createdAt)))
	require.NoError(t, repo.InsertItem(ctx, newItem("I1", "L1", "Buy milk", false, createdAt)))

	list, err := repo.FindListByID(ctx, "L1")
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, "Groceries", list.Title)

	item, err := repo.FindItemByID(ctx, "I1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Buy milk", item.Text)
}

func TestMemoryRepo_UpdateMissingFailsNotFound(t *testing.T) {
	repo := repository.NewMemory(mocks.NewOtel())
	ctx := context.Background()

	err := repo.UpdateList(ctx, newList("L1", "U1", "Groceries", time.Now()))
	assert.True(t, failure.IsNotFound(err))

	err = repo.UpdateItem(ctx, newItem("I1", "L1", "Buy milk", false, time.Now()))
	assert.True(t, failure.IsNotFound(err))
}

func TestMemoryRepo_DeleteIsIdempotent(t *testing.T) {
	repo := repository.NewMemory(mocks.NewOtel())
	ctx := context.Background()

	assert.NoError(t, repo.DeleteListByID(ctx, "missing"))
	assert.NoError(t, repo.DeleteItemByID(ctx, "missing"))
	assert.NoError(t, repo.DeleteByUserID(ctx, "missing"))
}

func TestMemoryRepo_FindItemsWhere_FilterAndSort(t *testing.T) {
	repo := repository.NewMemory(mocks.NewOtel())
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.InsertItem(ctx, newItem("I1", "L1", "oldest active", false, base)))
	require.NoError(t, repo.InsertItem(ctx, newItem("I2", "L1", "completed", true, base.Add(time.Minute))))
	require.NoError(t, repo.InsertItem(ctx, newItem("I3", "L1", "newest active", false, base.Add(2*time.Minute))))
	require.NoError(t, repo.InsertItem(ctx, newItem("I4", "L2", "other list", false, base.Add(3*time.Minute))))

	items, err := repo.FindItemsWhere(ctx, "L1", model.FilterActive, model.SortNewestFirst)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "I3", items[0].ID)
	assert.Equal(t, "I1", items[1].ID)

	items, err = repo.FindItemsWhere(ctx, "L1", model.FilterAll, model.SortOldestFirst)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"I1", "I2", "I3"}, []string{items[0].ID, items[1].ID, items[2].ID})

	items, err = repo.FindItemsWhere(ctx, "L1", model.FilterCompleted, model.SortOldestFirst)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "I2", items[0].ID)
}

func TestMemoryRepo_FindListsWithStats(t *testing.T) {
	repo := repository.NewMemory(mocks.NewOtel())
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.InsertList(ctx, newList("L1", "U1", "List A", base)))
	require.NoError(t, repo.InsertList(ctx, newList("L2", "U1", "List B", base.Add(time.Hour))))
	require.NoError(t, repo.InsertList(ctx, newList("L3", "U2", "Someone else", base)))

	require.NoError(t, repo.InsertItem(ctx, newItem("I1", "L1", "active one", false, base)))
	require.NoError(t, repo.InsertItem(ctx, newItem("I2", "L1", "active two", false, base)))
	require.NoError(t, repo.InsertItem(ctx, newItem("I3", "L1", "completed", true, base)))

	lists, err := repo.FindListsWithStats(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, lists, 2)

	// newest list first
	assert.Equal(t, "L2", lists[0].ID)
	assert.Equal(t, 0, lists[0].ActiveCount)
	assert.Equal(t, 0, lists[0].CompletedCount)

	assert.Equal(t, "L1", lists[1].ID)
	assert.Equal(t, 2, lists[1].ActiveCount)
	assert.Equal(t, 1, lists[1].CompletedCount)
}

func TestMemoryRepo_DeleteListCascadesToItems(t *testing.T) {
	repo := repository.NewMemory(mocks.NewOtel())
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.InsertList(ctx, newList("L1", "U1", "List A", base)))
	require.NoError(t, repo.InsertItem(ctx, newItem("I1", "L1", "active item", false, base)))
	require.NoError(t, repo.InsertItem(ctx, newItem("I2", "L1", "completed item", true, base.Add(time.Minute))))

	lists, err := repo.FindListsWithStats(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, 1, lists[0].ActiveCount)
	assert.Equal(t, 1, lists[0].CompletedCount)

	require.NoError(t, repo.DeleteListByID(ctx, "L1"))

	items, err := repo.FindItemsWhere(ctx, "L1", model.FilterAll, model.SortOldestFirst)
	require.NoError(t, err)
	assert.Empty(t, items)

	for _, id := range []string{"I1", "I2"} {
		item, err := repo.FindItemByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, item)
	}
}

func TestMemoryRepo_DeleteByUserID(t *testing.T) {
	repo := repository.NewMemory(mocks.NewOtel())
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.InsertList(ctx, newList("L1", "U1", "Mine", base)))
	require.NoError(t, repo.InsertList(ctx, newList("L2", "U2", "Theirs", base)))
	require.NoError(t, repo.InsertItem(ctx, newItem("I1", "L1", "my item", false, base)))
	require.NoError(t, repo.InsertItem(ctx, newItem("I2", "L2", "their item", false, base)))

	require.NoError(t, repo.DeleteByUserID(ctx, "U1"))

	mine, err := repo.FindListByID(ctx, "L1")
	require.NoError(t, err)
	assert.Nil(t, mine)

	myItem, err := repo.FindItemByID(ctx, "I1")
	require.NoError(t, err)
	assert.Nil(t, myItem)

	theirs, err := repo.FindListByID(ctx, "L2")
	require.NoError(t, err)
	assert.NotNil(t, theirs)

	theirItem, err := repo.FindItemByID(ctx, "I2")
	require.NoError(t, err)
	assert.NotNil(t, theirItem)
}
