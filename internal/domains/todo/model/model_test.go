package model_test

import (
	"testing"
	"time"

	"checklist/internal/domains/todo/model"

	"github.com/stretchr/testify/assert"
)

func TestItemPatch_Apply(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	existing := model.Item{
		ID:          "item-1",
		ListID:      "list-1",
		Text:        "Buy milk",
		IsCompleted: false,
		CreatedAt:   createdAt,
	}

	t.Run("empty patch returns the entity unchanged", func(t *testing.T) {
		assert.Equal(t, existing, model.ItemPatch{}.Apply(existing))
	})

	t.Run("patched fields override, others survive", func(t *testing.T) {
		text := "Buy oat milk"
		completed := true

		updated := model.ItemPatch{Text: &text, IsCompleted: &completed}.Apply(existing)

		assert.Equal(t, "Buy oat milk", updated.Text)
		assert.True(t, updated.IsCompleted)
		assert.Equal(t, existing.CreatedAt, updated.CreatedAt)
	})

	t.Run("identity and ownership are preserved", func(t *testing.T) {
		newTime := createdAt.Add(time.Hour)

		updated := model.ItemPatch{CreatedAt: &newTime}.Apply(existing)

		assert.Equal(t, "item-1", updated.ID)
		assert.Equal(t, "list-1", updated.ListID)
		assert.Equal(t, newTime, updated.CreatedAt)
	})
}

func TestListPatch_Apply(t *testing.T) {
	existing := model.List{
		ID:        "list-1",
		UserID:    "user-1",
		Title:     "Groceries",
		CreatedAt: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
	}

	t.Run("empty patch returns the entity unchanged", func(t *testing.T) {
		assert.Equal(t, existing, model.ListPatch{}.Apply(existing))
	})

	t.Run("only the title changes", func(t *testing.T) {
		title := "Weekly groceries"

		updated := model.ListPatch{Title: &title}.Apply(existing)

		assert.Equal(t, "Weekly groceries", updated.Title)
		assert.Equal(t, "list-1", updated.ID)
		assert.Equal(t, "user-1", updated.UserID)
		assert.Equal(t, existing.CreatedAt, updated.CreatedAt)
	})
}

func TestItemFilter_Matches(t *testing.T) {
	active := model.Item{IsCompleted: false}
	completed := model.Item{IsCompleted: true}

	assert.True(t, model.FilterAll.Matches(active))
	assert.True(t, model.FilterAll.Matches(completed))
	assert.True(t, model.FilterActive.Matches(active))
	assert.False(t, model.FilterActive.Matches(completed))
	assert.False(t, model.FilterCompleted.Matches(active))
	assert.True(t, model.FilterCompleted.Matches(completed))
}

func TestItemSort_Less(t *testing.T) {
	older := model.Item{CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	newer := model.Item{CreatedAt: time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)}

	assert.True(t, model.SortOldestFirst.Less(older, newer))
	assert.False(t, model.SortOldestFirst.Less(newer, older))
	assert.True(t, model.SortNewestFirst.Less(newer, older))
	assert.False(t, model.SortNewestFirst.Less(older, newer))

	// ties report false both ways so stable sorts keep insertion order
	assert.False(t, model.SortNewestFirst.Less(older, older))
	assert.False(t, model.SortOldestFirst.Less(older, older))
}
