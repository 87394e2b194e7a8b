package model

import "time"

const (
	ListEntityName = "todo-list"
	ItemEntityName = "todo-item"

	ListCollectionName = "todo-lists"
	ItemCollectionName = "todo-items"
)

// ItemFilter narrows items by completion status. Values outside the set are
// rejected at validation time, never defaulted.
type ItemFilter string

const (
	FilterAll       ItemFilter = "All"
	FilterActive    ItemFilter = "Active"
	FilterCompleted ItemFilter = "Completed"
)

func (f ItemFilter) Matches(item Item) bool {
	switch f {
	case FilterActive:
		return !item.IsCompleted
	case FilterCompleted:
		return item.IsCompleted
	default:
		return true
	}
}

// ItemSort orders items by creation time.
type ItemSort string

const (
	SortOldestFirst ItemSort = "OldestFirst"
	SortNewestFirst ItemSort = "NewestFirst"
)

// Less reports whether a sorts before b. Equal timestamps report false both
// ways, so a stable sort keeps insertion order for ties.
func (s ItemSort) Less(a, b Item) bool {
	if s == SortNewestFirst {
		return a.CreatedAt.After(b.CreatedAt)
	}

	return a.CreatedAt.Before(b.CreatedAt)
}

type List struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Title     string    `bson:"title" json:"title"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Item struct {
	ID          string    `bson:"id" json:"id"`
	ListID      string    `bson:"listId" json:"listId"`
	Text        string    `bson:"text" json:"text"`
	IsCompleted bool      `bson:"isCompleted" json:"isCompleted"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// ListStats are derived at read time from the list's items, never stored.
type ListStats struct {
	ActiveCount    int `json:"activeCount"`
	CompletedCount int `json:"completedCount"`
}

type ListWithStats struct {
	List
	ListStats
}

// ListPatch is a partial update for a list. Only the title is patchable;
// identity and ownership always come from the existing entity.
type ListPatch struct {
	Title *string
}

func (p ListPatch) Apply(existing List) List {
	updated := existing
	if p.Title != nil {
		updated.Title = *p.Title
	}

	return updated
}

// ItemPatch is a partial update for an item. The id and listId of the
// existing entity are preserved regardless of the request payload.
type ItemPatch struct {
	Text        *string
	IsCompleted *bool
	CreatedAt   *time.Time
}

func (p ItemPatch) Apply(existing Item) Item {
	updated := existing
	if p.Text != nil {
		updated.Text = *p.Text
	}
	if p.IsCompleted != nil {
		updated.IsCompleted = *p.IsCompleted
	}
	if p.CreatedAt != nil {
		updated.CreatedAt = *p.CreatedAt
	}

	return updated
}
