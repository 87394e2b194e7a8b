package dto

import (
	"checklist/internal/domains/todo/model"
	"checklist/shared/timezone"
)

type CreateListRequest struct {
	ID        string                `json:"id" validate:"required,uuid"`
	Title     string                `json:"title" validate:"required,min=4,max=100"`
	CreatedAt timezone.FlexibleTime `json:"createdAt" validate:"required"`
}

// ToModel builds the list entity. Ownership comes from the session, never
// from the payload.
func (c *CreateListRequest) ToModel(userID string) model.List {
	return model.List{
		ID:        c.ID,
		UserID:    userID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt.Time,
	}
}

type PatchListRequest struct {
	Title *string `json:"title" validate:"omitempty,min=4,max=100"`
}

func (p *PatchListRequest) ToPatch() model.ListPatch {
	return model.ListPatch{Title: p.Title}
}

type CreateItemRequest struct {
	ID          string                `json:"id" validate:"required,uuid"`
	ListID      string                `json:"listId" validate:"required,uuid"`
	Text        string                `json:"text" validate:"required,min=4,max=100"`
	IsCompleted bool                  `json:"isCompleted"`
	CreatedAt   timezone.FlexibleTime `json:"createdAt" validate:"required"`
}

func (c *CreateItemRequest) ToModel() model.Item {
	return model.Item{
		ID:          c.ID,
		ListID:      c.ListID,
		Text:        c.Text,
		IsCompleted: c.IsCompleted,
		CreatedAt:   c.CreatedAt.Time,
	}
}

type PatchItemRequest struct {
	Text        *string                `json:"text" validate:"omitempty,min=4,max=100"`
	IsCompleted *bool                  `json:"isCompleted"`
	CreatedAt   *timezone.FlexibleTime `json:"createdAt"`
}

func (p *PatchItemRequest) ToPatch() model.ItemPatch {
	patch := model.ItemPatch{
		Text:        p.Text,
		IsCompleted: p.IsCompleted,
	}
	if p.CreatedAt != nil {
		patch.CreatedAt = &p.CreatedAt.Time
	}

	return patch
}

type ItemQuery struct {
	ListID string           `validate:"required,uuid"`
	Filter model.ItemFilter `validate:"required,oneof=All Active Completed"`
	Sort   model.ItemSort   `validate:"required,oneof=OldestFirst NewestFirst"`
}

type ItemResponse struct {
	ID          string `json:"id"`
	ListID      string `json:"listId"`
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
	CreatedAt   string `json:"createdAt"`
}

func (r *ItemResponse) FromModel(item model.Item) {
	r.ID = item.ID
	r.ListID = item.ListID
	r.Text = item.Text
	r.IsCompleted = item.IsCompleted
	r.CreatedAt = timezone.NewFlexibleTime(item.CreatedAt).String()
}

type ListResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
}

func (r *ListResponse) FromModel(list model.List) {
	r.ID = list.ID
	r.UserID = list.UserID
	r.Title = list.Title
	r.CreatedAt = timezone.NewFlexibleTime(list.CreatedAt).String()
}

type ListWithStatsResponse struct {
	ListResponse
	ActiveCount    int `json:"activeCount"`
	CompletedCount int `json:"completedCount"`
}

func (r *ListWithStatsResponse) FromModel(list model.ListWithStats) {
	r.ListResponse.FromModel(list.List)
	r.ActiveCount = list.ActiveCount
	r.CompletedCount = list.CompletedCount
}
