package service

import (
	"context"
	"fmt"
	"time"

	"checklist/config"
	"checklist/infras/otel"
	"checklist/internal/domains/todo/model"
	"checklist/internal/domains/todo/model/dto"
	"checklist/internal/domains/todo/repository"
	"checklist/internal/events"
	"checklist/shared/constant"
	"checklist/shared/failure"
	"checklist/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	seedListTitles = []string{"List A", "List B", "List C", "List D", "List E"}
	seedItemTexts  = []string{
		"Learn Vue.js",
		"Learn Vue.js composition API",
		"Go to the gym",
		"Hook up dynamodb",
		"Go to the store",
		"Add user auth",
	}
)

type TodoList interface {
	CreateList(ctx context.Context, req dto.CreateListRequest) (dto.ListResponse, error)
	GetList(ctx context.Context, id string) (dto.ListResponse, error)
	GetLists(ctx context.Context) ([]dto.ListWithStatsResponse, error)
	PatchList(ctx context.Context, id string, req dto.PatchListRequest) (dto.ListResponse, error)
	DeleteList(ctx context.Context, id string) error

	CreateItem(ctx context.Context, req dto.CreateItemRequest) (dto.ItemResponse, error)
	GetItems(ctx context.Context, query dto.ItemQuery) ([]dto.ItemResponse, error)
	PatchItem(ctx context.Context, id string, req dto.PatchItemRequest) (dto.ItemResponse, error)
	DeleteItem(ctx context.Context, id string) error

	Seed(ctx context.Context) ([]dto.ListWithStatsResponse, error)
}

type serviceImpl struct {
	repo repository.Todo
	cfg  *config.Config
	otel otel.Otel
}

// New wires the service and subscribes it to account deletions so the todo
// side of the cascade runs whenever a user is removed.
func New(repo repository.Todo, cfg *config.Config, broker events.Broker, otl otel.Otel) TodoList {
	s := &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
	}

	broker.Subscribe(func(event events.Event) {
		if event.Type != events.UserDeleted {
			return
		}

		if err := s.repo.DeleteByUserID(context.Background(), event.UserID); err != nil {
			log.Error().Err(err).Str("userId", event.UserID).Msg("failed to delete todo data for removed user")
		}
	})

	return s
}

func (s *serviceImpl) CreateList(ctx context.Context, req dto.CreateListRequest) (res dto.ListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.CreateList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	list := req.ToModel(userID)

	if err = s.repo.InsertList(ctx, list); err != nil {
		log.Error().Err(err).Msg("failed to create list")

		return res, fmt.Errorf("failed to create list: %w", err)
	}

	res.FromModel(list)

	return res, nil
}

func (s *serviceImpl) GetList(ctx context.Context, id string) (res dto.ListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.GetList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	list, err := s.repo.FindListByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get list")

		return res, fmt.Errorf("failed to get list: %w", err)
	}
	if list == nil {
		return res, failure.NotFound(model.ListEntityName)
	}

	res.FromModel(*list)

	return res, nil
}

func (s *serviceImpl) GetLists(ctx context.Context) (res []dto.ListWithStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.GetLists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	lists, err := s.repo.FindListsWithStats(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lists")

		return nil, fmt.Errorf("failed to get lists: %w", err)
	}

	res = make([]dto.ListWithStatsResponse, len(lists))
	for i, list := range lists {
		res[i].FromModel(list)
	}

	return res, nil
}

func (s *serviceImpl) PatchList(ctx context.Context, id string, req dto.PatchListRequest) (res dto.ListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.PatchList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	existing, err := s.repo.FindListByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to read list for patch")

		return res, fmt.Errorf("failed to read list for patch: %w", err)
	}
	if existing == nil {
		return res, failure.NotFound(model.ListEntityName)
	}

	updated := req.ToPatch().Apply(*existing)

	if err = s.repo.UpdateList(ctx, updated); err != nil {
		log.Error().Err(err).Msg("failed to update list")

		return res, fmt.Errorf("failed to update list: %w", err)
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) DeleteList(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.DeleteList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.DeleteListByID(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete list")

		return fmt.Errorf("failed to delete list: %w", err)
	}

	return nil
}

func (s *serviceImpl) CreateItem(ctx context.Context, req dto.CreateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.CreateItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	list, err := s.repo.FindListByID(ctx, req.ListID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check owning list")

		return res, fmt.Errorf("failed to check owning list: %w", err)
	}
	if list == nil {
		return res, failure.BadRequestFromString("listId does not reference an existing list")
	}

	item := req.ToModel()

	if err = s.repo.InsertItem(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create item")

		return res, fmt.Errorf("failed to create item: %w", err)
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) GetItems(ctx context.Context, query dto.ItemQuery) (res []dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.GetItems")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	items, err := s.repo.FindItemsWhere(ctx, query.ListID, query.Filter, query.Sort)
	if err != nil {
		log.Error().Err(err).Msg("failed to get items")

		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	res = make([]dto.ItemResponse, len(items))
	for i, item := range items {
		res[i].FromModel(item)
	}

	return res, nil
}

func (s *serviceImpl) PatchItem(ctx context.Context, id string, req dto.PatchItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.PatchItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	existing, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to read item for patch")

		return res, fmt.Errorf("failed to read item for patch: %w", err)
	}
	if existing == nil {
		return res, failure.NotFound(model.ItemEntityName)
	}

	updated := req.ToPatch().Apply(*existing)

	if err = s.repo.UpdateItem(ctx, updated); err != nil {
		log.Error().Err(err).Msg("failed to update item")

		return res, fmt.Errorf("failed to update item: %w", err)
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) DeleteItem(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.DeleteItem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.DeleteItemByID(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete item")

		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

// Seed populates the caller's account with demo lists and items, newest
// list first, each item a minute older than the previous one.
func (s *serviceImpl) Seed(ctx context.Context) (res []dto.ListWithStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Seed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	for listIndex, title := range seedListTitles {
		list := model.List{
			ID:        uuid.NewString(),
			UserID:    userID,
			Title:     title,
			CreatedAt: now.Add(-time.Duration(listIndex) * time.Minute),
		}

		if err = s.repo.InsertList(ctx, list); err != nil {
			log.Error().Err(err).Msg("failed to seed list")

			return nil, fmt.Errorf("failed to seed list: %w", err)
		}

		for itemIndex, text := range seedItemTexts {
			item := model.Item{
				ID:          uuid.NewString(),
				ListID:      list.ID,
				Text:        text,
				IsCompleted: false,
				CreatedAt:   now.Add(-time.Duration(itemIndex) * time.Minute),
			}

			if err = s.repo.InsertItem(ctx, item); err != nil {
				log.Error().Err(err).Msg("failed to seed item")

				return nil, fmt.Errorf("failed to seed item: %w", err)
			}
		}
	}

	return s.GetLists(ctx)
}
