package todo

import (
	"net/http"

	"checklist/infras/otel"
	"checklist/internal/domains/todo/model"
	"checklist/internal/domains/todo/model/dto"
	"checklist/internal/domains/todo/service"
	"checklist/shared/constant"
	"checklist/shared/validator"
	"checklist/transport/http/middleware"
	"checklist/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.TodoList
	middleware middleware.Session
	otel       otel.Otel
}

func New(service service.TodoList, middleware middleware.Session, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todo-lists", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Authenticated)

		routerGroup.Post("/", handler.CreateList)
		routerGroup.Get("/", handler.GetLists)
		routerGroup.Post("/seed", handler.Seed)
		routerGroup.Get("/{id}", handler.GetList)
		routerGroup.Patch("/{id}", handler.PatchList)
		routerGroup.Delete("/{id}", handler.DeleteList)
	})

	router.Route("/todo-items", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Authenticated)

		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Patch("/{id}", handler.PatchItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
	})
}

func (handler *Handler) CreateList(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateList")
	defer scope.End()

	req := dto.CreateListRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateList(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create list")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetLists returns the caller's lists, each annotated with active and
// completed item counts.
func (handler *Handler) GetLists(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLists")
	defer scope.End()

	res, err := handler.service.GetLists(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lists")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) GetList(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetList")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetList(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) PatchList(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PatchList")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.PatchListRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.PatchList(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to patch list")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) DeleteList(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteList")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.DeleteList(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete list")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "List deleted")
}

// Seed fills the caller's account with demo data.
func (handler *Handler) Seed(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Seed")
	defer scope.End()

	res, err := handler.service.Seed(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to seed account")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) CreateItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateItem(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetItems lists the items of one list. Filter defaults to All and sort to
// NewestFirst when the query leaves them out; a value outside the enums is
// rejected, never defaulted.
func (handler *Handler) GetItems(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	query := dto.ItemQuery{
		ListID: request.URL.Query().Get(constant.RequestParamListID),
		Filter: model.FilterAll,
		Sort:   model.SortNewestFirst,
	}
	if raw := request.URL.Query().Get(constant.RequestParamFilter); raw != "" {
		query.Filter = model.ItemFilter(raw)
	}
	if raw := request.URL.Query().Get(constant.RequestParamSort); raw != "" {
		query.Sort = model.ItemSort(raw)
	}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetItems(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get items")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) PatchItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PatchItem")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.PatchItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.PatchItem(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to patch item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) DeleteItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.DeleteItem(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete item")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Item deleted")
}
