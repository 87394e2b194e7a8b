package user

import (
	"net/http"

	"checklist/infras/otel"
	"checklist/internal/domains/user/model/dto"
	"checklist/internal/domains/user/service"
	"checklist/shared/constant"
	"checklist/shared/failure"
	"checklist/shared/validator"
	"checklist/transport/http/middleware"
	"checklist/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.User
	middleware middleware.Session
	otel       otel.Otel
}

func New(service service.User, middleware middleware.Session, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Signup)

		routerGroup.Group(func(authed chi.Router) {
			authed.Use(handler.middleware.Authenticated)

			authed.Get("/{id}", handler.GetUser)
			authed.Patch("/{id}", handler.PatchUser)
			authed.Delete("/{id}", handler.DeleteEverything)
		})
	})

	router.Route("/sessions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Login)
		routerGroup.Get("/", handler.CurrentSession)
		routerGroup.Delete("/", handler.Logout)
	})
}

// Signup creates an account and signs the new user straight in, returning
// the first session id.
func (handler *Handler) Signup(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Signup")
	defer scope.End()

	req := dto.SignupRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Signup(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign up")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// CurrentSession resolves the caller's session id to its user id.
func (handler *Handler) CurrentSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CurrentSession")
	defer scope.End()

	sessionID := middleware.SessionID(request)
	if sessionID == "" {
		response.WithError(writer, failure.BadRequestFromString("sessionId is required"))

		return
	}

	res, err := handler.service.CurrentSession(ctx, sessionID)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	sessionID := middleware.SessionID(request)
	if sessionID == "" {
		response.WithError(writer, failure.BadRequestFromString("sessionId is required"))

		return
	}

	if err := handler.service.Logout(ctx, sessionID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Logged out")
}

func (handler *Handler) GetUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUser")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetUser(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler) PatchUser(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PatchUser")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.PatchUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.PatchUser(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to patch user")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteEverything removes the account and all data it owns, across both
// the user and todo domains.
func (handler *Handler) DeleteEverything(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEverything")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.DeleteEverything(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete account")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Account deleted")
}
