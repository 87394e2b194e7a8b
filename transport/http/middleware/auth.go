package middleware

import (
	"context"
	"net/http"

	"checklist/infras/otel"
	"checklist/internal/domains/user/service"
	"checklist/shared/constant"
	"checklist/shared/failure"
	"checklist/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Session guards routes that need a signed-in caller.
type Session interface {
	Authenticated(next http.Handler) http.Handler
}

type sessionImpl struct {
	users service.User
	otel  otel.Otel
}

func NewSessionMiddleware(users service.User, otel otel.Otel) Session {
	return &sessionImpl{
		users: users,
		otel:  otel,
	}
}

// SessionID extracts the caller's session id from the request, preferring
// the header over the query string.
func SessionID(r *http.Request) string {
	if id := r.Header.Get(constant.RequestHeaderSessionID); id != "" {
		return id
	}

	return r.URL.Query().Get(constant.RequestParamSession)
}

// Authenticated resolves the session id to a user and stores both ids in the
// request context. Requests without a resolvable session get a 401.
func (m *sessionImpl) Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "session.middleware")
		defer scope.End()

		sessionID := SessionID(request)
		if sessionID == "" {
			response.WithError(writer, failure.Unauthorized("session id is required"))

			return
		}

		current, err := m.users.CurrentSession(ctx, sessionID)
		if err != nil {
			scope.TraceError(err)
			log.Debug().Err(err).Msg("session resolution failed")

			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeySessionID, sessionID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, current.UserID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
