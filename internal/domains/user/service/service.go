package service

import (
	"context"
	"errors"
	"fmt"

	"checklist/config"
	"checklist/infras/otel"
	"checklist/internal/domains/user/model"
	"checklist/internal/domains/user/model/dto"
	"checklist/internal/domains/user/repository"
	"checklist/internal/events"
	"checklist/shared"
	"checklist/shared/cache"
	"checklist/shared/constant"
	"checklist/shared/failure"
	"checklist/shared/password"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type User interface {
	Signup(ctx context.Context, req dto.SignupRequest) (dto.SessionResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.SessionResponse, error)
	CurrentSession(ctx context.Context, sessionID string) (dto.CurrentSessionResponse, error)
	Logout(ctx context.Context, sessionID string) error

	GetUser(ctx context.Context, id string) (dto.UserResponse, error)
	PatchUser(ctx context.Context, id string, req dto.PatchUserRequest) (dto.UserResponse, error)

	// DeleteEverything removes the account and everything it owns. The todo
	// side of the cascade runs through the event broker.
	DeleteEverything(ctx context.Context, userID string) error
}

type serviceImpl struct {
	repo   repository.User
	cfg    *config.Config
	cache  cache.Cache
	broker events.Broker
	otel   otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.Cache, broker events.Broker, otl otel.Otel) User {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		broker: broker,
		otel:   otl,
	}
}

// Signup creates the credential, the account and a first session in that
// order. The email uniqueness check is find-before-insert; two concurrent
// signups for the same address can race past it. The store has no unique
// constraint to fall back on, which mirrors how the account flow has always
// behaved.
func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Signup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	existing, err := s.repo.FindUserByEmail(ctx, req.EmailAddress)
	if err != nil {
		log.Error().Err(err).Msg("failed to check email address")

		return res, fmt.Errorf("failed to check email address: %w", err)
	}
	if existing != nil {
		return res, failure.Conflict("email address already taken")
	}

	user := req.ToModel()

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.InsertPassword(ctx, model.PasswordCred{UserID: user.ID, PasswordHash: hash}); err != nil {
		log.Error().Err(err).Msg("failed to save password credential")

		return res, fmt.Errorf("failed to save password credential: %w", err)
	}

	if err = s.repo.InsertUser(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to save user")

		return res, fmt.Errorf("failed to save user: %w", err)
	}

	s.broker.Publish(ctx, events.Event{Type: events.UserCreated, UserID: user.ID})

	session := model.Session{ID: uuid.NewString(), UserID: user.ID}
	if err = s.repo.InsertSession(ctx, session); err != nil {
		log.Error().Err(err).Str("userId", user.ID).Msg("account created but initial session failed")

		return res, fmt.Errorf("account created but initial session failed: %w", err)
	}

	res.SessionID = session.ID

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.FindUserByEmail(ctx, req.EmailAddress)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up account")

		return res, fmt.Errorf("failed to look up account: %w", err)
	}
	if user == nil {
		return res, failure.NotFound(model.EntityName)
	}

	cred, err := s.repo.FindPasswordByUserID(ctx, user.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up credential")

		return res, fmt.Errorf("failed to look up credential: %w", err)
	}
	if cred == nil {
		log.Error().Str("userId", user.ID).Msg("account exists without a password credential")

		return res, failure.InternalError(errors.New("account exists without a password credential"))
	}

	if err = password.Verify(req.Password, cred.PasswordHash); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return res, failure.Unauthorized("wrong password")
		}

		return res, fmt.Errorf("failed to verify password: %w", err)
	}

	session := model.Session{ID: uuid.NewString(), UserID: user.ID}
	if err = s.repo.InsertSession(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to create session")

		return res, fmt.Errorf("failed to create session: %w", err)
	}

	res.SessionID = session.ID

	return res, nil
}

// CurrentSession resolves a session id to its user, reading through the
// cache. A session unknown to both cache and store is unauthorized.
func (s *serviceImpl) CurrentSession(ctx context.Context, sessionID string) (res dto.CurrentSessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.CurrentSession")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.BuildCacheKey(model.SessionEntityName, sessionID)

	var cached model.Session
	if err = s.cache.Get(ctx, key, &cached); err == nil {
		res.UserID = cached.UserID

		return res, nil
	}
	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Msg("session cache read failed, falling back to store")
	}

	session, err := s.repo.FindSessionByID(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up session")

		return res, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return res, failure.Unauthorized("session not found")
	}

	if err = s.cache.Save(ctx, key, session, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to cache session")
	}

	res.UserID = session.UserID

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, sessionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.DeleteSessionByID(ctx, sessionID); err != nil {
		log.Error().Err(err).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	if err = s.cache.Delete(ctx, shared.BuildCacheKey(model.SessionEntityName, sessionID)); err != nil {
		log.Warn().Err(err).Msg("failed to drop cached session")
	}

	return nil
}

func (s *serviceImpl) GetUser(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return res, failure.NotFound(model.EntityName)
	}

	res.FromModel(*user)

	return res, nil
}

func (s *serviceImpl) PatchUser(ctx context.Context, id string, req dto.PatchUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.PatchUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	existing, err := s.repo.FindUserByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to read user for patch")

		return res, fmt.Errorf("failed to read user for patch: %w", err)
	}
	if existing == nil {
		return res, failure.NotFound(model.EntityName)
	}

	updated := req.ToPatch().Apply(*existing)

	if err = s.repo.UpdateUser(ctx, updated); err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return res, fmt.Errorf("failed to update user: %w", err)
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) DeleteEverything(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.DeleteEverything")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.DeleteByUserID(ctx, userID); err != nil {
		log.Error().Err(err).Msg("failed to delete account data")

		return fmt.Errorf("failed to delete account data: %w", err)
	}

	// cached sessions for this user expire by TTL; their ids are not
	// recoverable from the store after the delete above
	s.broker.Publish(ctx, events.Event{Type: events.UserDeleted, UserID: userID})

	return nil
}
