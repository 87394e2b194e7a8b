package repository

import (
	"context"
	"sync"

	"checklist/infras/otel"
	"checklist/internal/domains/user/model"
	"checklist/shared/constant"
	"checklist/shared/failure"
)

type memoryImpl struct {
	mu        sync.RWMutex
	users     map[string]model.User
	passwords map[string]model.PasswordCred
	sessions  map[string]model.Session
	otel      otel.Otel
}

func NewMemory(otel otel.Otel) User {
	return &memoryImpl{
		users:     map[string]model.User{},
		passwords: map[string]model.PasswordCred{},
		sessions:  map[string]model.Session{},
		otel:      otel,
	}
}

func (r *memoryImpl) InsertUser(ctx context.Context, user model.User) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.InsertUser")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = user

	return nil
}

func (r *memoryImpl) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.FindUserByID")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	return &user, nil
}

func (r *memoryImpl) FindUserByEmail(ctx context.Context, emailAddress string) (*model.User, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.FindUserByEmail")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.EmailAddress == emailAddress {
			found := user

			return &found, nil
		}
	}

	return nil, nil
}

func (r *memoryImpl) UpdateUser(ctx context.Context, user model.User) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.UpdateUser")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return failure.NotFound(model.EntityName)
	}

	r.users[user.ID] = user

	return nil
}

func (r *memoryImpl) InsertPassword(ctx context.Context, cred model.PasswordCred) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.InsertPassword")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.passwords[cred.UserID] = cred

	return nil
}

func (r *memoryImpl) FindPasswordByUserID(ctx context.Context, userID string) (*model.PasswordCred, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.FindPasswordByUserID")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.passwords[userID]
	if !ok {
		return nil, nil
	}

	return &cred, nil
}

func (r *memoryImpl) InsertSession(ctx context.Context, session model.Session) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.InsertSession")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = session

	return nil
}

func (r *memoryImpl) FindSessionByID(ctx context.Context, id string) (*model.Session, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.FindSessionByID")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}

	return &session, nil
}

func (r *memoryImpl) DeleteSessionByID(ctx context.Context, id string) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.DeleteSessionByID")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)

	return nil
}

func (r *memoryImpl) DeleteByUserID(ctx context.Context, userID string) error {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.DeleteByUserID")
	defer scope.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, userID)
	delete(r.passwords, userID)

	for id, session := range r.sessions {
		if session.UserID == userID {
			delete(r.sessions, id)
		}
	}

	return nil
}
