package repository

import (
	"context"

	"checklist/config"
	"checklist/infras/mongo"
	"checklist/infras/otel"
	"checklist/internal/domains/user/model"
	"checklist/shared/constant"
)

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

// User is the storage contract for accounts, password credentials and
// sessions. Lookups of an absent record return (nil, nil).
type User interface {
	InsertUser(ctx context.Context, user model.User) error
	FindUserByID(ctx context.Context, id string) (*model.User, error)
	FindUserByEmail(ctx context.Context, emailAddress string) (*model.User, error)
	UpdateUser(ctx context.Context, user model.User) error

	InsertPassword(ctx context.Context, cred model.PasswordCred) error
	FindPasswordByUserID(ctx context.Context, userID string) (*model.PasswordCred, error)

	InsertSession(ctx context.Context, session model.Session) error
	FindSessionByID(ctx context.Context, id string) (*model.Session, error)
	DeleteSessionByID(ctx context.Context, id string) error

	// DeleteByUserID removes the user, their password credential and all of
	// their sessions. Not transactional in either backend.
	DeleteByUserID(ctx context.Context, userID string) error
}

// New picks the backend configured for this process.
func New(config *config.Config, db *mongo.Connection, otel otel.Otel) User {
	if config.Storage.Backend == constant.StorageBackendDurable {
		return NewMongo(db, otel)
	}

	return NewMemory(otel)
}
