package repository

import (
	"context"
	"errors"

	"checklist/infras/mongo"
	"checklist/infras/otel"
	"checklist/internal/domains/user/model"
	"checklist/shared/constant"
	"checklist/shared/failure"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodrv "go.mongodb.org/mongo-driver/v2/mongo"
)

type mongoImpl struct {
	users     *mongodrv.Collection
	passwords *mongodrv.Collection
	sessions  *mongodrv.Collection
	otel      otel.Otel
}

func NewMongo(db *mongo.Connection, otel otel.Otel) User {
	return &mongoImpl{
		users:     db.DB.Collection(model.UserCollectionName),
		passwords: db.DB.Collection(model.PasswordCollectionName),
		sessions:  db.DB.Collection(model.SessionCollectionName),
		otel:      otel,
	}
}

func (r *mongoImpl) InsertUser(ctx context.Context, user model.User) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.InsertUser")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.UserCollectionName)

	_, err := r.users.InsertOne(ctx, user)

	return err
}

func (r *mongoImpl) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.FindUserByID")
	defer scope.End()

	return r.findUser(ctx, bson.M{"id": id})
}

func (r *mongoImpl) FindUserByEmail(ctx context.Context, emailAddress string) (*model.User, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.FindUserByEmail")
	defer scope.End()

	return r.findUser(ctx, bson.M{"emailAddress": emailAddress})
}

func (r *mongoImpl) findUser(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *mongoImpl) UpdateUser(ctx context.Context, user model.User) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.UpdateUser")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.UserCollectionName)

	result, err := r.users.UpdateOne(ctx, bson.M{"id": user.ID}, bson.M{"$set": user})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return failure.NotFound(model.EntityName)
	}

	return nil
}

func (r *mongoImpl) InsertPassword(ctx context.Context, cred model.PasswordCred) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.InsertPassword")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.PasswordCollectionName)

	_, err := r.passwords.InsertOne(ctx, cred)

	return err
}

func (r *mongoImpl) FindPasswordByUserID(ctx context.Context, userID string) (*model.PasswordCred, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.FindPasswordByUserID")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.PasswordCollectionName)

	var cred model.PasswordCred
	err := r.passwords.FindOne(ctx, bson.M{"userId": userID}).Decode(&cred)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &cred, nil
}

func (r *mongoImpl) InsertSession(ctx context.Context, session model.Session) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.InsertSession")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.SessionCollectionName)

	_, err := r.sessions.InsertOne(ctx, session)

	return err
}

func (r *mongoImpl) FindSessionByID(ctx context.Context, id string) (*model.Session, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.FindSessionByID")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.SessionCollectionName)

	var session model.Session
	err := r.sessions.FindOne(ctx, bson.M{"id": id}).Decode(&session)
	if errors.Is(err, mongodrv.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *mongoImpl) DeleteSessionByID(ctx context.Context, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.DeleteSessionByID")
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, model.SessionCollectionName)

	_, err := r.sessions.DeleteOne(ctx, bson.M{"id": id})

	return err
}

// DeleteByUserID issues one delete per collection. Not transactional; a
// failure in between can leave a credential or session behind.
func (r *mongoImpl) DeleteByUserID(ctx context.Context, userID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.DeleteByUserID")
	defer scope.End()

	if _, err := r.users.DeleteMany(ctx, bson.M{"id": userID}); err != nil {
		return err
	}

	if _, err := r.passwords.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return err
	}

	_, err := r.sessions.DeleteMany(ctx, bson.M{"userId": userID})

	return err
}
