package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"checklist/config"
	otelMocks "checklist/infras/otel/mocks"
	mocks "checklist/internal/domains/user/mocks"
	"checklist/internal/domains/user/model"
	"checklist/internal/domains/user/model/dto"
	"checklist/internal/domains/user/service"
	"checklist/internal/events"
	"checklist/shared/cache"
	cacheMocks "checklist/shared/cache/mocks"
	"checklist/shared/failure"
	"checklist/shared/password"
)

type fixture struct {
	repo   *mocks.MockUser
	cache  *cacheMocks.MockCache
	broker events.Broker
	svc    service.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockCache(ctrl)
	broker := events.NewMemory()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	return fixture{
		repo:   mockRepo,
		cache:  mockCache,
		broker: broker,
		svc:    service.New(mockRepo, cfg, mockCache, broker, otelMocks.NewOtel()),
	}
}

func TestUserService_Signup(t *testing.T) {
	t.Run("creates credential, user and session in order", func(t *testing.T) {
		f := newFixture(t)

		var published []events.Event
		f.broker.Subscribe(func(event events.Event) { published = append(published, event) })

		var userID string

		gomock.InOrder(
			f.repo.EXPECT().
				FindUserByEmail(gomock.Any(), "jordan@example.com").
				Return(nil, nil),
			f.repo.EXPECT().
				InsertPassword(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, cred model.PasswordCred) error {
					userID = cred.UserID
					assert.NotEqual(t, "hunter2", cred.PasswordHash)

					return nil
				}),
			f.repo.EXPECT().
				InsertUser(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, user model.User) error {
					assert.Equal(t, userID, user.ID)
					assert.Equal(t, "jordan@example.com", user.EmailAddress)

					return nil
				}),
			f.repo.EXPECT().
				InsertSession(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, session model.Session) error {
					assert.Equal(t, userID, session.UserID)

					return nil
				}),
		)

		res, err := f.svc.Signup(context.Background(), dto.SignupRequest{
			EmailAddress: "jordan@example.com",
			Password:     "hunter2",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.SessionID)

		require.Len(t, published, 1)
		assert.Equal(t, events.UserCreated, published[0].Type)
		assert.Equal(t, userID, published[0].UserID)
	})

	t.Run("taken email address is a conflict", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			FindUserByEmail(gomock.Any(), "jordan@example.com").
			Return(&model.User{ID: "U1", EmailAddress: "jordan@example.com"}, nil)

		_, err := f.svc.Signup(context.Background(), dto.SignupRequest{
			EmailAddress: "jordan@example.com",
			Password:     "hunter2",
		})
		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestUserService_Login(t *testing.T) {
	hash, err := password.Hash("hunter2")
	require.NoError(t, err)

	t.Run("successful login creates a session", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			FindUserByEmail(gomock.Any(), "jordan@example.com").
			Return(&model.User{ID: "U1", EmailAddress: "jordan@example.com"}, nil)
		f.repo.EXPECT().
			FindPasswordByUserID(gomock.Any(), "U1").
			Return(&model.PasswordCred{UserID: "U1", PasswordHash: hash}, nil)
		f.repo.EXPECT().
			InsertSession(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Login(context.Background(), dto.LoginRequest{
			EmailAddress: "jordan@example.com",
			Password:     "hunter2",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.SessionID)
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			FindUserByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, nil)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{
			EmailAddress: "nobody@example.com",
			Password:     "hunter2",
		})
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			FindUserByEmail(gomock.Any(), "jordan@example.com").
			Return(&model.User{ID: "U1"}, nil)
		f.repo.EXPECT().
			FindPasswordByUserID(gomock.Any(), "U1").
			Return(&model.PasswordCred{UserID: "U1", PasswordHash: hash}, nil)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{
			EmailAddress: "jordan@example.com",
			Password:     "wrong",
		})
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("account without credential is a server error", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			FindUserByEmail(gomock.Any(), "jordan@example.com").
			Return(&model.User{ID: "U1"}, nil)
		f.repo.EXPECT().
			FindPasswordByUserID(gomock.Any(), "U1").
			Return(nil, nil)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{
			EmailAddress: "jordan@example.com",
			Password:     "hunter2",
		})
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestUserService_CurrentSession(t *testing.T) {
	t.Run("cache hit skips the store", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "session:S1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*model.Session) = model.Session{ID: "S1", UserID: "U1"}

				return nil
			})

		res, err := f.svc.CurrentSession(context.Background(), "S1")
		require.NoError(t, err)
		assert.Equal(t, "U1", res.UserID)
	})

	t.Run("cache miss reads the store and backfills", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "session:S1", gomock.Any()).
			Return(cache.Nil)
		f.repo.EXPECT().
			FindSessionByID(gomock.Any(), "S1").
			Return(&model.Session{ID: "S1", UserID: "U1"}, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), "session:S1", gomock.Any(), 300).
			Return(nil)

		res, err := f.svc.CurrentSession(context.Background(), "S1")
		require.NoError(t, err)
		assert.Equal(t, "U1", res.UserID)
	})

	t.Run("unknown session is unauthorized", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "session:S1", gomock.Any()).
			Return(cache.Nil)
		f.repo.EXPECT().
			FindSessionByID(gomock.Any(), "S1").
			Return(nil, nil)

		_, err := f.svc.CurrentSession(context.Background(), "S1")
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestUserService_Logout(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		DeleteSessionByID(gomock.Any(), "S1").
		Return(nil)
	f.cache.EXPECT().
		Delete(gomock.Any(), "session:S1").
		Return(nil)

	assert.NoError(t, f.svc.Logout(context.Background(), "S1"))
}

func TestUserService_PatchUser(t *testing.T) {
	f := newFixture(t)

	email := "jordan@example.org"

	f.repo.EXPECT().
		FindUserByID(gomock.Any(), "U1").
		Return(&model.User{ID: "U1", EmailAddress: "jordan@example.com", AvatarSeed: "abc1234"}, nil)
	f.repo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user model.User) error {
			assert.Equal(t, "U1", user.ID)
			assert.Equal(t, "jordan@example.org", user.EmailAddress)
			assert.Equal(t, "abc1234", user.AvatarSeed)

			return nil
		})

	res, err := f.svc.PatchUser(context.Background(), "U1", dto.PatchUserRequest{EmailAddress: &email})
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.org", res.EmailAddress)
}

func TestUserService_DeleteEverything(t *testing.T) {
	f := newFixture(t)

	var published []events.Event
	f.broker.Subscribe(func(event events.Event) { published = append(published, event) })

	f.repo.EXPECT().
		DeleteByUserID(gomock.Any(), "U1").
		Return(nil)

	require.NoError(t, f.svc.DeleteEverything(context.Background(), "U1"))

	require.Len(t, published, 1)
	assert.Equal(t, events.UserDeleted, published[0].Type)
	assert.Equal(t, "U1", published[0].UserID)
}
