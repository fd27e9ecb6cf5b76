package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/auth/model"
	userModel "github.com/festy23/teamdesk/internal/user/model"
	"github.com/festy23/teamdesk/pkg/token"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, userID, password string) (*userModel.User, error) {
	args := m.Called(ctx, userID, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

func (m *mockAuthenticator) GetUser(ctx context.Context, id uint) (*userModel.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

var _ Authenticator = (*mockAuthenticator)(nil)

func newManager() *token.Manager {
	return token.NewManager("test-secret-0123456789", "teamdesk", 15*time.Minute, time.Hour)
}

func TestService_Login(t *testing.T) {
	lead := &userModel.User{ID: 3, UserID: "lead", Email: "lead@example.com", IsTeamLead: true, IsActive: true}

	t.Run("issues pair with role", func(t *testing.T) {
		users := new(mockAuthenticator)
		tokens := newManager()
		svc := New(users, tokens, zap.NewNop().Sugar())
		users.On("Authenticate", mock.Anything, "lead", "pw").Return(lead, nil)

		resp, err := svc.Login(context.Background(), &model.LoginRequest{UserID: "lead", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, userModel.RoleTeamLead, resp.Role)

		access, err := tokens.ParseAccess(resp.Access)
		require.NoError(t, err)
		assert.Equal(t, "lead", access.UserID)
		assert.Equal(t, "lead@example.com", access.Email)
		assert.Equal(t, userModel.RoleTeamLead, access.Role)
		assert.Equal(t, "3", access.Subject)

		_, err = tokens.ParseRefresh(resp.Refresh)
		assert.NoError(t, err)
	})

	t.Run("invalid credentials pass through", func(t *testing.T) {
		users := new(mockAuthenticator)
		svc := New(users, newManager(), zap.NewNop().Sugar())
		users.On("Authenticate", mock.Anything, "lead", "bad").Return(nil, userModel.ErrInvalidCredentials)

		resp, err := svc.Login(context.Background(), &model.LoginRequest{UserID: "lead", Password: "bad"})

		assert.ErrorIs(t, err, userModel.ErrInvalidCredentials)
		assert.Nil(t, resp)
	})
}

func TestService_Refresh(t *testing.T) {
	user := &userModel.User{ID: 4, UserID: "alice", Email: "alice@example.com", IsActive: true}
	subject := token.Subject{ID: 4, UserID: "alice", Email: "alice@example.com", Role: userModel.RoleUser}

	t.Run("new access token reflects current role", func(t *testing.T) {
		users := new(mockAuthenticator)
		tokens := newManager()
		svc := New(users, tokens, zap.NewNop().Sugar())

		pair, err := tokens.IssuePair(subject)
		require.NoError(t, err)

		promoted := *user
		promoted.IsAdmin = true
		users.On("GetUser", mock.Anything, uint(4)).Return(&promoted, nil)

		resp, err := svc.Refresh(context.Background(), &model.RefreshRequest{Refresh: pair.Refresh})
		require.NoError(t, err)

		claims, err := tokens.ParseAccess(resp.Access)
		require.NoError(t, err)
		assert.Equal(t, userModel.RoleAdmin, claims.Role)
	})

	t.Run("access token refused", func(t *testing.T) {
		users := new(mockAuthenticator)
		tokens := newManager()
		svc := New(users, tokens, zap.NewNop().Sugar())

		pair, err := tokens.IssuePair(subject)
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), &model.RefreshRequest{Refresh: pair.Access})
		assert.ErrorIs(t, err, model.ErrInvalidRefreshToken)
		users.AssertNotCalled(t, "GetUser")
	})

	t.Run("deleted user", func(t *testing.T) {
		users := new(mockAuthenticator)
		tokens := newManager()
		svc := New(users, tokens, zap.NewNop().Sugar())
		pair, err := tokens.IssuePair(subject)
		require.NoError(t, err)
		users.On("GetUser", mock.Anything, uint(4)).Return(nil, userModel.ErrUserNotFound)

		_, err = svc.Refresh(context.Background(), &model.RefreshRequest{Refresh: pair.Refresh})
		assert.ErrorIs(t, err, model.ErrInvalidRefreshToken)
	})

	t.Run("deactivated user", func(t *testing.T) {
		users := new(mockAuthenticator)
		tokens := newManager()
		svc := New(users, tokens, zap.NewNop().Sugar())
		pair, err := tokens.IssuePair(subject)
		require.NoError(t, err)
		inactive := *user
		inactive.IsActive = false
		users.On("GetUser", mock.Anything, uint(4)).Return(&inactive, nil)

		_, err = svc.Refresh(context.Background(), &model.RefreshRequest{Refresh: pair.Refresh})
		assert.ErrorIs(t, err, model.ErrInvalidRefreshToken)
	})

	t.Run("store failure", func(t *testing.T) {
		users := new(mockAuthenticator)
		tokens := newManager()
		svc := New(users, tokens, zap.NewNop().Sugar())
		pair, err := tokens.IssuePair(subject)
		require.NoError(t, err)
		dbErr := errors.New("db down")
		users.On("GetUser", mock.Anything, uint(4)).Return(nil, dbErr)

		_, err = svc.Refresh(context.Background(), &model.RefreshRequest{Refresh: pair.Refresh})
		assert.ErrorIs(t, err, dbErr)
	})
}
