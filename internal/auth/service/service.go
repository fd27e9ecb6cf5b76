// Package service implements login and token refresh.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/auth/model"
	userModel "github.com/festy23/teamdesk/internal/user/model"
	"github.com/festy23/teamdesk/pkg/token"
)

// Authenticator verifies credentials and loads accounts.
type Authenticator interface {
	Authenticate(ctx context.Context, userID, password string) (*userModel.User, error)
	GetUser(ctx context.Context, id uint) (*userModel.User, error)
}

// Issuer signs and verifies tokens.
type Issuer interface {
	IssuePair(s token.Subject) (*token.Pair, error)
	IssueAccess(s token.Subject) (string, error)
	ParseRefresh(tokenString string) (*token.Claims, error)
}

// Service defines the interface for authentication operations.
type Service interface {
	// Login checks credentials and issues an access and refresh token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)

	// Refresh issues a new access token from a refresh token.
	Refresh(ctx context.Context, req *model.RefreshRequest) (*model.RefreshResponse, error)
}

type service struct {
	users  Authenticator
	tokens Issuer
	logger *zap.SugaredLogger
}

// New creates a new authentication service instance.
func New(users Authenticator, tokens Issuer, logger *zap.SugaredLogger) Service {
	return &service{users: users, tokens: tokens, logger: logger}
}

// Login checks credentials and issues an access and refresh token.
func (s *service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.users.Authenticate(ctx, req.UserID, req.Password)
	if err != nil {
		return nil, err
	}

	pair, err := s.tokens.IssuePair(subjectOf(user))
	if err != nil {
		s.logger.Errorw("failed to issue tokens", "user_id", user.UserID, "error", err)
		return nil, err
	}

	s.logger.Infow("Login completed", "id", user.ID, "user_id", user.UserID)
	return &model.LoginResponse{Access: pair.Access, Refresh: pair.Refresh, Role: user.Role()}, nil
}

// Refresh issues a new access token from a refresh token. The account is reloaded
// so the new token carries the current role and inactive users are refused.
func (s *service) Refresh(ctx context.Context, req *model.RefreshRequest) (*model.RefreshResponse, error) {
	claims, err := s.tokens.ParseRefresh(req.Refresh)
	if err != nil {
		s.logger.Debugw("refresh token rejected", "error", err)
		return nil, model.ErrInvalidRefreshToken
	}
	id, err := claims.UserKey()
	if err != nil {
		return nil, model.ErrInvalidRefreshToken
	}

	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			return nil, model.ErrInvalidRefreshToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, model.ErrInvalidRefreshToken
	}

	access, err := s.tokens.IssueAccess(subjectOf(user))
	if err != nil {
		s.logger.Errorw("failed to issue access token", "user_id", user.UserID, "error", err)
		return nil, err
	}
	return &model.RefreshResponse{Access: access}, nil
}

func subjectOf(u *userModel.User) token.Subject {
	return token.Subject{ID: u.ID, UserID: u.UserID, Email: u.Email, Role: u.Role()}
}
