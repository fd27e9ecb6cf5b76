// Package service provides business logic layer for user module.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/festy23/teamdesk/internal/access"
	"github.com/festy23/teamdesk/internal/user/model"
	"github.com/festy23/teamdesk/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// CreateUser creates an account without a password. Admin only.
	CreateUser(ctx context.Context, caller *model.User, req *model.CreateUserRequest) (*model.User, error)

	// Register creates an active account with a password.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)

	// SetPassword sets the first password of an account created by an admin.
	SetPassword(ctx context.Context, req *model.SetPasswordRequest) error

	// Authenticate checks a login handle and password.
	Authenticate(ctx context.Context, userID, password string) (*model.User, error)

	// GetUser returns a user by primary key.
	GetUser(ctx context.Context, id uint) (*model.User, error)

	// ListUsers returns every user. Admin or team lead only.
	ListUsers(ctx context.Context, caller *model.User) ([]model.User, error)

	// UpdateUser applies a partial update. Admin only.
	UpdateUser(ctx context.Context, caller *model.User, id uint, req *model.UpdateUserRequest) (*model.User, error)

	// DeleteUser removes a user. Admin only.
	DeleteUser(ctx context.Context, caller *model.User, id uint) error
}

type service struct {
	repo       repository.Repository
	bcryptCost int
	logger     *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, bcryptCost int, logger *zap.SugaredLogger) Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &service{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

// CreateUser creates an account without a password. Admin only.
func (s *service) CreateUser(ctx context.Context, caller *model.User, req *model.CreateUserRequest) (*model.User, error) {
	if !access.IsAdmin(caller) {
		s.logger.Debugw("CreateUser denied", "caller", callerID(caller))
		return nil, access.ErrForbidden
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, model.ErrInvalidUserID
	}

	user := &model.User{
		UserID:     userID,
		Email:      model.NormalizeEmail(req.Email),
		IsAdmin:    req.IsAdmin,
		IsTeamLead: req.IsTeamLead,
		IsActive:   req.IsActive,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("CreateUser completed", "id", user.ID, "user_id", user.UserID, "created_by", caller.ID)
	return user, nil
}

// Register creates an active account with a password.
func (s *service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, model.ErrInvalidUserID
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:       userID,
		Email:        model.NormalizeEmail(req.Email),
		IsActive:     true,
		PasswordHash: &hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("Register completed", "id", user.ID, "user_id", user.UserID)
	return user, nil
}

// SetPassword sets the first password of an account created by an admin.
func (s *service) SetPassword(ctx context.Context, req *model.SetPasswordRequest) error {
	user, err := s.repo.GetByUserIDAndEmail(ctx, req.UserID, model.NormalizeEmail(req.Email))
	if err != nil {
		return err
	}
	if user.HasUsablePassword() {
		s.logger.Debugw("SetPassword rejected, already set", "user_id", user.UserID)
		return model.ErrPasswordAlreadySet
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return err
	}
	if err := s.repo.SetPassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.logger.Infow("SetPassword completed", "user_id", user.UserID)
	return nil
}

// Authenticate checks a login handle and password. Every failure is reported
// as ErrInvalidCredentials.
func (s *service) Authenticate(ctx context.Context, userID, password string) (*model.User, error) {
	user, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.HasUsablePassword() || !user.IsActive {
		s.logger.Debugw("Authenticate rejected", "user_id", userID, "active", user.IsActive)
		return nil, model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		s.logger.Debugw("Authenticate wrong password", "user_id", userID)
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetUser returns a user by primary key.
func (s *service) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ListUsers returns every user. Admin or team lead only.
func (s *service) ListUsers(ctx context.Context, caller *model.User) ([]model.User, error) {
	if !access.IsAdminOrTeamLead(caller) {
		return nil, access.ErrForbidden
	}
	return s.repo.List(ctx)
}

// UpdateUser applies a partial update. Admin only.
func (s *service) UpdateUser(ctx context.Context, caller *model.User, id uint, req *model.UpdateUserRequest) (*model.User, error) {
	if !access.IsAdmin(caller) {
		return nil, access.ErrForbidden
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = model.NormalizeEmail(*req.Email)
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.IsTeamLead != nil {
		user.IsTeamLead = *req.IsTeamLead
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsStaff != nil {
		user.IsStaff = *req.IsStaff
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("UpdateUser completed", "id", id, "updated_by", caller.ID)
	return user, nil
}

// DeleteUser removes a user. Admin only.
func (s *service) DeleteUser(ctx context.Context, caller *model.User, id uint) error {
	if !access.IsAdmin(caller) {
		return access.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("DeleteUser completed", "id", id, "deleted_by", caller.ID)
	return nil
}

func (s *service) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		s.logger.Errorw("failed to hash password", "error", err)
		return "", err
	}
	return string(hash), nil
}

func callerID(caller *model.User) uint {
	if caller == nil {
		return 0
	}
	return caller.ID
}
