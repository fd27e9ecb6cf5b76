package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamdesk/internal/response"
	userModel "github.com/festy23/teamdesk/internal/user/model"
	"github.com/festy23/teamdesk/pkg/token"
)

const callerKey = "caller"

// AccessTokenParser verifies access tokens.
type AccessTokenParser interface {
	ParseAccess(tokenString string) (*token.Claims, error)
}

// UserLoader loads the account behind a token.
type UserLoader interface {
	GetByID(ctx context.Context, id uint) (*userModel.User, error)
}

// Auth authenticates requests with an "Authorization: Bearer <access token>" header.
// The user is reloaded on every request so deactivation and role changes apply immediately.
func Auth(tokens AccessTokenParser, users UserLoader, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "authentication credentials were not provided")
			return
		}

		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			response.Unauthorized(c, "invalid authorization header")
			return
		}

		claims, err := tokens.ParseAccess(strings.TrimSpace(raw))
		if err != nil {
			logger.Debugw("access token rejected", "error", err, "request_id", RequestID(c))
			response.Unauthorized(c, "invalid or expired token")
			return
		}

		id, err := claims.UserKey()
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, userModel.ErrUserNotFound) {
				response.Unauthorized(c, "user not found")
				return
			}
			logger.Errorw("failed to load authenticated user", "id", id, "error", err)
			response.Internal(c)
			return
		}
		if !user.IsActive {
			response.Unauthorized(c, "user is inactive")
			return
		}

		SetCaller(c, user)
		c.Next()
	}
}

// SetCaller stores the authenticated user on the request.
func SetCaller(c *gin.Context, user *userModel.User) {
	c.Set(callerKey, user)
}

// Caller returns the authenticated user, or nil outside Auth.
func Caller(c *gin.Context) *userModel.User {
	v, ok := c.Get(callerKey)
	if !ok {
		return nil
	}
	user, _ := v.(*userModel.User)
	return user
}

// RequireCaller returns the authenticated user or answers 401.
func RequireCaller(c *gin.Context) (*userModel.User, bool) {
	user := Caller(c)
	if user == nil {
		response.Unauthorized(c, "authentication credentials were not provided")
		return nil, false
	}
	return user, true
}
