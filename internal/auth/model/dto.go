// Package model holds the request and response types of the login endpoints.
package model

import "errors"

// ErrInvalidRefreshToken indicates a refresh token that is malformed, expired,
// of the wrong type or issued for a user that can no longer sign in.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// LoginRequest exchanges credentials for a token pair.
type LoginRequest struct {
	UserID   string `json:"user_id"  binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	Role    string `json:"role"`
}

// RefreshRequest exchanges a refresh token for a new access token.
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// RefreshResponse is returned by POST /token/refresh.
type RefreshResponse struct {
	Access string `json:"access"`
}
