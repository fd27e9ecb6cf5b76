// Package token issues and verifies the HS256 access and refresh tokens used for API authentication.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Type distinguishes access tokens from refresh tokens.
type Type string

// Token types.
const (
	Access  Type = "access"
	Refresh Type = "refresh"
)

var (
	// ErrInvalidToken indicates a malformed, expired or badly signed token.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrWrongType indicates a valid token of the wrong kind, e.g. a refresh token used as access.
	ErrWrongType = errors.New("wrong token type")
)

// Claims carried by every token. The subject is the numeric user id.
type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType Type   `json:"token_type"`
	jwt.RegisteredClaims
}

// UserKey returns the numeric user id stored in the subject.
func (c *Claims) UserKey() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return uint(id), nil
}

// Subject identifies the user a token is issued for.
type Subject struct {
	ID     uint
	UserID string
	Email  string
	Role   string
}

// Pair is the result of a successful login.
type Pair struct {
	Access  string
	Refresh string
}

// Manager signs and parses tokens with a shared secret.
type Manager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewManager creates a token manager.
func NewManager(secret, issuer string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// WithClock returns a copy of the manager that reads time from now.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

// IssuePair creates an access and a refresh token for the subject.
func (m *Manager) IssuePair(s Subject) (*Pair, error) {
	access, err := m.issue(s, Access, m.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := m.issue(s, Refresh, m.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &Pair{Access: access, Refresh: refresh}, nil
}

// IssueAccess creates a new access token for the subject.
func (m *Manager) IssueAccess(s Subject) (string, error) {
	return m.issue(s, Access, m.accessTTL)
}

func (m *Manager) issue(s Subject, typ Type, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		UserID:    s.UserID,
		Email:     s.Email,
		Role:      s.Role,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(s.ID), 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", typ, err)
	}
	return signed, nil
}

// Parse verifies the signature, issuer and expiry of tokenString and checks its type.
func (m *Manager) Parse(tokenString string, want Type) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.TokenType != want {
		return nil, ErrWrongType
	}
	return claims, nil
}

// ParseAccess verifies an access token.
func (m *Manager) ParseAccess(tokenString string) (*Claims, error) {
	return m.Parse(tokenString, Access)
}

// ParseRefresh verifies a refresh token.
func (m *Manager) ParseRefresh(tokenString string) (*Claims, error) {
	return m.Parse(tokenString, Refresh)
}
