package models

import "github.com/golang-jwt/jwt/v5"

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleTeacher UserRole = "TEACHER"
	RoleStudent UserRole = "STUDENT"
)

// SessionState distinguishes callers that presented valid credentials.
type SessionState string

const (
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
)

// Session describes the caller of a request. The zero value is anonymous.
type Session struct {
	State  SessionState `json:"state"`
	UserID string       `json:"user_id,omitempty"`
	Role   UserRole     `json:"role,omitempty"`
}

// AnonymousSession returns the session of a caller without credentials.
func AnonymousSession() Session {
	return Session{State: SessionAnonymous}
}

// Authenticated reports whether the caller logged in.
func (s Session) Authenticated() bool {
	return s.State == SessionAuthenticated && s.UserID != ""
}

// HasRole reports whether an authenticated caller holds one of roles.
func (s Session) HasRole(roles ...UserRole) bool {
	if !s.Authenticated() {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// SessionClaims represents the JWT payload for access tokens.
type SessionClaims struct {
	UserID string   `json:"user_id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
