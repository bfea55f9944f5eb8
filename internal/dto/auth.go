package dto

import (
	"time"

	"github.com/SscSPs/construct_erp/internal/core/domain"
)

// LoginRequest represents the credentials posted to /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ExchangeCodeRequest carries the authorization code returned by Google.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// UserResponse is the public profile of a user.
type UserResponse struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	Avatar string      `json:"avatar"`
}

func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Avatar: u.Avatar}
}

// SessionResponse describes the caller and what they may open.
type SessionResponse struct {
	SessionID  string           `json:"sessionId"`
	User       UserResponse     `json:"user"`
	ExpiresAt  time.Time        `json:"expiresAt"`
	Navigation []domain.NavItem `json:"navigation"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

func ToSessionResponse(s domain.Session, nav []domain.NavItem) SessionResponse {
	return SessionResponse{
		SessionID:  s.ID,
		User:       ToUserResponse(s.User),
		ExpiresAt:  s.ExpiresAt,
		Navigation: nav,
	}
}
