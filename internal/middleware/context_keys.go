package middleware

import (
	"github.com/SscSPs/construct_erp/internal/core/domain"
	portssvc "github.com/SscSPs/construct_erp/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = contextKey("userID")
	sessionKey   = contextKey("session")
	workspaceKey = contextKey("workspace")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
			return userID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	return userID, ok
}

// GetSessionFromContext retrieves the active session set by the auth middleware.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	val, exists := c.Get(string(sessionKey))
	if !exists {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok && session != nil
}

// GetWorkspaceFromContext retrieves the store bound to the active session.
func GetWorkspaceFromContext(c *gin.Context) (portssvc.WorkspaceSvc, bool) {
	val, exists := c.Get(string(workspaceKey))
	if !exists {
		return nil, false
	}
	ws, ok := val.(portssvc.WorkspaceSvc)
	return ws, ok
}
