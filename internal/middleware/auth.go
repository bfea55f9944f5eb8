package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/construct_erp/internal/core/domain"
	portssvc "github.com/SscSPs/construct_erp/internal/core/ports/services"
	"github.com/SscSPs/construct_erp/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token and binds the session and its workspace to the request.
func AuthMiddleware(jwtSecret string, sessions portssvc.SessionReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		if claims.Subject == "" || claims.ID == "" {
			logger.Error("Subject or session ID missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		session, workspace, err := sessions.Resolve(c.Request.Context(), claims.ID)
		if err != nil || session.User.ID != claims.Subject {
			logger.Warn("Session not active", slog.String("session_id", claims.ID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or logged out"})
			return
		}

		enrichedLogger := logger.With(
			slog.String("user_id", session.User.ID),
			slog.String("session_id", session.ID),
			slog.String("role", string(session.User.Role)),
		)
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), enrichedLogger))

		c.Set(string(userIDKey), session.User.ID)
		c.Set(string(sessionKey), session)
		c.Set(string(workspaceKey), workspace)
		c.Next()
	}
}

// RequireView rejects callers whose role does not see view in the navigation.
func RequireView(view domain.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if !domain.CanAccess(session.User.Role, view) {
			GetLoggerFromCtx(c.Request.Context()).Warn("View not allowed for role", slog.String("view", string(view)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access to this area is not allowed for your role"})
			return
		}
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not listed.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		for _, r := range roles {
			if session.User.Role == r {
				c.Next()
				return
			}
		}
		GetLoggerFromCtx(c.Request.Context()).Warn("Action not allowed for role", slog.String("path", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Action not allowed for your role"})
	}
}
