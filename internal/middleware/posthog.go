package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/construct_erp/internal/utils"
	"github.com/gin-gonic/gin"
)

// PosthogMiddleware captures one event per successful authenticated request, named after the route
// ("/api/v1/projects/:id" becomes "api_v1_projects_:id").
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		session, ok := GetSessionFromContext(c)
		if !ok {
			return
		}
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
			"role":        string(session.User.Role),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}
		posthogClient.Enqueue(session.User.ID, eventName, props)
	}
}

// PosthogEvent sends a named domain event for the caller, e.g. a purchase approval.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}
	session, ok := GetSessionFromContext(c)
	if !ok {
		return
	}
	if properties == nil {
		properties = make(map[string]any)
	}
	properties["role"] = string(session.User.Role)
	properties["path"] = c.Request.URL.Path
	posthogClient.Enqueue(session.User.ID, eventName, properties)
}
