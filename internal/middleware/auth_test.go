package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/construct_erp/internal/apperrors"
	"github.com/SscSPs/construct_erp/internal/core/domain"
	portssvc "github.com/SscSPs/construct_erp/internal/core/ports/services"
	"github.com/SscSPs/construct_erp/internal/core/workspace"
	"github.com/SscSPs/construct_erp/internal/middleware"
	"github.com/SscSPs/construct_erp/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type MockSessionReader struct {
	mock.Mock
}

var _ portssvc.SessionReaderSvc = (*MockSessionReader)(nil)

func (m *MockSessionReader) Resolve(ctx context.Context, sessionID string) (*domain.Session, portssvc.WorkspaceSvc, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Session), args.Get(1).(portssvc.WorkspaceSvc), args.Error(2)
}

func (m *MockSessionReader) Navigation(role domain.Role) []domain.NavItem {
	return domain.NavigationFor(role)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(sessions portssvc.SessionReaderSvc) *gin.Engine {
	r := gin.New()
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(testSecret, sessions))
	v1.GET("/finance", middleware.RequireView(domain.ViewFinance), func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		_, hasWorkspace := middleware.GetWorkspaceFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": userID, "workspace": hasWorkspace})
	})
	v1.POST("/approve", middleware.RequireRoles(domain.RoleAdmin, domain.RoleFinance), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func tokenFor(t *testing.T, userID, sessionID string) string {
	t.Helper()
	token, err := utils.GenerateJWT(userID, sessionID, testSecret, time.Now(), time.Now().Add(time.Hour), "test")
	require.NoError(t, err)
	return token
}

func sessionFor(role domain.Role) *domain.Session {
	return &domain.Session{ID: "sess-1", User: domain.User{ID: "u1", Name: "Test", Role: role}}
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec := do(newRouter(new(MockSessionReader)), http.MethodGet, "/api/v1/finance", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization header required")
}

func TestAuthMiddleware_BadScheme(t *testing.T) {
	r := newRouter(new(MockSessionReader))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/finance", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("u1", "sess-1", "other-secret", time.Now(), time.Now().Add(time.Hour), "test")
	require.NoError(t, err)

	rec := do(newRouter(new(MockSessionReader)), http.MethodGet, "/api/v1/finance", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAuthMiddleware_LoggedOutSession(t *testing.T) {
	sessions := new(MockSessionReader)
	sessions.On("Resolve", mock.Anything, "sess-1").Return(nil, nil, apperrors.NewUnauthorizedError("session not found"))

	rec := do(newRouter(sessions), http.MethodGet, "/api/v1/finance", tokenFor(t, "u1", "sess-1"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	sessions.AssertExpectations(t)
}

func TestAuthMiddleware_SubjectMismatch(t *testing.T) {
	sessions := new(MockSessionReader)
	sessions.On("Resolve", mock.Anything, "sess-1").Return(sessionFor(domain.RoleAdmin), workspace.New(), nil)

	rec := do(newRouter(sessions), http.MethodGet, "/api/v1/finance", tokenFor(t, "someone-else", "sess-1"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireView(t *testing.T) {
	tests := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleFinance, http.StatusOK},
		{domain.RoleEngineer, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			sessions := new(MockSessionReader)
			sessions.On("Resolve", mock.Anything, "sess-1").Return(sessionFor(tt.role), workspace.New(), nil)

			rec := do(newRouter(sessions), http.MethodGet, "/api/v1/finance", tokenFor(t, "u1", "sess-1"))

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"user":"u1","workspace":true}`, rec.Body.String())
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleAdmin, http.StatusNoContent},
		{domain.RoleFinance, http.StatusNoContent},
		{domain.RoleEngineer, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			sessions := new(MockSessionReader)
			sessions.On("Resolve", mock.Anything, "sess-1").Return(sessionFor(tt.role), workspace.New(), nil)

			rec := do(newRouter(sessions), http.MethodPost, "/api/v1/approve", tokenFor(t, "u1", "sess-1"))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireView_WithoutSession(t *testing.T) {
	r := gin.New()
	r.GET("/open", middleware.RequireView(domain.ViewDashboard), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := do(r, http.MethodGet, "/open", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
