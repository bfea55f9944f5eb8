package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/construct_erp/internal/apperrors"
	"github.com/SscSPs/construct_erp/internal/core/domain"
	portssvc "github.com/SscSPs/construct_erp/internal/core/ports/services"
	"github.com/SscSPs/construct_erp/internal/dto"
	"github.com/SscSPs/construct_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// workspaceOrAbort returns the workspace bound by AuthMiddleware.
func workspaceOrAbort(c *gin.Context) (portssvc.WorkspaceSvc, bool) {
	ws, ok := middleware.GetWorkspaceFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Workspace not found in context")
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return ws, true
}

func sessionOrAbort(c *gin.Context) (*domain.Session, bool) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Session not found in context")
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return session, true
}

// bindJSON binds the body into req and answers 400 on failure.
func bindJSON(c *gin.Context, req any, op string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON for "+op, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// respondMutation writes the entity and its sync outcome. Creates answer 201 unless nothing was stored.
func respondMutation(c *gin.Context, created bool, data any, res domain.SyncResult) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if res.Status == domain.SyncFailed && res.Err != nil {
		logger.Warn("Mutation kept locally but not persisted", slog.String("id", res.ID), slog.String("error", res.Err.Error()))
	}
	status := http.StatusOK
	if created && res.Status != domain.SyncNoop {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToMutationResponse(data, res))
}

// respondError maps service errors to status codes.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error(fallback, slog.String("error", err.Error()))
		} else {
			logger.Warn(fallback, slog.String("error", err.Error()))
		}
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
