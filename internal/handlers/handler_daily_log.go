package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/construct_erp/internal/core/ports/services"
	"github.com/SscSPs/construct_erp/internal/dto"
	"github.com/SscSPs/construct_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

const maxPhotoBytes = 10 << 20

// dailyLogHandler handles the site journal and its photos.
type dailyLogHandler struct {
	photos portssvc.PhotoSvc
}

// registerDailyLogRoutes registers routes related to daily logs.
func registerDailyLogRoutes(rg *gin.RouterGroup, photos portssvc.PhotoSvc) {
	h := &dailyLogHandler{photos: photos}

	logs := rg.Group("/logs")
	{
		logs.GET("", h.listDailyLogs)
		logs.POST("", h.createDailyLog)
		logs.PUT("/:id", h.updateDailyLog)
		logs.DELETE("/:id", h.deleteDailyLog)
		logs.POST("/:id/photos", h.uploadPhoto)
	}
}

// listDailyLogs godoc
// @Summary List daily logs
// @Tags logs
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]domain.DailyLog}
// @Security BearerAuth
// @Router /logs [get]
func (h *dailyLogHandler) listDailyLogs(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{Data: ws.DailyLogs()})
}

// createDailyLog godoc
// @Summary Write a daily log
// @Description The author is the caller. The date defaults to today.
// @Tags logs
// @Accept json
// @Produce json
// @Param log body dto.DailyLogRequest true "Daily log"
// @Success 201 {object} dto.MutationResponse{data=domain.DailyLog}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /logs [post]
func (h *dailyLogHandler) createDailyLog(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)
	var req dto.DailyLogRequest
	if !bindJSON(c, &req, "CreateDailyLog") {
		return
	}
	log, res := ws.AddDailyLog(c.Request.Context(), req.ToDomain("", userID))
	respondMutation(c, true, log, res)
}

// updateDailyLog godoc
// @Summary Update a daily log
// @Description Project and author stay as recorded.
// @Tags logs
// @Accept json
// @Produce json
// @Param id path string true "Daily log ID"
// @Param log body dto.DailyLogRequest true "Daily log"
// @Success 200 {object} dto.MutationResponse{data=domain.DailyLog}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /logs/{id} [put]
func (h *dailyLogHandler) updateDailyLog(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	var req dto.DailyLogRequest
	if !bindJSON(c, &req, "UpdateDailyLog") {
		return
	}
	id := c.Param("id")
	log := req.ToDomain(id, "")
	if existing, found := ws.DailyLog(id); found {
		log.ProjectID = existing.ProjectID
		log.AuthorID = existing.AuthorID
		if log.Date.IsZero() {
			log.Date = existing.Date
		}
	}
	updated, res := ws.UpdateDailyLog(c.Request.Context(), log)
	respondMutation(c, false, updated, res)
}

// deleteDailyLog godoc
// @Summary Delete a daily log
// @Tags logs
// @Produce json
// @Param id path string true "Daily log ID"
// @Success 200 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /logs/{id} [delete]
func (h *dailyLogHandler) deleteDailyLog(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	respondMutation(c, false, nil, ws.RemoveDailyLog(c.Request.Context(), c.Param("id")))
}

// uploadPhoto godoc
// @Summary Attach a photo to a daily log
// @Tags logs
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Daily log ID"
// @Param photo formData file true "Photo"
// @Success 200 {object} dto.MutationResponse{data=domain.DailyLog}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 501 {object} ErrorResponse
// @Security BearerAuth
// @Router /logs/{id}/photos [post]
func (h *dailyLogHandler) uploadPhoto(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	if h.photos == nil || !h.photos.Enabled() {
		c.JSON(http.StatusNotImplemented, ErrorResponse{Error: "Photo storage is not configured"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes)
	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A photo file is required: " + err.Error()})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unreadable photo: " + err.Error()})
		return
	}
	defer file.Close()

	log, res, err := h.photos.AttachPhoto(c.Request.Context(), ws, c.Param("id"), header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err, "Failed to attach photo")
		return
	}
	respondMutation(c, false, log, res)
}
