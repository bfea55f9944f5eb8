package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/construct_erp/internal/dto"
	"github.com/SscSPs/construct_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerProjectRoutes registers routes related to projects.
func registerProjectRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.GET("", listProjects)
		projects.GET("/:id", getProject)
		projects.POST("", createProject)
		projects.PUT("/:id", updateProject)
		projects.DELETE("/:id", deleteProject)
	}
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]domain.Project}
// @Security BearerAuth
// @Router /projects [get]
func listProjects(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{Data: ws.Projects()})
}

// getProject godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} domain.Project
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [get]
func getProject(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	project, found := ws.Project(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// createProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.ProjectRequest true "Project details"
// @Success 201 {object} dto.MutationResponse{data=domain.Project}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects [post]
func createProject(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if !bindJSON(c, &req, "CreateProject") {
		return
	}
	project, res := ws.AddProject(c.Request.Context(), req.ToDomain(""))
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Project created", slog.String("project_id", res.ID), slog.String("sync", string(res.Status)))
	respondMutation(c, true, project, res)
}

// updateProject godoc
// @Summary Update a project
// @Description Spent is kept as stored; it only grows through paid expenses.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body dto.ProjectRequest true "Project details"
// @Success 200 {object} dto.MutationResponse{data=domain.Project}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /projects/{id} [put]
func updateProject(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if !bindJSON(c, &req, "UpdateProject") {
		return
	}
	project, res := ws.UpdateProject(c.Request.Context(), req.ToDomain(c.Param("id")))
	respondMutation(c, false, project, res)
}

// deleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /projects/{id} [delete]
func deleteProject(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	respondMutation(c, false, nil, ws.RemoveProject(c.Request.Context(), c.Param("id")))
}
