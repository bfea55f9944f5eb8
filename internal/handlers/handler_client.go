package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/construct_erp/internal/dto"
	"github.com/SscSPs/construct_erp/internal/middleware"
	"github.com/gin-gonic/gin"
)

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.GET("", listClients)
		clients.POST("", createClient)
		clients.PUT("/:id", updateClient)
		clients.DELETE("/:id", deleteClient)
	}
}

// listClients godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]domain.Client}
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [get]
func listClients(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{Data: ws.Clients()})
}

// createClient godoc
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.ClientRequest true "Client details"
// @Success 201 {object} dto.MutationResponse{data=domain.Client}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients [post]
func createClient(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	var req dto.ClientRequest
	if !bindJSON(c, &req, "CreateClient") {
		return
	}
	client, res := ws.AddClient(c.Request.Context(), req.ToDomain(""))
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Client created", slog.String("client_id", res.ID), slog.String("sync", string(res.Status)))
	respondMutation(c, true, client, res)
}

// updateClient godoc
// @Summary Update a client
// @Description Unknown IDs are ignored and reported with sync status NOOP.
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body dto.ClientRequest true "Client details"
// @Success 200 {object} dto.MutationResponse{data=domain.Client}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /clients/{id} [put]
func updateClient(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	var req dto.ClientRequest
	if !bindJSON(c, &req, "UpdateClient") {
		return
	}
	client, res := ws.UpdateClient(c.Request.Context(), req.ToDomain(c.Param("id")))
	respondMutation(c, false, client, res)
}

// deleteClient godoc
// @Summary Delete a client
// @Description Projects keep their reference to the removed client.
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /clients/{id} [delete]
func deleteClient(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	res := ws.RemoveClient(c.Request.Context(), c.Param("id"))
	respondMutation(c, false, nil, res)
}
