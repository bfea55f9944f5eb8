package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/construct_erp/internal/dto"
	"github.com/SscSPs/construct_erp/internal/middleware"
	"github.com/SscSPs/construct_erp/internal/utils"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles stock and purchase orders.
type inventoryHandler struct {
	posthog *utils.PosthogClientWrapper
}

func newInventoryHandler(posthog *utils.PosthogClientWrapper) *inventoryHandler {
	return &inventoryHandler{posthog: posthog}
}

// registerInventoryRoutes registers the stock and purchase order routes.
func registerInventoryRoutes(rg *gin.RouterGroup, posthog *utils.PosthogClientWrapper) {
	h := newInventoryHandler(posthog)

	inventory := rg.Group("/inventory")
	{
		inventory.GET("/stock", h.listStock)
		inventory.GET("/stock/low", h.listLowStock)
		inventory.POST("/stock", h.createStockItem)
		inventory.PUT("/stock/:id", h.updateStockItem)
		inventory.DELETE("/stock/:id", h.deleteStockItem)

		inventory.GET("/purchase-orders", h.listPurchaseOrders)
		inventory.POST("/purchase-orders", h.requestPurchase)
		inventory.DELETE("/purchase-orders/:id", h.deletePurchaseOrder)
	}
}

// registerApprovalRoutes registers the approve route. It is gated by role, not by the inventory view.
func registerApprovalRoutes(rg *gin.RouterGroup, posthog *utils.PosthogClientWrapper) {
	h := newInventoryHandler(posthog)
	rg.POST("/purchase-orders/:id/approve", h.approvePurchaseOrder)
}

// listStock godoc
// @Summary List stock items
// @Tags inventory
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]domain.StockItem}
// @Security BearerAuth
// @Router /inventory/stock [get]
func (h *inventoryHandler) listStock(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{Data: ws.StockItems()})
}

// listLowStock godoc
// @Summary List items at or below their reorder threshold
// @Tags inventory
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]domain.StockItem}
// @Security BearerAuth
// @Router /inventory/stock/low [get]
func (h *inventoryHandler) listLowStock(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{Data: ws.LowStock()})
}

// createStockItem godoc
// @Summary Create a stock item
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body dto.StockItemRequest true "Stock item"
// @Success 201 {object} dto.MutationResponse{data=domain.StockItem}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/stock [post]
func (h *inventoryHandler) createStockItem(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	var req dto.StockItemRequest
	if !bindJSON(c, &req, "CreateStockItem") {
		return
	}
	item, res := ws.AddStockItem(c.Request.Context(), req.ToDomain(""))
	respondMutation(c, true, item, res)
}

// updateStockItem godoc
// @Summary Update a stock item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Stock item ID"
// @Param item body dto.StockItemRequest true "Stock item"
// @Success 200 {object} dto.MutationResponse{data=domain.StockItem}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/stock/{id} [put]
func (h *inventoryHandler) updateStockItem(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	var req dto.StockItemRequest
	if !bindJSON(c, &req, "UpdateStockItem") {
		return
	}
	item, res := ws.UpdateStockItem(c.Request.Context(), req.ToDomain(c.Param("id")))
	respondMutation(c, false, item, res)
}

// deleteStockItem godoc
// @Summary Delete a stock item
// @Tags inventory
// @Produce json
// @Param id path string true "Stock item ID"
// @Success 200 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /inventory/stock/{id} [delete]
func (h *inventoryHandler) deleteStockItem(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	respondMutation(c, false, nil, ws.RemoveStockItem(c.Request.Context(), c.Param("id")))
}

// listPurchaseOrders godoc
// @Summary List purchase orders
// @Tags inventory
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]domain.PurchaseOrder}
// @Security BearerAuth
// @Router /inventory/purchase-orders [get]
func (h *inventoryHandler) listPurchaseOrders(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{Data: ws.PurchaseOrders()})
}

// requestPurchase godoc
// @Summary Request a purchase
// @Description Files a PENDING order for the caller with a fixed total estimate.
// @Tags inventory
// @Accept json
// @Produce json
// @Param order body dto.PurchaseRequest true "Purchase request"
// @Success 201 {object} dto.MutationResponse{data=domain.PurchaseOrder}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/purchase-orders [post]
func (h *inventoryHandler) requestPurchase(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserIDFromContext(c)
	var req dto.PurchaseRequest
	if !bindJSON(c, &req, "RequestPurchase") {
		return
	}
	order, res := ws.RequestPurchase(c.Request.Context(), req.ToDomain(userID))
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Purchase requested",
		slog.String("order_id", res.ID),
		slog.String("item", order.ItemName),
		slog.String("total_estimate", order.TotalEstimate.String()))
	respondMutation(c, true, order, res)
}

// deletePurchaseOrder godoc
// @Summary Delete a purchase order
// @Tags inventory
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} dto.MutationResponse
// @Security BearerAuth
// @Router /inventory/purchase-orders/{id} [delete]
func (h *inventoryHandler) deletePurchaseOrder(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	respondMutation(c, false, nil, ws.RemovePurchaseOrder(c.Request.Context(), c.Param("id")))
}

// approvePurchaseOrder godoc
// @Summary Approve a purchase order
// @Description Marks a PENDING order PURCHASED, books the expense and restocks the item. Orders that are unknown or not pending are left alone.
// @Tags inventory
// @Produce json
// @Param id path string true "Purchase order ID"
// @Success 200 {object} dto.ApprovalResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /purchase-orders/{id}/approve [post]
func (h *inventoryHandler) approvePurchaseOrder(c *gin.Context) {
	ws, ok := workspaceOrAbort(c)
	if !ok {
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	result := ws.ApprovePurchaseOrder(c.Request.Context(), orderID)
	if !result.Applied() {
		logger.Info("Purchase order not approvable", slog.String("order_id", orderID))
		c.JSON(http.StatusOK, dto.ToApprovalResponse(result))
		return
	}

	logger.Info("Purchase order approved",
		slog.String("order_id", result.Order.ID),
		slog.String("transaction_id", result.Transaction.ID),
		slog.String("stock_id", result.Stock.ID),
		slog.Int("stock_quantity", result.Stock.Quantity))
	middleware.PosthogEvent(c, h.posthog, "purchase_order_approved", map[string]any{
		"order_id":   result.Order.ID,
		"project_id": result.Order.ProjectID,
		"amount":     result.Transaction.Amount.String(),
	})
	c.JSON(http.StatusOK, dto.ToApprovalResponse(result))
}
